package model

import (
	"github.com/raduionita-wk/xsdgen/internal/xsderr"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

// CollectTypes walks the top-level content of a schema and projects every
// named simple or complex type into a TypeSpec table keyed by name.
// Top-level elements are skipped (the element collector owns those); every
// other schema-content variant — includes, imports, redefinitions,
// overrides, notations, top-level groups, top-level attribute groups and
// top-level attributes — fails with Unsupported, since the pipeline does
// not project cross-document or named-group structure.
func CollectTypes(schema *xsdast.Schema) (map[string]*TypeSpec, error) {
	table := make(map[string]*TypeSpec)
	for _, item := range schema.Content {
		switch v := item.(type) {
		case *xsdast.SimpleType:
			t, err := collectSimpleType(v, true)
			if err != nil {
				return nil, err
			}
			table[t.Name] = t
		case *xsdast.ComplexType:
			if v.Name == "" {
				return nil, xsderr.Parser("anonymous complex type is not supported at the top level")
			}
			t, err := collectComplexType(v)
			if err != nil {
				return nil, err
			}
			table[t.Name] = t
		case *xsdast.Element:
			// owned by the element collector
		default:
			return nil, xsderr.Parser("unsupported top-level schema content %T", item)
		}
	}
	return table, nil
}

// collectSimpleType projects one <xs:simpleType>. requireName enforces the
// top-level rule that anonymous simple types are rejected; inline simple
// types (an element or attribute's embedded type) may be anonymous.
func collectSimpleType(st *xsdast.SimpleType, requireName bool) (*TypeSpec, error) {
	if requireName && st.Name == "" {
		return nil, xsderr.Parser("anonymous simple type is not supported at the top level")
	}
	if st.List != nil {
		return nil, xsderr.Parser("list simple types are not supported")
	}
	if st.Union != nil {
		return nil, xsderr.Parser("union simple types are not supported")
	}

	spec := &TypeSpec{Name: st.Name}
	if len(st.Restrictions) == 0 {
		spec.TypeInfo = []string{"string"}
		return spec, nil
	}
	for _, r := range st.Restrictions {
		rs, err := collectFacets(r)
		if err != nil {
			return nil, err
		}
		spec.TypeInfo = append(spec.TypeInfo, rs.Name)
		spec.TypeInfo = append(spec.TypeInfo, rs.Facets...)
	}
	return spec, nil
}

// collectComplexType projects one <xs:complexType>, named or inline.
func collectComplexType(ct *xsdast.ComplexType) (*TypeSpec, error) {
	if ct.Mixed {
		return nil, xsderr.Parser("mixed content is not supported")
	}
	if ct.Abstract {
		return nil, xsderr.Parser("abstract complex types are not supported")
	}
	if ct.HasFinal {
		return nil, xsderr.Parser("final is not supported")
	}
	if ct.HasBlock {
		return nil, xsderr.Parser("block is not supported")
	}
	if !ct.DefaultAttributesApply {
		return nil, xsderr.Parser("non-default attribute policy is not supported")
	}

	spec := &TypeSpec{Name: ct.Name}
	for _, c := range ct.Content {
		switch v := c.(type) {
		case *xsdast.Compositor:
			g, err := collectGroup(v)
			if err != nil {
				return nil, err
			}
			spec.Groups = append(spec.Groups, g)
		case *xsdast.Attribute:
			a, err := collectAttribute(v)
			if err != nil {
				return nil, err
			}
			spec.Attributes = append(spec.Attributes, a)
		default:
			return nil, xsderr.Parser("unsupported complex type content %T", c)
		}
	}
	return spec, nil
}

// collectGroup implements §4.2.1: a compositor contributes a GroupSpec
// only when it names no group (no name or ref attribute) and nests no
// further compositor.
func collectGroup(c *xsdast.Compositor) (*GroupSpec, error) {
	if c.Name != "" || c.Ref != nil {
		return nil, xsderr.Parser("named or referenced groups are not supported")
	}
	if len(c.Nested) > 0 {
		return nil, xsderr.Parser("nested compositors are not supported")
	}
	g := &GroupSpec{Min: c.MinOccurs, Max: c.MaxOccurs}
	for _, e := range c.Elements {
		es, err := collectElement(e)
		if err != nil {
			return nil, err
		}
		g.Elements = append(g.Elements, es)
	}
	return g, nil
}

// collectAttribute implements §4.2.2.
func collectAttribute(a *xsdast.Attribute) (*AttributeSpec, error) {
	if a.Ref != nil {
		return nil, xsderr.Parser("attribute references are not supported")
	}
	if a.HasDefault {
		return nil, xsderr.Parser("attribute default is not supported")
	}
	if a.HasFixed {
		return nil, xsderr.Parser("attribute fixed is not supported")
	}
	if a.HasForm {
		return nil, xsderr.Parser("attribute form is not supported")
	}
	if a.TargetNamespace != "" {
		return nil, xsderr.Parser("attribute targetNamespace is not supported")
	}
	if a.HasInheritable {
		return nil, xsderr.Parser("attribute inheritable is not supported")
	}
	if a.HasAnnotation {
		return nil, xsderr.Parser("attribute annotation is not supported")
	}
	if a.Type != nil && a.InlineType != nil {
		return nil, xsderr.Parser("attribute %s has both a type reference and an embedded simpleType", a.Name)
	}

	spec := &AttributeSpec{Name: a.Name, Use: a.Use}
	switch {
	case a.Type != nil:
		spec.TypeName = a.Type.Local
	case a.InlineType != nil:
		it, err := collectSimpleType(a.InlineType, false)
		if err != nil {
			return nil, err
		}
		spec.InlineType = it
	}
	return spec, nil
}
