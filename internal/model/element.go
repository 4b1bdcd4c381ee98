package model

import (
	"github.com/raduionita-wk/xsdgen/internal/xsderr"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

// CollectElements walks the top-level content of a schema and projects
// every top-level <xs:element> into an ElementSpec, in document order.
// Named and complex types are skipped (owned by the type collector); every
// other schema-content variant fails with Unsupported for the same reason
// the type collector rejects it.
func CollectElements(schema *xsdast.Schema) ([]*ElementSpec, error) {
	var out []*ElementSpec
	for _, item := range schema.Content {
		switch v := item.(type) {
		case *xsdast.Element:
			e, err := collectElement(v)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		case *xsdast.SimpleType, *xsdast.ComplexType:
			// owned by the type collector
		default:
			return nil, xsderr.Parser("unsupported top-level schema content %T", item)
		}
	}
	return out, nil
}

// collectElement implements §4.3.
func collectElement(e *xsdast.Element) (*ElementSpec, error) {
	if e.HasSubstitutionGroup {
		return nil, xsderr.Parser("substitutionGroup is not supported")
	}
	if e.HasDefault {
		return nil, xsderr.Parser("element default is not supported")
	}
	if e.HasFixed {
		return nil, xsderr.Parser("element fixed is not supported")
	}
	if e.HasNillable {
		return nil, xsderr.Parser("nillable is not supported")
	}
	if e.HasAbstract {
		return nil, xsderr.Parser("abstract elements are not supported")
	}
	if e.HasFinal {
		return nil, xsderr.Parser("final is not supported")
	}
	if e.HasBlock {
		return nil, xsderr.Parser("block is not supported")
	}
	if e.HasForm {
		return nil, xsderr.Parser("element form is not supported")
	}
	if e.TargetNamespace != "" {
		return nil, xsderr.Parser("element targetNamespace is not supported")
	}
	if e.Name == "" && e.Ref == nil {
		return nil, xsderr.Format("element has neither a name nor a reference")
	}

	spec := &ElementSpec{Name: e.Name, Min: e.MinOccurs, Max: e.MaxOccurs}
	if e.Ref != nil {
		spec.Reference = e.Ref.Local
	}
	if e.Type != nil {
		spec.TypeName = e.Type.Local
	}
	for _, c := range e.Content {
		switch v := c.(type) {
		case *xsdast.SimpleType:
			t, err := collectSimpleType(v, false)
			if err != nil {
				return nil, err
			}
			spec.Contents = append(spec.Contents, t)
		case *xsdast.ComplexType:
			t, err := collectComplexType(v)
			if err != nil {
				return nil, err
			}
			spec.Contents = append(spec.Contents, t)
		default:
			return nil, xsderr.Parser("unsupported element content %T", c)
		}
	}

	if e.Ref != nil && (spec.TypeName != "" || len(spec.Contents) > 0) {
		return nil, xsderr.Format("element %s has both a reference and a type or inline contents", spec.Reference)
	}
	return spec, nil
}
