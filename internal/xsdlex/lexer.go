// Package xsdlex is the lexical front end of the pipeline: it turns XSD
// source text into the AST internal/xsdast describes. It is a single
// forward pass over the XML token stream, tracking the chain of currently
// open elements on a stack and dispatching per tag name — the same shape
// the library this module grew out of used for its own schema walk, now
// rebuilt to losslessly capture every attribute the collectors need
// instead of a language-specific code-generation skeleton.
//
// xsdlex never rejects a schema construct on its own terms. It records
// what it saw — including constructs the rest of the pipeline will go on
// to refuse — and lets internal/model decide what is Unsupported.
package xsdlex

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/raduionita-wk/xsdgen/internal/xsderr"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

// frame is one entry in the open-element stack. At most one of the typed
// fields is populated for any given tag (none for a swallowed tag), except
// marker, which carries a
// value to attach to the parent frame once this one closes.
type frame struct {
	tag string

	schema      *xsdast.Schema
	simpleType  *xsdast.SimpleType
	complexType *xsdast.ComplexType
	element     *xsdast.Element
	attribute   *xsdast.Attribute
	compositor  *xsdast.Compositor
	groupDef    *xsdast.GroupDef
	attrGroup   *xsdast.AttributeGroup
	restriction *xsdast.Restriction
	facet       *xsdast.Facet

	marker interface{}
}

type lexState struct {
	frames *stack
	schema *xsdast.Schema
}

// Parse reads one XSD document and returns its AST. Parsing fails only on
// malformed XML or a document with no schema element; schema-level
// rejections belong to internal/model.
func Parse(r io.Reader) (*xsdast.Schema, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	ls := &lexState{frames: newStack()}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xsderr.Parser("malformed XSD document: %v", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			ls.onStart(el)
		case xml.EndElement:
			ls.onEnd(el)
		}
	}
	if ls.schema == nil {
		return nil, xsderr.Parser("no schema element found")
	}
	return ls.schema, nil
}

// ParseString is a convenience wrapper around Parse for callers that
// already hold the document in memory.
func ParseString(xsdText string) (*xsdast.Schema, error) {
	return Parse(strings.NewReader(xsdText))
}

func (ls *lexState) top() *frame {
	f, _ := ls.frames.peek().(*frame)
	return f
}

func (ls *lexState) onStart(el xml.StartElement) {
	tag := el.Name.Local
	switch tag {
	case "schema":
		s := &xsdast.Schema{TargetNamespace: attrVal(el, "targetNamespace")}
		ls.schema = s
		ls.frames.push(&frame{tag: tag, schema: s})

	case "include":
		ls.frames.push(&frame{tag: tag, marker: xsdast.Include{SchemaLocation: attrVal(el, "schemaLocation")}})
	case "import":
		ls.frames.push(&frame{tag: tag, marker: xsdast.Import{
			Namespace:      attrVal(el, "namespace"),
			SchemaLocation: attrVal(el, "schemaLocation"),
		}})
	case "redefine":
		ls.frames.push(&frame{tag: tag, marker: xsdast.Redefine{}})
	case "override":
		ls.frames.push(&frame{tag: tag, marker: xsdast.Override{}})
	case "notation":
		ls.frames.push(&frame{tag: tag, marker: xsdast.Notation{}})
	case "defaultOpenContent":
		ls.frames.push(&frame{tag: tag, marker: xsdast.DefaultOpenContent{}})

	case "annotation":
		top := ls.top()
		switch {
		case top != nil && top.attribute != nil:
			top.attribute.HasAnnotation = true
			ls.frames.push(&frame{tag: tag})
		case top != nil && top.facet != nil:
			top.facet.Annotated = true
			ls.frames.push(&frame{tag: tag})
		case top != nil && top.complexType != nil:
			ls.frames.push(&frame{tag: tag, marker: xsdast.ComplexAnnotationNode{}})
		case top != nil && top.element != nil:
			ls.frames.push(&frame{tag: tag, marker: xsdast.ElementAnnotationNode{}})
		case top != nil && top.schema != nil:
			ls.frames.push(&frame{tag: tag, marker: xsdast.Annotation{}})
		default:
			ls.frames.push(&frame{tag: tag})
		}

	case "simpleContent":
		ls.frames.push(&frame{tag: tag, marker: xsdast.SimpleContentNode{}})
	case "complexContent":
		ls.frames.push(&frame{tag: tag, marker: xsdast.ComplexContentNode{}})
	case "openContent":
		ls.frames.push(&frame{tag: tag, marker: xsdast.OpenContentNode{}})
	case "anyAttribute":
		ls.frames.push(&frame{tag: tag, marker: xsdast.AnyAttributeNode{}})
	case "assert":
		ls.frames.push(&frame{tag: tag, marker: xsdast.AssertNode{}})
	case "assertion":
		if top := ls.top(); top != nil && top.restriction != nil {
			top.restriction.HasAssertion = true
		}
		ls.frames.push(&frame{tag: tag})
	case "alternative":
		ls.frames.push(&frame{tag: tag, marker: xsdast.AlternativeNode{}})
	case "unique":
		ls.frames.push(&frame{tag: tag, marker: xsdast.UniqueNode{}})
	case "key":
		ls.frames.push(&frame{tag: tag, marker: xsdast.KeyNode{}})
	case "keyref":
		ls.frames.push(&frame{tag: tag, marker: xsdast.KeyrefNode{}})

	case "simpleType":
		ls.frames.push(&frame{tag: tag, simpleType: &xsdast.SimpleType{Name: attrVal(el, "name")}})

	case "complexType":
		ct := &xsdast.ComplexType{
			Name:                   attrVal(el, "name"),
			Mixed:                  boolAttr(el, "mixed"),
			Abstract:               boolAttr(el, "abstract"),
			HasFinal:               hasAttr(el, "final"),
			HasBlock:               hasAttr(el, "block"),
			DefaultAttributesApply: !hasAttr(el, "defaultAttributesApply") || boolAttr(el, "defaultAttributesApply"),
		}
		ls.frames.push(&frame{tag: tag, complexType: ct})

	case "list":
		if top := ls.top(); top != nil && top.simpleType != nil {
			it := qnameAttr(el, "itemType")
			top.simpleType.List = &xsdast.ListContent{ItemType: it}
		}
		ls.frames.push(&frame{tag: tag})

	case "union":
		if top := ls.top(); top != nil && top.simpleType != nil {
			top.simpleType.Union = &xsdast.UnionContent{MemberTypes: qnameListAttr(el, "memberTypes")}
		}
		ls.frames.push(&frame{tag: tag})

	case "restriction":
		r := &xsdast.Restriction{Base: qnameAttr(el, "base")}
		ls.frames.push(&frame{tag: tag, restriction: r})

	case "minExclusive", "minInclusive", "maxExclusive", "maxInclusive",
		"totalDigits", "fractionDigits", "length", "minLength", "maxLength",
		"enumeration", "whiteSpace", "pattern", "explicitTimezone":
		top := ls.top()
		fr := &frame{tag: tag}
		if top != nil && top.restriction != nil {
			f := xsdast.Facet{Kind: facetKindForTag(tag), Value: attrVal(el, "value"), Fixed: boolAttr(el, "fixed")}
			top.restriction.Facets = append(top.restriction.Facets, f)
			fr.facet = &top.restriction.Facets[len(top.restriction.Facets)-1]
		}
		ls.frames.push(fr)

	case "element":
		e := &xsdast.Element{
			Name:                 attrVal(el, "name"),
			Ref:                  qnameAttrPtr(el, "ref"),
			Type:                 qnameAttrPtr(el, "type"),
			MinOccurs:            intAttrDefault(el, "minOccurs", 1),
			MaxOccurs:            maxOccursAttr(el, "maxOccurs"),
			HasSubstitutionGroup: hasAttr(el, "substitutionGroup"),
			HasDefault:           hasAttr(el, "default"),
			HasFixed:             hasAttr(el, "fixed"),
			HasNillable:          hasAttr(el, "nillable"),
			HasAbstract:          hasAttr(el, "abstract"),
			HasFinal:             hasAttr(el, "final"),
			HasBlock:             hasAttr(el, "block"),
			HasForm:              hasAttr(el, "form"),
			TargetNamespace:      attrVal(el, "targetNamespace"),
		}
		ls.frames.push(&frame{tag: tag, element: e})

	case "attribute":
		a := &xsdast.Attribute{
			Name:            attrVal(el, "name"),
			Ref:             qnameAttrPtr(el, "ref"),
			Type:            qnameAttrPtr(el, "type"),
			Use:             attributeUse(el),
			HasDefault:      hasAttr(el, "default"),
			HasFixed:        hasAttr(el, "fixed"),
			HasForm:         hasAttr(el, "form"),
			TargetNamespace: attrVal(el, "targetNamespace"),
			HasInheritable:  hasAttr(el, "inheritable"),
		}
		ls.frames.push(&frame{tag: tag, attribute: a})

	case "group":
		top := ls.top()
		name := attrVal(el, "name")
		ref := qnameAttrPtr(el, "ref")
		if top != nil && top.schema != nil && name != "" && ref == nil {
			ls.frames.push(&frame{tag: tag, groupDef: &xsdast.GroupDef{Name: name}})
		} else {
			c := &xsdast.Compositor{
				CompositorKind: xsdast.CompositorGroup,
				Name:           name,
				Ref:            ref,
				MinOccurs:      intAttrDefault(el, "minOccurs", 1),
				MaxOccurs:      maxOccursAttr(el, "maxOccurs"),
			}
			ls.frames.push(&frame{tag: tag, compositor: c})
		}

	case "all", "choice", "sequence":
		kind := map[string]xsdast.CompositorKind{
			"all": xsdast.CompositorAll, "choice": xsdast.CompositorChoice, "sequence": xsdast.CompositorSequence,
		}[tag]
		c := &xsdast.Compositor{
			CompositorKind: kind,
			MinOccurs:      intAttrDefault(el, "minOccurs", 1),
			MaxOccurs:      maxOccursAttr(el, "maxOccurs"),
		}
		ls.frames.push(&frame{tag: tag, compositor: c})

	case "attributeGroup":
		top := ls.top()
		name := attrVal(el, "name")
		ref := qnameAttrPtr(el, "ref")
		if top != nil && top.schema != nil && name != "" && ref == nil {
			ls.frames.push(&frame{tag: tag, attrGroup: &xsdast.AttributeGroup{Name: name}})
		} else {
			var r xsdast.QName
			if ref != nil {
				r = *ref
			}
			ls.frames.push(&frame{tag: tag, marker: xsdast.AttributeGroupRefNode{Ref: r}})
		}

	default:
		// Unrecognized content (xs:documentation, xs:appinfo, and anything
		// this lexer has no opinion about) is swallowed: pushed so its
		// matching end tag pops cleanly, never attached anywhere.
		ls.frames.push(&frame{tag: tag})
	}
}

func (ls *lexState) onEnd(_ xml.EndElement) {
	f, _ := ls.frames.pop().(*frame)
	if f == nil {
		return
	}
	parent := ls.top()

	switch {
	case f.schema != nil:
		// root frame; nothing to attach to.
	case f.simpleType != nil:
		attachSimpleType(parent, f.simpleType)
	case f.complexType != nil:
		attachComplexType(parent, f.complexType)
	case f.element != nil:
		attachElement(parent, f.element)
	case f.attribute != nil:
		attachAttribute(parent, f.attribute)
	case f.compositor != nil:
		attachCompositor(parent, f.compositor)
	case f.groupDef != nil:
		if parent != nil && parent.schema != nil {
			parent.schema.Content = append(parent.schema.Content, f.groupDef)
		}
	case f.attrGroup != nil:
		if parent != nil && parent.schema != nil {
			parent.schema.Content = append(parent.schema.Content, f.attrGroup)
		}
	case f.restriction != nil:
		if parent != nil && parent.simpleType != nil {
			parent.simpleType.Restrictions = append(parent.simpleType.Restrictions, *f.restriction)
		}
	case f.marker != nil:
		attachMarker(parent, f.marker)
	}
}

func attachSimpleType(parent *frame, st *xsdast.SimpleType) {
	if parent == nil {
		return
	}
	switch {
	case parent.attribute != nil:
		parent.attribute.InlineType = st
	case parent.element != nil:
		parent.element.Content = append(parent.element.Content, st)
	case parent.schema != nil:
		parent.schema.Content = append(parent.schema.Content, st)
	}
}

func attachComplexType(parent *frame, ct *xsdast.ComplexType) {
	if parent == nil {
		return
	}
	switch {
	case parent.element != nil:
		parent.element.Content = append(parent.element.Content, ct)
	case parent.schema != nil:
		parent.schema.Content = append(parent.schema.Content, ct)
	}
}

func attachElement(parent *frame, e *xsdast.Element) {
	if parent == nil {
		return
	}
	switch {
	case parent.compositor != nil:
		parent.compositor.Elements = append(parent.compositor.Elements, e)
	case parent.schema != nil:
		parent.schema.Content = append(parent.schema.Content, e)
	}
}

func attachAttribute(parent *frame, a *xsdast.Attribute) {
	if parent == nil {
		return
	}
	switch {
	case parent.complexType != nil:
		parent.complexType.Content = append(parent.complexType.Content, a)
	case parent.attrGroup != nil:
		parent.attrGroup.Attributes = append(parent.attrGroup.Attributes, a)
	case parent.schema != nil:
		parent.schema.Content = append(parent.schema.Content, a)
	}
}

func attachCompositor(parent *frame, c *xsdast.Compositor) {
	if parent == nil {
		return
	}
	switch {
	case parent.complexType != nil:
		parent.complexType.Content = append(parent.complexType.Content, c)
	case parent.compositor != nil:
		parent.compositor.Nested = append(parent.compositor.Nested, c)
	}
}

// attachMarker attaches an opaque marker to whichever content family its
// parent frame belongs to. Every marker type implements exactly one of
// SchemaContent, ComplexTypeContent or ElementContent, so these checks
// never race each other.
func attachMarker(parent *frame, marker interface{}) {
	if parent == nil {
		return
	}
	if parent.schema != nil {
		if sc, ok := marker.(xsdast.SchemaContent); ok {
			parent.schema.Content = append(parent.schema.Content, sc)
			return
		}
	}
	if parent.complexType != nil {
		if cc, ok := marker.(xsdast.ComplexTypeContent); ok {
			parent.complexType.Content = append(parent.complexType.Content, cc)
			return
		}
	}
	if parent.element != nil {
		if ec, ok := marker.(xsdast.ElementContent); ok {
			parent.element.Content = append(parent.element.Content, ec)
			return
		}
	}
}

func attrVal(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func hasAttr(el xml.StartElement, local string) bool {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return true
		}
	}
	return false
}

func boolAttr(el xml.StartElement, local string) bool {
	v := attrVal(el, local)
	return v == "true" || v == "1"
}

func intAttrDefault(el xml.StartElement, local string, def int) int {
	v := attrVal(el, local)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// maxOccursAttr parses maxOccurs, whose absence defaults to 1 and whose
// "unbounded" value is represented as nil.
func maxOccursAttr(el xml.StartElement, local string) *int {
	v := attrVal(el, local)
	if v == "" {
		one := 1
		return &one
	}
	if v == "unbounded" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		one := 1
		return &one
	}
	return &n
}

func parseQName(v string) xsdast.QName {
	if i := strings.IndexByte(v, ':'); i >= 0 {
		return xsdast.QName{Space: v[:i], Local: v[i+1:]}
	}
	return xsdast.QName{Local: v}
}

func qnameAttr(el xml.StartElement, local string) xsdast.QName {
	return parseQName(attrVal(el, local))
}

func qnameAttrPtr(el xml.StartElement, local string) *xsdast.QName {
	if !hasAttr(el, local) {
		return nil
	}
	q := parseQName(attrVal(el, local))
	return &q
}

func qnameListAttr(el xml.StartElement, local string) []xsdast.QName {
	v := attrVal(el, local)
	if v == "" {
		return nil
	}
	parts := strings.Fields(v)
	out := make([]xsdast.QName, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseQName(p))
	}
	return out
}

func attributeUse(el xml.StartElement) xsdast.AttributeUse {
	switch attrVal(el, "use") {
	case "optional":
		return xsdast.Optional
	case "prohibited":
		return xsdast.Prohibited
	default:
		return xsdast.Required
	}
}

var facetKindByTag = map[string]xsdast.FacetKind{
	"minExclusive":    xsdast.FacetMinExclusive,
	"minInclusive":    xsdast.FacetMinInclusive,
	"maxExclusive":    xsdast.FacetMaxExclusive,
	"maxInclusive":    xsdast.FacetMaxInclusive,
	"totalDigits":     xsdast.FacetTotalDigits,
	"fractionDigits":  xsdast.FacetFractionDigits,
	"length":          xsdast.FacetLength,
	"minLength":       xsdast.FacetMinLength,
	"maxLength":       xsdast.FacetMaxLength,
	"enumeration":     xsdast.FacetEnumeration,
	"whiteSpace":      xsdast.FacetWhiteSpace,
	"pattern":         xsdast.FacetPattern,
	"explicitTimezone": xsdast.FacetExplicitTimezone,
}

func facetKindForTag(tag string) xsdast.FacetKind {
	return facetKindByTag[tag]
}
