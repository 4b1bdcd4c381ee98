// Package model holds the core data model the pipeline projects an XSD
// document's AST into — TypeSpec, ElementSpec, GroupSpec, AttributeSpec and
// RestrictionSpec — and the collectors that build them: the facet
// collector, the type collector, the element collector and the root
// selector.
package model

import "github.com/raduionita-wk/xsdgen/internal/xsdast"

// RestrictionSpec is the projection of one <xs:restriction>: a base type
// name followed by the ordered values of every facet it carries.
type RestrictionSpec struct {
	Name   string
	Facets []string
}

// Equal reports structural equality: same base name, same facet values in
// the same order.
func (r RestrictionSpec) Equal(o RestrictionSpec) bool {
	if r.Name != o.Name || len(r.Facets) != len(o.Facets) {
		return false
	}
	for i := range r.Facets {
		if r.Facets[i] != o.Facets[i] {
			return false
		}
	}
	return true
}

// AttributeSpec is the projection of one <xs:attribute>.
type AttributeSpec struct {
	Name       string
	Use        xsdast.AttributeUse
	TypeName   string    // non-empty for a named type reference
	InlineType *TypeSpec // non-nil for an embedded simpleType
}

// Equal compares name, use and type source; it does not compare through
// InlineType pointers structurally beyond TypeInfo/Name since inline types
// synthesized from facets are otherwise anonymous.
func (a AttributeSpec) Equal(o AttributeSpec) bool {
	if a.Name != o.Name || a.Use != o.Use || a.TypeName != o.TypeName {
		return false
	}
	switch {
	case a.InlineType == nil && o.InlineType == nil:
		return true
	case a.InlineType == nil || o.InlineType == nil:
		return false
	default:
		return a.InlineType.Equal(o.InlineType)
	}
}

// ElementSpec is the projection of one <xs:element>. Exactly one of
// TypeName, Reference, or a non-empty Contents is populated in a
// well-formed projection.
type ElementSpec struct {
	Name      string // may be empty iff Reference is set
	Reference string // name of another element this one stands in for
	TypeName  string // named type reference
	Contents  []*TypeSpec
	Min       int
	Max       *int // nil means unbounded
}

// getName returns the element's own name, falling back to its reference;
// every ElementSpec the collectors build has at least one of the two.
func (e *ElementSpec) getName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Reference
}

// EffectiveName is the exported form of getName, for callers outside this
// package (the tree builder resolving references and tag names).
func (e *ElementSpec) EffectiveName() string { return e.getName() }

// Equal implements the root-selector's notion of element identity: name,
// type source and contents, explicitly excluding cardinality (Min/Max),
// since the same element declared with different occurrence bounds in two
// places still names the same thing.
func (e *ElementSpec) Equal(o *ElementSpec) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.getName() != o.getName() || e.TypeName != o.TypeName {
		return false
	}
	if len(e.Contents) != len(o.Contents) {
		return false
	}
	for i := range e.Contents {
		if !e.Contents[i].Equal(o.Contents[i]) {
			return false
		}
	}
	return true
}

// GroupSpec is the projection of one group/all/choice/sequence compositor.
type GroupSpec struct {
	Elements []*ElementSpec
	Min      int
	Max      *int
}

// TypeSpec is the projection of one <xs:simpleType> or <xs:complexType>,
// named or inline. A simple leaf populates TypeInfo and leaves Elements,
// Groups and Attributes empty; a structured type populates Elements/Groups
// and leaves TypeInfo empty. Attributes may accompany either shape.
type TypeSpec struct {
	Name       string
	TypeInfo   []string // ordered base-name + facet-value tokens, non-empty for simple leaves
	Elements   []*ElementSpec
	Groups     []*GroupSpec
	Attributes []*AttributeSpec
}

// Equal is structural: same name, same type_info tokens, same elements
// (recursively), same groups' elements, same attributes. Group
// cardinality (Min/Max) is not compared. Two TypeSpecs built from the
// same XSD content are Equal regardless of identity.
func (t *TypeSpec) Equal(o *TypeSpec) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Name != o.Name || len(t.TypeInfo) != len(o.TypeInfo) {
		return false
	}
	for i := range t.TypeInfo {
		if t.TypeInfo[i] != o.TypeInfo[i] {
			return false
		}
	}
	if len(t.Elements) != len(o.Elements) || len(t.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	if len(t.Groups) != len(o.Groups) {
		return false
	}
	for i := range t.Groups {
		tg, og := t.Groups[i], o.Groups[i]
		if len(tg.Elements) != len(og.Elements) {
			return false
		}
		for j := range tg.Elements {
			if !tg.Elements[j].Equal(og.Elements[j]) {
				return false
			}
		}
	}
	for i := range t.Attributes {
		if !t.Attributes[i].Equal(*o.Attributes[i]) {
			return false
		}
	}
	return true
}
