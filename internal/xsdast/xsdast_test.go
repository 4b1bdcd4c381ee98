package xsdast

import "testing"

func TestQNameString(t *testing.T) {
	cases := []struct {
		q    QName
		want string
	}{
		{QName{Local: "string"}, "string"},
		{QName{Local: "id", Space: "xs"}, "xs:id"},
	}
	for _, c := range cases {
		if got := c.q.String(); got != c.want {
			t.Errorf("QName{%q,%q}.String() = %q, want %q", c.q.Local, c.q.Space, got, c.want)
		}
	}
}

func TestFacetKindString(t *testing.T) {
	if got := FacetPattern.String(); got != "pattern" {
		t.Errorf("FacetPattern.String() = %q, want %q", got, "pattern")
	}
	if got := FacetKind(99).String(); got != "unknown" {
		t.Errorf("FacetKind(99).String() = %q, want %q", got, "unknown")
	}
}

func TestSchemaContentKinds(t *testing.T) {
	var items []SchemaContent = []SchemaContent{
		&SimpleType{Name: "Code"},
		&ComplexType{Name: "Order"},
		&Element{Name: "root"},
		&Attribute{Name: "id"},
		&GroupDef{Name: "g"},
		&AttributeGroup{Name: "ag"},
		Include{},
		Import{},
		Redefine{},
		Override{},
		Annotation{},
		DefaultOpenContent{},
		Notation{},
	}
	want := []NodeKind{
		KindSimpleType, KindComplexType, KindElement, KindAttribute,
		KindGroup, KindAttributeGroup, KindInclude, KindImport,
		KindRedefine, KindOverride, KindAnnotation, KindDefaultOpenContent,
		KindNotation,
	}
	for i, item := range items {
		if item.Kind() != want[i] {
			t.Errorf("item %d: Kind() = %v, want %v", i, item.Kind(), want[i])
		}
	}
}
