package xsdlex

import (
	"testing"

	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

func TestParseSimpleTypeWithPattern(t *testing.T) {
	doc := `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType name="ZipCode">
    <xs:restriction base="xs:string">
      <xs:pattern value="[0-9]{5}"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`

	schema, err := ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(schema.Content) != 1 {
		t.Fatalf("len(schema.Content) = %d, want 1", len(schema.Content))
	}
	st, ok := schema.Content[0].(*xsdast.SimpleType)
	if !ok {
		t.Fatalf("schema.Content[0] = %T, want *xsdast.SimpleType", schema.Content[0])
	}
	if st.Name != "ZipCode" {
		t.Errorf("st.Name = %q, want %q", st.Name, "ZipCode")
	}
	if len(st.Restrictions) != 1 {
		t.Fatalf("len(st.Restrictions) = %d, want 1", len(st.Restrictions))
	}
	r := st.Restrictions[0]
	if r.Base.Local != "string" {
		t.Errorf("r.Base.Local = %q, want %q", r.Base.Local, "string")
	}
	if len(r.Facets) != 1 || r.Facets[0].Kind != xsdast.FacetPattern || r.Facets[0].Value != "[0-9]{5}" {
		t.Fatalf("r.Facets = %+v, want one pattern facet with value [0-9]{5}", r.Facets)
	}
}

func TestParseComplexTypeWithSequenceAndAttribute(t *testing.T) {
	doc := `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="order" type="OrderType"/>
  <xs:complexType name="OrderType">
    <xs:sequence>
      <xs:element name="id" type="xs:integer"/>
      <xs:element name="qty" type="xs:integer" minOccurs="0" maxOccurs="unbounded"/>
    </xs:sequence>
    <xs:attribute name="currency" type="xs:string" use="optional"/>
  </xs:complexType>
</xs:schema>`

	schema, err := ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(schema.Content) != 2 {
		t.Fatalf("len(schema.Content) = %d, want 2", len(schema.Content))
	}
	el, ok := schema.Content[0].(*xsdast.Element)
	if !ok || el.Name != "order" || el.Type == nil || el.Type.Local != "OrderType" {
		t.Fatalf("schema.Content[0] = %+v, want element order:OrderType", schema.Content[0])
	}
	ct, ok := schema.Content[1].(*xsdast.ComplexType)
	if !ok {
		t.Fatalf("schema.Content[1] = %T, want *xsdast.ComplexType", schema.Content[1])
	}
	if len(ct.Content) != 2 {
		t.Fatalf("len(ct.Content) = %d, want 2", len(ct.Content))
	}
	seq, ok := ct.Content[0].(*xsdast.Compositor)
	if !ok || seq.CompositorKind != xsdast.CompositorSequence {
		t.Fatalf("ct.Content[0] = %+v, want a sequence compositor", ct.Content[0])
	}
	if len(seq.Elements) != 2 {
		t.Fatalf("len(seq.Elements) = %d, want 2", len(seq.Elements))
	}
	qty := seq.Elements[1]
	if qty.MinOccurs != 0 {
		t.Errorf("qty.MinOccurs = %d, want 0", qty.MinOccurs)
	}
	if qty.MaxOccurs != nil {
		t.Errorf("qty.MaxOccurs = %v, want nil (unbounded)", qty.MaxOccurs)
	}
	attr, ok := ct.Content[1].(*xsdast.Attribute)
	if !ok || attr.Name != "currency" || attr.Use != xsdast.Optional {
		t.Fatalf("ct.Content[1] = %+v, want optional attribute currency", ct.Content[1])
	}
}

func TestParseRejectsNothingItJustRecordsImport(t *testing.T) {
	doc := `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:import namespace="urn:other" schemaLocation="other.xsd"/>
</xs:schema>`

	schema, err := ParseString(doc)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(schema.Content) != 1 {
		t.Fatalf("len(schema.Content) = %d, want 1", len(schema.Content))
	}
	imp, ok := schema.Content[0].(xsdast.Import)
	if !ok || imp.Namespace != "urn:other" {
		t.Fatalf("schema.Content[0] = %+v, want Import{urn:other}", schema.Content[0])
	}
}

func TestParseMalformedXMLFails(t *testing.T) {
	if _, err := ParseString("<xs:schema"); err == nil {
		t.Fatal("expected an error for malformed XML, got nil")
	}
}
