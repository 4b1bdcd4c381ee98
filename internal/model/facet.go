package model

import (
	"github.com/raduionita-wk/xsdgen/internal/xsderr"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

// collectFacets projects one restriction AST node into a RestrictionSpec:
// the base name followed by every facet value, in order. A fixed facet, a
// facet with an annotation child, or an xs:assertion anywhere in the
// restriction all fail with Unsupported.
func collectFacets(r xsdast.Restriction) (*RestrictionSpec, error) {
	if r.HasAssertion {
		return nil, xsderr.Parser("assertion facets are not supported")
	}
	spec := &RestrictionSpec{Name: r.Base.Local}
	for _, f := range r.Facets {
		if f.Fixed {
			return nil, xsderr.Parser("fixed facet %s is not supported", f.Kind)
		}
		if f.Annotated {
			return nil, xsderr.Parser("annotated facet %s is not supported", f.Kind)
		}
		spec.Facets = append(spec.Facets, f.Value)
	}
	return spec, nil
}
