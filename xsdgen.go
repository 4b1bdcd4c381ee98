// Package xsdgen turns an XSD document into one synthetic XML instance
// document conforming to it: lex the schema, collect its types and
// elements, pick the element that no other element references as the
// root, and build an output tree from the root down, filling leaf values
// in along the way.
package xsdgen

import (
	"time"

	"github.com/raduionita-wk/xsdgen/internal/model"
	"github.com/raduionita-wk/xsdgen/internal/treebuilder"
	"github.com/raduionita-wk/xsdgen/internal/valuegen"
	"github.com/raduionita-wk/xsdgen/internal/xmltree"
	"github.com/raduionita-wk/xsdgen/internal/xsderr"
	"github.com/raduionita-wk/xsdgen/internal/xsdlex"
)

// Kind distinguishes which of the four error families an Error belongs to.
type Kind = xsderr.Kind

// The four error kinds the pipeline can return, re-exported from
// internal/xsderr so callers never need to import an internal package to
// name one.
const (
	XSDParserError       = xsderr.XSDParser
	DataTypesFormatError = xsderr.DataTypesFormat
	DataTypeError        = xsderr.DataType
	XMLBuilderError      = xsderr.XMLBuilder
)

// Error is the single concrete error type Generate returns.
type Error = xsderr.Error

// Config controls the one behavior the data model leaves to policy:
// how many instances an unbounded element emits, and which PRNG seed
// drives value generation.
type Config struct {
	// Seed drives the value generator's PRNG. Zero means "pick one from
	// the wall clock", so repeated calls with a zero Config produce
	// different output; set Seed explicitly for reproducible runs.
	Seed int64
	// MaxUnbounded sets how many instances an element with
	// maxOccurs="unbounded" emits (minOccurs instances when that is
	// larger). Zero means treebuilder.DefaultMaxUnbounded.
	MaxUnbounded int
}

func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Generate runs the full pipeline against xsdText and returns one
// synthetic XML instance document as a string. Every error it returns is
// an *Error; no partial output is ever returned alongside an error.
func Generate(xsdText string, cfg Config) (string, error) {
	schema, err := xsdlex.ParseString(xsdText)
	if err != nil {
		return "", err
	}

	types, err := model.CollectTypes(schema)
	if err != nil {
		return "", err
	}

	elements, err := model.CollectElements(schema)
	if err != nil {
		return "", err
	}

	root, err := model.SelectRoot(types, elements)
	if err != nil {
		return "", err
	}

	gen := valuegen.New(cfg.seed())
	tbCfg := treebuilder.Config{MaxUnbounded: cfg.MaxUnbounded}
	tree, err := treebuilder.Build(root, types, elements, gen, tbCfg)
	if err != nil {
		return "", err
	}

	out, err := xmltree.Render(tree)
	if err != nil {
		return "", xsderr.Builder("rendering output: %v", err)
	}
	return out, nil
}
