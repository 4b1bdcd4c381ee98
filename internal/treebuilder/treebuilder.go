// Package treebuilder is the fifth pipeline stage: it walks the collected
// type table starting from the selected root element and produces the
// output instance tree, resolving references, dispatching named types, and
// filling in leaf values through a value generator.
package treebuilder

import (
	"github.com/raduionita-wk/xsdgen/internal/model"
	"github.com/raduionita-wk/xsdgen/internal/valuegen"
	"github.com/raduionita-wk/xsdgen/internal/xmltree"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
	"github.com/raduionita-wk/xsdgen/internal/xsderr"
)

// DefaultMaxUnbounded is how many instances an element with an unbounded
// maxOccurs produces when Config.MaxUnbounded is left at zero.
const DefaultMaxUnbounded = 3

// Config controls cardinality emission, the one place the builder makes a
// policy choice the data model doesn't pin down.
type Config struct {
	// MaxUnbounded sets how many instances an element with
	// maxOccurs="unbounded" emits; an element whose minOccurs is larger
	// emits minOccurs instances. Zero means DefaultMaxUnbounded.
	MaxUnbounded int
}

func (c Config) maxUnbounded() int {
	if c.MaxUnbounded <= 0 {
		return DefaultMaxUnbounded
	}
	return c.MaxUnbounded
}

// Build emits the output instance tree rooted at root.
func Build(root *model.ElementSpec, types map[string]*model.TypeSpec, elements []*model.ElementSpec, gen *valuegen.Generator, cfg Config) (*xmltree.Node, error) {
	b := &builder{types: types, elements: elements, gen: gen, cfg: cfg}
	return b.emitElement(root)
}

type builder struct {
	types    map[string]*model.TypeSpec
	elements []*model.ElementSpec
	gen      *valuegen.Generator
	cfg      Config
}

func (b *builder) findByName(name string) *model.ElementSpec {
	for _, e := range b.elements {
		if e.EffectiveName() == name {
			return e
		}
	}
	return nil
}

// emitElement produces one instance of e. Cardinality is the caller's
// concern (emitChild repeats this per the parent's declared occurrence
// bounds); emitElement itself always emits exactly one node.
func (b *builder) emitElement(e *model.ElementSpec) (*xmltree.Node, error) {
	if e.Reference != "" {
		if e.TypeName != "" || len(e.Contents) > 0 {
			return nil, xsderr.Format("element %s has both a reference and inline contents", e.Reference)
		}
		target := b.findByName(e.Reference)
		if target == nil {
			return nil, xsderr.Builder("reference not found: %s", e.Reference)
		}
		return b.emitElement(target)
	}

	node := &xmltree.Node{Tag: e.EffectiveName()}
	switch {
	case e.TypeName != "":
		if len(e.Contents) > 0 {
			return nil, xsderr.Format("element %s has both a type reference and inline contents", e.EffectiveName())
		}
		if err := b.emitNamedType(node, e.TypeName); err != nil {
			return nil, err
		}
	case len(e.Contents) > 0:
		for _, t := range e.Contents {
			if err := b.emitTypeSpec(node, t); err != nil {
				return nil, err
			}
		}
	default:
		return nil, xsderr.Format("element %s has neither a type, a reference, nor inline contents", e.EffectiveName())
	}
	return node, nil
}

// emitNamedType resolves name the way every named-type dispatch in this
// pipeline does: try it as a bare primitive chain first, and only consult
// the type table if that produces nothing.
func (b *builder) emitNamedType(node *xmltree.Node, name string) error {
	if v, ok := b.gen.Generate([]string{name}); ok {
		node.Text = &v
		return nil
	}
	t, ok := b.types[name]
	if !ok {
		return xsderr.DataTypeErr("cannot find data type: %s", name)
	}
	return b.emitTypeSpec(node, t)
}

func (b *builder) emitTypeSpec(node *xmltree.Node, t *model.TypeSpec) error {
	if len(t.TypeInfo) > 0 {
		if len(t.Elements) > 0 || len(t.Groups) > 0 {
			return xsderr.Format("type %s is both a simple leaf and a structured type", t.Name)
		}
		v, ok := b.gen.Generate(t.TypeInfo)
		if !ok {
			return xsderr.DataTypeErr("no output generated for type %s", t.Name)
		}
		node.Text = &v
	} else {
		for _, e := range t.Elements {
			if err := b.emitChild(node, e); err != nil {
				return err
			}
		}
		for _, g := range t.Groups {
			for _, e := range g.Elements {
				if err := b.emitChild(node, e); err != nil {
					return err
				}
			}
		}
	}
	for _, a := range t.Attributes {
		if err := b.emitAttribute(node, a); err != nil {
			return err
		}
	}
	return nil
}

// emitChild repeats e's instance count onto parent.Children. Groups are
// flattened at collection time (model.GroupSpec.Elements is already the
// group's direct children), so only the element's own occurrence bounds
// drive repetition here — the group's bounds are informational.
func (b *builder) emitChild(parent *xmltree.Node, e *model.ElementSpec) error {
	count := instanceCount(e.Min, e.Max, b.cfg.maxUnbounded())
	for i := 0; i < count; i++ {
		child, err := b.emitElement(e)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)
	}
	return nil
}

// instanceCount resolves §4.5.3's cardinality policy: emit at least one
// instance and at least min, respect an explicit upper bound, and emit cap
// instances for an unbounded upper bound (min instances when min is larger).
func instanceCount(min int, max *int, cap int) int {
	n := min
	if n < 1 {
		n = 1
	}
	if max != nil {
		if n > *max {
			n = *max
		}
		return n
	}
	if n < cap {
		n = cap
	}
	return n
}

func (b *builder) emitAttribute(node *xmltree.Node, a *model.AttributeSpec) error {
	if a.Use == xsdast.Prohibited {
		return nil
	}

	var value string
	var ok bool
	switch {
	case a.TypeName != "":
		value, ok = b.gen.Generate([]string{a.TypeName})
		if !ok {
			t, found := b.types[a.TypeName]
			if !found {
				return xsderr.DataTypeErr("cannot find data type: %s", a.TypeName)
			}
			if len(t.Elements) > 0 || len(t.Groups) > 0 || len(t.Attributes) > 0 {
				return xsderr.Format("attribute %s type %s is not a simple type", a.Name, a.TypeName)
			}
			value, ok = b.gen.Generate(t.TypeInfo)
			if !ok {
				return xsderr.DataTypeErr("no output generated for attribute %s", a.Name)
			}
		}
	case a.InlineType != nil:
		if len(a.InlineType.Elements) > 0 || len(a.InlineType.Groups) > 0 {
			return xsderr.Format("attribute %s embedded type is not a simple type", a.Name)
		}
		value, ok = b.gen.Generate(a.InlineType.TypeInfo)
		if !ok {
			return xsderr.DataTypeErr("no output generated for attribute %s", a.Name)
		}
	default:
		return xsderr.Format("attribute %s has neither a type name nor an embedded type", a.Name)
	}

	node.Attrs = append(node.Attrs, xmltree.Attr{Name: a.Name, Value: value})
	return nil
}
