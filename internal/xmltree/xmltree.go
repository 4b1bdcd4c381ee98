// Package xmltree is the downstream collaborator the tree builder hands
// its finished output to: a minimal ordered tree of tagged nodes, and a
// renderer that serializes it as an XML 1.1 document.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Attr is one ordered attribute on a Node. A slice, not a map, because
// attribute order in the rendered document should follow collection
// order, not an arbitrary map iteration.
type Attr struct {
	Name  string
	Value string
}

// Node is one element in the output instance document. Text and Children
// are mutually exclusive in every tree the builder produces: a node is
// either a simple-typed leaf (Text set) or a structured element (Children
// set), though either may carry Attrs.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     *string
	Children []*Node
}

// Render serializes root as a complete XML 1.1 document, UTF-8 encoded.
func Render(root *Node) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.1" encoding="UTF-8"?>` + "\n")
	if err := writeNode(&buf, root, 0); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func writeNode(buf *bytes.Buffer, n *Node, depth int) error {
	indent(buf, depth)
	buf.WriteByte('<')
	buf.WriteString(n.Tag)
	for _, a := range n.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		if err := xml.EscapeText(buf, []byte(a.Value)); err != nil {
			return fmt.Errorf("escaping attribute %s on <%s>: %w", a.Name, n.Tag, err)
		}
		buf.WriteByte('"')
	}

	if n.Text == nil && len(n.Children) == 0 {
		buf.WriteString("/>")
		return nil
	}
	buf.WriteByte('>')

	switch {
	case n.Text != nil:
		if err := xml.EscapeText(buf, []byte(*n.Text)); err != nil {
			return fmt.Errorf("escaping text of <%s>: %w", n.Tag, err)
		}
	case len(n.Children) > 0:
		for _, c := range n.Children {
			buf.WriteByte('\n')
			if err := writeNode(buf, c, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		indent(buf, depth)
	}

	buf.WriteString("</")
	buf.WriteString(n.Tag)
	buf.WriteByte('>')
	return nil
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
