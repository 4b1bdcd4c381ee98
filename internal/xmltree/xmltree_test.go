package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLeafWithAttribute(t *testing.T) {
	text := "42"
	n := &Node{Tag: "id", Attrs: []Attr{{Name: "unit", Value: "cm"}}, Text: &text}
	out, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.1" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<id unit="cm">42</id>`)
}

func TestRenderSelfClosingNode(t *testing.T) {
	n := &Node{Tag: "empty"}
	out, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, out, "<empty/>")
}

func TestRenderEscapesText(t *testing.T) {
	text := `a & b < c "q"`
	n := &Node{Tag: "x", Text: &text}
	out, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, out, "&amp;")
	assert.Contains(t, out, "&lt;")
	assert.NotContains(t, out, `a & b`)
}

func TestRenderNestedChildren(t *testing.T) {
	childText := "1"
	root := &Node{Tag: "order", Children: []*Node{
		{Tag: "item", Text: &childText},
	}}
	out, err := Render(root)
	require.NoError(t, err)
	assert.Contains(t, out, "<order>")
	assert.Contains(t, out, "<item>1</item>")
	assert.Contains(t, out, "</order>")
}
