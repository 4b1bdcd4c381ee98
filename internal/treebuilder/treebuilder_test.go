package treebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raduionita-wk/xsdgen/internal/model"
	"github.com/raduionita-wk/xsdgen/internal/valuegen"
	"github.com/raduionita-wk/xsdgen/internal/xsdast"
)

func ptr(n int) *int { return &n }

func TestBuildSimpleLeafRoot(t *testing.T) {
	root := &model.ElementSpec{Name: "code", TypeName: "integer", Min: 1, Max: ptr(1)}
	node, err := Build(root, map[string]*model.TypeSpec{}, []*model.ElementSpec{root}, valuegen.New(1), Config{})
	require.NoError(t, err)
	assert.Equal(t, "code", node.Tag)
	require.NotNil(t, node.Text)
}

func TestBuildStructuredTypeWithAttributeAndChildren(t *testing.T) {
	types := map[string]*model.TypeSpec{
		"Order": {
			Name: "Order",
			Elements: []*model.ElementSpec{
				{Name: "item", TypeName: "string", Min: 1, Max: ptr(1)},
			},
			Attributes: []*model.AttributeSpec{
				{Name: "currency", Use: xsdast.Optional, TypeName: "string"},
			},
		},
	}
	root := &model.ElementSpec{Name: "order", TypeName: "Order", Min: 1, Max: ptr(1)}
	elements := []*model.ElementSpec{root}

	node, err := Build(root, types, elements, valuegen.New(5), Config{})
	require.NoError(t, err)
	assert.Equal(t, "order", node.Tag)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "item", node.Children[0].Tag)
	require.Len(t, node.Attrs, 1)
	assert.Equal(t, "currency", node.Attrs[0].Name)
}

func TestBuildResolvesReference(t *testing.T) {
	target := &model.ElementSpec{Name: "item", TypeName: "string", Min: 1, Max: ptr(1)}
	ref := &model.ElementSpec{Reference: "item", Min: 1, Max: ptr(1)}
	elements := []*model.ElementSpec{target, ref}

	node, err := Build(ref, map[string]*model.TypeSpec{}, elements, valuegen.New(2), Config{})
	require.NoError(t, err)
	assert.Equal(t, "item", node.Tag)
}

func TestBuildUnresolvedReferenceFails(t *testing.T) {
	ref := &model.ElementSpec{Reference: "missing", Min: 1, Max: ptr(1)}
	_, err := Build(ref, map[string]*model.TypeSpec{}, []*model.ElementSpec{ref}, valuegen.New(2), Config{})
	require.Error(t, err)
}

func TestBuildUnboundedCardinalityIsCapped(t *testing.T) {
	types := map[string]*model.TypeSpec{
		"Order": {
			Name: "Order",
			Elements: []*model.ElementSpec{
				{Name: "item", TypeName: "string", Min: 1, Max: nil},
			},
		},
	}
	root := &model.ElementSpec{Name: "order", TypeName: "Order", Min: 1, Max: ptr(1)}
	node, err := Build(root, types, []*model.ElementSpec{root}, valuegen.New(9), Config{MaxUnbounded: 2})
	require.NoError(t, err)
	assert.Len(t, node.Children, 2)
}

func TestBuildUnknownNamedTypeFails(t *testing.T) {
	root := &model.ElementSpec{Name: "order", TypeName: "Nope", Min: 1, Max: ptr(1)}
	_, err := Build(root, map[string]*model.TypeSpec{}, []*model.ElementSpec{root}, valuegen.New(1), Config{})
	require.Error(t, err)
}

func TestBuildProhibitedAttributeIsSkipped(t *testing.T) {
	types := map[string]*model.TypeSpec{
		"Order": {
			Name: "Order",
			Attributes: []*model.AttributeSpec{
				{Name: "legacy", Use: xsdast.Prohibited},
			},
		},
	}
	root := &model.ElementSpec{Name: "order", TypeName: "Order", Min: 1, Max: ptr(1)}
	node, err := Build(root, types, []*model.ElementSpec{root}, valuegen.New(1), Config{})
	require.NoError(t, err)
	assert.Empty(t, node.Attrs)
}
