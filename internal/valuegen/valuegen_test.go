package valuegen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoolean(t *testing.T) {
	g := New(1)
	v, ok := g.Generate([]string{"boolean"})
	require.True(t, ok)
	assert.Contains(t, []string{"true", "false"}, v)
}

func TestGenerateIntegerIsParseable(t *testing.T) {
	g := New(42)
	v, ok := g.Generate([]string{"integer"})
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^-?\d+$`), v)
}

func TestGeneratePositiveIntegerIsPositive(t *testing.T) {
	g := New(7)
	for i := 0; i < 20; i++ {
		v, ok := g.Generate([]string{"positiveInteger"})
		require.True(t, ok)
		assert.Regexp(t, regexp.MustCompile(`^\d+$`), v)
		assert.NotEqual(t, "0", v)
	}
}

func TestGenerateStringPattern(t *testing.T) {
	g := New(3)
	v, ok := g.Generate([]string{"string", "[0-9]{5}"})
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]{5}$`), v)
}

func TestGenerateUnsupportedShapeReturnsNotOK(t *testing.T) {
	g := New(1)
	_, ok := g.Generate([]string{"base64Binary"})
	assert.False(t, ok)

	_, ok = g.Generate(nil)
	assert.False(t, ok)

	_, ok = g.Generate([]string{"integer", "minLength", "3"})
	assert.False(t, ok)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := New(99)
	b := New(99)
	va, _ := a.Generate([]string{"string"})
	vb, _ := b.Generate([]string{"string"})
	assert.Equal(t, va, vb)
}
