package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseToggle(t *testing.T) {
	sel := NewSelection("1")

	sel.Choose("Tamanho", "G")
	name, ok := sel.Chosen("Tamanho")
	assert.True(t, ok)
	assert.Equal(t, "G", name)

	// Choosing the same name again deselects.
	sel.Choose("Tamanho", "G")
	_, ok = sel.Chosen("Tamanho")
	assert.False(t, ok)
	assert.True(t, sel.Empty())
}

func TestChooseReplacesWithinType(t *testing.T) {
	sel := NewSelection("1")

	sel.Choose("Tamanho", "P")
	sel.Choose("Tamanho", "G")

	name, ok := sel.Chosen("Tamanho")
	assert.True(t, ok)
	assert.Equal(t, "G", name, "at most one selection per type")
}

func TestChooseIndependentTypes(t *testing.T) {
	sel := NewSelection("1")

	sel.Choose("Tamanho", "G")
	sel.Choose("Sabor", "Calabresa")

	size, _ := sel.Chosen("Tamanho")
	flavor, _ := sel.Chosen("Sabor")
	assert.Equal(t, "G", size)
	assert.Equal(t, "Calabresa", flavor)
}

func TestResetClearsChoicesAndRebinds(t *testing.T) {
	sel := NewSelection("1")
	sel.Choose("Tamanho", "G")
	first := sel.SessionID()

	sel.Reset("2")

	assert.True(t, sel.Empty())
	assert.Equal(t, "2", sel.ProductID())
	assert.NotEqual(t, first, sel.SessionID())
}
