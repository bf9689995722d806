package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "serum wajah", CleanText("  Serum   Wajah!  "))
	assert.Equal(t, "niacinamide brightening", CleanText("Niacinamide 10% + Brightening"))
	assert.Equal(t, "", CleanText("123 456 %%%"))
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"Somethinc Niacinamide 10% Serum!!",
		"SKINTIFIC - 5X Ceramide Barrier Moisturizer",
		"   spasi   berlebih   ",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once))
	}
}
