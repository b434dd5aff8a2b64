package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/supermack-billing/pkg/search"
)

func TestContains(t *testing.T) {
	assert.True(t, search.Contains("Apple", "app"))
	assert.True(t, search.Contains("BANANA", "nan"))
	assert.True(t, search.Contains("Straße", "STRASSE"))
	assert.True(t, search.Contains("anything", ""))
	assert.False(t, search.Contains("Apple", "pear"))
}

func TestAnyContains(t *testing.T) {
	assert.True(t, search.AnyContains("doe", "INV-1001", "John Doe"))
	assert.False(t, search.AnyContains("smith", "INV-1001", "John Doe"))
	assert.True(t, search.AnyContains(""))
}
