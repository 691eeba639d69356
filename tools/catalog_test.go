package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	all := All()
	assert.Len(t, all, 11)

	seen := make(map[string]bool)
	for _, tool := range all {
		assert.False(t, seen[tool.ID], "duplicate id %s", tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Category)
	}
}

func TestByID(t *testing.T) {
	tool, found := ByID("shodan")
	assert.True(t, found)
	assert.True(t, tool.RequiresApiKey)

	_, found = ByID("metasploit")
	assert.False(t, found)
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory("intelligence"), 5)
	assert.Empty(t, ByCategory("forensics"))
}

func TestCategories(t *testing.T) {
	categories := Categories()
	assert.Contains(t, categories, "network")
	assert.Contains(t, categories, "intelligence")

	seen := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, seen[c])
		seen[c] = true
	}
}
