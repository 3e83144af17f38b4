package static

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListHasUniqueCompleteDestinations(t *testing.T) {
	destinations := NewCatalog().List()
	require.NotEmpty(t, destinations)

	seen := map[string]struct{}{}
	for _, destination := range destinations {
		assert.NotEmpty(t, destination.ID)
		assert.NotEmpty(t, destination.Name)
		assert.NotEmpty(t, destination.Description)
		assert.NotEmpty(t, destination.Hours)
		_, dup := seen[destination.ID]
		assert.False(t, dup, "duplicate id %s", destination.ID)
		seen[destination.ID] = struct{}{}
	}
}

func TestCatalogListReturnsCopy(t *testing.T) {
	catalog := NewCatalog()
	first := catalog.List()
	first[0].Name = "changed"

	assert.NotEqual(t, "changed", catalog.List()[0].Name)
}

func TestCatalogMentionsPagelaranOnce(t *testing.T) {
	var hits int
	for _, destination := range NewCatalog().List() {
		text := strings.ToLower(destination.Name + " " + destination.Description + " " + destination.ID)
		if strings.Contains(text, "pagelaran") {
			hits++
		}
	}

	assert.Equal(t, 1, hits)
}
