package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, c := range all {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Benefits, "city %s has no benefits", c.ID)
		assert.False(t, seen[c.ID], "duplicate city id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestByID(t *testing.T) {
	city, ok := ByID("quezon_city")
	require.True(t, ok)
	assert.Equal(t, "Quezon City", city.Name)

	_, ok = ByID("atlantis")
	assert.False(t, ok)
}
