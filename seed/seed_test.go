package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrdering(t *testing.T) {
	registry := Registry()
	require.NotEmpty(t, registry)

	for i := 1; i < len(registry); i++ {
		assert.LessOrEqual(t, registry[i-1].Config().Order, registry[i].Config().Order,
			"registry must be sorted by order hint")
	}
}

func TestRegistryNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Registry() {
		name := s.Config().Name
		assert.False(t, seen[name], "duplicate seeder name %q", name)
		seen[name] = true
		assert.NotEmpty(t, s.Config().Description)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("services")
	require.True(t, ok)
	assert.Equal(t, "services", s.Config().Name)

	_, ok = Lookup("does-not-exist")
	assert.False(t, ok)
}
