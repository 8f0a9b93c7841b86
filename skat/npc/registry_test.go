package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, len(builtinPersonas), r.Count())
	all := r.All()
	require.Len(t, all, len(builtinPersonas))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	// registries do not share persona values
	r.Get("rock").Brain.Caution = 0
	assert.Equal(t, 0.85, DefaultRegistry().Get("rock").Brain.Caution)
}

func TestRegistry_LoadFromJSON(t *testing.T) {
	r := DefaultRegistry()
	err := r.LoadFromJSON([]byte(`[
		{"id": "rock", "name": "Boulder", "brain": {"aggression": 0.3, "caution": 0.9}},
		{"id": "", "name": "skipped"},
		{"id": "shark", "name": "Shark", "tagline": "counts every card",
		 "brain": {"aggression": 0.7, "caution": 0.6, "randomness": 0.1}}
	]`))
	require.NoError(t, err)
	assert.Equal(t, len(builtinPersonas)+1, r.Count())
	assert.Equal(t, "Boulder", r.Get("rock").Name)
	assert.Equal(t, 0.6, r.Get("shark").Brain.Caution)

	assert.Error(t, r.LoadFromJSON([]byte(`{"id": "x"}`)))
}
