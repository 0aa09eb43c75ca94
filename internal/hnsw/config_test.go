package hnsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig(128, 1000)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Contiguous, cfg.Storage)
	assert.Equal(t, Heuristic, cfg.Shrink)
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	base := DefaultConfig(128, 1000)

	cases := []func(*Config){
		func(c *Config) { c.Dimensions = 0 },
		func(c *Config) { c.Capacity = 0 },
		func(c *Config) { c.M = 1 },
		func(c *Config) { c.EfConstruction = 0 },
		func(c *Config) { c.Storage = StorageBackend(99) },
		func(c *Config) { c.Shrink = ShrinkStrategy(99) },
	}

	for _, mutate := range cases {
		cfg := base
		mutate(&cfg)
		assert.Error(t, cfg.Validate())
	}
}

func TestParseStorageBackend(t *testing.T) {
	b, err := ParseStorageBackend("contiguous")
	require.NoError(t, err)
	assert.Equal(t, Contiguous, b)

	b, err = ParseStorageBackend("per-slot")
	require.NoError(t, err)
	assert.Equal(t, PerSlot, b)

	_, err = ParseStorageBackend("bogus")
	assert.Error(t, err)
}

func TestParseShrinkStrategy(t *testing.T) {
	s, err := ParseShrinkStrategy("heuristic")
	require.NoError(t, err)
	assert.Equal(t, Heuristic, s)

	s, err = ParseShrinkStrategy("greedy")
	require.NoError(t, err)
	assert.Equal(t, Greedy, s)

	_, err = ParseShrinkStrategy("bogus")
	assert.Error(t, err)
}

func TestStorageBackendString(t *testing.T) {
	assert.Equal(t, "contiguous", Contiguous.String())
	assert.Equal(t, "per-slot", PerSlot.String())
}

func TestShrinkStrategyString(t *testing.T) {
	assert.Equal(t, "heuristic", Heuristic.String())
	assert.Equal(t, "greedy", Greedy.String())
}
