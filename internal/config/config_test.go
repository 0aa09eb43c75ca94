package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documind/hnswindex/internal/hnsw"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultPort, s.Port)
	assert.Equal(t, defaultDimensions, s.HNSW.Dimensions)
	assert.Equal(t, defaultCapacity, s.HNSW.Capacity)
	assert.Equal(t, hnsw.Contiguous, s.HNSW.Storage)
	assert.Equal(t, hnsw.Heuristic, s.HNSW.Shrink)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	s, err := Load([]string{
		"-port=9000",
		"-dimensions=64",
		"-capacity=500",
		"-m=32",
		"-storage=per-slot",
		"-shrink=greedy",
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, s.Port)
	assert.Equal(t, 64, s.HNSW.Dimensions)
	assert.Equal(t, 500, s.HNSW.Capacity)
	assert.Equal(t, 32, s.HNSW.M)
	assert.Equal(t, hnsw.PerSlot, s.HNSW.Storage)
	assert.Equal(t, hnsw.Greedy, s.HNSW.Shrink)
}

func TestLoadEnvOverridesDefaultButNotFlag(t *testing.T) {
	t.Setenv("VECTOR_SERVICE_PORT", "7000")

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 7000, s.Port)

	s, err = Load([]string{"-port=1234"})
	require.NoError(t, err)
	assert.Equal(t, 1234, s.Port)
}

func TestLoadRejectsInvalidStorage(t *testing.T) {
	_, err := Load([]string{"-storage=nonsense"})
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	_, err := Load([]string{"-m=1"})
	assert.Error(t, err)
}
