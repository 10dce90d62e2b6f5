package carve_test

import (
	"errors"
	"testing"

	"github.com/relicio/carvex/internal/carve"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, carve.DefaultConfig().Validate())
}

func TestConfigValidateChunkSizeTooSmall(t *testing.T) {
	cfg := carve.DefaultConfig()
	cfg.ChunkSize = carve.MinChunkSize - 1

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, carve.ErrInvalidConfig))
}

func TestConfigValidateOverlapMustBeSmallerThanChunk(t *testing.T) {
	cfg := carve.DefaultConfig()
	cfg.OverlapSize = cfg.ChunkSize

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, carve.ErrInvalidConfig))
}

func TestConfigValidateOverlapMustBePositive(t *testing.T) {
	cfg := carve.DefaultConfig()
	cfg.OverlapSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, carve.ErrInvalidConfig))
}

func TestConfigValidateMinExceedsMax(t *testing.T) {
	cfg := carve.DefaultConfig()
	cfg.MinFileSize = 100
	cfg.MaxFileSize = 50

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, carve.ErrInvalidConfig))
}

func TestConfigValidateZeroMaxMeansUnlimited(t *testing.T) {
	cfg := carve.DefaultConfig()
	cfg.MinFileSize = 1 << 30
	cfg.MaxFileSize = 0

	require.NoError(t, cfg.Validate())
}
