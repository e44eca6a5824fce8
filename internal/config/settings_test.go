package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrInitializeSettingsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	created, settings := LoadOrInitializeSettings(path)
	assert.True(t, created)
	assert.Equal(t, UnitSystemMetric, settings.UnitSystem)
	assert.Nil(t, settings.DefaultTankID)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	tankID := int64(3)
	settings := &Settings{
		UnitSystem:    UnitSystemImperial,
		DefaultTankID: &tankID,
	}
	require.NoError(t, settings.SaveTo(path))

	created, loaded := LoadOrInitializeSettings(path)
	assert.False(t, created)
	assert.Equal(t, UnitSystemImperial, loaded.UnitSystem)
	require.NotNil(t, loaded.DefaultTankID)
	assert.Equal(t, tankID, *loaded.DefaultTankID)
}
