package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aqualog/aqualog/internal/config"
)

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "180.0 L (47.6 US gal)", formatVolume(180, config.UnitSystemMetric))
	assert.Equal(t, "47.6 US gal (180.0 L)", formatVolume(180, config.UnitSystemImperial))
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "24.0 °C", formatTemperature(24, config.UnitSystemMetric))
	assert.Equal(t, "75.2 °F", formatTemperature(24, config.UnitSystemImperial))
}
