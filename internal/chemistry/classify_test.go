package chemistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualog/aqualog/internal/config"
)

func TestClassifyAmmoniaBoundary(t *testing.T) {
	// The danger threshold applies to the unionized NH3 fraction, at
	// 0.05 ppm strictly.
	assert.Equal(t, StatusSafe, ClassifyAmmonia(0.0))
	assert.Equal(t, StatusSafe, ClassifyAmmonia(0.04))
	assert.Equal(t, StatusSafe, ClassifyAmmonia(0.05))
	assert.Equal(t, StatusDanger, ClassifyAmmonia(0.06))
}

func TestClassifyPHBoundsInclusive(t *testing.T) {
	rng := config.DefaultSafeRanges()[config.ParameterPH]
	require.Equal(t, config.Range{Low: 6.0, High: 8.0}, rng)

	assert.Equal(t, StatusSafe, Classify(6.0, rng))
	assert.Equal(t, StatusSafe, Classify(7.0, rng))
	assert.Equal(t, StatusSafe, Classify(8.0, rng))
	assert.Equal(t, StatusWarning, Classify(5.9, rng))
	assert.Equal(t, StatusWarning, Classify(8.1, rng))
}

func TestClassifyNitrateZeroIsAlwaysSafe(t *testing.T) {
	rng := config.DefaultSafeRanges()[config.ParameterNitrate]
	require.Equal(t, 20.0, rng.Low)

	// A nitrate-free tank must never raise a phantom low warning.
	assert.Equal(t, StatusSafe, ClassifyNitrate(0, rng))
	assert.Equal(t, StatusWarning, ClassifyNitrate(10, rng))
	assert.Equal(t, StatusSafe, ClassifyNitrate(30, rng))
	assert.Equal(t, StatusWarning, ClassifyNitrate(60, rng))
}

func TestKHAndGHClassifyIndependentlyOfPH(t *testing.T) {
	defaults := config.DefaultSafeRanges()

	// A pH that is out of range must not drag KH/GH with it; each
	// parameter is judged against its own bounds.
	assert.Equal(t, StatusWarning, Classify(5.0, defaults[config.ParameterPH]))
	assert.Equal(t, StatusSafe, Classify(6.0, defaults[config.ParameterKH]))
	assert.Equal(t, StatusSafe, Classify(8.0, defaults[config.ParameterGH]))
}

func TestClassifyCO2Indicator(t *testing.T) {
	status, err := ClassifyCO2Indicator(config.CO2IndicatorGreen)
	require.NoError(t, err)
	assert.Equal(t, StatusSafe, status)

	status, err = ClassifyCO2Indicator(config.CO2IndicatorBlue)
	require.NoError(t, err)
	assert.Equal(t, StatusWarning, status)

	status, err = ClassifyCO2Indicator(config.CO2IndicatorYellow)
	require.NoError(t, err)
	assert.Equal(t, StatusDanger, status)

	_, err = ClassifyCO2Indicator("Purple")
	assert.Error(t, err)
}

func TestEvaluateParameterRoutesNitrate(t *testing.T) {
	defaults := config.DefaultSafeRanges()

	assert.Equal(t, StatusSafe, EvaluateParameter(config.ParameterNitrate, 0, defaults[config.ParameterNitrate]))
	assert.Equal(t, StatusWarning, EvaluateParameter(config.ParameterTemperature, 32, defaults[config.ParameterTemperature]))
	assert.Equal(t, StatusSafe, EvaluateParameter(config.ParameterTemperature, 24, defaults[config.ParameterTemperature]))
}

func TestValidateReading(t *testing.T) {
	require.NoError(t, ValidateReading(config.ParameterPH, 7.0))
	require.NoError(t, ValidateReading(config.ParameterTemperature, 0))
	require.NoError(t, ValidateReading(config.ParameterTemperature, 40))

	assert.Error(t, ValidateReading(config.ParameterPH, 14.5))
	assert.Error(t, ValidateReading(config.ParameterTemperature, -1))
	assert.Error(t, ValidateReading(config.ParameterNitrate, 600))
	assert.Error(t, ValidateReading(config.Parameter("salinity"), 1.0))
}
