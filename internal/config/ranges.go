package config

// Range is a (low, high) bound pair classifying a parameter reading as
// acceptable for aquarium livestock.
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether v falls inside the range, bounds inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// RangeTable maps each parameter to a safe range.
type RangeTable map[Parameter]Range

// NH3DangerThresholdPpm is the unionized-ammonia concentration above
// which a reading is flagged as dangerous. The threshold applies to the
// toxic NH3 fraction, never to raw total ammonia.
const NH3DangerThresholdPpm = 0.05

// CO2 injection is assumed on between these hours (24h clock, end
// exclusive) unless a tank carries its own schedule. A "CO2 low"
// drop-checker reading outside the on-period is not a warning.
const (
	DefaultCO2OnHour  = 9
	DefaultCO2OffHour = 17
)

// DefaultSafeRanges returns the global default safe-range table. The
// table is constructed once at process start and passed into the range
// resolver; per-tank overrides shadow individual entries.
func DefaultSafeRanges() RangeTable {
	return RangeTable{
		ParameterTemperature: {Low: 18.0, High: 28.0},
		ParameterAmmonia:     {Low: 0.0, High: 0.0},
		ParameterNitrite:     {Low: 0.0, High: 0.0},
		ParameterNitrate:     {Low: 20.0, High: 50.0},
		ParameterPH:          {Low: 6.0, High: 8.0},
		ParameterKH:          {Low: 4.0, High: 8.0},
		ParameterGH:          {Low: 6.0, High: 10.0},
	}
}

// HardLimits returns the absolute plausible bounds per parameter.
// Readings outside these limits are treated as data-entry errors
// regardless of any configured safe range.
func HardLimits() RangeTable {
	return RangeTable{
		ParameterTemperature: {Low: 0.0, High: 40.0},
		ParameterPH:          {Low: 0.0, High: 14.0},
		ParameterAmmonia:     {Low: 0.0, High: 10.0},
		ParameterNitrite:     {Low: 0.0, High: 10.0},
		ParameterNitrate:     {Low: 0.0, High: 500.0},
		ParameterKH:          {Low: 0.0, High: 20.0},
		ParameterGH:          {Low: 0.0, High: 30.0},
	}
}
