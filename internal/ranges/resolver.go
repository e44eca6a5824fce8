// Package ranges resolves the effective safe range for a (tank,
// parameter) pair: the tank's custom override when one exists, the
// global default otherwise.
package ranges

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/models"
	"github.com/aqualog/aqualog/internal/repositories"
)

// Resolver combines the custom range store with an immutable default
// range table injected at construction. Overrides are queried fresh on
// every call so that a just-edited tank configuration takes effect
// immediately; this is a low-frequency single-user path, correctness
// beats latency.
type Resolver struct {
	ranges   *repositories.CustomRangeRepository
	defaults config.RangeTable
}

func NewResolver(ranges *repositories.CustomRangeRepository, defaults config.RangeTable) *Resolver {
	return &Resolver{ranges: ranges, defaults: defaults}
}

// EffectiveRange returns the bounds that apply to a parameter in a
// given tank.
func (r *Resolver) EffectiveRange(tankID int64, parameter config.Parameter) (config.Range, error) {
	if !parameter.Valid() {
		return config.Range{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidParameter, parameter)
	}

	custom, err := r.ranges.Get(tankID, parameter)
	if err != nil {
		return config.Range{}, err
	}
	if custom != nil {
		return custom.Range(), nil
	}

	rng, ok := r.defaults[parameter]
	if !ok {
		return config.Range{}, fmt.Errorf("%w: no default range for %q", apperrors.ErrInvalidParameter, parameter)
	}
	return rng, nil
}

// EffectiveRanges returns the full range table for a tank with its
// overrides applied, plus which parameters are overridden.
func (r *Resolver) EffectiveRanges(tankID int64) (map[config.Parameter]config.Range, map[config.Parameter]bool, error) {
	overrides, err := r.ranges.GetAllForTank(tankID)
	if err != nil {
		return nil, nil, err
	}

	out := make(map[config.Parameter]config.Range, len(r.defaults))
	custom := make(map[config.Parameter]bool, len(overrides))
	for param, rng := range r.defaults {
		out[param] = rng
	}
	for param, rng := range overrides {
		out[param] = rng
		custom[param] = true
	}
	return out, custom, nil
}

// CO2Schedule returns the CO2 on-period for a tank: the tank's own
// schedule when both hours are set, the global default otherwise.
func CO2Schedule(tank *models.Tank) (onHour, offHour int) {
	if tank != nil && tank.CO2OnHour != nil && tank.CO2OffHour != nil {
		return *tank.CO2OnHour, *tank.CO2OffHour
	}
	return config.DefaultCO2OnHour, config.DefaultCO2OffHour
}

// CO2On reports whether hour falls inside the on-period. Schedules may
// span midnight (e.g. 22 to 6).
func CO2On(onHour, offHour, hour int) bool {
	if onHour <= offHour {
		return onHour <= hour && hour < offHour
	}
	return onHour <= hour || hour < offHour
}
