package models

import (
	"time"

	"github.com/aqualog/aqualog/internal/config"
)

// WaterTest is one timestamped set of test-kit readings for a tank.
// Readings are nullable: most kits don't measure every parameter, and
// an absent reading is distinct from a reading of zero.
type WaterTest struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	TankID       int64     `gorm:"column:tank_id" json:"tank_id"`
	Date         time.Time `gorm:"column:date" json:"date"`
	PH           *float64  `gorm:"column:ph" json:"ph"`
	Ammonia      *float64  `gorm:"column:ammonia" json:"ammonia"`
	Nitrite      *float64  `gorm:"column:nitrite" json:"nitrite"`
	Nitrate      *float64  `gorm:"column:nitrate" json:"nitrate"`
	Temperature  *float64  `gorm:"column:temperature" json:"temperature"`
	KH           *float64  `gorm:"column:kh" json:"kh"`
	GH           *float64  `gorm:"column:gh" json:"gh"`
	CO2Indicator *string   `gorm:"column:co2_indicator" json:"co2_indicator"`
	Notes        string    `gorm:"column:notes" json:"notes"`
}

func (WaterTest) TableName() string {
	return "water_tests"
}

// Reading returns the stored value for a numeric parameter, or nil if
// it was not measured.
func (wt *WaterTest) Reading(param config.Parameter) *float64 {
	switch param {
	case config.ParameterPH:
		return wt.PH
	case config.ParameterAmmonia:
		return wt.Ammonia
	case config.ParameterNitrite:
		return wt.Nitrite
	case config.ParameterNitrate:
		return wt.Nitrate
	case config.ParameterTemperature:
		return wt.Temperature
	case config.ParameterKH:
		return wt.KH
	case config.ParameterGH:
		return wt.GH
	}
	return nil
}

// SetReading stores a value for a numeric parameter.
func (wt *WaterTest) SetReading(param config.Parameter, value float64) {
	v := value
	switch param {
	case config.ParameterPH:
		wt.PH = &v
	case config.ParameterAmmonia:
		wt.Ammonia = &v
	case config.ParameterNitrite:
		wt.Nitrite = &v
	case config.ParameterNitrate:
		wt.Nitrate = &v
	case config.ParameterTemperature:
		wt.Temperature = &v
	case config.ParameterKH:
		wt.KH = &v
	case config.ParameterGH:
		wt.GH = &v
	}
}
