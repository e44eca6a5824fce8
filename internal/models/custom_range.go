package models

import (
	"time"

	"github.com/aqualog/aqualog/internal/config"
)

// CustomRange is a per-tank override of the global default safe range
// for one parameter. At most one row exists per (tank_id, parameter);
// the pair is backed by a unique index that the upsert conflicts on.
type CustomRange struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	TankID    int64            `gorm:"column:tank_id" json:"tank_id"`
	Parameter config.Parameter `gorm:"column:parameter" json:"parameter"`
	SafeLow   float64          `gorm:"column:safe_low" json:"safe_low"`
	SafeHigh  float64          `gorm:"column:safe_high" json:"safe_high"`
	UpdatedAt time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

func (CustomRange) TableName() string {
	return "custom_ranges"
}

// Range returns the override as a bounds pair.
func (cr CustomRange) Range() config.Range {
	return config.Range{Low: cr.SafeLow, High: cr.SafeHigh}
}
