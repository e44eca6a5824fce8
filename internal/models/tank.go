package models

import (
	"time"
)

// Tank is an aquarium profile. Deleting a tank cascades to all of its
// water tests, custom ranges, and maintenance entries.
type Tank struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	VolumeL    *float64  `gorm:"column:volume_l" json:"volume_l"`
	Notes      string    `gorm:"column:notes" json:"notes"`
	CO2OnHour  *int      `gorm:"column:co2_on_hour" json:"co2_on_hour"`
	CO2OffHour *int      `gorm:"column:co2_off_hour" json:"co2_off_hour"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tank) TableName() string {
	return "tanks"
}
