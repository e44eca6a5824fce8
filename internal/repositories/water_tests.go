package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/chemistry"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/models"
)

// WaterTestRepository handles water test records.
type WaterTestRepository struct {
	db *gorm.DB
}

func NewWaterTestRepository(db *gorm.DB) *WaterTestRepository {
	return &WaterTestRepository{db: db}
}

// Save validates and stores a water test, returning the stored record.
// Every recorded reading is sanity-checked against the hard physical
// limits for its parameter before anything is written. An unset date
// defaults to now.
func (r *WaterTestRepository) Save(test *models.WaterTest) (*models.WaterTest, error) {
	if test == nil {
		return nil, fmt.Errorf("%w: water test must not be nil", apperrors.ErrInvalidInput)
	}
	if err := validateTankID(test.TankID); err != nil {
		return nil, err
	}
	for _, param := range config.Parameters() {
		if v := test.Reading(param); v != nil {
			if err := chemistry.ValidateReading(param, *v); err != nil {
				return nil, err
			}
		}
	}
	if test.CO2Indicator != nil && !config.ValidCO2Indicator(*test.CO2Indicator) {
		return nil, fmt.Errorf("%w: CO2 indicator must be Green, Blue or Yellow, got %q",
			apperrors.ErrInvalidInput, *test.CO2Indicator)
	}
	if test.Date.IsZero() {
		test.Date = time.Now()
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		return tx.First(test, test.ID).Error
	})
	if err != nil {
		return nil, classifyConstraint(err, apperrors.ErrInvalidInput)
	}
	return test, nil
}

// LatestForTank returns the most recent water test for a tank, or nil
// when the tank has no tests.
func (r *WaterTestRepository) LatestForTank(tankID int64) (*models.WaterTest, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}

	var test models.WaterTest
	err := r.db.Where("tank_id = ?", tankID).Order("date DESC").First(&test).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &test, nil
}

// ListForTank returns a tank's water tests, newest first.
func (r *WaterTestRepository) ListForTank(tankID int64) ([]models.WaterTest, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}

	var tests []models.WaterTest
	if err := r.db.Where("tank_id = ?", tankID).Order("date DESC").Find(&tests).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return tests, nil
}
