package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/models"
)

// CustomRangeRepository handles per-tank safe-range overrides.
type CustomRangeRepository struct {
	db *gorm.DB
}

func NewCustomRangeRepository(db *gorm.DB) *CustomRangeRepository {
	return &CustomRangeRepository{db: db}
}

// Get returns the override for (tankID, parameter), or nil when none is
// stored. A nil result is distinct from an override whose bounds happen
// to equal the global default.
func (r *CustomRangeRepository) Get(tankID int64, parameter config.Parameter) (*models.CustomRange, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}
	if !parameter.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidParameter, parameter)
	}

	var cr models.CustomRange
	err := r.db.Where("tank_id = ? AND parameter = ?", tankID, parameter).First(&cr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &cr, nil
}

// Set stores or replaces the override for (tankID, parameter) and
// returns the resulting record. The write is a single ON CONFLICT
// upsert keyed on the unique (tank_id, parameter) index, so at most one
// row ever exists per pair and there is no read-modify-write window.
func (r *CustomRangeRepository) Set(tankID int64, parameter config.Parameter, low, high float64) (*models.CustomRange, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}
	if !parameter.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidParameter, parameter)
	}
	if !finite(low) || !finite(high) {
		return nil, fmt.Errorf("%w: bounds must be finite numbers", apperrors.ErrInvalidRange)
	}
	if high <= low {
		return nil, fmt.Errorf("%w: safe_high (%g) must be strictly greater than safe_low (%g)",
			apperrors.ErrInvalidRange, high, low)
	}

	record := &models.CustomRange{
		TankID:    tankID,
		Parameter: parameter,
		SafeLow:   low,
		SafeHigh:  high,
	}
	var stored models.CustomRange
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tank_id"}, {Name: "parameter"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"safe_low":   low,
				"safe_high":  high,
				"updated_at": time.Now(),
			}),
		}).Create(record).Error; err != nil {
			return err
		}
		// Re-read by the natural key into a fresh struct. On the conflict
		// path the id gorm back-fills into record does not identify the
		// surviving row, so it must not be trusted.
		return tx.Where("tank_id = ? AND parameter = ?", tankID, parameter).First(&stored).Error
	})
	if err != nil {
		return nil, classifyConstraint(err, apperrors.ErrInvalidRange)
	}
	return &stored, nil
}

// GetAllForTank returns every override for a tank keyed by parameter.
// A tank without overrides (or one that does not exist) yields an empty
// map; only an invalid tank id is an error.
func (r *CustomRangeRepository) GetAllForTank(tankID int64) (map[config.Parameter]config.Range, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}

	var rows []models.CustomRange
	if err := r.db.Where("tank_id = ?", tankID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	out := make(map[config.Parameter]config.Range, len(rows))
	for _, row := range rows {
		out[row.Parameter] = row.Range()
	}
	return out, nil
}

// Delete removes the override for (tankID, parameter). Deleting an
// override that does not exist is ErrNotFound.
func (r *CustomRangeRepository) Delete(tankID int64, parameter config.Parameter) error {
	if err := validateTankID(tankID); err != nil {
		return err
	}
	if !parameter.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidParameter, parameter)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("tank_id = ? AND parameter = ?", tankID, parameter).Delete(&models.CustomRange{})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: no custom range for tank %d parameter %s", apperrors.ErrNotFound, tankID, parameter)
		}
		return nil
	})
}
