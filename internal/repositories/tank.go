package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/models"
)

// TankRepository handles tank profile persistence.
type TankRepository struct {
	db *gorm.DB
}

func NewTankRepository(db *gorm.DB) *TankRepository {
	return &TankRepository{db: db}
}

// Add creates a tank and returns the stored record, including the
// generated id and timestamps. volumeL may be nil (unknown volume) but
// must be positive when set.
func (r *TankRepository) Add(name string, volumeL *float64, notes string) (*models.Tank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tank name must be a non-empty string", apperrors.ErrInvalidInput)
	}
	if err := validateVolume(volumeL); err != nil {
		return nil, err
	}

	tank := &models.Tank{
		Name:    name,
		VolumeL: volumeL,
		Notes:   strings.TrimSpace(notes),
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tank).Error; err != nil {
			return err
		}
		return tx.First(tank, tank.ID).Error
	})
	if err != nil {
		return nil, classifyConstraint(err, apperrors.ErrInvalidInput)
	}
	return tank, nil
}

// Rename changes a tank's name. A rename of a tank that does not exist
// is surfaced as ErrNotFound rather than silently ignored, so callers
// holding a cached tank list know to refresh it.
func (r *TankRepository) Rename(tankID int64, newName string) (*models.Tank, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("%w: tank name must be a non-empty string", apperrors.ErrInvalidInput)
	}

	return r.updateTank(tankID, map[string]interface{}{"name": newName})
}

// UpdateVolume sets a tank's volume in litres. The volume must be a
// positive number.
func (r *TankRepository) UpdateVolume(tankID int64, volumeL float64) (*models.Tank, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}
	if err := validateVolume(&volumeL); err != nil {
		return nil, err
	}

	return r.updateTank(tankID, map[string]interface{}{"volume_l": volumeL})
}

// SetCO2Schedule stores the hours (24h clock, end exclusive) during
// which CO2 injection runs for this tank. Used to suppress "CO2 low"
// drop-checker warnings while injection is expected to be off.
func (r *TankRepository) SetCO2Schedule(tankID int64, onHour, offHour int) (*models.Tank, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}
	if onHour < 0 || onHour > 23 || offHour < 0 || offHour > 23 {
		return nil, fmt.Errorf("%w: CO2 schedule hours must be between 0 and 23", apperrors.ErrInvalidInput)
	}

	return r.updateTank(tankID, map[string]interface{}{
		"co2_on_hour":  onHour,
		"co2_off_hour": offHour,
	})
}

// Remove deletes exactly the tank with the given id. The store's
// foreign keys cascade the deletion to the tank's water tests, custom
// ranges, and maintenance entries; rows belonging to other tanks are
// untouched.
func (r *TankRepository) Remove(tankID int64) error {
	if err := validateTankID(tankID); err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", tankID).Delete(&models.Tank{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: tank %d", apperrors.ErrNotFound, tankID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return classifyConstraint(err, apperrors.ErrInvalidInput)
	}
	return nil
}

// GetByID returns a tank, or nil if no tank has that id.
func (r *TankRepository) GetByID(tankID int64) (*models.Tank, error) {
	if err := validateTankID(tankID); err != nil {
		return nil, err
	}

	var tank models.Tank
	err := r.db.First(&tank, tankID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &tank, nil
}

// List returns all tanks ordered by id.
func (r *TankRepository) List() ([]models.Tank, error) {
	var tanks []models.Tank
	if err := r.db.Order("id").Find(&tanks).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return tanks, nil
}

func (r *TankRepository) updateTank(tankID int64, fields map[string]interface{}) (*models.Tank, error) {
	var tank models.Tank
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tank{}).Where("id = ?", tankID).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: tank %d", apperrors.ErrNotFound, tankID)
		}
		return tx.First(&tank, tankID).Error
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, classifyConstraint(err, apperrors.ErrInvalidInput)
	}
	return &tank, nil
}

func validateVolume(volumeL *float64) error {
	if volumeL == nil {
		return nil
	}
	if !finite(*volumeL) || *volumeL <= 0 {
		return fmt.Errorf("%w: tank volume must be a positive number, got %v", apperrors.ErrInvalidInput, *volumeL)
	}
	return nil
}
