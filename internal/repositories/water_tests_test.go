package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/models"
)

func TestWaterTestSaveAndLatest(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewWaterTestRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	older := &models.WaterTest{TankID: tank.ID, Date: time.Now().Add(-24 * time.Hour)}
	older.SetReading(config.ParameterPH, 6.8)
	_, err := repo.Save(older)
	require.NoError(t, err)

	newer := &models.WaterTest{TankID: tank.ID}
	newer.SetReading(config.ParameterPH, 7.2)
	newer.SetReading(config.ParameterAmmonia, 0.25)
	newer.SetReading(config.ParameterTemperature, 24)
	saved, err := repo.Save(newer)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.Date.IsZero())

	latest, err := repo.LatestForTank(tank.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, saved.ID, latest.ID)
	require.NotNil(t, latest.PH)
	assert.Equal(t, 7.2, *latest.PH)
	assert.Nil(t, latest.Nitrate)
}

func TestWaterTestSaveValidatesReadings(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewWaterTestRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	bad := &models.WaterTest{TankID: tank.ID}
	bad.SetReading(config.ParameterPH, 15)
	_, err := repo.Save(bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	bad = &models.WaterTest{TankID: tank.ID}
	bad.SetReading(config.ParameterTemperature, 90)
	_, err = repo.Save(bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	color := "Purple"
	bad = &models.WaterTest{TankID: tank.ID, CO2Indicator: &color}
	_, err = repo.Save(bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// Nothing was written.
	assert.Zero(t, count(t, db, &models.WaterTest{}, "tank_id = ?", tank.ID))
}

func TestWaterTestSaveUnknownTank(t *testing.T) {
	repo := NewWaterTestRepository(testDB(t))

	test := &models.WaterTest{TankID: 999}
	test.SetReading(config.ParameterPH, 7.0)
	_, err := repo.Save(test)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	test = &models.WaterTest{TankID: -3}
	_, err = repo.Save(test)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestWaterTestLatestForTankEmpty(t *testing.T) {
	db := testDB(t)
	tank := mustAddTank(t, NewTankRepository(db), "Tank")
	repo := NewWaterTestRepository(db)

	latest, err := repo.LatestForTank(tank.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestWaterTestListForTank(t *testing.T) {
	db := testDB(t)
	tank := mustAddTank(t, NewTankRepository(db), "Tank")
	repo := NewWaterTestRepository(db)

	for i := 0; i < 3; i++ {
		test := &models.WaterTest{TankID: tank.ID, Date: time.Now().Add(time.Duration(-i) * time.Hour)}
		test.SetReading(config.ParameterNitrate, float64(10*i))
		_, err := repo.Save(test)
		require.NoError(t, err)
	}

	tests, err := repo.ListForTank(tank.ID)
	require.NoError(t, err)
	require.Len(t, tests, 3)
	// Newest first.
	assert.True(t, tests[0].Date.After(tests[1].Date))
	assert.True(t, tests[1].Date.After(tests[2].Date))
}
