package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/models"
)

func TestCustomRangeSetAndGet(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	record, err := repo.Set(tank.ID, config.ParameterPH, 6.4, 7.2)
	require.NoError(t, err)
	assert.Equal(t, tank.ID, record.TankID)
	assert.Equal(t, config.ParameterPH, record.Parameter)
	assert.Equal(t, 6.4, record.SafeLow)
	assert.Equal(t, 7.2, record.SafeHigh)

	fetched, err := repo.Get(tank.ID, config.ParameterPH)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, record.ID, fetched.ID)
}

func TestCustomRangeUpsertKeepsSingleRow(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	first, err := repo.Set(tank.ID, config.ParameterNitrate, 10, 30)
	require.NoError(t, err)

	second, err := repo.Set(tank.ID, config.ParameterNitrate, 15, 40)
	require.NoError(t, err)

	// Exactly one row per (tank, parameter), reflecting the latest bounds.
	assert.EqualValues(t, 1, count(t, db, &models.CustomRange{}, "tank_id = ? AND parameter = ?", tank.ID, config.ParameterNitrate))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 15.0, second.SafeLow)
	assert.Equal(t, 40.0, second.SafeHigh)

	// The record returned from the conflict path is the surviving row,
	// not whatever id the insert attempt reported.
	stored, err := repo.Get(tank.ID, config.ParameterNitrate)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, second.ID)
	assert.Equal(t, stored.SafeLow, second.SafeLow)
}

func TestCustomRangeSetInvalidBounds(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	_, err := repo.Set(tank.ID, config.ParameterPH, 8, 6)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	_, err = repo.Set(tank.ID, config.ParameterPH, 7, 7)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	// Validation fails fast: nothing is written.
	assert.Zero(t, count(t, db, &models.CustomRange{}, "tank_id = ?", tank.ID))
}

func TestCustomRangeSetInvalidParameter(t *testing.T) {
	db := testDB(t)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, NewTankRepository(db), "Tank")

	_, err := repo.Set(tank.ID, config.Parameter("salinity"), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)

	_, err = repo.Get(tank.ID, config.Parameter("salinity"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
}

func TestCustomRangeSetUnknownTank(t *testing.T) {
	repo := NewCustomRangeRepository(testDB(t))

	// Validates fine but trips the foreign key, which is re-classified
	// rather than leaked as a raw sqlite error.
	_, err := repo.Set(999, config.ParameterPH, 6, 8)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = repo.Set(0, config.ParameterPH, 6, 8)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCustomRangeGetAbsentIsDistinctFromDefault(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	// No override stored: nil, even though the defaults table has a pH
	// range.
	got, err := repo.Get(tank.ID, config.ParameterPH)
	require.NoError(t, err)
	assert.Nil(t, got)

	// An override equal to the global default is still an override.
	defaults := config.DefaultSafeRanges()[config.ParameterPH]
	_, err = repo.Set(tank.ID, config.ParameterPH, defaults.Low, defaults.High)
	require.NoError(t, err)

	got, err = repo.Get(tank.ID, config.ParameterPH)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, defaults, got.Range())
}

func TestCustomRangeGetAllForTank(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	all, err := repo.GetAllForTank(tank.ID)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Set(tank.ID, config.ParameterPH, 6.4, 7.2)
	require.NoError(t, err)
	_, err = repo.Set(tank.ID, config.ParameterKH, 2, 5)
	require.NoError(t, err)

	all, err = repo.GetAllForTank(tank.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, config.Range{Low: 6.4, High: 7.2}, all[config.ParameterPH])
	assert.Equal(t, config.Range{Low: 2, High: 5}, all[config.ParameterKH])

	// A tank that does not exist yields an empty map, not an error.
	all, err = repo.GetAllForTank(999)
	require.NoError(t, err)
	assert.Empty(t, all)

	// An invalid id, conversely, is rejected.
	_, err = repo.GetAllForTank(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCustomRangeDelete(t *testing.T) {
	db := testDB(t)
	tanks := NewTankRepository(db)
	repo := NewCustomRangeRepository(db)
	tank := mustAddTank(t, tanks, "Tank")

	_, err := repo.Set(tank.ID, config.ParameterGH, 4, 12)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(tank.ID, config.ParameterGH))

	got, err := repo.Get(tank.ID, config.ParameterGH)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.Delete(tank.ID, config.ParameterGH)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
