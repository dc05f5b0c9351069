package models

import (
	"testing"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateColorDuplicateName(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateColor(ctx, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 255})
	require.NoError(t, err)

	_, err = CreateColor(ctx, &NewColor{Name: "Blue", Red: 10, Green: 10, Blue: 200})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
}

// A write racing past the pre-write check is stopped by the unique index,
// and the store error remaps to the same DuplicateEntityError the check
// raises. The direct Create bypasses the service-level guard on purpose.
func TestDuplicateCaughtByStoreIndex(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateColor(ctx, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 255})
	require.NoError(t, err)

	db := config.GetDB()
	dup := Color{Name: "Blue", Red: 10, Green: 10, Blue: 200}
	err = db.WithContext(ctx).Create(&dup).Error
	require.Error(t, err)
	assert.False(t, utils.IsDuplicateEntity(err))

	err = utils.TranslateStoreError(err, "name")
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
	assert.Equal(t, "duplicate name", err.Error())
}

func TestUpdateColorKeepsOwnName(t *testing.T) {
	ctx := setupTestDB(t)

	color, err := CreateColor(ctx, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 255})
	require.NoError(t, err)

	// same name, new channels; must not trip the uniqueness check
	updated, err := UpdateColor(ctx, color.ID, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, updated.Blue)
}

func TestUpdateColorTakenName(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateColor(ctx, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 255})
	require.NoError(t, err)
	red, err := CreateColor(ctx, &NewColor{Name: "Red", Red: 255, Green: 0, Blue: 0})
	require.NoError(t, err)

	_, err = UpdateColor(ctx, red.ID, &NewColor{Name: "Blue", Red: 255, Green: 0, Blue: 0})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
}

func TestCreateColorChannelOutOfRange(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateColor(ctx, &NewColor{Name: "Overbright", Red: 300, Green: 0, Blue: 0})
	require.Error(t, err)

	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "Red")
}

func TestDeleteColorInUse(t *testing.T) {
	ctx := setupTestDB(t)

	color, err := CreateColor(ctx, &NewColor{Name: "Blue", Red: 0, Green: 0, Blue: 255})
	require.NoError(t, err)
	group, err := CreateGroup(ctx, &NewGroup{Name: "Brassicas"})
	require.NoError(t, err)
	unit, err := CreateUnit(ctx, &NewUnit{Name: "Crate", Abbreviation: "cr"})
	require.NoError(t, err)
	_, err = CreateCrop(ctx, &NewCrop{Name: "Cabbage", GroupId: group.ID, ColorId: color.ID, UnitId: unit.ID})
	require.NoError(t, err)

	_, err = DeleteColor(ctx, color.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "used by crop")

	// still present
	_, err = GetColor(ctx, color.ID)
	assert.NoError(t, err)
}

func TestDeleteColorNotFound(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := DeleteColor(ctx, 999)
	require.Error(t, err)
	assert.True(t, utils.IsEntityNotFound(err))
	assert.Equal(t, "color not found", err.Error())
}

func TestColorHexCode(t *testing.T) {
	c := Color{Red: 0, Green: 128, Blue: 255}
	assert.Equal(t, "#0080FF", c.HexCode())
}
