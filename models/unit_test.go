package models

import (
	"testing"

	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUnitDuplicateAbbreviation(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateUnit(ctx, &NewUnit{Name: "Crate", Abbreviation: "cr"})
	require.NoError(t, err)

	// name differs but abbreviation collides
	_, err = CreateUnit(ctx, &NewUnit{Name: "Carton", Abbreviation: "cr"})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
	assert.Contains(t, err.Error(), "abbreviation")
}

func TestUpdateUnitKeepsOwnAbbreviation(t *testing.T) {
	ctx := setupTestDB(t)

	unit, err := CreateUnit(ctx, &NewUnit{Name: "Crate", Abbreviation: "cr"})
	require.NoError(t, err)

	updated, err := UpdateUnit(ctx, unit.ID, &NewUnit{Name: "Crates", Abbreviation: "cr"})
	require.NoError(t, err)
	assert.Equal(t, "Crates", updated.Name)
}

func TestDeleteUnitUsedByShipment(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{deps.line()},
	})
	require.NoError(t, err)

	_, err = DeleteUnit(ctx, deps.unit.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "used by shipment")
}
