package models

import (
	"context"
	"testing"

	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shipmentDeps struct {
	destination *ShipDestination
	standard    *QualityStandard
	unit        *Unit
	crop        *Crop
}

func seedShipmentDeps(t *testing.T, ctx context.Context) shipmentDeps {
	t.Helper()
	cropRefs := seedCropDeps(t, ctx)
	crop, err := CreateCrop(ctx, &NewCrop{Name: "Cabbage", GroupId: cropRefs.group.ID, ColorId: cropRefs.color.ID, UnitId: cropRefs.unit.ID})
	require.NoError(t, err)
	destination, err := CreateShipDestination(ctx, &NewShipDestination{Name: "City Market", CountryCode: "SG", Port: "Keppel"})
	require.NoError(t, err)
	standard, err := CreateQualityStandard(ctx, &NewQualityStandard{Name: "Grade A"})
	require.NoError(t, err)
	// shipping unit distinct from the crop's default unit
	unit, err := CreateUnit(ctx, &NewUnit{Name: "Carton", Abbreviation: "ct"})
	require.NoError(t, err)
	return shipmentDeps{destination: destination, standard: standard, unit: unit, crop: crop}
}

func (d shipmentDeps) line() NewShipmentDetail {
	return NewShipmentDetail{
		ShipDestinationId: d.destination.ID,
		QualityStandardId: d.standard.ID,
		UnitId:            d.unit.ID,
		CropId:            d.crop.ID,
	}
}

func TestCreateShipment(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	first := deps.line()
	first.Quantity = decimal.NewFromInt(40)
	first.UnitPrice = decimal.NewFromFloat(3.25)
	second := deps.line()
	second.Quantity = decimal.NewFromInt(12)

	shipment, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		VesselName:     "MV Harvest Moon",
		Details:        []NewShipmentDetail{first, second},
	})
	require.NoError(t, err)

	fetched, err := GetShipment(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, "MV Harvest Moon", fetched.VesselName)
	assert.Len(t, fetched.Details, 2)
}

func TestCreateShipmentNoLines(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
	})
	require.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateShipmentDuplicateNumber(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	line := deps.line()
	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{line},
	})
	require.NoError(t, err)

	_, err = CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-11"),
		Details:        []NewShipmentDetail{line},
	})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
}

// Earlier lines win over later ones, and within one line the destination is
// checked before the quality standard, which is checked before the unit.
func TestShipmentLineValidationOrder(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	good := deps.line()
	badStandard := good
	badStandard.QualityStandardId = 999
	badUnit := good
	badUnit.UnitId = 999

	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{good, badStandard, badUnit},
	})
	require.Error(t, err)
	assert.Equal(t, "quality standard not found", err.Error())
}

func TestShipmentLineFieldOrderWithinLine(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	// everything broken on one line: destination reported first
	bad := NewShipmentDetail{ShipDestinationId: 999, QualityStandardId: 999, UnitId: 999, CropId: 999}
	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{deps.line(), bad},
	})
	require.Error(t, err)
	assert.Equal(t, "ship destination not found", err.Error())
}

func TestUpdateShipmentReplacesLines(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	line := deps.line()
	line.Quantity = decimal.NewFromInt(40)
	shipment, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{line, line},
	})
	require.NoError(t, err)

	updatedLine := line
	updatedLine.Quantity = decimal.NewFromInt(7)
	_, err = UpdateShipment(ctx, shipment.ID, &NewShipment{
		ShipmentNumber: "SH-0001-R",
		ShipmentDate:   mustDate(t, "2026-05-12"),
		Details:        []NewShipmentDetail{updatedLine},
	})
	require.NoError(t, err)

	fetched, err := GetShipment(ctx, shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, "SH-0001-R", fetched.ShipmentNumber)
	require.Len(t, fetched.Details, 1)
	assert.True(t, fetched.Details[0].Quantity.Equal(decimal.NewFromInt(7)))

	count, err := utils.ResourceCountWhere[ShipmentDetail](ctx, "shipment_id = ?", shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteShipmentRemovesLines(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	line := deps.line()
	shipment, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{line},
	})
	require.NoError(t, err)

	_, err = DeleteShipment(ctx, shipment.ID)
	require.NoError(t, err)

	count, err := utils.ResourceCountWhere[ShipmentDetail](ctx, "shipment_id = ?", shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteShipDestinationInUse(t *testing.T) {
	ctx := setupTestDB(t)
	deps := seedShipmentDeps(t, ctx)

	_, err := CreateShipment(ctx, &NewShipment{
		ShipmentNumber: "SH-0001",
		ShipmentDate:   mustDate(t, "2026-05-10"),
		Details:        []NewShipmentDetail{deps.line()},
	})
	require.NoError(t, err)

	_, err = DeleteShipDestination(ctx, deps.destination.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "used by shipment")
}
