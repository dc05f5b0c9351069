package models

import (
	"context"
	"time"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shipment is a dated outbound delivery with one or more lines. Lines are
// owned by the shipment and replaced wholesale on update.
type Shipment struct {
	RecordStamp
	ShipmentNumber string           `gorm:"size:50;not null;uniqueIndex" json:"shipment_number"`
	ShipmentDate   time.Time        `gorm:"not null" json:"shipment_date"`
	VesselName     string           `gorm:"size:100" json:"vessel_name"`
	Notes          string           `gorm:"size:500" json:"notes"`
	Details        []ShipmentDetail `gorm:"foreignKey:ShipmentId;constraint:OnDelete:CASCADE" json:"details"`
}

// ShipmentDetail is one line of a shipment: a quantity of produce at a
// quality tier, bound for a destination.
type ShipmentDetail struct {
	ID                int             `gorm:"primaryKey" json:"id"`
	ShipmentId        int             `gorm:"not null;index" json:"shipment_id"`
	ShipDestinationId int             `gorm:"not null;index" json:"ship_destination_id"`
	QualityStandardId int             `gorm:"not null;index" json:"quality_standard_id"`
	UnitId            int             `gorm:"not null;index" json:"unit_id"`
	CropId            int             `gorm:"not null;index" json:"crop_id"`
	Quantity          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`

	ShipDestination *ShipDestination `gorm:"foreignKey:ShipDestinationId" json:"ship_destination,omitempty"`
	QualityStandard *QualityStandard `gorm:"foreignKey:QualityStandardId" json:"quality_standard,omitempty"`
	Unit            *Unit            `gorm:"foreignKey:UnitId" json:"unit,omitempty"`
	Crop            *Crop            `gorm:"foreignKey:CropId" json:"crop,omitempty"`
}

type NewShipment struct {
	ShipmentNumber string              `json:"shipment_number" validate:"required,max=50"`
	ShipmentDate   time.Time           `json:"shipment_date" validate:"required"`
	VesselName     string              `json:"vessel_name" validate:"max=100"`
	Notes          string              `json:"notes" validate:"max=500"`
	Details        []NewShipmentDetail `json:"details" validate:"required,min=1,dive"`
}

type NewShipmentDetail struct {
	ShipDestinationId int             `json:"ship_destination_id" validate:"required"`
	QualityStandardId int             `json:"quality_standard_id" validate:"required"`
	UnitId            int             `json:"unit_id" validate:"required"`
	CropId            int             `json:"crop_id" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
}

var shipmentSortColumns = map[string]string{
	"shipmentNumber": "shipment_number",
	"shipmentDate":   "shipment_date",
	"createdAt":      "created_at",
}

// validateDetails checks every line's references with one existence query per
// referenced kind, then walks the lines in order. The first broken reference
// wins, checked per line as destination, then quality standard, then unit,
// then crop, so the reported error is stable however the lines arrived.
func validateDetails(ctx context.Context, details []NewShipmentDetail) error {
	destinationIds := make([]int, 0, len(details))
	standardIds := make([]int, 0, len(details))
	unitIds := make([]int, 0, len(details))
	cropIds := make([]int, 0, len(details))
	for _, line := range details {
		destinationIds = append(destinationIds, line.ShipDestinationId)
		standardIds = append(standardIds, line.QualityStandardId)
		unitIds = append(unitIds, line.UnitId)
		cropIds = append(cropIds, line.CropId)
	}

	validDestinations, err := utils.FetchValidIds[ShipDestination](ctx, destinationIds)
	if err != nil {
		return err
	}
	validStandards, err := utils.FetchValidIds[QualityStandard](ctx, standardIds)
	if err != nil {
		return err
	}
	validUnits, err := utils.FetchValidIds[Unit](ctx, unitIds)
	if err != nil {
		return err
	}
	validCrops, err := utils.FetchValidIds[Crop](ctx, cropIds)
	if err != nil {
		return err
	}

	for _, line := range details {
		if !validDestinations[line.ShipDestinationId] {
			return utils.NewEntityNotFound("ship destination")
		}
		if !validStandards[line.QualityStandardId] {
			return utils.NewEntityNotFound("quality standard")
		}
		if !validUnits[line.UnitId] {
			return utils.NewEntityNotFound("unit")
		}
		if !validCrops[line.CropId] {
			return utils.NewEntityNotFound("crop")
		}
		if line.Quantity.IsNegative() {
			return &utils.ValidationError{Fields: map[string]string{"Quantity": "min"}}
		}
		if line.UnitPrice.IsNegative() {
			return &utils.ValidationError{Fields: map[string]string{"UnitPrice": "min"}}
		}
	}
	return nil
}

func (input *NewShipment) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Shipment](ctx, "shipment_number", input.ShipmentNumber, exceptId); err != nil {
		return err
	}
	return validateDetails(ctx, input.Details)
}

func (input *NewShipment) buildDetails() []ShipmentDetail {
	details := make([]ShipmentDetail, 0, len(input.Details))
	for _, line := range input.Details {
		details = append(details, ShipmentDetail{
			ShipDestinationId: line.ShipDestinationId,
			QualityStandardId: line.QualityStandardId,
			UnitId:            line.UnitId,
			CropId:            line.CropId,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
		})
	}
	return details
}

func CreateShipment(ctx context.Context, input *NewShipment) (*Shipment, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	shipment := Shipment{
		ShipmentNumber: input.ShipmentNumber,
		ShipmentDate:   input.ShipmentDate,
		VesselName:     input.VesselName,
		Notes:          input.Notes,
		Details:        input.buildDetails(),
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&shipment).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "shipment_number")
	}
	return &shipment, nil
}

// UpdateShipment replaces the header and all lines in one transaction.
func UpdateShipment(ctx context.Context, id int, input *NewShipment) (*Shipment, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	shipment, err := utils.FetchModel[Shipment](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(shipment).Updates(map[string]interface{}{
			"ShipmentNumber": input.ShipmentNumber,
			"ShipmentDate":   input.ShipmentDate,
			"VesselName":     input.VesselName,
			"Notes":          input.Notes,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("shipment_id = ?", id).Delete(&ShipmentDetail{}).Error; err != nil {
			return err
		}
		details := input.buildDetails()
		for i := range details {
			details[i].ShipmentId = id
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}
		shipment.Details = details
		return nil
	})
	if err != nil {
		return nil, utils.TranslateStoreError(err, "shipment_number")
	}
	return shipment, nil
}

func DeleteShipment(ctx context.Context, id int) (*Shipment, error) {

	shipment, err := utils.FetchModel[Shipment](ctx, id, "Details")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shipment_id = ?", id).Delete(&ShipmentDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(shipment).Error
	})
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

func GetShipment(ctx context.Context, id int) (*Shipment, error) {
	return utils.FetchModel[Shipment](ctx, id, "Details")
}

func GetShipments(ctx context.Context) ([]*Shipment, error) {
	return utils.FetchAllModels[Shipment](ctx, "Details")
}

func SearchShipments(ctx context.Context, criteria SearchCriteria) (*SearchResult[Shipment], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, shipmentSortColumns, "shipment_number")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[Shipment](db.WithContext(ctx), "shipment_number", sortColumn, criteria)
}
