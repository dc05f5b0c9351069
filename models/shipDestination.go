package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// ShipDestination is a place produce ships to, e.g. a packing house or market.
type ShipDestination struct {
	RecordStamp
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CountryCode string `gorm:"size:2" json:"country_code"`
	Port        string `gorm:"size:100" json:"port"`
}

type NewShipDestination struct {
	Name        string `json:"name" validate:"required,max=100"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2,alpha"`
	Port        string `json:"port" validate:"max=100"`
}

var shipDestinationSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func (input *NewShipDestination) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[ShipDestination](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateShipDestination(ctx context.Context, input *NewShipDestination) (*ShipDestination, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	destination := ShipDestination{
		Name:        input.Name,
		CountryCode: input.CountryCode,
		Port:        input.Port,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&destination).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &destination, nil
}

func UpdateShipDestination(ctx context.Context, id int, input *NewShipDestination) (*ShipDestination, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	destination, err := utils.FetchModel[ShipDestination](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(destination).Updates(map[string]interface{}{
		"Name":        input.Name,
		"CountryCode": input.CountryCode,
		"Port":        input.Port,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return destination, nil
}

func DeleteShipDestination(ctx context.Context, id int) (*ShipDestination, error) {

	destination, err := utils.FetchModel[ShipDestination](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if destination is referenced by shipment lines
	count, err := utils.ResourceCountWhere[ShipmentDetail](ctx, "ship_destination_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("ship destination is used by shipment")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(destination).Error
	if err != nil {
		return nil, err
	}
	return destination, nil
}

func GetShipDestination(ctx context.Context, id int) (*ShipDestination, error) {
	return utils.FetchModel[ShipDestination](ctx, id)
}

func GetShipDestinations(ctx context.Context) ([]*ShipDestination, error) {
	return utils.FetchAllModels[ShipDestination](ctx)
}

func SearchShipDestinations(ctx context.Context, criteria SearchCriteria) (*SearchResult[ShipDestination], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, shipDestinationSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[ShipDestination](db.WithContext(ctx), "name", sortColumn, criteria)
}
