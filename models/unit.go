package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// Unit is a measure for crop quantities, e.g. bushel, crate, pound.
// Name and abbreviation are each unique on their own.
type Unit struct {
	RecordStamp
	Name         string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Abbreviation string `gorm:"size:10;not null;uniqueIndex" json:"abbreviation"`
}

type NewUnit struct {
	Name         string `json:"name" validate:"required,max=50"`
	Abbreviation string `json:"abbreviation" validate:"required,max=10"`
}

var unitSortColumns = map[string]string{
	"name":         "name",
	"abbreviation": "abbreviation",
	"createdAt":    "created_at",
}

func (input *NewUnit) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Unit](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Unit](ctx, "abbreviation", input.Abbreviation, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateUnit(ctx context.Context, input *NewUnit) (*Unit, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	unit := Unit{
		Name:         input.Name,
		Abbreviation: input.Abbreviation,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&unit).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &unit, nil
}

func UpdateUnit(ctx context.Context, id int, input *NewUnit) (*Unit, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	unit, err := utils.FetchModel[Unit](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(unit).Updates(map[string]interface{}{
		"Name":         input.Name,
		"Abbreviation": input.Abbreviation,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return unit, nil
}

func DeleteUnit(ctx context.Context, id int) (*Unit, error) {

	unit, err := utils.FetchModel[Unit](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if unit is used by crop or shipment line
	count, err := utils.ResourceCountWhere[Crop](ctx, "unit_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("unit is used by crop")
	}
	count, err = utils.ResourceCountWhere[ShipmentDetail](ctx, "unit_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("unit is used by shipment")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(unit).Error
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func GetUnit(ctx context.Context, id int) (*Unit, error) {
	return utils.FetchModel[Unit](ctx, id)
}

func GetUnits(ctx context.Context) ([]*Unit, error) {
	return utils.FetchAllModels[Unit](ctx)
}

func SearchUnits(ctx context.Context, criteria SearchCriteria) (*SearchResult[Unit], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, unitSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[Unit](db.WithContext(ctx), "name", sortColumn, criteria)
}
