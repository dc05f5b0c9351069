package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/shopspring/decimal"
)

// Field is a physical growing area.
type Field struct {
	RecordStamp
	Name    string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Acreage decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"acreage"`
	Notes   string          `gorm:"size:500" json:"notes"`
}

type NewField struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Acreage decimal.Decimal `json:"acreage"`
	Notes   string          `json:"notes" validate:"max=500"`
}

var fieldSortColumns = map[string]string{
	"name":      "name",
	"acreage":   "acreage",
	"createdAt": "created_at",
}

func (input *NewField) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.Acreage.IsNegative() {
		return &utils.ValidationError{Fields: map[string]string{"Acreage": "min"}}
	}
	if err := utils.ValidateUnique[Field](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateField(ctx context.Context, input *NewField) (*Field, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	field := Field{
		Name:    input.Name,
		Acreage: input.Acreage,
		Notes:   input.Notes,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&field).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &field, nil
}

func UpdateField(ctx context.Context, id int, input *NewField) (*Field, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	field, err := utils.FetchModel[Field](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(field).Updates(map[string]interface{}{
		"Name":    input.Name,
		"Acreage": input.Acreage,
		"Notes":   input.Notes,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return field, nil
}

func DeleteField(ctx context.Context, id int) (*Field, error) {

	field, err := utils.FetchModel[Field](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if field has planting schedules
	count, err := utils.ResourceCountWhere[PlantingSchedule](ctx, "field_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("field is used by planting schedule")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(field).Error
	if err != nil {
		return nil, err
	}
	return field, nil
}

func GetField(ctx context.Context, id int) (*Field, error) {
	return utils.FetchModel[Field](ctx, id)
}

func GetFields(ctx context.Context) ([]*Field, error) {
	return utils.FetchAllModels[Field](ctx)
}

func SearchFields(ctx context.Context, criteria SearchCriteria) (*SearchResult[Field], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, fieldSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[Field](db.WithContext(ctx), "name", sortColumn, criteria)
}
