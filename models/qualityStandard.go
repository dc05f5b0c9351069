package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// QualityStandard is a grading tier applied to shipment lines.
type QualityStandard struct {
	RecordStamp
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

type NewQualityStandard struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

var qualityStandardSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func (input *NewQualityStandard) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[QualityStandard](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateQualityStandard(ctx context.Context, input *NewQualityStandard) (*QualityStandard, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	standard := QualityStandard{
		Name:        input.Name,
		Description: input.Description,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&standard).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &standard, nil
}

func UpdateQualityStandard(ctx context.Context, id int, input *NewQualityStandard) (*QualityStandard, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	standard, err := utils.FetchModel[QualityStandard](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(standard).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return standard, nil
}

func DeleteQualityStandard(ctx context.Context, id int) (*QualityStandard, error) {

	standard, err := utils.FetchModel[QualityStandard](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if standard is referenced by shipment lines
	count, err := utils.ResourceCountWhere[ShipmentDetail](ctx, "quality_standard_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("quality standard is used by shipment")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(standard).Error
	if err != nil {
		return nil, err
	}
	return standard, nil
}

func GetQualityStandard(ctx context.Context, id int) (*QualityStandard, error) {
	return utils.FetchModel[QualityStandard](ctx, id)
}

func GetQualityStandards(ctx context.Context) ([]*QualityStandard, error) {
	return utils.FetchAllModels[QualityStandard](ctx)
}

func SearchQualityStandards(ctx context.Context, criteria SearchCriteria) (*SearchResult[QualityStandard], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, qualityStandardSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[QualityStandard](db.WithContext(ctx), "name", sortColumn, criteria)
}
