package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// Crop is a plantable variety, grouped and color-coded, measured in a
// default unit.
type Crop struct {
	RecordStamp
	Name    string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Variety string `gorm:"size:100" json:"variety"`
	GroupId int    `gorm:"not null;index" json:"group_id"`
	ColorId int    `gorm:"not null;index" json:"color_id"`
	UnitId  int    `gorm:"not null;index" json:"unit_id"`

	Group *Group `gorm:"foreignKey:GroupId" json:"group,omitempty"`
	Color *Color `gorm:"foreignKey:ColorId" json:"color,omitempty"`
	Unit  *Unit  `gorm:"foreignKey:UnitId" json:"unit,omitempty"`
}

type NewCrop struct {
	Name    string `json:"name" validate:"required,max=100"`
	Variety string `json:"variety" validate:"max=100"`
	GroupId int    `json:"group_id" validate:"required"`
	ColorId int    `json:"color_id" validate:"required"`
	UnitId  int    `json:"unit_id" validate:"required"`
}

// CropFilter narrows a crop search to one group or color.
type CropFilter struct {
	GroupId *int `json:"group_id"`
	ColorId *int `json:"color_id"`
}

var cropSortColumns = map[string]string{
	"name":      "name",
	"variety":   "variety",
	"createdAt": "created_at",
}

func (input *NewCrop) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Crop](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Group](ctx, input.GroupId); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Color](ctx, input.ColorId); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Unit](ctx, input.UnitId); err != nil {
		return err
	}
	return nil
}

func CreateCrop(ctx context.Context, input *NewCrop) (*Crop, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	crop := Crop{
		Name:    input.Name,
		Variety: input.Variety,
		GroupId: input.GroupId,
		ColorId: input.ColorId,
		UnitId:  input.UnitId,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&crop).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &crop, nil
}

func UpdateCrop(ctx context.Context, id int, input *NewCrop) (*Crop, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	crop, err := utils.FetchModel[Crop](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(crop).Updates(map[string]interface{}{
		"Name":    input.Name,
		"Variety": input.Variety,
		"GroupId": input.GroupId,
		"ColorId": input.ColorId,
		"UnitId":  input.UnitId,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return crop, nil
}

func DeleteCrop(ctx context.Context, id int) (*Crop, error) {

	crop, err := utils.FetchModel[Crop](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if crop is scheduled for planting or already shipped
	count, err := utils.ResourceCountWhere[PlantingSchedule](ctx, "crop_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("crop is used by planting schedule")
	}
	count, err = utils.ResourceCountWhere[ShipmentDetail](ctx, "crop_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("crop is used by shipment")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(crop).Error
	if err != nil {
		return nil, err
	}
	return crop, nil
}

func GetCrop(ctx context.Context, id int) (*Crop, error) {
	return utils.FetchModel[Crop](ctx, id, "Group", "Color", "Unit")
}

func GetCrops(ctx context.Context) ([]*Crop, error) {
	return utils.FetchAllModels[Crop](ctx, "Group", "Color", "Unit")
}

func SearchCrops(ctx context.Context, criteria SearchCriteria, filter CropFilter) (*SearchResult[Crop], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, cropSortColumns, "name")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if filter.GroupId != nil {
		dbCtx = dbCtx.Where("group_id = ?", *filter.GroupId)
	}
	if filter.ColorId != nil {
		dbCtx = dbCtx.Where("color_id = ?", *filter.ColorId)
	}
	return SearchPage[Crop](dbCtx, "name", sortColumn, criteria)
}
