package models

import (
	"context"
	"fmt"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// Color labels crops on planning boards and reports.
type Color struct {
	RecordStamp
	Name  string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Red   int    `gorm:"not null" json:"red"`
	Green int    `gorm:"not null" json:"green"`
	Blue  int    `gorm:"not null" json:"blue"`
}

type NewColor struct {
	Name  string `json:"name" validate:"required,max=100"`
	Red   int    `json:"red" validate:"min=0,max=255"`
	Green int    `json:"green" validate:"min=0,max=255"`
	Blue  int    `json:"blue" validate:"min=0,max=255"`
}

// HexCode renders the color as #RRGGBB.
func (c Color) HexCode() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

var colorSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func (input *NewColor) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Color](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateColor(ctx context.Context, input *NewColor) (*Color, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	color := Color{
		Name:  input.Name,
		Red:   input.Red,
		Green: input.Green,
		Blue:  input.Blue,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&color).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &color, nil
}

func UpdateColor(ctx context.Context, id int, input *NewColor) (*Color, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	color, err := utils.FetchModel[Color](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(color).Updates(map[string]interface{}{
		"Name":  input.Name,
		"Red":   input.Red,
		"Green": input.Green,
		"Blue":  input.Blue,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return color, nil
}

func DeleteColor(ctx context.Context, id int) (*Color, error) {

	color, err := utils.FetchModel[Color](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if color is assigned to a crop
	count, err := utils.ResourceCountWhere[Crop](ctx, "color_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("color is used by crop")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(color).Error
	if err != nil {
		return nil, err
	}
	return color, nil
}

func GetColor(ctx context.Context, id int) (*Color, error) {
	return utils.FetchModel[Color](ctx, id)
}

func GetColors(ctx context.Context) ([]*Color, error) {
	return utils.FetchAllModels[Color](ctx)
}

func SearchColors(ctx context.Context, criteria SearchCriteria) (*SearchResult[Color], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, colorSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[Color](db.WithContext(ctx), "name", sortColumn, criteria)
}
