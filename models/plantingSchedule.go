package models

import (
	"context"
	"time"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/shopspring/decimal"
)

// PlantingSchedule records a crop planted in a field with an expected
// harvest window.
type PlantingSchedule struct {
	RecordStamp
	CropId      int             `gorm:"not null;index" json:"crop_id"`
	FieldId     int             `gorm:"not null;index" json:"field_id"`
	PlantedDate time.Time       `gorm:"not null" json:"planted_date"`
	HarvestDate *time.Time      `json:"harvest_date"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	Notes       string          `gorm:"size:500" json:"notes"`

	Crop  *Crop  `gorm:"foreignKey:CropId" json:"crop,omitempty"`
	Field *Field `gorm:"foreignKey:FieldId" json:"field,omitempty"`
}

type NewPlantingSchedule struct {
	CropId      int             `json:"crop_id" validate:"required"`
	FieldId     int             `json:"field_id" validate:"required"`
	PlantedDate time.Time       `json:"planted_date" validate:"required"`
	HarvestDate *time.Time      `json:"harvest_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Notes       string          `json:"notes" validate:"max=500"`
}

// ScheduleFilter narrows a schedule search to one crop or field.
type ScheduleFilter struct {
	CropId  *int `json:"crop_id"`
	FieldId *int `json:"field_id"`
}

var plantingScheduleSortColumns = map[string]string{
	"plantedDate": "planted_date",
	"harvestDate": "harvest_date",
	"createdAt":   "created_at",
}

func (input *NewPlantingSchedule) validate(ctx context.Context) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.Quantity.IsNegative() {
		return &utils.ValidationError{Fields: map[string]string{"Quantity": "min"}}
	}
	if input.HarvestDate != nil && input.HarvestDate.Before(input.PlantedDate) {
		return utils.NewInvalidOperation("harvest date is before planted date")
	}
	if err := utils.ValidateResourceId[Crop](ctx, input.CropId); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Field](ctx, input.FieldId); err != nil {
		return err
	}
	return nil
}

func CreatePlantingSchedule(ctx context.Context, input *NewPlantingSchedule) (*PlantingSchedule, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	schedule := PlantingSchedule{
		CropId:      input.CropId,
		FieldId:     input.FieldId,
		PlantedDate: input.PlantedDate,
		HarvestDate: input.HarvestDate,
		Quantity:    input.Quantity,
		Notes:       input.Notes,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func UpdatePlantingSchedule(ctx context.Context, id int, input *NewPlantingSchedule) (*PlantingSchedule, error) {

	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	schedule, err := utils.FetchModel[PlantingSchedule](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(schedule).Updates(map[string]interface{}{
		"CropId":      input.CropId,
		"FieldId":     input.FieldId,
		"PlantedDate": input.PlantedDate,
		"HarvestDate": input.HarvestDate,
		"Quantity":    input.Quantity,
		"Notes":       input.Notes,
	}).Error
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func DeletePlantingSchedule(ctx context.Context, id int) (*PlantingSchedule, error) {

	schedule, err := utils.FetchModel[PlantingSchedule](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(schedule).Error
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func GetPlantingSchedule(ctx context.Context, id int) (*PlantingSchedule, error) {
	return utils.FetchModel[PlantingSchedule](ctx, id, "Crop", "Field")
}

func GetPlantingSchedules(ctx context.Context) ([]*PlantingSchedule, error) {
	return utils.FetchAllModels[PlantingSchedule](ctx, "Crop", "Field")
}

// SearchPlantingSchedules matches on the notes column; schedules have no name.
func SearchPlantingSchedules(ctx context.Context, criteria SearchCriteria, filter ScheduleFilter) (*SearchResult[PlantingSchedule], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, plantingScheduleSortColumns, "planted_date")
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	if filter.CropId != nil {
		dbCtx = dbCtx.Where("crop_id = ?", *filter.CropId)
	}
	if filter.FieldId != nil {
		dbCtx = dbCtx.Where("field_id = ?", *filter.FieldId)
	}
	return SearchPage[PlantingSchedule](dbCtx, "notes", sortColumn, criteria)
}
