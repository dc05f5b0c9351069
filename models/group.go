package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
)

// Group clusters related crops, e.g. brassicas or root vegetables.
type Group struct {
	RecordStamp
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

type NewGroup struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

var groupSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

func (input *NewGroup) validate(ctx context.Context, exceptId int) error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Group](ctx, "name", input.Name, exceptId); err != nil {
		return err
	}
	return nil
}

func CreateGroup(ctx context.Context, input *NewGroup) (*Group, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	group := Group{
		Name:        input.Name,
		Description: input.Description,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Create(&group).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return &group, nil
}

func UpdateGroup(ctx context.Context, id int, input *NewGroup) (*Group, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	group, err := utils.FetchModel[Group](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(group).Updates(map[string]interface{}{
		"Name":        input.Name,
		"Description": input.Description,
	}).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "name")
	}
	return group, nil
}

func DeleteGroup(ctx context.Context, id int) (*Group, error) {

	group, err := utils.FetchModel[Group](ctx, id)
	if err != nil {
		return nil, err
	}

	// don't delete if group still holds crops
	count, err := utils.ResourceCountWhere[Crop](ctx, "group_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewInvalidOperation("group is used by crop")
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Delete(group).Error
	if err != nil {
		return nil, err
	}
	return group, nil
}

func GetGroup(ctx context.Context, id int) (*Group, error) {
	return utils.FetchModel[Group](ctx, id)
}

func GetGroups(ctx context.Context) ([]*Group, error) {
	return utils.FetchAllModels[Group](ctx)
}

func SearchGroups(ctx context.Context, criteria SearchCriteria) (*SearchResult[Group], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, groupSortColumns, "name")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[Group](db.WithContext(ctx), "name", sortColumn, criteria)
}
