package utils

import (
	"context"
	"reflect"

	"bitbucket.org/greenfields/farmbooks_backend/config"
)

// check if id exists, return EntityNotFound error labeled with T's kind
func ValidateResourceId[T any](ctx context.Context, id interface{}) error {

	count, err := ResourceCountWhere[T](ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return NewEntityNotFound(TypeName[T]())
	}

	return nil
}

// FetchValidIds resolves which of the candidate ids point to live records of
// kind T, in a single query over the distinct id set. Callers iterate their
// own lines against the returned set, which keeps batched composite writes at
// one existence query per referenced kind instead of one per line.
func FetchValidIds[T any](ctx context.Context, ids []int) (map[int]bool, error) {
	valid := make(map[int]bool, len(ids))
	unqIds := UniqueSlice(ids)
	if len(unqIds) == 0 {
		return valid, nil
	}

	var model T
	var found []int
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&model).
		Where("id IN ?", unqIds).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		valid[id] = true
	}
	return valid, nil
}

// ValidateUnique checks that no other live record of kind T holds the value
// in the given column. exceptId excludes the record being updated so it may
// keep its own name. The authoritative guarantee remains the store's unique
// index; races past this check are remapped by TranslateStoreError.
func ValidateUnique[T any](ctx context.Context, column string, value interface{}, exceptId interface{}) error {
	var count int64
	var err error
	if reflect.ValueOf(exceptId).IsZero() {
		count, err = ResourceCountWhere[T](ctx, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, column+" = ? AND NOT id = ?", value, exceptId)
	}

	if err != nil {
		return err
	}
	if count > 0 {
		return NewDuplicateEntity(column)
	}
	return nil
}

// count records matching the condition
func ResourceCountWhere[T any](ctx context.Context, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model).Where(condition, value...)
	var count int64
	if err := dbCtx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
