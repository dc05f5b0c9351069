package models

import (
	"context"

	"bitbucket.org/greenfields/farmbooks_backend/config"
	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"gorm.io/gorm"
)

// User is an operator account. Users soft-delete so audit rows keep a valid
// actor reference; deleted users drop out of every query and lookup.
type User struct {
	RecordStamp
	Username    string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	DisplayName string         `gorm:"size:100;not null" json:"display_name"`
	Email       string         `gorm:"size:255" json:"email"`
	Password    string         `gorm:"size:100;not null" json:"-"`
	IsAdmin     *bool          `gorm:"not null;default:false" json:"is_admin"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type NewUser struct {
	Username    string `json:"username" validate:"required,max=50"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	IsAdmin     bool   `json:"is_admin"`
}

// UpdateUserInput leaves the password alone when empty.
type UpdateUserInput struct {
	Username    string `json:"username" validate:"required,max=50"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
	Password    string `json:"password" validate:"omitempty,min=8,max=72"`
	IsAdmin     bool   `json:"is_admin"`
}

var userSortColumns = map[string]string{
	"username":    "username",
	"displayName": "display_name",
	"createdAt":   "created_at",
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := utils.ValidateUnique[User](ctx, "username", input.Username, 0); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Password:    string(hashed),
		IsAdmin:     &input.IsAdmin,
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "username")
	}
	return &user, nil
}

func UpdateUser(ctx context.Context, id int, input *UpdateUserInput) (*User, error) {

	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if err := utils.ValidateUnique[User](ctx, "username", input.Username, id); err != nil {
		return nil, err
	}

	user, err := utils.FetchModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"Username":    input.Username,
		"DisplayName": input.DisplayName,
		"Email":       input.Email,
		"IsAdmin":     input.IsAdmin,
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		updates["Password"] = string(hashed)
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(user).Updates(updates).Error
	if err != nil {
		return nil, utils.TranslateStoreError(err, "username")
	}
	return user, nil
}

// DeleteUser soft-deletes. Deleting an already-deleted user reports
// AlreadyDeleted rather than not-found, since the record still exists.
func DeleteUser(ctx context.Context, id int) (*User, error) {

	db := config.GetDB()
	var user User
	err := db.WithContext(ctx).Unscoped().First(&user, id).Error
	if err != nil {
		return nil, utils.NewEntityNotFound(utils.TypeName[User]())
	}
	if user.DeletedAt.Valid {
		return nil, &utils.AlreadyDeletedError{Label: utils.TypeName[User]()}
	}

	err = db.WithContext(ctx).Delete(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUser(ctx context.Context, id int) (*User, error) {
	return utils.FetchModel[User](ctx, id)
}

func GetUserByUsername(ctx context.Context, username string) (*User, error) {
	db := config.GetDB()
	var user User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, utils.NewEntityNotFound(utils.TypeName[User]())
	}
	return &user, nil
}

// VerifyPassword checks credentials for a live user. The error is the same
// whether the user is missing or the password is wrong.
func VerifyPassword(ctx context.Context, username string, password string) (*User, error) {
	user, err := GetUserByUsername(ctx, username)
	if err != nil {
		return nil, utils.NewInvalidOperation("invalid credentials")
	}
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, utils.NewInvalidOperation("invalid credentials")
	}
	return user, nil
}

func SearchUsers(ctx context.Context, criteria SearchCriteria) (*SearchResult[User], error) {
	sortColumn, err := resolveSortColumn(criteria.SortKey, userSortColumns, "username")
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	return SearchPage[User](db.WithContext(ctx), "username", sortColumn, criteria)
}
