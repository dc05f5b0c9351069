package models

import (
	"testing"

	"bitbucket.org/greenfields/farmbooks_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := setupTestDB(t)

	user, err := CreateUser(ctx, &NewUser{
		Username:    "jdoe",
		DisplayName: "J. Doe",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	verified, err := VerifyPassword(ctx, "jdoe", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)

	_, err = VerifyPassword(ctx, "jdoe", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "J. Doe", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "Other", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.True(t, utils.IsDuplicateEntity(err))
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	ctx := setupTestDB(t)

	user, err := CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "J. Doe", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = UpdateUser(ctx, user.ID, &UpdateUserInput{Username: "jdoe", DisplayName: "Jay Doe"})
	require.NoError(t, err)

	_, err = VerifyPassword(ctx, "jdoe", "s3cret-pass")
	assert.NoError(t, err)
}

func TestDeleteUserSoft(t *testing.T) {
	ctx := setupTestDB(t)

	user, err := CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "J. Doe", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	// gone from lookups
	_, err = GetUser(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, utils.IsEntityNotFound(err))

	// and from search
	result, err := SearchUsers(ctx, SearchCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalCount)

	// second delete reports already deleted, not missing
	_, err = DeleteUser(ctx, user.ID)
	require.Error(t, err)
	assert.True(t, utils.IsAlreadyDeleted(err))
}

func TestDeletedUserCannotLogIn(t *testing.T) {
	ctx := setupTestDB(t)

	user, err := CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "J. Doe", Password: "s3cret-pass"})
	require.NoError(t, err)
	_, err = DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	_, err = VerifyPassword(ctx, "jdoe", "s3cret-pass")
	require.Error(t, err)
}

func TestCreateUserShortPassword(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := CreateUser(ctx, &NewUser{Username: "jdoe", DisplayName: "J. Doe", Password: "short"})
	require.Error(t, err)
	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "Password")
}
