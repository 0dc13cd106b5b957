package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lucasSouza225/cadastroUsuario/internal/common/errors"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository/memory"
)

func newService() UserService {
	return NewUserService(memory.NewRepository())
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsValidation())
	assert.Equal(t, field, appErr.Details["field"])
}

func TestCreateUser_Valid(t *testing.T) {
	svc := newService()

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name: "Julio", Age: 26, Email: "julio@gmail.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID, "store-assigned id must come back with the response")
	assert.Equal(t, "Julio", user.Name)

	users, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, *user, users[0])
}

func TestCreateUser_Validation(t *testing.T) {
	svc := newService()

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "", Age: 26, Email: "a@b.com"})
	requireValidation(t, err, "name")

	_, err = svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "A", Age: 0, Email: "a@b.com"})
	requireValidation(t, err, "age")

	_, err = svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "A", Age: -1, Email: "a@b.com"})
	requireValidation(t, err, "age")

	_, err = svc.CreateUser(context.Background(), models.CreateUserRequest{Name: "A", Age: 5, Email: "bad"})
	requireValidation(t, err, "email")

	// Nothing may be stored after rejected inputs.
	users, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateUser_ReplacesAllFields(t *testing.T) {
	svc := newService()

	created, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name: "Julio", Age: 26, Email: "julio@gmail.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID, models.UpdateUserRequest{
		Name: "Julio", Age: 27, Email: "julio@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 27, updated.Age)

	users, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 27, users[0].Age)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.UpdateUser(context.Background(), 404, models.UpdateUserRequest{
		Name: "Ghost", Age: 1, Email: "g@h.io",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestUpdateUser_ValidatedBeforeStore(t *testing.T) {
	svc := newService()

	created, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name: "Julio", Age: 26, Email: "julio@gmail.com",
	})
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), created.ID, models.UpdateUserRequest{
		Name: "Julio", Age: -5, Email: "julio@gmail.com",
	})
	requireValidation(t, err, "age")

	users, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, 26, users[0].Age, "rejected update must not touch the record")
}

func TestDeleteUser(t *testing.T) {
	svc := newService()

	created, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name: "Julio", Age: 26, Email: "julio@gmail.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))

	users, err := svc.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Empty(t, users)

	err = svc.DeleteUser(context.Background(), created.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestListUsers_Filtered(t *testing.T) {
	svc := newService()

	for _, input := range []models.CreateUserRequest{
		{Name: "Julio", Age: 26, Email: "julio@gmail.com"},
		{Name: "Val", Age: 50, Email: "val@gmail.com"},
		{Name: "Samuel", Age: 26, Email: "samuel@gmail.com"},
	} {
		_, err := svc.CreateUser(context.Background(), input)
		require.NoError(t, err)
	}

	age := 26
	users, err := svc.ListUsers(context.Background(), models.UserFilter{Age: &age})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Julio", users[0].Name)
	assert.Equal(t, "Samuel", users[1].Name)
}
