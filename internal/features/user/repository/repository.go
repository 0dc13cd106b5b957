package repository

import (
	"context"
	"errors"

	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
)

// ErrNotFound is reported when the requested id has no record in the store.
var ErrNotFound = errors.New("user not found")

// UserRepository is the boundary to the record store. Create assigns the id;
// Update and Delete report a missing id as ErrNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindMany(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Update(ctx context.Context, id int64, user models.User) error
	Delete(ctx context.Context, id int64) error
}
