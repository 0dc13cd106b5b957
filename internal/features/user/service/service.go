package service

import (
	"context"
	"errors"

	apperrors "github.com/lucasSouza225/cadastroUsuario/internal/common/errors"
	"github.com/lucasSouza225/cadastroUsuario/internal/common/validation"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
)

// UserService is the transport-agnostic contract over user records.
type UserService interface {
	CreateUser(ctx context.Context, input models.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, input models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

// validateFields mirrors the client-side form checks. The client already
// rejects bad input before calling, but the API is reachable without it.
func validateFields(name string, age int, email string) error {
	if err := validation.ValidateName(name); err != nil {
		return apperrors.NewValidationError("name", err.Error())
	}
	if err := validation.ValidateAge(age); err != nil {
		return apperrors.NewValidationError("age", err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return apperrors.NewValidationError("email", err.Error())
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, input models.CreateUserRequest) (*models.User, error) {
	if err := validateFields(input.Name, input.Age, input.Email); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:  input.Name,
		Age:   input.Age,
		Email: input.Email,
	}

	// The store assigns the id on Create, so the response carries the real
	// persisted record rather than an echo of the request.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := s.repo.FindMany(ctx, filter)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, input models.UpdateUserRequest) (*models.User, error) {
	if err := validateFields(input.Name, input.Age, input.Email); err != nil {
		return nil, err
	}

	user := models.User{
		ID:    id,
		Name:  input.Name,
		Age:   input.Age,
		Email: input.Email,
	}

	// All three fields are overwritten unconditionally (replace semantics).
	if err := s.repo.Update(ctx, id, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUserNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("update user", err)
	}

	return &user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUserNotFoundError(id)
		}
		return apperrors.NewDatabaseError("delete user", err)
	}
	return nil
}
