package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
)

// Compile-time assertion: *Repository satisfies UserRepository.
var _ repository.UserRepository = (*Repository)(nil)

// Repository keeps records in a map. Used for tests and local development
// without a Redis instance; the contract is identical to the redis backend.
type Repository struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{
		users: make(map[int64]models.User),
	}
}

func (r *Repository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *Repository) FindMany(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, user := range r.users {
		if filter.Matches(user) {
			users = append(users, user)
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *Repository) Update(_ context.Context, id int64, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return repository.ErrNotFound
	}

	user.ID = id
	r.users[id] = user
	return nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return repository.ErrNotFound
	}

	delete(r.users, id)
	return nil
}
