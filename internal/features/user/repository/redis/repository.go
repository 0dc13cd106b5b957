package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
)

const (
	keyPrefix = "user:"
	seqKey    = "user:next_id"
)

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	id, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return err
	}
	user.ID = id

	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, userKey(id), userJSON, 0).Err()
}

func (r *userRepository) FindMany(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users := []models.User{}
	iter := r.client.Scan(ctx, 0, keyPrefix+"[0-9]*", 0).Iterator()

	for iter.Next(ctx) {
		userJSON, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}

		var user models.User
		if err := json.Unmarshal(userJSON, &user); err != nil {
			continue
		}

		if filter.Matches(user) {
			users = append(users, user)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	// SCAN order is unspecified; keep listings stable.
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, user models.User) error {
	exists, err := r.client.Exists(ctx, userKey(id)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	user.ID = id
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, userKey(id), userJSON, 0).Err()
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	deleted, err := r.client.Del(ctx, userKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repository.ErrNotFound
	}
	return nil
}
