package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seed(t *testing.T, repo *Repository, users ...models.User) []models.User {
	t.Helper()
	created := make([]models.User, 0, len(users))
	for _, u := range users {
		require.NoError(t, repo.Create(context.Background(), &u))
		created = append(created, u)
	}
	return created
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	repo := NewRepository()

	created := seed(t, repo,
		models.User{Name: "Julio", Age: 26, Email: "julio@gmail.com"},
		models.User{Name: "Val", Age: 50, Email: "val@gmail.com"},
	)

	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(2), created[1].ID)
}

func TestFindMany_NoFilter_ReturnsAllSortedByID(t *testing.T) {
	repo := NewRepository()
	seed(t, repo,
		models.User{Name: "Julio", Age: 26, Email: "julio@gmail.com"},
		models.User{Name: "Val", Age: 50, Email: "val@gmail.com"},
		models.User{Name: "Samuel", Age: 10, Email: "samuel@gmail.com"},
	)

	users, err := repo.FindMany(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Julio", users[0].Name)
	assert.Equal(t, "Val", users[1].Name)
	assert.Equal(t, "Samuel", users[2].Name)
}

func TestFindMany_FilterReturnsExactSubset(t *testing.T) {
	repo := NewRepository()
	seed(t, repo,
		models.User{Name: "Julio", Age: 26, Email: "julio@gmail.com"},
		models.User{Name: "Val", Age: 26, Email: "val@gmail.com"},
		models.User{Name: "Samuel", Age: 10, Email: "samuel@gmail.com"},
	)

	byAge, err := repo.FindMany(context.Background(), models.UserFilter{Age: intPtr(26)})
	require.NoError(t, err)
	require.Len(t, byAge, 2)

	byAgeAndName, err := repo.FindMany(context.Background(), models.UserFilter{
		Age:  intPtr(26),
		Name: strPtr("Val"),
	})
	require.NoError(t, err)
	require.Len(t, byAgeAndName, 1)
	assert.Equal(t, "Val", byAgeAndName[0].Name)

	none, err := repo.FindMany(context.Background(), models.UserFilter{Name: strPtr("Nobody")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdate_OverwritesAllFields(t *testing.T) {
	repo := NewRepository()
	created := seed(t, repo, models.User{Name: "Julio", Age: 26, Email: "julio@gmail.com"})

	err := repo.Update(context.Background(), created[0].ID, models.User{
		Name:  "Julio",
		Age:   27,
		Email: "julio@gmail.com",
	})
	require.NoError(t, err)

	users, err := repo.FindMany(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, created[0].ID, users[0].ID)
	assert.Equal(t, 27, users[0].Age)
}

func TestUpdate_MissingID_ErrNotFound(t *testing.T) {
	repo := NewRepository()

	err := repo.Update(context.Background(), 99, models.User{Name: "X", Age: 1, Email: "x@y.z"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := NewRepository()
	created := seed(t, repo, models.User{Name: "Julio", Age: 26, Email: "julio@gmail.com"})

	require.NoError(t, repo.Delete(context.Background(), created[0].ID))

	users, err := repo.FindMany(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.Empty(t, users)

	// A second delete of the same id must report not-found, not succeed.
	err = repo.Delete(context.Background(), created[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
