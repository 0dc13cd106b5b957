package repository

import (
	"fmt"
	"strconv"

	"github.com/lucasSouza225/cadastroUsuario/internal/features/user/models"
)

// ParseID coerces a textual identifier (route parameter) into the store's
// native numeric key. Every call site goes through here so the coercion
// semantics stay identical across handlers.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}

// FilterFromQuery builds a UserFilter from query-string values. An empty
// value means the field is unconstrained. Age is coerced to numeric before it
// ever reaches a comparison, so a textual age can never silently match
// nothing; a non-numeric age is an error instead.
func FilterFromQuery(name, email, age string) (models.UserFilter, error) {
	var filter models.UserFilter

	if name != "" {
		filter.Name = &name
	}
	if email != "" {
		filter.Email = &email
	}
	if age != "" {
		n, err := strconv.Atoi(age)
		if err != nil {
			return models.UserFilter{}, fmt.Errorf("invalid age filter %q", age)
		}
		filter.Age = &n
	}

	return filter, nil
}
