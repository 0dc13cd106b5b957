package models

// UserFilter constrains a listing. A nil field imposes no constraint; a set
// field must match exactly. Fields combine with AND semantics.
type UserFilter struct {
	Name  *string
	Age   *int
	Email *string
}

// IsEmpty reports whether the filter constrains nothing.
func (f UserFilter) IsEmpty() bool {
	return f.Name == nil && f.Age == nil && f.Email == nil
}

// Matches reports whether u satisfies every set field of the filter.
func (f UserFilter) Matches(u User) bool {
	if f.Name != nil && u.Name != *f.Name {
		return false
	}
	if f.Age != nil && u.Age != *f.Age {
		return false
	}
	if f.Email != nil && u.Email != *f.Email {
		return false
	}
	return true
}
