package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUserFilter_Empty_MatchesEverything(t *testing.T) {
	filter := UserFilter{}

	assert.True(t, filter.IsEmpty())
	assert.True(t, filter.Matches(User{ID: 1, Name: "Julio", Age: 26, Email: "julio@gmail.com"}))
	assert.True(t, filter.Matches(User{}))
}

func TestUserFilter_SingleField(t *testing.T) {
	user := User{ID: 1, Name: "Julio", Age: 26, Email: "julio@gmail.com"}

	assert.True(t, UserFilter{Name: strPtr("Julio")}.Matches(user))
	assert.False(t, UserFilter{Name: strPtr("Val")}.Matches(user))

	assert.True(t, UserFilter{Age: intPtr(26)}.Matches(user))
	assert.False(t, UserFilter{Age: intPtr(27)}.Matches(user))

	assert.True(t, UserFilter{Email: strPtr("julio@gmail.com")}.Matches(user))
	assert.False(t, UserFilter{Email: strPtr("val@gmail.com")}.Matches(user))
}

func TestUserFilter_AllFieldsCombineWithAnd(t *testing.T) {
	user := User{ID: 1, Name: "Julio", Age: 26, Email: "julio@gmail.com"}

	full := UserFilter{Name: strPtr("Julio"), Age: intPtr(26), Email: strPtr("julio@gmail.com")}
	assert.True(t, full.Matches(user))

	// One mismatching field fails the whole filter.
	wrongAge := UserFilter{Name: strPtr("Julio"), Age: intPtr(27), Email: strPtr("julio@gmail.com")}
	assert.False(t, wrongAge.Matches(user))
}
