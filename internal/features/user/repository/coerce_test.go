package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("abc")
	assert.Error(t, err)

	_, err = ParseID("")
	assert.Error(t, err)

	_, err = ParseID("1.5")
	assert.Error(t, err)
}

func TestFilterFromQuery_Empty(t *testing.T) {
	filter, err := FilterFromQuery("", "", "")
	require.NoError(t, err)
	assert.True(t, filter.IsEmpty())
}

func TestFilterFromQuery_AgeCoercedToNumber(t *testing.T) {
	filter, err := FilterFromQuery("", "", "26")
	require.NoError(t, err)
	require.NotNil(t, filter.Age)
	assert.Equal(t, 26, *filter.Age)
}

func TestFilterFromQuery_NonNumericAge_Error(t *testing.T) {
	// A textual age must fail loudly instead of silently matching nothing.
	_, err := FilterFromQuery("", "", "twenty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twenty")
}

func TestFilterFromQuery_AllFields(t *testing.T) {
	filter, err := FilterFromQuery("Julio", "julio@gmail.com", "26")
	require.NoError(t, err)
	require.NotNil(t, filter.Name)
	require.NotNil(t, filter.Email)
	require.NotNil(t, filter.Age)
	assert.Equal(t, "Julio", *filter.Name)
	assert.Equal(t, "julio@gmail.com", *filter.Email)
	assert.Equal(t, 26, *filter.Age)
}
