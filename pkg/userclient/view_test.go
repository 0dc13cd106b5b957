package userclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeBracket(t *testing.T) {
	assert.Equal(t, "Jovem", AgeBracket(10))
	assert.Equal(t, "Jovem", AgeBracket(29))
	assert.Equal(t, "Adulto", AgeBracket(30))
	assert.Equal(t, "Adulto", AgeBracket(49))
	assert.Equal(t, "Sênior", AgeBracket(50))
	assert.Equal(t, "Sênior", AgeBracket(80))
}
