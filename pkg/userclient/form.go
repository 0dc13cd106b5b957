package userclient

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lucasSouza225/cadastroUsuario/internal/common/validation"
)

// Form validation messages shown to the user. Fixed strings; the first
// failing rule wins.
const (
	MsgFillAllFields = "fill all fields"
	MsgInvalidAge    = "invalid age"
	MsgInvalidEmail  = "invalid email"
)

// FormInput carries the raw textual values of the registration form.
type FormInput struct {
	Name  string
	Age   string
	Email string
}

// Validate checks the form fields in order: emptiness, then age, then email.
// It is pure and synchronous; passing means the input is ready to submit.
func (f FormInput) Validate() error {
	name := strings.TrimSpace(f.Name)
	age := strings.TrimSpace(f.Age)
	email := strings.TrimSpace(f.Email)

	if name == "" || age == "" || email == "" {
		return errors.New(MsgFillAllFields)
	}

	n, err := strconv.Atoi(age)
	if err != nil || n <= 0 {
		return errors.New(MsgInvalidAge)
	}

	if !validation.IsValidEmail(email) {
		return errors.New(MsgInvalidEmail)
	}

	return nil
}

// ParsedAge returns the numeric age of a form that passed Validate.
func (f FormInput) ParsedAge() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.Age))
	return n
}
