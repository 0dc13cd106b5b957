package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const MaxNameLength = 100

// Email must look like local@domain.tld. Deliberately loose: the goal is to
// catch obvious typos, not to implement RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName checks the user name field.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}

// ValidateAge checks that the age is a positive integer.
func ValidateAge(age int) error {
	if age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	return nil
}

// ValidateEmail checks the email field against the local@domain.tld shape.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email must match local@domain.tld")
	}
	return nil
}

// IsValidEmail reports whether email matches the accepted shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}
