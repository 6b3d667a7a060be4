// Package validation contains input validation rules shared by the
// mutation layer.
package validation

import (
	"fmt"
	"strings"
)

// Registration accepts ordinary Gmail addresses plus the reserved
// special domain used by fixture accounts.
const (
	allowedEmailDomain = "@gmail.com"
	specialEmailDomain = "@special.user"
)

// ValidateEmailDomain enforces the registration email allow-list.
func ValidateEmailDomain(email string) error {
	lower := strings.ToLower(email)
	if strings.HasSuffix(lower, allowedEmailDomain) || strings.HasSuffix(lower, specialEmailDomain) {
		return nil
	}
	return fmt.Errorf("please use a valid Gmail address")
}

// IsSpecialDomain reports whether the email is in the reserved fixture
// domain.
func IsSpecialDomain(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), specialEmailDomain)
}

// ValidateName requires a non-blank display name. Any characters are
// allowed; names are only matched case-insensitively for uniqueness.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}
