package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// PhoneNumberMinLength is the shortest accepted phone number.
	PhoneNumberMinLength = 9
	// PhoneNumberMaxLength is the longest accepted phone number.
	PhoneNumberMaxLength = 11
	// NameMinLength is exclusive: names must be longer than this.
	NameMinLength = 5
)

var fieldValidator = validator.New()

// ValidPhoneNumber reports whether phone has an accepted length in characters.
func ValidPhoneNumber(phone string) bool {
	n := utf8.RuneCountInString(phone)

	return n >= PhoneNumberMinLength && n <= PhoneNumberMaxLength
}

// ValidName reports whether name has more than NameMinLength characters.
func ValidName(name string) bool {
	return utf8.RuneCountInString(name) > NameMinLength
}

// ValidEmail reports whether email is empty or well formed.
func ValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return true
	}

	return fieldValidator.Var(email, "email") == nil
}

// Validate checks the stored fields of a profile and returns the name of the first invalid field.
func (p *Profile) Validate() (field string, ok bool) {
	switch {
	case !ValidName(p.Name):
		return "name", false
	case !ValidPhoneNumber(p.PhoneNumber):
		return "phoneNumber", false
	case !ValidEmail(p.Email):
		return "email", false
	case !p.Role.IsValid():
		return "role", false
	}

	return "", true
}

// Validate checks the stored fields of an account and returns the name of the first invalid field.
func (a *Account) Validate() (field string, ok bool) {
	switch {
	case !ValidPhoneNumber(a.PhoneNumber):
		return "phoneNumber", false
	case a.PasswordHash == "":
		return "password", false
	case !a.Role.IsValid():
		return "role", false
	}

	return "", true
}
