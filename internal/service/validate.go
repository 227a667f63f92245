package service

import (
	"net/mail"
	"net/url"
	"unicode/utf8"

	"github.com/cardbox/cardbox-go/internal/apperr"
)

// validateTextField enforces the 2-30 character bound shared by name and
// about fields.
func validateTextField(field, value string) error {
	if n := utf8.RuneCountInString(value); n < 2 || n > 30 {
		return apperr.Validation(field + " must be between 2 and 30 characters")
	}
	return nil
}

// validateURLField requires an absolute http or https URL.
func validateURLField(field, value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperr.Validation(field + " must be a valid http(s) URL")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.Validation("email is invalid")
	}
	return nil
}
