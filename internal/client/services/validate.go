package services

import (
	"bytes"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/common"
)

// ValidateEmail accepts a bare address such as "alice@example.org". Display
// names ("Alice <alice@example.org>") are rejected.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return common.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidateSignup checks signup input in the order the form reports
// problems: email, password length, then confirmation.
func ValidateSignup(email string, password, confirmed []byte) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if utf8.RuneCount(password) < common.MinPasswordLength {
		return common.ErrPasswordTooShort
	}
	if !bytes.Equal(password, confirmed) {
		return common.ErrPasswordMismatch
	}
	return nil
}
