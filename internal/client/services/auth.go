// Package services contains the form logic of the AnimeFacts client:
// input validation, the API call, and what the user sees afterwards.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/client/models"
	"github.com/sanyogchangmai/Anime-Facts-Webpage/internal/common"
)

// User-facing texts.
const (
	InvalidEmailMessage     = "Please enter a valid email address."
	PasswordMismatchMessage = "Passwords do not match. Try again."
	PasswordMissingMessage  = "Please enter your password."

	InvalidPasswordTitle = "Invalid Password"
	InvalidPasswordBody  = "Password should be of minimum 5 characters."
)

// SignupForm creates an account.
type SignupForm struct {
	form
}

func NewSignupForm(d Deps) *SignupForm {
	return &SignupForm{form: newForm(d, formText{
		idleLabel:    "Signup",
		busyLabel:    "Creating account...",
		successTitle: "Account created.",
		successBody:  "We've created your account for you.",
		failureTitle: "Failed to create account.",
	}, "signup")}
}

// Submit validates the input and, when it passes, registers the account.
// Validation problems never reach the network: a short password opens a
// blocking dialog, a mismatched confirmation sets the inline alert.
func (s *SignupForm) Submit(ctx context.Context, email string, password, confirmed []byte) Outcome {
	if !s.begin() {
		return OutcomeBusy
	}

	switch err := ValidateSignup(email, password, confirmed); {
	case errors.Is(err, common.ErrInvalidEmail):
		s.setAlert(InvalidEmailMessage)
		s.finish()
		return OutcomeInvalidEmail
	case errors.Is(err, common.ErrPasswordTooShort):
		s.Dialog.Open(InvalidPasswordTitle, InvalidPasswordBody)
		s.finish()
		return OutcomePasswordTooShort
	case errors.Is(err, common.ErrPasswordMismatch):
		s.setAlert(PasswordMismatchMessage)
		s.finish()
		return OutcomePasswordMismatch
	}
	s.setAlert("")

	creds := models.Credentials{Email: strings.TrimSpace(email), Password: string(password)}
	return s.call(ctx, func(ctx context.Context) (string, error) {
		return s.API.Signup(ctx, creds)
	})
}

// LoginForm signs into an existing account.
type LoginForm struct {
	form
}

func NewLoginForm(d Deps) *LoginForm {
	return &LoginForm{form: newForm(d, formText{
		idleLabel:    "Login",
		busyLabel:    "Logging in...",
		successTitle: "Logged in.",
		successBody:  "Welcome back.",
		failureTitle: "Failed to log in.",
	}, "login")}
}

// Submit checks that both fields are filled in and logs in.
func (l *LoginForm) Submit(ctx context.Context, email string, password []byte) Outcome {
	if !l.begin() {
		return OutcomeBusy
	}

	if err := ValidateEmail(email); err != nil {
		l.setAlert(InvalidEmailMessage)
		l.finish()
		return OutcomeInvalidEmail
	}
	if len(password) == 0 {
		l.setAlert(PasswordMissingMessage)
		l.finish()
		return OutcomePasswordMissing
	}
	l.setAlert("")

	creds := models.Credentials{Email: strings.TrimSpace(email), Password: string(password)}
	return l.call(ctx, func(ctx context.Context) (string, error) {
		return l.API.Login(ctx, creds)
	})
}
