package cli

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// validateLogin returns one message per invalid field, in form order.
func validateLogin(c models.Credentials) []string {
	var errs []string
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, required("Username"))
	}
	errs = appendPassword(errs, "Password", c.Password)
	return errs
}

// validateRegistration returns one message per invalid field, in form order.
func validateRegistration(r models.Registration, confirm string) []string {
	var errs []string

	switch username := strings.TrimSpace(r.Username); {
	case username == "":
		errs = append(errs, required("Username"))
	case utf8.RuneCountInString(username) < minUsernameLen:
		errs = append(errs, tooShort("Username", minUsernameLen))
	}

	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, required("Email"))
	} else if !validEmail(r.Email) {
		errs = append(errs, "Please enter a valid email address.")
	}

	errs = appendPassword(errs, "Password", r.Password)

	if confirm == "" {
		errs = append(errs, required("Confirm password"))
	} else if confirm != r.Password {
		errs = append(errs, "Passwords do not match.")
	}

	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, required("First name"))
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, required("Last name"))
	}
	return errs
}

func appendPassword(errs []string, field, pw string) []string {
	switch {
	case pw == "":
		return append(errs, required(field))
	case utf8.RuneCountInString(pw) < minPasswordLen:
		return append(errs, tooShort(field, minPasswordLen))
	}
	return errs
}

// validEmail accepts a bare address such as "a@b.c"; display-name forms
// like "A <a@b.c>" are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func required(field string) string { return field + " is required." }

func tooShort(field string, n int) string {
	return fmt.Sprintf("%s must be at least %d characters.", field, n)
}
