package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AndresYusty/cat-frontend/internal/client/client"
	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/client/services"
	"github.com/AndresYusty/cat-frontend/internal/client/session"
	"github.com/AndresYusty/cat-frontend/internal/common"
)

// ErrInvalidInput is returned by the forms when validation fails. The field
// messages have already been printed.
var ErrInvalidInput = errors.New("invalid input")

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const demoNotice = "Note: the user service is not reachable. This account exists only on this device."

// Login asks for credentials, validates them and signs in.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	// Only the terminal buffer is zeroed. The string copy sent to the user
	// service stays in memory until it is collected.
	defer common.WipeByteArray(password)

	creds := models.Credentials{Username: userName, Password: string(password)}
	if errs := validateLogin(creds); len(errs) > 0 {
		a.printErrors(errs)
		return ErrInvalidInput
	}

	out, err := a.authService.Login(ctx, creds)
	if err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "username", userName, "error", err)
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}
	if out.User == nil {
		fmt.Fprintln(a.out, out.Message)
		return nil
	}

	fmt.Fprintf(a.out, "%s. Welcome, %s!\n", out.Message, out.User.DisplayName())
	return nil
}

// Register runs the sign-up form and creates the account. When the user
// service is absent the account is created locally and a notice is printed.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter username", &reg.Username},
		{"Enter email", &reg.Email},
		{"Enter first name", &reg.FirstName},
		{"Enter last name", &reg.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	// As in Login, the wipes above cover the terminal buffers only.
	reg.Password = string(password)
	if errs := validateRegistration(reg, string(confirm)); len(errs) > 0 {
		a.printErrors(errs)
		return ErrInvalidInput
	}

	out, err := a.authService.Register(ctx, reg)
	if err != nil {
		a.logger.Warn(ctx, "registration unsuccessful", "username", reg.Username, "error", err)
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}
	fmt.Fprintln(a.out, out.Message)
	if out.User != nil && out.Message == services.MsgDemoRegister {
		fmt.Fprintln(a.out, demoNotice)
	}
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.authService.IsLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, errorMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Profile prints the signed-in account.
func (a *App) Profile(_ context.Context) error {
	u := a.authService.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "[%s] %s\n", u.Initials(), u.DisplayName())
	fmt.Fprintf(a.out, "  Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "  Email:    %s\n", u.Email)
	if u.ID != nil {
		fmt.Fprintf(a.out, "  ID:       %d\n", *u.ID)
	}
	if u.CreatedAt != nil {
		fmt.Fprintf(a.out, "  Since:    %s\n", u.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) printErrors(errs []string) {
	for _, e := range errs {
		fmt.Fprintln(a.out, "  -", e)
	}
}

// errorMessage picks the text shown to the user for err.
func errorMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, session.ErrStale):
		return "The session changed while the request was running. Please try again."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request canceled."
	default:
		return "Error: " + err.Error()
	}
}
