// Package services contains application services for the catcli client.
// This file defines the authentication service: login, registration with a
// demo-mode fallback, logout and the backend liveness probe.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AndresYusty/cat-frontend/internal/client/client"
	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/client/session"
	"github.com/AndresYusty/cat-frontend/internal/logging"
	"github.com/bwmarrin/snowflake"
)

const (
	MsgAuthSuccess  = "Authentication successful"
	MsgDemoRegister = "Registration successful (demo mode - backend not available)"
	MsgEmptyAnswer  = "Authentication failed: empty response from server"

	// DefaultDemoDelay is the pause before a demo-mode registration resolves,
	// so the result reads the same whether the backend or the fallback served it.
	DefaultDemoDelay = time.Second
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the user service and store the session.
//   - Register: create an account; falls back to a local demo account when
//     the backend is absent (no connection, 404 or 503).
//   - Logout: clear the session.
//   - CheckServerHealth: probe the user service.
//
// Failures are returned as *client.APIError values carrying a fixed message.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthOutcome, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthOutcome, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	IsLoggedIn() bool
	CheckServerHealth(ctx context.Context) error
}

// AuthOption customizes an authService.
type AuthOption func(*authService)

// WithDemoDelay overrides DefaultDemoDelay.
func WithDemoDelay(d time.Duration) AuthOption {
	return func(a *authService) { a.demoDelay = d }
}

// WithIDGenerator sets the source of local ids for demo accounts.
func WithIDGenerator(next func() int64) AuthOption {
	return func(a *authService) { a.nextID = next }
}

// WithClock sets the time source used for createdAt.
func WithClock(now func() time.Time) AuthOption {
	return func(a *authService) { a.now = now }
}

type authService struct {
	users     client.UserClient
	store     *session.Store
	logger    logging.Logger
	demoDelay time.Duration
	nextID    func() int64
	now       func() time.Time
}

// NewAuthService constructs an AuthService bound to the user-service client
// and the session store.
func NewAuthService(users client.UserClient, store *session.Store, logger logging.Logger, opts ...AuthOption) (AuthService, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &authService{
		users:     users,
		store:     store,
		logger:    logger.With("component", "auth"),
		demoDelay: DefaultDemoDelay,
		now:       time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.nextID == nil {
		node, err := snowflake.NewNode(1)
		if err != nil {
			return nil, fmt.Errorf("init id generator: %w", err)
		}
		a.nextID = func() int64 { return node.Generate().Int64() }
	}
	return a, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.AuthOutcome, error) {
	token := a.store.Begin()

	dto, err := a.users.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return a.failure(ctx, "login", err)
	}
	return a.accept(ctx, token, "login", dto)
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (*models.AuthOutcome, error) {
	token := a.store.Begin()

	dto, err := a.users.Register(ctx, reg.Username, reg.Password, reg.FullName())
	if err == nil {
		return a.accept(ctx, token, "register", dto)
	}
	if errors.Is(err, client.ErrEmptyResponse) || !backendAbsent(err) {
		return a.failure(ctx, "register", err)
	}

	a.logger.Warn(ctx, "backend not available, registering in demo mode", "username", reg.Username, "error", err)

	id := a.nextID()
	createdAt := a.now()
	user := &models.User{
		ID:        &id,
		Username:  reg.Username,
		Email:     reg.Email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		CreatedAt: &createdAt,
	}

	if err := sleep(ctx, a.demoDelay); err != nil {
		return nil, err
	}
	if err := a.store.Commit(ctx, token, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &models.AuthOutcome{User: user.Clone(), Message: MsgDemoRegister}, nil
}

// backendAbsent reports whether err means the user service is not there at
// all. Only these three classes trigger the demo fallback.
func backendAbsent(err error) bool {
	apiErr := client.Classify(err)
	return errors.Is(apiErr, client.ErrNoConnection) ||
		errors.Is(apiErr, client.ErrNotFound) ||
		errors.Is(apiErr, client.ErrUnavailable)
}

func (a *authService) accept(ctx context.Context, token uint64, op string, dto *client.UserDTO) (*models.AuthOutcome, error) {
	user := mapUser(dto, a.now())
	if err := a.store.Commit(ctx, token, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.logger.Info(ctx, op+" succeeded", "username", user.Username)
	return &models.AuthOutcome{User: user.Clone(), Message: MsgAuthSuccess}, nil
}

// failure turns a transport error into the value returned to the caller.
// Context cancellation is passed through; an empty body is an outcome
// without a user, not an error.
func (a *authService) failure(ctx context.Context, op string, err error) (*models.AuthOutcome, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if errors.Is(err, client.ErrEmptyResponse) {
		a.logger.Warn(ctx, op+" returned no account", "error", err)
		return &models.AuthOutcome{Message: MsgEmptyAnswer}, nil
	}

	apiErr := client.Classify(err)
	a.logger.Error(ctx, op+" failed", "status", apiErr.Status, "error", err)
	return nil, apiErr
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) CurrentUser() *models.User {
	return a.store.Current()
}

func (a *authService) IsLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *authService) CheckServerHealth(ctx context.Context) error {
	if err := a.users.Ping(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return client.Classify(err)
	}
	return nil
}

// mapUser normalizes the backend payload. The backend has neither an e-mail
// column nor a creation timestamp.
func mapUser(dto *client.UserDTO, now time.Time) *models.User {
	u := &models.User{
		Username:  dto.Username,
		Email:     dto.Email,
		CreatedAt: &now,
	}
	if dto.ID != nil {
		id := *dto.ID
		u.ID = &id
	}
	if u.Email == "" {
		u.Email = dto.Username + "@example.com"
	}
	if dto.FullName != nil && *dto.FullName != "" {
		parts := strings.Split(*dto.FullName, " ")
		u.FirstName = parts[0]
		u.LastName = strings.Join(parts[1:], " ")
	}
	return u
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
