package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/client/services"
	"github.com/AndresYusty/cat-frontend/internal/logging"
)

type fakeAuth struct {
	user *models.User

	loginCreds models.Credentials
	loginOut   *models.AuthOutcome
	loginErr   error

	regIn  models.Registration
	regOut *models.AuthOutcome
	regErr error

	logoutCalled bool
	logoutErr    error

	healthErr error
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (*models.AuthOutcome, error) {
	f.loginCreds = c
	if f.loginErr == nil && f.loginOut != nil && f.loginOut.User != nil {
		f.user = f.loginOut.User
	}
	return f.loginOut, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, r models.Registration) (*models.AuthOutcome, error) {
	f.regIn = r
	if f.regErr == nil && f.regOut != nil && f.regOut.User != nil {
		f.user = f.regOut.User
	}
	return f.regOut, f.regErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.user = nil
	return nil
}

func (f *fakeAuth) CurrentUser() *models.User               { return f.user }
func (f *fakeAuth) IsLoggedIn() bool                        { return f.user != nil }
func (f *fakeAuth) CheckServerHealth(context.Context) error { return f.healthErr }

type fakeCats struct {
	breeds    []models.Breed
	details   *services.BreedDetails
	images    []models.Image
	err       error
	lastText  string
	lastLimit int
}

var _ services.CatService = (*fakeCats)(nil)

func (f *fakeCats) Breeds(context.Context) ([]models.Breed, error) { return f.breeds, f.err }

func (f *fakeCats) Breed(_ context.Context, _ string, limit int) (*services.BreedDetails, error) {
	f.lastLimit = limit
	return f.details, f.err
}

func (f *fakeCats) Search(_ context.Context, text string) ([]models.Breed, error) {
	f.lastText = text
	return f.breeds, f.err
}

func (f *fakeCats) Images(_ context.Context, _ string, limit int) ([]models.Image, error) {
	f.lastLimit = limit
	return f.images, f.err
}

// newTestApp builds an App writing to a buffer.
func newTestApp(auth *fakeAuth, cats *fakeCats) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		logger:      logging.Nop(),
		authService: auth,
		catService:  cats,
		reader:      bufio.NewReader(&bytes.Buffer{}),
		out:         &out,
	}, &out
}

// stubInputs answers text prompts from texts in order and password prompts
// from passwords in order.
func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(string, io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
