package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AndresYusty/cat-frontend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServer(t *testing.T, h http.HandlerFunc) *HTTPUserClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewUserClient(srv.URL + "/")
}

func TestUserClient_Login_SendsQueryAndDecodes(t *testing.T) {
	var got *http.Request
	c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"username":"tom","fullName":"Tom Cat"}`))
	})

	dto, err := c.Login(context.Background(), "tom", "s3cret!")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/users/login", got.URL.Path)
	assert.Equal(t, "tom", got.URL.Query().Get("username"))
	assert.Equal(t, "s3cret!", got.URL.Query().Get("password"))
	assert.NotEmpty(t, got.Header.Get(common.RequestIDHeaderName))

	require.NotNil(t, dto.ID)
	assert.Equal(t, int64(42), *dto.ID)
	assert.Equal(t, "tom", dto.Username)
	require.NotNil(t, dto.FullName)
	assert.Equal(t, "Tom Cat", *dto.FullName)
}

func TestUserClient_Register_SendsFullName(t *testing.T) {
	var path, fullName string
	c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fullName = r.URL.Query().Get("fullName")
		_, _ = w.Write([]byte(`{"id":1,"username":"jane"}`))
	})

	dto, err := c.Register(context.Background(), "jane", "pw", "Jane")
	require.NoError(t, err)
	assert.Equal(t, "/users/register", path)
	assert.Equal(t, "Jane", fullName)
	assert.Nil(t, dto.FullName)
}

func TestUserClient_NonSuccessStatus(t *testing.T) {
	c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "tom", "bad")
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assert.Contains(t, string(he.Body), "nope")
}

func TestUserClient_EmptyOrInvalidBody(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        "",
		"null":         "null",
		"garbage":      "<html>",
		"no username":  `{"id":3}`,
		"empty object": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := c.Login(context.Background(), "tom", "pw")
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestUserClient_NoConnectionIsStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewUserClient(url)
	_, err := c.Register(context.Background(), "u", "p", "")

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, 0, he.Status)
	assert.ErrorIs(t, Classify(err), ErrNoConnection)
}

func TestUserClient_CanceledContextIsNotStatusZero(t *testing.T) {
	c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.ErrorIs(t, err, context.Canceled)
	var he *HTTPError
	assert.False(t, errors.As(err, &he))
}

func TestUserClient_Ping(t *testing.T) {
	var path string
	c := newUserServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "/users", path)
}

func TestUserClient_BadBaseURLIsRequestError(t *testing.T) {
	c := NewUserClient("http://[::1")
	_, err := c.Login(context.Background(), "u", "p")

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.ErrorIs(t, Classify(err), ErrClient)
}
