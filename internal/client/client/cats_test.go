package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	path  string
	query url.Values
	key   string
}

func newCatServer(t *testing.T, body string, status int) (*HTTPCatClient, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.path = r.URL.EscapedPath()
		c.query = r.URL.Query()
		c.key = r.Header.Get("x-api-key")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewCatClient(srv.URL, "test-key"), c
}

func TestCatClient_ListBreeds(t *testing.T) {
	cl, c := newCatServer(t, `[{"id":"abys","name":"Abyssinian","temperament":"Active, Energetic"}]`, http.StatusOK)

	breeds, err := cl.ListBreeds(context.Background())
	require.NoError(t, err)
	require.Len(t, breeds, 1)
	assert.Equal(t, "abys", breeds[0].ID)
	assert.Equal(t, []string{"Active", "Energetic"}, breeds[0].TemperamentList())
	assert.Equal(t, "/breeds", c.path)
	assert.Equal(t, "test-key", c.key)
}

func TestCatClient_GetBreed_EscapesID(t *testing.T) {
	cl, c := newCatServer(t, `{"id":"a b","name":"Odd"}`, http.StatusOK)

	b, err := cl.GetBreed(context.Background(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "Odd", b.Name)
	assert.Equal(t, "/breeds/a%20b", c.path)
}

func TestCatClient_SearchBreeds_OnlyNonZeroParams(t *testing.T) {
	cl, c := newCatServer(t, `[]`, http.StatusOK)

	_, err := cl.SearchBreeds(context.Background(), models.SearchParams{Q: "sia", AttachBreed: true})
	require.NoError(t, err)
	assert.Equal(t, "/breeds/search", c.path)
	assert.Equal(t, url.Values{"q": {"sia"}, "attach_breed": {"1"}}, c.query)

	_, err = cl.SearchBreeds(context.Background(), models.SearchParams{Q: "x", Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"q": {"x"}, "page": {"2"}, "limit": {"5"}}, c.query)
}

func TestCatClient_ListImages_DefaultLimit(t *testing.T) {
	cl, c := newCatServer(t, `[{"id":"i1","url":"https://cdn/1.jpg"}]`, http.StatusOK)

	imgs, err := cl.ListImages(context.Background(), "beng", 0)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, "/images/search", c.path)
	assert.Equal(t, "beng", c.query.Get("breed_ids"))
	assert.Equal(t, "10", c.query.Get("limit"))

	_, err = cl.ListImages(context.Background(), "beng", 3)
	require.NoError(t, err)
	assert.Equal(t, "3", c.query.Get("limit"))
}

func TestCatClient_ErrorsPassThrough(t *testing.T) {
	cl, _ := newCatServer(t, `{"message":"bad key"}`, http.StatusUnauthorized)

	_, err := cl.ListBreeds(context.Background())
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assert.JSONEq(t, `{"message":"bad key"}`, string(he.Body))
}
