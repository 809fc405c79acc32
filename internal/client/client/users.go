package client

import (
	"context"
	"net/url"
)

// HTTPUserClient is the UserClient of the user-authentication backend.
// Login and registration are read-modeled by the backend: both are GETs with
// query parameters.
type HTTPUserClient struct {
	rest *restClient
}

var _ UserClient = (*HTTPUserClient)(nil)

func NewUserClient(baseURL string, opts ...Option) *HTTPUserClient {
	return &HTTPUserClient{rest: newRestClient(baseURL, opts)}
}

// Ping probes GET /users; any 2xx means the backend is reachable.
func (c *HTTPUserClient) Ping(ctx context.Context) error {
	return c.rest.get(ctx, "/users", nil, nil)
}

func (c *HTTPUserClient) Login(ctx context.Context, username, password string) (*UserDTO, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)
	return c.fetchUser(ctx, "/users/login", q)
}

func (c *HTTPUserClient) Register(ctx context.Context, username, password, fullName string) (*UserDTO, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)
	q.Set("fullName", fullName)
	return c.fetchUser(ctx, "/users/register", q)
}

func (c *HTTPUserClient) fetchUser(ctx context.Context, path string, q url.Values) (*UserDTO, error) {
	var dto UserDTO
	if err := c.rest.get(ctx, path, q, &dto); err != nil {
		return nil, err
	}
	if dto.Username == "" {
		return nil, ErrEmptyResponse
	}
	return &dto, nil
}
