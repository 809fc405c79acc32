package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/common"
)

// DefaultImageLimit is used by ListImages when no positive limit is given.
const DefaultImageLimit = 10

// HTTPCatClient is the CatClient of the cat-data API. Failures are returned
// as-is; there is no retry and no caching.
type HTTPCatClient struct {
	rest *restClient
}

var _ CatClient = (*HTTPCatClient)(nil)

func NewCatClient(baseURL, apiKey string, opts ...Option) *HTTPCatClient {
	rest := newRestClient(baseURL, opts)
	rest.header.Set(common.APIKeyHeaderName, apiKey)
	return &HTTPCatClient{rest: rest}
}

func (c *HTTPCatClient) ListBreeds(ctx context.Context) ([]models.Breed, error) {
	var breeds []models.Breed
	if err := c.rest.get(ctx, "/breeds", nil, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

func (c *HTTPCatClient) GetBreed(ctx context.Context, breedID string) (*models.Breed, error) {
	var breed models.Breed
	if err := c.rest.get(ctx, "/breeds/"+url.PathEscape(breedID), nil, &breed); err != nil {
		return nil, err
	}
	return &breed, nil
}

func (c *HTTPCatClient) SearchBreeds(ctx context.Context, params models.SearchParams) ([]models.Breed, error) {
	q := url.Values{}
	if params.Q != "" {
		q.Set("q", params.Q)
	}
	if params.AttachBreed {
		q.Set("attach_breed", "1")
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	var breeds []models.Breed
	if err := c.rest.get(ctx, "/breeds/search", q, &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

func (c *HTTPCatClient) ListImages(ctx context.Context, breedID string, limit int) ([]models.Image, error) {
	if limit <= 0 {
		limit = DefaultImageLimit
	}
	q := url.Values{}
	q.Set("breed_ids", breedID)
	q.Set("limit", strconv.Itoa(limit))

	var images []models.Image
	if err := c.rest.get(ctx, "/images/search", q, &images); err != nil {
		return nil, err
	}
	return images, nil
}
