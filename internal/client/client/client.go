package client

import (
	"context"

	"github.com/AndresYusty/cat-frontend/internal/client/models"
)

// UserDTO is the account payload returned by the user service on login and
// registration. The backend has no e-mail column and no first/last split.
type UserDTO struct {
	ID       *int64  `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"fullName,omitempty"`
	Email    string  `json:"email,omitempty"`
}

// UserClient talks to the user-authentication backend.
type UserClient interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*UserDTO, error)
	Register(ctx context.Context, username, password, fullName string) (*UserDTO, error)
}

// CatClient talks to the third-party cat-data API.
type CatClient interface {
	ListBreeds(ctx context.Context) ([]models.Breed, error)
	GetBreed(ctx context.Context, breedID string) (*models.Breed, error)
	SearchBreeds(ctx context.Context, params models.SearchParams) ([]models.Breed, error)
	ListImages(ctx context.Context, breedID string, limit int) ([]models.Image, error)
}
