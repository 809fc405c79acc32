package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AndresYusty/cat-frontend/internal/client/client"
	"github.com/AndresYusty/cat-frontend/internal/client/models"
	"github.com/AndresYusty/cat-frontend/internal/logging"
)

// BreedDetails is a breed together with a page of its images.
type BreedDetails struct {
	Breed  *models.Breed
	Images []models.Image
}

// CatService exposes the breed catalogue to the CLI.
type CatService interface {
	Breeds(ctx context.Context) ([]models.Breed, error)
	Breed(ctx context.Context, breedID string, imageLimit int) (*BreedDetails, error)
	Search(ctx context.Context, text string) ([]models.Breed, error)
	Images(ctx context.Context, breedID string, limit int) ([]models.Image, error)
}

type catService struct {
	cats   client.CatClient
	logger logging.Logger
}

func NewCatService(cats client.CatClient, logger logging.Logger) CatService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &catService{cats: cats, logger: logger.With("component", "cats")}
}

func (s *catService) Breeds(ctx context.Context) ([]models.Breed, error) {
	breeds, err := s.cats.ListBreeds(ctx)
	if err != nil {
		s.logger.Error(ctx, "list breeds failed", "error", err)
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

// Breed loads the breed and its images. A failure to load images is logged
// and yields details without images.
func (s *catService) Breed(ctx context.Context, breedID string, imageLimit int) (*BreedDetails, error) {
	breed, err := s.cats.GetBreed(ctx, breedID)
	if err != nil {
		s.logger.Error(ctx, "get breed failed", "breed", breedID, "error", err)
		return nil, fmt.Errorf("get breed %s: %w", breedID, err)
	}

	images, err := s.cats.ListImages(ctx, breedID, imageLimit)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn(ctx, "list images failed", "breed", breedID, "error", err)
	}
	return &BreedDetails{Breed: breed, Images: images}, nil
}

// Search looks breeds up by name. Empty text lists the whole catalogue.
func (s *catService) Search(ctx context.Context, text string) ([]models.Breed, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Breeds(ctx)
	}

	breeds, err := s.cats.SearchBreeds(ctx, models.SearchParams{Q: text, AttachBreed: true})
	if err != nil {
		s.logger.Error(ctx, "search breeds failed", "error", err)
		return nil, fmt.Errorf("search breeds: %w", err)
	}
	return breeds, nil
}

func (s *catService) Images(ctx context.Context, breedID string, limit int) ([]models.Image, error) {
	if limit <= 0 {
		limit = client.DefaultImageLimit
	}
	images, err := s.cats.ListImages(ctx, breedID, limit)
	if err != nil {
		s.logger.Error(ctx, "list images failed", "breed", breedID, "error", err)
		return nil, fmt.Errorf("list images %s: %w", breedID, err)
	}
	return images, nil
}
