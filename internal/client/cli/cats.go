package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AndresYusty/cat-frontend/internal/client/client"
	"github.com/AndresYusty/cat-frontend/internal/client/models"
)

// breedImageLimit is how many images "breed <id>" shows.
const breedImageLimit = 5

func (a *App) Breeds(ctx context.Context) error {
	breeds, err := a.catService.Breeds(ctx)
	if err != nil {
		fmt.Fprintln(a.out, catErrorMessage(err))
		return err
	}
	a.printBreeds(breeds)
	return nil
}

func (a *App) Search(ctx context.Context, text string) error {
	breeds, err := a.catService.Search(ctx, text)
	if err != nil {
		fmt.Fprintln(a.out, catErrorMessage(err))
		return err
	}
	if len(breeds) == 0 {
		fmt.Fprintf(a.out, "No breeds match %q\n", text)
		return nil
	}
	a.printBreeds(breeds)
	return nil
}

func (a *App) Breed(ctx context.Context, id string) error {
	d, err := a.catService.Breed(ctx, id, breedImageLimit)
	if err != nil {
		fmt.Fprintln(a.out, catErrorMessage(err))
		return err
	}

	b := d.Breed
	fmt.Fprintf(a.out, "%s (%s)\n", b.Name, b.ID)
	if b.Origin != "" {
		fmt.Fprintf(a.out, "  Origin:       %s\n", b.Origin)
	}
	if traits := b.TemperamentList(); len(traits) > 0 {
		fmt.Fprintf(a.out, "  Temperament:  %s\n", strings.Join(traits, ", "))
	}
	if b.LifeSpan != "" {
		fmt.Fprintf(a.out, "  Life span:    %s years\n", b.LifeSpan)
	}
	if b.Weight.Metric != "" {
		fmt.Fprintf(a.out, "  Weight:       %s kg\n", b.Weight.Metric)
	}
	if b.Intelligence > 0 {
		fmt.Fprintf(a.out, "  Intelligence: %d/5\n", b.Intelligence)
	}
	if b.EnergyLevel > 0 {
		fmt.Fprintf(a.out, "  Energy level: %d/5\n", b.EnergyLevel)
	}
	if b.WikipediaURL != "" {
		fmt.Fprintf(a.out, "  Wikipedia:    %s\n", b.WikipediaURL)
	}
	if b.Description != "" {
		fmt.Fprintf(a.out, "\n%s\n", b.Description)
	}
	if len(d.Images) > 0 {
		fmt.Fprintln(a.out)
		a.printImages(d.Images)
	}
	return nil
}

func (a *App) Images(ctx context.Context, id string, limit int) error {
	images, err := a.catService.Images(ctx, id, limit)
	if err != nil {
		fmt.Fprintln(a.out, catErrorMessage(err))
		return err
	}
	if len(images) == 0 {
		fmt.Fprintf(a.out, "No images for %s\n", id)
		return nil
	}
	a.printImages(images)
	return nil
}

func (a *App) printBreeds(breeds []models.Breed) {
	for _, b := range breeds {
		if b.Origin != "" {
			fmt.Fprintf(a.out, "%-6s %s (%s)\n", b.ID, b.Name, b.Origin)
		} else {
			fmt.Fprintf(a.out, "%-6s %s\n", b.ID, b.Name)
		}
	}
	fmt.Fprintf(a.out, "%d breed(s)\n", len(breeds))
}

func (a *App) printImages(images []models.Image) {
	for _, img := range images {
		fmt.Fprintf(a.out, "  %s (%dx%d)\n", img.URL, img.Width, img.Height)
	}
}

// catErrorMessage renders a cat API failure. These are not classified like
// user-service errors, so the raw status is shown.
func catErrorMessage(err error) string {
	var he *client.HTTPError
	if !errors.As(err, &he) {
		return errorMessage(err)
	}
	if he.Status == 0 {
		return "Cat API is not reachable."
	}
	return fmt.Sprintf("Cat API error: %d %s", he.Status, http.StatusText(he.Status))
}
