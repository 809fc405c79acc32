package models

import "strings"

// Weight is a breed weight range in both unit systems.
type Weight struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

// Breed is a cat breed as returned by the cat-data API.
type Breed struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Origin           string `json:"origin,omitempty"`
	Temperament      string `json:"temperament,omitempty"`
	LifeSpan         string `json:"life_span,omitempty"`
	Intelligence     int    `json:"intelligence,omitempty"`
	EnergyLevel      int    `json:"energy_level,omitempty"`
	WikipediaURL     string `json:"wikipedia_url,omitempty"`
	ReferenceImageID string `json:"reference_image_id,omitempty"`
	Weight           Weight `json:"weight"`
}

// TemperamentList splits the comma-separated temperament into trimmed traits.
func (b Breed) TemperamentList() []string {
	if strings.TrimSpace(b.Temperament) == "" {
		return nil
	}
	parts := strings.Split(b.Temperament, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Image is a single cat picture.
type Image struct {
	ID     string  `json:"id"`
	URL    string  `json:"url"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Breeds []Breed `json:"breeds,omitempty"`
}

// SearchParams are the optional filters of a breed search. Zero values are
// left out of the query.
type SearchParams struct {
	Q           string
	AttachBreed bool
	Page        int
	Limit       int
}
