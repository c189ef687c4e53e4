package recipes

import "context"

type SearchResult struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	ImageURL       string `json:"image_url,omitempty"`
	ReadyInMinutes int    `json:"ready_in_minutes"`
}

type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Ingredients    []Ingredient `json:"ingredients"`
	Servings       int          `json:"servings"`
	ImageURL       string       `json:"image_url,omitempty"`
	Instructions   string       `json:"instructions,omitempty"`
	ReadyInMinutes int          `json:"ready_in_minutes,omitempty"`
	SourceURL      string       `json:"source_url,omitempty"`
}

// Source looks up recipes. Implementations never fail: lookups that cannot
// be served fall back to built-in data or report a miss.
type Source interface {
	Search(ctx context.Context, query string) []SearchResult
	GetByID(ctx context.Context, id string) (Recipe, bool)
	Random(ctx context.Context, count int) []SearchResult
}
