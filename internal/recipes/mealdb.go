package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"
	DefaultTimeout = 8 * time.Second

	maxSearchResults  = 12
	maxRandomRequests = 3
	defaultReadyIn    = 30
	defaultServings   = 4
	maxIngredients    = 20
)

var errNoMeals = errors.New("recipes: no meals in response")

type MealDBOptions struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// MealDB looks recipes up on TheMealDB and falls back to the static set on
// any failure.
type MealDB struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        zerolog.Logger
	static     *Static
}

func NewMealDB(opts MealDBOptions) *MealDB {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	return &MealDB{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		httpClient: opts.HTTPClient,
		log:        opts.Logger,
		static:     NewStatic(),
	}
}

type meal map[string]any

type mealsResponse struct {
	Meals []meal `json:"meals"`
}

func (m meal) str(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func (m *MealDB) Search(ctx context.Context, query string) []SearchResult {
	meals, err := m.fetch(ctx, "search.php", url.Values{"s": {query}})
	if err != nil {
		if !errors.Is(err, errNoMeals) {
			m.log.Error().Err(err).Str("query", query).Msg("recipe search failed, using static recipes")
		}
		return m.static.search(query)
	}
	if len(meals) > maxSearchResults {
		meals = meals[:maxSearchResults]
	}
	out := make([]SearchResult, 0, len(meals))
	for _, ml := range meals {
		out = append(out, ml.summary())
	}
	return out
}

func (m *MealDB) GetByID(ctx context.Context, id string) (Recipe, bool) {
	if isStaticID(id) {
		if r, ok := staticByID(id); ok {
			return r, true
		}
	}
	meals, err := m.fetch(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		if errors.Is(err, errNoMeals) {
			return Recipe{}, false
		}
		m.log.Error().Err(err).Str("id", id).Msg("recipe lookup failed")
		if isStaticID(id) {
			return staticByID(id)
		}
		return Recipe{}, false
	}
	return meals[0].recipe(), true
}

// Random fetches up to three live recipes, one request each, and fills the
// rest of count with shuffled static recipes.
func (m *MealDB) Random(ctx context.Context, count int) []SearchResult {
	if count <= 0 {
		return []SearchResult{}
	}
	out := make([]SearchResult, 0, count)
	for i := 0; i < min(count, maxRandomRequests); i++ {
		meals, err := m.fetch(ctx, "random.php", nil)
		if err != nil {
			if !errors.Is(err, errNoMeals) {
				m.log.Warn().Err(err).Msg("random recipe request failed")
			}
			continue
		}
		out = append(out, meals[0].summary())
	}
	if remaining := count - len(out); remaining > 0 {
		out = append(out, m.static.random(remaining)...)
	}
	return out
}

func (m *MealDB) fetch(ctx context.Context, endpoint string, params url.Values) ([]meal, error) {
	reqCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	target := m.baseURL + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mealdb %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mealdb %s: status %d - %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded mealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("mealdb %s: decode: %w", endpoint, err)
	}
	if len(decoded.Meals) == 0 {
		return nil, errNoMeals
	}
	return decoded.Meals, nil
}

func (ml meal) summary() SearchResult {
	return SearchResult{
		ID:             ml.str("idMeal"),
		Title:          ml.str("strMeal"),
		ImageURL:       ml.str("strMealThumb"),
		ReadyInMinutes: defaultReadyIn,
	}
}

func (ml meal) recipe() Recipe {
	id := ml.str("idMeal")
	return Recipe{
		ID:             id,
		Name:           ml.str("strMeal"),
		Ingredients:    ml.ingredients(),
		Servings:       defaultServings,
		ImageURL:       ml.str("strMealThumb"),
		Instructions:   ml.str("strInstructions"),
		ReadyInMinutes: defaultReadyIn,
		SourceURL:      "https://www.themealdb.com/meal/" + id,
	}
}

func (ml meal) ingredients() []Ingredient {
	out := make([]Ingredient, 0, maxIngredients)
	for i := 1; i <= maxIngredients; i++ {
		name := strings.TrimSpace(ml.str("strIngredient" + strconv.Itoa(i)))
		if name == "" {
			continue
		}
		measure := ml.str("strMeasure" + strconv.Itoa(i))
		if strings.TrimSpace(measure) == "" {
			measure = "1"
		}
		qty, unit := ParseMeasurement(measure)
		out = append(out, Ingredient{Name: name, Quantity: qty, Unit: unit})
	}
	return out
}
