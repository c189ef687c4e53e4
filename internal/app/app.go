package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/cartd/internal/config"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/recipes"
	"github.com/sandeepkv93/cartd/internal/storage"
)

// App holds the loaded grocery state and its collaborators for one session.
type App struct {
	Config  config.RuntimeConfig
	Log     zerolog.Logger
	Store   storage.Store
	Prefs   model.Preferences
	History *grocery.HistoryStore
	List    *grocery.ListController
	Recipes recipes.Source
}

// Open opens the configured store and loads the persisted state.
func Open(ctx context.Context, cfg config.RuntimeConfig, log zerolog.Logger) (*App, error) {
	store, err := storage.Open(storage.Backend(cfg.StoreBackend), cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	source := recipes.NewMealDB(recipes.MealDBOptions{
		BaseURL: cfg.RecipeAPIBaseURL,
		Timeout: cfg.RecipeTimeout,
		Logger:  log.With().Str("component", "recipes").Logger(),
	})
	log.Info().Str("store", cfg.StoreBackend).Str("path", cfg.DBPath).Msg("store opened")
	return New(ctx, cfg, store, source, log), nil
}

// New wires an App around an already opened store.
func New(ctx context.Context, cfg config.RuntimeConfig, store storage.Store, source recipes.Source, log zerolog.Logger) *App {
	prefs := grocery.LoadPreferences(ctx, store, log)
	history := grocery.LoadHistory(ctx, store, log.With().Str("component", "history").Logger(), grocery.HistoryOptions{
		MaxPurchases: cfg.MaxHistoryItems,
	})
	list := grocery.LoadOrCreateList(ctx, store, prefs, history, log.With().Str("component", "list").Logger(), grocery.ControllerOptions{})
	return &App{
		Config:  cfg,
		Log:     log,
		Store:   store,
		Prefs:   prefs,
		History: history,
		List:    list,
		Recipes: source,
	}
}

func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

// Reset empties the list and wipes the purchase history.
func (a *App) Reset(ctx context.Context) {
	a.List.ClearAll(ctx)
	a.History.Reset(ctx)
	if err := a.Store.Delete(ctx, storage.KeyUserPreferences); err != nil && !errors.Is(err, storage.ErrNotFound) {
		a.Log.Error().Err(err).Str("key", storage.KeyUserPreferences).Msg("reset preferences failed")
	}
	a.Prefs = model.DefaultPreferences()
}

// SetDefaultBudget stores the budget new lists start with; nil clears it.
func (a *App) SetDefaultBudget(ctx context.Context, amount *float64) {
	a.Prefs.DefaultBudget = nil
	if amount != nil {
		v := *amount
		a.Prefs.DefaultBudget = &v
	}
	grocery.SavePreferences(ctx, a.Store, a.Prefs, a.Log)
}

// LastSaved reports when the list was last written, for stores that track
// write times.
func (a *App) LastSaved(ctx context.Context) (time.Time, bool) {
	ts, ok := a.Store.(storage.Timestamped)
	if !ok {
		return time.Time{}, false
	}
	at, err := ts.UpdatedAt(ctx, storage.KeyCurrentList)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.Log.Warn().Err(err).Msg("read list timestamp failed")
		}
		return time.Time{}, false
	}
	return at, true
}

// AddRecipe adds every ingredient of the recipe to the list.
func (a *App) AddRecipe(ctx context.Context, id string) (recipes.Recipe, []model.Item, bool) {
	r, ok := a.Recipes.GetByID(ctx, id)
	if !ok {
		return recipes.Recipe{}, nil, false
	}
	return r, a.List.AddMany(ctx, grocery.NewItemsFromIngredients(Ingredients(r), r.Name)), true
}

// Ingredients converts recipe ingredients to list inputs.
func Ingredients(r recipes.Recipe) []grocery.Ingredient {
	out := make([]grocery.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		out = append(out, grocery.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}
	return out
}
