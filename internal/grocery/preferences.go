package grocery

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/storage"
)

// LoadPreferences returns the stored preferences merged over the defaults.
func LoadPreferences(ctx context.Context, store storage.Store, log zerolog.Logger) model.Preferences {
	prefs := model.DefaultPreferences()
	found, err := storage.LoadJSON(ctx, store, storage.KeyUserPreferences, &prefs)
	if err != nil {
		log.Error().Err(err).Str("key", storage.KeyUserPreferences).Msg("load preferences failed, using defaults")
		return model.DefaultPreferences()
	}
	if !found {
		return prefs
	}
	if len(prefs.PreferredUnits) == 0 {
		prefs.PreferredUnits = model.DefaultPreferences().PreferredUnits
	}
	return prefs
}

// SavePreferences writes prefs; failures are logged.
func SavePreferences(ctx context.Context, store storage.Store, prefs model.Preferences, log zerolog.Logger) {
	if err := storage.SaveJSON(ctx, store, storage.KeyUserPreferences, prefs); err != nil {
		log.Error().Err(err).Str("key", storage.KeyUserPreferences).Msg("persist preferences failed")
	}
}
