package grocery

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/storage"
)

const (
	DefaultMaxPurchases = 1000
	MaxFrequentItems    = 50
)

type HistoryOptions struct {
	MaxPurchases int
	Now          func() time.Time
}

// HistoryStore keeps purchased items and frequency counts. Every mutation
// is written through to the store; write failures are logged only.
type HistoryStore struct {
	store        storage.Store
	log          zerolog.Logger
	now          func() time.Time
	maxPurchases int
	history      model.History
}

func NewHistoryStore(store storage.Store, log zerolog.Logger, opts HistoryOptions) *HistoryStore {
	if opts.MaxPurchases <= 0 {
		opts.MaxPurchases = DefaultMaxPurchases
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &HistoryStore{
		store:        store,
		log:          log,
		now:          opts.Now,
		maxPurchases: opts.MaxPurchases,
		history:      emptyHistory(),
	}
}

// LoadHistory builds a HistoryStore from the persisted history. A missing or
// unreadable record yields an empty history.
func LoadHistory(ctx context.Context, store storage.Store, log zerolog.Logger, opts HistoryOptions) *HistoryStore {
	h := NewHistoryStore(store, log, opts)
	var persisted model.History
	found, err := storage.LoadJSON(ctx, store, storage.KeyShoppingHistory, &persisted)
	switch {
	case err != nil:
		log.Error().Err(err).Str("key", storage.KeyShoppingHistory).Msg("load history failed, starting empty")
	case found:
		if persisted.Purchases == nil {
			persisted.Purchases = []model.Item{}
		}
		if persisted.FrequentItems == nil {
			persisted.FrequentItems = []model.FrequentItem{}
		}
		h.history = persisted
		h.truncate()
	}
	return h
}

func (h *HistoryStore) History() model.History {
	return h.history.Clone()
}

func (h *HistoryStore) Purchases() []model.Item {
	return h.History().Purchases
}

// RecordCompletion moves the completed items among items into history.
// It returns how many purchases were recorded.
func (h *HistoryStore) RecordCompletion(ctx context.Context, items []model.Item) int {
	now := h.now()
	recorded := 0
	for _, it := range items {
		if !it.Completed {
			continue
		}
		purchase := it.Clone()
		ts := now
		purchase.LastPurchasedAt = &ts
		purchase.AddedAt = now
		h.history.Purchases = append(h.history.Purchases, purchase)
		h.bumpFrequent(purchase, now)
		recorded++
	}
	if recorded == 0 {
		return 0
	}
	h.truncate()
	h.persist(ctx)
	return recorded
}

// Reset wipes purchases and frequency counts.
func (h *HistoryStore) Reset(ctx context.Context) {
	h.history = emptyHistory()
	if err := h.store.Delete(ctx, storage.KeyShoppingHistory); err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.log.Error().Err(err).Str("key", storage.KeyShoppingHistory).Msg("reset history failed")
	}
}

func (h *HistoryStore) bumpFrequent(it model.Item, at time.Time) {
	key := nameKey(it.Name)
	for i := range h.history.FrequentItems {
		if nameKey(h.history.FrequentItems[i].Template.Name) == key {
			h.history.FrequentItems[i].Frequency++
			h.history.FrequentItems[i].LastPurchasedAt = at
			return
		}
	}
	h.history.FrequentItems = append(h.history.FrequentItems, model.FrequentItem{
		Template:        it.Template(),
		Frequency:       1,
		LastPurchasedAt: at,
	})
}

func (h *HistoryStore) truncate() {
	sort.SliceStable(h.history.FrequentItems, func(i, j int) bool {
		return h.history.FrequentItems[i].Frequency > h.history.FrequentItems[j].Frequency
	})
	if len(h.history.FrequentItems) > MaxFrequentItems {
		h.history.FrequentItems = h.history.FrequentItems[:MaxFrequentItems]
	}
	if over := len(h.history.Purchases) - h.maxPurchases; over > 0 {
		h.history.Purchases = append([]model.Item(nil), h.history.Purchases[over:]...)
	}
}

func (h *HistoryStore) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, h.store, storage.KeyShoppingHistory, h.history); err != nil {
		h.log.Error().Err(err).Str("key", storage.KeyShoppingHistory).Msg("persist history failed")
	}
}

func emptyHistory() model.History {
	return model.History{Purchases: []model.Item{}, FrequentItems: []model.FrequentItem{}}
}
