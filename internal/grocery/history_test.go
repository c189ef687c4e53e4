package grocery

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/storage"
)

func newTestHistory(t *testing.T, store storage.Store, max int) (*HistoryStore, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)}
	return NewHistoryStore(store, zerolog.Nop(), HistoryOptions{MaxPurchases: max, Now: clock.Now}), clock
}

func TestRecordCompletionKeepsOnlyCompletedItems(t *testing.T) {
	h, clock := newTestHistory(t, storage.NewMemoryStore(), 0)
	added := clock.now.Add(-48 * time.Hour)
	got := h.RecordCompletion(t.Context(), []model.Item{
		{ID: "1", Name: "Milk", Completed: true, AddedAt: added, Quantity: 1},
		{ID: "2", Name: "Bread", AddedAt: added, Quantity: 1},
	})
	if got != 1 {
		t.Fatalf("expected 1 recorded purchase, got %d", got)
	}
	hist := h.History()
	if len(hist.Purchases) != 1 || hist.Purchases[0].Name != "Milk" {
		t.Fatalf("unexpected purchases: %+v", hist.Purchases)
	}
	p := hist.Purchases[0]
	if p.LastPurchasedAt == nil || !p.LastPurchasedAt.Equal(clock.now) || !p.AddedAt.Equal(clock.now) {
		t.Fatalf("expected purchase stamped with now, got %+v", p)
	}
	if len(hist.FrequentItems) != 1 || hist.FrequentItems[0].Frequency != 1 {
		t.Fatalf("unexpected frequent items: %+v", hist.FrequentItems)
	}
}

func TestRecordCompletionCapsPurchasesFIFO(t *testing.T) {
	h, _ := newTestHistory(t, storage.NewMemoryStore(), 0)
	for i := 0; i < 1001; i++ {
		h.RecordCompletion(t.Context(), []model.Item{{ID: fmt.Sprint(i), Name: fmt.Sprintf("item-%04d", i), Completed: true, Quantity: 1}})
	}
	hist := h.History()
	if len(hist.Purchases) != DefaultMaxPurchases {
		t.Fatalf("expected %d purchases, got %d", DefaultMaxPurchases, len(hist.Purchases))
	}
	if hist.Purchases[0].Name != "item-0001" {
		t.Fatalf("expected oldest entry evicted, first is %q", hist.Purchases[0].Name)
	}
	if hist.Purchases[len(hist.Purchases)-1].Name != "item-1000" {
		t.Fatalf("expected newest entry kept, last is %q", hist.Purchases[len(hist.Purchases)-1].Name)
	}
}

func TestFrequentItemsSortedAndCapped(t *testing.T) {
	h, clock := newTestHistory(t, storage.NewMemoryStore(), 0)
	h.RecordCompletion(t.Context(), []model.Item{{Name: "EGGS", Completed: true, Quantity: 12}})
	for i := 0; i < 60; i++ {
		h.RecordCompletion(t.Context(), []model.Item{{Name: fmt.Sprintf("thing-%d", i), Completed: true, Quantity: 1}})
	}
	for round := 0; round < 2; round++ {
		clock.Advance(time.Minute)
		h.RecordCompletion(t.Context(), []model.Item{{Name: "EGGS", Completed: true, Quantity: 12}})
		freq := h.History().FrequentItems
		if len(freq) > MaxFrequentItems {
			t.Fatalf("frequent items exceeded cap: %d", len(freq))
		}
		for i := 1; i < len(freq); i++ {
			if freq[i-1].Frequency < freq[i].Frequency {
				t.Fatalf("frequent items not sorted at %d: %d < %d", i, freq[i-1].Frequency, freq[i].Frequency)
			}
		}
	}
	h.RecordCompletion(t.Context(), []model.Item{{Name: "eggs", Completed: true, Quantity: 6}})
	top := h.History().FrequentItems[0]
	if top.Template.Name != "EGGS" || top.Frequency != 4 {
		t.Fatalf("expected case-insensitive frequency merge, got %+v", top)
	}
	if !top.LastPurchasedAt.Equal(clock.now) {
		t.Fatalf("expected refreshed timestamp, got %v", top.LastPurchasedAt)
	}
}

func TestHistoryPersistsAndReloads(t *testing.T) {
	store := storage.NewMemoryStore()
	h, _ := newTestHistory(t, store, 0)
	h.RecordCompletion(t.Context(), []model.Item{{Name: "Coffee", Completed: true, Quantity: 1, Price: floatPtr(9.5)}})

	reloaded := LoadHistory(t.Context(), store, zerolog.Nop(), HistoryOptions{})
	hist := reloaded.History()
	if len(hist.Purchases) != 1 || hist.Purchases[0].Name != "Coffee" {
		t.Fatalf("unexpected reloaded purchases: %+v", hist.Purchases)
	}
	if hist.FrequentItems[0].Template.Price == nil || *hist.FrequentItems[0].Template.Price != 9.5 {
		t.Fatalf("expected template price carried over: %+v", hist.FrequentItems[0])
	}

	reloaded.Reset(t.Context())
	if len(reloaded.History().Purchases) != 0 {
		t.Fatal("expected empty history after reset")
	}
	if _, err := store.Get(t.Context(), storage.KeyShoppingHistory); err == nil {
		t.Fatal("expected persisted history removed after reset")
	}
}

func TestLoadHistoryDefaultsToEmpty(t *testing.T) {
	h := LoadHistory(t.Context(), storage.NewMemoryStore(), zerolog.Nop(), HistoryOptions{})
	hist := h.History()
	if len(hist.Purchases) != 0 || len(hist.FrequentItems) != 0 {
		t.Fatalf("expected empty history, got %+v", hist)
	}

	corrupt := storage.NewMemoryStore()
	_ = corrupt.Set(t.Context(), storage.KeyShoppingHistory, []byte("{"))
	if got := LoadHistory(t.Context(), corrupt, zerolog.Nop(), HistoryOptions{}).History(); len(got.Purchases) != 0 {
		t.Fatalf("expected empty history for corrupt payload")
	}
}

func TestHistoryPersistFailureKeepsMemoryState(t *testing.T) {
	h, _ := newTestHistory(t, failingStore{}, 0)
	h.RecordCompletion(t.Context(), []model.Item{{Name: "Tea", Completed: true, Quantity: 1}})
	if len(h.History().Purchases) != 1 {
		t.Fatal("expected in-memory history to survive persistence failure")
	}
}

func TestHistoryHonorsConfiguredCap(t *testing.T) {
	h, _ := newTestHistory(t, storage.NewMemoryStore(), 3)
	for i := 0; i < 5; i++ {
		h.RecordCompletion(t.Context(), []model.Item{{Name: fmt.Sprint(i), Completed: true, Quantity: 1}})
	}
	purchases := h.History().Purchases
	if len(purchases) != 3 || purchases[0].Name != "2" {
		t.Fatalf("unexpected capped purchases: %+v", purchases)
	}
}
