package model

import (
	"errors"
	"strings"
	"time"
)

const DefaultListName = "My Grocery List"

type List struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Items      []Item    `json:"items"`
	Budget     *float64  `json:"budget,omitempty"`
	TotalCost  float64   `json:"total_cost"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (l List) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("model: list id is required")
	}
	if l.Budget != nil && *l.Budget < 0 {
		return errors.New("model: list budget must be non-negative")
	}
	seen := make(map[string]bool, len(l.Items))
	for _, it := range l.Items {
		if err := it.Validate(); err != nil {
			return err
		}
		if seen[it.ID] {
			return errors.New("model: duplicate item id " + it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// Clone deep-copies the list so callers cannot mutate controller state.
func (l List) Clone() List {
	out := l
	out.Items = make([]Item, len(l.Items))
	for i, it := range l.Items {
		out.Items[i] = it.Clone()
	}
	if l.Budget != nil {
		b := *l.Budget
		out.Budget = &b
	}
	return out
}

// RemainingBudget reports budget minus total cost; ok is false without a budget.
func (l List) RemainingBudget() (remaining float64, ok bool) {
	if l.Budget == nil {
		return 0, false
	}
	return *l.Budget - l.TotalCost, true
}

func (l List) OverBudget() bool {
	remaining, ok := l.RemainingBudget()
	return ok && remaining < 0
}

// ItemTemplate is an Item without id, completion and added-at.
type ItemTemplate struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Price    *float64 `json:"price,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

type FrequentItem struct {
	Template        ItemTemplate `json:"item"`
	Frequency       int          `json:"frequency"`
	LastPurchasedAt time.Time    `json:"last_purchased_at"`
}

type History struct {
	Purchases     []Item         `json:"purchases"`
	FrequentItems []FrequentItem `json:"frequent_items"`
}

func (h History) Clone() History {
	out := History{
		Purchases:     make([]Item, len(h.Purchases)),
		FrequentItems: make([]FrequentItem, len(h.FrequentItems)),
	}
	for i, it := range h.Purchases {
		out.Purchases[i] = it.Clone()
	}
	for i, f := range h.FrequentItems {
		out.FrequentItems[i] = f
		if f.Template.Price != nil {
			p := *f.Template.Price
			out.FrequentItems[i].Template.Price = &p
		}
	}
	return out
}

type Preferences struct {
	DefaultBudget       *float64 `json:"default_budget,omitempty"`
	PreferredUnits      []string `json:"preferred_units"`
	FavoriteStores      []string `json:"favorite_stores"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		PreferredUnits:      []string{"pcs", "lbs", "oz", "gallon", "dozen"},
		FavoriteStores:      []string{},
		DietaryRestrictions: []string{},
	}
}
