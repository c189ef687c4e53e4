package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("model: invalid item quantity")
	ErrInvalidPrice    = errors.New("model: invalid item price")
)

const DefaultUnit = "pcs"

type Item struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        Category   `json:"category"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Price           *float64   `json:"price,omitempty"`
	Completed       bool       `json:"completed"`
	AddedAt         time.Time  `json:"added_at"`
	LastPurchasedAt *time.Time `json:"last_purchased_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// Cost is price times quantity; items without a price cost nothing.
func (it Item) Cost() float64 {
	if it.Price == nil {
		return 0
	}
	return *it.Price * it.Quantity
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(it.Name) == "" {
		return errors.New("model: item name is required")
	}
	if !it.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, it.Category)
	}
	if it.Quantity <= 0 || math.IsNaN(it.Quantity) || math.IsInf(it.Quantity, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, it.Quantity)
	}
	if it.Price != nil && (*it.Price < 0 || math.IsNaN(*it.Price)) {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, *it.Price)
	}
	if it.AddedAt.IsZero() {
		return errors.New("model: item added_at is required")
	}
	return nil
}

// Clone copies the item including its pointer fields.
func (it Item) Clone() Item {
	out := it
	if it.Price != nil {
		p := *it.Price
		out.Price = &p
	}
	if it.LastPurchasedAt != nil {
		ts := *it.LastPurchasedAt
		out.LastPurchasedAt = &ts
	}
	return out
}

// Template strips the identity and lifecycle fields of the item.
func (it Item) Template() ItemTemplate {
	tpl := ItemTemplate{
		Name:     it.Name,
		Category: it.Category,
		Quantity: it.Quantity,
		Unit:     it.Unit,
		Notes:    it.Notes,
	}
	if it.Price != nil {
		p := *it.Price
		tpl.Price = &p
	}
	return tpl
}

// NormalizeQuantity coerces zero, negative and non-finite quantities to 1.
func NormalizeQuantity(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	return q
}

// NormalizePrice drops negative or non-finite prices.
func NormalizePrice(p *float64) *float64 {
	if p == nil || *p < 0 || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	v := *p
	return &v
}

// ItemPatch lists the fields to override on an existing item. Nil fields
// are left untouched.
type ItemPatch struct {
	Name       *string
	Category   *Category
	Quantity   *float64
	Unit       *string
	Price      *float64
	ClearPrice bool
	Notes      *string
	Completed  *bool
}

func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Quantity == nil && p.Unit == nil &&
		p.Price == nil && !p.ClearPrice && p.Notes == nil && p.Completed == nil
}

// Apply builds a new item from in with the patch fields overridden.
func (p ItemPatch) Apply(in Item) Item {
	out := in.Clone()
	if p.Name != nil {
		if name := strings.TrimSpace(*p.Name); name != "" {
			out.Name = name
		}
	}
	if p.Category != nil {
		if p.Category.IsValid() {
			out.Category = *p.Category
		} else {
			out.Category = CategoryOther
		}
	}
	if p.Quantity != nil {
		out.Quantity = NormalizeQuantity(*p.Quantity)
	}
	if p.Unit != nil {
		out.Unit = strings.TrimSpace(*p.Unit)
		if out.Unit == "" {
			out.Unit = DefaultUnit
		}
	}
	switch {
	case p.ClearPrice:
		out.Price = nil
	case p.Price != nil:
		out.Price = NormalizePrice(p.Price)
	}
	if p.Notes != nil {
		out.Notes = strings.TrimSpace(*p.Notes)
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}
