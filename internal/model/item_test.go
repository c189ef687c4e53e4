package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestItemValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	item := Item{
		ID:       "item-1",
		Name:     "Milk",
		Category: CategoryDairy,
		Quantity: 1,
		Unit:     "gallon",
		Price:    floatPtr(4.5),
		AddedAt:  now,
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid item, got error: %v", err)
	}
}

func TestItemValidateRejectsBadFields(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	item := Item{ID: "item-1", Name: "Milk", Category: Category("bogus"), Quantity: 1, AddedAt: now}
	if err := item.Validate(); err == nil || !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got: %v", err)
	}

	item.Category = CategoryDairy
	item.Quantity = 0
	if err := item.Validate(); err == nil || !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got: %v", err)
	}

	item.Quantity = 2
	item.Price = floatPtr(-1)
	if err := item.Validate(); err == nil || !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got: %v", err)
	}
}

func TestItemCost(t *testing.T) {
	if got := (Item{Quantity: 3}).Cost(); got != 0 {
		t.Fatalf("expected zero cost without price, got %v", got)
	}
	if got := (Item{Quantity: 2, Price: floatPtr(1.5)}).Cost(); got != 3 {
		t.Fatalf("expected cost 3, got %v", got)
	}
}

func TestNormalizeQuantity(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 1},
		{-4, 1},
		{0.5, 0.5},
		{12, 12},
	}
	for _, tc := range cases {
		if got := NormalizeQuantity(tc.in); got != tc.want {
			t.Fatalf("NormalizeQuantity(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestItemPatchApplyBuildsNewRecord(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	orig := Item{ID: "a", Name: "Apples", Category: CategoryProduce, Quantity: 2, Unit: "lbs", Price: floatPtr(3.99), AddedAt: now}

	qty := -3.0
	name := "  Green apples "
	patched := ItemPatch{Name: &name, Quantity: &qty, ClearPrice: true}.Apply(orig)

	if patched.Name != "Green apples" {
		t.Fatalf("unexpected name: %q", patched.Name)
	}
	if patched.Quantity != 1 {
		t.Fatalf("expected coerced quantity 1, got %v", patched.Quantity)
	}
	if patched.Price != nil {
		t.Fatalf("expected price cleared, got %v", *patched.Price)
	}
	if orig.Price == nil || *orig.Price != 3.99 || orig.Quantity != 2 {
		t.Fatalf("original item mutated: %+v", orig)
	}
	if patched.ID != "a" || !patched.AddedAt.Equal(now) {
		t.Fatalf("identity fields changed: %+v", patched)
	}
}

func TestItemPatchUnknownCategoryFallsBackToOther(t *testing.T) {
	bad := Category("spices-aisle")
	out := ItemPatch{Category: &bad}.Apply(Item{Category: CategoryPantry})
	if out.Category != CategoryOther {
		t.Fatalf("expected Other, got %q", out.Category)
	}
}

func TestItemJSONUsesISOTimestamps(t *testing.T) {
	added := time.Date(2026, 2, 9, 12, 30, 0, 0, time.UTC)
	raw, err := json.Marshal(Item{ID: "x", Name: "Eggs", Category: CategoryDairy, Quantity: 12, Unit: "pcs", AddedAt: added})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if generic["added_at"] != "2026-02-09T12:30:00Z" {
		t.Fatalf("unexpected added_at encoding: %v", generic["added_at"])
	}
	if generic["category"] != "dairy" {
		t.Fatalf("unexpected category encoding: %v", generic["category"])
	}

	var back Item
	if err := json.Unmarshal([]byte(`{"id":"y","name":"Thing","category":"Garden","quantity":1,"unit":"pcs","added_at":"2026-02-09T12:30:00Z"}`), &back); err != nil {
		t.Fatalf("unmarshal item: %v", err)
	}
	if back.Category != CategoryOther {
		t.Fatalf("expected unknown category to decode as Other, got %q", back.Category)
	}
	if !back.AddedAt.Equal(added) {
		t.Fatalf("unexpected added_at: %v", back.AddedAt)
	}
}
