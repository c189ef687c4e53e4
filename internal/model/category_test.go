package model

import (
	"errors"
	"testing"
)

func TestCategoriesOrderAndLabels(t *testing.T) {
	cats := Categories()
	if len(cats) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(cats))
	}
	if cats[0] != CategoryProduce || cats[len(cats)-1] != CategoryOther {
		t.Fatalf("unexpected order: %v", cats)
	}
	if CategoryMeatSeafood.Label() != "Meat & Seafood" {
		t.Fatalf("unexpected label: %q", CategoryMeatSeafood.Label())
	}
	if Category("nope").Label() != "Other" {
		t.Fatalf("expected unknown category label to be Other")
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"produce", CategoryProduce},
		{"Meat & Seafood", CategoryMeatSeafood},
		{"PERSONAL_CARE", CategoryPersonalCare},
		{"personal care", CategoryPersonalCare},
		{"meat", CategoryMeatSeafood},
		{"garden", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLookupCategoryStrict(t *testing.T) {
	if _, err := LookupCategory("garden"); err == nil || !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	c, err := LookupCategory(" Frozen ")
	if err != nil || c != CategoryFrozen {
		t.Fatalf("expected frozen, got %q err=%v", c, err)
	}
}

func TestListBudgetHelpers(t *testing.T) {
	l := List{TotalCost: 30}
	if _, ok := l.RemainingBudget(); ok {
		t.Fatal("expected no budget")
	}
	if l.OverBudget() {
		t.Fatal("list without budget cannot be over budget")
	}
	l.Budget = floatPtr(25)
	remaining, ok := l.RemainingBudget()
	if !ok || remaining != -5 {
		t.Fatalf("unexpected remaining budget: %v ok=%v", remaining, ok)
	}
	if !l.OverBudget() {
		t.Fatal("expected over budget")
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if len(p.PreferredUnits) != 5 || p.PreferredUnits[0] != "pcs" {
		t.Fatalf("unexpected preferred units: %v", p.PreferredUnits)
	}
	if p.DefaultBudget != nil {
		t.Fatalf("expected no default budget")
	}
}
