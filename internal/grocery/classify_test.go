package grocery

import (
	"testing"

	"github.com/sandeepkv93/cartd/internal/model"
)

func TestCategorizeIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"APPLE", "apple", "ApPlE"} {
		if got := Categorize(name); got != model.CategoryProduce {
			t.Fatalf("Categorize(%q) = %q, want produce", name, got)
		}
	}
}

func TestCategorizeTable(t *testing.T) {
	cases := []struct {
		name string
		want model.Category
	}{
		{"unknown item", model.CategoryOther},
		{"", model.CategoryOther},
		{"Whole milk", model.CategoryDairy},
		{"Ground beef", model.CategoryMeatSeafood},
		{"Basmati rice", model.CategoryPantry},
		{"Frozen pizza", model.CategoryFrozen},
		{"Blueberry muffin", model.CategoryProduce},
		{"Sourdough bagel", model.CategoryBakery},
		{"Sparkling water", model.CategoryBeverages},
		{"Potato chips", model.CategoryProduce},
		{"Tortilla chips", model.CategorySnacks},
		{"Dish soap", model.CategoryHousehold},
		{"Toothpaste", model.CategoryPersonalCare},
		// first match wins: "cream" is a dairy keyword
		{"Ice cream", model.CategoryDairy},
	}
	for _, tc := range cases {
		if got := Categorize(tc.name); got != tc.want {
			t.Fatalf("Categorize(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
