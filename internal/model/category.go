package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("model: invalid category")

type Category string

const (
	CategoryProduce      Category = "produce"
	CategoryDairy        Category = "dairy"
	CategoryMeatSeafood  Category = "meat_seafood"
	CategoryPantry       Category = "pantry"
	CategoryFrozen       Category = "frozen"
	CategoryBakery       Category = "bakery"
	CategoryBeverages    Category = "beverages"
	CategorySnacks       Category = "snacks"
	CategoryHousehold    Category = "household"
	CategoryPersonalCare Category = "personal_care"
	CategoryOther        Category = "other"
)

var allCategories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeatSeafood,
	CategoryPantry,
	CategoryFrozen,
	CategoryBakery,
	CategoryBeverages,
	CategorySnacks,
	CategoryHousehold,
	CategoryPersonalCare,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryProduce:      "Produce",
	CategoryDairy:        "Dairy",
	CategoryMeatSeafood:  "Meat & Seafood",
	CategoryPantry:       "Pantry",
	CategoryFrozen:       "Frozen",
	CategoryBakery:       "Bakery",
	CategoryBeverages:    "Beverages",
	CategorySnacks:       "Snacks",
	CategoryHousehold:    "Household",
	CategoryPersonalCare: "Personal Care",
	CategoryOther:        "Other",
}

// Categories returns every category in display order, Other last.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human-facing name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

func (c Category) String() string {
	return c.Label()
}

// ParseCategory accepts either an identifier ("meat_seafood") or a label
// ("Meat & Seafood"), case-insensitively. Anything else maps to Other.
func ParseCategory(raw string) Category {
	c, err := LookupCategory(raw)
	if err != nil {
		return CategoryOther
	}
	return c
}

// LookupCategory is the strict form of ParseCategory.
func LookupCategory(raw string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCategory)
	}
	for _, c := range allCategories {
		if needle == string(c) || needle == strings.ToLower(categoryLabels[c]) {
			return c, nil
		}
	}
	// short forms typed in the palette: "meat", "personal"
	switch needle {
	case "meat", "seafood":
		return CategoryMeatSeafood, nil
	case "personal", "personal-care":
		return CategoryPersonalCare, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return []byte(CategoryOther), nil
	}
	return []byte(c), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
