package recipes

import (
	"context"
	"math/rand/v2"
	"strings"
)

func placeholderImage(color, title string) string {
	return "https://via.placeholder.com/300x200/" + color + "/white?text=" + strings.ReplaceAll(title, " ", "+")
}

var staticRecipes = []Recipe{
	{
		ID:   "mock-1",
		Name: "Spaghetti Carbonara",
		Ingredients: []Ingredient{
			{"Spaghetti", 1, "lbs"},
			{"Bacon", 6, "oz"},
			{"Eggs", 3, "pcs"},
			{"Parmesan Cheese", 1, "cup"},
			{"Black Pepper", 1, "tsp"},
			{"Salt", 1, "tsp"},
		},
		Servings:       4,
		ImageURL:       placeholderImage("4CAF50", "Spaghetti Carbonara"),
		Instructions:   "1. Cook spaghetti according to package directions.\n2. Cook bacon until crispy.\n3. Beat eggs with cheese and pepper.\n4. Combine hot pasta with bacon and egg mixture.\n5. Serve immediately.",
		ReadyInMinutes: 25,
		SourceURL:      "https://example.com/carbonara",
	},
	{
		ID:   "mock-2",
		Name: "Chicken Stir Fry",
		Ingredients: []Ingredient{
			{"Chicken Breast", 1, "lbs"},
			{"Bell Peppers", 2, "pcs"},
			{"Broccoli", 1, "cup"},
			{"Soy Sauce", 3, "tbsp"},
			{"Garlic", 3, "pcs"},
			{"Ginger", 1, "tbsp"},
			{"Vegetable Oil", 2, "tbsp"},
		},
		Servings:       4,
		ImageURL:       placeholderImage("FF9800", "Chicken Stir Fry"),
		Instructions:   "1. Cut chicken into strips.\n2. Heat oil in wok or large pan.\n3. Cook chicken until done.\n4. Add vegetables and stir fry.\n5. Add sauce and cook until heated through.",
		ReadyInMinutes: 20,
		SourceURL:      "https://example.com/stir-fry",
	},
	{
		ID:   "mock-3",
		Name: "Caesar Salad",
		Ingredients: []Ingredient{
			{"Romaine Lettuce", 2, "pcs"},
			{"Parmesan Cheese", 0.5, "cup"},
			{"Croutons", 1, "cup"},
			{"Caesar Dressing", 0.25, "cup"},
			{"Anchovies", 4, "pcs"},
		},
		Servings:       4,
		ImageURL:       placeholderImage("2196F3", "Caesar Salad"),
		Instructions:   "1. Wash and chop romaine lettuce.\n2. Toss lettuce with dressing.\n3. Add parmesan cheese and croutons.\n4. Top with anchovies if desired.",
		ReadyInMinutes: 15,
		SourceURL:      "https://example.com/caesar-salad",
	},
	{
		ID:   "mock-4",
		Name: "Beef Tacos",
		Ingredients: []Ingredient{
			{"Ground Beef", 1, "lbs"},
			{"Taco Shells", 8, "pcs"},
			{"Lettuce", 1, "cup"},
			{"Tomatoes", 2, "pcs"},
			{"Cheddar Cheese", 1, "cup"},
			{"Sour Cream", 0.5, "cup"},
			{"Taco Seasoning", 1, "package"},
			{"Onion", 1, "pcs"},
		},
		Servings:       4,
		ImageURL:       placeholderImage("E91E63", "Beef Tacos"),
		Instructions:   "1. Brown ground beef in a large skillet.\n2. Add diced onion and cook until tender.\n3. Add taco seasoning and water according to package directions.\n4. Simmer until thickened.\n5. Warm taco shells in oven.\n6. Fill shells with beef mixture.\n7. Top with lettuce, tomatoes, cheese, and sour cream.",
		ReadyInMinutes: 30,
		SourceURL:      "https://example.com/beef-tacos",
	},
	{
		ID:   "mock-5",
		Name: "Vegetable Soup",
		Ingredients: []Ingredient{
			{"Carrots", 3, "pcs"},
			{"Celery", 3, "pcs"},
			{"Onion", 1, "pcs"},
			{"Potatoes", 2, "pcs"},
			{"Green Beans", 1, "cup"},
			{"Vegetable Broth", 6, "cup"},
			{"Diced Tomatoes", 1, "can"},
			{"Italian Seasoning", 1, "tsp"},
		},
		Servings:       6,
		ImageURL:       placeholderImage("8BC34A", "Vegetable Soup"),
		Instructions:   "1. Dice all vegetables.\n2. Heat oil in large pot.\n3. Sauté onion, carrots, and celery until tender.\n4. Add potatoes, green beans, broth, and tomatoes.\n5. Add seasoning and bring to boil.\n6. Reduce heat and simmer 20-25 minutes until vegetables are tender.\n7. Season with salt and pepper to taste.",
		ReadyInMinutes: 40,
		SourceURL:      "https://example.com/vegetable-soup",
	},
	{
		ID:   "mock-6",
		Name: "Grilled Salmon",
		Ingredients: []Ingredient{
			{"Salmon Fillets", 4, "pcs"},
			{"Olive Oil", 2, "tbsp"},
			{"Lemon", 1, "pcs"},
			{"Garlic", 2, "pcs"},
			{"Fresh Dill", 2, "tbsp"},
			{"Salt", 1, "tsp"},
			{"Black Pepper", 0.5, "tsp"},
		},
		Servings:       4,
		ImageURL:       placeholderImage("FF5722", "Grilled Salmon"),
		Instructions:   "1. Preheat grill to medium-high heat.\n2. Brush salmon with olive oil.\n3. Season with salt, pepper, and minced garlic.\n4. Grill 4-6 minutes per side until fish flakes easily.\n5. Squeeze fresh lemon juice over salmon.\n6. Garnish with fresh dill and serve immediately.",
		ReadyInMinutes: 18,
		SourceURL:      "https://example.com/grilled-salmon",
	},
}

const staticIDPrefix = "mock-"

// Static serves the built-in recipes. It is also the fallback of MealDB.
type Static struct {
	shuffle func(n int, swap func(i, j int))
}

func NewStatic() *Static {
	return &Static{shuffle: rand.Shuffle}
}

func (s *Static) Search(_ context.Context, query string) []SearchResult {
	return s.search(query)
}

func (s *Static) GetByID(_ context.Context, id string) (Recipe, bool) {
	return staticByID(id)
}

func (s *Static) Random(_ context.Context, count int) []SearchResult {
	return s.random(count)
}

// search filters static recipes by case-insensitive title substring.
func (s *Static) search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]SearchResult, 0, len(staticRecipes))
	for _, r := range staticRecipes {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r.summary())
		}
		if len(out) == maxSearchResults {
			break
		}
	}
	return out
}

func (s *Static) random(count int) []SearchResult {
	if count <= 0 {
		return []SearchResult{}
	}
	all := make([]SearchResult, len(staticRecipes))
	for i, r := range staticRecipes {
		all[i] = r.summary()
	}
	s.shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if count < len(all) {
		all = all[:count]
	}
	return all
}

func staticByID(id string) (Recipe, bool) {
	for _, r := range staticRecipes {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return Recipe{}, false
}

func isStaticID(id string) bool {
	return strings.HasPrefix(id, staticIDPrefix)
}

func (r Recipe) summary() SearchResult {
	return SearchResult{ID: r.ID, Title: r.Name, ImageURL: r.ImageURL, ReadyInMinutes: r.ReadyInMinutes}
}

func (r Recipe) clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return out
}
