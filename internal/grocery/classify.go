package grocery

import (
	"strings"

	"github.com/sandeepkv93/cartd/internal/model"
)

type keywordRule struct {
	category model.Category
	keywords []string
}

// Order matters: the first category with a matching keyword wins.
var keywordTable = []keywordRule{
	{model.CategoryProduce, []string{
		"apple", "banana", "orange", "lettuce", "tomato", "potato", "onion", "carrot",
		"broccoli", "spinach", "bell pepper", "cucumber", "avocado", "lemon", "lime",
		"strawberry", "blueberry", "grapes", "mushroom", "garlic", "ginger", "celery",
	}},
	{model.CategoryDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "sour cream", "cottage cheese",
		"mozzarella", "cheddar", "parmesan", "egg", "eggs",
	}},
	{model.CategoryMeatSeafood, []string{
		"chicken", "beef", "pork", "fish", "salmon", "tuna", "shrimp", "turkey",
		"bacon", "ham", "sausage", "ground beef", "steak",
	}},
	{model.CategoryPantry, []string{
		"rice", "pasta", "bread", "flour", "sugar", "salt", "pepper", "oil", "vinegar",
		"sauce", "canned", "beans", "lentils", "quinoa", "oats", "cereal", "honey",
		"maple syrup", "baking powder", "vanilla", "spices",
	}},
	{model.CategoryFrozen, []string{
		"frozen", "ice cream", "frozen vegetables", "frozen fruit", "frozen pizza",
		"frozen dinner", "ice",
	}},
	{model.CategoryBakery, []string{
		"bagel", "croissant", "muffin", "cake", "cookie", "pie", "donut", "pastry",
	}},
	{model.CategoryBeverages, []string{
		"water", "juice", "soda", "coffee", "tea", "beer", "wine", "energy drink",
		"sports drink", "sparkling water",
	}},
	{model.CategorySnacks, []string{
		"chips", "crackers", "nuts", "popcorn", "candy", "chocolate", "granola bar",
		"pretzels", "trail mix",
	}},
	{model.CategoryHousehold, []string{
		"toilet paper", "paper towels", "detergent", "soap", "cleaning", "trash bags",
		"aluminum foil", "plastic wrap", "dish soap",
	}},
	{model.CategoryPersonalCare, []string{
		"shampoo", "toothpaste", "deodorant", "lotion", "toothbrush", "razor", "makeup",
	}},
}

// Categorize maps an item name to a category by case-insensitive keyword
// substring match. Names that match nothing are Other.
func Categorize(name string) model.Category {
	lowered := strings.ToLower(name)
	for _, rule := range keywordTable {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}
