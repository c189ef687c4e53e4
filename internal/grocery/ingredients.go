package grocery

// Ingredient is one recipe line in list-ready units.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// NewItemsFromIngredients turns recipe ingredients into list inputs with the
// category classified from each name.
func NewItemsFromIngredients(ingredients []Ingredient, note string) []NewItem {
	out := make([]NewItem, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, NewItem{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: Categorize(ing.Name),
			Notes:    note,
		})
	}
	return out
}
