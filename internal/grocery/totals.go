package grocery

import (
	"math"

	"github.com/sandeepkv93/cartd/internal/model"
)

// TotalCost sums price times quantity in list order. Unpriced items count as 0.
func TotalCost(items []model.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Cost()
	}
	return total
}

func CountCompleted(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

// CompletionPercentage is the rounded share of completed items, 0 for none.
func CompletionPercentage(items []model.Item) int {
	if len(items) == 0 {
		return 0
	}
	done, _ := CountCompleted(items)
	return int(math.Round(100 * float64(done) / float64(len(items))))
}

// GroupByCategory buckets items by category. Every category has a key.
func GroupByCategory(items []model.Item) map[model.Category][]model.Item {
	out := make(map[model.Category][]model.Item, len(model.Categories()))
	for _, c := range model.Categories() {
		out[c] = []model.Item{}
	}
	for _, it := range items {
		c := it.Category
		if !c.IsValid() {
			c = model.CategoryOther
		}
		out[c] = append(out[c], it)
	}
	return out
}
