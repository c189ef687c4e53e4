package grocery

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/cartd/internal/model"
)

const MaxSuggestions = 5

type SuggestionOptions struct {
	NewID func() string
	Now   func() time.Time
}

func (o SuggestionOptions) withDefaults() SuggestionOptions {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type candidate struct {
	template model.Item
	count    int
}

// GenerateSuggestions ranks past purchases that are not on the current list
// by how often they were bought. Ties keep first-encounter order.
func GenerateSuggestions(purchaseHistory, currentItems []model.Item, opts SuggestionOptions) []model.Item {
	opts = opts.withDefaults()

	onList := make(map[string]bool, len(currentItems))
	for _, it := range currentItems {
		onList[nameKey(it.Name)] = true
	}

	index := make(map[string]int)
	candidates := make([]candidate, 0)
	for _, it := range purchaseHistory {
		key := nameKey(it.Name)
		if key == "" || onList[key] {
			continue
		}
		if i, ok := index[key]; ok {
			candidates[i].count++
			continue
		}
		index[key] = len(candidates)
		candidates = append(candidates, candidate{template: it, count: 1})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].count > candidates[j].count
	})
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	now := opts.Now()
	out := make([]model.Item, 0, len(candidates))
	for _, c := range candidates {
		it := c.template.Clone()
		it.ID = opts.NewID()
		it.Completed = false
		it.AddedAt = now
		out = append(out, it)
	}
	return out
}

// nameKey folds case and surrounding blanks so " Milk" and "milk" count as
// one item. An empty key is a purchase with no usable name and is skipped.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
