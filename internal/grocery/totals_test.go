package grocery

import (
	"math"
	"testing"

	"github.com/sandeepkv93/cartd/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestTotalCost(t *testing.T) {
	items := []model.Item{
		{Quantity: 2, Price: floatPtr(3.99)},
		{Quantity: 1, Price: floatPtr(4.50)},
	}
	if got := TotalCost(items); math.Abs(got-12.48) > 1e-9 {
		t.Fatalf("expected 12.48, got %v", got)
	}
	if got := TotalCost([]model.Item{{Quantity: 3}, {Quantity: 1}}); got != 0 {
		t.Fatalf("expected 0 for unpriced items, got %v", got)
	}
	if got := TotalCost(nil); got != 0 {
		t.Fatalf("expected 0 for empty list, got %v", got)
	}
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		items []model.Item
		want  int
	}{
		{nil, 0},
		{[]model.Item{{Completed: true}, {}}, 50},
		{[]model.Item{{Completed: true}}, 100},
		{[]model.Item{{Completed: true}, {}, {}}, 33},
		{[]model.Item{{Completed: true}, {Completed: true}, {}}, 67},
	}
	for _, tc := range cases {
		if got := CompletionPercentage(tc.items); got != tc.want {
			t.Fatalf("CompletionPercentage(%d items) = %d, want %d", len(tc.items), got, tc.want)
		}
	}
}

func TestGroupByCategoryHasEveryKey(t *testing.T) {
	groups := GroupByCategory(nil)
	if len(groups) != 11 {
		t.Fatalf("expected 11 keys, got %d", len(groups))
	}
	for _, c := range model.Categories() {
		bucket, ok := groups[c]
		if !ok || len(bucket) != 0 {
			t.Fatalf("expected empty bucket for %q", c)
		}
	}
}

func TestGroupByCategoryKeepsListOrder(t *testing.T) {
	items := []model.Item{
		{ID: "1", Category: model.CategoryDairy},
		{ID: "2", Category: model.CategoryProduce},
		{ID: "3", Category: model.CategoryDairy},
		{ID: "4", Category: model.Category("mystery")},
	}
	groups := GroupByCategory(items)
	dairy := groups[model.CategoryDairy]
	if len(dairy) != 2 || dairy[0].ID != "1" || dairy[1].ID != "3" {
		t.Fatalf("unexpected dairy bucket: %+v", dairy)
	}
	if len(groups[model.CategoryOther]) != 1 {
		t.Fatalf("expected unknown category in Other bucket")
	}
}

func TestCountCompleted(t *testing.T) {
	done, pending := CountCompleted([]model.Item{{Completed: true}, {}, {}})
	if done != 1 || pending != 2 {
		t.Fatalf("unexpected counts done=%d pending=%d", done, pending)
	}
}
