package main

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/cartd/internal/model"
)

func TestJoinArgsQuotesSpaces(t *testing.T) {
	got := joinArgs([]string{"add", "olive oil", "note:extra virgin", "qty:2"})
	want := `add "olive oil" "note:extra virgin" qty:2`
	if got != want {
		t.Fatalf("joinArgs = %q, want %q", got, want)
	}
}

func TestFormatListGroupsByCategory(t *testing.T) {
	price := 0.5
	now := time.Now()
	l := model.List{
		Name: "Weekly",
		Items: []model.Item{
			{ID: "a", Name: "Bread", Category: model.CategoryBakery, Quantity: 1, Unit: "loaf", AddedAt: now},
			{ID: "b", Name: "Apples", Category: model.CategoryProduce, Quantity: 4, Unit: "pcs", Price: &price, Completed: true, AddedAt: now},
		},
	}
	out := formatList(l)
	produce := strings.Index(out, "Produce")
	bakery := strings.Index(out, "Bakery")
	if produce < 0 || bakery < 0 || produce > bakery {
		t.Fatalf("expected Produce before Bakery:\n%s", out)
	}
	if !strings.Contains(out, " 2. [x] 4 pcs Apples @ $0.50 = $2.00") {
		t.Fatalf("unexpected apples line:\n%s", out)
	}
	if !strings.Contains(out, " 1. [ ] 1 loaf Bread") {
		t.Fatalf("unexpected bread line:\n%s", out)
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	if got := formatHistory(model.History{}, 5); got != "no purchases recorded yet" {
		t.Fatalf("unexpected output %q", got)
	}
}
