package grocery

import (
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/cartd/internal/model"
)

func purchases(names ...string) []model.Item {
	out := make([]model.Item, 0, len(names))
	for _, n := range names {
		out = append(out, model.Item{Name: n, Quantity: 1, Unit: "pcs", Category: Categorize(n)})
	}
	return out
}

func TestGenerateSuggestionsOrdersByCount(t *testing.T) {
	history := purchases("A", "B", "C", "A", "C", "A")
	current := []model.Item{{Name: "b"}}
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	got := GenerateSuggestions(history, current, SuggestionOptions{
		NewID: sequentialIDs("s"),
		Now:   func() time.Time { return now },
	})
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Fatalf("expected [A C], got %+v", got)
	}
	for i, s := range got {
		if s.ID != fmt.Sprintf("s-%d", i+1) || s.Completed || !s.AddedAt.Equal(now) {
			t.Fatalf("unexpected suggestion record: %+v", s)
		}
	}
}

func TestGenerateSuggestionsCapsAtFive(t *testing.T) {
	history := purchases("a", "b", "c", "d", "e", "f", "g")
	got := GenerateSuggestions(history, nil, SuggestionOptions{})
	if len(got) != MaxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", MaxSuggestions, len(got))
	}
	// equal counts keep first-encounter order
	if got[0].Name != "a" || got[4].Name != "e" {
		t.Fatalf("unexpected tie order: %v", got)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("expected fresh unique ids, got %q %q", got[0].ID, got[1].ID)
	}
}

func TestGenerateSuggestionsExcludesCurrentNames(t *testing.T) {
	history := purchases("Milk", "milk", "Bread")
	got := GenerateSuggestions(history, []model.Item{{Name: "MILK"}, {Name: " bread "}}, SuggestionOptions{})
	if len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
}

func TestGenerateSuggestionsKeepsFirstTemplate(t *testing.T) {
	first := model.Item{Name: "Apples", Quantity: 2, Unit: "lbs", Completed: true}
	later := model.Item{Name: "apples", Quantity: 9, Unit: "pcs"}
	got := GenerateSuggestions([]model.Item{first, later}, nil, SuggestionOptions{})
	if len(got) != 1 || got[0].Quantity != 2 || got[0].Unit != "lbs" || got[0].Completed {
		t.Fatalf("expected first-seen template, got %+v", got)
	}
}

func TestGenerateSuggestionsFoldsWhitespaceAndSkipsBlankNames(t *testing.T) {
	history := purchases("Bread", " milk", "Milk ", "   ", "", "MILK")
	got := GenerateSuggestions(history, []model.Item{{Name: " bread "}}, SuggestionOptions{})
	if len(got) != 1 || got[0].Name != " milk" {
		t.Fatalf("expected one milk suggestion, got %+v", got)
	}
}
