package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/sandeepkv93/cartd/internal/views"
)

func (m Model) handleSuggestionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := m.session.List.Suggestions()
	switch msg.String() {
	case "j", "down":
		if m.SuggestCursor < len(suggestions)-1 {
			m.SuggestCursor++
		}
	case "k", "up":
		if m.SuggestCursor > 0 {
			m.SuggestCursor--
		}
	case "enter":
		if m.SuggestCursor < len(suggestions) {
			it, _ := m.session.List.AddSuggestion(m.ctx, suggestions[m.SuggestCursor])
			m.Status = StatusBar{Text: "added " + it.Name}
		}
	case "A":
		for _, s := range suggestions {
			m.session.List.AddSuggestion(m.ctx, s)
		}
		m.Status = StatusBar{Text: fmt.Sprintf("added %d suggestion(s)", len(suggestions))}
	}
	return m, nil
}

func (m Model) renderSuggestionsView() string {
	suggestions := m.session.List.Suggestions()
	rows := make([]views.SuggestionRow, 0, len(suggestions))
	for i, s := range suggestions {
		row := views.SuggestionRow{
			Name:     s.Name,
			Quantity: views.Quantity(s.Quantity),
			Unit:     s.Unit,
			Category: s.Category.Label(),
			Selected: i == m.SuggestCursor,
		}
		if s.LastPurchasedAt != nil {
			row.LastSeen = humanize.Time(*s.LastPurchasedAt)
		}
		rows = append(rows, row)
	}
	return views.RenderSuggestionsPanel(views.SuggestionsPanelData{Rows: rows})
}
