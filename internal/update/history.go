package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/views"
)

const recentPurchases = 10

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	freq := m.session.History.History().FrequentItems
	switch msg.String() {
	case "j", "down":
		if m.HistoryCursor < len(freq)-1 {
			m.HistoryCursor++
		}
	case "k", "up":
		if m.HistoryCursor > 0 {
			m.HistoryCursor--
		}
	case "enter":
		if m.HistoryCursor < len(freq) {
			tpl := freq[m.HistoryCursor].Template
			it, ok := m.session.List.Add(m.ctx, grocery.NewItem{
				Name:     tpl.Name,
				Quantity: tpl.Quantity,
				Unit:     tpl.Unit,
				Price:    tpl.Price,
				Category: tpl.Category,
				Notes:    tpl.Notes,
			})
			if ok {
				m.Status = StatusBar{Text: "added " + it.Name}
			}
		}
	}
	return m, nil
}

func (m Model) renderHistoryView() string {
	h := m.session.History.History()
	data := views.HistoryPanelData{
		TableView:     m.historyTable.View(),
		FrequentCount: len(h.FrequentItems),
		PurchaseCount: len(h.Purchases),
	}
	for i := len(h.Purchases) - 1; i >= 0 && len(data.RecentPurchase) < recentPurchases; i-- {
		p := h.Purchases[i]
		row := views.PurchaseRow{Name: p.Name, Quantity: views.Quantity(p.Quantity), Unit: p.Unit}
		if p.LastPurchasedAt != nil {
			row.When = humanize.Time(*p.LastPurchasedAt)
		}
		data.RecentPurchase = append(data.RecentPurchase, row)
	}
	return views.RenderHistoryPanel(data)
}
