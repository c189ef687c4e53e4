package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/model"
	"github.com/sandeepkv93/cartd/internal/views"
)

// displayOrder is the list as shown: grouped by category in display order.
func (m Model) displayOrder() []model.Item {
	if m.session == nil {
		return nil
	}
	groups := grocery.GroupByCategory(m.session.List.Items())
	out := make([]model.Item, 0)
	for _, c := range model.Categories() {
		out = append(out, groups[c]...)
	}
	return out
}

func (m Model) selectedItem() (model.Item, bool) {
	order := m.displayOrder()
	if m.ListCursor < 0 || m.ListCursor >= len(order) {
		return model.Item{}, false
	}
	return order[m.ListCursor], true
}

// positions maps item ids to their 1-based list position, the ref the
// palette accepts.
func (m Model) positions() map[string]int {
	items := m.session.List.Items()
	out := make(map[string]int, len(items))
	for i, it := range items {
		out[it.ID] = i + 1
	}
	return out
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := m.displayOrder()
	switch msg.String() {
	case "j", "down":
		if m.ListCursor < len(order)-1 {
			m.ListCursor++
		}
	case "k", "up":
		if m.ListCursor > 0 {
			m.ListCursor--
		}
	case " ", "space", "x":
		if it, ok := m.selectedItem(); ok {
			m.session.List.ToggleCompletion(m.ctx, it.ID)
			state := "done"
			if it.Completed {
				state = "not done"
			}
			m.Status = StatusBar{Text: fmt.Sprintf("marked %s %s", it.Name, state)}
		}
	case "d":
		if it, ok := m.selectedItem(); ok {
			m.session.List.Remove(m.ctx, it.ID)
			m.Status = StatusBar{Text: "removed " + it.Name}
			m.clampListCursor()
		}
	case "+", "=":
		if it, ok := m.selectedItem(); ok {
			q := it.Quantity + 1
			m.session.List.Update(m.ctx, it.ID, model.ItemPatch{Quantity: &q})
			m.Status = StatusBar{Text: fmt.Sprintf("%s qty %s", it.Name, views.Quantity(q))}
		}
	case "-":
		if it, ok := m.selectedItem(); ok && it.Quantity > 1 {
			q := it.Quantity - 1
			m.session.List.Update(m.ctx, it.ID, model.ItemPatch{Quantity: &q})
			m.Status = StatusBar{Text: fmt.Sprintf("%s qty %s", it.Name, views.Quantity(q))}
		}
	case "c":
		n := m.session.List.ClearCompleted(m.ctx)
		m.Status = StatusBar{Text: fmt.Sprintf("moved %d purchased item(s) to history", n)}
		m.notify("Checkout", m.Status.Text, "info")
		m.clampListCursor()
	case "a":
		m.openPalette("add ")
	case "b":
		m.openPalette("budget ")
	case "e":
		if it, ok := m.selectedItem(); ok {
			m.openPalette(fmt.Sprintf("set %d ", m.positions()[it.ID]))
		}
	case "n":
		if it, ok := m.selectedItem(); ok {
			m.NotesEditor = NotesEditorState{Active: true, ItemID: it.ID}
			m.notesArea.SetValue(it.Notes)
			m.notesArea.Focus()
			m.Status = StatusBar{Text: "editing notes for " + it.Name + " (ctrl+s save, esc cancel)"}
		}
	}
	return m, nil
}

func (m *Model) clampListCursor() {
	n := len(m.displayOrder())
	if m.ListCursor >= n {
		m.ListCursor = n - 1
	}
	if m.ListCursor < 0 {
		m.ListCursor = 0
	}
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.NotesEditor = NotesEditorState{}
		m.notesArea.Blur()
		m.Status = StatusBar{Text: "notes unchanged"}
		return m, nil
	case "ctrl+s":
		notes := m.notesArea.Value()
		if m.session.List.Update(m.ctx, m.NotesEditor.ItemID, model.ItemPatch{Notes: &notes}) {
			m.Status = StatusBar{Text: "notes saved"}
		} else {
			m.Status = StatusBar{Text: "item no longer on the list", IsError: true}
		}
		m.NotesEditor = NotesEditorState{}
		m.notesArea.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}

func (m Model) renderListView() string {
	if m.session == nil {
		return "(no list loaded)"
	}
	l := m.session.List.List()
	pos := m.positions()
	selected, hasSelection := m.selectedItem()
	groups := grocery.GroupByCategory(l.Items)

	data := views.ListPanelData{
		Name:  l.Name,
		Total: views.Money(l.TotalCost),
	}
	for _, c := range model.Categories() {
		g := views.CategoryGroup{Label: c.Label()}
		for _, it := range groups[c] {
			row := views.ItemRow{
				Position:  pos[it.ID],
				Name:      it.Name,
				Quantity:  views.Quantity(it.Quantity),
				Unit:      it.Unit,
				Notes:     it.Notes,
				Completed: it.Completed,
				Selected:  hasSelection && it.ID == selected.ID,
			}
			if it.Price != nil {
				row.Price = views.Money(*it.Price)
				row.Cost = views.Money(it.Cost())
			}
			g.Items = append(g.Items, row)
		}
		data.Groups = append(data.Groups, g)
	}
	data.Done, data.Pending = grocery.CountCompleted(l.Items)
	data.Percent = grocery.CompletionPercentage(l.Items)
	data.ProgressView = m.listProgress.ViewAs(float64(data.Percent) / 100)
	if remaining, ok := l.RemainingBudget(); ok {
		data.Budget = views.Money(*l.Budget)
		data.Remaining = views.Money(remaining)
		data.OverBudget = l.OverBudget()
	}
	return views.RenderListPanel(data)
}

func (m Model) renderNotesEditor() string {
	if !m.NotesEditor.Active {
		return ""
	}
	return "notes:\n" + m.notesArea.View()
}
