package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/cartd/internal/views"
)

// helpKeyMap shows global keys in the short form and adds a column for the
// current view in the full form.
type helpKeyMap struct {
	global []key.Binding
	view   []key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding { return k.global }

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.global, k.view}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	keys := helpKeyMap{global: m.globalBindings(), view: m.viewBindings()}
	lines := make([]string, 0, len(keys.view))
	for _, b := range keys.view {
		lines = append(lines, fmt.Sprintf("- %s: %s", b.Help().Key, b.Help().Desc))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    lines,
		HelpView:    m.helpModel.View(keys),
	})
}

func (m Model) globalBindings() []key.Binding {
	return []key.Binding{
		binding(m.Keys.List, "list"),
		binding(m.Keys.Suggestions, "suggestions"),
		binding(m.Keys.History, "history"),
		binding(m.Keys.Recipes, "recipes"),
		binding("/", "command"),
		binding(m.Keys.Help, "help"),
		binding(m.Keys.Quit, "quit"),
	}
}

func (m Model) viewBindings() []key.Binding {
	switch m.CurrentView {
	case ViewList:
		return []key.Binding{
			binding("j/k", "move cursor"),
			binding("space/x", "toggle purchased"),
			binding("+/-", "change quantity"),
			binding("a/e", "add / edit item"),
			binding("n", "edit notes"),
			binding("d", "delete item"),
			binding("c", "checkout purchased items"),
			binding("b", "set budget"),
		}
	case ViewSuggestions:
		return []key.Binding{
			binding("j/k", "move cursor"),
			binding("enter", "add suggestion"),
			binding("A", "add all suggestions"),
		}
	case ViewHistory:
		return []key.Binding{
			binding("j/k", "move cursor"),
			binding("enter", "add frequent item"),
		}
	case ViewRecipes:
		return []key.Binding{
			binding("s", "search recipes"),
			binding("r", "random recipes"),
			binding("enter", "open recipe"),
			binding("a", "add ingredients"),
			binding("esc", "close recipe"),
		}
	default:
		return nil
	}
}
