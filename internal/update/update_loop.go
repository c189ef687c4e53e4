package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/cartd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			if typed.String() == m.Keys.Help && m.Palette.Input == "" {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}
		if m.NotesEditor.Active {
			return m.handleNotesKey(typed)
		}
		if m.CurrentView == ViewRecipes && m.Recipes.Typing {
			return m.handleSearchKey(typed)
		}

		switch typed.String() {
		case "/":
			m.openPalette("")
			return m, nil
		case m.Keys.List:
			m.CurrentView = ViewList
			return m, nil
		case m.Keys.Suggestions:
			m.CurrentView = ViewSuggestions
			return m, nil
		case m.Keys.History:
			m.CurrentView = ViewHistory
			return m, nil
		case m.Keys.Recipes:
			m.CurrentView = ViewRecipes
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentView {
		case ViewList:
			return m.handleListKey(typed)
		case ViewSuggestions:
			return m.handleSuggestionsKey(typed)
		case ViewHistory:
			return m.handleHistoryKey(typed)
		case ViewRecipes:
			return m.handleRecipesKey(typed)
		}
	case spinner.TickMsg:
		if m.Recipes.Loading {
			var cmd tea.Cmd
			m.recipeSpinner, cmd = m.recipeSpinner.Update(typed)
			return m, cmd
		}
	case RecipeResultsMsg:
		m.applyRecipeResults(typed)
		return m, nil
	case RecipeLoadedMsg:
		m.applyRecipeLoaded(typed)
		return m, nil
	case ClearStatusMsg:
		if typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.setStatus("Error", typed.Err.Error(), true)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewList:
		leftPane = m.renderListView()
		rightPane = m.renderNotesEditor()
	case ViewSuggestions:
		leftPane = m.renderSuggestionsView()
	case ViewHistory:
		leftPane = m.renderHistoryView()
	case ViewRecipes:
		leftPane = m.renderRecipesView()
		rightPane = m.renderRecipeDetail()
	}
	rightPane = joinSections(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	return views.RenderApp(views.AppData{
		Header:       m.header(),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s list | %s suggestions | %s history | %s recipes | / cmd | %s help | %s quit",
			m.Keys.List, m.Keys.Suggestions, m.Keys.History, m.Keys.Recipes, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) header() string {
	if m.session == nil {
		return fmt.Sprintf("cartd | view: %s", m.CurrentView)
	}
	l := m.session.List.List()
	return fmt.Sprintf("cartd | view: %s | %s | %d item(s) | %s", m.CurrentView, l.Name, len(l.Items), views.Money(l.TotalCost))
}

func joinSections(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, "\n\n")
}
