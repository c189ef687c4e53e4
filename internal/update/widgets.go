package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/dustin/go-humanize"
	"github.com/sandeepkv93/cartd/internal/views"
)

const paneWidth = 56

func (m *Model) initBubbleComponents() {
	m.recipeList = list.New([]list.Item{}, list.NewDefaultDelegate(), paneWidth, 14)
	m.recipeList.Title = "Results"
	m.recipeList.SetShowHelp(false)
	m.recipeList.SetFilteringEnabled(false)
	m.recipeList.SetShowStatusBar(false)

	cols := []table.Column{
		{Title: "Item", Width: 20},
		{Title: "Times", Width: 6},
		{Title: "Last bought", Width: 16},
		{Title: "Price", Width: 8},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.Placeholder = "pasta, chicken, soup..."
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(paneWidth - 2)
	m.notesArea.SetHeight(5)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Item notes"

	m.listProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())

	m.recipeSpinner = spinner.New()
	m.recipeSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.recipeViewport = viewport.New(paneWidth-2, 18)
}

// syncBubbleData copies session state into the widgets before rendering.
func (m *Model) syncBubbleData() {
	results := make([]list.Item, 0, len(m.Recipes.Results))
	for _, r := range m.Recipes.Results {
		results = append(results, listItem{title: r.Title, description: fmt.Sprintf("%s | %d min", r.ID, r.ReadyInMinutes)})
	}
	m.recipeList.SetItems(results)
	if len(results) > 0 {
		m.recipeList.Select(m.Recipes.Cursor)
	}

	if m.session != nil {
		freq := m.session.History.History().FrequentItems
		rows := make([]table.Row, 0, len(freq))
		for _, f := range freq {
			price := "-"
			if f.Template.Price != nil {
				price = views.Money(*f.Template.Price)
			}
			rows = append(rows, table.Row{f.Template.Name, fmt.Sprintf("%d", f.Frequency), humanize.Time(f.LastPurchasedAt), price})
		}
		m.historyTable.SetRows(rows)
		if len(rows) > 0 && m.HistoryCursor < len(rows) {
			m.historyTable.SetCursor(m.HistoryCursor)
		}
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Recipes.Typing {
		m.searchInput.Focus()
	}

	if m.Recipes.Detail != nil {
		m.recipeViewport.SetContent(views.RenderMarkdown(views.RecipeMarkdown(*m.Recipes.Detail), paneWidth-4))
	}
}
