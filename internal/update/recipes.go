package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/cartd/internal/app"
	"github.com/sandeepkv93/cartd/internal/grocery"
	"github.com/sandeepkv93/cartd/internal/recipes"
	"github.com/sandeepkv93/cartd/internal/views"
)

const randomRecipeCount = 6

func searchRecipesCmd(ctx context.Context, source recipes.Source, query string) tea.Cmd {
	return func() tea.Msg {
		return RecipeResultsMsg{Query: query, Results: source.Search(ctx, query)}
	}
}

func randomRecipesCmd(ctx context.Context, source recipes.Source, count int) tea.Cmd {
	return func() tea.Msg {
		return RecipeResultsMsg{Results: source.Random(ctx, count)}
	}
}

func loadRecipeCmd(ctx context.Context, source recipes.Source, id string, add bool) tea.Cmd {
	return func() tea.Msg {
		r, ok := source.GetByID(ctx, id)
		return RecipeLoadedMsg{ID: id, Recipe: r, Found: ok, Add: add}
	}
}

// startSearch, startRandom and startLoad mark a lookup in flight and return
// the command that performs it off the update loop.
func (m *Model) startSearch(query string) tea.Cmd {
	m.CurrentView = ViewRecipes
	m.Recipes.Query = query
	m.Recipes.Loading = true
	m.Recipes.Detail = nil
	m.Status = StatusBar{Text: fmt.Sprintf("searching recipes for %q", query)}
	return tea.Batch(m.recipeSpinner.Tick, searchRecipesCmd(m.ctx, m.session.Recipes, query))
}

func (m *Model) startRandom(count int) tea.Cmd {
	if count <= 0 {
		count = randomRecipeCount
	}
	m.CurrentView = ViewRecipes
	m.Recipes.Query = ""
	m.Recipes.Loading = true
	m.Recipes.Detail = nil
	m.Status = StatusBar{Text: "picking random recipes"}
	return tea.Batch(m.recipeSpinner.Tick, randomRecipesCmd(m.ctx, m.session.Recipes, count))
}

func (m *Model) startLoad(id string, add bool) tea.Cmd {
	m.CurrentView = ViewRecipes
	m.Recipes.Loading = true
	m.Status = StatusBar{Text: "loading recipe " + id}
	return tea.Batch(m.recipeSpinner.Tick, loadRecipeCmd(m.ctx, m.session.Recipes, id, add))
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Recipes.Typing = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		m.Recipes.Typing = false
		m.searchInput.Blur()
		if query == "" {
			m.Status = StatusBar{Text: "type a search term first", IsError: true}
			return m, nil
		}
		cmd := m.startSearch(query)
		return m, cmd
	}
	if msg.Type == tea.KeyRunes {
		m.searchInput.SetValue(m.searchInput.Value() + string(msg.Runes))
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleRecipesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Recipes.Detail != nil {
		switch msg.String() {
		case "esc":
			m.Recipes.Detail = nil
			return m, nil
		case "a":
			m.addRecipeIngredients(*m.Recipes.Detail)
			return m, nil
		case "j", "down", "k", "up", "pgdown", "pgup":
			var cmd tea.Cmd
			m.recipeViewport, cmd = m.recipeViewport.Update(msg)
			return m, cmd
		}
	}
	switch msg.String() {
	case "s":
		m.Recipes.Typing = true
		m.searchInput.SetValue(m.Recipes.Query)
		m.searchInput.Focus()
		return m, nil
	case "r":
		cmd := m.startRandom(randomRecipeCount)
		return m, cmd
	case "j", "down":
		if m.Recipes.Cursor < len(m.Recipes.Results)-1 {
			m.Recipes.Cursor++
		}
	case "k", "up":
		if m.Recipes.Cursor > 0 {
			m.Recipes.Cursor--
		}
	case "enter":
		if r, ok := m.selectedRecipe(); ok {
			cmd := m.startLoad(r.ID, false)
			return m, cmd
		}
	case "a":
		if r, ok := m.selectedRecipe(); ok {
			cmd := m.startLoad(r.ID, true)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) selectedRecipe() (recipes.SearchResult, bool) {
	if m.Recipes.Cursor < 0 || m.Recipes.Cursor >= len(m.Recipes.Results) {
		return recipes.SearchResult{}, false
	}
	return m.Recipes.Results[m.Recipes.Cursor], true
}

func (m *Model) applyRecipeResults(msg RecipeResultsMsg) {
	m.Recipes.Loading = false
	m.Recipes.Results = msg.Results
	m.Recipes.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("%d recipe(s) found", len(msg.Results))}
}

func (m *Model) applyRecipeLoaded(msg RecipeLoadedMsg) {
	m.Recipes.Loading = false
	if !msg.Found {
		m.Status = StatusBar{Text: fmt.Sprintf("recipe %q not found", msg.ID), IsError: true}
		return
	}
	r := msg.Recipe
	if msg.Add {
		m.addRecipeIngredients(r)
		return
	}
	m.Recipes.Detail = &r
	m.recipeViewport.SetContent(views.RenderMarkdown(views.RecipeMarkdown(r), paneWidth-4))
	m.recipeViewport.GotoTop()
	m.Status = StatusBar{Text: "showing " + r.Name}
}

func (m *Model) addRecipeIngredients(r recipes.Recipe) {
	added := m.session.List.AddMany(m.ctx, grocery.NewItemsFromIngredients(app.Ingredients(r), r.Name))
	m.Status = StatusBar{Text: fmt.Sprintf("added %d ingredient(s) from %s", len(added), r.Name)}
	m.notify("Recipe", m.Status.Text, "info")
}

func (m Model) renderRecipesView() string {
	data := views.RecipesPanelData{
		SearchView:  m.searchInput.View(),
		Query:       m.Recipes.Query,
		Loading:     m.Recipes.Loading,
		SpinnerView: m.recipeSpinner.View(),
		ResultCount: len(m.Recipes.Results),
	}
	if len(m.Recipes.Results) > 0 {
		data.ResultsView = m.recipeList.View()
	}
	return views.RenderRecipesPanel(data)
}

func (m Model) renderRecipeDetail() string {
	if m.Recipes.Detail == nil {
		return ""
	}
	return m.recipeViewport.View()
}
