package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/cartd/internal/commands"
)

func (m *Model) openPalette(prefill string) {
	m.Palette.Active = true
	m.Palette.Input = prefill
	m.commandInput.SetValue(prefill)
	m.commandInput.CursorEnd()
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		return m, reportError(err)
	}

	// Recipe lookups may hit the network, so they run as commands and land
	// back here as messages.
	if cmd.Type == commands.TypeRecipe {
		var lookup tea.Cmd
		switch cmd.Recipe.Action {
		case commands.RecipeSearch:
			lookup = m.startSearch(cmd.Recipe.Query)
		case commands.RecipeRandom:
			lookup = m.startRandom(cmd.Recipe.Count)
		case commands.RecipeShow:
			lookup = m.startLoad(cmd.Recipe.ID, false)
		case commands.RecipeAdd:
			lookup = m.startLoad(cmd.Recipe.ID, true)
		}
		if lookup != nil {
			return m, lookup
		}
	}
	if cmd.Type == commands.TypeSuggest && cmd.Suggest.Accept == 0 && !cmd.Suggest.AcceptAll {
		m.CurrentView = ViewSuggestions
		m.Status = StatusBar{Text: fmt.Sprintf("%d suggestion(s)", len(m.session.List.Suggestions()))}
		return m, nil
	}

	res, err := commands.Execute(cmd, m.session.Handlers(m.ctx))
	if err != nil {
		return m, reportError(err)
	}
	m.setStatus("Command", res.Message, false)
	m.clampListCursor()
	return m, m.expireStatus()
}
