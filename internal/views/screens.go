package views

import (
	"fmt"
	"strings"
)

type ItemRow struct {
	Position  int
	Name      string
	Quantity  string
	Unit      string
	Price     string
	Cost      string
	Notes     string
	Completed bool
	Selected  bool
}

type CategoryGroup struct {
	Label string
	Items []ItemRow
}

type ListPanelData struct {
	Name         string
	Groups       []CategoryGroup
	Total        string
	Budget       string
	Remaining    string
	OverBudget   bool
	Done         int
	Pending      int
	Percent      int
	ProgressView string
}

type SuggestionRow struct {
	Name     string
	Quantity string
	Unit     string
	Category string
	LastSeen string
	Selected bool
}

type SuggestionsPanelData struct {
	Rows []SuggestionRow
}

type PurchaseRow struct {
	Name     string
	Quantity string
	Unit     string
	When     string
}

type HistoryPanelData struct {
	TableView      string
	FrequentCount  int
	PurchaseCount  int
	RecentPurchase []PurchaseRow
}

type RecipesPanelData struct {
	SearchView  string
	Query       string
	Loading     bool
	SpinnerView string
	ResultCount int
	ResultsView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(categoryStyle.Render(data.Name) + "\n")
	b.WriteString("actions: [a]add [space]done [d]delete [+/-]qty [e]edit [c]clear done [b]budget\n")

	empty := true
	for _, g := range data.Groups {
		if len(g.Items) == 0 {
			continue
		}
		empty = false
		b.WriteString("\n" + categoryStyle.Render(g.Label) + "\n")
		for _, it := range g.Items {
			b.WriteString(renderItemRow(it) + "\n")
		}
	}
	if empty {
		b.WriteString("\n(list is empty, press a to add an item)\n")
	}

	b.WriteString(fmt.Sprintf("\nprogress: %s %d%% (%d done, %d to go)\n", data.ProgressView, data.Percent, data.Done, data.Pending))
	b.WriteString("total: " + data.Total)
	if data.Budget != "" {
		remaining := fmt.Sprintf(" | budget: %s | left: %s", data.Budget, data.Remaining)
		if data.OverBudget {
			remaining = overBudgetText.Render(fmt.Sprintf(" | budget: %s | over by: %s", data.Budget, strings.TrimPrefix(data.Remaining, "-")))
		}
		b.WriteString(remaining)
	}
	return strings.TrimSpace(b.String())
}

func renderItemRow(it ItemRow) string {
	cursor := " "
	if it.Selected {
		cursor = cursorStyle.Render(">")
	}
	box := "[ ]"
	if it.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s Qty %s %s %s", box, it.Quantity, it.Unit, it.Name)
	if it.Price != "" {
		line += fmt.Sprintf(" @ %s = %s", it.Price, it.Cost)
	}
	if it.Notes != "" {
		line += " (" + it.Notes + ")"
	}
	if it.Completed {
		line = doneStyle.Render(line)
	}
	return fmt.Sprintf("%s %2d %s", cursor, it.Position, line)
}

func RenderSuggestionsPanel(data SuggestionsPanelData) string {
	var b strings.Builder
	b.WriteString("suggestions:\n")
	b.WriteString("actions: [j/k]move [enter]add [A]add all\n")
	if len(data.Rows) == 0 {
		b.WriteString("\n(no suggestions yet, clear completed items to build history)")
		return b.String()
	}
	for i, r := range data.Rows {
		cursor := " "
		if r.Selected {
			cursor = cursorStyle.Render(">")
		}
		line := fmt.Sprintf("%s %d. %s (%s %s) [%s]", cursor, i+1, r.Name, r.Quantity, r.Unit, r.Category)
		if r.LastSeen != "" {
			line += " last bought " + r.LastSeen
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderHistoryPanel(data HistoryPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("history: %d purchase(s), %d frequent item(s)\n", data.PurchaseCount, data.FrequentCount))
	b.WriteString("actions: [j/k]move [enter]add to list\n")
	b.WriteString(data.TableView + "\n")
	if len(data.RecentPurchase) > 0 {
		b.WriteString("\nrecent purchases:\n")
		for _, p := range data.RecentPurchase {
			b.WriteString(fmt.Sprintf("- %s %s %s, %s\n", p.Quantity, p.Unit, p.Name, p.When))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderRecipesPanel(data RecipesPanelData) string {
	var b strings.Builder
	b.WriteString("recipes:\n")
	b.WriteString("actions: [s]search [r]random [j/k]move [enter]open [a]add ingredients [esc]back\n")
	b.WriteString(data.SearchView + "\n")
	if data.Loading {
		b.WriteString(data.SpinnerView + " looking up recipes...\n")
	}
	if data.ResultCount == 0 {
		if data.Query != "" && !data.Loading {
			b.WriteString(fmt.Sprintf("\nno recipes for %q", data.Query))
		}
		return strings.TrimSpace(b.String())
	}
	b.WriteString("\n" + data.ResultsView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command:\n" + inputView
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
