package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/cartd/internal/app"
	"github.com/sandeepkv93/cartd/internal/recipes"
)

type View string

const (
	ViewList        View = "List"
	ViewSuggestions View = "Suggestions"
	ViewHistory     View = "History"
	ViewRecipes     View = "Recipes"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	List        string
	Suggestions string
	History     string
	Recipes     string
	Help        string
	Quit        string
}

// Model is the Bubble Tea state. The grocery state lives in the session;
// the model only tracks cursors, widgets and in-flight recipe lookups.
type Model struct {
	CurrentView   View
	ListCursor    int
	SuggestCursor int
	HistoryCursor int
	Recipes       RecipeState
	NotesEditor   NotesEditorState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx       context.Context
	session   *app.App
	statusSeq int

	recipeList     list.Model
	searchInput    textinput.Model
	commandInput   textinput.Model
	notesArea      textarea.Model
	historyTable   table.Model
	listProgress   progress.Model
	recipeSpinner  spinner.Model
	recipeViewport viewport.Model
	helpModel      help.Model
}

type RecipeState struct {
	Query   string
	Typing  bool
	Loading bool
	Results []recipes.SearchResult
	Cursor  int
	Detail  *recipes.Recipe
}

type NotesEditorState struct {
	Active bool
	ItemID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

// ClearStatusMsg expires the status line set under Seq. A newer status
// keeps its text.
type ClearStatusMsg struct {
	Seq int
}

// AppErrorMsg reports a failed command to the status line and notifications.
type AppErrorMsg struct {
	Err error
}

// RecipeResultsMsg carries the outcome of a search or random lookup.
type RecipeResultsMsg struct {
	Query   string
	Results []recipes.SearchResult
}

// RecipeLoadedMsg carries a recipe fetched by id. Add asks Update to put
// the ingredients on the list once it arrives.
type RecipeLoadedMsg struct {
	ID     string
	Recipe recipes.Recipe
	Found  bool
	Add    bool
}

func NewModel(ctx context.Context, session *app.App) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		CurrentView: ViewList,
		ctx:         ctx,
		session:     session,
		Keys: GlobalKeyMap{
			List:        "1",
			Suggestions: "2",
			History:     "3",
			Recipes:     "4",
			Help:        "?",
			Quit:        "q",
		},
	}
	m.initBubbleComponents()
	return m
}
