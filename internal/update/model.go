package update

import (
	"github.com/charmbracelet/bubbles/textinput"

	"opsboard/internal/calendar"
	"opsboard/internal/config"
	"opsboard/internal/nav"
	"opsboard/internal/projection"
	"opsboard/internal/store"
	"opsboard/internal/workflow"
)

type View string

const (
	ViewBoard    View = "Board"
	ViewList     View = "List"
	ViewCalendar View = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Model is the bubbletea model. It holds no derived task data: the
// visible set and all projections are recomputed from the store on every
// render.
type Model struct {
	CurrentView View
	Query       string
	Sort        projection.ListSort
	Nav         *nav.Controller
	Store       *store.Store
	Submitter   *workflow.Submitter
	Keys        config.Keymap
	Status      StatusBar
	HelpVisible bool
	Quitting    bool
	LastError   error

	searchActive  bool
	paletteActive bool
	searchInput   textinput.Model
	commandInput  textinput.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type AppErrorMsg struct {
	Err error
}

type SwitchViewMsg struct {
	View View
}

// SubmitResolvedMsg delivers the terminal outcome of a palette add
// flight.
type SubmitResolvedMsg struct {
	Res workflow.Result
}

func NewModel(st *store.Store, cfg config.Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search title or category"
	searchInput.Prompt = "/ "

	commandInput := textinput.New()
	commandInput.Placeholder = "add <title> due:YYYY-MM-DD | del <id> | find <text> | goto <date> | mode <m>"
	commandInput.Prompt = ": "

	m := Model{
		CurrentView:  viewFromConfig(cfg.DefaultView),
		Sort:         projection.SortDeadline,
		Nav:          nav.New(calendar.Today(), modeFromConfig(cfg.DefaultMode)),
		Store:        st,
		Submitter:    workflow.New("palette-add"),
		Keys:         cfg.Keys,
		searchInput:  searchInput,
		commandInput: commandInput,
	}
	return m
}

func viewFromConfig(name string) View {
	switch name {
	case "list":
		return ViewList
	case "calendar":
		return ViewCalendar
	default:
		return ViewBoard
	}
}

func modeFromConfig(name string) nav.Mode {
	switch name {
	case "day":
		return nav.ModeDay
	case "week":
		return nav.ModeWeek
	default:
		return nav.ModeMonth
	}
}
