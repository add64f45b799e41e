package update

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"opsboard/internal/nav"
	"opsboard/internal/projection"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SwitchViewMsg:
		switch typed.View {
		case ViewBoard, ViewList, ViewCalendar:
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		return m, nil
	case SubmitResolvedMsg:
		return m.applyResolved(typed)
	}
	return m, nil
}

// applyResolved writes a committed flight into the store. The write runs
// here, on the update loop, so it never races a concurrent render.
func (m Model) applyResolved(msg SubmitResolvedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Res.Err, context.Canceled) {
		m.Status = StatusBar{Text: "submission cancelled", IsError: false}
		return m, nil
	}
	if msg.Res.Err != nil {
		m.LastError = msg.Res.Err
		m.Status = StatusBar{Text: msg.Res.Err.Error(), IsError: true}
		return m, nil
	}
	if err := m.Store.Put(context.Background(), msg.Res.Task); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: "added " + msg.Res.Task.Title, IsError: false}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		return m.handleSearchKey(msg)
	}
	if m.paletteActive {
		return m.handlePaletteKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Board:
		m.CurrentView = ViewBoard
		return m, nil
	case m.Keys.List:
		m.CurrentView = ViewList
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		return m, nil
	case m.Keys.Search:
		m.searchActive = true
		m.searchInput.SetValue(m.Query)
		m.searchInput.Focus()
		return m, nil
	case m.Keys.Palette:
		m.paletteActive = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}

	switch m.CurrentView {
	case ViewCalendar:
		return m.handleCalendarKey(msg), nil
	case ViewList:
		return m.handleListKey(msg), nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.Status = StatusBar{Text: "filter: " + m.Query, IsError: false}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.Query = m.searchInput.Value()
	return m, cmd
}

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.Prev, "left":
		m.Nav.Prev()
		m.Status = StatusBar{Text: "calendar anchor: " + m.Nav.Anchor().Key(), IsError: false}
	case m.Keys.Next, "right":
		m.Nav.Next()
		m.Status = StatusBar{Text: "calendar anchor: " + m.Nav.Anchor().Key(), IsError: false}
	case m.Keys.Today:
		m.Nav.Today()
		m.Status = StatusBar{Text: "calendar anchor: " + m.Nav.Anchor().Key(), IsError: false}
	case m.Keys.DayMode:
		m.Nav.SetMode(nav.ModeDay)
		m.Status = StatusBar{Text: "calendar mode: day", IsError: false}
	case m.Keys.WeekMode:
		m.Nav.SetMode(nav.ModeWeek)
		m.Status = StatusBar{Text: "calendar mode: week", IsError: false}
	case m.Keys.MonthMode:
		m.Nav.SetMode(nav.ModeMonth)
		m.Status = StatusBar{Text: "calendar mode: month", IsError: false}
	}
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	if msg.String() != "s" {
		return m
	}
	switch m.Sort {
	case projection.SortDeadline:
		m.Sort = projection.SortPriority
	case projection.SortPriority:
		m.Sort = projection.SortNone
	default:
		m.Sort = projection.SortDeadline
	}
	m.Status = StatusBar{Text: "sort: " + string(m.Sort), IsError: false}
	return m
}
