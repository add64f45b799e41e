package update

import (
	"fmt"

	"opsboard/internal/calendar"
	"opsboard/internal/model"
	"opsboard/internal/nav"
	"opsboard/internal/projection"
	"opsboard/internal/views"
)

var monthNames = []string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.HelpVisible {
		return views.RenderMarkdown(helpMarkdown)
	}

	// All three views draw from the same filtered set.
	visible := projection.Filter(m.Store.List(), m.Query)

	var body string
	switch m.CurrentView {
	case ViewList:
		body = views.RenderList(m.listData(visible))
	case ViewCalendar:
		body = views.RenderCalendar(m.calendarData(visible))
	default:
		body = views.RenderBoard(m.boardData(visible))
	}

	data := views.AppData{
		Header:     m.headerLine(len(visible)),
		Body:       body,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     "1 board · 2 list · 3 calendar · / search · : command · ? help · q quit",
	}
	if m.searchActive {
		data.InputLine = m.searchInput.View()
	} else if m.paletteActive {
		data.InputLine = m.commandInput.View()
	}
	return views.RenderApp(data)
}

func (m Model) headerLine(visibleCount int) string {
	header := fmt.Sprintf("opsboard — %s (%d tasks)", m.CurrentView, visibleCount)
	if m.Query != "" {
		header += fmt.Sprintf(" — filter %q", m.Query)
	}
	return header
}

func (m Model) boardData(visible []model.Task) views.BoardData {
	board := projection.Board(visible)
	data := views.BoardData{Columns: make([]views.BoardColumnData, 0, len(board.Columns))}
	for _, col := range board.Columns {
		column := views.BoardColumnData{Title: col.Status.Display()}
		for _, t := range col.Tasks {
			column.Items = append(column.Items, views.BoardItemData{
				Title:    t.Title,
				Priority: string(t.Priority),
				Deadline: t.DeadlineKey(),
				Flagged:  t.IsFlagged,
			})
		}
		data.Columns = append(data.Columns, column)
	}
	return data
}

func (m Model) listData(visible []model.Task) views.ListData {
	rows := projection.List(visible, m.Sort)
	data := views.ListData{SortName: string(m.Sort), Rows: make([]views.ListRowData, 0, len(rows))}
	for _, t := range rows {
		data.Rows = append(data.Rows, views.ListRowData{
			Title:    t.Title,
			Status:   t.Status.Display(),
			Priority: string(t.Priority),
			Category: string(t.Category),
			Deadline: t.DeadlineKey(),
			Assignee: t.Assignee,
			Flagged:  t.IsFlagged,
		})
	}
	return data
}

func (m Model) calendarData(visible []model.Task) views.CalendarData {
	win := m.Nav.Window()
	cal := projection.Calendar(visible, win)
	today := calendar.Today()

	data := views.CalendarData{
		Title: m.calendarTitle(win),
		Mode:  string(win.Mode),
	}
	if win.Mode == nav.ModeDay {
		for _, cell := range cal.Cells {
			for _, t := range cell.Tasks {
				data.AgendaRows = append(data.AgendaRows,
					fmt.Sprintf("%s  %-10s %s", t.DeadlineKey(), t.Priority, t.Title))
			}
		}
		return data
	}

	for _, cell := range cal.Cells {
		if cell.Date == nil {
			data.Cells = append(data.Cells, views.CalendarCellData{})
			continue
		}
		data.Cells = append(data.Cells, views.CalendarCellData{
			Label: fmt.Sprintf("%d", cell.Date.Day),
			Count: len(cell.Tasks),
			Today: *cell.Date == today,
		})
	}
	return data
}

func (m Model) calendarTitle(win nav.Window) string {
	anchor := win.Anchor
	switch win.Mode {
	case nav.ModeDay:
		return anchor.Key()
	case nav.ModeWeek:
		return fmt.Sprintf("week of %s", win.Days[0].Key())
	default:
		return fmt.Sprintf("%s %d", monthNames[anchor.Month], anchor.Year)
	}
}

const helpMarkdown = `# opsboard

## Views
- **1** board — tasks partitioned by status
- **2** list — flat, searchable, sortable (s cycles deadline/priority)
- **3** calendar — month, week or day buckets by deadline

## Calendar
- **h / l** previous / next
- **t** jump to today
- **d / w / m** day, week, month mode

## Commands (:)
- ` + "`add <title> due:YYYY-MM-DD prio:High cat:Sales for:Dana`" + `
- ` + "`del <id-prefix>`" + `
- ` + "`find <text>`" + ` (bare find clears the filter)
- ` + "`goto <YYYY-MM-DD>`" + `
- ` + "`mode <day|week|month>`" + `

Press **?** to close help.
`
