package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type BoardItemData struct {
	Title    string
	Priority string
	Deadline string
	Flagged  bool
}

type BoardColumnData struct {
	Title string
	Items []BoardItemData
}

type BoardData struct {
	Columns []BoardColumnData
}

func RenderBoard(data BoardData) string {
	columns := make([]string, 0, len(data.Columns))
	for _, col := range data.Columns {
		var b strings.Builder
		b.WriteString(colTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Items))))
		b.WriteString("\n")
		if len(col.Items) == 0 {
			b.WriteString(dimStyle.Render("—"))
		}
		for _, item := range col.Items {
			marker := " "
			if item.Flagged {
				marker = flagStyle.Render("⚑")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", marker, truncate(item.Title, 18)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %s", item.Deadline, item.Priority)))
			b.WriteString("\n")
		}
		columns = append(columns, columnStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

type ListRowData struct {
	Title    string
	Status   string
	Priority string
	Category string
	Deadline string
	Assignee string
	Flagged  bool
}

type ListData struct {
	Rows     []ListRowData
	SortName string
}

func RenderList(data ListData) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("sort: %s", data.SortName)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-30s %-12s %-8s %-11s %-11s %s\n",
		"TITLE", "STATUS", "PRIO", "CATEGORY", "DEADLINE", "ASSIGNEE"))
	if len(data.Rows) == 0 {
		b.WriteString(dimStyle.Render("no tasks match"))
		return panelStyle.Render(b.String())
	}
	for _, row := range data.Rows {
		title := truncate(row.Title, 28)
		if row.Flagged {
			title = "⚑ " + truncate(row.Title, 26)
		}
		b.WriteString(fmt.Sprintf("%-30s %-12s %-8s %-11s %-11s %s\n",
			title, row.Status, row.Priority, row.Category, row.Deadline, row.Assignee))
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

type CalendarCellData struct {
	Label string
	Count int
	Today bool
}

type CalendarData struct {
	Title      string
	Mode       string
	Cells      []CalendarCellData
	AgendaRows []string
}

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// RenderCalendar draws the month or week grid seven cells wide; pad
// cells carry an empty label. Day mode renders the agenda rows instead.
func RenderCalendar(data CalendarData) string {
	var b strings.Builder
	b.WriteString(colTitleStyle.Render(fmt.Sprintf("%s — %s", data.Title, data.Mode)))
	b.WriteString("\n")

	if data.Mode == "day" {
		if len(data.AgendaRows) == 0 {
			b.WriteString(dimStyle.Render("nothing due"))
		}
		for _, row := range data.AgendaRows {
			b.WriteString(row)
			b.WriteString("\n")
		}
		return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
	}

	for _, wd := range weekdayHeader {
		b.WriteString(fmt.Sprintf("%-7s", wd))
	}
	b.WriteString("\n")
	for i, cell := range data.Cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCell(cell))
	}
	return panelStyle.Render(b.String())
}

func renderCell(cell CalendarCellData) string {
	if cell.Label == "" {
		return strings.Repeat(" ", 7)
	}
	label := fmt.Sprintf("%2s", cell.Label)
	if cell.Today {
		label = "[" + strings.TrimSpace(label) + "]"
	}
	if cell.Count > 0 {
		return fmt.Sprintf("%-7s", fmt.Sprintf("%s·%d", label, cell.Count))
	}
	return fmt.Sprintf("%-7s", label)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 1 {
		return s[:limit]
	}
	return s[:limit-1] + "…"
}
