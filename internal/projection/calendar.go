package projection

import (
	"opsboard/internal/calendar"
	"opsboard/internal/model"
	"opsboard/internal/nav"
)

// CalendarCell is one grid cell. Pad cells (month mode only) have no
// date and never hold tasks.
type CalendarCell struct {
	Date  *calendar.Date
	Tasks []model.Task
}

// CalendarProjection buckets the visible set by deadline over a
// navigation window. Tasks whose deadline falls outside the window are
// simply absent from this render; they are never dropped from the store.
type CalendarProjection struct {
	Window nav.Window
	Cells  []CalendarCell
}

// Bucket returns all bucketed tasks for a canonical date key.
func (c CalendarProjection) Bucket(dateKey string) []model.Task {
	for _, cell := range c.Cells {
		if cell.Date != nil && cell.Date.Key() == dateKey {
			return cell.Tasks
		}
	}
	return nil
}

// Total counts tasks bucketed within the window.
func (c CalendarProjection) Total() int {
	n := 0
	for _, cell := range c.Cells {
		n += len(cell.Tasks)
	}
	return n
}

// Calendar builds the date-indexed buckets for the window.
func Calendar(visible []model.Task, win nav.Window) CalendarProjection {
	byKey := make(map[string][]model.Task)
	for _, t := range visible {
		key := t.DeadlineKey()
		byKey[key] = append(byKey[key], t)
	}

	cells := make([]CalendarCell, 0, win.LeadingPad+len(win.Days))
	for i := 0; i < win.LeadingPad; i++ {
		cells = append(cells, CalendarCell{})
	}
	for _, day := range win.Days {
		d := day
		cells = append(cells, CalendarCell{Date: &d, Tasks: byKey[d.Key()]})
	}
	return CalendarProjection{Window: win, Cells: cells}
}
