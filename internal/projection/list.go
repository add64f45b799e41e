package projection

import (
	"sort"

	"opsboard/internal/model"
)

// ListSort selects the display ordering of the flat list. Sorting is a
// display concern only; the row set always equals the visible set.
type ListSort string

const (
	SortNone     ListSort = "none"
	SortDeadline ListSort = "deadline"
	SortPriority ListSort = "priority"
)

// List returns the visible set as an ordered sequence of rows.
func List(visible []model.Task, order ListSort) []model.Task {
	rows := make([]model.Task, len(visible))
	copy(rows, visible)
	switch order {
	case SortDeadline:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Deadline.Before(rows[j].Deadline)
		})
	case SortPriority:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Priority.Rank() < rows[j].Priority.Rank()
		})
	}
	return rows
}
