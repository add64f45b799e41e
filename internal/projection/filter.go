// Package projection derives the presentation groupings (board columns,
// list rows, calendar buckets) from the task collection. Everything here
// is a pure function of its inputs; the board, list and calendar must all
// be built from the same Filter output for a given query.
package projection

import (
	"strings"

	"opsboard/internal/model"
)

// Filter returns the visible set: tasks whose title or category contains
// the trimmed query, case-insensitively. A blank query keeps everything.
// The input slice is never mutated.
func Filter(tasks []model.Task, query string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		out := make([]model.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(string(t.Category)), needle) {
			out = append(out, t)
		}
	}
	return out
}
