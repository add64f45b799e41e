package projection

import (
	"opsboard/internal/model"
)

// BoardColumn is one status partition of the visible set.
type BoardColumn struct {
	Status model.Status
	Tasks  []model.Task
}

// BoardProjection partitions the visible set into the five fixed status
// columns. Every visible task lands in exactly one column.
type BoardProjection struct {
	Columns []BoardColumn
}

// Total counts tasks across all columns.
func (b BoardProjection) Total() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Tasks)
	}
	return n
}

// Column returns the column for a status, if present.
func (b BoardProjection) Column(status model.Status) (BoardColumn, bool) {
	for _, col := range b.Columns {
		if col.Status == status {
			return col, true
		}
	}
	return BoardColumn{}, false
}

// Board builds the status-partitioned board from the visible set.
func Board(visible []model.Task) BoardProjection {
	byStatus := make(map[model.Status][]model.Task, 5)
	for _, t := range visible {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}
	columns := make([]BoardColumn, 0, 5)
	for _, status := range model.AllStatuses() {
		columns = append(columns, BoardColumn{Status: status, Tasks: byStatus[status]})
	}
	return BoardProjection{Columns: columns}
}
