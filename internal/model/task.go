package model

import (
	"errors"
	"fmt"
	"strings"

	"opsboard/internal/calendar"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidCategory = errors.New("model: invalid task category")
)

type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusFinished   Status = "Finished"
	StatusCancelled  Status = "Cancelled"
	StatusMissed     Status = "Missed"
)

// AllStatuses lists the board columns in display order.
func AllStatuses() []Status {
	return []Status{StatusToDo, StatusInProgress, StatusFinished, StatusCancelled, StatusMissed}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusFinished, StatusCancelled, StatusMissed:
		return true
	default:
		return false
	}
}

func (s Status) Display() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

type Priority string

const (
	PriorityUrgent Priority = "Urgent"
	PriorityHigh   Priority = "High"
	PriorityNormal Priority = "Normal"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityNormal:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting, most urgent first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	default:
		return 2
	}
}

type Category string

const (
	CategoryInventory Category = "Inventory"
	CategorySales     Category = "Sales"
	CategoryFinance   Category = "Finance"
	CategorySystem    Category = "System"
	CategoryHR        Category = "HR"
	CategoryMarketing Category = "Marketing"
)

func AllCategories() []Category {
	return []Category{CategoryInventory, CategorySales, CategoryFinance, CategorySystem, CategoryHR, CategoryMarketing}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryInventory, CategorySales, CategoryFinance, CategorySystem, CategoryHR, CategoryMarketing:
		return true
	default:
		return false
	}
}

// Task is the scheduling unit. Status is the board's partition key and
// Deadline is the calendar's bucket key.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Category    Category
	Deadline    calendar.Date
	Assignee    string
	IsFlagged   bool
}

// DeadlineKey returns the canonical YYYY-MM-DD bucket key.
func (t Task) DeadlineKey() string {
	return t.Deadline.Key()
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if !t.Deadline.IsValid() {
		return fmt.Errorf("model: invalid deadline %q", t.Deadline.Key())
	}
	return nil
}
