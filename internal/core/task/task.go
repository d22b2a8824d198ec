// Package task defines the task domain model: a titled item with a category,
// a lifecycle status, and a derived recency priority.
package task

import (
	"fmt"
	"time"
)

// Category classifies a task for filtering.
type Category string

const (
	CategoryHome  Category = "home"
	CategoryWork  Category = "work"
	CategoryStudy Category = "study"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{CategoryHome, CategoryWork, CategoryStudy}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHome, CategoryWork, CategoryStudy:
		return true
	default:
		return false
	}
}

// Icon returns the glyph shown next to tasks of this category.
// Unknown categories get a generic pin.
func (c Category) Icon() string {
	switch c {
	case CategoryHome:
		return "🏠"
	case CategoryWork:
		return "💼"
	case CategoryStudy:
		return "📚"
	default:
		return "📌"
	}
}

// Next returns the following category in display order, wrapping around.
func (c Category) Next() Category {
	return cycle(Categories(), c, 1)
}

// ParseCategory converts s into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category %q: must be one of home, work, study", s)
	}
	return c, nil
}

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns the human readable badge text for the status.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Next returns the following status in lifecycle order, wrapping around.
func (s Status) Next() Status {
	return cycle(Statuses(), s, 1)
}

// Prev returns the preceding status in lifecycle order, wrapping around.
func (s Status) Prev() Status {
	return cycle(Statuses(), s, -1)
}

// ParseStatus converts s into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status %q: must be one of not-started, in-progress, completed", s)
	}
	return st, nil
}

// Task is a single to-do item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// New builds a task stamped with createdAt. Zero category and status fall back
// to home and not-started.
func New(id, title string, category Category, status Status, createdAt time.Time) Task {
	if category == "" {
		category = CategoryHome
	}
	if status == "" {
		status = StatusNotStarted
	}

	return Task{
		ID:        id,
		Title:     title,
		Category:  category,
		Status:    status,
		CreatedAt: createdAt,
	}
}

// UpdateStatus overwrites the task status.
func (t *Task) UpdateStatus(status Status) {
	t.Status = status
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// CalculatePriority returns 1/(ageInDays+1) where ageInDays is the fractional
// number of days between CreatedAt and now. Newer tasks score higher.
func (t Task) CalculatePriority(now time.Time) float64 {
	ageInDays := now.Sub(t.CreatedAt).Hours() / 24
	return 1 / (ageInDays + 1)
}

func cycle[T comparable](values []T, current T, step int) T {
	for i, v := range values {
		if v == current {
			n := len(values)
			return values[((i+step)%n+n)%n]
		}
	}
	return values[0]
}
