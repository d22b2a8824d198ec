package board

import (
	"time"

	"github.com/colonyops/taskboard/internal/core/task"
)

// Row is one rendered task line.
type Row struct {
	ID          string        `json:"id"`
	Icon        string        `json:"icon"`
	Title       string        `json:"title"`
	Category    task.Category `json:"category"`
	Status      task.Status   `json:"status"`
	StatusLabel string        `json:"statusLabel"`
	Priority    float64       `json:"priority"`
}

// View is the projection of the board that renderers draw. It is rebuilt in
// full on every render.
type View struct {
	Filter         Filter `json:"filter"`
	Rows           []Row  `json:"rows"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
}

// BuildView projects the filtered task list and the full-list counters.
func BuildView(a *App) View {
	now := a.Now()
	visible := a.FilteredTasks()

	rows := make([]Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, NewRow(t, now))
	}

	stats := a.Stats()

	return View{
		Filter:         a.Filter(),
		Rows:           rows,
		TotalTasks:     stats.Total,
		CompletedTasks: stats.Completed,
	}
}

// NewRow renders a single task as of now.
func NewRow(t task.Task, now time.Time) Row {
	return Row{
		ID:          t.ID,
		Icon:        t.Category.Icon(),
		Title:       t.Title,
		Category:    t.Category,
		Status:      t.Status,
		StatusLabel: t.Status.Label(),
		Priority:    t.CalculatePriority(now),
	}
}
