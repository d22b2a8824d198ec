package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
)

func TestBuildView(t *testing.T) {
	ctx := context.Background()

	clock := testNow
	app, _ := newTestApp(t, WithClock(func() time.Time { return clock }))

	_, err := app.AddTask(ctx, "Buy milk", task.CategoryHome, task.StatusNotStarted)
	require.NoError(t, err)

	clock = testNow.Add(24 * time.Hour)
	report, err := app.AddTask(ctx, "Report", task.CategoryWork, task.StatusCompleted)
	require.NoError(t, err)

	view := BuildView(app)
	assert.Equal(t, FilterAll, view.Filter)
	assert.Equal(t, 2, view.TotalTasks)
	assert.Equal(t, 1, view.CompletedTasks)
	require.Len(t, view.Rows, 2)

	assert.Equal(t, Row{
		ID:          "id1",
		Icon:        "🏠",
		Title:       "Buy milk",
		Category:    task.CategoryHome,
		Status:      task.StatusNotStarted,
		StatusLabel: "Not started",
		Priority:    0.5,
	}, view.Rows[0])
	assert.InDelta(t, 1.0, view.Rows[1].Priority, 1e-9)

	app.SetFilter(Filter(task.CategoryWork))
	view = BuildView(app)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, report.ID, view.Rows[0].ID)
	assert.Equal(t, "💼", view.Rows[0].Icon)
	assert.Equal(t, 2, view.TotalTasks, "counters cover the full list")
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []Filter{"all", "home", "work", "study"}, Filters())

	f, err := ParseFilter("study")
	require.NoError(t, err)
	assert.Equal(t, Filter("study"), f)

	_, err = ParseFilter("garden")
	require.ErrorIs(t, err, ErrInvalidFilter)

	home := task.New("a", "x", task.CategoryHome, "", testNow)
	assert.True(t, FilterAll.Matches(home))
	assert.True(t, Filter("home").Matches(home))
	assert.False(t, Filter("work").Matches(home))

	assert.Equal(t, Filter("home"), FilterAll.Next())
	assert.Equal(t, FilterAll, Filter("study").Next())

	assert.Equal(t, "All", FilterAll.Label())
	assert.Equal(t, "📚 study", Filter("study").Label())
}
