package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/store/memory"
	"github.com/colonyops/taskboard/pkg/tuitest"
)

func newTestModel(t *testing.T) (Model, *board.App) {
	t.Helper()

	p, err := board.NewPersistence(memory.New(), board.DefaultKey)
	require.NoError(t, err)

	n := 0
	app := board.New(p,
		board.WithClock(func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }),
		board.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("t%d", n)
		}),
	)
	require.NoError(t, app.Load(context.Background()))

	m := New(context.Background(), app, Options{Logger: zerolog.Nop()})
	m = send(t, m, tuitest.WindowSize(100, 40))
	return m, app
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func typeTask(t *testing.T, m Model, title string) Model {
	t.Helper()

	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.KeyPressString(title)...)
	return send(t, m, tuitest.KeyEnter(), tuitest.KeyEsc())
}

func TestModel_AddTask(t *testing.T) {
	m, app := newTestModel(t)

	m = typeTask(t, m, "Buy milk")

	tasks := app.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, task.CategoryHome, tasks[0].Category)
	assert.Equal(t, task.StatusNotStarted, tasks[0].Status)
	assert.Equal(t, 1, m.Renders())

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "🏠 Buy milk")
	assert.Contains(t, out, "Not started")
	assert.Contains(t, out, "Total: 1  Completed: 0")
}

func TestModel_AddTask_EmptyTitleIgnored(t *testing.T) {
	m, app := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.KeyPressString("   ")...)
	m = send(t, m, tuitest.KeyEnter())

	assert.Empty(t, app.Tasks())
	assert.NoError(t, m.Err())
	assert.Equal(t, 0, m.Renders())
}

func TestModel_AddTask_CategoryAndStatusCycle(t *testing.T) {
	m, app := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('a'), tuitest.KeyTab(), tuitest.KeyShiftTab())
	m = send(t, m, tuitest.KeyPressString("Report")...)
	send(t, m, tuitest.KeyEnter())

	tasks := app.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.CategoryWork, tasks[0].Category)
	assert.Equal(t, task.StatusInProgress, tasks[0].Status)
}

func TestModel_KeysWhileTypingGoToInput(t *testing.T) {
	m, app := newTestModel(t)

	// q, x and s are plain characters while the input has focus
	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.KeyPressString("qxs")...)
	send(t, m, tuitest.KeyEnter())

	tasks := app.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "qxs", tasks[0].Title)
}

func TestModel_CycleStatus(t *testing.T) {
	m, app := newTestModel(t)
	m = typeTask(t, m, "Study")

	m = send(t, m, tuitest.KeyPress('s'))
	got, _ := app.Get("t1")
	assert.Equal(t, task.StatusInProgress, got.Status)

	m = send(t, m, tuitest.KeyPress('s'))
	got, _ = app.Get("t1")
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Total: 1  Completed: 1")

	send(t, m, tuitest.KeyPress('S'))
	got, _ = app.Get("t1")
	assert.Equal(t, task.StatusInProgress, got.Status)
}

func TestModel_Delete(t *testing.T) {
	m, app := newTestModel(t)
	m = typeTask(t, m, "first")
	m = typeTask(t, m, "second")

	m = send(t, m, tuitest.KeyUp(), tuitest.KeyPress('x'))

	tasks := app.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "second", tasks[0].Title)

	out := tuitest.StripANSI(m.View())
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "Total: 1  Completed: 0")
}

func TestModel_DeleteOnEmptyBoard(t *testing.T) {
	m, app := newTestModel(t)

	m = send(t, m, tuitest.KeyPress('x'))

	assert.Empty(t, app.Tasks())
	assert.Equal(t, 0, m.Renders())
}

func TestModel_Filter(t *testing.T) {
	m, app := newTestModel(t)

	m = typeTask(t, m, "dishes")
	m = send(t, m, tuitest.KeyPress('a'), tuitest.KeyTab())
	m = send(t, m, tuitest.KeyPressString("deploy")...)
	m = send(t, m, tuitest.KeyEnter(), tuitest.KeyEsc())

	m = send(t, m, tuitest.KeyPress('3'))
	assert.Equal(t, board.Filter(task.CategoryWork), app.Filter())

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "💼 deploy")
	assert.NotContains(t, out, "dishes")
	// counters always cover the full list
	assert.Contains(t, out, "Total: 2  Completed: 0")

	m = send(t, m, tuitest.KeyPress('f'))
	assert.Equal(t, board.Filter(task.CategoryStudy), app.Filter())
	assert.Contains(t, tuitest.StripANSI(m.View()), "No tasks yet")

	m = send(t, m, tuitest.KeyPress('1'))
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "dishes")
	assert.Contains(t, out, "deploy")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
