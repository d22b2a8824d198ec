// Package tui implements the interactive task board.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/board"
	"github.com/colonyops/taskboard/internal/core/logging"
	"github.com/colonyops/taskboard/internal/core/task"
)

// Options configures the board model.
type Options struct {
	DefaultCategory task.Category
	DefaultStatus   task.Status
	Logger          zerolog.Logger
}

// frame is the last projection of the board. It is rebuilt by the board's
// change listener and shared between copies of Model.
type frame struct {
	view    board.View
	renders int
}

// Model is the bubbletea model for the task board.
type Model struct {
	ctx   context.Context
	app   *board.App
	log   zerolog.Logger
	keys  keyMap
	help  help.Model
	input textinput.Model
	frame *frame

	category task.Category
	status   task.Status
	cursor   int
	err      error

	width  int
	height int
}

// New creates a board model bound to app and registers a listener that
// rebuilds the view after every mutation.
func New(ctx context.Context, app *board.App, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Prompt = "> "

	category := opts.DefaultCategory
	if !category.IsValid() {
		category = task.CategoryHome
	}
	status := opts.DefaultStatus
	if !status.IsValid() {
		status = task.StatusNotStarted
	}

	f := &frame{view: board.BuildView(app)}
	app.OnChange(func() {
		f.view = board.BuildView(app)
		f.renders++
	})

	return Model{
		ctx:      ctx,
		app:      app,
		log:      opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    ti,
		frame:    f,
		category: category,
		status:   status,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-24, 10)
		return m, nil
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleInputKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextCat):
		m.category = m.category.Next()
		return m, nil
	case key.Matches(msg, m.keys.NextStatus):
		m.status = m.status.Next()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		return m.addTask()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.frame.view.Rows

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.err = nil
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.CycleStatus):
		return m.cycleStatus(task.Status.Next)
	case key.Matches(msg, m.keys.PrevStatus):
		return m.cycleStatus(task.Status.Prev)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(board.FilterAll)
	case key.Matches(msg, m.keys.FilterHome):
		m.setFilter(board.Filter(task.CategoryHome))
	case key.Matches(msg, m.keys.FilterWork):
		m.setFilter(board.Filter(task.CategoryWork))
	case key.Matches(msg, m.keys.FilterStudy):
		m.setFilter(board.Filter(task.CategoryStudy))
	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.app.Filter().Next())
	}

	return m, nil
}

func (m Model) addTask() (tea.Model, tea.Cmd) {
	ctx := logging.WithCommand(m.ctx, "tui.add")

	t, err := m.app.AddTask(ctx, m.input.Value(), m.category, m.status)
	switch {
	case errors.Is(err, board.ErrEmptyTitle):
		return m, nil
	case err != nil:
		m.fail(ctx, err)
		return m, nil
	}

	m.err = nil
	m.input.Reset()
	m.selectID(t.ID)
	return m, nil
}

func (m Model) cycleStatus(step func(task.Status) task.Status) (tea.Model, tea.Cmd) {
	row, ok := m.selected()
	if !ok {
		return m, nil
	}

	ctx := logging.WithTaskID(logging.WithCommand(m.ctx, "tui.status"), row.ID)
	if _, err := m.app.UpdateTaskStatus(ctx, row.ID, step(row.Status)); err != nil {
		m.fail(ctx, err)
		return m, nil
	}

	m.err = nil
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	row, ok := m.selected()
	if !ok {
		return m, nil
	}

	ctx := logging.WithTaskID(logging.WithCommand(m.ctx, "tui.delete"), row.ID)
	if _, err := m.app.DeleteTask(ctx, row.ID); err != nil {
		m.fail(ctx, err)
		return m, nil
	}

	m.err = nil
	m.clampCursor()
	return m, nil
}

func (m *Model) setFilter(f board.Filter) {
	m.app.SetFilter(f)
	m.cursor = 0
}

func (m *Model) fail(ctx context.Context, err error) {
	m.err = err
	m.log.Error().Ctx(ctx).Err(err).Msg("board mutation failed")
}

func (m Model) selected() (board.Row, bool) {
	rows := m.frame.view.Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return board.Row{}, false
	}
	return rows[m.cursor], true
}

// selectID moves the cursor to the row with id if it is visible.
func (m *Model) selectID(id string) {
	for i, r := range m.frame.view.Rows {
		if r.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.frame.view.Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Renders reports how many times the board has been re-rendered after a
// change.
func (m Model) Renders() int {
	return m.frame.renders
}

// Err returns the last mutation error shown in the status line.
func (m Model) Err() error {
	return m.err
}
