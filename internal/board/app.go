// Package board holds the task board application state: the ordered task
// list, the active category filter, and the load/save/notify cycle around
// every mutation.
package board

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/taskboard/internal/core/task"
	"github.com/colonyops/taskboard/internal/core/validate"
	"github.com/colonyops/taskboard/pkg/randid"
)

// IDLength is the number of characters in a generated task id.
const IDLength = 9

// maxIDAttempts bounds regeneration when a fresh id collides with an
// existing one.
const maxIDAttempts = 100

// App owns the task list and the current filter. It is not safe for
// concurrent use; callers serialize access the way the TUI event loop does.
type App struct {
	persist   *Persistence
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
	tasks     []task.Task
	filter    Filter
	listeners []func()
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithClock overrides the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(gen func() string) Option {
	return func(a *App) { a.newID = gen }
}

// New creates an App bound to persistence. Call Load before use.
func New(p *Persistence, opts ...Option) *App {
	a := &App{
		persist: p,
		log:     zerolog.Nop(),
		now:     time.Now,
		newID:   func() string { return randid.Generate(IDLength) },
		filter:  FilterAll,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load replaces the in-memory list with the persisted one. When nothing has
// been persisted the list is left empty.
func (a *App) Load(ctx context.Context) error {
	tasks, found, err := a.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	if !found {
		a.log.Debug().Ctx(ctx).Msg("no persisted tasks, starting empty")
		a.tasks = nil
		return nil
	}

	a.tasks = tasks
	a.log.Debug().Ctx(ctx).Int("count", len(tasks)).Msg("loaded tasks")
	return nil
}

// OnChange registers fn to run after every mutation and filter change.
func (a *App) OnChange(fn func()) {
	a.listeners = append(a.listeners, fn)
}

// AddTask appends a new task and persists the list. Empty category and
// status default to home and not-started.
func (a *App) AddTask(ctx context.Context, title string, category task.Category, status task.Status) (task.Task, error) {
	title = strings.TrimSpace(title)
	if err := validate.TaskTitle(title); err != nil {
		return task.Task{}, ErrEmptyTitle
	}

	t := task.New("", title, category, status, a.now())
	if !t.Category.IsValid() {
		return task.Task{}, fmt.Errorf("%w %q", ErrInvalidCategory, category)
	}
	if !t.Status.IsValid() {
		return task.Task{}, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	id, err := a.uniqueID()
	if err != nil {
		return task.Task{}, err
	}
	t.ID = id

	a.tasks = append(a.tasks, t)
	if err := a.commit(ctx); err != nil {
		a.tasks = a.tasks[:len(a.tasks)-1]
		return task.Task{}, err
	}

	a.log.Debug().Ctx(ctx).Str("id", t.ID).Str("category", string(t.Category)).Msg("task added")
	return t, nil
}

// UpdateTaskStatus sets the status of the task with id. An unknown id is a
// no-op and reports false.
func (a *App) UpdateTaskStatus(ctx context.Context, id string, status task.Status) (bool, error) {
	if !status.IsValid() {
		return false, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	idx := a.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	prev := a.tasks[idx].Status
	a.tasks[idx].UpdateStatus(status)

	if err := a.commit(ctx); err != nil {
		a.tasks[idx].UpdateStatus(prev)
		return false, err
	}

	a.log.Debug().Ctx(ctx).Str("id", id).Str("status", string(status)).Msg("task status updated")
	return true, nil
}

// DeleteTask removes the task with id and persists the list. The list is
// rewritten even when id is absent; the boolean reports whether a task was
// removed.
func (a *App) DeleteTask(ctx context.Context, id string) (bool, error) {
	prev := a.tasks
	next := slices.DeleteFunc(slices.Clone(a.tasks), func(t task.Task) bool { return t.ID == id })
	removed := len(next) != len(prev)

	a.tasks = next
	if err := a.commit(ctx); err != nil {
		a.tasks = prev
		return false, err
	}

	a.log.Debug().Ctx(ctx).Str("id", id).Bool("removed", removed).Msg("task delete")
	return removed, nil
}

// ReplaceTasks swaps the whole list, as an import does. Ids that repeat an
// earlier entry are regenerated.
func (a *App) ReplaceTasks(ctx context.Context, tasks []task.Task) error {
	prev := a.tasks
	next := make([]task.Task, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))

	for _, t := range tasks {
		if seen[t.ID] {
			id, err := a.uniqueIDAmong(seen)
			if err != nil {
				a.tasks = prev
				return err
			}
			a.log.Debug().Ctx(ctx).Str("old", t.ID).Str("new", id).Msg("duplicate id reassigned")
			t.ID = id
		}
		seen[t.ID] = true
		next = append(next, t)
	}

	a.tasks = next
	if err := a.commit(ctx); err != nil {
		a.tasks = prev
		return err
	}

	return nil
}

// SetFilter changes the active category filter.
func (a *App) SetFilter(f Filter) {
	if f == "" {
		f = FilterAll
	}
	a.filter = f
	a.notify()
}

// Filter returns the active category filter.
func (a *App) Filter() Filter {
	return a.filter
}

// Tasks returns a copy of the full list in insertion order.
func (a *App) Tasks() []task.Task {
	if len(a.tasks) == 0 {
		return []task.Task{}
	}
	return slices.Clone(a.tasks)
}

// FilteredTasks returns the tasks visible under the active filter, in
// insertion order.
func (a *App) FilteredTasks() []task.Task {
	return a.TasksFor(a.filter)
}

// TasksFor returns the tasks visible under f without changing the active
// filter.
func (a *App) TasksFor(f Filter) []task.Task {
	out := make([]task.Task, 0, len(a.tasks))
	for _, t := range a.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task with id.
func (a *App) Get(id string) (task.Task, bool) {
	idx := a.indexOf(id)
	if idx < 0 {
		return task.Task{}, false
	}
	return a.tasks[idx], true
}

// Stats holds aggregate counters over the full list.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

// Stats counts tasks by status across the full list.
func (a *App) Stats() Stats {
	s := Stats{Total: len(a.tasks)}
	for _, t := range a.tasks {
		switch t.Status {
		case task.StatusCompleted:
			s.Completed++
		case task.StatusInProgress:
			s.InProgress++
		case task.StatusNotStarted:
			s.NotStarted++
		}
	}
	return s
}

// Now returns the App's current time.
func (a *App) Now() time.Time {
	return a.now()
}

func (a *App) commit(ctx context.Context) error {
	if err := a.persist.Save(ctx, a.tasks); err != nil {
		a.log.Error().Ctx(ctx).Err(err).Msg("persist tasks")
		return fmt.Errorf("save tasks: %w", err)
	}
	a.notify()
	return nil
}

func (a *App) notify() {
	for _, fn := range a.listeners {
		fn()
	}
}

func (a *App) indexOf(id string) int {
	return slices.IndexFunc(a.tasks, func(t task.Task) bool { return t.ID == id })
}

func (a *App) uniqueID() (string, error) {
	taken := make(map[string]bool, len(a.tasks))
	for _, t := range a.tasks {
		taken[t.ID] = true
	}
	return a.uniqueIDAmong(taken)
}

func (a *App) uniqueIDAmong(taken map[string]bool) (string, error) {
	for range maxIDAttempts {
		id := a.newID()
		if id != "" && !taken[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique task id after %d attempts", maxIDAttempts)
}
