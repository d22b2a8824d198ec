package board

import "errors"

var (
	// ErrEmptyTitle is returned when a task title is blank after trimming.
	ErrEmptyTitle = errors.New("task title is required")
	// ErrInvalidCategory is returned for categories outside home, work, study.
	ErrInvalidCategory = errors.New("invalid task category")
	// ErrInvalidStatus is returned for statuses outside the task lifecycle.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrInvalidFilter is returned when parsing an unknown filter value.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrCorrupt is returned when persisted data is not a valid task list.
	ErrCorrupt = errors.New("persisted task data is corrupt")
)
