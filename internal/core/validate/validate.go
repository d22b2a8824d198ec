// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/taskboard/internal/core/task"
)

// TaskTitle validates a task title is non-empty after trimming whitespace.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

var taskIDPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// TaskID validates a task identifier is lowercase alphanumeric.
func TaskID(id string) error {
	if !taskIDPattern.MatchString(id) {
		return fmt.Errorf("invalid task id %q: must be lowercase letters and digits", id)
	}
	return nil
}

// TaskTitleField returns a criterio validator for task titles.
func TaskTitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}

// Task checks every field of a fully formed task, reporting each problem
// under a field name prefixed with prefix.
func Task(prefix string, t task.Task) error {
	var errs criterio.FieldErrorsBuilder

	if err := TaskID(t.ID); err != nil {
		errs = errs.Append(prefix+".id", err)
	}
	if err := TaskTitle(t.Title); err != nil {
		errs = errs.Append(prefix+".title", err)
	}
	if !t.Category.IsValid() {
		errs = errs.Append(prefix+".category", fmt.Errorf("unknown category %q", t.Category))
	}
	if !t.Status.IsValid() {
		errs = errs.Append(prefix+".status", fmt.Errorf("unknown status %q", t.Status))
	}
	if t.CreatedAt.IsZero() {
		errs = errs.Append(prefix+".createdAt", fmt.Errorf("creation time is required"))
	}

	return errs.ToError()
}
