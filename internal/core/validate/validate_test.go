package validate

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/task"
)

func TestTaskTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid title", "Buy milk", false},
		{"padded title", "  Buy milk  ", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
		{"newline", "\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskTitle(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestTaskID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid alphanumeric", "k3j9x0a1b", false},
		{"valid letters only", "abcdef", false},
		{"valid numbers only", "123456", false},
		{"empty string", "", true},
		{"with spaces", "abc 123", true},
		{"with hyphen", "abc-123", true},
		{"uppercase letters", "ABC123", true},
		{"unicode", "abc日本", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskID(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestTaskTitleField(t *testing.T) {
	err := TaskTitleField("title", " ")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "title", fieldErrs[0].Field)

	assert.NoError(t, TaskTitleField("title", "ok"))
}

func TestTask(t *testing.T) {
	valid := task.New("abc123def", "Read chapter 3", task.CategoryStudy, task.StatusInProgress, time.Now())
	require.NoError(t, Task("tasks[0]", valid))

	bad := task.Task{ID: "Bad ID", Title: "", Category: "garden", Status: "done"}
	err := Task("tasks[2]", bad)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 5)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{
		"tasks[2].id",
		"tasks[2].title",
		"tasks[2].category",
		"tasks[2].status",
		"tasks[2].createdAt",
	}, fields)
}
