package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tk := New("abc123xyz", "Buy milk", "", "", now)

	assert.Equal(t, "abc123xyz", tk.ID)
	assert.Equal(t, "Buy milk", tk.Title)
	assert.Equal(t, CategoryHome, tk.Category)
	assert.Equal(t, StatusNotStarted, tk.Status)
	assert.Equal(t, now, tk.CreatedAt)
}

func TestUpdateStatus_Unconditional(t *testing.T) {
	tk := New("id", "Read", CategoryStudy, StatusNotStarted, time.Now())

	tk.UpdateStatus(StatusCompleted)
	assert.True(t, tk.IsCompleted())

	// The entity does not validate; the board does.
	tk.UpdateStatus(Status("bogus"))
	assert.Equal(t, Status("bogus"), tk.Status)
}

func TestCalculatePriority(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("brand new task scores one", func(t *testing.T) {
		tk := New("id", "x", CategoryWork, StatusNotStarted, now)
		assert.InDelta(t, 1.0, tk.CalculatePriority(now), 1e-9)
	})

	t.Run("one day old scores a half", func(t *testing.T) {
		tk := New("id", "x", CategoryWork, StatusNotStarted, now.Add(-24*time.Hour))
		assert.InDelta(t, 0.5, tk.CalculatePriority(now), 1e-9)
	})

	t.Run("strictly decreasing with age", func(t *testing.T) {
		ages := []time.Duration{0, time.Minute, time.Hour, 12 * time.Hour, 48 * time.Hour, 30 * 24 * time.Hour}
		prev := 2.0
		for _, age := range ages {
			tk := New("id", "x", CategoryWork, StatusNotStarted, now.Add(-age))
			p := tk.CalculatePriority(now)
			assert.Less(t, p, prev, "age %s", age)
			prev = p
		}
	})
}

func TestCategory(t *testing.T) {
	tests := []struct {
		category Category
		valid    bool
		icon     string
	}{
		{CategoryHome, true, "🏠"},
		{CategoryWork, true, "💼"},
		{CategoryStudy, true, "📚"},
		{Category("garden"), false, "📌"},
		{Category(""), false, "📌"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.category.IsValid())
			assert.Equal(t, tt.icon, tt.category.Icon())
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("work")
	require.NoError(t, err)
	assert.Equal(t, CategoryWork, c)

	_, err = ParseCategory("Work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestCategoryNext(t *testing.T) {
	assert.Equal(t, CategoryWork, CategoryHome.Next())
	assert.Equal(t, CategoryStudy, CategoryWork.Next())
	assert.Equal(t, CategoryHome, CategoryStudy.Next())
	assert.Equal(t, CategoryHome, Category("garden").Next())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Not started", StatusNotStarted.Label())
	assert.Equal(t, "In progress", StatusInProgress.Label())
	assert.Equal(t, "Completed", StatusCompleted.Label())
	assert.Equal(t, "paused", Status("paused").Label())

	assert.Equal(t, StatusInProgress, StatusNotStarted.Next())
	assert.Equal(t, StatusCompleted, StatusInProgress.Next())
	assert.Equal(t, StatusNotStarted, StatusCompleted.Next())
	assert.Equal(t, StatusCompleted, StatusNotStarted.Prev())
	assert.Equal(t, StatusNotStarted, Status("paused").Next())

	_, err := ParseStatus("done")
	require.Error(t, err)

	s, err := ParseStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)
}

func TestTask_JSONFieldNames(t *testing.T) {
	tk := New("abc", "Buy milk", CategoryHome, StatusNotStarted, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	data, err := json.Marshal(tk)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"abc","title":"Buy milk","category":"home","status":"not-started","createdAt":"2025-01-02T03:04:05Z"}`, string(data))
}
