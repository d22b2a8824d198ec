package memory

import (
	"context"
	"testing"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.GetItem(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "tasks", "[]"))
	require.NoError(t, s.SetItem(ctx, "tasks", `[{"id":"a"}]`))

	v, ok, err := s.GetItem(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, v)
	assert.Equal(t, []string{"tasks"}, s.Keys())

	require.NoError(t, s.RemoveItem(ctx, "tasks"))
	require.NoError(t, s.RemoveItem(ctx, "missing"))

	_, ok, err = s.GetItem(ctx, "tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Close())

	_, _, err := s.GetItem(ctx, "k")
	require.ErrorIs(t, err, storage.ErrClosed)
	require.ErrorIs(t, s.SetItem(ctx, "k", "v"), storage.ErrClosed)
	require.ErrorIs(t, s.RemoveItem(ctx, "k"), storage.ErrClosed)
}
