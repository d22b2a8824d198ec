package commands

import (
	"cmp"
	"slices"

	"github.com/colonyops/taskboard/internal/board"
)

// sortByPriority orders rows by descending priority. Ties keep insertion
// order.
func sortByPriority(rows []board.Row) {
	slices.SortStableFunc(rows, func(a, b board.Row) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}
