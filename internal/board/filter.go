package board

import (
	"fmt"

	"github.com/colonyops/taskboard/internal/core/task"
)

// Filter narrows the visible tasks to one category, or none for FilterAll.
type Filter string

// FilterAll shows every task.
const FilterAll Filter = "all"

// Filters returns every filter value in display order.
func Filters() []Filter {
	filters := []Filter{FilterAll}
	for _, c := range task.Categories() {
		filters = append(filters, Filter(c))
	}
	return filters
}

// ParseFilter accepts "all" or a category name.
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if f == FilterAll || task.Category(s).IsValid() {
		return f, nil
	}
	return "", fmt.Errorf("%w %q: must be one of all, home, work, study", ErrInvalidFilter, s)
}

// Matches reports whether t is visible under f.
func (f Filter) Matches(t task.Task) bool {
	return f == FilterAll || f == "" || task.Category(f) == t.Category
}

// Next returns the following filter in display order, wrapping around.
func (f Filter) Next() Filter {
	all := Filters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Label returns the filter heading text.
func (f Filter) Label() string {
	if f == FilterAll || f == "" {
		return "All"
	}
	return task.Category(f).Icon() + " " + string(f)
}
