package store

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter selects one of the listing policies: everything in scope, a single
// status, or alphabetical order.
type Filter int

const (
	// FilterNone returns every task in scope, insertion order.
	FilterNone Filter = iota

	// FilterPending returns only pending tasks.
	FilterPending

	// FilterDone returns only completed tasks.
	FilterDone

	// FilterAlpha returns every task in scope sorted by name, locale-aware
	// ascending, stable on ties.
	FilterAlpha
)

// ErrUnknownFilter is returned for a filter name outside the three policies.
var ErrUnknownFilter = errors.New("unknown filter")

// collator compares names case-insensitively using Unicode collation order,
// matching the locale-aware compare the browser version relied on.
var collator = collate.New(language.Und, collate.Loose)

// ParseFilter maps a user-supplied filter name to a Filter.
// The empty string means no filtering.
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "":
		return FilterNone, nil
	case "pending":
		return FilterPending, nil
	case "done":
		return FilterDone, nil
	case "alpha":
		return FilterAlpha, nil
	default:
		return FilterNone, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}
}

// Filtered returns the tasks visible under scope after applying the filter
// policy. The returned slice is a copy; mutating it does not affect the
// store.
func (s *Store) Filtered(scope Scope, filter Filter) []Task {
	tasks := s.ListFor(scope)

	switch filter {
	case FilterPending:
		return keepStatus(tasks, StatusPending)
	case FilterDone:
		return keepStatus(tasks, StatusDone)
	case FilterAlpha:
		sort.SliceStable(tasks, func(i, j int) bool {
			return collator.CompareString(tasks[i].Name, tasks[j].Name) < 0
		})
		return tasks
	default:
		return tasks
	}
}

func keepStatus(tasks []Task, status Status) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
