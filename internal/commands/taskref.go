package commands

import (
	"errors"
	"fmt"
	"strconv"

	"todo/internal/store"
)

// ErrTaskRefRequired indicates no task number was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number from args. Numbers refer to
// positions in the session's visible listing, insertion order.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return num, nil
}

// taskByNumber resolves a task number against the tasks visible under
// scope.
func taskByNumber(s *store.Store, scope store.Scope, num int) (store.Task, error) {
	tasks := s.ListFor(scope)
	if num > len(tasks) {
		return store.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
