// Package taskorder persists the user's task ordering as an id list and
// reconciles it against the live task set.
//
// The ordering is purely presentational: the backend keeps tasks in its own
// order, and this package decides how they are shown. Ids that vanished from
// the backend are dropped; new ids are appended at the end.
package taskorder

import (
	"encoding/json"
	"os"
	"slices"

	"taskboard/internal/service"
)

// Store reads and writes the ordered id list. A missing or corrupt file
// reads as an empty order.
type Store struct {
	path string
}

// NewStore creates a Store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted order, or nil when none exists.
func (s *Store) Load() []int64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	return ids
}

// Save persists the order.
func (s *Store) Save(ids []int64) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Reconcile drops ids that no longer exist and appends unseen task ids at
// the end, preserving the relative order of survivors.
func Reconcile(order []int64, tasks []service.Task) []int64 {
	live := make(map[int64]bool, len(tasks))
	for _, t := range tasks {
		live[t.ID] = true
	}

	next := make([]int64, 0, len(tasks))
	for _, id := range order {
		if live[id] {
			next = append(next, id)
		}
	}
	for _, t := range tasks {
		if !slices.Contains(next, t.ID) {
			next = append(next, t.ID)
		}
	}
	return next
}

// Apply sorts tasks by their position in order. Tasks absent from the order
// keep their relative backend order after all ordered ones.
func Apply(order []int64, tasks []service.Task) []service.Task {
	index := make(map[int64]int, len(order))
	for i, id := range order {
		index[id] = i
	}

	sorted := make([]service.Task, len(tasks))
	copy(sorted, tasks)
	slices.SortStableFunc(sorted, func(a, b service.Task) int {
		ia, oka := index[a.ID]
		ib, okb := index[b.ID]
		switch {
		case oka && okb:
			return ia - ib
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Move shifts the element at position from to position to, clamping to to
// the list bounds. Positions are 0-based.
func Move(order []int64, from, to int) []int64 {
	if from < 0 || from >= len(order) {
		return order
	}
	if to < 0 {
		to = 0
	}
	if to >= len(order) {
		to = len(order) - 1
	}
	if from == to {
		return order
	}

	next := make([]int64, 0, len(order))
	next = append(next, order[:from]...)
	next = append(next, order[from+1:]...)
	next = slices.Insert(next, to, order[from])
	return next
}

// TempID returns a placeholder id for a task whose create has not settled.
// Backend ids are positive, so placeholders are negative and can never
// collide; successive calls against the same order yield distinct ids.
func TempID(order []int64) int64 {
	low := int64(0)
	for _, id := range order {
		if id < low {
			low = id
		}
	}
	return low - 1
}

// ReplaceTempID swaps a client-side placeholder id for the backend-assigned
// one once a create settles. If the placeholder is unknown the real id is
// appended, unless it is already present.
func ReplaceTempID(order []int64, tmpID, realID int64) []int64 {
	idx := slices.Index(order, tmpID)
	if idx == -1 {
		if slices.Contains(order, realID) {
			return order
		}
		return append(slices.Clone(order), realID)
	}
	next := slices.Clone(order)
	next[idx] = realID
	return next
}
