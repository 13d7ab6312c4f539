package taskorder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/service"
	"taskboard/internal/taskorder"
)

func tasks(ids ...int64) []service.Task {
	out := make([]service.Task, len(ids))
	for i, id := range ids {
		out[i] = service.Task{ID: id}
	}
	return out
}

func ids(tasks []service.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestStoreRoundTrip(t *testing.T) {
	store := taskorder.NewStore(filepath.Join(t.TempDir(), "order.json"))

	assert.Nil(t, store.Load())
	require.NoError(t, store.Save([]int64{3, 1, 2}))
	assert.Equal(t, []int64{3, 1, 2}, store.Load())
}

func TestStoreCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	assert.Nil(t, taskorder.NewStore(path).Load())
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name  string
		order []int64
		live  []service.Task
		want  []int64
	}{
		{"empty order appends all", nil, tasks(1, 2, 3), []int64{1, 2, 3}},
		{"survivors keep order", []int64{3, 1, 2}, tasks(1, 2, 3), []int64{3, 1, 2}},
		{"missing ids dropped", []int64{3, 9, 1}, tasks(1, 3), []int64{3, 1}},
		{"new ids appended", []int64{2, 1}, tasks(1, 2, 5, 4), []int64{2, 1, 5, 4}},
		{"no live tasks", []int64{1, 2}, nil, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, taskorder.Reconcile(tc.order, tc.live))
		})
	}
}

func TestApply(t *testing.T) {
	got := taskorder.Apply([]int64{3, 1}, tasks(1, 2, 3, 4))
	assert.Equal(t, []int64{3, 1, 2, 4}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := tasks(1, 2, 3)
	taskorder.Apply([]int64{3, 2, 1}, in)
	assert.Equal(t, []int64{1, 2, 3}, ids(in))
}

func TestMove(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []int64
	}{
		{"forward", 0, 2, []int64{2, 3, 1}},
		{"backward", 2, 0, []int64{3, 1, 2}},
		{"same position", 1, 1, []int64{1, 2, 3}},
		{"to clamped high", 0, 99, []int64{2, 3, 1}},
		{"to clamped low", 2, -5, []int64{3, 1, 2}},
		{"from out of range", 7, 0, []int64{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, taskorder.Move([]int64{1, 2, 3}, tc.from, tc.to))
		})
	}
}

func TestTempID(t *testing.T) {
	assert.Equal(t, int64(-1), taskorder.TempID(nil))
	assert.Equal(t, int64(-1), taskorder.TempID([]int64{1, 2, 3}))
	assert.Equal(t, int64(-3), taskorder.TempID([]int64{1, -2, 3}))
}

func TestReplaceTempID(t *testing.T) {
	assert.Equal(t, []int64{1, 9, 3}, taskorder.ReplaceTempID([]int64{1, -1, 3}, -1, 9))

	// Unknown placeholder appends the real id.
	assert.Equal(t, []int64{1, 2, 9}, taskorder.ReplaceTempID([]int64{1, 2}, -1, 9))

	// Unless the real id is already present.
	assert.Equal(t, []int64{1, 9}, taskorder.ReplaceTempID([]int64{1, 9}, -1, 9))
}
