package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestStaticRangeCoversAllIndices(t *testing.T) {
	const n = 137
	seen := make([]int32, n)

	StaticRange(n, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestDynamicTasksCoversAllIndices(t *testing.T) {
	const n = 97
	results := make([]int, n)

	DynamicTasks(n, 8, func(i int) {
		results[i] = i * i
	})

	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestWorkersClampsToMax(t *testing.T) {
	if got := Workers(64, 4); got != 4 {
		t.Errorf("Workers(64, 4) = %d, want 4", got)
	}
	if got := Workers(0, 4); got < 1 {
		t.Errorf("Workers(0, 4) = %d, want >= 1", got)
	}
}
