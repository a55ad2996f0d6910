// Package workerpool provides the scoped fork-join primitives the kernel
// packages use to parallelize their per-row, per-pose, and per-angle work.
// It is grounded on the channel-plus-WaitGroup work queue used throughout
// the teacher's hwy/contrib/matmul package (ParallelMatMul,
// ParallelMatMulFineGrained): a bounded work queue, a fixed worker count
// capped at maxWorkers, and wg.Wait() as the join point. There is no
// persistent pool and no global scheduler — every call is a self-contained
// fork-join group, matching spec.md §9's "no global state" requirement.
package workerpool

import (
	"runtime"
	"sync"
)

// Workers clamps n to [1, maxWorkers], falling back to GOMAXPROCS when n
// is not positive. maxWorkers of 0 means "no cap beyond GOMAXPROCS".
func Workers(n, maxWorkers int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if maxWorkers > 0 && n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// StaticRange partitions [0, count) into numWorkers contiguous, equal-sized
// blocks and runs fn(start, end) for each block concurrently, waiting for
// all of them to finish. This is the static row-partition scheduling the
// Gradient Engine uses (spec.md §5): every worker's share is fixed before
// any work starts, so there is no shared scheduling state on the hot path.
func StaticRange(count, numWorkers int, fn func(start, end int)) {
	if count <= 0 {
		return
	}
	numWorkers = Workers(numWorkers, count)
	if numWorkers == 1 {
		fn(0, count)
		return
	}

	chunk := (count + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		if start >= count {
			break
		}
		end := min(start+chunk, count)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// DynamicTasks dispatches [0, count) task indices across numWorkers
// goroutines pulling from a shared channel (dynamic scheduling), calling
// fn(i) for each index. It waits for every task to complete before
// returning. This is the scheduling the Pose Scorer batch and Hough Voter
// use across poses and angles (spec.md §5): tasks have uneven cost (an
// angle near a dense cluster of search edges does more work than a sparse
// one), so a dynamic work queue balances load the way a static partition
// would not.
//
// fn must write its result, if any, only to memory private to index i
// (e.g. results[i]) — DynamicTasks provides no synchronization beyond
// "every call to fn happens before DynamicTasks returns", so callers must
// not share mutable state across indices without their own locking.
func DynamicTasks(count, numWorkers int, fn func(i int)) {
	if count <= 0 {
		return
	}
	numWorkers = Workers(numWorkers, count)
	if numWorkers == 1 {
		for i := 0; i < count; i++ {
			fn(i)
		}
		return
	}

	work := make(chan int, count)
	for i := 0; i < count; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
