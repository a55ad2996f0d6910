package pose

import (
	"fmt"

	"github.com/j2ase1862/VMS/internal/workerpool"
)

// BatchOptions controls EvaluateAllPoses' parallelism.
type BatchOptions struct {
	// MaxWorkers caps the number of goroutines evaluating poses
	// concurrently. Zero means "use runtime.GOMAXPROCS(0)".
	MaxWorkers int
}

type poseResult struct {
	score  float64
	dx, dy int
}

// EvaluateAllPoses runs EvaluateBatch's lattice search independently for
// each of poseCount pre-rotated model variants against a single gradient
// image, and returns the globally best (score, dx, dy, poseIndex)
// (spec.md §4.B "All-poses batch").
//
// allRx, allRy, allRdx, allRdy are laid out as poseCount contiguous
// per-pose slices of n elements each — allRx[pi*n : pi*n+n] is pose pi's
// rx — mirroring NativeVision.cpp's EvaluateAllPosesNative pointer
// arithmetic (allRx + pi*N). margins holds one border margin per pose.
//
// Poses are evaluated across a worker pool with dynamic scheduling
// (spec.md §5); each worker writes only to its own slot of a
// pose-indexed results slice, and a single serial pass then folds those
// slots in ascending pose-index order with strict improvement, so the
// result is deterministic and matches the serial (poseIdx, dy, dx)
// enumeration order regardless of goroutine scheduling (spec.md §8
// testable property 5) — NativeVision.cpp's #pragma omp critical merge
// does not give that guarantee under tied scores, so this is a
// deliberately strengthened reduction, not a literal port of the OpenMP
// merge.
func EvaluateAllPoses(baseCx, baseCy, refRadius int, allRx, allRy []int32, allRdx, allRdy []float32, margins []int, poseCount, n int, dxImg, dyImg, magImg []float32, width, height int, opts Options, batchOpts BatchOptions) (bestScore float64, bestDx, bestDy, bestPoseIdx int, err error) {
	if poseCount <= 0 {
		return 0, 0, 0, 0, nil
	}
	want := poseCount * n
	if len(allRx) != want || len(allRy) != want || len(allRdx) != want || len(allRdy) != want {
		return 0, 0, 0, 0, fmt.Errorf("pose: allRx/allRy/allRdx/allRdy must have length poseCount*n=%d", want)
	}
	if len(margins) != poseCount {
		return 0, 0, 0, 0, fmt.Errorf("pose: margins length %d != poseCount %d", len(margins), poseCount)
	}
	if n == 0 {
		return 0, 0, 0, 0, nil
	}

	results := make([]poseResult, poseCount)

	workerpool.DynamicTasks(poseCount, batchOpts.MaxWorkers, func(pi int) {
		lo := pi * n
		hi := lo + n
		score, dx, dy, _ := EvaluateBatch(
			baseCx, baseCy, refRadius,
			allRx[lo:hi], allRy[lo:hi], allRdx[lo:hi], allRdy[lo:hi],
			dxImg, dyImg, magImg, width, height, margins[pi], opts,
		)
		results[pi] = poseResult{score: score, dx: dx, dy: dy}
	})

	for pi, r := range results {
		if r.score > bestScore {
			bestScore = r.score
			bestDx, bestDy = r.dx, r.dy
			bestPoseIdx = pi
		}
	}

	return bestScore, bestDx, bestDy, bestPoseIdx, nil
}
