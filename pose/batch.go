package pose

import "fmt"

// EvaluateBatch enumerates (dx, dy) in the square
// [-refRadius, +refRadius]^2 around (baseCx, baseCy), rejecting any
// candidate centre within margin of the image border, scores each with
// Evaluate's scalar reference, and returns the best score with its
// offset (spec.md §4.B "Lattice search").
//
// Enumeration order is dy outer, dx inner (both ascending), and a
// candidate only replaces the current best on a strict improvement, so
// ties resolve to the lexicographically smallest (dy, dx) pair — the
// earliest-enumerated candidate wins.
//
// If no candidate lies in bounds, EvaluateBatch returns (0, 0, 0, nil).
func EvaluateBatch(baseCx, baseCy, refRadius int, rx, ry []int32, rdx, rdy []float32, dxImg, dyImg, magImg []float32, width, height, margin int, opts Options) (bestScore float64, bestDx, bestDy int, err error) {
	n := len(rx)
	if len(ry) != n || len(rdx) != n || len(rdy) != n {
		return 0, 0, 0, fmt.Errorf("pose: rx/ry/rdx/rdy length mismatch: %d/%d/%d/%d", len(rx), len(ry), len(rdx), len(rdy))
	}
	if n == 0 {
		return 0, 0, 0, nil
	}

	offsets := buildOffsets(rx, ry, width)

	for dy := -refRadius; dy <= refRadius; dy++ {
		py := baseCy + dy
		if py < margin || py >= height-margin {
			continue
		}
		for dx := -refRadius; dx <= refRadius; dx++ {
			px := baseCx + dx
			if px < margin || px >= width-margin {
				continue
			}

			score := scoreAt(px, py, offsets, rdx, rdy, dxImg, dyImg, magImg, width, n, opts)
			if score > bestScore {
				bestScore = score
				bestDx, bestDy = dx, dy
			}
		}
	}

	return bestScore, bestDx, bestDy, nil
}
