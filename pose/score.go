package pose

import (
	"fmt"

	"github.com/j2ase1862/VMS/simd"
)

// magEpsilon is the minimum gradient magnitude treated as non-zero
// (spec.md §4.B: "contributions with Mag[k] <= 1e-3 are treated as zero").
const magEpsilon = 1e-3

// Evaluate scores a single candidate centre (px, py) against the target
// gradient image, using the model's offsets rx/ry and unit directions
// rdx/rdy.
//
// rx, ry, rdx, and rdy must all have the same length N. Every access
// (py+ry[i])*width + (px+rx[i]) must land inside dxImg/dyImg/magImg; the
// caller is responsible for keeping px, py within a margin that makes
// this true (spec.md §6).
func Evaluate(px, py int, rx, ry []int32, rdx, rdy []float32, dxImg, dyImg, magImg []float32, width int, opts Options) (float64, error) {
	n := len(rx)
	if len(ry) != n || len(rdx) != n || len(rdy) != n {
		return 0, fmt.Errorf("pose: rx/ry/rdx/rdy length mismatch: %d/%d/%d/%d", len(rx), len(ry), len(rdx), len(rdy))
	}
	if n == 0 {
		return 0, nil
	}

	offsets := buildOffsets(rx, ry, width)
	return scoreAt(px, py, offsets, rdx, rdy, dxImg, dyImg, magImg, width, n, opts), nil
}

// buildOffsets precomputes the linear image offset ry[i]*width+rx[i] for
// every model point, the same caller-side precomputation
// NativeVision.cpp's EvaluateNative legacy wrapper and EvaluateBatchNative
// do before their hot loop.
func buildOffsets(rx, ry []int32, width int) []int32 {
	offsets := make([]int32, len(rx))
	for i := range rx {
		offsets[i] = ry[i]*int32(width) + rx[i]
	}
	return offsets
}

// scoreAt is the scalar reference for the per-pose score (spec.md §4.B):
//
//	score(px,py) = (1/N) * sum_i f(rdx[i]*Dx[base+off[i]] + rdy[i]*Dy[base+off[i]]) / Mag[base+off[i]]
//
// processed in simd.Width-wide blocks with a scalar tail. The early-out is
// checked once, at the first full block boundary at or past floor(N/5)
// points: if the partial mean so far is below thresh*(1-greedy), the score
// is 0. A model with fewer than simd.Width points has no full block and is
// never cut short. Division by Mag uses simd.Reciprocal12, not true
// division — the documented ~12-bit approximation (spec.md §9).
func scoreAt(px, py int, offsets []int32, rdx, rdy []float32, dxImg, dyImg, magImg []float32, width, n int, opts Options) float64 {
	base := int32(py*width + px)
	earlyN := n / 5
	earlyThresh := opts.Thresh * (1 - opts.Greedy)

	vecN := n &^ (simd.Width - 1)
	var sum float32

	var dxArr, dyArr, recipArr, contribArr [simd.Width]float32
	earlyChecked := false

	i := 0
	for ; i < vecN; i += simd.Width {
		// Dx/Dy/Mag are gathered per model point (offsets[i+k] is not
		// contiguous), so the gather and the epsilon-vs-reciprocal branch
		// stay scalar; the dot product and the multiply-by-reciprocal
		// that follow are expressed as simd.Load/MulAdd, the same
		// Load/MulAdd-shaped idiom examples/specialize/muladd_base.go
		// uses once its operands are in hand.
		for k := 0; k < simd.Width; k++ {
			idx := base + offsets[i+k]
			m := magImg[idx]
			dxArr[k] = dxImg[idx]
			dyArr[k] = dyImg[idx]
			if m <= magEpsilon {
				recipArr[k] = 0
			} else {
				recipArr[k] = simd.Reciprocal12(m)
			}
		}

		rdxVec := simd.Load(rdx[i : i+simd.Width])
		rdyVec := simd.Load(rdy[i : i+simd.Width])
		dxVec := simd.Load(dxArr[:])
		dyVec := simd.Load(dyArr[:])
		recipVec := simd.Load(recipArr[:])
		zero := simd.Scale(dxVec, 0)

		dot := simd.MulAdd(rdxVec, dxVec, simd.MulAdd(rdyVec, dyVec, zero))
		contribVec := simd.MulAdd(dot, recipVec, zero)

		simd.Store(contribVec, contribArr[:])
		if opts.ContrastInvariant {
			for k := 0; k < simd.Width; k++ {
				if contribArr[k] < 0 {
					contribArr[k] = -contribArr[k]
				}
			}
		}
		sum += simd.ReduceSum(simd.Load(contribArr[:]))

		blockEnd := i + simd.Width
		if !earlyChecked && blockEnd >= earlyN {
			earlyChecked = true
			partial := sum / float32(blockEnd)
			if partial < earlyThresh {
				return 0
			}
		}
	}
	for ; i < n; i++ {
		sum += pointContribution(base, offsets[i], rdx[i], rdy[i], dxImg, dyImg, magImg, opts.ContrastInvariant)
	}

	return float64(sum) / float64(n)
}

func pointContribution(base, offset int32, rdxI, rdyI float32, dxImg, dyImg, magImg []float32, contrastInvariant bool) float32 {
	idx := base + offset
	m := magImg[idx]
	if m <= magEpsilon {
		return 0
	}
	dot := rdxI*dxImg[idx] + rdyI*dyImg[idx]
	val := dot * simd.Reciprocal12(m)
	if contrastInvariant && val < 0 {
		val = -val
	}
	return val
}
