package pose

import (
	"math"
	"testing"
)

// radialSquare returns a 4-point model: unit offsets N/E/S/W of the
// origin with outward-pointing unit gradient directions, and a target
// raster of size (w,h) where that same square, translated to (px,py), is
// the only non-zero gradient content (spec.md scenario E1).
func radialSquare(w, h, px, py int, mag float32) (rx, ry []int32, rdx, rdy, dxImg, dyImg, magImg []float32) {
	rxI := []int32{1, -1, 0, 0}
	ryI := []int32{0, 0, 1, -1}
	dirx := []float32{1, -1, 0, 0}
	diry := []float32{0, 0, 1, -1}

	dxImg = make([]float32, w*h)
	dyImg = make([]float32, w*h)
	magImg = make([]float32, w*h)

	for i := range rxI {
		idx := (py+int(ryI[i]))*w + (px + int(rxI[i]))
		dxImg[idx] = dirx[i] * mag
		dyImg[idx] = diry[i] * mag
		magImg[idx] = mag
	}

	rx = make([]int32, len(rxI))
	copy(rx, rxI)
	ry = make([]int32, len(ryI))
	copy(ry, ryI)
	return rx, ry, dirx, diry, dxImg, dyImg, magImg
}

func TestScenarioE1(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 10, 10, 100)

	opts := Options{Thresh: 0, Greedy: 0, ContrastInvariant: false}

	score, err := Evaluate(10, 10, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, opts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(score-1.0) > 1.0/256 {
		t.Errorf("Evaluate(10,10) = %v, want ~1.0", score)
	}

	offScore, err := Evaluate(11, 10, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, opts)
	if err != nil {
		t.Fatal(err)
	}
	if offScore >= score {
		t.Errorf("Evaluate(11,10) = %v, want < %v", offScore, score)
	}
}

func TestEvaluateRangeSigned(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 10, 10, 100)
	opts := Options{ContrastInvariant: false}

	for py := 5; py < 15; py++ {
		for px := 5; px < 15; px++ {
			score, err := Evaluate(px, py, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, opts)
			if err != nil {
				t.Fatal(err)
			}
			if score < -1.0-1.0/256 || score > 1.0+1.0/256 {
				t.Errorf("Evaluate(%d,%d) = %v, out of [-1,1]", px, py, score)
			}
		}
	}
}

func TestEvaluateRangeContrastInvariant(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 10, 10, 100)
	opts := Options{ContrastInvariant: true}

	for py := 5; py < 15; py++ {
		for px := 5; px < 15; px++ {
			score, err := Evaluate(px, py, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, opts)
			if err != nil {
				t.Fatal(err)
			}
			if score < 0 || score > 1.0+1.0/256 {
				t.Errorf("Evaluate(%d,%d) = %v, out of [0,1]", px, py, score)
			}
		}
	}
}

// TestEarlyOutFiresAtExpectedBlock demonstrates spec.md's early-out: with
// greedy=0 the early-out threshold collapses to the absolute thresh
// (earlyThresh = thresh*(1-greedy) = thresh), so on a target with zero
// gradient magnitude everywhere (partial mean stays 0) the evaluator must
// bail out the first time it crosses floor(N/5) points. Points beyond
// that block reference out-of-range offsets; if the implementation kept
// going past the early-out it would index out of bounds and panic.
func TestEarlyOutFiresAtExpectedBlock(t *testing.T) {
	const n = 40 // earlyN = n/5 = 8, a block boundary
	const w = 64
	rx := make([]int32, n)
	ry := make([]int32, n)
	rdx := make([]float32, n)
	rdy := make([]float32, n)

	// Only the first 8 points have in-bounds offsets; the image is large
	// enough to cover base+offset for those. Points 8..39 point far out
	// of bounds so that touching them panics.
	small := make([]float32, w*w)
	for i := 0; i < n; i++ {
		if i < 8 {
			ry[i], rx[i] = 0, 0
		} else {
			rx[i], ry[i] = int32(w * w * 10), 0 // guaranteed out of range
		}
		rdx[i], rdy[i] = 1, 0
	}

	opts := Options{Thresh: 0.5, Greedy: 0, ContrastInvariant: false}
	score, err := Evaluate(w/2, w/2, rx, ry, rdx, rdy, small, small, small, w, opts)
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

// TestNoEarlyOutAtMaxGreedy demonstrates the literal formula's other edge:
// greedy=1 drives earlyThresh to 0, so a non-negative partial mean never
// trips the early-out and every point is processed (spec.md §9 Open
// Questions: preserve the exact formula, including this counterintuitive
// corner, rather than the prose summary's "1 = most aggressive").
func TestNoEarlyOutAtMaxGreedy(t *testing.T) {
	const n = 40
	const w = 8
	rx := make([]int32, n)
	ry := make([]int32, n)
	rdx := make([]float32, n)
	rdy := make([]float32, n)
	for i := range rx {
		rdx[i], rdy[i] = 1, 0
		if i >= 8 {
			rx[i] = 1 // past the first block: a pixel with a unit +x gradient
		}
	}
	zero := make([]float32, w*w)
	dxImg := make([]float32, w*w)
	magImg := make([]float32, w*w)
	dxImg[(w/2)*w+w/2+1] = 1
	magImg[(w/2)*w+w/2+1] = 1

	// The first block reads a zero-magnitude pixel, so its partial mean is
	// 0, which is not below earlyThresh=0; the other 32 points then each
	// contribute ~1, giving 32/40 = 0.8. An early-out would have returned 0.
	opts := Options{Thresh: 0.5, Greedy: 1, ContrastInvariant: false}
	score, err := Evaluate(w/2, w/2, rx, ry, rdx, rdy, dxImg, zero, magImg, w, opts)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(score-0.8) > 1.0/256 {
		t.Errorf("score = %v, want ~0.8 (no early-out after the zero-magnitude first block)", score)
	}
}

func TestEvaluateEmptyModel(t *testing.T) {
	score, err := Evaluate(0, 0, nil, nil, nil, nil, nil, nil, nil, 1, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate(0, 0, []int32{1}, []int32{1, 2}, []float32{1}, []float32{1}, nil, nil, nil, 1, Options{})
	if err == nil {
		t.Error("want error for mismatched lengths")
	}
}
