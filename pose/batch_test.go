package pose

import (
	"math"
	"testing"
)

func TestScenarioB1(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 10, 10, 100)

	score, dx, dy, err := EvaluateBatch(10, 10, 2, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, h, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if dx != 0 || dy != 0 {
		t.Errorf("EvaluateBatch best offset = (%d,%d), want (0,0)", dx, dy)
	}
	if math.Abs(score-1.0) > 1.0/256 {
		t.Errorf("EvaluateBatch best score = %v, want ~1.0", score)
	}
}

// TestEvaluateBatchMatchesSerialGrid covers invariant 4: the result must
// equal the max over the serial grid enumeration, tie-broken by the
// smallest (dy,dx) pair.
func TestEvaluateBatchMatchesSerialGrid(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 12, 9, 100)

	baseCx, baseCy, refRadius, margin := 10, 10, 3, 3
	got, gotDx, gotDy, err := EvaluateBatch(baseCx, baseCy, refRadius, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, h, margin, Options{})
	if err != nil {
		t.Fatal(err)
	}

	offsets := buildOffsets(rx, ry, w)
	n := len(rx)
	var want float64
	var wantDx, wantDy int
	for dy := -refRadius; dy <= refRadius; dy++ {
		py := baseCy + dy
		if py < margin || py >= h-margin {
			continue
		}
		for dx := -refRadius; dx <= refRadius; dx++ {
			px := baseCx + dx
			if px < margin || px >= w-margin {
				continue
			}
			s := scoreAt(px, py, offsets, rdx, rdy, dxImg, dyImg, magImg, w, n, Options{})
			if s > want {
				want = s
				wantDx, wantDy = dx, dy
			}
		}
	}

	if got != want || gotDx != wantDx || gotDy != wantDy {
		t.Errorf("EvaluateBatch = (%v,%d,%d), want (%v,%d,%d)", got, gotDx, gotDy, want, wantDx, wantDy)
	}
}

func TestEvaluateBatchRefRadiusZero(t *testing.T) {
	const w, h = 21, 21
	rx, ry, rdx, rdy, dxImg, dyImg, magImg := radialSquare(w, h, 10, 10, 100)

	score, dx, dy, err := EvaluateBatch(10, 10, 0, rx, ry, rdx, rdy, dxImg, dyImg, magImg, w, h, 3, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if dx != 0 || dy != 0 {
		t.Errorf("refRadius=0 offset = (%d,%d), want (0,0)", dx, dy)
	}
	if math.Abs(score-1.0) > 1.0/256 {
		t.Errorf("refRadius=0 score = %v, want ~1.0", score)
	}
}

func TestEvaluateBatchNoCandidateInBounds(t *testing.T) {
	const w, h = 10, 10
	rx := []int32{0}
	ry := []int32{0}
	rdx := []float32{1}
	rdy := []float32{0}
	zero := make([]float32, w*h)

	score, dx, dy, err := EvaluateBatch(5, 5, 1, rx, ry, rdx, rdy, zero, zero, zero, w, h, 100, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 || dx != 0 || dy != 0 {
		t.Errorf("got (%v,%d,%d), want (0,0,0)", score, dx, dy)
	}
}
