// Command shapematch-demo wires the gradient, hough, and pose packages
// together end to end: it draws a synthetic square, computes its
// gradients, votes for the square's location with a coarse-to-fine Hough
// search, and refines that estimate with a local pose search.
package main

import (
	"fmt"
	"math"

	"github.com/j2ase1862/VMS/gradient"
	"github.com/j2ase1862/VMS/hough"
	"github.com/j2ase1862/VMS/pose"
)

const (
	width, height = 80, 80
	squareHalf    = 10
	squareCx      = 42
	squareCy      = 38
	numGradBins   = 8
)

func main() {
	img := drawSquare(width, height, squareCx, squareCy, squareHalf)

	dx, dy, mag, err := gradient.Compute(img, width, height, width, gradient.Options{})
	if err != nil {
		fmt.Println("gradient.Compute:", err)
		return
	}

	rx, ry, rdx, rdy, bins := cardinalModel()
	model, err := buildModelCSR(rx, ry, bins, numGradBins)
	if err != nil {
		fmt.Println("buildModelCSR:", err)
		return
	}
	search := deriveSearchEdges(dx, dy, mag, width, height, 50)

	houghOpts := hough.Options{
		VoteWidth: width, VoteHeight: height,
		AngleStart: -10, AngleExtent: 20,
		CoarseStep: 5, FineStep: 1,
		TopK:         3,
		InvScale:     1,
		BinShiftBits: 3,
	}
	vote, err := hough.Vote(model, search, houghOpts)
	if err != nil {
		fmt.Println("hough.Vote:", err)
		return
	}
	fmt.Printf("hough: angle=%.1f votes=%d centre=(%.1f,%.1f)\n", vote.BestAngle, vote.BestVotes, vote.BestCx, vote.BestCy)

	baseCx, baseCy := int(math.Round(vote.BestCx)), int(math.Round(vote.BestCy))
	score, refineDx, refineDy, err := pose.EvaluateBatch(
		baseCx, baseCy, 4,
		rx, ry, rdx, rdy,
		dx, dy, mag, width, height, squareHalf+4,
		pose.Options{},
	)
	if err != nil {
		fmt.Println("pose.EvaluateBatch:", err)
		return
	}
	fmt.Printf("pose: best score=%.4f at (%d,%d)\n", score, baseCx+refineDx, baseCy+refineDy)
}

// drawSquare renders a filled bright square on a dark background.
func drawSquare(w, h, cx, cy, half int) []byte {
	img := make([]byte, w*h)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			v := byte(20)
			if px >= cx-half && px <= cx+half && py >= cy-half && py <= cy+half {
				v = 220
			}
			img[py*w+px] = v
		}
	}
	return img
}

// cardinalModel returns a four-point N/E/S/W model with the same layout as
// the pose package's test fixture, scaled from unit offsets to squareHalf,
// plus each point's orientation bin.
func cardinalModel() (rx, ry []int32, rdx, rdy []float32, bins []int32) {
	rx = []int32{int32(squareHalf), -int32(squareHalf), 0, 0}
	ry = []int32{0, 0, int32(squareHalf), -int32(squareHalf)}
	rdx = []float32{1, -1, 0, 0}
	rdy = []float32{0, 0, 1, -1}
	bins = make([]int32, 4)
	for i := range rdx {
		bins[i] = quantizeBin(math.Atan2(float64(rdy[i]), float64(rdx[i]))*180/math.Pi, numGradBins)
	}
	return rx, ry, rdx, rdy, bins
}

// buildModelCSR sorts model points into orientation bins and returns the
// resulting CSR-backed hough.Model.
func buildModelCSR(rx, ry, bins []int32, numBins int) (hough.Model, error) {
	n := len(rx)
	x := make([]float32, n)
	y := make([]float32, n)
	for i := 0; i < n; i++ {
		x[i] = float32(rx[i])
		y[i] = float32(ry[i])
	}

	counts := make([]int32, numBins)
	for _, b := range bins {
		counts[b]++
	}
	offsets := make([]int32, numBins+1)
	for b := 0; b < numBins; b++ {
		offsets[b+1] = offsets[b] + counts[b]
	}
	cursor := append([]int32(nil), offsets[:numBins]...)
	indices := make([]int32, n)
	for i, b := range bins {
		indices[cursor[b]] = int32(i)
		cursor[b]++
	}
	return hough.NewModel(x, y, offsets, indices, numBins)
}

// deriveSearchEdges collects every pixel whose gradient magnitude exceeds
// thresh into a hough.SearchSet, binning its orientation the same way the
// model's points were binned.
func deriveSearchEdges(dx, dy, mag []float32, w, h int, thresh float32) hough.SearchSet {
	var sx, sy, sb []int32
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			idx := py*w + px
			if mag[idx] <= thresh {
				continue
			}
			angle := math.Atan2(float64(dy[idx]), float64(dx[idx])) * 180 / math.Pi
			sx = append(sx, int32(px))
			sy = append(sy, int32(py))
			sb = append(sb, quantizeBin(angle, numGradBins))
		}
	}
	set, _ := hough.NewSearchSet(sx, sy, sb)
	return set
}

func quantizeBin(angleDeg float64, numBins int) int32 {
	binWidth := 360.0 / float64(numBins)
	if angleDeg < 0 {
		angleDeg += 360
	}
	v := int32(angleDeg/binWidth + 0.5)
	if v >= int32(numBins) {
		v = 0
	}
	return v
}
