package hough

import (
	"fmt"
	"math"

	"github.com/j2ase1862/VMS/internal/workerpool"
)

// Options configures a single Vote call (NativeVision.cpp's
// HoughVotingNative parameters).
type Options struct {
	// VoteWidth and VoteHeight are the target image dimensions the
	// translation accumulator is sized against.
	VoteWidth, VoteHeight int

	// AngleStart and AngleExtent bound the search window in degrees:
	// [AngleStart, AngleStart+AngleExtent].
	AngleStart, AngleExtent float64

	// CoarseStep and FineStep are the Pass 1 and Pass 2 angle increments,
	// in degrees.
	CoarseStep, FineStep float64

	// TopK is how many coarse candidates survive into Pass 2.
	TopK int

	// InvScale rescales model coordinates before rotation (1/modelScale).
	InvScale float64

	// BinShiftBits is the log2 bucket size of the translation
	// accumulator: a power-of-two downsample of image coordinates.
	BinShiftBits int

	// MaxWorkers caps goroutines used for the angle sweep in both passes.
	// Zero means runtime.GOMAXPROCS(0).
	MaxWorkers int
}

// Result is the best (angle, centre, votes) hypothesis found across both
// passes.
type Result struct {
	BestCx, BestCy, BestAngle float64
	BestVotes                 int
}

const degToRad = math.Pi / 180.0

// Vote runs the coarse angle sweep (Pass 1) followed by fine refinement
// around its surviving candidates (Pass 2), and returns the best hypothesis
// (spec.md §4.C "Hough Voter").
func Vote(model Model, search SearchSet, opts Options) (Result, error) {
	if opts.CoarseStep <= 0 || opts.FineStep <= 0 {
		return Result{}, fmt.Errorf("hough: CoarseStep and FineStep must be positive")
	}
	if opts.TopK < 1 {
		return Result{}, fmt.Errorf("hough: TopK must be >= 1, got %d", opts.TopK)
	}
	if opts.BinShiftBits < 0 {
		return Result{}, fmt.Errorf("hough: BinShiftBits must be >= 0, got %d", opts.BinShiftBits)
	}
	if opts.VoteWidth <= 0 || opts.VoteHeight <= 0 {
		return Result{}, fmt.Errorf("hough: VoteWidth and VoteHeight must be positive")
	}

	binWidthDeg := 360.0 / float64(model.NumGradBins)
	shift := opts.BinShiftBits
	bW := (opts.VoteWidth >> shift) + 1
	bH := (opts.VoteHeight >> shift) + 1

	// Pass 1: coarse sweep. Each angle's peak is computed into its own
	// slot, independent of goroutine scheduling; the subsequent top-K
	// merge walks those slots in ascending angle-index order so the
	// result never depends on how many workers ran the sweep (spec.md §8
	// testable property 6). This plays the same role as the source's
	// thread-local top-K arrays, without needing to know how many
	// threads actually ran.
	numCoarseAngles := int(opts.AngleExtent/opts.CoarseStep) + 1
	if numCoarseAngles < 1 {
		numCoarseAngles = 1
	}
	coarse := make([]Candidate, numCoarseAngles)
	workerpool.DynamicTasks(numCoarseAngles, opts.MaxWorkers, func(ai int) {
		angle := opts.AngleStart + float64(ai)*opts.CoarseStep
		peakCx, peakCy, maxVote := votePeak(model, search, angle, bW, bH, shift, opts.InvScale, binWidthDeg)
		coarse[ai] = Candidate{Angle: angle, Cx: peakCx, Cy: peakCy, Votes: maxVote}
	})

	topK := newTopKList(opts.TopK)
	for _, c := range coarse {
		topK.offer(c)
	}

	validK := 0
	for _, c := range topK.items {
		if c.Votes > 0 {
			validK++
		}
	}
	if validK == 0 {
		validK = 1
	}

	// Pass 2: fine refinement. Every (candidate, fine-offset) pair is an
	// independent angle sample, so the whole pass is one flat dynamic
	// sweep; the final argmax walks the flat array in ascending index,
	// which is (candidate index, fine offset) order.
	numFine := int(2.0*opts.CoarseStep/opts.FineStep) + 1
	if numFine < 1 {
		numFine = 1
	}
	fine := make([]Candidate, validK*numFine)
	workerpool.DynamicTasks(len(fine), opts.MaxWorkers, func(idx int) {
		ci := idx / numFine
		fi := idx % numFine
		centerAngle := topK.items[ci].Angle
		fineStart := centerAngle - opts.CoarseStep
		angle := fineStart + float64(fi)*opts.FineStep
		if angle < opts.AngleStart || angle > opts.AngleStart+opts.AngleExtent {
			return
		}
		peakCx, peakCy, maxVote := votePeak(model, search, angle, bW, bH, shift, opts.InvScale, binWidthDeg)
		fine[idx] = Candidate{Angle: angle, Cx: peakCx, Cy: peakCy, Votes: maxVote}
	})

	bestIdx := 0
	for i := 1; i < len(fine); i++ {
		if fine[i].Votes > fine[bestIdx].Votes {
			bestIdx = i
		}
	}

	best := fine[bestIdx]
	if best.Votes == 0 {
		best = topK.items[0]
	}
	return Result{BestCx: best.Cx, BestCy: best.Cy, BestAngle: best.Angle, BestVotes: best.Votes}, nil
}

// votePeak rotates the model by angle, votes every search edge against its
// ±1-bin neighborhood, and returns the accumulator's peak cell, dequantized
// back to image coordinates.
func votePeak(model Model, search SearchSet, angle float64, bW, bH, shift int, invScale, binWidthDeg float64) (peakCx, peakCy float64, maxVote int) {
	rad := angle * degToRad
	cosA, sinA := math.Cos(rad), math.Sin(rad)

	rotX := make([]int32, len(model.X))
	rotY := make([]int32, len(model.X))
	for i := range model.X {
		mx, my := float64(model.X[i]), float64(model.Y[i])
		rotX[i] = int32((mx*cosA-my*sinA)*invScale + 0.5)
		rotY[i] = int32((mx*sinA+my*cosA)*invScale + 0.5)
	}

	binShift := roundBinShift(angle, binWidthDeg)
	numGradBins := int32(model.NumGradBins)

	acc := make([]int32, bW*bH)
	for si := range search.X {
		ex, ey, sb := search.X[si], search.Y[si], search.Bin[si]
		for db := int32(-1); db <= 1; db++ {
			modelBin := modNonNeg(sb-binShift+db, numGradBins)
			bStart := model.BinOffsets[modelBin]
			bEnd := model.BinOffsets[modelBin+1]
			for bi := bStart; bi < bEnd; bi++ {
				j := model.BinIndices[bi]
				cx := (ex - rotX[j]) >> shift
				cy := (ey - rotY[j]) >> shift
				if cx >= 0 && cx < int32(bW) && cy >= 0 && cy < int32(bH) {
					acc[cy*int32(bW)+cx]++
				}
			}
		}
	}

	maxIdx := 0
	for i, v := range acc {
		if int(v) > maxVote {
			maxVote = int(v)
			maxIdx = i
		}
	}

	half := 1 << shift
	peakCx = float64((maxIdx%bW)*half + half/2)
	peakCy = float64((maxIdx/bW)*half + half/2)
	return peakCx, peakCy, maxVote
}

// roundBinShift rounds angle/binWidthDeg to the nearest integer with a
// sign-aware half-step (round away from zero at exactly .5), matching
// NativeVision.cpp's binShift computation. This intentionally differs from
// the model rotation rounding below, which always rounds toward +0.5
// regardless of sign — the source does the same, and the two are not the
// same formula despite both looking like "round to nearest" (see
// DESIGN.md's Open Question notes).
func roundBinShift(angle, binWidthDeg float64) int32 {
	v := angle / binWidthDeg
	if angle >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}

func modNonNeg(a, m int32) int32 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
