package hough

import "fmt"

// Model is a set of edge points binned by gradient orientation into
// numGradBins buckets using a CSR layout: BinIndices[BinOffsets[b]:BinOffsets[b+1]]
// lists the indices (into X/Y) of every point whose orientation falls in
// bin b.
type Model struct {
	X, Y        []float32
	BinOffsets  []int32
	BinIndices  []int32
	NumGradBins int
}

// NewModel validates the CSR layout and returns a Model. It checks that
// BinOffsets is non-decreasing, starts at 0 and ends at len(BinIndices),
// and that every BinIndices entry is a valid point index. It does not check
// that each model point appears in exactly one bin's run.
func NewModel(x, y []float32, binOffsets, binIndices []int32, numGradBins int) (Model, error) {
	if len(x) != len(y) {
		return Model{}, fmt.Errorf("hough: X and Y must have equal length, got %d and %d", len(x), len(y))
	}
	if numGradBins < 1 {
		return Model{}, fmt.Errorf("hough: numGradBins must be >= 1, got %d", numGradBins)
	}
	if len(binOffsets) != numGradBins+1 {
		return Model{}, fmt.Errorf("hough: binOffsets length must be numGradBins+1=%d, got %d", numGradBins+1, len(binOffsets))
	}
	if len(binIndices) != len(x) {
		return Model{}, fmt.Errorf("hough: binIndices length must equal model point count %d, got %d", len(x), len(binIndices))
	}
	if binOffsets[0] != 0 || int(binOffsets[numGradBins]) != len(binIndices) {
		return Model{}, fmt.Errorf("hough: binOffsets must start at 0 and end at len(binIndices)=%d", len(binIndices))
	}
	for b := 0; b < numGradBins; b++ {
		if binOffsets[b+1] < binOffsets[b] {
			return Model{}, fmt.Errorf("hough: binOffsets must be non-decreasing, bin %d has %d > %d", b, binOffsets[b], binOffsets[b+1])
		}
	}
	for _, j := range binIndices {
		if j < 0 || int(j) >= len(x) {
			return Model{}, fmt.Errorf("hough: binIndices entry %d out of range for %d model points", j, len(x))
		}
	}
	return Model{X: x, Y: y, BinOffsets: binOffsets, BinIndices: binIndices, NumGradBins: numGradBins}, nil
}

// SearchSet is the set of oriented edges detected in the target image that
// the model is voted against. Bin holds each edge's gradient orientation
// bin, quantized the same way the model's bins were built.
type SearchSet struct {
	X, Y []int32
	Bin  []int32
}

// NewSearchSet validates and constructs a SearchSet.
func NewSearchSet(x, y, bin []int32) (SearchSet, error) {
	if len(x) != len(y) || len(x) != len(bin) {
		return SearchSet{}, fmt.Errorf("hough: searchX/searchY/searchBin must have equal length, got %d/%d/%d", len(x), len(y), len(bin))
	}
	return SearchSet{X: x, Y: y, Bin: bin}, nil
}
