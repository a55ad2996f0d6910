// Package hough implements rotation/translation voting over oriented edge
// sets: a coarse angle sweep locates a handful of promising (angle, centre)
// hypotheses, then a fine sweep refines the best ones (NativeVision.cpp's
// HoughVotingNative).
//
// The model is a set of 2D points pre-sorted into orientation bins via a
// CSR layout (binOffsets/binIndices), mirroring how the source groups model
// edges by gradient direction so a search edge only has to probe a handful
// of nearby bins instead of the whole model.
package hough
