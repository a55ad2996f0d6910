// Package pose implements the Pose Scorer: normalized oriented-gradient
// correlation between a rotated model's edge points and a target
// gradient image, at a single translation (Evaluate), over a small
// lattice of translations (EvaluateBatch), and over many pre-rotated
// model variants at once (EvaluateAllPoses).
//
// This is spec.md §4.B, grounded on NativeVision.cpp's
// EvaluateNativeInternal/EvaluateBatchNative/EvaluateAllPosesNative: the
// same early-out, the same ~12-bit reciprocal approximation budget
// (simd.Reciprocal12), and the same margin-gated lattice search, reshaped
// into Go slices and a deterministic workerpool reduction in place of the
// original's OpenMP critical section.
package pose
