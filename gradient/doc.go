// Package gradient computes per-pixel Sobel derivatives and gradient
// magnitude from an 8-bit grayscale raster.
//
// This is the Gradient Engine of the shape-match compute kernel
// (spec.md §4.A): a single full-precision 3×3 convolution pass that
// produces Dx, Dy, and Mag rasters with zero-valued borders, grounded on
// NativeVision.cpp's ComputeGradientNative and reshaped into Go's static
// row-partition idiom the way the teacher's ParallelMatMul partitions
// row strips across goroutines.
package gradient
