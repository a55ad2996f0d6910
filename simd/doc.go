// Package simd provides a small generic lane abstraction used by the
// gradient and pose packages to express their hot loops as 8-wide blocks
// with a scalar tail, the same shape the teacher's SIMD kernels use, plus
// runtime CPU-feature dispatch info for diagnostics.
//
// Vec[T] is a plain Go slice wrapper, not a hardware vector register: on
// this module's target Go toolchain there is no portable way to reach
// AVX2/NEON intrinsics without cgo or GOEXPERIMENT=simd, so Vec's
// operations are implemented with ordinary scalar Go arithmetic. The
// contract this package exists to serve is spec-shaped, not
// hardware-shaped: callers write their loops in 8-wide blocks so that a
// future build with real vector instructions is a drop-in replacement of
// this package's internals, not a rewrite of gradient/pose.
package simd
