package simd

import "math"

// Reciprocal12 returns an approximate 1/x with roughly the same relative
// error budget (~2^-12, about 12 bits) as the x86 VRCPPS/_mm256_rcp_ps
// instruction the original native scorer used. It is deliberately not
// exact: callers that need bit-exact division should not use it.
//
// The seed is the classic single-precision bit-trick: treat the IEEE-754
// bit pattern of x as an integer, do an integer subtraction from a fixed
// magic constant, and reinterpret the result as a float. That seed alone is
// only good to a few percent relative error, well short of the ~12-bit
// budget it is standing in for, so it gets two Newton-Raphson refinement
// steps (r = r*(2 - x*r)) — each step roughly squares the relative error,
// which is what brings a few-percent seed down into the 2^-12 ballpark.
func Reciprocal12(x float32) float32 {
	if x == 0 {
		return 0
	}
	bits := math.Float32bits(x)
	bits = 0x7EF311C2 - bits
	r := math.Float32frombits(bits)
	r *= 2 - x*r
	r *= 2 - x*r
	return r
}
