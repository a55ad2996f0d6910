package gradient

import "math"

// sobelPixel computes the Sobel Gx, Gy, and magnitude at column x of the
// row triple (r0 above, r1 at, r2 below), lifting 8-bit samples to float32
// before convolving so there is no integer saturation (spec.md §4.A).
//
//	Gx = [-1 0 1; -2 0 2; -1 0 1]
//	Gy = [-1 -2 -1; 0 0 0; 1 2 1]
func sobelPixel(r0, r1, r2 []byte, x int) (gx, gy, mag float32) {
	r0m1, r0p1 := float32(r0[x-1]), float32(r0[x+1])
	r1m1, r1p1 := float32(r1[x-1]), float32(r1[x+1])
	r2m1, r2p1 := float32(r2[x-1]), float32(r2[x+1])
	r0c, r2c := float32(r0[x]), float32(r2[x])

	gx = (r0p1 - r0m1) + 2*(r1p1-r1m1) + (r2p1 - r2m1)
	gy = (r2m1 - r0m1) + 2*(r2c-r0c) + (r2p1 - r0p1)
	mag = float32(math.Sqrt(float64(gx*gx + gy*gy)))
	return gx, gy, mag
}
