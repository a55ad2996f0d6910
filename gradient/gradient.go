package gradient

import (
	"fmt"
	"math"

	"github.com/j2ase1862/VMS/internal/workerpool"
	"github.com/j2ase1862/VMS/simd"
)

// Options configures Compute.
type Options struct {
	// MaxWorkers caps the number of goroutines used to partition rows.
	// Zero means "use runtime.GOMAXPROCS(0)".
	MaxWorkers int
}

// Compute runs the 3×3 Sobel operator over an 8-bit grayscale raster src
// (width*height logical pixels, stride bytes between rows) and returns the
// horizontal derivative, vertical derivative, and gradient magnitude as
// densely packed (stride == width) float32 rasters of length width*height.
//
// The first/last row and first/last column of every output raster are
// always zero (spec.md §4.A); rows 1..height-2 are partitioned into equal
// contiguous blocks across MaxWorkers goroutines (static scheduling — rows
// are independent, there is no synchronization on the hot path).
func Compute(src []byte, width, height, stride int, opts Options) (dx, dy, mag []float32, err error) {
	if width < 3 || height < 3 {
		return nil, nil, nil, fmt.Errorf("gradient: width and height must be >= 3, got %dx%d", width, height)
	}
	if stride < width {
		return nil, nil, nil, fmt.Errorf("gradient: stride %d must be >= width %d", stride, width)
	}
	if len(src) < (height-1)*stride+width {
		return nil, nil, nil, fmt.Errorf("gradient: src too short for %dx%d stride %d", width, height, stride)
	}

	n := width * height
	dx = make([]float32, n)
	dy = make([]float32, n)
	mag = make([]float32, n)

	// Borders are zero by construction (make zero-fills); only rows
	// 1..height-2 need to be written, and within each of those rows only
	// columns 1..width-2.
	workerpool.StaticRange(height-2, opts.MaxWorkers, func(startBlock, endBlock int) {
		for yb := startBlock; yb < endBlock; yb++ {
			y := yb + 1
			computeRow(src, dx, dy, mag, width, stride, y)
		}
	})

	return dx, dy, mag, nil
}

// computeRow fills dx[y*width+1 .. y*width+width-2] (and dy, mag
// identically) from the three source rows straddling y. Columns 0 and
// width-1 stay zero.
func computeRow(src []byte, dx, dy, mag []float32, width, stride, y int) {
	r0 := src[(y-1)*stride:]
	r1 := src[y*stride:]
	r2 := src[(y+1)*stride:]

	rowOff := y * width

	var r0m1, r0p1, r1m1, r1p1, r2m1, r2p1, r0c, r2c [simd.Width]float32

	x := 1
	for ; x+simd.Width <= width-1; x += simd.Width {
		for k := 0; k < simd.Width; k++ {
			r0m1[k] = float32(r0[x+k-1])
			r0p1[k] = float32(r0[x+k+1])
			r1m1[k] = float32(r1[x+k-1])
			r1p1[k] = float32(r1[x+k+1])
			r2m1[k] = float32(r2[x+k-1])
			r2p1[k] = float32(r2[x+k+1])
			r0c[k] = float32(r0[x+k])
			r2c[k] = float32(r2[x+k])
		}

		gxVec, gyVec := sobelBlock(r0m1[:], r0p1[:], r1m1[:], r1p1[:], r2m1[:], r2p1[:], r0c[:], r2c[:])
		simd.Store(gxVec, dx[rowOff+x:])
		simd.Store(gyVec, dy[rowOff+x:])

		var sumSqArr, magArr [simd.Width]float32
		simd.Store(simd.MulAdd(gxVec, gxVec, simd.MulAdd(gyVec, gyVec, simd.Scale(gxVec, 0))), sumSqArr[:])
		for k := 0; k < simd.Width; k++ {
			magArr[k] = float32(math.Sqrt(float64(sumSqArr[k])))
		}
		copy(mag[rowOff+x:rowOff+x+simd.Width], magArr[:])
	}
	for ; x < width-1; x++ {
		gx, gy, m := sobelPixel(r0, r1, r2, x)
		dx[rowOff+x] = gx
		dy[rowOff+x] = gy
		mag[rowOff+x] = m
	}
}

// sobelBlock computes Gx and Gy for simd.Width adjacent columns at once,
// following examples/specialize/muladd_base.go's Load/MulAdd-shaped lane
// idiom: every term is built from simd.Load/Sub/Scale/Add rather than a
// per-lane scalar loop.
func sobelBlock(r0m1, r0p1, r1m1, r1p1, r2m1, r2p1, r0c, r2c []float32) (gx, gy simd.Vec[float32]) {
	v0m1 := simd.Load(r0m1)
	v0p1 := simd.Load(r0p1)
	v1m1 := simd.Load(r1m1)
	v1p1 := simd.Load(r1p1)
	v2m1 := simd.Load(r2m1)
	v2p1 := simd.Load(r2p1)
	v0c := simd.Load(r0c)
	v2c := simd.Load(r2c)

	gx = simd.Add(simd.Add(simd.Sub(v0p1, v0m1), simd.Scale(simd.Sub(v1p1, v1m1), 2)), simd.Sub(v2p1, v2m1))
	gy = simd.Add(simd.Add(simd.Sub(v2m1, v0m1), simd.Scale(simd.Sub(v2c, v0c), 2)), simd.Sub(v2p1, v0p1))
	return gx, gy
}
