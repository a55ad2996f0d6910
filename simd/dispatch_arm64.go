//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = LevelSVE
	case cpu.ARM64.HasASIMD:
		currentLevel = LevelNEON
	default:
		currentLevel = LevelScalar
	}
}
