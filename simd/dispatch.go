package simd

// Level identifies the widest instruction set this process was able to
// detect at startup. It is informational only — every Vec operation in
// this package runs the same scalar Go code regardless of Level; nothing
// in gradient, pose, or hough branches on it. It exists so that
// internal/cpuinfo and callers who care can report what hardware a given
// run is on.
type Level int

const (
	LevelScalar Level = iota
	LevelSSE2
	LevelAVX2
	LevelAVX512
	LevelNEON
	LevelSVE
)

func (l Level) String() string {
	switch l {
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "scalar"
	}
}

var currentLevel = LevelScalar

// CurrentLevel returns the instruction set detected for this process.
func CurrentLevel() Level { return currentLevel }
