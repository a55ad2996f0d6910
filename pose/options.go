package pose

// Options carries the call-time scoring configuration shared by Evaluate,
// EvaluateBatch, and EvaluateAllPoses (spec.md §6 "Configuration
// options").
type Options struct {
	// Thresh is the absolute score floor used together with Greedy for
	// the early-out in Evaluate.
	Thresh float32

	// Greedy in [0,1] scales the early-out threshold: earlyThresh =
	// Thresh*(1-Greedy). Greedy=0 is the most aggressive setting
	// (earlyThresh=Thresh); Greedy=1 is the least aggressive
	// (earlyThresh=0, so only a negative partial mean, possible when
	// ContrastInvariant is false, trips the early-out). This is the
	// inverse of what "greedy" suggests — see SPEC_FULL.md §7.
	Greedy float32

	// ContrastInvariant selects f(v) = |v| instead of f(v) = v for each
	// point's contribution.
	ContrastInvariant bool
}
