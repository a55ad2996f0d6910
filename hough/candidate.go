package hough

// Candidate is a single vote-accumulator peak: the angle that produced it
// and the peak's dequantized image-space centre.
type Candidate struct {
	Angle  float64
	Cx, Cy float64
	Votes  int
}

// topKList is a fixed-capacity list sorted by Votes descending. offer
// inserts c only if it beats the current last place, then bubbles it up
// past any strictly-worse neighbors. Ties never displace an
// earlier-inserted candidate, which is what gives the merge its
// earliest-found tie-break.
type topKList struct {
	items []Candidate
}

func newTopKList(k int) *topKList {
	if k < 1 {
		k = 1
	}
	return &topKList{items: make([]Candidate, k)}
}

func (t *topKList) offer(c Candidate) {
	last := len(t.items) - 1
	if c.Votes <= t.items[last].Votes {
		return
	}
	t.items[last] = c
	for k := last; k > 0 && t.items[k].Votes > t.items[k-1].Votes; k-- {
		t.items[k], t.items[k-1] = t.items[k-1], t.items[k]
	}
}
