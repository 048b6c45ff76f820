package gesture

// Smoothing window parameters. A sign must dominate the recent window
// before it is announced.
const (
	// WindowSize is how many recent raw labels the smoothing window holds.
	WindowSize = 10
	// ConfirmCount is how many window slots a label must occupy to be
	// confirmed.
	ConfirmCount = 7
)

// Stabilizer debounces a stream of raw per-frame labels into confirmed
// signs. It keeps a bounded FIFO of recent raw labels and emits a sign only
// when it dominates the window and differs from the sign confirmed last.
// Not safe for concurrent use; callers serialize frames.
type Stabilizer struct {
	window    []Label
	confirmed Label
}

// NewStabilizer creates an empty Stabilizer with no confirmed sign.
func NewStabilizer() *Stabilizer {
	return &Stabilizer{
		window: make([]Label, 0, WindowSize),
	}
}

// Update feeds one raw label into the window and reports whether a new sign
// was confirmed by it. A LabelNone frame leaves the window untouched: an
// empty detection carries no evidence either way, so it must not evict the
// evidence already gathered.
func (s *Stabilizer) Update(raw Label) (Label, bool) {
	if raw == LabelNone {
		return LabelNone, false
	}

	if len(s.window) == WindowSize {
		copy(s.window, s.window[1:])
		s.window[WindowSize-1] = raw
	} else {
		s.window = append(s.window, raw)
	}

	mode, count := s.mode()
	if count >= ConfirmCount && mode != s.confirmed {
		s.confirmed = mode
		return mode, true
	}
	return LabelNone, false
}

// mode returns the most frequent label in the window and its count. Ties
// resolve to whichever label reached the winning count first, scanning
// oldest to newest, so the result is deterministic.
func (s *Stabilizer) mode() (Label, int) {
	counts := make(map[Label]int, len(s.window))
	var best Label
	bestCount := 0
	for _, l := range s.window {
		counts[l]++
		if counts[l] > bestCount {
			best, bestCount = l, counts[l]
		}
	}
	return best, bestCount
}

// Confirmed returns the sign confirmed last, or LabelNone.
func (s *Stabilizer) Confirmed() Label {
	return s.confirmed
}

// Fill reports how many slots of the window hold a label.
func (s *Stabilizer) Fill() int {
	return len(s.window)
}

// Window returns a copy of the window contents, oldest first.
func (s *Stabilizer) Window() []Label {
	out := make([]Label, len(s.window))
	copy(out, s.window)
	return out
}

// Reset empties the window and forgets the confirmed sign. After a reset
// the same sign needs a full new majority before it confirms again.
func (s *Stabilizer) Reset() {
	s.window = s.window[:0]
	s.confirmed = LabelNone
}
