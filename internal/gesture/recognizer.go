package gesture

import (
	"sync"

	"github.com/ayusman/mudra/internal/detector"
)

// HistorySize caps the recent-sign transcript kept by a Recognizer.
const HistorySize = 5

// Recognizer is one tracking session: it owns the smoothing state, the
// frame de-duplication marker and the recent-sign history, and drives the
// classifier once per frame. All session state lives here, so several
// sessions can coexist without interfering.
//
// Safe for concurrent use; Process is serialized against the accessors.
type Recognizer struct {
	mu        sync.Mutex
	stab      *Stabilizer
	enabled   bool
	lastStamp int64
	history   []Label

	// OnRaw is called for every processed frame with the frame's raw
	// label, LabelNone included. Useful for stability indicators.
	OnRaw func(Label)
	// OnConfirmed is called when a new sign is confirmed. Speech and
	// display hang off this event. Set both callbacks before the first
	// Process call.
	OnConfirmed func(Label)
}

// NewRecognizer creates an enabled Recognizer with empty state.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		stab:      NewStabilizer(),
		enabled:   true,
		lastStamp: -1,
	}
}

// Process runs one classify-and-stabilize pass over a frame's detected
// hands. stampMs is the frame's timestamp; a frame whose timestamp has not
// advanced past the previously processed one is skipped, so the same frame
// is never counted twice. Disabled sessions skip the pass entirely while
// keeping their window, so tracking resumes where it left off.
//
// A detector failure upstream is represented by calling Process with no
// hands: it counts as a no-detection frame, never as an error.
func (r *Recognizer) Process(hands []detector.HandLandmarks, stampMs int64) {
	r.mu.Lock()
	if !r.enabled || stampMs <= r.lastStamp {
		r.mu.Unlock()
		return
	}
	r.lastStamp = stampMs

	raw := Classify(hands)
	confirmed, ok := r.stab.Update(raw)
	if ok {
		r.history = append(r.history, confirmed)
		if len(r.history) > HistorySize {
			r.history = r.history[len(r.history)-HistorySize:]
		}
	}
	onRaw, onConfirmed := r.OnRaw, r.OnConfirmed
	r.mu.Unlock()

	if onRaw != nil {
		onRaw(raw)
	}
	if ok && onConfirmed != nil {
		onConfirmed(confirmed)
	}
}

// Clear forgets the confirmed sign and empties the smoothing window, so
// the sign just cleared needs a full new majority before it re-confirms.
// The history transcript is kept.
func (r *Recognizer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stab.Reset()
}

// Reset returns the session to its initial state: empty window, no
// confirmed sign, empty history and a rewound frame marker. The enabled
// switch is left as the operator set it.
func (r *Recognizer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stab.Reset()
	r.history = nil
	r.lastStamp = -1
}

// SetEnabled switches frame processing on or off. Disabling does not
// discard the smoothing window.
func (r *Recognizer) SetEnabled(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = on
}

// Enabled reports whether frames are currently processed.
func (r *Recognizer) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Confirmed returns the sign confirmed last, or LabelNone.
func (r *Recognizer) Confirmed() Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stab.Confirmed()
}

// History returns the recent confirmed signs, oldest first, at most
// HistorySize entries.
func (r *Recognizer) History() []Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Label, len(r.history))
	copy(out, r.history)
	return out
}

// BufferFill reports how many smoothing-window slots hold a label.
func (r *Recognizer) BufferFill() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stab.Fill()
}

// Window returns a copy of the smoothing window, oldest first.
func (r *Recognizer) Window() []Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stab.Window()
}
