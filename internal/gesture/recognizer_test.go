package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// eventLog records every callback a Recognizer fires.
type eventLog struct {
	raw       []Label
	confirmed []Label
}

func attach(r *Recognizer) *eventLog {
	ev := &eventLog{}
	r.OnRaw = func(l Label) { ev.raw = append(ev.raw, l) }
	r.OnConfirmed = func(l Label) { ev.confirmed = append(ev.confirmed, l) }
	return ev
}

// feed runs n frames of the given hands through the session, advancing the
// frame timestamp each time.
func feed(r *Recognizer, hands []detector.HandLandmarks, n int, stamp *int64) {
	for i := 0; i < n; i++ {
		*stamp++
		r.Process(hands, *stamp)
	}
}

func oneHand(h detector.HandLandmarks) []detector.HandLandmarks {
	return []detector.HandLandmarks{h}
}

func TestRecognizer_ConfirmsSustainedSign(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	var stamp int64

	feed(r, oneHand(detector.OpenPalmLandmarks()), WindowSize, &stamp)

	if len(ev.raw) != WindowSize {
		t.Fatalf("OnRaw fired %d times, want %d", len(ev.raw), WindowSize)
	}
	for i, l := range ev.raw {
		if l != LabelHello {
			t.Fatalf("raw[%d] = %q, want %q", i, l, LabelHello)
		}
	}
	if len(ev.confirmed) != 1 || ev.confirmed[0] != LabelHello {
		t.Fatalf("confirmed %v, want exactly one %q", ev.confirmed, LabelHello)
	}
	if got := r.Confirmed(); got != LabelHello {
		t.Errorf("Confirmed = %q, want %q", got, LabelHello)
	}
	if got := r.History(); len(got) != 1 || got[0] != LabelHello {
		t.Errorf("History = %v, want [%q]", got, LabelHello)
	}
}

func TestRecognizer_StaleTimestampSkipped(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	hands := oneHand(detector.ThumbsUpLandmarks())

	r.Process(hands, 100)
	r.Process(hands, 100) // same frame delivered twice
	r.Process(hands, 90)  // out-of-order frame

	if len(ev.raw) != 1 {
		t.Errorf("OnRaw fired %d times, want 1: repeated frames must not be processed", len(ev.raw))
	}
	if r.BufferFill() != 1 {
		t.Errorf("BufferFill = %d, want 1", r.BufferFill())
	}
}

func TestRecognizer_DisabledKeepsWindow(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	hands := oneHand(detector.ThumbOutFistLandmarks())
	var stamp int64

	feed(r, hands, 5, &stamp)
	if r.BufferFill() != 5 {
		t.Fatalf("BufferFill = %d, want 5", r.BufferFill())
	}

	r.SetEnabled(false)
	feed(r, hands, 5, &stamp)
	if len(ev.raw) != 5 {
		t.Errorf("OnRaw fired %d times, want 5: disabled sessions fire no events", len(ev.raw))
	}
	if r.BufferFill() != 5 {
		t.Errorf("BufferFill = %d while disabled, want 5: the window must be retained", r.BufferFill())
	}

	// Resuming continues from the retained evidence: two more frames
	// complete the majority.
	r.SetEnabled(true)
	feed(r, hands, 2, &stamp)
	if len(ev.confirmed) != 1 || ev.confirmed[0] != LabelYes {
		t.Fatalf("confirmed %v after resume, want exactly one %q", ev.confirmed, LabelYes)
	}
}

func TestRecognizer_ClearDemandsFreshEvidence(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	hands := oneHand(detector.OpenPalmLandmarks())
	var stamp int64

	feed(r, hands, WindowSize, &stamp)
	if len(ev.confirmed) != 1 {
		t.Fatalf("confirmed %v, want one entry before clear", ev.confirmed)
	}

	r.Clear()
	if r.Confirmed() != LabelNone {
		t.Fatalf("Confirmed = %q after clear, want none", r.Confirmed())
	}
	if r.BufferFill() != 0 {
		t.Fatalf("BufferFill = %d after clear, want 0", r.BufferFill())
	}

	// The same sustained sign must take a full threshold of new frames.
	feed(r, hands, ConfirmCount-1, &stamp)
	if len(ev.confirmed) != 1 {
		t.Fatalf("confirmed %v before fresh evidence reached the threshold", ev.confirmed)
	}
	feed(r, hands, 1, &stamp)
	if len(ev.confirmed) != 2 || ev.confirmed[1] != LabelHello {
		t.Fatalf("confirmed %v, want a second %q exactly at the threshold", ev.confirmed, LabelHello)
	}

	// History survives a clear: it is a transcript, not current state.
	if got := r.History(); len(got) != 2 {
		t.Errorf("History = %v, want both confirmations", got)
	}
}

func TestRecognizer_EmptyFramesDelayNotDilute(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	hands := oneHand(detector.CrossedFingersLandmarks())
	var stamp int64

	feed(r, hands, 4, &stamp)
	feed(r, nil, 3, &stamp) // detector saw nothing, or failed
	if r.BufferFill() != 4 {
		t.Fatalf("BufferFill = %d after empty frames, want 4", r.BufferFill())
	}
	for _, l := range ev.raw[4:] {
		if l != LabelNone {
			t.Fatalf("empty frame produced raw label %q", l)
		}
	}

	feed(r, hands, 3, &stamp)
	if len(ev.confirmed) != 1 || ev.confirmed[0] != LabelRestRoom {
		t.Fatalf("confirmed %v, want exactly one %q", ev.confirmed, LabelRestRoom)
	}
}

func TestRecognizer_TwoHandSign(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	hands := []detector.HandLandmarks{
		detector.FistLandmarks(),
		detector.OpenPalmLandmarks(),
	}
	var stamp int64

	feed(r, hands, ConfirmCount, &stamp)
	if len(ev.confirmed) != 1 || ev.confirmed[0] != LabelHelp {
		t.Fatalf("confirmed %v, want exactly one %q", ev.confirmed, LabelHelp)
	}
}

func TestRecognizer_MinoritySignNeverConfirms(t *testing.T) {
	r := NewRecognizer()
	ev := attach(r)
	var stamp int64

	// Seven fist-with-thumb frames, then three thumbs-up frames: the
	// first sign confirms at the seventh frame and the trailing minority
	// must not displace it.
	feed(r, oneHand(detector.ThumbOutFistLandmarks()), ConfirmCount, &stamp)
	feed(r, oneHand(detector.ThumbsUpLandmarks()), 3, &stamp)

	if len(ev.confirmed) != 1 || ev.confirmed[0] != LabelYes {
		t.Fatalf("confirmed %v, want exactly one %q", ev.confirmed, LabelYes)
	}
	if got := r.Confirmed(); got != LabelYes {
		t.Errorf("Confirmed = %q, want %q", got, LabelYes)
	}
}

func TestRecognizer_HistoryCap(t *testing.T) {
	r := NewRecognizer()
	var stamp int64

	// Confirm six different signs in sequence. Evictions only ever remove
	// older labels, so each new sign reaches the threshold after exactly
	// ConfirmCount frames.
	sequence := []struct {
		hand detector.HandLandmarks
		want Label
	}{
		{detector.OpenPalmLandmarks(), LabelHello},
		{detector.ThumbOutFistLandmarks(), LabelYes},
		{detector.ThumbsUpLandmarks(), LabelGood},
		{detector.PinkyUpLandmarks(), LabelBad},
		{detector.PinchLandmarks(), LabelFood},
		{detector.PointingUpLandmarks(), LabelGo},
	}
	for _, step := range sequence {
		feed(r, oneHand(step.hand), ConfirmCount, &stamp)
		if got := r.Confirmed(); got != step.want {
			t.Fatalf("Confirmed = %q, want %q", got, step.want)
		}
	}

	got := r.History()
	if len(got) != HistorySize {
		t.Fatalf("History holds %d entries, want %d", len(got), HistorySize)
	}
	want := []Label{LabelYes, LabelGood, LabelBad, LabelFood, LabelGo}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("History = %v, want %v", got, want)
		}
	}
}

func TestRecognizer_Reset(t *testing.T) {
	r := NewRecognizer()
	var stamp int64
	feed(r, oneHand(detector.OpenPalmLandmarks()), WindowSize, &stamp)

	r.Reset()
	if r.Confirmed() != LabelNone || r.BufferFill() != 0 || len(r.History()) != 0 {
		t.Fatal("Reset must empty the confirmed sign, the window and the history")
	}

	// The frame marker rewinds too, so a fresh session can reuse small
	// timestamps.
	r.Process(oneHand(detector.OpenPalmLandmarks()), 1)
	if r.BufferFill() != 1 {
		t.Errorf("BufferFill = %d after reset and one frame, want 1", r.BufferFill())
	}
}
