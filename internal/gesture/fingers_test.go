package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func stateOf(t *testing.T, hand detector.HandLandmarks) FingerState {
	t.Helper()
	if !hand.Complete() {
		t.Fatal("preset hand is incomplete")
	}
	return readFingers(&hand)
}

func TestReadFingers_OpenPalm(t *testing.T) {
	s := stateOf(t, detector.OpenPalmLandmarks())

	if !s.Flat() {
		t.Errorf("open palm should have all four fingers up, got %d", s.UpCount())
	}
	if !s.Thumb {
		t.Error("open palm should have the thumb extended")
	}
	if s.Pinch {
		t.Error("open palm should not read as a pinch")
	}
	if s.PointingLeft || s.PointingRight {
		t.Error("open palm should not read as pointing")
	}
}

func TestReadFingers_Fist(t *testing.T) {
	s := stateOf(t, detector.FistLandmarks())

	if !s.Fist() {
		t.Errorf("fist should have no fingers up, got %d", s.UpCount())
	}
	if s.Thumb {
		t.Error("tucked thumb should not read as extended")
	}
	if s.Pinch {
		t.Error("fist should not read as a pinch")
	}
}

func TestReadFingers_ThumbDirection(t *testing.T) {
	up := stateOf(t, detector.ThumbsUpLandmarks())
	if !up.Thumb {
		t.Error("raised thumb should read as extended")
	}
	if !up.ThumbUpright {
		t.Error("raised thumb should read as upright")
	}

	side := stateOf(t, detector.ThumbOutFistLandmarks())
	if !side.Thumb {
		t.Error("sideways thumb should read as extended")
	}
	if side.ThumbUpright {
		t.Error("sideways thumb should not read as upright")
	}
}

func TestReadFingers_Pointing(t *testing.T) {
	left := stateOf(t, detector.PointingLeftLandmarks())
	if !left.Index || left.UpCount() != 1 {
		t.Error("pointing pose should raise only the index finger")
	}
	if !left.PointingLeft || left.PointingRight {
		t.Error("left-leaning index should read as pointing left only")
	}

	right := stateOf(t, detector.PointingRightLandmarks())
	if !right.PointingRight || right.PointingLeft {
		t.Error("right-leaning index should read as pointing right only")
	}

	straight := stateOf(t, detector.PointingUpLandmarks())
	if straight.PointingLeft || straight.PointingRight {
		t.Error("vertical index should not read as pointing sideways")
	}
}

func TestReadFingers_Pinch(t *testing.T) {
	s := stateOf(t, detector.PinchLandmarks())
	if !s.Pinch {
		t.Error("pinched fingertips should read as a pinch")
	}
}

func TestReadFingers_Measurements(t *testing.T) {
	tilted := stateOf(t, detector.TiltedPalmLandmarks())
	if tilted.Tilt <= tiltSleepMin {
		t.Errorf("tilted palm displacement %f, want > %f", tilted.Tilt, tiltSleepMin)
	}

	spread := stateOf(t, detector.SpreadFingersLandmarks())
	if spread.Spread <= spreadWideMin {
		t.Errorf("spread fingers split %f, want > %f", spread.Spread, spreadWideMin)
	}

	crossed := stateOf(t, detector.CrossedFingersLandmarks())
	if crossed.PairSplit >= pairTouchMax {
		t.Errorf("crossed fingertips split %f, want < %f", crossed.PairSplit, pairTouchMax)
	}

	apart := stateOf(t, detector.VictoryLandmarks())
	if apart.PairSplit < pairTouchMax {
		t.Errorf("separated fingertips split %f, want >= %f", apart.PairSplit, pairTouchMax)
	}
}
