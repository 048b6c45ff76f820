package detector

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxHands != 2 {
		t.Errorf("MaxHands = %d, want 2", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.5 {
		t.Errorf("MinConfidence = %f, want 0.5", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.5 {
		t.Errorf("MinTrackingConf = %f, want 0.5", cfg.MinTrackingConf)
	}
}

func TestHandLandmarksComplete(t *testing.T) {
	t.Run("full hand", func(t *testing.T) {
		h := OpenPalmLandmarks()
		if !h.Complete() {
			t.Error("preset hand should be complete")
		}
	})

	t.Run("short hand", func(t *testing.T) {
		h := HandLandmarks{Points: make([]Point3D, 5)}
		if h.Complete() {
			t.Error("5-point hand should not be complete")
		}
	})

	t.Run("empty hand", func(t *testing.T) {
		var h HandLandmarks
		if h.Complete() {
			t.Error("empty hand should not be complete")
		}
	})

	t.Run("nil receiver", func(t *testing.T) {
		var h *HandLandmarks
		if h.Complete() {
			t.Error("nil hand should not be complete")
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetHands([]HandLandmarks{ThumbsUpLandmarks()})

		hands, err := mock.Detect(nil)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if len(hands) != 1 {
			t.Fatalf("got %d hands, want 1", len(hands))
		}
		if !hands[0].Complete() {
			t.Error("detected hand should be complete")
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()
		wantErr := errors.New("detector unavailable")
		mock.SetError(wantErr)

		if _, err := mock.Detect(nil); !errors.Is(err, wantErr) {
			t.Errorf("Detect error = %v, want %v", err, wantErr)
		}
	})

	t.Run("no hands by default", func(t *testing.T) {
		mock := NewMockDetector()
		hands, err := mock.Detect(nil)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if len(hands) != 0 {
			t.Errorf("got %d hands, want 0", len(hands))
		}
	})

	t.Run("detect after close fails", func(t *testing.T) {
		mock := NewMockDetector()
		if err := mock.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if _, err := mock.Detect(nil); err == nil {
			t.Error("Detect after Close should fail")
		}
	})
}

func dist(a, b Point3D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestPresetGeometry(t *testing.T) {
	t.Run("all presets are complete", func(t *testing.T) {
		presets := map[string]HandLandmarks{
			"open palm":       OpenPalmLandmarks(),
			"flat hand":       FlatHandLandmarks(),
			"spread fingers":  SpreadFingersLandmarks(),
			"tilted palm":     TiltedPalmLandmarks(),
			"fist":            FistLandmarks(),
			"thumbs up":       ThumbsUpLandmarks(),
			"thumb-out fist":  ThumbOutFistLandmarks(),
			"pointing up":     PointingUpLandmarks(),
			"pointing left":   PointingLeftLandmarks(),
			"pointing right":  PointingRightLandmarks(),
			"victory":         VictoryLandmarks(),
			"victory + thumb": VictoryThumbOutLandmarks(),
			"crossed fingers": CrossedFingersLandmarks(),
			"pinch":           PinchLandmarks(),
			"middle folded":   MiddleFoldedLandmarks(),
			"L shape":         LShapeLandmarks(),
			"pinky up":        PinkyUpLandmarks(),
		}
		for name, h := range presets {
			if !h.Complete() {
				t.Errorf("%s: preset incomplete, %d points", name, len(h.Points))
			}
			for i, p := range h.Points {
				if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
					t.Errorf("%s: point %d out of frame: (%f, %f)", name, i, p.X, p.Y)
				}
			}
		}
	})

	t.Run("thumbs up raises thumb above knuckles", func(t *testing.T) {
		h := ThumbsUpLandmarks()
		if h.Points[ThumbTip].Y >= h.Points[IndexMCP].Y {
			t.Error("thumb tip should sit above the index knuckle")
		}
		if dist(h.Points[ThumbTip], h.Points[IndexMCP]) <= 0.12 {
			t.Error("thumb should be extended well away from the index knuckle")
		}
	})

	t.Run("fist keeps thumb near palm", func(t *testing.T) {
		h := FistLandmarks()
		if d := dist(h.Points[ThumbTip], h.Points[IndexMCP]); d > 0.12 {
			t.Errorf("tucked thumb %f from index knuckle, want <= 0.12", d)
		}
	})

	t.Run("open palm extends fingertips above joints", func(t *testing.T) {
		h := OpenPalmLandmarks()
		fingers := map[string]int{
			"index": IndexMCP, "middle": MiddleMCP, "ring": RingMCP, "pinky": PinkyMCP,
		}
		for name, mcp := range fingers {
			tip, pip := h.Points[mcp+3], h.Points[mcp+1]
			if tip.Y >= pip.Y {
				t.Errorf("%s tip should be above its PIP joint", name)
			}
			if tip.Y >= h.Points[mcp].Y {
				t.Errorf("%s tip should be above its knuckle", name)
			}
		}
	})

	t.Run("pointing left leans the index tip left", func(t *testing.T) {
		h := PointingLeftLandmarks()
		if h.Points[IndexTip].X >= h.Points[IndexMCP].X-0.12 {
			t.Error("index tip should lean well left of its knuckle")
		}
	})

	t.Run("pointing right leans the index tip right", func(t *testing.T) {
		h := PointingRightLandmarks()
		if h.Points[IndexTip].X <= h.Points[IndexMCP].X+0.12 {
			t.Error("index tip should lean well right of its knuckle")
		}
	})

	t.Run("pinch brings thumb to both fingertips", func(t *testing.T) {
		h := PinchLandmarks()
		if d := dist(h.Points[ThumbTip], h.Points[IndexTip]); d >= 0.05 {
			t.Errorf("thumb to index tip %f, want < 0.05", d)
		}
		if d := dist(h.Points[ThumbTip], h.Points[MiddleTip]); d >= 0.05 {
			t.Errorf("thumb to middle tip %f, want < 0.05", d)
		}
	})
}
