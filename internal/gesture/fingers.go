package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Geometric thresholds for finger-state derivation. Coordinates are
// normalized to the frame, so all distances here are fractions of frame
// size. Tuned against live MediaPipe output.
const (
	// fingerUpPIPGap is the minimum vertical gap between a fingertip and
	// its PIP joint for the finger to count as raised. Rejects slightly
	// bent fingers that tracking noise would otherwise flip frame to frame.
	fingerUpPIPGap = 0.04
	// fingerUpMCPGap is the minimum vertical gap between a fingertip and
	// its knuckle for the finger to count as raised.
	fingerUpMCPGap = 0.06
	// thumbExtendedMin is the minimum distance between the thumb tip and
	// the index knuckle for the thumb to count as extended. The thumb bends
	// sideways, so vertical gaps do not work for it.
	thumbExtendedMin = 0.12
	// thumbUprightGap is how far above the index knuckle the thumb tip
	// must sit for an extended thumb to count as pointing up.
	thumbUprightGap = 0.04
	// pinchRadius is the maximum distance from the thumb tip to the index
	// and middle tips for the hand to count as pinched.
	pinchRadius = 0.05
	// pointingOffset is the minimum horizontal lean of the index tip from
	// its knuckle to count as pointing left or right.
	pointingOffset = 0.12
)

// FingerState is the per-hand shape summary the classification rules
// discriminate on. Derived fresh for every frame, never stored.
type FingerState struct {
	Index  bool // index finger raised
	Middle bool // middle finger raised
	Ring   bool // ring finger raised
	Pinky  bool // pinky raised

	Thumb        bool // thumb extended away from the palm
	ThumbUpright bool // extended thumb pointing above the knuckle line

	Pinch         bool // thumb tip touching both index and middle tips
	PointingLeft  bool // index tip leaning well left of its knuckle
	PointingRight bool // index tip leaning well right of its knuckle

	// Scalar measurements for the flat-hand and two-finger sub-rules.
	Tilt      float64 // horizontal wrist-to-index-tip displacement
	Spread    float64 // horizontal index-to-pinky tip distance
	PairSplit float64 // horizontal index-to-middle tip distance
}

// UpCount reports how many non-thumb fingers are raised.
func (s FingerState) UpCount() int {
	n := 0
	for _, up := range []bool{s.Index, s.Middle, s.Ring, s.Pinky} {
		if up {
			n++
		}
	}
	return n
}

// Fist reports whether no non-thumb finger is raised.
func (s FingerState) Fist() bool { return s.UpCount() == 0 }

// Flat reports whether all four non-thumb fingers are raised.
func (s FingerState) Flat() bool { return s.UpCount() == 4 }

// readFingers derives the FingerState for a complete hand. The caller must
// have checked Complete first; readFingers indexes all 21 points.
func readFingers(hand *detector.HandLandmarks) FingerState {
	p := hand.Points

	var s FingerState
	s.Index = fingerRaised(p, detector.IndexMCP)
	s.Middle = fingerRaised(p, detector.MiddleMCP)
	s.Ring = fingerRaised(p, detector.RingMCP)
	s.Pinky = fingerRaised(p, detector.PinkyMCP)

	thumbTip := p[detector.ThumbTip]
	indexMCP := p[detector.IndexMCP]
	s.Thumb = planeDist(thumbTip, indexMCP) > thumbExtendedMin
	s.ThumbUpright = s.Thumb && thumbTip.Y < indexMCP.Y-thumbUprightGap

	s.Pinch = planeDist(thumbTip, p[detector.IndexTip]) < pinchRadius &&
		planeDist(thumbTip, p[detector.MiddleTip]) < pinchRadius

	indexTip := p[detector.IndexTip]
	s.PointingLeft = indexTip.X < indexMCP.X-pointingOffset
	s.PointingRight = indexTip.X > indexMCP.X+pointingOffset

	s.Tilt = math.Abs(p[detector.Wrist].X - indexTip.X)
	s.Spread = math.Abs(indexTip.X - p[detector.PinkyTip].X)
	s.PairSplit = math.Abs(indexTip.X - p[detector.MiddleTip].X)

	return s
}

// fingerRaised reports whether the finger rooted at the given knuckle index
// is held up: its tip must clear both the PIP joint and the knuckle by the
// configured margins. Frame coordinates grow downward, so smaller y is
// higher.
func fingerRaised(p []detector.Point3D, mcp int) bool {
	tip, pip, base := p[mcp+3], p[mcp+1], p[mcp]
	return pip.Y-tip.Y > fingerUpPIPGap && base.Y-tip.Y > fingerUpMCPGap
}

// planeDist is the Euclidean distance between two landmarks in the frame
// plane. Depth is ignored; it is too noisy to gate gestures on.
func planeDist(a, b detector.Point3D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
