package detector

// Preset hand poses used by tests, demos and the mock detection path. Each
// builder returns a well-formed right hand in normalized frame coordinates
// (y grows downward), shaped so the geometric margins are unambiguous:
// extended fingertips clear their PIP/MCP joints by a wide gap, curled
// fingertips fold back below the knuckle line.

// Resting knuckle line for the four non-thumb fingers.
var fingerBases = map[int]Point3D{
	IndexMCP:  {X: 0.56, Y: 0.64},
	MiddleMCP: {X: 0.51, Y: 0.63},
	RingMCP:   {X: 0.46, Y: 0.64},
	PinkyMCP:  {X: 0.41, Y: 0.66},
}

// newHand returns a fist-shaped base pose: wrist and knuckles placed, all
// four fingers curled, thumb tucked across the palm.
func newHand() HandLandmarks {
	h := HandLandmarks{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.82}

	for mcp, base := range fingerBases {
		h.Points[mcp] = base
		curlFinger(&h, mcp)
	}

	tuckThumb(&h)
	return h
}

// curlFinger folds a finger so its tip sits below the PIP joint.
func curlFinger(h *HandLandmarks, mcp int) {
	base := h.Points[mcp]
	h.Points[mcp+1] = Point3D{X: base.X, Y: base.Y - 0.04}        // PIP
	h.Points[mcp+2] = Point3D{X: base.X - 0.02, Y: base.Y + 0.01} // DIP
	h.Points[mcp+3] = Point3D{X: base.X - 0.03, Y: base.Y + 0.04} // tip
}

// aimFinger extends a finger toward the given tip position, interpolating
// the PIP and DIP joints along the way.
func aimFinger(h *HandLandmarks, mcp int, tipX, tipY float64) {
	base := h.Points[mcp]
	dx, dy := tipX-base.X, tipY-base.Y
	h.Points[mcp+1] = Point3D{X: base.X + 0.40*dx, Y: base.Y + 0.40*dy}
	h.Points[mcp+2] = Point3D{X: base.X + 0.72*dx, Y: base.Y + 0.72*dy}
	h.Points[mcp+3] = Point3D{X: tipX, Y: tipY}
}

// straightenFinger extends a finger straight up from its knuckle.
func straightenFinger(h *HandLandmarks, mcp int) {
	aimFinger(h, mcp, h.Points[mcp].X, 0.34)
}

// tuckThumb folds the thumb across the palm, close to the index knuckle.
func tuckThumb(h *HandLandmarks) {
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.78}
	h.Points[ThumbMCP] = Point3D{X: 0.575, Y: 0.735}
	h.Points[ThumbIP] = Point3D{X: 0.565, Y: 0.715}
	h.Points[ThumbTip] = Point3D{X: 0.545, Y: 0.695}
}

// sideThumb extends the thumb sideways, away from the palm.
func sideThumb(h *HandLandmarks) {
	h.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.78}
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.72}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.66}
	h.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.61}
}

// raiseThumb extends the thumb straight up, above the knuckle line.
func raiseThumb(h *HandLandmarks) {
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.76}
	h.Points[ThumbMCP] = Point3D{X: 0.57, Y: 0.66}
	h.Points[ThumbIP] = Point3D{X: 0.575, Y: 0.55}
	h.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.44}
}

// OpenPalmLandmarks returns a flat hand with all four fingers extended
// upward and the thumb extended to the side.
func OpenPalmLandmarks() HandLandmarks {
	h := newHand()
	for mcp := range fingerBases {
		straightenFinger(&h, mcp)
	}
	sideThumb(&h)
	return h
}

// FlatHandLandmarks returns a flat hand with all four fingers extended and
// the thumb tucked across the palm.
func FlatHandLandmarks() HandLandmarks {
	h := newHand()
	for mcp := range fingerBases {
		straightenFinger(&h, mcp)
	}
	return h
}

// SpreadFingersLandmarks returns a flat hand with the fingers splayed wide
// apart.
func SpreadFingersLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.66, 0.35)
	aimFinger(&h, MiddleMCP, 0.54, 0.33)
	aimFinger(&h, RingMCP, 0.43, 0.35)
	aimFinger(&h, PinkyMCP, 0.32, 0.38)
	return h
}

// TiltedPalmLandmarks returns a flat hand leaning sideways, fingertips
// displaced well past the wrist column.
func TiltedPalmLandmarks() HandLandmarks {
	h := newHand()
	for mcp, base := range fingerBases {
		aimFinger(&h, mcp, base.X+0.18, 0.34)
	}
	sideThumb(&h)
	return h
}

// FistLandmarks returns a closed fist with the thumb tucked.
func FistLandmarks() HandLandmarks {
	return newHand()
}

// ThumbsUpLandmarks returns a fist with the thumb extended straight up.
func ThumbsUpLandmarks() HandLandmarks {
	h := newHand()
	raiseThumb(&h)
	return h
}

// ThumbOutFistLandmarks returns a fist with the thumb extended sideways.
func ThumbOutFistLandmarks() HandLandmarks {
	h := newHand()
	sideThumb(&h)
	return h
}

// PointingUpLandmarks returns a hand with only the index finger extended,
// pointing straight up.
func PointingUpLandmarks() HandLandmarks {
	h := newHand()
	straightenFinger(&h, IndexMCP)
	return h
}

// PointingLeftLandmarks returns a hand with the index finger extended up and
// leaning left of its knuckle.
func PointingLeftLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.40, 0.42)
	return h
}

// PointingRightLandmarks returns a hand with the index finger extended up and
// leaning right of its knuckle.
func PointingRightLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.72, 0.42)
	return h
}

// VictoryLandmarks returns a hand with index and middle fingers extended and
// clearly separated.
func VictoryLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.58, 0.36)
	aimFinger(&h, MiddleMCP, 0.49, 0.36)
	return h
}

// VictoryThumbOutLandmarks returns the victory pose with the thumb extended.
func VictoryThumbOutLandmarks() HandLandmarks {
	h := VictoryLandmarks()
	sideThumb(&h)
	return h
}

// CrossedFingersLandmarks returns a hand with index and middle fingers
// extended and nearly touching.
func CrossedFingersLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.545, 0.36)
	aimFinger(&h, MiddleMCP, 0.515, 0.36)
	return h
}

// PinchLandmarks returns a hand with the thumb tip touching the index and
// middle fingertips.
func PinchLandmarks() HandLandmarks {
	h := newHand()
	aimFinger(&h, IndexMCP, 0.55, 0.38)
	aimFinger(&h, MiddleMCP, 0.50, 0.38)
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.72}
	h.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.60}
	h.Points[ThumbIP] = Point3D{X: 0.54, Y: 0.49}
	h.Points[ThumbTip] = Point3D{X: 0.53, Y: 0.40}
	return h
}

// MiddleFoldedLandmarks returns a hand with index, ring and pinky extended
// and the middle finger folded down.
func MiddleFoldedLandmarks() HandLandmarks {
	h := newHand()
	straightenFinger(&h, IndexMCP)
	straightenFinger(&h, RingMCP)
	straightenFinger(&h, PinkyMCP)
	return h
}

// LShapeLandmarks returns a hand with the index finger extended up and the
// thumb extended sideways.
func LShapeLandmarks() HandLandmarks {
	h := newHand()
	straightenFinger(&h, IndexMCP)
	sideThumb(&h)
	return h
}

// PinkyUpLandmarks returns a hand with only the pinky extended.
func PinkyUpLandmarks() HandLandmarks {
	h := newHand()
	straightenFinger(&h, PinkyMCP)
	return h
}
