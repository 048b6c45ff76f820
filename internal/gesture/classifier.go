package gesture

import (
	"github.com/ayusman/mudra/internal/detector"
)

// Sub-rule thresholds for shapes that share a base finger pattern.
const (
	// tiltSleepMin is the wrist-to-index-tip displacement past which a
	// flat hand counts as leaning over.
	tiltSleepMin = 0.22
	// spreadWideMin is the index-to-pinky split past which a flat hand
	// counts as splayed.
	spreadWideMin = 0.20
	// pairTouchMax is the index-to-middle split under which two raised
	// fingers count as held together.
	pairTouchMax = 0.04

	// maxHands caps how many detected hands a frame contributes.
	maxHands = 2
)

// rule binds one hand shape to a sign. Rules are evaluated strictly in
// order and the first match wins: several signs share a base finger
// pattern, so the ordering is the tie-break.
type rule struct {
	label Label
	match func(FingerState) bool
}

// handRules is the single-hand cascade. Reordering entries changes which
// sign wins for ambiguous shapes.
var handRules = []rule{
	{LabelFood, func(s FingerState) bool { return s.Pinch }},
	{LabelMedicine, func(s FingerState) bool { return s.Index && !s.Middle && s.Ring && s.Pinky }},
	{LabelDanger, func(s FingerState) bool { return indexOnly(s) && s.Thumb }},
	{LabelBad, func(s FingerState) bool { return !s.Index && !s.Middle && !s.Ring && s.Pinky }},
	{LabelGood, func(s FingerState) bool { return s.Fist() && s.ThumbUpright }},
	{LabelRestRoom, func(s FingerState) bool { return pairUp(s) && s.PairSplit < pairTouchMax }},
	{LabelNo, func(s FingerState) bool { return pairUp(s) && s.Thumb }},
	{LabelWait, pairUp},
	{LabelSleep, func(s FingerState) bool { return s.Flat() && s.Tilt > tiltSleepMin }},
	{LabelPlease, func(s FingerState) bool { return s.Flat() && s.Spread > spreadWideMin }},
	{LabelHello, func(s FingerState) bool { return s.Flat() && s.Thumb }},
	{LabelThankYou, FingerState.Flat},
	{LabelLeft, func(s FingerState) bool { return indexOnly(s) && s.PointingLeft }},
	{LabelRight, func(s FingerState) bool { return indexOnly(s) && s.PointingRight }},
	{LabelGo, indexOnly},
	{LabelYes, func(s FingerState) bool { return s.Fist() && s.Thumb }},
	{LabelSorry, FingerState.Fist},
}

func pairUp(s FingerState) bool { return s.Index && s.Middle && !s.Ring && !s.Pinky }

func indexOnly(s FingerState) bool { return s.Index && !s.Middle && !s.Ring && !s.Pinky }

// Classify maps one frame's detected hands to at most one sign. It is a
// pure function: identical landmarks give identical labels. Hands without
// the full 21 landmarks are skipped rather than indexed out of range, and
// at most the first two usable hands are considered.
func Classify(hands []detector.HandLandmarks) Label {
	states := make([]FingerState, 0, maxHands)
	for i := range hands {
		if len(states) == maxHands {
			break
		}
		if !hands[i].Complete() {
			continue
		}
		states = append(states, readFingers(&hands[i]))
	}
	if len(states) == 0 {
		return LabelNone
	}

	// Two-hand signs outrank anything either hand matches alone.
	if len(states) == 2 {
		a, b := states[0], states[1]
		switch {
		case a.Flat() && b.Fist(), a.Fist() && b.Flat():
			return LabelHelp
		case a.Flat() && b.Flat():
			return LabelStop
		}
	}

	for _, s := range states {
		for _, r := range handRules {
			if r.match(s) {
				return r.label
			}
		}
	}
	return LabelNone
}
