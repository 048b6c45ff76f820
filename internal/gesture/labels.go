// Package gesture turns per-frame hand landmarks into stable sign labels.
//
// Two stages run once per captured frame: a Classifier maps the frame's
// detected hands to at most one raw label using geometric rules over the
// landmark skeleton, and a Stabilizer debounces the raw stream with a
// sliding majority-vote window so a single misread frame cannot flip the
// announced sign. A Recognizer ties both together as one tracking session.
package gesture

// Label identifies one sign from the fixed vocabulary. The value is the
// display text that is shown and spoken when the sign is confirmed.
type Label string

const (
	// LabelNone means no sign was recognized for a frame.
	LabelNone Label = ""

	LabelHello    Label = "HELLO"
	LabelYes      Label = "YES"
	LabelGood     Label = "GOOD"
	LabelBad      Label = "BAD"
	LabelFood     Label = "FOOD"
	LabelHelp     Label = "HELP"
	LabelStop     Label = "STOP"
	LabelGo       Label = "GO"
	LabelLeft     Label = "LEFT"
	LabelRight    Label = "RIGHT"
	LabelWait     Label = "WAIT"
	LabelNo       Label = "NO"
	LabelRestRoom Label = "REST ROOM"
	LabelDanger   Label = "DANGER"
	LabelMedicine Label = "MEDICINE"
	LabelSleep    Label = "SLEEP"
	LabelPlease   Label = "PLEASE"
	LabelThankYou Label = "THANK YOU"
	LabelSorry    Label = "SORRY"
)

// Vocabulary returns every recognizable sign, in a fixed order.
func Vocabulary() []Label {
	return []Label{
		LabelHello, LabelYes, LabelGood, LabelBad, LabelFood,
		LabelHelp, LabelStop, LabelGo, LabelLeft, LabelRight,
		LabelWait, LabelNo, LabelRestRoom, LabelDanger, LabelMedicine,
		LabelSleep, LabelPlease, LabelThankYou, LabelSorry,
	}
}
