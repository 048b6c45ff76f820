// Package speech announces confirmed signs out loud through an external
// text-to-speech program. Announcements are best-effort: a missing or
// failing TTS program never disrupts recognition.
package speech

// Speaker voices short pieces of text.
type Speaker interface {
	// Speak queues text for announcement. It never blocks; when the
	// queue is full the text is dropped.
	Speak(text string) error

	// SetMuted suppresses announcements without tearing the speaker
	// down.
	SetMuted(muted bool)

	// Muted reports whether announcements are suppressed.
	Muted() bool

	// Close stops the speaker after draining queued announcements.
	Close() error
}

// Discard is a Speaker that swallows everything. It stands in when no
// text-to-speech program is installed.
var Discard Speaker = discard{}

type discard struct{}

func (discard) Speak(string) error { return nil }
func (discard) SetMuted(bool)      {}
func (discard) Muted() bool        { return true }
func (discard) Close() error       { return nil }
