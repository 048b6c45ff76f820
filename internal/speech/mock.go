package speech

import "sync"

// MockSpeaker records spoken texts for tests.
type MockSpeaker struct {
	mu     sync.Mutex
	spoken []string
	muted  bool
	closed bool

	// Err, when set, is returned by Speak.
	Err error
}

// NewMockSpeaker creates an empty MockSpeaker.
func NewMockSpeaker() *MockSpeaker {
	return &MockSpeaker{}
}

// Speak records the text unless the speaker is muted.
func (m *MockSpeaker) Speak(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if !m.muted {
		m.spoken = append(m.spoken, text)
	}
	return nil
}

// SetMuted suppresses or resumes recording.
func (m *MockSpeaker) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether recording is suppressed.
func (m *MockSpeaker) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close marks the speaker closed.
func (m *MockSpeaker) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Spoken returns a copy of everything recorded so far.
func (m *MockSpeaker) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.spoken))
	copy(out, m.spoken)
	return out
}
