package speech

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"sync"
	"time"
)

// ErrNoEngine is returned when no known text-to-speech program is
// installed.
var ErrNoEngine = errors.New("no text-to-speech program found")

const (
	// speakTimeout bounds one TTS invocation; a hung engine must not
	// stall the announcement queue forever.
	speakTimeout = 5 * time.Second
	// queueSize bounds pending announcements. Signs confirm slowly, so a
	// small queue is plenty; overflow drops the newest text.
	queueSize = 8
)

// engines lists known TTS programs in preference order. The text to speak
// is appended as the final argument.
var engines = []struct {
	program string
	args    []string
}{
	{"say", nil}, // macOS
	{"espeak-ng", nil},
	{"espeak", nil},
	{"spd-say", []string{"--wait"}}, // speech-dispatcher
}

// CommandSpeaker voices text by running an external TTS program. A single
// worker goroutine drains the queue, so announcements never block the
// recognition loop and never overlap each other.
type CommandSpeaker struct {
	program string
	args    []string
	timeout time.Duration

	mu     sync.Mutex
	muted  bool
	closed bool

	queue chan string
	wg    sync.WaitGroup
}

// NewCommandSpeaker finds an installed TTS program and starts the
// announcement worker. It fails when no known program is on PATH; callers
// typically fall back to Discard and carry on silently.
func NewCommandSpeaker() (*CommandSpeaker, error) {
	for _, e := range engines {
		path, err := exec.LookPath(e.program)
		if err != nil {
			continue
		}
		return newSpeaker(path, e.args, speakTimeout), nil
	}
	return nil, fmt.Errorf("%w (tried say, espeak-ng, espeak, spd-say)", ErrNoEngine)
}

func newSpeaker(program string, args []string, timeout time.Duration) *CommandSpeaker {
	s := &CommandSpeaker{
		program: program,
		args:    args,
		timeout: timeout,
		queue:   make(chan string, queueSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Speak queues text for announcement. Muted speakers and a full queue drop
// the text silently; only a closed speaker returns an error.
func (s *CommandSpeaker) Speak(text string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("speaker is closed")
	}
	if s.muted {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	select {
	case s.queue <- text:
	default:
		log.Printf("speech queue full, dropping %q", text)
	}
	return nil
}

// SetMuted suppresses or resumes announcements. Muting does not flush
// texts already queued.
func (s *CommandSpeaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Muted reports whether announcements are suppressed.
func (s *CommandSpeaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close drains queued announcements and stops the worker. Speak calls
// after Close fail.
func (s *CommandSpeaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.queue)
	s.wg.Wait()
	return nil
}

func (s *CommandSpeaker) run() {
	defer s.wg.Done()
	for text := range s.queue {
		if err := s.speakOnce(text); err != nil {
			log.Printf("speech: %v", err)
		}
	}
}

func (s *CommandSpeaker) speakOnce(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	args := append(append([]string{}, s.args...), text)
	cmd := exec.CommandContext(ctx, s.program, args...)

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("tts timed out after %s saying %q", s.timeout, text)
	}
	if err != nil {
		return fmt.Errorf("tts failed saying %q: %w", text, err)
	}
	return nil
}
