package speech

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestMockSpeaker(t *testing.T) {
	t.Run("records spoken text", func(t *testing.T) {
		m := NewMockSpeaker()
		m.Speak("HELLO")
		m.Speak("THANK YOU")

		got := m.Spoken()
		if len(got) != 2 || got[0] != "HELLO" || got[1] != "THANK YOU" {
			t.Errorf("Spoken = %v, want [HELLO, THANK YOU]", got)
		}
	})

	t.Run("muted drops text", func(t *testing.T) {
		m := NewMockSpeaker()
		m.SetMuted(true)
		m.Speak("HELLO")
		if got := m.Spoken(); len(got) != 0 {
			t.Errorf("Spoken = %v while muted, want none", got)
		}

		m.SetMuted(false)
		m.Speak("YES")
		if got := m.Spoken(); len(got) != 1 || got[0] != "YES" {
			t.Errorf("Spoken = %v after unmute, want [YES]", got)
		}
	})

	t.Run("injected error", func(t *testing.T) {
		m := NewMockSpeaker()
		wantErr := errors.New("audio device gone")
		m.Err = wantErr
		if err := m.Speak("HELLO"); !errors.Is(err, wantErr) {
			t.Errorf("Speak error = %v, want %v", err, wantErr)
		}
	})
}

func TestNewCommandSpeaker_NoEngine(t *testing.T) {
	t.Setenv("PATH", "")
	s, err := NewCommandSpeaker()
	if !errors.Is(err, ErrNoEngine) {
		t.Errorf("error = %v, want ErrNoEngine", err)
	}
	if s != nil {
		t.Error("no speaker should be returned without an engine")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Speak("anything"); err != nil {
		t.Errorf("Discard.Speak failed: %v", err)
	}
	if !Discard.Muted() {
		t.Error("Discard should report muted")
	}
	if err := Discard.Close(); err != nil {
		t.Errorf("Discard.Close failed: %v", err)
	}
}

// shellSpeaker builds a CommandSpeaker whose "TTS program" appends each
// text to a file, so tests can observe what was voiced and in what order.
func shellSpeaker(t *testing.T, out string) *CommandSpeaker {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses /bin/sh")
	}
	script := `printf '%s\n' "$0" >> ` + out
	return newSpeaker("/bin/sh", []string{"-c", script}, 5*time.Second)
}

func TestCommandSpeaker_SpeaksInOrder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spoken.txt")
	s := shellSpeaker(t, out)

	for _, text := range []string{"HELLO", "FOOD", "THANK YOU"} {
		if err := s.Speak(text); err != nil {
			t.Fatalf("Speak(%q) failed: %v", text, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{"HELLO", "FOOD", "THANK YOU"}
	if len(got) != len(want) {
		t.Fatalf("spoke %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spoke %v, want %v", got, want)
		}
	}
}

func TestCommandSpeaker_Muted(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spoken.txt")
	s := shellSpeaker(t, out)

	s.SetMuted(true)
	if !s.Muted() {
		t.Fatal("Muted() should report true")
	}
	if err := s.Speak("HELLO"); err != nil {
		t.Fatalf("muted Speak failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("muted speaker must not invoke the TTS program")
	}
}

func TestCommandSpeaker_SpeakAfterClose(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spoken.txt")
	s := shellSpeaker(t, out)

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Speak("HELLO"); err == nil {
		t.Error("Speak after Close should fail")
	}
	// Closing twice is harmless.
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
