package store

import (
	"errors"
	"testing"
)

func TestSettingsRepository_SetAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if err := repo.Set("language", "en"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := repo.Get("language")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "en" {
		t.Errorf("Get = %q, want %q", got, "en")
	}

	// Setting again replaces the value.
	if err := repo.Set("language", "de"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = repo.Get("language")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "de" {
		t.Errorf("Get = %q after update, want %q", got, "de")
	}
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("no-such-key")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestSettingsRepository_Bool(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	got, err := repo.GetBool(SettingTrackingEnabled, true)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !got {
		t.Error("missing key should return the fallback")
	}

	if err := repo.SetBool(SettingTrackingEnabled, false); err != nil {
		t.Fatalf("SetBool failed: %v", err)
	}
	got, err = repo.GetBool(SettingTrackingEnabled, true)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if got {
		t.Error("GetBool should return the stored false")
	}

	// Junk values fall back rather than failing.
	if err := repo.Set(SettingSpeechMuted, "not-a-bool"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err = repo.GetBool(SettingSpeechMuted, true)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !got {
		t.Error("unparseable value should return the fallback")
	}
}
