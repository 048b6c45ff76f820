// Package app wires the Mudra pipeline together: camera capture, hand
// detection, sign recognition, speech announcement and persistence.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while nothing moves in front of the
	// camera.
	IdleFPS = 5
	// ActiveFPS is the frame rate while motion keeps detection busy.
	ActiveFPS = 15
	// IdleTimeoutMs is how long after the last motion the pipeline drops
	// back to the idle rate.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	Speaker      speech.Speaker
	CameraID     int
	MotionThresh float64
}

// App orchestrates the recognition pipeline and owns the tracking session.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	recognizer *gesture.Recognizer
	speaker    speech.Speaker

	mu        sync.RWMutex
	stopCh    chan struct{}
	sessionID string
	frames    int

	// OnEvent receives pipeline events for fan-out to UI clients. Set it
	// before Start.
	OnEvent func(Event)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	speaker := config.Speaker
	if speaker == nil {
		speaker = speech.Discard
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		recognizer: gesture.NewRecognizer(),
		speaker:    speaker,
	}

	a.recognizer.OnRaw = a.handleRaw
	a.recognizer.OnConfirmed = a.handleConfirmed

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	a.restoreSettings()

	return a
}

// restoreSettings applies persisted toggles from the previous run.
func (a *App) restoreSettings() {
	if a.config.Store == nil {
		return
	}
	settings := a.config.Store.Settings()

	if tracking, err := settings.GetBool(store.SettingTrackingEnabled, true); err == nil {
		a.recognizer.SetEnabled(tracking)
	}
	if muted, err := settings.GetBool(store.SettingSpeechMuted, false); err == nil {
		a.speaker.SetMuted(muted)
	}
}

// Start opens the camera, begins a new tracking session and launches the
// detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	a.sessionID = uuid.New().String()
	a.frames = 0
	if a.config.Store != nil {
		session := &store.Session{ID: a.sessionID, StartedAt: time.Now()}
		if err := a.config.Store.Sessions().Create(session); err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Printf("Recognition pipeline started (session %s)", a.sessionID)
	return nil
}

// Stop halts the detection pipeline, closes the session and releases
// resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if a.config.Store != nil && a.sessionID != "" {
		if err := a.config.Store.Sessions().End(a.sessionID, a.frames); err != nil {
			log.Printf("Failed to close session: %v", err)
		}
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// SetTrackingEnabled switches sign recognition on or off. The smoothing
// window is retained, so re-enabling resumes where tracking left off.
func (a *App) SetTrackingEnabled(enabled bool) {
	a.recognizer.SetEnabled(enabled)
	if a.config.Store != nil {
		if err := a.config.Store.Settings().SetBool(store.SettingTrackingEnabled, enabled); err != nil {
			log.Printf("Failed to persist tracking setting: %v", err)
		}
	}
	a.emit(a.StateEvent())
}

// TrackingEnabled reports whether sign recognition is on.
func (a *App) TrackingEnabled() bool {
	return a.recognizer.Enabled()
}

// ClearSign forgets the currently confirmed sign and the smoothing window.
func (a *App) ClearSign() {
	a.recognizer.Clear()
	a.emit(a.StateEvent())
}

// SetMuted suppresses or resumes speech announcements.
func (a *App) SetMuted(muted bool) {
	a.speaker.SetMuted(muted)
	if a.config.Store != nil {
		if err := a.config.Store.Settings().SetBool(store.SettingSpeechMuted, muted); err != nil {
			log.Printf("Failed to persist mute setting: %v", err)
		}
	}
	a.emit(a.StateEvent())
}

// Muted reports whether speech announcements are suppressed.
func (a *App) Muted() bool {
	return a.speaker.Muted()
}

// handleRaw forwards a frame's raw label to listeners.
func (a *App) handleRaw(label gesture.Label) {
	a.emit(Event{
		Type:       EventRaw,
		Label:      label,
		Confirmed:  a.recognizer.Confirmed(),
		BufferFill: a.recognizer.BufferFill(),
		Tracking:   a.TrackingEnabled(),
		Muted:      a.Muted(),
	})
}

// handleConfirmed announces a newly confirmed sign, appends it to the
// session transcript and notifies listeners.
func (a *App) handleConfirmed(label gesture.Label) {
	if err := a.speaker.Speak(string(label)); err != nil {
		log.Printf("Failed to announce %q: %v", label, err)
	}

	a.mu.RLock()
	sessionID := a.sessionID
	a.mu.RUnlock()

	if a.config.Store != nil && sessionID != "" {
		rec := &store.Recognition{SessionID: sessionID, Label: string(label)}
		if err := a.config.Store.Recognitions().Add(rec); err != nil {
			log.Printf("Failed to record %q: %v", label, err)
		}
	}

	log.Printf("Confirmed sign: %s", label)
	a.emit(Event{
		Type:       EventConfirmed,
		Label:      label,
		Confirmed:  label,
		BufferFill: a.recognizer.BufferFill(),
		History:    a.recognizer.History(),
		Tracking:   a.TrackingEnabled(),
		Muted:      a.Muted(),
	})
}

// StateEvent snapshots the session state as an EventState notification.
// New UI clients receive one on connect.
func (a *App) StateEvent() Event {
	return Event{
		Type:       EventState,
		Confirmed:  a.recognizer.Confirmed(),
		BufferFill: a.recognizer.BufferFill(),
		History:    a.recognizer.History(),
		Tracking:   a.TrackingEnabled(),
		Muted:      a.Muted(),
	}
}

// Recognizer returns the recognition session.
func (a *App) Recognizer() *gesture.Recognizer {
	return a.recognizer
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Store returns the backing store, which may be nil.
func (a *App) Store() *store.Store {
	return a.config.Store
}

// SessionID returns the current tracking session's ID, empty before Start.
func (a *App) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionID
}

// Frames reports how many frames the current session has processed.
func (a *App) Frames() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frames
}
