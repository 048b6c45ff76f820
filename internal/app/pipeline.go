package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/capture"
)

// pipelineState carries the idle/active mode bookkeeping across ticks.
type pipelineState struct {
	active     bool
	lastMotion time.Time
	interval   time.Duration
}

// runPipeline is the frame loop. It reads frames at a motion-gated rate,
// runs hand detection while the scene is active and feeds every processed
// frame through the recognition session.
//
// Mode handling:
//  1. Start at the idle rate (IdleFPS).
//  2. On motion, switch to the active rate (ActiveFPS) and start
//     detecting hands.
//  3. After IdleTimeoutMs without motion, drop back to idle. The
//     smoothing window keeps its evidence across the gap.
func (a *App) runPipeline(stop <-chan struct{}) {
	st := &pipelineState{
		lastMotion: time.Now(),
		interval:   time.Second / time.Duration(IdleFPS),
	}

	ticker := time.NewTicker(st.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			before := st.interval
			a.step(st)
			if st.interval != before {
				ticker.Reset(st.interval)
			}
		}
	}
}

// step processes one pipeline tick. Split out from runPipeline so tests
// can drive the pipeline without timers.
func (a *App) step(st *pipelineState) {
	// When tracking is off the per-frame pass is not run at all; the
	// camera stays open for the video stream.
	if !a.TrackingEnabled() {
		return
	}

	frame, err := a.camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		return
	}

	motion, _ := a.motion.Detect(frame)
	if motion {
		st.lastMotion = time.Now()
		if !st.active {
			st.active = true
			a.camera.SetFPS(ActiveFPS)
			st.interval = time.Second / time.Duration(ActiveFPS)
			log.Println("Switched to active mode")
		}
	} else if st.active && time.Since(st.lastMotion) > time.Duration(IdleTimeoutMs)*time.Millisecond {
		st.active = false
		a.camera.SetFPS(IdleFPS)
		st.interval = time.Second / time.Duration(IdleFPS)
		log.Println("Switched to idle mode")
	}

	if !st.active {
		frame.Close()
		return
	}

	a.detectAndRecognize(frame)
}

// detectAndRecognize runs hand detection on one frame and feeds the result
// to the recognition session. Detection failures count as "no hands this
// frame"; they must never take the pipeline down.
func (a *App) detectAndRecognize(frame capture.Frame) {
	det := a.Detector()
	if det == nil {
		frame.Close()
		return
	}

	hands, err := det.Detect(frame.Mat)
	stamp := frame.Timestamp
	frame.Close()

	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		hands = nil
	}

	a.recognizer.Process(hands, stamp)

	a.mu.Lock()
	a.frames++
	a.mu.Unlock()
}
