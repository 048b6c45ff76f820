package capture

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing. Frames get
// strictly increasing timestamps unless explicit stamps are set, in which
// case repeated stamps can be replayed to exercise the frame
// de-duplication path downstream.
type MockCamera struct {
	mu      sync.Mutex
	frames  []*gocv.Mat
	stamps  []int64
	index   int
	loop    bool
	running bool
	now     int64
	stepMs  int64
	fps     int
}

func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
		stepMs: 66, // ~15 FPS
		fps:    15,
	}
}

func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	return nil
}

func (c *MockCamera) ReadFrame() (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return Frame{}, ErrCameraNotOpen
	}
	if len(c.frames) == 0 {
		return Frame{}, fmt.Errorf("no frames available")
	}
	if c.index >= len(c.frames) {
		if !c.loop {
			return Frame{}, fmt.Errorf("no more frames")
		}
		c.index = 0
	}

	// Clone so the caller can close the frame without touching the
	// recorded source.
	mat := c.frames[c.index].Clone()

	var stamp int64
	if c.index < len(c.stamps) {
		stamp = c.stamps[c.index]
	} else {
		c.now += c.stepMs
		stamp = c.now
	}
	c.index++

	return Frame{Mat: &mat, Timestamp: stamp}, nil
}

func (c *MockCamera) SetFPS(fps int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fps > 0 {
		c.fps = fps
	}
}

func (c *MockCamera) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SetFrames replaces the frame sequence and restarts playback.
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = frames
	c.index = 0
}

// SetStamps assigns per-frame timestamps, positional with the frame
// sequence. Frames past the end of the stamp list fall back to generated
// timestamps.
func (c *MockCamera) SetStamps(stamps []int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stamps = stamps
}

// Rewind restarts playback from the first frame.
func (c *MockCamera) Rewind() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
}
