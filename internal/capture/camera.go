// Package capture reads timestamped video frames from a camera device
// using GoCV (OpenCV) and provides coarse motion detection for frame-rate
// gating.
package capture

import (
	"errors"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// Default camera settings. Capture runs at a low base rate; the pipeline
// raises it while something is moving in front of the camera.
const (
	DefaultFPS    = 5
	DefaultWidth  = 640
	DefaultHeight = 480
)

// ErrCameraNotOpen is returned when reading from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Frame is one captured video frame. Timestamp is in milliseconds; it does
// not advance when the source reports the same stream position twice, which
// is how downstream consumers recognize a repeated frame. The caller owns
// the Mat and must Close the frame.
type Frame struct {
	Mat       *gocv.Mat
	Timestamp int64
}

// Close releases the frame's pixel data.
func (f Frame) Close() {
	if f.Mat != nil {
		f.Mat.Close()
	}
}

// Empty reports whether the frame carries no pixel data.
func (f Frame) Empty() bool {
	return f.Mat == nil || f.Mat.Empty()
}

// Camera is a source of timestamped video frames.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (Frame, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// cameraImpl manages video capture from a camera device using GoCV.
type cameraImpl struct {
	deviceID int
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	running  bool
	fps      int
	lastWall int64
}

// NewCamera creates a new Camera for the given device ID. The default FPS
// is low on purpose; SetFPS raises it when the pipeline goes active.
func NewCamera(deviceID int) Camera {
	return &cameraImpl{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// Open opens the camera device. The resolution is pinned to 640x480 to
// keep detection latency predictable.
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
	capture.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = capture
	c.running = true

	return nil
}

// Close closes the camera and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false

	return err
}

// ReadFrame reads a single frame. File-backed sources get their stream
// position as the timestamp, so a paused source hands out repeated stamps;
// live cameras usually report no position and fall back to a strictly
// increasing wall-clock stamp.
func (c *cameraImpl) ReadFrame() (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return Frame{}, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return Frame{}, errors.New("failed to read frame from camera")
	}
	if mat.Empty() {
		mat.Close()
		return Frame{}, errors.New("captured frame is empty")
	}

	stamp := int64(c.capture.Get(gocv.VideoCapturePosMsec))
	if stamp <= 0 {
		stamp = time.Now().UnixMilli()
		if stamp <= c.lastWall {
			stamp = c.lastWall + 1
		}
		c.lastWall = stamp
	}

	return Frame{Mat: &mat, Timestamp: stamp}, nil
}

// SetFPS sets the capture rate. Values <= 0 are ignored.
func (c *cameraImpl) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fps = fps

	if c.capture != nil {
		c.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current capture rate setting.
func (c *cameraImpl) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fps
}

// IsOpen reports whether the camera is open.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}
