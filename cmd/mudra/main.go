package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

var (
	listen   = flag.String("listen", ":8080", "Listen address")
	cameraID = flag.Int("camera", 0, "Camera device ID")
	dataDir  = flag.String("data", "", "Data directory (default ~/.mudra)")
	webDir   = flag.String("web", "", "Dashboard directory (default: autodetect)")
	useTray  = flag.Bool("tray", false, "Show the system tray menu")
	mute     = flag.Bool("mute", false, "Start with speech muted")
	motion   = flag.Float64("motion", 1.0, "Motion threshold, percent of changed pixels")
)

func main() {
	flag.Parse()

	fmt.Println("Mudra - Sign Language Recognition")

	// Initialize the store
	dir := *dataDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dir = filepath.Join(homeDir, ".mudra")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Spoken announcements are best effort; without a TTS program the
	// recognizer still runs.
	var speaker speech.Speaker
	if cs, err := speech.NewCommandSpeaker(); err != nil {
		log.Printf("Speech disabled: %v", err)
		speaker = speech.Discard
	} else {
		speaker = cs
	}
	defer speaker.Close()

	application := app.New(app.Config{
		Store:        st,
		Speaker:      speaker,
		CameraID:     *cameraID,
		MotionThresh: *motion,
	})
	if *mute {
		application.SetMuted(true)
	}

	// Find web directory
	staticDir := *webDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving dashboard from: %s\n", staticDir)
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		App:       application,
	})

	// OnEvent must be wired before Start; the pipeline reads it.
	var t *tray.Tray
	if *useTray {
		t = tray.New(application.TrackingEnabled(), application.Muted())
		hub := srv.Events()
		application.OnEvent = func(e app.Event) {
			hub.Publish(e)
			// Keep the menu in sync with state changes made through
			// the API.
			switch e.Type {
			case app.EventConfirmed:
				t.SetLastSign(string(e.Label))
			case app.EventState:
				t.SetTracking(e.Tracking)
				t.SetMuted(e.Muted)
			}
		}
	} else {
		application.OnEvent = srv.Events().Publish
	}

	if err := application.Start(); err != nil {
		// Keep serving transcripts and the API even without a camera.
		log.Printf("Recognition pipeline not started: %v", err)
	}

	go func() {
		log.Printf("Starting server on %s", *listen)
		if err := srv.ListenAndServe(*listen); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *useTray {
		t.OnToggle(application.SetTrackingEnabled)
		t.OnMute(application.SetMuted)
		t.OnOpen(func() { openBrowser(dashboardURL(*listen)) })
		t.OnQuit(application.Stop)
		t.Run()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	log.Println("Shutting down")
	application.Stop()
}

// dashboardURL turns a listen address into something a browser can open.
func dashboardURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens url in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
