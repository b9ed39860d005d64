// Package main is the entry point for the rain effect viewer: a demo
// room with a wall, floor and ceiling, each classified and painted
// with the effect.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/matrix-rain/internal/config"
	"github.com/Faultbox/matrix-rain/internal/effect"
	"github.com/Faultbox/matrix-rain/internal/engine/renderer"
	"github.com/Faultbox/matrix-rain/internal/engine/window"
	"github.com/Faultbox/matrix-rain/internal/logger"
	"github.com/Faultbox/matrix-rain/internal/surface"
	"github.com/Faultbox/matrix-rain/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Matrix Rain Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Matrix Rain",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer rend.Close()
	rend.Resize(win.GetSize())

	anchors := demoRoom(cfg.Classifier)
	for _, a := range anchors {
		logger.Info("surface anchored",
			zap.Stringer("kind", a.Kind),
			zap.Float32("cx", a.Center.X),
			zap.Float32("cy", a.Center.Y),
			zap.Float32("cz", a.Center.Z),
		)
	}

	driver := effect.NewDriver(cfg.Effect.Settings(), uint64(time.Now().UnixNano()))

	start := time.Now()
	for {
		quit := false
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					quit = true
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					rend.Resize(int(e.Data1), int(e.Data2))
				}
			}
		}
		if quit {
			return nil
		}

		frame, err := driver.Frame(time.Since(start), surface.Unknown)
		if err != nil {
			// A bad frame is the control layer's bug; stop rather
			// than render corrupted output.
			return fmt.Errorf("building frame: %w", err)
		}

		width, height := win.GetSize()
		aspect := float32(width) / float32(height)
		view := math.LookAt(
			math.Vec3{X: 0, Y: 1.2, Z: 2.2},
			math.Vec3{X: 0, Y: 1.2, Z: -1},
			math.Vec3{Y: 1},
		)
		proj := math.Perspective(1.0, aspect, 0.1, 100)

		rend.Begin()
		rend.Draw(frame, anchors, view, proj)
		win.SwapBuffers()
	}
}

// demoRoom stands in for scene understanding: three detected planes,
// classified from their normals the same way live geometry would be.
func demoRoom(th surface.Thresholds) []surface.Anchor {
	planes := []struct {
		center math.Vec3
		normal math.Vec3
	}{
		{math.Vec3{X: 0, Y: 1.2, Z: -2}, math.Vec3{Z: 1}},  // back wall
		{math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{Y: 1}},    // floor
		{math.Vec3{X: 0, Y: 2.4, Z: -1}, math.Vec3{Y: -1}}, // ceiling
	}

	anchors := make([]surface.Anchor, 0, len(planes))
	for _, p := range planes {
		kind := surface.ClassifyNormal(p.normal, th)
		anchors = append(anchors, surface.NewAnchor(p.center, p.normal, kind))
	}
	return anchors
}
