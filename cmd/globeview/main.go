package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"globeview/internal/openglhelper"
	"globeview/pkg/camera"
	"globeview/pkg/config"
	"globeview/pkg/feature"
	"globeview/pkg/input"
	"globeview/pkg/logging"
	"globeview/pkg/render"
	"globeview/pkg/viewer"
)

func init() {
	// OpenGL and GLFW must be driven from the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "globeview.yaml", "Path to the config file")
	featuresPath := flag.String("features", "", "Feature data file (overrides config)")
	flag.Parse()

	if err := run(*configPath, *featuresPath); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath, featuresPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logging.Init(&cfg.Log)

	if featuresPath != "" {
		cfg.Data.Features = featuresPath
	}

	coll, err := feature.LoadCollection(cfg.Data.Features, log)
	if err != nil {
		return err
	}
	log.Info("feature data loaded", "path", cfg.Data.Features, "features", len(coll.Features))

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()

	cam := camera.New(camera.Options{
		RotateSpeed: cfg.Camera.RotateSpeed,
		ZoomStep:    cfg.Camera.ZoomStep,
		StartHeight: cfg.Camera.StartHeight,
		MinHeight:   cfg.Camera.MinHeight,
		MaxHeight:   cfg.Camera.MaxHeight,
	})
	cam.UpdateProjectionMatrix(cfg.Window.Width, cfg.Window.Height)

	state := viewer.NewState(cam)
	router := input.NewRouter(cam, state)

	renderer, err := render.NewWireframe(coll)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Close()

	loop := viewer.NewLoop(window, state, router, renderer, log)
	return loop.Run()
}
