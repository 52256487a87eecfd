package main

import (
	"context"
	"flag"
	nethttp "net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShitalDhakal/VibePlayer/internal/config"
	apphttp "github.com/ShitalDhakal/VibePlayer/internal/http"
	"github.com/ShitalDhakal/VibePlayer/internal/progress"
	"github.com/ShitalDhakal/VibePlayer/internal/scan"
)

const defaultConfigFile = "courseplayer.toml"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	var root, port, stateDir, cfgPath string
	flag.StringVar(&root, "root", "", "course directory containing video files (default: current directory)")
	flag.StringVar(&port, "port", "", "port to listen on (or PORT env)")
	flag.StringVar(&stateDir, "state", "", "directory for progress.json")
	flag.StringVar(&cfgPath, "config", "", "TOML config file")
	flag.Parse()

	explicitCfg := cfgPath != ""
	if cfgPath == "" {
		cfgPath = defaultConfigFile
	}
	cfg, err := config.Load(cfgPath, explicitCfg)
	if err != nil {
		log.Error().Err(err).Msg("config")
		os.Exit(1)
	}

	// Flags and environment beat the config file.
	if root == "" && flag.NArg() > 0 {
		root = flag.Arg(0)
	}
	if root != "" {
		cfg.Root = root
	}
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port != "" {
		cfg.Port = port
	}
	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	if fi, err := os.Stat(cfg.Root); err != nil || !fi.IsDir() {
		log.Error().Str("root", cfg.Root).Err(err).Msg("invalid course directory")
		os.Exit(1)
	}

	course, err := scan.BuildCourse(cfg.Root, log)
	if err != nil {
		log.Error().Err(err).Msg("scan failed")
		os.Exit(1)
	}
	if course.Empty() {
		log.Error().Str("root", cfg.Root).
			Msg("no video files found (supported: .mp4 .mkv .webm)")
		os.Exit(1)
	}
	log.Info().
		Str("course", course.Name).
		Int("sections", len(course.Sections)).
		Int("videos", course.TotalVideos()).
		Int("subtitles", course.TotalSubtitles()).
		Msg("course scanned")

	store := progress.NewStore(filepath.Join(cfg.StateDir, "progress.json"), log)
	mux := apphttp.NewServer(cfg.Root, course, store, log)

	addr := ":" + cfg.Port
	// No WriteTimeout: video responses stream for longer than any fixed limit.
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-done:
		// proceed to shutdown
	case err := <-errCh:
		log.Error().Err(err).Msg("listen failed")
		os.Exit(1)
	}
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}
	log.Info().Msg("server stopped")
}
