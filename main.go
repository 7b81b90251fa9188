package main

import (
	"context"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/artstudio/internal/config"
	"github.com/ha1tch/artstudio/internal/gallery"
	"github.com/ha1tch/artstudio/internal/logger"
	"github.com/ha1tch/artstudio/internal/store"
	"github.com/ha1tch/artstudio/internal/studio"
	"github.com/ha1tch/artstudio/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "artstudio: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	ctx := context.Background()

	st, err := store.Open(ctx, store.Options{Path: cfg.DBPath, SeedArtists: cfg.SeedArtists}, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("cannot open gallery database")
	}

	svc := gallery.NewService(st, log)
	s, err := studio.New(studio.Options{
		CanvasWidth:  cfg.CanvasWidth,
		CanvasHeight: cfg.CanvasHeight,
		SavePath:     cfg.SavePath,
	}, svc, log)
	if err != nil {
		st.Close()
		log.Fatal().Err(err).Msg("cannot create studio")
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "Art Studio")
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	// Escape belongs to the dialogs.
	rl.SetExitKey(0)

	if err := s.Load(ctx); err != nil {
		log.Error().Err(err).Msg("initial gallery query failed")
	}

	app := ui.New(s, log)
	log.Info().Int("width", cfg.WindowWidth).Int("height", cfg.WindowHeight).Msg("window open")

	for !rl.WindowShouldClose() {
		app.Update(ctx)
		app.Draw()
	}

	// Clean up
	app.Unload()
	rl.CloseWindow()
	if err := st.Close(); err != nil {
		log.Error().Err(err).Msg("close database")
	}
}
