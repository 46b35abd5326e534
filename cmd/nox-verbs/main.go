package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/devin-hart/nox-verbs/internal/config"
	"github.com/devin-hart/nox-verbs/internal/events"
	"github.com/devin-hart/nox-verbs/internal/feed"
	"github.com/devin-hart/nox-verbs/internal/maps"
	"github.com/devin-hart/nox-verbs/internal/ui"
	"github.com/devin-hart/nox-verbs/internal/verbs"
	"github.com/devin-hart/nox-verbs/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config warning: %v", err)
	}

	fmt.Println("⚔️ Nox Verbs Starting...")

	if cfg.PalettePath != "" {
		if err := maps.LoadPalette(cfg.PalettePath); err != nil {
			log.Printf("Palette warning: %v", err)
		}
	}

	w, err := maps.LoadWorld(cfg.MapDir, cfg.World)
	if err != nil {
		log.Printf("World warning: %v", err)
		w = world.New()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var feedEvents <-chan events.Event
	if cfg.FeedPath != "" {
		reader := feed.NewReader(cfg.FeedPath)
		if err := reader.Start(ctx); err != nil {
			log.Printf("Feed warning: %v", err)
		} else {
			engine := events.NewEngine()
			go engine.ProcessLines(reader.Lines)
			feedEvents = engine.Events
		}
	}

	window := ui.NewWindow(w, feedEvents, cfg.TileSize)
	window.Verbs = verbs.NewDefaultRegistry(w, w, window.Say, verbs.SystemClipboard)
	window.CenterOnPlayer()

	ebiten.SetWindowTitle("Nox Verbs")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(window); err != nil {
		log.Fatal(err)
	}
}
