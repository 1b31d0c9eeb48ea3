// cmd/survivor-tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/clock"
	"go-survivor/internal/config"
	"go-survivor/internal/state"
	"go-survivor/internal/tui"
)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func main() {
	tuningPath := flag.String("tuning", "", "JSON file overriding gameplay tuning")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	// The terminal belongs to tcell, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	hud := &tui.HUD{}
	game, err := app.NewGame(app.Options{Tuning: &tuning, Seed: *seed, HUD: hud})
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	machine := state.NewMachine(game, clock.Real{}, systemClipboard{})
	a := tui.NewApp(screen, machine, tui.NewRenderer(screen), hud, clock.Real{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = a.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
