// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/clock"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/loop"
	"go-survivor/internal/spectate"
	"go-survivor/internal/state"
	"go-survivor/internal/system"
	"go-survivor/internal/ui"
)

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type AppGame struct {
	machine   *state.Machine
	scheduler *loop.Scheduler
	keyboard  *ui.Keyboard
	renderer  *ui.Renderer
	feed      *spectate.Feed
}

func (a *AppGame) Update() error {
	if changed, focused := a.keyboard.FocusChange(); changed {
		if focused {
			a.machine.Focus()
		} else {
			a.machine.Blur()
		}
	}
	for _, ev := range a.keyboard.Poll() {
		a.machine.HandleEvent(ev)
	}
	now := time.Now()
	if a.scheduler.Frame(now) && a.feed != nil {
		a.feed.Publish(now)
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	tuningPath := flag.String("tuning", "", "JSON file overriding gameplay tuning")
	weaponsPath := flag.String("weapons", "", "JSON file with weapon definitions")
	seed := flag.Int64("seed", 0, "world seed (0 picks one from the clock)")
	spectateAddr := flag.String("spectate", config.GetEnvDefault("SURVIVOR_SPECTATE_ADDR", ""), "address for the spectator websocket feed, empty to disable")
	pprofAddr := flag.String("pprof", "", "address for the pprof server, empty to disable")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	weapons := defs.DefaultWeaponLibrary()
	if *weaponsPath != "" {
		lib, err := defs.LoadWeaponDefinitions(*weaponsPath)
		if err != nil {
			log.Fatal(err)
		}
		weapons = lib
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	hud := ui.NewHUD()
	renderer := ui.NewRenderer(hud)

	var (
		gameHUD system.HUD     = hud
		drawTo  state.Renderer = renderer
		feed    *spectate.Feed
		game    *app.Game
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *spectateAddr != "" {
		hub := spectate.NewHub()
		feed = spectate.NewFeed(hub, func() string { return game.RunID() })
		gameHUD = system.MultiHUD{hud, feed}
		drawTo = state.MultiRenderer{renderer, feed}
		go func() {
			if err := spectate.Serve(ctx, *spectateAddr, hub); err != nil {
				slog.Error("spectator feed stopped", "err", err)
			}
		}()
	}

	game, err := app.NewGame(app.Options{
		Tuning:  &tuning,
		Weapons: weapons,
		Seed:    *seed,
		HUD:     gameHUD,
	})
	if err != nil {
		log.Fatal(err)
	}

	machine := state.NewMachine(game, clock.Real{}, systemClipboard{})
	a := &AppGame{
		machine:   machine,
		scheduler: loop.NewScheduler(machine, drawTo, gameHUD),
		keyboard:  ui.NewKeyboard(),
		renderer:  renderer,
		feed:      feed,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivor")
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
