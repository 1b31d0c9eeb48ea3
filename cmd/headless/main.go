// cmd/headless/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"go-survivor/internal/app"
	"go-survivor/internal/bot"
	"go-survivor/internal/clock"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/loop"
	"go-survivor/internal/system"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type runResult struct {
	Index   int            `json:"index"`
	Ticks   int            `json:"ticks"`
	Died    bool           `json:"died"`
	Summary system.Summary `json:"summary"`
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var streaming bool
	var asJSON bool
	var verbose bool

	flag.IntVar(&runs, "runs", 8, "number of autopilot runs")
	flag.IntVar(&ticks, "ticks", 60*config.TargetTPS*5, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed for run 1, incremented per run")
	flag.BoolVar(&streaming, "streaming", false, "spawn enemies with chunks instead of the continuous spawner")
	flag.BoolVar(&asJSON, "json", false, "print results as JSON")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}

	tuning := config.DefaultTuning()
	if streaming {
		tuning = config.StreamingTuning()
	}

	results, err := runAll(context.Background(), tuning, runs, ticks, seedBase)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("=== Headless Survival Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d streaming=%t\n\n", runs, ticks, seedBase, streaming)
	for _, r := range results {
		printRun(r)
	}
	printAggregate(results)
}

// runAll plays every run in parallel. Runs share nothing, so each gets its
// own game, bot and clock.
func runAll(ctx context.Context, tuning config.Tuning, runs, ticks int, seedBase int64) ([]runResult, error) {
	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range runs {
		g.Go(func() error {
			r, err := playRun(ctx, tuning, seedBase+int64(i), ticks)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			r.Index = i + 1
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playRun(ctx context.Context, tuning config.Tuning, seed int64, ticks int) (runResult, error) {
	game, err := app.NewGame(app.Options{Tuning: &tuning, Seed: seed})
	if err != nil {
		return runResult{}, err
	}
	clk := clock.NewMock(epoch)
	game.Start(clk.Now())

	pilot := bot.NewController(game.Rng)
	keys := input.NewKeySet()
	n := 0
	for ; n < ticks && !game.Over(); n++ {
		if n%1000 == 0 && ctx.Err() != nil {
			return runResult{}, ctx.Err()
		}
		pilot.Drive(keys, game.Frame())
		game.Tick(clk.Advance(loop.Interval), keys)
	}
	return runResult{
		Ticks:   n,
		Died:    game.Over(),
		Summary: game.Summary(clk.Now()),
	}, nil
}

func printRun(r runResult) {
	status := "alive"
	if r.Died {
		status = "died"
	}
	fmt.Printf("run %d seed=%d %s after %d ticks: %s\n", r.Index, r.Summary.Seed, status, r.Ticks, r.Summary)
}

func printAggregate(results []runResult) {
	if len(results) == 0 {
		return
	}
	scores := make([]int, 0, len(results))
	deaths := 0
	var levels, kills int
	for _, r := range results {
		scores = append(scores, r.Summary.Score)
		levels += r.Summary.Level
		kills += r.Summary.Kills
		if r.Died {
			deaths++
		}
	}
	sort.Ints(scores)
	n := float64(len(results))
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("deaths=%d/%d\n", deaths, len(results))
	fmt.Printf("score min=%d median=%d max=%d\n", scores[0], median(scores), scores[len(scores)-1])
	fmt.Printf("avg level=%.2f avg kills=%.1f\n", float64(levels)/n, float64(kills)/n)
}

// median expects a sorted slice.
func median(sorted []int) int {
	if len(sorted) == 0 {
		return 0
	}
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
