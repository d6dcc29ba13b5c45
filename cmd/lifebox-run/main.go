package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"life-sandbox/internal/app"
	"life-sandbox/internal/batch"
	"life-sandbox/internal/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	generations := flag.Int("generations", 500, "generation limit per run")
	seeds := flag.String("seeds", "", "comma-separated seeds; defaults to -seed")
	runs := flag.Int("runs", 1, "number of consecutive seeds starting at -seed when -seeds is empty")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	stagnation := flag.Bool("stop-on-stagnation", true, "end a run once the grid repeats")
	var overrides app.KVList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.ApplyAll(overrides); err != nil {
		log.Fatal(err)
	}

	kind, err := session.ParseKind(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	seedList, err := parseSeeds(*seeds, cfg.Seed, *runs)
	if err != nil {
		log.Fatalf("seeds: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := batch.Run(ctx, batch.Options{
		Kind:             kind,
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Generations:      *generations,
		Seeds:            seedList,
		Workers:          *workers,
		StopOnStagnation: *stagnation,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		reason := r.Outcome.String()
		if r.Stagnant {
			reason = "stagnant"
		}
		if kind == session.Chess {
			log.Printf("seed %d: %d generations, white %d, black %d (%s)", r.Seed, r.Generations, r.White, r.Black, reason)
			continue
		}
		log.Printf("seed %d: %d generations, %d live (%s)", r.Seed, r.Generations, r.Population, reason)
	}
}

func parseSeeds(list string, base int64, runs int) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		if runs < 1 {
			runs = 1
		}
		out := make([]int64, runs)
		for i := range out {
			out[i] = base + int64(i)
		}
		return out, nil
	}
	var out []int64
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
