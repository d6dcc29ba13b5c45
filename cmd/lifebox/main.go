//go:build ebiten

package main

import (
	"flag"
	"log"

	"life-sandbox/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file; flags given on the command line win")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		// Re-parse so explicit flags override the file.
		flag.Parse()
	}

	sess, err := cfg.NewSession()
	if err != nil {
		log.Fatalf("new session: %v", err)
	}

	game := app.New(sess, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-sandbox: " + sess.Kind().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
