//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seven-gates/internal/app"
	"seven-gates/internal/core"
	_ "seven-gates/pkg/sims/sevengates"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewViewerConfig()
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("seven-gates — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
