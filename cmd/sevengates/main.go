// Command sevengates runs the seven-band automaton in the terminal and
// prints the final grid, or every frame with -frames.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"seven-gates/internal/app"
	"seven-gates/internal/core"
	"seven-gates/pkg/sims/sevengates"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sevengates: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, cfg, nil); err != nil {
		log.Fatal(err)
	}
}

// run writes the simulation described by cfg to w. pace, when non-nil, is
// called before each frame after the first; with a nil pace and a positive
// cfg.TPS frames are paced by a core.FixedStep.
func run(w io.Writer, cfg *app.Config, pace func()) error {
	grid, err := sevengates.Random(cfg.Width, cfg.Height, cfg.Seed)
	if err != nil {
		return err
	}

	if !cfg.Frames {
		final, err := sevengates.Simulate(grid, cfg.Steps)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, final.Render())
		return err
	}

	if pace == nil && cfg.TPS > 0 {
		fs := core.NewFixedStep(cfg.TPS)
		fs.Wait()
		pace = fs.Wait
	}
	if _, err := fmt.Fprintf(w, "Initial state:\n%s\n", grid.Render()); err != nil {
		return err
	}
	for i := 1; i <= cfg.Steps; i++ {
		if pace != nil {
			pace()
		}
		grid = grid.Step()
		if _, err := fmt.Fprintf(w, "\nStep %d:\n%s\n", i, grid.Render()); err != nil {
			return err
		}
	}
	return nil
}
