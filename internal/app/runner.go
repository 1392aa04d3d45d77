package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/pkg/sims/life"
)

// Run drives a headless simulation: it prints each generation to out in the
// text format, steps the grid, and logs a summary line to errOut. It returns
// ctx.Err() if the context ends before the run completes.
func Run(ctx context.Context, cfg *Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	pacer := core.NewFixedStep(cfg.TPS)

	prev := g.Snapshot()
	for t := 0; t < cfg.Generations; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !cfg.Quiet {
			if err := printGeneration(out, prev); err != nil {
				return err
			}
		}

		g.Step()
		next := g.Snapshot()
		if cfg.StopWhenStable {
			if next.Population() == 0 {
				if !cfg.Quiet {
					if err := printGeneration(out, next); err != nil {
						return err
					}
				}
				logger.Printf("died out at generation %d", g.Generation())
				break
			}
			if next.Equal(prev) {
				logger.Printf("stable at generation %d", g.Generation())
				break
			}
		}
		prev = next

		if t+1 < cfg.Generations {
			if err := pacer.Wait(ctx); err != nil {
				return err
			}
		}
	}

	logger.Printf("ran %d generations on a %dx%d grid, %d live cells", g.Generation(), g.Width(), g.Height(), g.Population())
	return nil
}

func printGeneration(out io.Writer, s life.Snapshot) error {
	if _, err := fmt.Fprintf(out, "Generation %d:\n", s.Generation()); err != nil {
		return fmt.Errorf("write generation %d: %w", s.Generation(), err)
	}
	if err := render.Text(out, s); err != nil {
		return fmt.Errorf("render generation %d: %w", s.Generation(), err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("write generation %d: %w", s.Generation(), err)
	}
	return nil
}
