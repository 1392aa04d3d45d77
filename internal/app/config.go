package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"lifegrid/pkg/sims/life"
)

// PatternRandom seeds the grid with a random soup instead of a named pattern.
const PatternRandom = "random"

// Config represents the parameters shared by the headless and GUI drivers.
// Defaults reproduce the classic demo: a glider at (1,1) on a 10x10 board
// for 50 generations.
type Config struct {
	Width          int     `env:"LIFE_WIDTH"            envDefault:"10"`
	Height         int     `env:"LIFE_HEIGHT"           envDefault:"10"`
	Generations    int     `env:"LIFE_GENERATIONS"      envDefault:"50"`
	Pattern        string  `env:"LIFE_PATTERN"          envDefault:"glider"`
	PatternFile    string  `env:"LIFE_PATTERN_FILE"`
	Row            int     `env:"LIFE_ROW"              envDefault:"1"`
	Col            int     `env:"LIFE_COL"              envDefault:"1"`
	Seed           int64   `env:"LIFE_SEED"             envDefault:"42"`
	Density        float64 `env:"LIFE_DENSITY"          envDefault:"0.3"`
	TPS            int     `env:"LIFE_TPS"`
	Quiet          bool    `env:"LIFE_QUIET"`
	StopWhenStable bool    `env:"LIFE_STOP_WHEN_STABLE"`
	Scale          int     `env:"LIFE_SCALE"            envDefault:"8"`
}

// NewConfig returns a Config populated from LIFE_* environment variables on
// top of the defaults.
func NewConfig() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to run (headless only)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name, or \"random\"")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext pattern file (overrides -pattern)")
	fs.IntVar(&c.Row, "row", c.Row, "row to place the pattern at")
	fs.IntVar(&c.Col, "col", c.Col, "column to place the pattern at")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random pattern")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (0 runs unpaced)")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "do not print generations")
	fs.BoolVar(&c.StopWhenStable, "stop-when-stable", c.StopWhenStable, "stop once the grid dies out or stops changing")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
}

// ParseConfig reads the environment, then lets args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	c, err := NewConfig()
	if err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings no driver can run with.
func (c *Config) Validate() error {
	if c.Generations < 0 {
		return errors.New("generations must not be negative")
	}
	if c.Scale <= 0 {
		return errors.New("scale must be positive")
	}
	if c.PatternFile == "" && c.Pattern != PatternRandom {
		if _, err := life.LookupPattern(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// NewGrid builds a grid with the configured dimensions and seeds it.
func (c *Config) NewGrid() (*life.Grid, error) {
	g, err := life.New(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if err := c.SeedGrid(g); err != nil {
		return nil, err
	}
	return g, nil
}

// SeedGrid clears g and applies the configured pattern.
func (c *Config) SeedGrid(g *life.Grid) error {
	g.Clear()
	if c.PatternFile == "" && c.Pattern == PatternRandom {
		life.Randomize(g, c.Seed, c.Density)
		return nil
	}
	p, err := c.pattern()
	if err != nil {
		return err
	}
	if err := g.Place(p, c.Row, c.Col); err != nil {
		return fmt.Errorf("seed pattern %q: %w", p.Name, err)
	}
	return nil
}

func (c *Config) pattern() (life.Pattern, error) {
	if c.PatternFile == "" {
		return life.LookupPattern(c.Pattern)
	}
	data, err := os.ReadFile(c.PatternFile)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("read pattern file: %w", err)
	}
	return life.ParsePattern(c.PatternFile, string(data))
}
