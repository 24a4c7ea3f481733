package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loosedirt/internal/sims/sand"
)

var (
	configPath string // optional YAML config file
	width      int    // grid width in cells
	height     int    // grid height in cells
	scale      float64
	seed       int64
	tps        int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "loosedirt",
	Short: "Falling-sand cellular automaton",
	Long:  "loosedirt simulates a grid of rock, water and sand with local per-tick rules.\nPaint materials with the mouse in the GUI or terminal frontends, or run it headless.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (flags override its values)")
	pf.IntVar(&width, "width", 0, "grid width in cells")
	pf.IntVar(&height, "height", 0, "grid height in cells")
	pf.Float64Var(&scale, "scale", 0, "cell-to-pixel scale factor")
	pf.Int64Var(&seed, "seed", 0, "deterministic seed (0 uses the config default)")
	pf.IntVar(&tps, "tps", 60, "simulation ticks per second")
	pf.StringVar(&logLevel, "loglevel", "info", "log verbosity (trace..fatal)")
}

// buildConfig resolves the effective configuration: defaults, then the
// optional YAML file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (sand.Config, error) {
	cfg := sand.DefaultConfig()
	if configPath != "" {
		loaded, err := sand.LoadConfig(configPath)
		if err != nil {
			return sand.Config{}, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}
