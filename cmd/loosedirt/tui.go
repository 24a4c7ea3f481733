package main

import (
	"github.com/spf13/cobra"

	"loosedirt/internal/sims/sand"
	"loosedirt/internal/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		world, err := sand.NewWithConfig(cfg)
		if err != nil {
			return err
		}
		runner, err := term.New(world, tps, cfg.Seed)
		if err != nil {
			return err
		}
		return runner.Run()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
