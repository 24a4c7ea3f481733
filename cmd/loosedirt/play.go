//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"loosedirt/internal/app"
	"loosedirt/internal/sims/sand"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the GUI frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		world, err := sand.NewWithConfig(cfg)
		if err != nil {
			return err
		}

		cellScale := int(cfg.Scale)
		game := app.New(world, cellScale, cfg.Seed)
		size := world.Size()

		ebiten.SetWindowTitle("Loose Dirt")
		ebiten.SetTPS(tps)
		ebiten.SetWindowSize(size.W*cellScale, size.H*cellScale)

		if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
