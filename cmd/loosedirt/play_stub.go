//go:build !ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the GUI frontend (requires the ebiten build tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("the GUI frontend requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/loosedirt` or use `loosedirt tui`")
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
