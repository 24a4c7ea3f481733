//go:build !ebiten

package ui

import (
	"loosedirt/internal/brush"
	"loosedirt/internal/core"
)

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD when built without the 'ebiten' tag.
func NewHUD([]brush.Entry) *HUD { return &HUD{} }

// Draw is a no-op placeholder to satisfy the GUI-build interface shape.
func (h *HUD) Draw(any, core.Material, int, bool) {}
