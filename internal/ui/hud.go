//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"loosedirt/internal/brush"
	"loosedirt/internal/core"
)

// HUD draws the palette and brush status along the top of the view.
type HUD struct {
	palette []brush.Entry
}

// NewHUD constructs a HUD for the provided palette.
func NewHUD(palette []brush.Entry) *HUD {
	return &HUD{palette: palette}
}

// Draw paints the status line. The active element is bracketed.
func (h *HUD) Draw(screen *ebiten.Image, active core.Material, size int, paused bool) {
	if h == nil {
		return
	}
	var sb strings.Builder
	for i, entry := range h.palette {
		if i > 0 {
			sb.WriteString("  ")
		}
		marker := " "
		if entry.Material.Kind == active.Kind {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s[%c] %s", marker, entry.Hotkey, entry.Name)
	}
	fmt.Fprintf(&sb, "   brush %d", size)
	if paused {
		sb.WriteString("   paused")
	}
	ebitenutil.DebugPrint(screen, sb.String())
}
