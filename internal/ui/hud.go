//go:build ebiten

package ui

import (
	"image/color"

	"cascade-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// HUD renders the sim's reported statistics to the right of the grid.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	lines    []string
	paused   bool
	lastSize int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.lines = h.lines[:0]
	h.lines = append(h.lines, h.sim.Name())
	if p, ok := h.sim.(core.ParameterProvider); ok {
		h.lines = append(h.lines, FormatSnapshot(p.Parameters())...)
	}
	if paused {
		h.lines = append(h.lines, "", "paused")
	}
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastSize != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastSize = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		text.Draw(h.panel, line, basicfont.Face7x13, 8, lineHeight*(i+1), color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
