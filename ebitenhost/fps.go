package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsPanel is a small image reused for the FPS readout so the readout gets a
// readable background without touching the rest of the screen.
var fpsPanel *ebiten.Image

// drawFPS draws the current FPS and TPS in the top-left corner of screen.
func drawFPS(screen *ebiten.Image) {
	if fpsPanel == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		fpsPanel = ebiten.NewImage(100, 32)
	}
	fpsPanel.Clear()
	// Semi-transparent background for readability
	fpsPanel.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(fpsPanel, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	screen.DrawImage(fpsPanel, nil)
}
