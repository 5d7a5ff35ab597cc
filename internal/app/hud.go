package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"antfarm/internal/terrain"
)

var hudTextColor = color.RGBA{R: 210, G: 220, B: 205, A: 255}

// drawHUD renders the key legend and editor state in the bottom-left corner.
func (a *App) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("material: %s  brush: %d  tile: %dpx", a.selectedMaterial(), a.brushSize, a.conv.TileSize()),
		fmt.Sprintf("tiles: %d  undo: %v  redo: %v", a.store.Len(), a.editor.CanUndo(), a.editor.CanRedo()),
		"LMB=paint  RMB=erase  1-8=material  [ ]=brush  wheel=zoom",
		"WASD/arrows=pan  U=undo  R=redo  C=copy  V=paste  G=align  H=hud",
	}
	if b, ok := a.store.Bounds(); ok {
		lines[1] += fmt.Sprintf("  bounds: %d..%d x %d..%d", b.MinX, b.MaxX, b.MinY, b.MaxY)
	}

	face := basicfont.Face7x13
	lineH := 16
	_, ch := a.conv.CanvasSize()
	y0 := ch - lineH*len(lines) - 8

	bg := color.RGBA{A: 150}
	vector.FillRect(screen, 4, float32(y0-12), 480, float32(lineH*len(lines)+14), bg, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 10, y0+i*lineH, hudTextColor)
	}
}

// paletteSwatchSize is the pixel size of one palette entry.
const paletteSwatchSize = 22

// drawPalette renders the material palette along the top edge, highlighting
// the selected entry.
func (a *App) drawPalette(screen *ebiten.Image) {
	for i, m := range terrain.Materials() {
		x := float32(10 + i*(paletteSwatchSize+6))
		y := float32(10)
		st := terrain.StyleFor(m)
		vector.FillRect(screen, x, y, paletteSwatchSize, paletteSwatchSize, st.Fill, false)
		border := color.RGBA{R: 60, G: 70, B: 60, A: 255}
		width := float32(1)
		if m == a.material {
			border = color.RGBA{R: 230, G: 230, B: 160, A: 255}
			width = 2
		}
		vector.StrokeRect(screen, x, y, paletteSwatchSize, paletteSwatchSize, width, border, false)
	}
}
