package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"antfarm/internal/terrain"
)

// minimapCellPx is the pixel size of one tile on the minimap.
const minimapCellPx = 2

// Minimap renders an overview of every painted tile. Rebuilds are expensive
// relative to single edits, so the app schedules them through the debounced
// invalidator rather than rebuilding per brush stroke.
type Minimap struct {
	store *terrain.SparseStore
	img   *ebiten.Image
}

func NewMinimap(store *terrain.SparseStore) *Minimap {
	return &Minimap{store: store}
}

// Rebuild redraws the minimap from the store's current bounds and tiles.
func (m *Minimap) Rebuild() {
	b, ok := m.store.Bounds()
	if !ok {
		m.img = nil
		return
	}
	w := b.Width() * minimapCellPx
	h := b.Height() * minimapCellPx
	if m.img == nil || m.img.Bounds().Dx() != w || m.img.Bounds().Dy() != h {
		m.img = ebiten.NewImage(w, h)
	}
	m.img.Fill(color.RGBA{R: 16, G: 18, B: 16, A: 255})
	for c, tile := range m.store.All() {
		st := terrain.StyleFor(tile.Material())
		// Minimap is screen-oriented: world +Y up maps to image -Y.
		px := float32((c.X - b.MinX) * minimapCellPx)
		py := float32((b.MaxY - c.Y) * minimapCellPx)
		vector.FillRect(m.img, px, py, minimapCellPx, minimapCellPx, st.Fill, false)
	}
}

// Draw blits the minimap into the top-right corner of the screen.
func (m *Minimap) Draw(screen *ebiten.Image) {
	if m.img == nil {
		return
	}
	sw := screen.Bounds().Dx()
	w := m.img.Bounds().Dx()
	h := m.img.Bounds().Dy()
	x := float64(sw - w - 12)
	y := 12.0

	vector.StrokeRect(screen, float32(x)-2, float32(y)-2, float32(w)+4, float32(h)+4, 1,
		color.RGBA{R: 90, G: 110, B: 90, A: 255}, false)
	var opt ebiten.DrawImageOptions
	opt.GeoM.Translate(x, y)
	screen.DrawImage(m.img, &opt)
}
