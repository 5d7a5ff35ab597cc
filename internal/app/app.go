package app

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"antfarm/internal/terrain"
)

// Config carries everything the editor app needs at startup.
type Config struct {
	CanvasW         int
	CanvasH         int
	TileSize        int
	MaxExtent       int
	DefaultMaterial terrain.Material
	InvalidateDelay time.Duration
	BrushSize       int
}

// App is the ebiten shell around the terrain core: it converts pointer input
// to tile coordinates, drives the editor, and renders the store. All terrain
// logic lives in internal/terrain; this layer is glue.
type App struct {
	log *logrus.Entry

	store   *terrain.SparseStore
	facade  *terrain.Facade
	editor  *terrain.Editor
	conv    *terrain.Converter
	inval   *terrain.Invalidator
	minimap *Minimap
	sprites *SpriteCache

	// Set from the invalidator's timer goroutine, consumed by Update.
	minimapDirty atomic.Bool

	material  terrain.Material
	brushSize int
	showHUD   bool

	prevKeys map[ebiten.Key]bool
}

// New builds the editor app and wires the facade's mutation hook to the
// debounced minimap rebuild.
func New(cfg Config, log *logrus.Entry) (*App, error) {
	store := terrain.NewSparseStore(terrain.SparseConfig{
		TileSize:        cfg.TileSize,
		DefaultMaterial: cfg.DefaultMaterial,
		MaxExtent:       cfg.MaxExtent,
	})
	facade := terrain.NewSparseFacade(store)
	sprites, err := NewSpriteCache()
	if err != nil {
		return nil, err
	}

	brush := cfg.BrushSize
	if brush < 1 {
		brush = 1
	}
	a := &App{
		log:       log,
		store:     store,
		facade:    facade,
		editor:    terrain.NewEditor(facade),
		conv:      terrain.NewConverter(store.TileSize(), cfg.CanvasW, cfg.CanvasH),
		minimap:   NewMinimap(store),
		sprites:   sprites,
		material:  cfg.DefaultMaterial,
		brushSize: brush,
		showHUD:   true,
		prevKeys:  make(map[ebiten.Key]bool),
	}
	a.inval = terrain.NewInvalidator(terrain.RealClock(), cfg.InvalidateDelay, func() {
		a.minimapDirty.Store(true)
	})
	facade.SetInvalidateFunc(a.inval.Schedule)
	a.conv.AlignToOrigin()
	return a, nil
}

// Close releases timers and caches.
func (a *App) Close() {
	a.inval.Destroy()
	a.sprites.Close()
}

func (a *App) selectedMaterial() string {
	return a.material.String()
}

// paletteKeys maps number keys to palette slots.
var paletteKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

func (a *App) Update() error {
	currentKeys := make(map[ebiten.Key]bool)
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	// Camera pan. Pixel-constant speed regardless of zoom.
	panSpeed := 6.0 / float64(a.conv.TileSize())
	cx, cy := a.conv.Center()
	moved := false
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cy += panSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cy -= panSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cx -= panSpeed
		moved = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cx += panSpeed
		moved = true
	}
	if moved {
		a.conv.SetCenter(cx, cy)
	}

	// Zoom: mouse wheel steps the tile size.
	const tileSizeMin, tileSizeMax = 4, 64
	if _, wy := ebiten.Wheel(); wy != 0 {
		ts := float64(a.conv.TileSize()) * math.Pow(1.25, wy)
		n := int(math.Round(ts))
		if n < tileSizeMin {
			n = tileSizeMin
		}
		if n > tileSizeMax {
			n = tileSizeMax
		}
		a.conv.SetTileSize(n)
	}

	// Palette selection.
	for i, k := range paletteKeys {
		if pressed(k) && i < len(terrain.Materials()) {
			a.material = terrain.Materials()[i]
		}
	}

	// Brush size.
	if pressed(ebiten.KeyBracketLeft) && a.brushSize > 1 {
		a.brushSize--
	}
	if pressed(ebiten.KeyBracketRight) && a.brushSize < 9 {
		a.brushSize++
	}

	// Undo / redo.
	if pressed(ebiten.KeyU) {
		a.editor.Undo()
	}
	if pressed(ebiten.KeyR) {
		a.editor.Redo()
	}

	// Snapshot clipboard round-trip.
	if pressed(ebiten.KeyC) {
		if err := copySnapshot(a.store); err != nil {
			a.log.WithError(err).Warn("snapshot copy failed")
		} else {
			a.log.WithField("tiles", a.store.Len()).Info("snapshot copied")
		}
	}
	if pressed(ebiten.KeyV) {
		if err := pasteSnapshot(a.store); err != nil {
			a.log.WithError(err).Warn("snapshot paste failed")
		} else {
			a.conv.SetTileSize(a.store.TileSize())
			a.inval.InvalidateNow()
			a.log.WithField("tiles", a.store.Len()).Info("snapshot pasted")
		}
	}

	// Pixel-grid alignment and HUD toggle.
	if pressed(ebiten.KeyG) {
		a.conv.AlignToOrigin()
	}
	if pressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}

	// Painting. Held buttons drag-paint; edits go through the editor so every
	// stroke is undoable.
	mx, my := ebiten.CursorPosition()
	tx, ty := a.conv.TileIndexAt(float64(mx), float64(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.editor.Paint(tx, ty, a.material, a.brushSize)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		a.editor.Erase(tx, ty, a.brushSize)
	}

	// Debounced minimap rebuild, handed back to the game loop by the timer.
	if a.minimapDirty.Swap(false) {
		a.minimap.Rebuild()
	}

	a.prevKeys = currentKeys
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 14, A: 255})

	a.drawTiles(screen)
	a.drawBrushCursor(screen)
	a.minimap.Draw(screen)
	a.drawPalette(screen)
	if a.showHUD {
		a.drawHUD(screen)
	}
}

// drawTiles renders every painted tile intersecting the view.
func (a *App) drawTiles(screen *ebiten.Image) {
	minX, minY, maxX, maxY := a.conv.VisibleTiles()
	ts := a.conv.TileSize()
	for c, tile := range a.store.All() {
		if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
			continue
		}
		// Tile cell (x, y) spans tile space [x, x+1) x [y, y+1); its top-left
		// on screen is the pixel of (x, y+1) under the Y flip.
		px, py := a.conv.TileToPixel(float64(c.X), float64(c.Y+1))
		var opt ebiten.DrawImageOptions
		opt.GeoM.Translate(px, py)
		screen.DrawImage(a.sprites.Tile(tile.Material(), ts), &opt)
	}

	// Origin crosshair so the world anchor stays visible while panning.
	ox, oy := a.conv.TileToPixel(0, 0)
	axis := color.RGBA{R: 80, G: 100, B: 80, A: 180}
	vector.StrokeLine(screen, float32(ox)-6, float32(oy), float32(ox)+6, float32(oy), 1, axis, false)
	vector.StrokeLine(screen, float32(ox), float32(oy)-6, float32(ox), float32(oy)+6, 1, axis, false)
}

// drawBrushCursor outlines the brush footprint under the pointer.
func (a *App) drawBrushCursor(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	tx, ty := a.conv.TileIndexAt(float64(mx), float64(my))
	lo := a.brushSize / 2
	x0 := tx - lo
	y0 := ty - lo
	// Top-left pixel of the footprint is the highest tile row's top edge.
	px, py := a.conv.TileToPixel(float64(x0), float64(y0+a.brushSize))
	span := float32(a.brushSize * a.conv.TileSize())
	vector.StrokeRect(screen, float32(px), float32(py), span, span, 1,
		color.RGBA{R: 235, G: 235, B: 170, A: 200}, false)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := a.conv.CanvasSize(); w != outsideWidth || h != outsideHeight {
		a.conv.SetCanvasSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
