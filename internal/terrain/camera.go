package terrain

import "math"

// Converter maps between tile space and canvas pixel space.
//
// Tile space follows the world convention: +Y is up. Canvas space follows the
// screen convention: +Y is down. The flip lives in the backing transform, so
// both consumers of backing coordinates and consumers of full canvas
// coordinates see a consistent orientation.
//
// The transform has two levels:
//
//	backing: tile -> backing pixels. Scale by tile size, negate Y.
//	         Camera-independent.
//	view:    backing -> canvas. Translate by the view offset derived from the
//	         camera centre and canvas size. Camera-dependent.
//
// Each level is invertible on its own and so is the composition.
type Converter struct {
	tileSize int
	canvasW  int
	canvasH  int

	// Camera centre in tile space.
	centerX float64
	centerY float64

	// Derived view offset, recomputed synchronously on every setter.
	offX float64
	offY float64

	updateID uint64
}

// NewConverter builds a converter centred on the tile-space origin.
func NewConverter(tileSize, canvasW, canvasH int) *Converter {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	c := &Converter{tileSize: tileSize, canvasW: canvasW, canvasH: canvasH}
	c.recompute()
	return c
}

// recompute rebuilds the cached view offset from the camera parameters.
// The camera centre must land on the canvas centre:
//
//	offX = canvasW/2 - centerX*ts
//	offY = canvasH/2 + centerY*ts   (Y already flipped by the backing level)
func (c *Converter) recompute() {
	ts := float64(c.tileSize)
	c.offX = float64(c.canvasW)/2 - c.centerX*ts
	c.offY = float64(c.canvasH)/2 + c.centerY*ts
}

// UpdateID returns a counter bumped on every parameter change. Callers cache
// derived data against it to detect staleness without deep comparison.
func (c *Converter) UpdateID() uint64 { return c.updateID }

// TileSize returns the pixel edge length of a tile.
func (c *Converter) TileSize() int { return c.tileSize }

// CanvasSize returns the canvas dimensions in pixels.
func (c *Converter) CanvasSize() (w, h int) { return c.canvasW, c.canvasH }

// Center returns the camera centre in tile space.
func (c *Converter) Center() (x, y float64) { return c.centerX, c.centerY }

// SetCenter moves the camera centre to a tile-space position.
func (c *Converter) SetCenter(tileX, tileY float64) {
	c.centerX, c.centerY = tileX, tileY
	c.updateID++
	c.recompute()
}

// SetCanvasSize resizes the canvas.
func (c *Converter) SetCanvasSize(w, h int) {
	c.canvasW, c.canvasH = w, h
	c.updateID++
	c.recompute()
}

// SetTileSize changes the pixels-per-tile scale. This is the zoom control:
// the camera centre stays fixed while the span of visible tiles changes.
func (c *Converter) SetTileSize(n int) {
	if n <= 0 {
		return
	}
	c.tileSize = n
	c.updateID++
	c.recompute()
}

// TileToBacking converts tile space to camera-independent backing pixels.
func (c *Converter) TileToBacking(tileX, tileY float64) (bx, by float64) {
	ts := float64(c.tileSize)
	return tileX * ts, -tileY * ts
}

// BackingToTile is the inverse of TileToBacking.
func (c *Converter) BackingToTile(bx, by float64) (tileX, tileY float64) {
	ts := float64(c.tileSize)
	return bx / ts, -by / ts
}

// BackingToCanvas applies the view offset.
func (c *Converter) BackingToCanvas(bx, by float64) (px, py float64) {
	return bx + c.offX, by + c.offY
}

// CanvasToBacking removes the view offset.
func (c *Converter) CanvasToBacking(px, py float64) (bx, by float64) {
	return px - c.offX, py - c.offY
}

// TileToPixel converts a tile-space position to canvas pixels.
func (c *Converter) TileToPixel(tileX, tileY float64) (px, py float64) {
	bx, by := c.TileToBacking(tileX, tileY)
	return c.BackingToCanvas(bx, by)
}

// PixelToTile converts a canvas pixel position to tile space.
func (c *Converter) PixelToTile(px, py float64) (tileX, tileY float64) {
	bx, by := c.CanvasToBacking(px, py)
	return c.BackingToTile(bx, by)
}

// TileIndexAt returns the integer tile cell containing a canvas pixel.
// A cell (x, y) spans the half-open tile-space square [x, x+1) x [y, y+1).
func (c *Converter) TileIndexAt(px, py float64) (x, y int) {
	tx, ty := c.PixelToTile(px, py)
	return int(math.Floor(tx)), int(math.Floor(ty))
}

// AlignToOrigin snaps the view offset to whole pixels so the tile-space
// origin lands exactly on a pixel boundary. Without this, a fractional
// camera centre leaves sub-pixel seams between adjacent tiles.
func (c *Converter) AlignToOrigin() {
	offX := math.Round(c.offX)
	offY := math.Round(c.offY)
	if offX == c.offX && offY == c.offY {
		return
	}
	// Back-derive the camera centre that produces the snapped offset, then
	// recompute so centre and offset stay consistent.
	ts := float64(c.tileSize)
	c.centerX = (float64(c.canvasW)/2 - offX) / ts
	c.centerY = (offY - float64(c.canvasH)/2) / ts
	c.updateID++
	c.recompute()
}

// VisibleTiles returns the inclusive range of tile cells that intersect the
// canvas, for render culling.
func (c *Converter) VisibleTiles() (minX, minY, maxX, maxY int) {
	// Canvas corners: top-left is the max tile Y (world up), bottom-left the min.
	x0, yTop := c.PixelToTile(0, 0)
	x1, yBot := c.PixelToTile(float64(c.canvasW), float64(c.canvasH))
	minX = int(math.Floor(x0))
	maxX = int(math.Floor(x1))
	minY = int(math.Floor(yBot))
	maxY = int(math.Floor(yTop))
	return minX, minY, maxX, maxY
}
