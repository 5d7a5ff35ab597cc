package terrain

import "fmt"

// Facade presents the sparse and dense backings through one contract so
// editing tools and renderers work against either without caring which is
// underneath. Exactly one backing is non-nil.
type Facade struct {
	sparse *SparseStore
	dense  *DenseChunkGrid

	// onInvalidate, when set, is called after every mutation. The editor app
	// wires this to a debounced invalidation scheduler.
	onInvalidate func()
}

// NewSparseFacade wraps a sparse store.
func NewSparseFacade(s *SparseStore) *Facade {
	return &Facade{sparse: s}
}

// NewDenseFacade wraps a dense chunk grid.
func NewDenseFacade(g *DenseChunkGrid) *Facade {
	return &Facade{dense: g}
}

// SetInvalidateFunc registers the downstream cache-invalidation hook.
func (f *Facade) SetInvalidateFunc(fn func()) {
	f.onInvalidate = fn
}

// InvalidateCache signals dependent render caches that terrain changed.
// Idempotent and safe when no hook is registered.
func (f *Facade) InvalidateCache() {
	if f.onInvalidate != nil {
		f.onInvalidate()
	}
}

// Sparse reports whether the backing stores only painted coordinates.
func (f *Facade) Sparse() bool { return f.sparse != nil }

// TileSize returns the pixel edge length of a tile.
func (f *Facade) TileSize() int {
	if f.sparse != nil {
		return f.sparse.TileSize()
	}
	return f.dense.TileSize()
}

// GridSizeX returns the grid width in tiles. The sparse backing reports its
// extent limit so dense-oriented bounds arithmetic keeps working against it.
func (f *Facade) GridSizeX() int {
	if f.sparse != nil {
		return f.sparse.MaxExtent()
	}
	return f.dense.Width()
}

// GridSizeY returns the grid height in tiles.
func (f *Facade) GridSizeY() int {
	if f.sparse != nil {
		return f.sparse.MaxExtent()
	}
	return f.dense.Height()
}

// ChunkSize returns the tiles-per-chunk-edge count. The sparse backing has no
// chunking and reports 1.
func (f *Facade) ChunkSize() int {
	if f.sparse != nil {
		return 1
	}
	return f.dense.ChunkSize()
}

// DefaultMaterial returns the backing's base material.
func (f *Facade) DefaultMaterial() Material {
	if f.sparse != nil {
		return f.sparse.DefaultMaterial()
	}
	return f.dense.DefaultMaterial()
}

// InBounds reports whether a write at (x, y) would be accepted.
func (f *Facade) InBounds(x, y int) bool {
	if f.sparse != nil {
		return f.sparse.InBounds(x, y)
	}
	return f.dense.inBounds(x, y)
}

// MaterialAt returns the effective material at (x, y): the stored material,
// or the default for an unpainted sparse coordinate. Out-of-bounds dense
// coordinates also report the default.
func (f *Facade) MaterialAt(x, y int) Material {
	if f.sparse != nil {
		if t := f.sparse.TileAt(x, y); t != nil {
			return t.Material()
		}
		return f.sparse.DefaultMaterial()
	}
	if t := f.dense.TileAt(x, y); t != nil {
		return t.Material()
	}
	return f.dense.DefaultMaterial()
}

// PaintedAt reports whether (x, y) holds an explicit entry. Dense backings
// have no unpainted state, so every in-bounds coordinate counts as painted.
func (f *Facade) PaintedAt(x, y int) bool {
	if f.sparse != nil {
		return f.sparse.TileAt(x, y) != nil
	}
	return f.dense.inBounds(x, y)
}

// SetMaterial writes the material at (x, y) through to the backing and fires
// the invalidation hook on success.
func (f *Facade) SetMaterial(x, y int, m Material) bool {
	var ok bool
	if f.sparse != nil {
		ok = f.sparse.SetTile(x, y, m)
	} else {
		ok = f.dense.SetTile(x, y, m)
	}
	if ok {
		f.InvalidateCache()
	}
	return ok
}

// Erase reverts (x, y) to its unpainted state: the sparse backing removes the
// entry entirely, the dense backing resets to the default material (its
// closest equivalent). Reports whether anything actually changed; a tile
// already absent or already at the default is not a change.
func (f *Facade) Erase(x, y int) bool {
	if f.sparse != nil {
		if f.sparse.TileAt(x, y) == nil {
			return false
		}
		f.sparse.DeleteTile(x, y)
		f.InvalidateCache()
		return true
	}
	t := f.dense.TileAt(x, y)
	if t == nil || t.Material() == f.dense.DefaultMaterial() {
		return false
	}
	t.SetMaterial(f.dense.DefaultMaterial())
	f.InvalidateCache()
	return true
}

// TileHandle is a positional view of one coordinate through the facade.
// For an unpainted sparse coordinate the handle is transient — it reports the
// default material, and a SetMaterial through it writes a real entry back
// into the store rather than discarding the mutation.
type TileHandle struct {
	f *Facade
	x int
	y int
}

// TileAt resolves a positional [x, y] pair into a handle. Malformed pairs
// (wrong arity) are a call-site bug and fail with an error rather than being
// truncated or defaulted.
func (f *Facade) TileAt(coords []int) (TileHandle, error) {
	c, err := CoordFromSlice(coords)
	if err != nil {
		return TileHandle{}, fmt.Errorf("facade tile lookup: %w", err)
	}
	return TileHandle{f: f, x: c.X, y: c.Y}, nil
}

// Coord returns the handle's position.
func (h TileHandle) Coord() TileCoord { return TileCoord{X: h.x, Y: h.y} }

// GetMaterial returns the effective material at the handle's position.
func (h TileHandle) GetMaterial() Material {
	return h.f.MaterialAt(h.x, h.y)
}

// SetMaterial writes through to the backing. Same rejection rules as
// Facade.SetMaterial.
func (h TileHandle) SetMaterial(m Material) bool {
	return h.f.SetMaterial(h.x, h.y, m)
}

// AssignWeight re-derives the stored tile's weight from its material.
// A no-op for unpainted sparse coordinates, which have no stored tile.
func (h TileHandle) AssignWeight() {
	var t *Tile
	if h.f.sparse != nil {
		t = h.f.sparse.TileAt(h.x, h.y)
	} else {
		t = h.f.dense.TileAt(h.x, h.y)
	}
	if t != nil {
		t.AssignWeight()
	}
}

// Weight returns the pathing cost at the handle's position; unpainted
// coordinates cost whatever the default material costs.
func (h TileHandle) Weight() int {
	var t *Tile
	if h.f.sparse != nil {
		t = h.f.sparse.TileAt(h.x, h.y)
	} else {
		t = h.f.dense.TileAt(h.x, h.y)
	}
	if t != nil {
		return t.Weight()
	}
	return materialWeight(h.f.DefaultMaterial())
}
