package terrain

import "iter"

// DefaultMaxExtent caps the bounding box of a store when no explicit limit
// is configured (and when a snapshot omits one).
const DefaultMaxExtent = 100

// DefaultTileSize is the pixel edge length of a tile when unconfigured.
const DefaultTileSize = 16

// Bounds is the minimal axis-aligned rectangle containing every stored
// coordinate. Min and Max are inclusive.
type Bounds struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Width returns the inclusive horizontal span of the box.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the inclusive vertical span of the box.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// expandedTo returns the box grown just enough to contain c.
func (b Bounds) expandedTo(c TileCoord) Bounds {
	if c.X < b.MinX {
		b.MinX = c.X
	}
	if c.X > b.MaxX {
		b.MaxX = c.X
	}
	if c.Y < b.MinY {
		b.MinY = c.Y
	}
	if c.Y > b.MaxY {
		b.MaxY = c.Y
	}
	return b
}

// SparseConfig configures a SparseStore. Zero values take defaults.
type SparseConfig struct {
	TileSize        int      // pixel edge length, coordinate conversion only
	DefaultMaterial Material // material reported for unpainted coordinates
	MaxExtent       int      // max width/height of the bounding box
}

// SparseStore maps integer tile coordinates to tiles, allocating entries only
// for coordinates explicitly painted. It tracks a running bounding box and
// refuses any write that would grow the box past MaxExtent, so memory stays
// bounded no matter how large the coordinate space is.
type SparseStore struct {
	tiles           map[TileCoord]*Tile
	tileSize        int
	defaultMaterial Material
	maxExtent       int
	bounds          Bounds
	hasBounds       bool
}

// NewSparseStore creates an empty store. No tiles are pre-populated.
func NewSparseStore(cfg SparseConfig) *SparseStore {
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}
	if cfg.MaxExtent <= 0 {
		cfg.MaxExtent = DefaultMaxExtent
	}
	if !cfg.DefaultMaterial.Valid() {
		cfg.DefaultMaterial = MaterialGrass
	}
	return &SparseStore{
		tiles:           make(map[TileCoord]*Tile),
		tileSize:        cfg.TileSize,
		defaultMaterial: cfg.DefaultMaterial,
		maxExtent:       cfg.MaxExtent,
	}
}

// TileSize returns the configured pixel edge length of a tile.
func (s *SparseStore) TileSize() int { return s.tileSize }

// DefaultMaterial returns the material reported for unpainted coordinates.
func (s *SparseStore) DefaultMaterial() Material { return s.defaultMaterial }

// MaxExtent returns the bounding-box size limit.
func (s *SparseStore) MaxExtent() int { return s.maxExtent }

// Len returns the number of stored tiles: the number of distinct coordinates
// painted and not since deleted.
func (s *SparseStore) Len() int { return len(s.tiles) }

// prospectiveBounds computes the box that would result from adding c, without
// mutating anything. An empty store seeds a 1x1 box at c.
func (s *SparseStore) prospectiveBounds(c TileCoord) Bounds {
	if !s.hasBounds {
		return Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
	}
	return s.bounds.expandedTo(c)
}

// InBounds reports whether painting at (x, y) would be accepted by the
// extent limit. It performs the same prospective-box check as SetTile.
func (s *SparseStore) InBounds(x, y int) bool {
	next := s.prospectiveBounds(TileCoord{X: x, Y: y})
	return next.Width() <= s.maxExtent && next.Height() <= s.maxExtent
}

// SetTile creates or overwrites the tile at (x, y) with the given material.
// The write is rejected — reporting false with the store untouched — when the
// material is not in the palette, or when the resulting bounding box would
// exceed MaxExtent in either axis. The box check runs before any mutation so
// a rejection never leaves a partial write behind.
func (s *SparseStore) SetTile(x, y int, m Material) bool {
	if !m.Valid() {
		return false
	}
	c := TileCoord{X: x, Y: y}
	next := s.prospectiveBounds(c)
	if next.Width() > s.maxExtent || next.Height() > s.maxExtent {
		return false
	}
	if t, ok := s.tiles[c]; ok {
		// Overwrite in place; never a duplicate entry.
		t.SetMaterial(m)
	} else {
		s.tiles[c] = NewTile(m)
	}
	s.bounds = next
	s.hasBounds = true
	return true
}

// TileAt returns the tile stored at (x, y), or nil when the coordinate has
// never been painted. nil is the expected answer for most of the coordinate
// space and is not an error.
func (s *SparseStore) TileAt(x, y int) *Tile {
	return s.tiles[TileCoord{X: x, Y: y}]
}

// DeleteTile removes the entry at (x, y), reverting the coordinate to
// unpainted. Absent coordinates are a no-op. Deleting a tile on the edge of
// the bounding box shrinks it, which needs a full rescan — acceptable since
// the store is sparse and extent-bounded.
func (s *SparseStore) DeleteTile(x, y int) {
	c := TileCoord{X: x, Y: y}
	if _, ok := s.tiles[c]; !ok {
		return
	}
	delete(s.tiles, c)
	onEdge := c.X == s.bounds.MinX || c.X == s.bounds.MaxX ||
		c.Y == s.bounds.MinY || c.Y == s.bounds.MaxY
	if onEdge {
		s.recomputeBounds()
	}
}

// recomputeBounds rescans every stored coordinate to rebuild the box.
func (s *SparseStore) recomputeBounds() {
	s.hasBounds = false
	for c := range s.tiles {
		if !s.hasBounds {
			s.bounds = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
			s.hasBounds = true
			continue
		}
		s.bounds = s.bounds.expandedTo(c)
	}
	if !s.hasBounds {
		s.bounds = Bounds{}
	}
}

// Bounds returns the bounding box of all stored tiles. The second return is
// false when the store is empty, in which case the box is meaningless.
func (s *SparseStore) Bounds() (Bounds, bool) {
	return s.bounds, s.hasBounds
}

// All returns an iterator over every stored tile. Order is unspecified but
// each stored coordinate is yielded exactly once; re-ranging yields the same
// tiles as long as the store is not mutated in between.
func (s *SparseStore) All() iter.Seq2[TileCoord, *Tile] {
	return func(yield func(TileCoord, *Tile) bool) {
		for c, t := range s.tiles {
			if !yield(c, t) {
				return
			}
		}
	}
}

// Clear removes every tile and resets the bounding box.
func (s *SparseStore) Clear() {
	clear(s.tiles)
	s.bounds = Bounds{}
	s.hasBounds = false
}
