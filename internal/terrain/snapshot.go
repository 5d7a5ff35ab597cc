package terrain

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion tags the current snapshot schema.
const SnapshotVersion = "1"

// Snapshot is the serialized form of a terrain store. The tiles list holds
// exactly the painted coordinates — never a dense fill of the bounding box.
type Snapshot struct {
	Version  string           `json:"version"`
	Metadata SnapshotMetadata `json:"metadata"`
	Tiles    []SnapshotTile   `json:"tiles"`
}

// SnapshotMetadata carries the store configuration alongside the tiles.
type SnapshotMetadata struct {
	TileSize        int             `json:"tileSize"`
	DefaultMaterial string          `json:"defaultMaterial"`
	MaxMapSize      int             `json:"maxMapSize,omitempty"`
	Bounds          *SnapshotBounds `json:"bounds"`
}

// SnapshotBounds mirrors Bounds for serialization; nil means an empty store.
type SnapshotBounds struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// SnapshotTile is one painted coordinate.
type SnapshotTile struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Material string `json:"material"`
}

// ExportSnapshot serializes the store: configuration, bounds, and every
// stored tile.
func (s *SparseStore) ExportSnapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Metadata: SnapshotMetadata{
			TileSize:        s.tileSize,
			DefaultMaterial: s.defaultMaterial.String(),
			MaxMapSize:      s.maxExtent,
		},
		Tiles: make([]SnapshotTile, 0, len(s.tiles)),
	}
	if b, ok := s.Bounds(); ok {
		snap.Metadata.Bounds = &SnapshotBounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	}
	for c, t := range s.All() {
		snap.Tiles = append(snap.Tiles, SnapshotTile{X: c.X, Y: c.Y, Material: t.Material().String()})
	}
	return snap
}

// ImportSnapshot replaces the store's entire state with the snapshot's. The
// snapshot is validated in full before any mutation, so a bad snapshot leaves
// the store exactly as it was. A missing maxMapSize defaults to 100.
func (s *SparseStore) ImportSnapshot(snap Snapshot) error {
	maxExtent := snap.Metadata.MaxMapSize
	if maxExtent <= 0 {
		maxExtent = DefaultMaxExtent
	}
	tileSize := snap.Metadata.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	defaultMaterial := MaterialGrass
	if snap.Metadata.DefaultMaterial != "" {
		m, ok := ParseMaterial(snap.Metadata.DefaultMaterial)
		if !ok {
			return fmt.Errorf("snapshot default material %q is not in the palette", snap.Metadata.DefaultMaterial)
		}
		defaultMaterial = m
	}

	// Validate every tile and the collective extent before touching state.
	type loaded struct {
		c TileCoord
		m Material
	}
	tiles := make([]loaded, 0, len(snap.Tiles))
	var box Bounds
	for i, st := range snap.Tiles {
		m, ok := ParseMaterial(st.Material)
		if !ok {
			return fmt.Errorf("snapshot tile %d at (%d,%d): unknown material %q", i, st.X, st.Y, st.Material)
		}
		c := TileCoord{X: st.X, Y: st.Y}
		if i == 0 {
			box = Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}
		} else {
			box = box.expandedTo(c)
		}
		tiles = append(tiles, loaded{c: c, m: m})
	}
	if len(tiles) > 0 && (box.Width() > maxExtent || box.Height() > maxExtent) {
		return fmt.Errorf("snapshot tiles span %dx%d, exceeding max map size %d",
			box.Width(), box.Height(), maxExtent)
	}

	s.Clear()
	s.tileSize = tileSize
	s.defaultMaterial = defaultMaterial
	s.maxExtent = maxExtent
	for _, t := range tiles {
		s.SetTile(t.c.X, t.c.Y, t.m)
	}
	return nil
}

// ExportSnapshot converts the dense grid into the sparse snapshot form,
// keeping only tiles that differ from the default material.
func (g *DenseChunkGrid) ExportSnapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Metadata: SnapshotMetadata{
			TileSize:        g.tileSize,
			DefaultMaterial: g.defaultMaterial.String(),
			MaxMapSize:      max(g.Width(), g.Height()),
		},
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			m := g.TileAt(x, y).Material()
			if m == g.defaultMaterial {
				continue
			}
			snap.Tiles = append(snap.Tiles, SnapshotTile{X: x, Y: y, Material: m.String()})
		}
	}
	if len(snap.Tiles) > 0 {
		b := Bounds{MinX: snap.Tiles[0].X, MinY: snap.Tiles[0].Y, MaxX: snap.Tiles[0].X, MaxY: snap.Tiles[0].Y}
		for _, t := range snap.Tiles[1:] {
			b = b.expandedTo(TileCoord{X: t.X, Y: t.Y})
		}
		snap.Metadata.Bounds = &SnapshotBounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	}
	return snap
}

// EncodeSnapshot renders a snapshot as indented JSON.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses snapshot JSON.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
