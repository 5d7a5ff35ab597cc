package terrain

// FillMode selects the procedural pattern a DenseChunkGrid is seeded with.
type FillMode uint8

const (
	FillFlat         FillMode = iota // every tile gets the default material
	FillColumns                      // periodic vertical stone columns
	FillCheckerboard                 // alternating default / dirt cells
	FillNoise                        // simplex-noise terrain bands
	fillModeCount                    // sentinel
)

var fillModeNames = [fillModeCount]string{
	FillFlat:         "flat",
	FillColumns:      "columns",
	FillCheckerboard: "checkerboard",
	FillNoise:        "noise",
}

func (f FillMode) String() string {
	if f >= fillModeCount {
		return "flat"
	}
	return fillModeNames[f]
}

// ParseFillMode resolves a fill mode name. Unknown names report false.
func ParseFillMode(name string) (FillMode, bool) {
	for i := FillMode(0); i < fillModeCount; i++ {
		if fillModeNames[i] == name {
			return i, true
		}
	}
	return FillFlat, false
}

// DenseConfig sizes a DenseChunkGrid. Zero values take defaults.
type DenseConfig struct {
	ChunksX         int      // chunk columns
	ChunksY         int      // chunk rows
	ChunkSize       int      // tiles per chunk edge
	TileSize        int      // pixel edge length of a tile
	DefaultMaterial Material // base material for flat areas
	Fill            FillMode
	Seed            int64 // noise seed, FillNoise only
}

// denseChunk owns a fixed square of tiles. Tiles are stored by value,
// row-major within the chunk.
type denseChunk struct {
	tiles []Tile // index = localY*size + localX
}

// DenseChunkGrid is the eagerly allocated terrain backing: every cell of
// every chunk holds a valid tile from construction onward — there is no
// unpainted state. Coordinates run 0..Width-1 / 0..Height-1.
type DenseChunkGrid struct {
	chunks          []denseChunk // index = chunkY*chunksX + chunkX
	chunksX         int
	chunksY         int
	chunkSize       int
	tileSize        int
	defaultMaterial Material
	fill            FillMode
}

// NewDenseChunkGrid allocates and procedurally fills every chunk up front.
func NewDenseChunkGrid(cfg DenseConfig) *DenseChunkGrid {
	if cfg.ChunksX <= 0 {
		cfg.ChunksX = 4
	}
	if cfg.ChunksY <= 0 {
		cfg.ChunksY = 4
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 16
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = DefaultTileSize
	}
	if !cfg.DefaultMaterial.Valid() {
		cfg.DefaultMaterial = MaterialGrass
	}
	g := &DenseChunkGrid{
		chunks:          make([]denseChunk, cfg.ChunksX*cfg.ChunksY),
		chunksX:         cfg.ChunksX,
		chunksY:         cfg.ChunksY,
		chunkSize:       cfg.ChunkSize,
		tileSize:        cfg.TileSize,
		defaultMaterial: cfg.DefaultMaterial,
		fill:            cfg.Fill,
	}
	cells := cfg.ChunkSize * cfg.ChunkSize
	for i := range g.chunks {
		g.chunks[i].tiles = make([]Tile, cells)
	}
	g.generate(cfg.Seed)
	return g
}

// generate stamps the fill pattern over the whole grid.
func (g *DenseChunkGrid) generate(seed int64) {
	var sn *simplexNoise
	if g.fill == FillNoise {
		sn = newSimplexNoise(seed)
	}
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := g.defaultMaterial
			switch g.fill {
			case FillColumns:
				if x%4 == 0 {
					m = MaterialStone
				}
			case FillCheckerboard:
				if (x+y)%2 == 0 {
					m = MaterialDirt
				}
			case FillNoise:
				m = noiseMaterial(sn.fractal(float64(x), float64(y), 0.05, 4, 2.0, 0.5), g.defaultMaterial)
			}
			t := g.TileAt(x, y)
			t.SetMaterial(m)
		}
	}
}

// noiseMaterial bands a [0,1] noise sample into terrain materials.
func noiseMaterial(v float64, base Material) Material {
	switch {
	case v < 0.25:
		return MaterialWater
	case v < 0.35:
		return MaterialSand
	case v < 0.70:
		return base
	case v < 0.85:
		return MaterialDirt
	default:
		return MaterialStone
	}
}

// Width returns the grid width in tiles.
func (g *DenseChunkGrid) Width() int { return g.chunksX * g.chunkSize }

// Height returns the grid height in tiles.
func (g *DenseChunkGrid) Height() int { return g.chunksY * g.chunkSize }

// ChunkSize returns the tiles-per-chunk-edge count.
func (g *DenseChunkGrid) ChunkSize() int { return g.chunkSize }

// TileSize returns the pixel edge length of a tile.
func (g *DenseChunkGrid) TileSize() int { return g.tileSize }

// DefaultMaterial returns the grid's base material.
func (g *DenseChunkGrid) DefaultMaterial() Material { return g.defaultMaterial }

// inBounds reports whether (x, y) is inside the grid.
func (g *DenseChunkGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// TileAt returns a pointer to the tile at (x, y), or nil if out of bounds.
// Unlike the sparse store, an in-bounds coordinate always has a tile.
func (g *DenseChunkGrid) TileAt(x, y int) *Tile {
	if !g.inBounds(x, y) {
		return nil
	}
	cx, cy := x/g.chunkSize, y/g.chunkSize
	lx, ly := x%g.chunkSize, y%g.chunkSize
	return &g.chunks[cy*g.chunksX+cx].tiles[ly*g.chunkSize+lx]
}

// SetTile overwrites the material at (x, y). Out-of-bounds coordinates and
// invalid materials are rejected with false and no change.
func (g *DenseChunkGrid) SetTile(x, y int, m Material) bool {
	t := g.TileAt(x, y)
	if t == nil {
		return false
	}
	return t.SetMaterial(m)
}
