package app

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"antfarm/internal/terrain"
)

// SpriteCache memoizes rendered tile sprites keyed by material and pixel
// size. Zooming changes the tile size every frame range, so sprites are
// evicted by cost rather than held forever.
type SpriteCache struct {
	cache *ristretto.Cache[uint64, *ebiten.Image]
}

// NewSpriteCache sizes the cache in pixels of sprite area.
func NewSpriteCache() (*SpriteCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[uint64, *ebiten.Image]{
		NumCounters: 1 << 12,
		MaxCost:     8 << 20, // pixel budget across all cached sprites
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &SpriteCache{cache: c}, nil
}

func spriteKey(m terrain.Material, size int) uint64 {
	return uint64(m)<<32 | uint64(uint32(size))
}

// Tile returns the sprite for a material at the given pixel size, rendering
// and caching it on a miss.
func (sc *SpriteCache) Tile(m terrain.Material, size int) *ebiten.Image {
	if size < 1 {
		size = 1
	}
	key := spriteKey(m, size)
	if img, ok := sc.cache.Get(key); ok {
		return img
	}
	img := renderTileSprite(m, size)
	sc.cache.Set(key, img, int64(size*size))
	return img
}

// Close releases the cache's internal goroutines.
func (sc *SpriteCache) Close() {
	sc.cache.Close()
}

// renderTileSprite draws one tile: style fill plus the style's accent pattern.
func renderTileSprite(m terrain.Material, size int) *ebiten.Image {
	st := terrain.StyleFor(m)
	img := ebiten.NewImage(size, size)
	img.Fill(st.Fill)

	s := float32(size)
	switch st.Pattern {
	case terrain.PatternSpeckle:
		// Fixed dot layout; cheap and stable across frames.
		for _, p := range [][2]float32{{0.25, 0.3}, {0.7, 0.15}, {0.5, 0.65}, {0.15, 0.8}, {0.85, 0.75}} {
			vector.FillRect(img, p[0]*s, p[1]*s, s/8+1, s/8+1, st.Accent, false)
		}
	case terrain.PatternRipple:
		for i := 1; i <= 3; i++ {
			y := s * float32(i) / 4
			vector.StrokeLine(img, 0, y, s, y, 1, st.Accent, false)
		}
	case terrain.PatternGrain:
		for i := 1; i <= 3; i++ {
			x := s * float32(i) / 4
			vector.StrokeLine(img, x, 0, x-s/4, s, 1, st.Accent, false)
		}
	}
	return img
}
