package terrain

import "image/color"

// Material identifies the surface type of a tile.
type Material uint8

const (
	MaterialGrass  Material = iota // Default open ground
	MaterialDirt                   // Bare packed earth
	MaterialSand                   // Loose sand, slow digging
	MaterialStone                  // Solid rock, near-impassable
	MaterialWater                  // Shallow water
	MaterialTunnel                 // Excavated colony tunnel
	MaterialNest                   // Nest chamber floor
	MaterialFood                   // Food deposit
	materialCount                  // sentinel
)

// materialNames is the canonical string tag for each material, used in
// snapshots and anywhere a material crosses a serialization boundary.
var materialNames = [materialCount]string{
	MaterialGrass:  "grass",
	MaterialDirt:   "dirt",
	MaterialSand:   "sand",
	MaterialStone:  "stone",
	MaterialWater:  "water",
	MaterialTunnel: "tunnel",
	MaterialNest:   "nest",
	MaterialFood:   "food",
}

// materialByName is the reverse lookup, built once at startup.
var materialByName = func() map[string]Material {
	m := make(map[string]Material, materialCount)
	for i := Material(0); i < materialCount; i++ {
		m[materialNames[i]] = i
	}
	return m
}()

// String returns the canonical tag for the material, or "" if invalid.
func (m Material) String() string {
	if !m.Valid() {
		return ""
	}
	return materialNames[m]
}

// Valid reports whether m is a member of the closed material palette.
func (m Material) Valid() bool {
	return m < materialCount
}

// ParseMaterial resolves a string tag to a Material. Unknown tags report false.
func ParseMaterial(name string) (Material, bool) {
	m, ok := materialByName[name]
	return m, ok
}

// materialWeight returns the pathing cost for a material. Higher = slower.
// Every material has a positive weight; impassability is expressed as a very
// high cost rather than a separate flag.
func materialWeight(m Material) int {
	switch m {
	case MaterialGrass:
		return 1
	case MaterialDirt:
		return 1
	case MaterialSand:
		return 2
	case MaterialStone:
		return 8
	case MaterialWater:
		return 6
	case MaterialTunnel:
		return 1
	case MaterialNest:
		return 1
	case MaterialFood:
		return 2
	default:
		return 1
	}
}

// materialColour returns the base RGB colour for a material.
func materialColour(m Material) (r, g, b uint8) {
	switch m {
	case MaterialGrass:
		return 56, 94, 46
	case MaterialDirt:
		return 92, 68, 44
	case MaterialSand:
		return 168, 148, 98
	case MaterialStone:
		return 104, 104, 108
	case MaterialWater:
		return 42, 72, 120
	case MaterialTunnel:
		return 54, 38, 26
	case MaterialNest:
		return 74, 48, 30
	case MaterialFood:
		return 150, 120, 40
	default:
		return 56, 94, 46
	}
}

// StylePattern selects how a renderer texture-fills a tile of a material.
type StylePattern uint8

const (
	PatternSolid   StylePattern = iota // flat fill
	PatternSpeckle                     // scattered accent dots
	PatternRipple                      // horizontal accent lines
	PatternGrain                       // diagonal accent lines
)

// MaterialStyle is the render capability attached to a material: the fill
// and accent colours plus the fill pattern. Renderers draw from this rather
// than switching on the material themselves.
type MaterialStyle struct {
	Fill    color.RGBA
	Accent  color.RGBA
	Pattern StylePattern
}

// materialStyles is the startup-built style table, indexed by Material.
var materialStyles = func() [materialCount]MaterialStyle {
	var table [materialCount]MaterialStyle
	patterns := [materialCount]StylePattern{
		MaterialGrass:  PatternSpeckle,
		MaterialDirt:   PatternSolid,
		MaterialSand:   PatternGrain,
		MaterialStone:  PatternSolid,
		MaterialWater:  PatternRipple,
		MaterialTunnel: PatternSolid,
		MaterialNest:   PatternSpeckle,
		MaterialFood:   PatternSpeckle,
	}
	for i := Material(0); i < materialCount; i++ {
		r, g, b := materialColour(i)
		table[i] = MaterialStyle{
			Fill:    color.RGBA{R: r, G: g, B: b, A: 255},
			Accent:  color.RGBA{R: accent(r), G: accent(g), B: accent(b), A: 255},
			Pattern: patterns[i],
		}
	}
	return table
}()

// accent lightens a colour channel for pattern detail.
func accent(c uint8) uint8 {
	v := int(c) + 28
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// StyleFor returns the render style for a material. Invalid materials get the
// default material's style so a renderer never has to handle a missing entry.
func StyleFor(m Material) MaterialStyle {
	if !m.Valid() {
		m = MaterialGrass
	}
	return materialStyles[m]
}

// Materials returns the full palette in declaration order, for palette UIs.
func Materials() []Material {
	all := make([]Material, materialCount)
	for i := range all {
		all[i] = Material(i)
	}
	return all
}
