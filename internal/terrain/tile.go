package terrain

// OccupantID identifies an entity (ant, item, marker) standing on a tile.
type OccupantID int

// Tile is one cell of the terrain: a material, a pathing weight, and the set
// of entities currently occupying the cell.
//
// The weight normally tracks the material through the fixed lookup table; an
// explicit SetWeight pins it until the next material change.
type Tile struct {
	material     Material
	weight       int
	weightPinned bool
	occupants    map[OccupantID]struct{}
}

// NewTile creates a tile with the given material and its derived weight.
// Invalid materials fall back to grass; callers that need rejection semantics
// go through SetMaterial.
func NewTile(m Material) *Tile {
	if !m.Valid() {
		m = MaterialGrass
	}
	return &Tile{material: m, weight: materialWeight(m)}
}

// Material returns the tile's current material.
func (t *Tile) Material() Material {
	return t.material
}

// SetMaterial changes the tile's material. Unknown materials are rejected:
// the call reports false and the tile is left untouched. A successful change
// re-derives the weight from the new material, clearing any pinned override.
func (t *Tile) SetMaterial(m Material) bool {
	if !m.Valid() {
		return false
	}
	t.material = m
	t.weight = materialWeight(m)
	t.weightPinned = false
	return true
}

// Weight returns the tile's pathing cost.
func (t *Tile) Weight() int {
	return t.weight
}

// SetWeight pins an explicit pathing cost, overriding the material-derived
// value until the next SetMaterial. Non-positive weights are rejected.
func (t *Tile) SetWeight(w int) bool {
	if w <= 0 {
		return false
	}
	t.weight = w
	t.weightPinned = true
	return true
}

// AssignWeight re-derives the weight from the current material, discarding
// any pinned override.
func (t *Tile) AssignWeight() {
	t.weight = materialWeight(t.material)
	t.weightPinned = false
}

// AddOccupant places an entity on the tile. Reports false if it was already
// present (at most one occurrence of any occupant).
func (t *Tile) AddOccupant(id OccupantID) bool {
	if t.occupants == nil {
		t.occupants = make(map[OccupantID]struct{})
	}
	if _, ok := t.occupants[id]; ok {
		return false
	}
	t.occupants[id] = struct{}{}
	return true
}

// RemoveOccupant takes an entity off the tile. Reports false if absent.
func (t *Tile) RemoveOccupant(id OccupantID) bool {
	if _, ok := t.occupants[id]; !ok {
		return false
	}
	delete(t.occupants, id)
	return true
}

// HasOccupant reports whether the entity is on the tile.
func (t *Tile) HasOccupant(id OccupantID) bool {
	_, ok := t.occupants[id]
	return ok
}

// OccupantCount returns the number of entities on the tile.
func (t *Tile) OccupantCount() int {
	return len(t.occupants)
}
