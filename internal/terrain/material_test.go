package terrain

import "testing"

func TestMaterial_NameRoundTrip(t *testing.T) {
	for _, m := range Materials() {
		name := m.String()
		if name == "" {
			t.Fatalf("material %d has no name", m)
		}
		back, ok := ParseMaterial(name)
		if !ok || back != m {
			t.Fatalf("ParseMaterial(%q) = %v,%v", name, back, ok)
		}
	}
}

func TestMaterial_ParseUnknown(t *testing.T) {
	if _, ok := ParseMaterial("plutonium"); ok {
		t.Fatal("unknown tag parsed")
	}
	if _, ok := ParseMaterial(""); ok {
		t.Fatal("empty tag parsed")
	}
}

func TestMaterial_WeightsPositive(t *testing.T) {
	for _, m := range Materials() {
		if materialWeight(m) <= 0 {
			t.Fatalf("%v weight = %d, want positive", m, materialWeight(m))
		}
	}
}

func TestMaterial_StyleTableComplete(t *testing.T) {
	for _, m := range Materials() {
		st := StyleFor(m)
		if st.Fill.A != 255 {
			t.Fatalf("%v style has transparent fill", m)
		}
	}
	// Invalid materials resolve to the default style rather than panicking.
	if StyleFor(materialCount) != StyleFor(MaterialGrass) {
		t.Fatal("invalid material should get the default style")
	}
}

func TestTile_SetMaterialRejectsUnknown(t *testing.T) {
	tile := NewTile(MaterialStone)
	if tile.SetMaterial(materialCount) {
		t.Fatal("invalid material accepted")
	}
	if tile.Material() != MaterialStone {
		t.Fatal("rejected set changed the material")
	}
	if tile.Weight() != materialWeight(MaterialStone) {
		t.Fatal("rejected set changed the weight")
	}
}

func TestTile_WeightDerivedAndPinned(t *testing.T) {
	tile := NewTile(MaterialSand)
	if tile.Weight() != materialWeight(MaterialSand) {
		t.Fatalf("weight = %d, want derived", tile.Weight())
	}
	if !tile.SetWeight(42) {
		t.Fatal("explicit weight rejected")
	}
	if tile.Weight() != 42 {
		t.Fatal("pinned weight not applied")
	}
	if tile.SetWeight(0) || tile.SetWeight(-3) {
		t.Fatal("non-positive weight accepted")
	}
	// A material change re-derives the weight, clearing the pin.
	tile.SetMaterial(MaterialWater)
	if tile.Weight() != materialWeight(MaterialWater) {
		t.Fatalf("weight = %d after material change, want derived", tile.Weight())
	}
}

func TestTile_OccupancySet(t *testing.T) {
	tile := NewTile(MaterialGrass)
	if !tile.AddOccupant(7) {
		t.Fatal("first add failed")
	}
	if tile.AddOccupant(7) {
		t.Fatal("duplicate occupant accepted")
	}
	if tile.OccupantCount() != 1 || !tile.HasOccupant(7) {
		t.Fatal("occupancy state wrong")
	}
	if !tile.RemoveOccupant(7) {
		t.Fatal("remove failed")
	}
	if tile.RemoveOccupant(7) {
		t.Fatal("removing an absent occupant reported success")
	}
	if tile.OccupantCount() != 0 {
		t.Fatal("occupant lingered")
	}
}

func TestCoordFromSlice_Arity(t *testing.T) {
	c, err := CoordFromSlice([]int{3, -4})
	if err != nil {
		t.Fatalf("valid pair rejected: %v", err)
	}
	if c.X != 3 || c.Y != -4 {
		t.Fatalf("coord = %v", c)
	}
	for _, bad := range [][]int{nil, {}, {1}, {1, 2, 3}} {
		if _, err := CoordFromSlice(bad); err == nil {
			t.Fatalf("arity %d accepted", len(bad))
		}
	}
}
