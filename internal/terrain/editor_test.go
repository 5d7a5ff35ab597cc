package terrain

import "testing"

func TestEditor_SingleTilePaint(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	if n := e.Paint(5, 5, MaterialStone, 1); n != 1 {
		t.Fatalf("paint count = %d, want 1", n)
	}
	if s.TileAt(5, 5) == nil || s.TileAt(5, 5).Material() != MaterialStone {
		t.Fatal("tile not painted")
	}
}

func TestEditor_BrushPaintCentering(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	if n := e.Paint(5, 5, MaterialDirt, 3); n != 9 {
		t.Fatalf("3x3 brush painted %d tiles, want 9", n)
	}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if s.TileAt(x, y) == nil {
				t.Fatalf("brush missed (%d,%d)", x, y)
			}
		}
	}
	if s.Len() != 9 {
		t.Fatalf("store holds %d tiles, want 9", s.Len())
	}
}

func TestEditor_BrushErase(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(5, 5, MaterialStone, 3)
	if n := e.Erase(5, 5, 3); n != 9 {
		t.Fatalf("erase count = %d, want 9", n)
	}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if s.TileAt(x, y) != nil {
				t.Fatalf("(%d,%d) still present after erase", x, y)
			}
		}
	}
}

func TestEditor_EraseCountsOnlyChanged(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	// Paint only the centre; a 3x3 erase finds one tile to remove.
	e.Paint(5, 5, MaterialStone, 1)
	if n := e.Erase(5, 5, 3); n != 1 {
		t.Fatalf("erase count = %d, want 1", n)
	}
}

func TestEditor_DenseCornerBrushClips(t *testing.T) {
	// A 3x3 brush at the corner of a dense grid touches only the 4 in-bounds
	// cells; the rest are skipped silently and not counted.
	g := NewDenseChunkGrid(DenseConfig{ChunksX: 1, ChunksY: 1, ChunkSize: 8})
	e := NewEditor(NewDenseFacade(g))
	if n := e.Paint(0, 0, MaterialStone, 3); n != 4 {
		t.Fatalf("corner brush painted %d tiles, want 4", n)
	}
	if n := e.Erase(0, 0, 3); n != 4 {
		t.Fatalf("corner erase changed %d tiles, want 4", n)
	}
}

func TestEditor_SparseBrushClipsAtExtent(t *testing.T) {
	s := newTestStore(10)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(0, 0, MaterialDirt, 1)
	// Brush centred at the extent edge: the x=10 column would stretch the box
	// to 11 wide and is skipped; the rest of the footprint paints.
	if n := e.Paint(9, 0, MaterialDirt, 3); n != 6 {
		t.Fatalf("edge brush painted %d tiles, want 6 (x=10 column clipped)", n)
	}
}

func TestEditor_UndoRestoresWholeStroke(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(5, 5, MaterialStone, 3)
	if !e.Undo() {
		t.Fatal("undo reported nothing to undo")
	}
	if s.Len() != 0 {
		t.Fatalf("one undo left %d tiles; a stroke must revert atomically", s.Len())
	}
}

func TestEditor_UndoRestoresPriorMaterials(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(5, 5, MaterialDirt, 3)
	e.Paint(5, 5, MaterialStone, 1)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if m := s.TileAt(5, 5).Material(); m != MaterialDirt {
		t.Fatalf("centre = %v after undo, want prior dirt", m)
	}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if s.TileAt(x, y) == nil {
				t.Fatalf("(%d,%d) lost by undo of a later stroke", x, y)
			}
		}
	}
}

func TestEditor_UndoErase(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(5, 5, MaterialStone, 1)
	e.Paint(6, 5, MaterialWater, 1)
	e.Erase(5, 5, 3)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if s.TileAt(5, 5) == nil || s.TileAt(5, 5).Material() != MaterialStone {
		t.Fatal("erased stone tile not restored")
	}
	if s.TileAt(6, 5) == nil || s.TileAt(6, 5).Material() != MaterialWater {
		t.Fatal("erased water tile not restored")
	}
}

func TestEditor_RedoReappliesStroke(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(5, 5, MaterialStone, 3)
	e.Undo()
	if !e.Redo() {
		t.Fatal("redo reported nothing to redo")
	}
	if s.Len() != 9 {
		t.Fatalf("redo restored %d tiles, want 9", s.Len())
	}
	if e.Redo() {
		t.Fatal("second redo should report false")
	}
}

func TestEditor_NewStrokeDropsRedoTail(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	e.Paint(0, 0, MaterialStone, 1)
	e.Paint(1, 0, MaterialStone, 1)
	e.Undo()
	e.Paint(2, 0, MaterialStone, 1) // diverge: the undone stroke is gone
	if e.Redo() {
		t.Fatal("redo should be impossible after a new stroke")
	}
	if s.TileAt(1, 0) != nil {
		t.Fatal("undone tile resurrected")
	}
	if s.TileAt(0, 0) == nil || s.TileAt(2, 0) == nil {
		t.Fatal("live strokes lost")
	}
}

func TestEditor_UndoEmptyHistory(t *testing.T) {
	e := NewEditor(NewSparseFacade(newTestStore(100)))
	if e.Undo() {
		t.Fatal("undo on empty history should report false")
	}
	if e.Redo() {
		t.Fatal("redo on empty history should report false")
	}
}

func TestEditor_UndoFiresInvalidation(t *testing.T) {
	f := NewSparseFacade(newTestStore(100))
	fired := 0
	f.SetInvalidateFunc(func() { fired++ })
	e := NewEditor(f)
	e.Paint(5, 5, MaterialStone, 1)
	before := fired
	e.Undo()
	if fired == before {
		t.Fatal("undo must go through the facade write path and invalidate")
	}
}

func TestEditor_InvalidMaterialPaintsNothing(t *testing.T) {
	s := newTestStore(100)
	e := NewEditor(NewSparseFacade(s))
	if n := e.Paint(5, 5, materialCount, 3); n != 0 {
		t.Fatalf("invalid material painted %d tiles", n)
	}
	if s.Len() != 0 {
		t.Fatal("invalid material left tiles behind")
	}
	if e.CanUndo() {
		t.Fatal("no-op stroke should not enter history")
	}
}
