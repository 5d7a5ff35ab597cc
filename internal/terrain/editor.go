package terrain

// cellEdit records one cell's before/after state within a stroke.
type cellEdit struct {
	x, y         int
	prevMaterial Material
	prevPainted  bool
	nextMaterial Material
	nextPainted  bool
}

// stroke groups every cell changed by a single brush application, so one
// undo reverses the whole brush stroke, not tile by tile.
type stroke []cellEdit

// Editor applies brush-shaped edits to a terrain facade and keeps an
// undo/redo history. History is an index into a stroke list: strokes before
// the cursor are applied, strokes after it are redoable.
type Editor struct {
	f       *Facade
	strokes []stroke
	cursor  int
}

// NewEditor creates an editor over a facade with empty history.
func NewEditor(f *Facade) *Editor {
	return &Editor{f: f}
}

// brushSpan returns the inclusive coordinate range of an N-wide brush
// centred at c. Centring uses a floor(N/2) offset in each direction.
func brushSpan(c, size int) (lo, hi int) {
	lo = c - size/2
	return lo, lo + size - 1
}

// Paint fills the brushSize x brushSize square centred on (x, y) with the
// material. Cells outside the backing's bounds are silently skipped. Returns
// the number of cells painted; a rejected material paints nothing.
func (e *Editor) Paint(x, y int, m Material, brushSize int) int {
	if !m.Valid() || brushSize < 1 {
		return 0
	}
	x0, x1 := brushSpan(x, brushSize)
	y0, y1 := brushSpan(y, brushSize)

	var st stroke
	count := 0
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !e.f.InBounds(cx, cy) {
				continue
			}
			prevPainted := e.f.PaintedAt(cx, cy)
			prev := e.f.MaterialAt(cx, cy)
			if !e.f.SetMaterial(cx, cy, m) {
				continue
			}
			count++
			if prevPainted && prev == m {
				// Repainting the same material: counted, nothing to undo.
				continue
			}
			st = append(st, cellEdit{
				x: cx, y: cy,
				prevMaterial: prev, prevPainted: prevPainted,
				nextMaterial: m, nextPainted: true,
			})
		}
	}
	e.push(st)
	return count
}

// Erase reverts the brush footprint to unpainted (sparse) or the default
// material (dense). Returns the number of cells actually changed; absent or
// already-default cells are skipped and not counted.
func (e *Editor) Erase(x, y int, brushSize int) int {
	if brushSize < 1 {
		return 0
	}
	x0, x1 := brushSpan(x, brushSize)
	y0, y1 := brushSpan(y, brushSize)

	var st stroke
	count := 0
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !e.f.PaintedAt(cx, cy) {
				continue
			}
			prev := e.f.MaterialAt(cx, cy)
			if !e.f.Erase(cx, cy) {
				continue
			}
			count++
			st = append(st, cellEdit{
				x: cx, y: cy,
				prevMaterial: prev, prevPainted: true,
				nextPainted: false,
			})
		}
	}
	e.push(st)
	return count
}

// push appends a stroke to the history, discarding any redoable tail.
// Strokes that changed nothing are not recorded.
func (e *Editor) push(st stroke) {
	if len(st) == 0 {
		return
	}
	e.strokes = append(e.strokes[:e.cursor], st)
	e.cursor = len(e.strokes)
}

// Undo reverses the most recent stroke in one call. Restoration goes through
// the same facade write path as normal edits, so cache invalidation fires.
// Reports false when there is nothing to undo.
func (e *Editor) Undo() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	st := e.strokes[e.cursor]
	for i := len(st) - 1; i >= 0; i-- {
		ed := st[i]
		if ed.prevPainted {
			e.f.SetMaterial(ed.x, ed.y, ed.prevMaterial)
		} else {
			e.f.Erase(ed.x, ed.y)
		}
	}
	return true
}

// Redo re-applies the most recently undone stroke. Reports false when there
// is nothing to redo.
func (e *Editor) Redo() bool {
	if e.cursor >= len(e.strokes) {
		return false
	}
	st := e.strokes[e.cursor]
	for _, ed := range st {
		if ed.nextPainted {
			e.f.SetMaterial(ed.x, ed.y, ed.nextMaterial)
		} else {
			e.f.Erase(ed.x, ed.y)
		}
	}
	e.cursor++
	return true
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.cursor > 0 }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.cursor < len(e.strokes) }
