package slate

// CellUpdate is one entry in a diff: the cell that must be drawn at
// (X, Y) to bring the previous frame up to date. The Cell pointer aliases
// the next frame's buffer and is only valid until that buffer is mutated.
type CellUpdate struct {
	X    uint16
	Y    uint16
	Cell *Cell
}

// Diff returns the ordered updates that transform this buffer's visible
// content into next's. Unchanged cells are never included and the output
// is row-major (top to bottom, left to right) so backends can move the
// cursor monotonically.
//
// Buffers with different areas are compared over their overlapping region
// only; reconciling mismatched dimensions (via Resize) is the caller's
// job. Wide glyphs need care in three ways:
//
//   - a Skip cell (the trailing half of a wide glyph) is never emitted on
//     its own; emitting the wide cell covers it,
//   - a cell directly after an emitted wide cell is suppressed even when
//     it isn't marked Skip, because the glyph spans its column,
//   - when a wide glyph is replaced by narrow content (or vice versa) the
//     following column is invalidated and re-emitted even if its cell
//     compares equal, since the glyph that overlapped it is gone.
func (b *Buffer) Diff(next *Buffer) []CellUpdate {
	inter := b.area.Intersection(next.area)
	var updates []CellUpdate
	for y := inter.Top(); y < inter.Bottom(); y++ {
		invalidated := 0
		toSkip := 0
		for x := inter.Left(); x < inter.Right(); x++ {
			prev := &b.content[b.Index(x, y)]
			cur := &next.content[next.Index(x, y)]
			if (!cur.ContentEquals(*prev) || invalidated > 0) && toSkip == 0 && !cur.Skip {
				updates = append(updates, CellUpdate{X: x, Y: y, Cell: cur})
			}
			curWidth := cur.Width()
			toSkip = max(curWidth-1, 0)
			affected := max(curWidth, prev.Width())
			invalidated = max(affected, invalidated) - 1
			if invalidated < 0 {
				invalidated = 0
			}
		}
	}
	return updates
}

// ApplyUpdates writes a diff's updates into the buffer. Updates outside
// the buffer's area are dropped. A terminal backend does the equivalent
// of this against the real screen; having it on Buffer lets callers and
// tests replay a diff onto a frame copy.
func (b *Buffer) ApplyUpdates(updates []CellUpdate) {
	for _, u := range updates {
		cell := b.Cell(Position{X: u.X, Y: u.Y})
		if cell == nil {
			continue
		}
		*cell = *u.Cell
		// A wide glyph spans the following column; mark it so the buffer
		// stays consistent with what a terminal would display.
		for j := 1; j < u.Cell.Width(); j++ {
			if follower := b.Cell(Position{X: u.X + uint16(j), Y: u.Y}); follower != nil {
				follower.Reset()
				follower.Skip = true
				follower.Style = u.Cell.Style
			}
		}
	}
}
