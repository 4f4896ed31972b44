package slate

import (
	"fmt"
	"math"
	"strings"
)

// Buffer is a row-major grid of cells bound to an area of the screen.
// content[i] corresponds to position (area.X + i % width, area.Y + i / width).
// A buffer is exclusively owned by one render pass; double buffering
// (keeping a previous and a current frame and diffing them) is the
// caller's responsibility.
type Buffer struct {
	area    Rect
	content []Cell
}

// NewBuffer returns a buffer covering area with every cell blank.
func NewBuffer(area Rect) *Buffer {
	return NewFilledBuffer(area, BlankCell())
}

// NewFilledBuffer returns a buffer covering area with every cell set to cell.
func NewFilledBuffer(area Rect, cell Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = cell
	}
	return &Buffer{area: area, content: content}
}

// BufferFromLines builds a buffer from literal rows of text, sized to fit.
// Intended for tests and examples.
func BufferFromLines(lines ...string) *Buffer {
	width := 0
	for _, line := range lines {
		width = max(width, StringWidth(line))
	}
	b := NewBuffer(NewRect(uint16(width), uint16(len(lines))))
	for y, line := range lines {
		b.SetString(0, uint16(y), line, DefaultStyle())
	}
	return b
}

// Area returns the screen region the buffer covers.
func (b *Buffer) Area() Rect {
	return b.area
}

// Index converts screen coordinates to a content index. Out-of-bounds
// coordinates are a caller bug and panic; callers clip to Area first.
func (b *Buffer) Index(x, y uint16) int {
	if !b.area.Contains(Position{X: x, Y: y}) {
		panic(fmt.Sprintf("slate: position (%d,%d) outside buffer area %s", x, y, b.area))
	}
	return int(y-b.area.Y)*int(b.area.Width) + int(x-b.area.X)
}

// PosOf converts a content index back to screen coordinates.
func (b *Buffer) PosOf(i int) (x, y uint16) {
	if i < 0 || i >= len(b.content) {
		panic(fmt.Sprintf("slate: index %d outside buffer of length %d", i, len(b.content)))
	}
	x = b.area.X + uint16(i%int(b.area.Width))
	y = b.area.Y + uint16(i/int(b.area.Width))
	return x, y
}

// CellAt returns the cell at the given screen coordinates. Panics when
// out of bounds, like Index.
func (b *Buffer) CellAt(x, y uint16) *Cell {
	return &b.content[b.Index(x, y)]
}

// Cell returns the cell at p, or nil when p is outside the buffer.
func (b *Buffer) Cell(p Position) *Cell {
	if !b.area.Contains(p) {
		return nil
	}
	return &b.content[b.Index(p.X, p.Y)]
}

// SetString writes text left to right starting at (x, y), clipped to the
// buffer's right edge. Returns the column after the last cell written.
func (b *Buffer) SetString(x, y uint16, s string, style Style) uint16 {
	return b.SetStringN(x, y, s, math.MaxInt, style)
}

// SetStringN writes at most maxWidth columns of text starting at (x, y)
// and returns the column after the last cell written.
//
// Text is written one grapheme cluster at a time. A two-column cluster
// occupies its cell plus a Skip-marked follower; a cluster that would
// cross the right edge (or exceed maxWidth) is dropped entirely rather
// than spilling onto the next row. Zero-width clusters are appended to
// the previously written cell's symbol; with no previous cell they are
// dropped. Control characters are filtered.
func (b *Buffer) SetStringN(x, y uint16, s string, maxWidth int, style Style) uint16 {
	if y < b.area.Top() || y >= b.area.Bottom() || x >= b.area.Right() {
		return x
	}
	if x < b.area.Left() {
		x = b.area.Left()
	}
	remaining := min(maxWidth, int(b.area.Right())-int(x))
	last := -1
	for gr, w := range Graphemes(s) {
		if isControl(gr) {
			continue
		}
		if w == 0 {
			if last >= 0 {
				b.content[last].AppendSymbol(gr)
			}
			continue
		}
		if w > remaining {
			break
		}
		idx := b.Index(x, y)
		cell := &b.content[idx]
		if w == 1 && cell.Width() == 2 {
			// Overwriting a wide primary with narrow content orphans its
			// Skip follower; clear it so reads within the same frame stay
			// consistent.
			if fi := idx + 1; fi < len(b.content) && b.content[fi].Skip {
				b.content[fi].Reset()
			}
		}
		cell.SetSymbol(gr)
		cell.Style = style
		for j := 1; j < w; j++ {
			follower := &b.content[idx+j]
			follower.Reset()
			follower.Skip = true
			follower.Style = style
		}
		x += uint16(w)
		remaining -= w
		last = idx
	}
	return x
}

// Span is a run of text with a single style, for mixed-style lines.
type Span struct {
	Text  string
	Style Style
}

// SetSpans writes consecutive styled runs starting at (x, y), clipped to
// maxWidth columns in total. Returns the column after the last cell.
func (b *Buffer) SetSpans(x, y uint16, spans []Span, maxWidth int) uint16 {
	remaining := maxWidth
	for _, span := range spans {
		if remaining <= 0 {
			break
		}
		next := b.SetStringN(x, y, span.Text, remaining, span.Style)
		remaining -= int(next - x)
		x = next
	}
	return x
}

// SetStyle applies style to every cell in the intersection of area and
// the buffer, leaving symbols untouched.
func (b *Buffer) SetStyle(area Rect, style Style) {
	inter := b.area.Intersection(area)
	for y := inter.Top(); y < inter.Bottom(); y++ {
		for x := inter.Left(); x < inter.Right(); x++ {
			b.content[b.Index(x, y)].Style = style
		}
	}
}

// Fill sets every cell in the buffer to cell.
func (b *Buffer) Fill(cell Cell) {
	for i := range b.content {
		b.content[i] = cell
	}
}

// Reset restores every cell to blank. Call at the start of a frame before
// widgets render, so stale content from the previous frame never leaks
// into the diff.
func (b *Buffer) Reset() {
	b.Fill(BlankCell())
}

// Resize rebinds the buffer to a new area, preserving cells in the
// intersection of the old and new areas and blanking the rest.
func (b *Buffer) Resize(area Rect) {
	if area == b.area {
		return
	}
	next := make([]Cell, area.Area())
	blank := BlankCell()
	for i := range next {
		next[i] = blank
	}
	inter := b.area.Intersection(area)
	for y := inter.Top(); y < inter.Bottom(); y++ {
		for x := inter.Left(); x < inter.Right(); x++ {
			ni := int(y-area.Y)*int(area.Width) + int(x-area.X)
			next[ni] = b.content[b.Index(x, y)]
		}
	}
	b.area = area
	b.content = next
}

// Merge overlays other's cells onto the buffer at other's own offset,
// overwriting in place. Cells of other that fall outside the buffer's
// area are dropped. Used to compose buffers rendered independently.
func (b *Buffer) Merge(other *Buffer) {
	inter := b.area.Intersection(other.area)
	for y := inter.Top(); y < inter.Bottom(); y++ {
		for x := inter.Left(); x < inter.Right(); x++ {
			b.content[b.Index(x, y)] = other.content[other.Index(x, y)]
		}
	}
}

// String returns the buffer contents as rows of text, for tests and
// debugging. Skip cells contribute nothing: the wide glyph before them
// already spans their column.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		if y > b.area.Top() {
			sb.WriteByte('\n')
		}
		for x := b.area.Left(); x < b.area.Right(); x++ {
			cell := b.content[b.Index(x, y)]
			if cell.Skip {
				continue
			}
			sb.WriteString(cell.Symbol)
		}
	}
	return sb.String()
}

// Equal reports whether two buffers cover the same area with identical
// content.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.area != other.area {
		return false
	}
	for i := range b.content {
		if b.content[i] != other.content[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	content := make([]Cell, len(b.content))
	copy(content, b.content)
	return &Buffer{area: b.area, content: content}
}
