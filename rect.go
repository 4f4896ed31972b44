package slate

import (
	"fmt"
	"math"
)

// Position is a coordinate on the screen, (0,0) at the top left.
type Position struct {
	X uint16
	Y uint16
}

// Size is a width/height pair.
type Size struct {
	Width  uint16
	Height uint16
}

// Margin is a uniform inset applied per axis.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// Offset is a signed translation applied to a Rect.
type Offset struct {
	X int
	Y int
}

// Rect is a rectangular screen region. Coordinates saturate rather than
// wrap: X+Width and Y+Height never exceed the uint16 range. A zero-area
// rect is valid and means "nothing to render".
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect returns a rect at the origin with the given size.
func NewRect(width, height uint16) Rect {
	return Rect{Width: width, Height: height}
}

// satAdd adds two coordinates, saturating at the uint16 maximum.
func satAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= math.MaxUint16 {
		return uint16(s)
	}
	return math.MaxUint16
}

// satSub subtracts b from a, saturating at zero.
func satSub(a, b uint16) uint16 {
	if a <= b {
		return 0
	}
	return a - b
}

// Area returns the number of cells in the rect. Computed in int so a
// full-range rect does not overflow.
func (r Rect) Area() int {
	return int(r.Width) * int(r.Height)
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left returns the leftmost column (inclusive).
func (r Rect) Left() uint16 {
	return r.X
}

// Right returns the column past the right edge (exclusive), saturating.
func (r Rect) Right() uint16 {
	return satAdd(r.X, r.Width)
}

// Top returns the topmost row (inclusive).
func (r Rect) Top() uint16 {
	return r.Y
}

// Bottom returns the row past the bottom edge (exclusive), saturating.
func (r Rect) Bottom() uint16 {
	return satAdd(r.Y, r.Height)
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Position returns the rect's top-left corner.
func (r Rect) Position() Position {
	return Position{X: r.X, Y: r.Y}
}

// Inner returns the rect shrunk by the margin on each side. Collapses to
// a zero-size rect centered on nothing when the margin doesn't fit.
func (r Rect) Inner(m Margin) Rect {
	doubleH := satAdd(m.Horizontal, m.Horizontal)
	doubleV := satAdd(m.Vertical, m.Vertical)
	if r.Width < doubleH || r.Height < doubleV {
		return Rect{}
	}
	return Rect{
		X:      satAdd(r.X, m.Horizontal),
		Y:      satAdd(r.Y, m.Vertical),
		Width:  satSub(r.Width, doubleH),
		Height: satSub(r.Height, doubleV),
	}
}

// Offset returns the rect moved by the given signed amounts, clamped so
// the rect never leaves the valid coordinate space.
func (r Rect) Offset(o Offset) Rect {
	x := clampCoord(int(r.X)+o.X, int(r.Width))
	y := clampCoord(int(r.Y)+o.Y, int(r.Height))
	r.X = x
	r.Y = y
	return r
}

// clampCoord clamps v into [0, MaxUint16-extent].
func clampCoord(v, extent int) uint16 {
	if v < 0 {
		return 0
	}
	if limit := math.MaxUint16 - extent; v > limit {
		return uint16(limit)
	}
	return uint16(v)
}

// Intersects reports whether the two rects share any cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersection returns the overlapping region of the two rects, or a
// zero rect when they don't overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x1 >= x2 || y1 >= y2 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest rect covering both rects. An empty rect
// contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether the position lies inside the rect.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp returns the rect moved and shrunk as needed to fit inside other.
func (r Rect) Clamp(other Rect) Rect {
	width := min(r.Width, other.Width)
	height := min(r.Height, other.Height)
	x := r.X
	if satAdd(x, width) > other.Right() {
		x = satSub(other.Right(), width)
	}
	x = max(x, other.X)
	y := r.Y
	if satAdd(y, height) > other.Bottom() {
		y = satSub(other.Bottom(), height)
	}
	y = max(y, other.Y)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Rows returns one single-row rect per row, top to bottom.
func (r Rect) Rows() []Rect {
	rows := make([]Rect, 0, r.Height)
	for y := r.Top(); y < r.Bottom(); y++ {
		rows = append(rows, Rect{X: r.X, Y: y, Width: r.Width, Height: 1})
	}
	return rows
}

// Columns returns one single-column rect per column, left to right.
func (r Rect) Columns() []Rect {
	cols := make([]Rect, 0, r.Width)
	for x := r.Left(); x < r.Right(); x++ {
		cols = append(cols, Rect{X: x, Y: r.Y, Width: 1, Height: r.Height})
	}
	return cols
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
