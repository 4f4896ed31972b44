package slate

import "unicode/utf8"

// Box drawing runes.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
	BoxDoubleHorizontal   = '═'
	BoxDoubleVertical     = '║'
	BoxDoubleTopLeft      = '╔'
	BoxDoubleTopRight     = '╗'
	BoxDoubleBottomLeft   = '╚'
	BoxDoubleBottomRight  = '╝'
	BoxThickHorizontal    = '━'
	BoxThickVertical      = '┃'
	BoxThickTopLeft       = '┏'
	BoxThickTopRight      = '┓'
	BoxThickBottomLeft    = '┗'
	BoxThickBottomRight   = '┛'
)

// Junction runes produced by merging borders.
const (
	BoxTeeDown  = '┬'
	BoxTeeUp    = '┴'
	BoxTeeRight = '├'
	BoxTeeLeft  = '┤'
	BoxCross    = '┼'
)

// borderEdges categorizes each light line-drawing rune by the edges it
// connects. Bits: 1=top, 2=right, 4=bottom, 8=left. Process-constant
// data; MergeBorder is a pure function over it.
var borderEdges = map[rune]uint8{
	BoxHorizontal:  0b1010,
	BoxVertical:    0b0101,
	BoxTopLeft:     0b0110,
	BoxTopRight:    0b1100,
	BoxBottomLeft:  0b0011,
	BoxBottomRight: 0b1001,
	BoxTeeDown:     0b1110,
	BoxTeeUp:       0b1011,
	BoxTeeRight:    0b0111,
	BoxTeeLeft:     0b1101,
	BoxCross:       0b1111,
	// Rounded corners connect the same edges as square ones.
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

// edgesToBorder maps edge sets back to the rune that draws them.
var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// MergeBorder combines two line-drawing runes into the junction that
// connects both of their edge sets. The second return is false when
// either rune is not a known border rune or the union has no glyph, in
// which case the incoming rune wins.
func MergeBorder(existing, incoming rune) (rune, bool) {
	existingEdges, ok1 := borderEdges[existing]
	incomingEdges, ok2 := borderEdges[incoming]
	if !ok1 || !ok2 {
		return incoming, false
	}
	if merged, ok := edgesToBorder[existingEdges|incomingEdges]; ok {
		return merged, true
	}
	return incoming, false
}

// BorderStyle is the set of runes used to draw a rectangular border.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
	BorderDouble = BorderStyle{
		Horizontal:  BoxDoubleHorizontal,
		Vertical:    BoxDoubleVertical,
		TopLeft:     BoxDoubleTopLeft,
		TopRight:    BoxDoubleTopRight,
		BottomLeft:  BoxDoubleBottomLeft,
		BottomRight: BoxDoubleBottomRight,
	}
	BorderThick = BorderStyle{
		Horizontal:  BoxThickHorizontal,
		Vertical:    BoxThickVertical,
		TopLeft:     BoxThickTopLeft,
		TopRight:    BoxThickTopRight,
		BottomLeft:  BoxThickBottomLeft,
		BottomRight: BoxThickBottomRight,
	}
)

// setBorderRune writes a border rune at (x, y), joining with any border
// rune already in the cell.
func (b *Buffer) setBorderRune(x, y uint16, r rune, style Style) {
	cell := b.Cell(Position{X: x, Y: y})
	if cell == nil {
		return
	}
	if existing, size := utf8.DecodeRuneInString(cell.Symbol); size == len(cell.Symbol) {
		if merged, ok := MergeBorder(existing, r); ok {
			r = merged
		}
	}
	cell.SetSymbol(string(r))
	cell.Style = style
}

// DrawBorder draws a border on the inside edge of area, joining with
// borders already present so adjacent boxes share junction characters.
// Areas smaller than 2x2 have no room for a border and are left alone.
func (b *Buffer) DrawBorder(area Rect, border BorderStyle, style Style) {
	area = area.Intersection(b.area)
	if area.Width < 2 || area.Height < 2 {
		return
	}
	left, right := area.Left(), area.Right()-1
	top, bottom := area.Top(), area.Bottom()-1

	b.setBorderRune(left, top, border.TopLeft, style)
	b.setBorderRune(right, top, border.TopRight, style)
	b.setBorderRune(left, bottom, border.BottomLeft, style)
	b.setBorderRune(right, bottom, border.BottomRight, style)

	for x := left + 1; x < right; x++ {
		b.setBorderRune(x, top, border.Horizontal, style)
		b.setBorderRune(x, bottom, border.Horizontal, style)
	}
	for y := top + 1; y < bottom; y++ {
		b.setBorderRune(left, y, border.Vertical, style)
		b.setBorderRune(right, y, border.Vertical, style)
	}
}
