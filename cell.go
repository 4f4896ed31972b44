package slate

import "github.com/mattn/go-runewidth"

// Cell is a single character slot on the screen: a grapheme cluster plus
// its style. When a wide (two column) glyph is written, the glyph lives in
// the first cell and the follower cell is marked Skip - it carries no
// visible symbol of its own and the diff engine never emits it directly.
type Cell struct {
	Symbol string
	Style  Style
	Skip   bool
}

// BlankCell returns a cell holding a space with the default style.
func BlankCell() Cell {
	return Cell{Symbol: " ", Style: DefaultStyle()}
}

// NewCell returns a cell holding the given symbol and style.
func NewCell(symbol string, style Style) Cell {
	return Cell{Symbol: symbol, Style: style}
}

// SetSymbol replaces the cell's symbol and clears the skip flag.
func (c *Cell) SetSymbol(symbol string) {
	c.Symbol = symbol
	c.Skip = false
}

// AppendSymbol appends to the cell's symbol. Used to attach zero-width
// combining marks to the grapheme already in the cell.
func (c *Cell) AppendSymbol(symbol string) {
	c.Symbol += symbol
}

// Width returns the display width of the cell's symbol in columns.
// Skip cells report zero.
func (c Cell) Width() int {
	if c.Skip {
		return 0
	}
	return runewidth.StringWidth(c.Symbol)
}

// Reset restores the cell to a blank space with the default style.
func (c *Cell) Reset() {
	c.Symbol = " "
	c.Style = DefaultStyle()
	c.Skip = false
}

// ContentEquals reports whether two cells render identically: same
// symbol, colors and attributes. The skip flag is bookkeeping, not
// content, so it does not participate.
func (c Cell) ContentEquals(other Cell) bool {
	return c.Symbol == other.Symbol && c.Style == other.Style
}
