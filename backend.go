package slate

import "fmt"

// Backend is the terminal driver boundary. The core performs no I/O of
// its own: a render loop feeds Diff's output straight into Draw. A real
// implementation wraps a terminal (raw mode, ANSI emission); TestBackend
// below applies updates to an in-memory buffer instead.
type Backend interface {
	// Draw applies an ordered sequence of cell updates to the display.
	Draw(updates []CellUpdate) error
	// Size returns the current display dimensions.
	Size() (Size, error)
	GetCursorPosition() (Position, error)
	SetCursorPosition(p Position) error
	ShowCursor() error
	HideCursor() error
	// Clear blanks the entire display.
	Clear() error
	// Flush pushes any buffered output to the display.
	Flush() error
}

// TestBackend is an in-memory Backend for tests: it keeps the frame the
// display would show, so assertions can compare it against an expected
// buffer after a draw cycle.
type TestBackend struct {
	buffer        *Buffer
	cursor        Position
	cursorVisible bool
}

var _ Backend = (*TestBackend)(nil)

// NewTestBackend returns a backend displaying a blank width x height frame.
func NewTestBackend(width, height uint16) *TestBackend {
	return &TestBackend{buffer: NewBuffer(NewRect(width, height))}
}

// Buffer exposes the displayed frame for assertions.
func (t *TestBackend) Buffer() *Buffer {
	return t.buffer
}

// Resize changes the displayed frame's dimensions, preserving content
// that still fits.
func (t *TestBackend) Resize(width, height uint16) {
	t.buffer.Resize(NewRect(width, height))
}

// Draw implements Backend.
func (t *TestBackend) Draw(updates []CellUpdate) error {
	for _, u := range updates {
		if t.buffer.Cell(Position{X: u.X, Y: u.Y}) == nil {
			return fmt.Errorf("draw outside display: (%d,%d) not in %s", u.X, u.Y, t.buffer.Area())
		}
	}
	t.buffer.ApplyUpdates(updates)
	return nil
}

// Size implements Backend.
func (t *TestBackend) Size() (Size, error) {
	return t.buffer.Area().Size(), nil
}

// GetCursorPosition implements Backend.
func (t *TestBackend) GetCursorPosition() (Position, error) {
	return t.cursor, nil
}

// SetCursorPosition implements Backend.
func (t *TestBackend) SetCursorPosition(p Position) error {
	t.cursor = p
	return nil
}

// ShowCursor implements Backend.
func (t *TestBackend) ShowCursor() error {
	t.cursorVisible = true
	return nil
}

// HideCursor implements Backend.
func (t *TestBackend) HideCursor() error {
	t.cursorVisible = false
	return nil
}

// CursorVisible reports whether the cursor is shown.
func (t *TestBackend) CursorVisible() bool {
	return t.cursorVisible
}

// Clear implements Backend.
func (t *TestBackend) Clear() error {
	t.buffer.Reset()
	return nil
}

// Flush implements Backend. The in-memory display has nothing buffered.
func (t *TestBackend) Flush() error {
	return nil
}
