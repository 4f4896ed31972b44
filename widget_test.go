package slate

import "testing"

// label renders a single line of text at the top of its area.
type label struct {
	text  string
	style Style
}

func (l label) Render(area Rect, buf *Buffer) {
	buf.SetStringN(area.X, area.Y, l.text, int(area.Width), l.style)
}

// scrollList renders visible lines from an offset kept in caller-owned
// state, nudging the offset back in range when it has drifted.
type scrollList struct {
	lines []string
}

type scrollState struct {
	Offset int
}

func (s scrollList) Render(area Rect, buf *Buffer, state *scrollState) {
	maxOffset := max(len(s.lines)-int(area.Height), 0)
	if state.Offset > maxOffset {
		state.Offset = maxOffset
	}
	for row := uint16(0); row < area.Height; row++ {
		i := state.Offset + int(row)
		if i >= len(s.lines) {
			break
		}
		buf.SetStringN(area.X, area.Y+row, s.lines[i], int(area.Width), DefaultStyle())
	}
}

func TestWidget(t *testing.T) {
	t.Run("RendersIntoArea", func(t *testing.T) {
		buf := NewBuffer(NewRect(10, 3))
		RenderWidget(label{text: "hi"}, Rect{X: 2, Y: 1, Width: 5, Height: 1}, buf)
		if buf.CellAt(2, 1).Symbol != "h" || buf.CellAt(3, 1).Symbol != "i" {
			t.Errorf("widget output missing:\n%s", buf)
		}
	})

	t.Run("AreaClippedToBuffer", func(t *testing.T) {
		buf := NewBuffer(NewRect(4, 2))
		// The area extends past the buffer; render must not panic and
		// must clip the text to the buffer's edge.
		RenderWidget(label{text: "overflow"}, Rect{X: 2, Y: 0, Width: 20, Height: 1}, buf)
		if buf.CellAt(2, 0).Symbol != "o" || buf.CellAt(3, 0).Symbol != "v" {
			t.Errorf("clipped render wrong:\n%s", buf)
		}
	})

	t.Run("DisjointAreaRendersNothing", func(t *testing.T) {
		buf := NewBuffer(NewRect(4, 2))
		called := false
		RenderWidget(WidgetFunc(func(area Rect, b *Buffer) { called = true }),
			Rect{X: 10, Y: 10, Width: 5, Height: 5}, buf)
		if called {
			t.Error("widget must not render when the area misses the buffer")
		}
	})

	t.Run("WidgetFunc", func(t *testing.T) {
		buf := NewBuffer(NewRect(3, 1))
		RenderWidget(WidgetFunc(func(area Rect, b *Buffer) {
			b.SetString(area.X, area.Y, "ok", DefaultStyle())
		}), buf.Area(), buf)
		if buf.CellAt(0, 0).Symbol != "o" {
			t.Errorf("got:\n%s", buf)
		}
	})
}

func TestStatefulWidget(t *testing.T) {
	lines := []string{"one", "two", "three", "four"}

	t.Run("StatePersistsAcrossFrames", func(t *testing.T) {
		buf := NewBuffer(NewRect(5, 2))
		state := &scrollState{Offset: 1}
		RenderStatefulWidget[scrollState](scrollList{lines: lines}, buf.Area(), buf, state)
		if bufRow(buf, 0) != "two  " || bufRow(buf, 1) != "three" {
			t.Errorf("offset view wrong:\n%s", buf)
		}
		if state.Offset != 1 {
			t.Errorf("in-range offset must be untouched, got %d", state.Offset)
		}
	})

	t.Run("WidgetMayAdjustState", func(t *testing.T) {
		buf := NewBuffer(NewRect(5, 2))
		state := &scrollState{Offset: 99}
		RenderStatefulWidget[scrollState](scrollList{lines: lines}, buf.Area(), buf, state)
		if state.Offset != 2 {
			t.Errorf("widget should pull the offset back in range, got %d", state.Offset)
		}
		if bufRow(buf, 0) != "three" {
			t.Errorf("view should show the clamped offset:\n%s", buf)
		}
	})
}

func TestLayoutToWidgetFlow(t *testing.T) {
	// The full pipeline: split an area, render a widget per region,
	// diff against the previous frame.
	screen := NewRect(12, 4)
	prev := NewBuffer(screen)
	cur := NewBuffer(screen)

	regions := NewVertical(Length(1), Fill(1)).Split(screen)
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	RenderWidget(label{text: "title"}, regions[0], cur)
	RenderWidget(label{text: "body"}, regions[1], cur)

	updates := prev.Diff(cur)
	if len(updates) != len("title")+len("body") {
		t.Errorf("expected one update per drawn cell, got %d", len(updates))
	}
	replay := prev.Clone()
	replay.ApplyUpdates(updates)
	if !replay.Equal(cur) {
		t.Errorf("replayed frame differs:\n%s\nwant:\n%s", replay, cur)
	}
}
