package slate

// Widget is anything that can draw itself into a region of a buffer.
// Render consumes the widget value: widgets are built fresh each frame
// and must not carry render-only state across calls. Implementations
// write only within area and clip themselves to the buffer's bounds.
type Widget interface {
	Render(area Rect, buf *Buffer)
}

// StatefulWidget is a widget with external state threaded across frames,
// such as a scroll offset or selection index. The widget may read and
// update the state during Render, but creating and keeping it alive
// between frames belongs to the caller.
type StatefulWidget[S any] interface {
	Render(area Rect, buf *Buffer, state *S)
}

// WidgetFunc adapts a plain function to the Widget interface.
type WidgetFunc func(area Rect, buf *Buffer)

// Render implements Widget.
func (f WidgetFunc) Render(area Rect, buf *Buffer) {
	f(area, buf)
}

// RenderWidget renders w into the part of area that lies inside the
// buffer, so a widget handed an oversized region can never write out of
// bounds.
func RenderWidget(w Widget, area Rect, buf *Buffer) {
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	w.Render(area, buf)
}

// RenderStatefulWidget renders w with its state, clipped like
// RenderWidget.
func RenderStatefulWidget[S any](w StatefulWidget[S], area Rect, buf *Buffer, state *S) {
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	w.Render(area, buf, state)
}
