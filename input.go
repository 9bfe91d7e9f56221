package easel

// IsKeyDown reports whether k is held.
func (g *Graphics) IsKeyDown(k Key) bool {
	if k == KeyNone {
		return false
	}
	return g.backend.IsKeyDown(k)
}

// WasKeyPressed reports whether k went down this frame or auto-repeated.
func (g *Graphics) WasKeyPressed(k Key) bool {
	if k == KeyNone {
		return false
	}
	return g.backend.IsKeyPressed(k)
}

// DeltaTime returns the duration of the previous frame in seconds.
func (g *Graphics) DeltaTime() float64 {
	return g.backend.FrameTime()
}

// PointerPosition returns the pointer in canvas coordinates. With the
// letterbox strategy the values are negative or exceed the canvas size while
// the pointer is over a letterbox bar.
func (g *Graphics) PointerPosition() (x, y float64) {
	return g.backend.PointerPosition()
}

// PointerInCanvas reports whether the pointer lies over the canvas.
func (g *Graphics) PointerInCanvas() bool {
	x, y := g.PointerPosition()
	r := Rect{Width: float64(g.CanvasWidth()), Height: float64(g.CanvasHeight())}
	return r.Contains(x, y)
}
