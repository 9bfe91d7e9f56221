package easel

import (
	"fmt"
	"math"
)

// ScaleState is the fit of the virtual canvas into the window.
type ScaleState struct {
	// Scale is min(windowW/canvasW, windowH/canvasH), never negative.
	Scale float64
	// OffsetX and OffsetY are the letterbox bar sizes: the canvas is drawn
	// with its top-left corner at (OffsetX, OffsetY).
	OffsetX, OffsetY float64
	// WindowWidth and WindowHeight are the window size the state was
	// computed for.
	WindowWidth, WindowHeight int
}

// ComputeScale fits a canvasW×canvasH canvas into a windowW×windowH window,
// preserving aspect ratio and centering it.
func ComputeScale(windowW, windowH, canvasW, canvasH int) ScaleState {
	st := ScaleState{WindowWidth: windowW, WindowHeight: windowH}
	if canvasW <= 0 || canvasH <= 0 {
		return st
	}
	sx := float64(windowW) / float64(canvasW)
	sy := float64(windowH) / float64(canvasH)
	st.Scale = math.Max(0, math.Min(sx, sy))
	st.OffsetX = (float64(windowW) - float64(canvasW)*st.Scale) * 0.5
	st.OffsetY = (float64(windowH) - float64(canvasH)*st.Scale) * 0.5
	return st
}

// ToCanvas maps a window position to canvas space.
func (st ScaleState) ToCanvas(x, y float64) (float64, float64) {
	if st.Scale == 0 {
		return x, y
	}
	return (x - st.OffsetX) / st.Scale, (y - st.OffsetY) / st.Scale
}

// ToWindow maps a canvas position to window space.
func (st ScaleState) ToWindow(x, y float64) (float64, float64) {
	return x*st.Scale + st.OffsetX, y*st.Scale + st.OffsetY
}

// Blit describes the single draw that presents the canvas.
type Blit struct {
	Src Rect
	Dst Rect
}

// ComputeBlit returns the presentation blit for st. When the canvas rows are
// stored bottom-up the source height is negative so the image is not drawn
// upside down.
func ComputeBlit(st ScaleState, canvasW, canvasH int, rowsInverted bool) Blit {
	srcH := float64(canvasH)
	if rowsInverted {
		srcH = -srcH
	}
	return Blit{
		Src: Rect{X: 0, Y: 0, Width: float64(canvasW), Height: srcH},
		Dst: Rect{
			X:      st.OffsetX,
			Y:      st.OffsetY,
			Width:  float64(canvasW) * st.Scale,
			Height: float64(canvasH) * st.Scale,
		},
	}
}

// compositorBackend is the part of a Backend the compositor drives.
type compositorBackend interface {
	Painter
	WindowSize() (w, h int)
	SetPointerTransform(offset, scale Vec2)
}

type phase uint8

const (
	phaseIdle phase = iota
	phaseComposing
)

// Compositor owns the virtual canvas and presents it into the window. Between
// Begin and End every draw lands on the canvas in canvas coordinates.
type Compositor struct {
	backend    compositorBackend
	strategy   Strategy
	canvas     Surface
	w, h       int
	background Color

	state    ScaleState
	observed bool
	phase    phase
	rescales int
	lastBlit Blit
}

// NewCompositor creates the canvas surface for the letterbox strategy. The
// direct strategy draws straight to the window and allocates nothing.
func NewCompositor(b compositorBackend, strategy Strategy, w, h int, background Color) (*Compositor, error) {
	c := &Compositor{
		backend:    b,
		strategy:   strategy,
		w:          w,
		h:          h,
		background: background,
		state:      ScaleState{Scale: 1},
	}
	if strategy == StrategyLetterbox {
		s, err := b.NewSurface(w, h)
		if err != nil {
			return nil, fmt.Errorf("%w: create %dx%d canvas: %v", ErrStartup, w, h, err)
		}
		c.canvas = s
	}
	return c, nil
}

// Width returns the canvas width.
func (c *Compositor) Width() int { return c.w }

// Height returns the canvas height.
func (c *Compositor) Height() int { return c.h }

// Canvas returns the canvas surface, or nil for the direct strategy.
func (c *Compositor) Canvas() Surface { return c.canvas }

// State returns the current scale state.
func (c *Compositor) State() ScaleState { return c.state }

// Composing reports whether the compositor is between Begin and End.
func (c *Compositor) Composing() bool { return c.phase == phaseComposing }

// LastBlit returns the blit issued by the most recent End.
func (c *Compositor) LastBlit() Blit { return c.lastBlit }

// Begin starts a frame. With the letterbox strategy it rescales when the
// window size changed since the last frame, then activates and clears the
// canvas.
func (c *Compositor) Begin() {
	if c.phase == phaseComposing {
		panic("easel: Begin called twice without End")
	}
	if c.strategy == StrategyDirect {
		c.backend.BeginScreen()
		c.backend.Clear(c.background)
		c.phase = phaseComposing
		return
	}

	ww, wh := c.backend.WindowSize()
	if !c.observed || ww != c.state.WindowWidth || wh != c.state.WindowHeight {
		c.rescale(ww, wh)
	}
	c.backend.BeginSurface(c.canvas)
	c.backend.Clear(c.background)
	c.phase = phaseComposing
}

// rescale recomputes the fit and reprograms the pointer. A zero scale (a
// minimized window) leaves the pointer transform as it was.
func (c *Compositor) rescale(ww, wh int) {
	c.state = ComputeScale(ww, wh, c.w, c.h)
	c.observed = true
	c.rescales++
	if c.state.Scale <= 0 {
		return
	}
	inv := 1 / c.state.Scale
	c.backend.SetPointerTransform(
		Vec2{X: -c.state.OffsetX, Y: -c.state.OffsetY},
		Vec2{X: inv, Y: inv},
	)
}

// End finishes the frame: it composites the canvas into the window with
// letterbox bars and presents.
func (c *Compositor) End() {
	c.mustCompose("End")
	if c.strategy == StrategyDirect {
		c.backend.Present()
		c.phase = phaseIdle
		return
	}

	c.backend.EndSurface()
	c.backend.BeginScreen()
	c.backend.Clear(c.background)
	c.lastBlit = ComputeBlit(c.state, c.w, c.h, c.canvas.RowsInverted())
	c.backend.Blit(c.canvas, c.lastBlit.Src, c.lastBlit.Dst)
	c.backend.Present()
	c.phase = phaseIdle
}

// mustCompose panics when op is used outside Begin/End.
func (c *Compositor) mustCompose(op string) {
	if c.phase != phaseComposing {
		panic(fmt.Sprintf("easel: %s called outside BeginFrame/EndFrame", op))
	}
}

// Close releases the canvas surface. The compositor must be idle.
func (c *Compositor) Close() {
	if c.phase == phaseComposing {
		panic("easel: Close called between BeginFrame and EndFrame")
	}
	if c.canvas != nil {
		c.backend.ReleaseSurface(c.canvas)
		c.canvas = nil
	}
}
