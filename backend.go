package easel

import "image"

// Surface is an offscreen drawing target owned by a backend.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// RowsInverted reports whether the surface stores its rows bottom-up, as
	// OpenGL render textures do. The compositor blits such surfaces with a
	// negative source height.
	RowsInverted() bool
}

// Texture is an image resident in the backend, decoded from a file.
type Texture interface {
	Size() (w, h int)
}

// Window is the part of a backend that owns the real window.
type Window interface {
	// OpenWindow creates the window at the given logical size.
	OpenWindow(title string, w, h int) error
	// CloseWindow destroys the window. Called once, last.
	CloseWindow() error
	// CloseRequested reports whether the user asked to close the window.
	CloseRequested() bool
	// WindowSize returns the window's current drawable size in pixels.
	WindowSize() (w, h int)
	// SetTargetFPS sets the frame pacing target. fps is always >= 1.
	SetTargetFPS(fps int)
	// FrameTime returns the duration of the previous frame in seconds.
	FrameTime() float64

	// ToggleBorderless switches between a decorated window and a borderless
	// window covering the monitor.
	ToggleBorderless()
	// ToggleFullscreen switches the window system's own fullscreen mode.
	ToggleFullscreen()
	// IsWindowFullscreen reports the window system's own fullscreen state.
	// It does not reflect borderless mode.
	IsWindowFullscreen() bool

	// Loop calls step once per frame until step reports false or fails.
	// Backends that own their frame loop call step from inside it.
	Loop(step func() (bool, error)) error
}

// Painter draws into whichever target is active: a Surface between
// BeginSurface and EndSurface, the window between BeginScreen and Present.
type Painter interface {
	NewSurface(w, h int) (Surface, error)
	ReleaseSurface(s Surface)
	BeginSurface(s Surface)
	EndSurface()
	BeginScreen()
	Present()

	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	StrokeRect(x, y, w, h int, c Color)
	FillCircle(cx, cy, r int, c Color)
	StrokeCircle(cx, cy, r int, c Color)
	Line(x1, y1, x2, y2 int, c Color)
	Point(x, y int, c Color)
	Text(s string, x, y, size int, c Color)

	// Blit draws the src region of s into the dst region of the active
	// target with linear filtering. A negative src.Height reads the rows
	// bottom-up.
	Blit(s Surface, src, dst Rect)

	// ReadPixels returns a top-down copy of the surface contents.
	ReadPixels(s Surface) (*image.RGBA, error)
}

// Textures loads, draws and releases decoded images.
type Textures interface {
	// LoadTexture decodes the file at path. A nil Texture with a nil error
	// is treated as the library's invalid-handle sentinel.
	LoadTexture(path string) (Texture, error)
	ReleaseTexture(t Texture)
	// DrawTexture draws t with its top-left corner at (x, y), rotated by
	// rotDeg degrees clockwise about that corner and scaled uniformly.
	DrawTexture(t Texture, x, y, scale, rotDeg float64)
}

// Input reads the keyboard and pointer.
type Input interface {
	IsKeyDown(k Key) bool
	// IsKeyPressed reports a press this frame or an auto-repeat.
	IsKeyPressed(k Key) bool
	// SetPointerTransform programs the pointer so that PointerPosition
	// returns (raw + offset) * scale.
	SetPointerTransform(offset, scale Vec2)
	PointerPosition() (x, y float64)
}

// Backend is the windowing and graphics library easel runs on.
type Backend interface {
	Window
	Painter
	Textures
	Input
}
