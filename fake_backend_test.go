package easel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// fakeBackend records what the session asks of it.
type fakeBackend struct {
	calls []string

	openErr    error
	surfaceErr error
	title      string
	winW, winH int
	closes     int
	fps        int
	frameTime  float64

	closeRequested bool
	down           map[Key]bool
	pressed        map[Key]bool

	invertedRows bool
	surfaces     []*fakeSurface
	target       string

	files    map[string][2]int
	loadErr  map[string]error
	loads    map[string]int
	textures []*fakeTexture

	borderlessToggles int
	fullscreenToggles int
	osFullscreen      bool

	pointerOffset Vec2
	pointerScale  Vec2
	transforms    int
	rawX, rawY    float64

	blits []blitCall
	draws []string

	maxFrames int
}

type fakeSurface struct {
	w, h     int
	inverted bool
	released int
}

func (s *fakeSurface) Size() (int, int)   { return s.w, s.h }
func (s *fakeSurface) RowsInverted() bool { return s.inverted }

type fakeTexture struct {
	path     string
	w, h     int
	released int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type blitCall struct {
	surface  *fakeSurface
	src, dst Rect
	target   string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		winW:         1280,
		winH:         720,
		frameTime:    1.0 / 60,
		down:         make(map[Key]bool),
		pressed:      make(map[Key]bool),
		files:        make(map[string][2]int),
		loadErr:      make(map[string]error),
		loads:        make(map[string]int),
		pointerScale: Vec2{X: 1, Y: 1},
		maxFrames:    1000,
	}
}

func (b *fakeBackend) record(format string, args ...any) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

// --- Window ---

func (b *fakeBackend) OpenWindow(title string, w, h int) error {
	b.record("open %dx%d", w, h)
	if b.openErr != nil {
		return b.openErr
	}
	b.title = title
	return nil
}

func (b *fakeBackend) CloseWindow() error {
	b.record("close")
	b.closes++
	return nil
}

func (b *fakeBackend) CloseRequested() bool   { return b.closeRequested }
func (b *fakeBackend) WindowSize() (int, int) { return b.winW, b.winH }
func (b *fakeBackend) FrameTime() float64     { return b.frameTime }

func (b *fakeBackend) SetTargetFPS(fps int) {
	b.record("fps %d", fps)
	b.fps = fps
}

func (b *fakeBackend) ToggleBorderless() {
	b.record("borderless")
	b.borderlessToggles++
}

func (b *fakeBackend) ToggleFullscreen() {
	b.record("fullscreen")
	b.fullscreenToggles++
	b.osFullscreen = !b.osFullscreen
}

func (b *fakeBackend) IsWindowFullscreen() bool { return b.osFullscreen }

func (b *fakeBackend) Loop(step func() (bool, error)) error {
	for i := 0; i < b.maxFrames; i++ {
		cont, err := step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return errors.New("fake loop: step never stopped")
}

// --- Painter ---

func (b *fakeBackend) NewSurface(w, h int) (Surface, error) {
	b.record("surface %dx%d", w, h)
	if b.surfaceErr != nil {
		return nil, b.surfaceErr
	}
	s := &fakeSurface{w: w, h: h, inverted: b.invertedRows}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

func (b *fakeBackend) ReleaseSurface(s Surface) {
	b.record("release surface")
	s.(*fakeSurface).released++
}

func (b *fakeBackend) BeginSurface(Surface) {
	b.record("begin surface")
	b.target = "canvas"
}

func (b *fakeBackend) EndSurface() {
	b.record("end surface")
	b.target = ""
}

func (b *fakeBackend) BeginScreen() {
	b.record("begin screen")
	b.target = "screen"
}

func (b *fakeBackend) Present() {
	b.record("present")
	b.target = ""
}

func (b *fakeBackend) Clear(c Color) {
	b.record("clear %s %d,%d,%d", b.target, c.R, c.G, c.B)
}

func (b *fakeBackend) draw(op string) {
	b.draws = append(b.draws, op+"@"+b.target)
}

func (b *fakeBackend) FillRect(x, y, w, h int, c Color)    { b.draw("rect") }
func (b *fakeBackend) StrokeRect(x, y, w, h int, c Color)  { b.draw("rect-outline") }
func (b *fakeBackend) FillCircle(cx, cy, r int, c Color)   { b.draw("circle") }
func (b *fakeBackend) StrokeCircle(cx, cy, r int, c Color) { b.draw("circle-outline") }
func (b *fakeBackend) Line(x1, y1, x2, y2 int, c Color)    { b.draw("line") }
func (b *fakeBackend) Point(x, y int, c Color)             { b.draw("point") }

func (b *fakeBackend) Text(s string, x, y, size int, c Color) {
	b.draw(fmt.Sprintf("text:%s:%d", s, size))
}

func (b *fakeBackend) Blit(s Surface, src, dst Rect) {
	b.record("blit")
	b.blits = append(b.blits, blitCall{surface: s.(*fakeSurface), src: src, dst: dst, target: b.target})
}

func (b *fakeBackend) ReadPixels(s Surface) (*image.RGBA, error) {
	w, h := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	return img, nil
}

// --- Textures ---

func (b *fakeBackend) LoadTexture(path string) (Texture, error) {
	b.loads[path]++
	if err := b.loadErr[path]; err != nil {
		return nil, err
	}
	size, ok := b.files[path]
	if !ok {
		return nil, nil
	}
	t := &fakeTexture{path: path, w: size[0], h: size[1]}
	b.textures = append(b.textures, t)
	return t, nil
}

func (b *fakeBackend) ReleaseTexture(t Texture) {
	t.(*fakeTexture).released++
}

func (b *fakeBackend) DrawTexture(t Texture, x, y, scale, rotDeg float64) {
	b.draw(fmt.Sprintf("image:%s:%g:%g", t.(*fakeTexture).path, scale, rotDeg))
}

// --- Input ---

func (b *fakeBackend) IsKeyDown(k Key) bool    { return b.down[k] }
func (b *fakeBackend) IsKeyPressed(k Key) bool { return b.pressed[k] }

func (b *fakeBackend) SetPointerTransform(offset, scale Vec2) {
	b.transforms++
	b.pointerOffset = offset
	b.pointerScale = scale
}

func (b *fakeBackend) PointerPosition() (float64, float64) {
	return (b.rawX + b.pointerOffset.X) * b.pointerScale.X,
		(b.rawY + b.pointerOffset.Y) * b.pointerScale.Y
}

var errTest = errors.New("test failure")

func isErr(err, target error) bool { return errors.Is(err, target) }

// newTestGraphics builds a session on a fake backend with no resource lookup
// and a silent logger.
func newTestGraphics(b *fakeBackend, mutate func(*Config)) (*Graphics, error) {
	cfg := DefaultConfig()
	cfg.ResourceDir = ""
	cfg.Logger = NoopLogger{}
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, b)
}
