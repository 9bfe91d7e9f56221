package soft

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/easel"
)

var (
	red  = easel.RGB(255, 0, 0)
	blue = easel.RGB(0, 0, 255)
	bg   = easel.ColorBackground
)

func newHeadless(t *testing.T) (*Backend, *MemoryPresenter, *VirtualKeyboard) {
	t.Helper()
	p := NewMemoryPresenter()
	k := NewVirtualKeyboard()
	return New(Options{Presenter: p, Keyboard: k, Headless: true}), p, k
}

func newSession(t *testing.T, b *Backend, w, h int, mutate func(*easel.Config)) *easel.Graphics {
	t.Helper()
	cfg := easel.DefaultConfig()
	cfg.ResourceDir = ""
	cfg.CanvasWidth, cfg.CanvasHeight = w, h
	cfg.Logger = easel.NoopLogger{}
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := easel.New(cfg, b)
	if err != nil {
		t.Fatalf("easel.New: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func rgbAt(img *image.RGBA, x, y int) easel.Color {
	c := img.RGBAAt(x, y)
	return easel.RGB(c.R, c.G, c.B)
}

// near compares colors with a little room for filtering and coverage
// rounding.
func near(a, b easel.Color) bool {
	d := func(x, y uint8) bool { return abs(int(x)-int(y)) <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestLetterboxedFrame(t *testing.T) {
	b, p, _ := newHeadless(t)
	g := newSession(t, b, 64, 36, nil)
	b.SetWindowSize(128, 36)

	g.BeginFrame()
	g.DrawRect(0, 0, 64, 36, false, red)
	g.EndFrame()

	frame := p.Last()
	if frame == nil {
		t.Fatal("nothing presented")
	}
	if got := frame.Bounds(); got.Dx() != 128 || got.Dy() != 36 {
		t.Fatalf("frame = %v, want 128x36", got)
	}
	tests := []struct {
		name string
		x, y int
		want easel.Color
	}{
		{"left bar", 10, 18, bg},
		{"right bar", 120, 18, bg},
		{"canvas center", 64, 18, red},
		{"canvas left edge", 34, 5, red},
	}
	for _, tt := range tests {
		if got := rgbAt(frame, tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s (%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if g.ScaleState().OffsetX != 32 {
		t.Errorf("OffsetX = %v, want 32", g.ScaleState().OffsetX)
	}
}

func TestScaledFrame(t *testing.T) {
	b, p, _ := newHeadless(t)
	g := newSession(t, b, 40, 30, nil)
	b.SetWindowSize(80, 60)

	g.BeginFrame()
	g.DrawRect(0, 0, 10, 10, false, blue)
	g.EndFrame()

	if g.Scale() != 2 {
		t.Fatalf("Scale = %v, want 2", g.Scale())
	}
	frame := p.Last()
	if got := rgbAt(frame, 8, 8); !near(got, blue) {
		t.Errorf("(8,8) = %+v, want blue", got)
	}
	if got := rgbAt(frame, 40, 40); !near(got, bg) {
		t.Errorf("(40,40) = %+v, want background", got)
	}
}

func TestBlitFlipsNegativeHeight(t *testing.T) {
	b, _, _ := newHeadless(t)
	if err := b.OpenWindow("flip", 4, 4); err != nil {
		t.Fatal(err)
	}
	s, _ := b.NewSurface(4, 4)
	b.BeginSurface(s)
	b.Clear(bg)
	b.FillRect(0, 0, 4, 1, red)
	b.EndSurface()

	b.BeginScreen()
	b.Blit(s, easel.Rect{Width: 4, Height: -4}, easel.Rect{Width: 4, Height: 4})
	screen := b.Screen()
	if got := rgbAt(screen, 2, 3); !near(got, red) {
		t.Errorf("bottom row = %+v, want red", got)
	}
	if got := rgbAt(screen, 2, 0); !near(got, bg) {
		t.Errorf("top row = %+v, want background", got)
	}
	b.Present()
}

func TestPrimitives(t *testing.T) {
	b, _, _ := newHeadless(t)
	if err := b.OpenWindow("prims", 100, 100); err != nil {
		t.Fatal(err)
	}
	s, _ := b.NewSurface(100, 100)
	b.BeginSurface(s)
	b.Clear(easel.ColorWhite)

	b.FillCircle(50, 50, 10, red)
	b.StrokeCircle(20, 20, 8, blue)
	b.Line(0, 99, 30, 69, blue)
	b.StrokeRect(70, 70, 10, 10, red)
	b.Point(99, 0, red)
	b.Point(-1, 500, red)
	b.Text("Hello", 5, 80, 18, easel.ColorBlack)

	img, err := b.ReadPixels(s)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y int
		want easel.Color
	}{
		{"disc center", 50, 50, red},
		{"disc inside", 55, 50, red},
		{"outside disc", 65, 65, easel.ColorWhite},
		{"ring right", 28, 20, blue},
		{"ring top", 20, 12, blue},
		{"ring center", 20, 20, easel.ColorWhite},
		{"line start", 0, 99, blue},
		{"line middle", 15, 84, blue},
		{"line end", 30, 69, blue},
		{"rect corner", 70, 70, red},
		{"rect far corner", 79, 79, red},
		{"rect inside", 75, 75, easel.ColorWhite},
		{"point", 99, 0, red},
	}
	for _, tt := range tests {
		if got := rgbAt(img, tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s (%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	inked := false
	for y := 80; y < 100 && !inked; y++ {
		for x := 5; x < 60; x++ {
			if c := img.RGBAAt(x, y); c.R < 128 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("Text drew nothing below its top-left corner")
	}
}

func writeTestPNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDrawImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.png")
	writeTestPNG(t, path, 8, 8, color.RGBA{B: 255, A: 255})

	b, _, _ := newHeadless(t)
	g := newSession(t, b, 64, 64, nil)

	g.BeginFrame()
	if err := g.DrawImage(path, 10, 10, 2, 0); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}
	if err := g.DrawImage(path, 40, 10, 1, 90); err != nil {
		t.Fatalf("DrawImage rotated: %v", err)
	}
	err := g.DrawImage(filepath.Join(dir, "missing.png"), 0, 0, 1, 0)
	g.EndFrame()
	if !errors.Is(err, easel.ErrResourceLoad) {
		t.Errorf("missing image: err = %v", err)
	}

	canvas, err := b.ReadPixels(g.Canvas())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y int
		want easel.Color
	}{
		{"scaled inside", 18, 18, blue},
		{"scaled outside", 30, 30, bg},
		// Rotating 90 degrees clockwise about (40, 10) swings the image to
		// the left of its corner.
		{"rotated inside", 36, 14, blue},
		{"rotated old spot", 44, 14, bg},
	}
	for _, tt := range tests {
		if got := rgbAt(canvas, tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("%s (%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if w, h, err := g.ImageSize(path); err != nil || w != 8 || h != 8 {
		t.Errorf("ImageSize = %d, %d, %v", w, h, err)
	}
}

func TestKeyRepeat(t *testing.T) {
	b, _, k := newHeadless(t)
	b.SetTargetFPS(36)
	if err := b.OpenWindow("keys", 10, 10); err != nil {
		t.Fatal(err)
	}

	k.Press(easel.KeySpace)
	var pressed []int
	for frame := 1; frame <= 25; frame++ {
		b.Present()
		if !b.IsKeyDown(easel.KeySpace) {
			t.Fatalf("frame %d: key not down", frame)
		}
		if b.IsKeyPressed(easel.KeySpace) {
			pressed = append(pressed, frame)
		}
	}
	// delay = 36/2 frames, interval = 36/18 frames.
	want := []int{1, 18, 20, 22, 24}
	if len(pressed) != len(want) {
		t.Fatalf("pressed on frames %v, want %v", pressed, want)
	}
	for i := range want {
		if pressed[i] != want[i] {
			t.Fatalf("pressed on frames %v, want %v", pressed, want)
		}
	}

	k.Release(easel.KeySpace)
	b.Present()
	if b.IsKeyDown(easel.KeySpace) || b.IsKeyPressed(easel.KeySpace) {
		t.Error("released key still reported")
	}
}

func TestExitKeyEndsRun(t *testing.T) {
	b, p, k := newHeadless(t)
	g := newSession(t, b, 32, 32, nil)

	frames := 0
	err := g.Run(func(g *easel.Graphics) error {
		frames++
		if frames == 3 {
			k.Press(easel.KeyEscape)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 || p.Frames() != 3 {
		t.Errorf("frames = %d, presented %d, want 3", frames, p.Frames())
	}
}

func TestBorderlessAndFullscreen(t *testing.T) {
	b := New(Options{Headless: true, MonitorWidth: 2560, MonitorHeight: 1440})
	if err := b.OpenWindow("modes", 1280, 720); err != nil {
		t.Fatal(err)
	}

	b.ToggleBorderless()
	if w, h := b.WindowSize(); w != 2560 || h != 1440 {
		t.Errorf("borderless size = %dx%d", w, h)
	}
	b.SetWindowSize(100, 100)
	if w, _ := b.WindowSize(); w != 2560 {
		t.Error("resized while borderless")
	}
	b.ToggleBorderless()
	if w, h := b.WindowSize(); w != 1280 || h != 720 {
		t.Errorf("restored size = %dx%d", w, h)
	}

	b.ToggleFullscreen()
	if !b.IsWindowFullscreen() {
		t.Error("not fullscreen")
	}
	b.ToggleFullscreen()
	if b.IsWindowFullscreen() {
		t.Error("still fullscreen")
	}
}

func TestPointerThroughSession(t *testing.T) {
	b, _, _ := newHeadless(t)
	g := newSession(t, b, 100, 50, nil)
	b.SetWindowSize(300, 100)

	g.BeginFrame()
	g.EndFrame()

	b.SetPointer(150, 50)
	if x, y := g.PointerPosition(); x != 50 || y != 25 {
		t.Errorf("pointer = (%v, %v), want (50, 25)", x, y)
	}
	b.SetPointer(10, 50)
	if g.PointerInCanvas() {
		t.Error("pointer over the bar reported in canvas")
	}
}

func TestPacing(t *testing.T) {
	b := New(Options{})
	var slept time.Duration
	clock := time.Unix(0, 0)
	b.now = func() time.Time { return clock }
	b.sleep = func(d time.Duration) { slept += d; clock = clock.Add(d) }
	b.SetTargetFPS(50)
	if err := b.OpenWindow("pace", 8, 8); err != nil {
		t.Fatal(err)
	}

	clock = clock.Add(5 * time.Millisecond)
	b.Present()
	if slept != 15*time.Millisecond {
		t.Errorf("slept %v, want 15ms", slept)
	}
	if got := b.FrameTime(); got < 0.0199 || got > 0.0201 {
		t.Errorf("FrameTime = %v, want 0.02", got)
	}

	slept = 0
	clock = clock.Add(30 * time.Millisecond)
	b.Present()
	if slept != 0 {
		t.Errorf("slept %v on a late frame", slept)
	}
	if got := b.FrameTime(); got < 0.0299 || got > 0.0301 {
		t.Errorf("FrameTime = %v, want 0.03", got)
	}
}

func TestCloseWindow(t *testing.T) {
	b, p, _ := newHeadless(t)
	cfg := easel.DefaultConfig()
	cfg.ResourceDir = ""
	cfg.Logger = easel.NoopLogger{}
	g, err := easel.New(cfg, b)
	if err != nil {
		t.Fatal(err)
	}
	if p.Title() != "easel" {
		t.Errorf("title = %q", p.Title())
	}
	b.RequestClose()
	if g.IsRunning() {
		t.Error("running after close request")
	}
	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if !p.Closed() {
		t.Error("presenter not closed")
	}
}
