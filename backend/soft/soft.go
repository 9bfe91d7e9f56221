// Package soft is a CPU easel backend. Surfaces are image.RGBA, drawing uses
// golang.org/x/image and freetype, and finished frames go to a Presenter: an
// in-memory one for headless runs and tests, or the Linux framebuffer.
//
//	b := soft.New(soft.Options{Presenter: soft.NewMemoryPresenter(), Headless: true})
//	g, err := easel.New(cfg, b)
package soft

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/phanxgames/easel"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
)

var _ easel.Backend = (*Backend)(nil)

// Default monitor size used for borderless and fullscreen windows when the
// presenter does not report one.
const (
	DefaultMonitorWidth  = 1920
	DefaultMonitorHeight = 1080
)

// Options configures a Backend.
type Options struct {
	// Presenter receives every finished frame. Nil selects a
	// MemoryPresenter.
	Presenter Presenter
	// Keyboard supplies key state. Nil selects a VirtualKeyboard.
	Keyboard Keyboard
	// MonitorWidth and MonitorHeight override the monitor size.
	MonitorWidth, MonitorHeight int
	// Headless disables frame pacing; FrameTime then reports exactly one
	// target frame.
	Headless bool
	// Logger receives presenter diagnostics. Nil discards them.
	Logger easel.Logger
}

// Backend implements easel.Backend on the CPU. It is not safe for concurrent
// use.
type Backend struct {
	presenter Presenter
	keyboard  Keyboard
	log       easel.Logger
	headless  bool

	open           bool
	closeRequested bool
	title          string
	width, height  int
	monitorW       int
	monitorH       int

	borderless bool
	fullscreen bool
	restoreW   int
	restoreH   int

	fps       int
	lastFrame time.Time
	frameTime float64
	now       func() time.Time
	sleep     func(time.Duration)

	screen *image.RGBA
	target *image.RGBA
	raster *vector.Rasterizer

	font  *truetype.Font
	faces map[int]font.Face

	keys     map[easel.Key]int
	pointerX float64
	pointerY float64
	offset   easel.Vec2
	scale    easel.Vec2
}

// New returns a Backend. The window is not open until OpenWindow.
func New(opts Options) *Backend {
	b := &Backend{
		presenter: opts.Presenter,
		keyboard:  opts.Keyboard,
		log:       opts.Logger,
		headless:  opts.Headless,
		monitorW:  opts.MonitorWidth,
		monitorH:  opts.MonitorHeight,
		fps:       easel.DefaultTargetFPS,
		now:       time.Now,
		sleep:     time.Sleep,
		faces:     make(map[int]font.Face),
		keys:      make(map[easel.Key]int),
		scale:     easel.Vec2{X: 1, Y: 1},
	}
	if b.presenter == nil {
		b.presenter = NewMemoryPresenter()
	}
	if b.keyboard == nil {
		b.keyboard = NewVirtualKeyboard()
	}
	if b.log == nil {
		b.log = easel.NoopLogger{}
	}
	return b
}

// Presenter returns the frame sink.
func (b *Backend) Presenter() Presenter { return b.presenter }

// Keyboard returns the key state source.
func (b *Backend) Keyboard() Keyboard { return b.keyboard }

// --- Window ---

func (b *Backend) OpenWindow(title string, w, h int) error {
	if b.open {
		return fmt.Errorf("soft: window already open")
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("soft: parse default font: %w", err)
	}
	b.font = f

	pw, ph, err := b.presenter.Open(title, w, h)
	if err != nil {
		return fmt.Errorf("soft: open presenter: %w", err)
	}
	if b.monitorW <= 0 || b.monitorH <= 0 {
		b.monitorW, b.monitorH = DefaultMonitorWidth, DefaultMonitorHeight
		if m, ok := b.presenter.(MonitorSizer); ok {
			b.monitorW, b.monitorH = m.MonitorSize()
		}
	}
	b.title = title
	b.open = true
	b.closeRequested = false
	b.resize(pw, ph)
	b.lastFrame = b.now()
	b.frameTime = 1 / float64(b.fps)
	b.log.Infof("soft", "window %q open at %dx%d", title, pw, ph)
	return nil
}

func (b *Backend) CloseWindow() error {
	if !b.open {
		return nil
	}
	b.open = false
	for size, f := range b.faces {
		_ = f.Close()
		delete(b.faces, size)
	}
	err := b.presenter.Close()
	if c, ok := b.keyboard.(io.Closer); ok {
		if kerr := c.Close(); err == nil {
			err = kerr
		}
	}
	b.screen = nil
	b.target = nil
	return err
}

// RequestClose makes CloseRequested report true, as a window manager close
// button would.
func (b *Backend) RequestClose() { b.closeRequested = true }

func (b *Backend) CloseRequested() bool {
	if b.closeRequested {
		return true
	}
	if c, ok := b.presenter.(CloseRequester); ok {
		return c.CloseRequested()
	}
	return false
}

func (b *Backend) WindowSize() (int, int) { return b.width, b.height }

// SetWindowSize resizes the window, as a user dragging its border would.
// It has no effect while borderless or fullscreen.
func (b *Backend) SetWindowSize(w, h int) {
	if b.borderless || b.fullscreen {
		return
	}
	b.resize(w, h)
}

func (b *Backend) resize(w, h int) {
	b.width, b.height = max(w, 0), max(h, 0)
}

func (b *Backend) SetTargetFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	b.fps = fps
}

func (b *Backend) FrameTime() float64 { return b.frameTime }

// ToggleBorderless grows the window to the monitor or restores it.
func (b *Backend) ToggleBorderless() {
	b.borderless = !b.borderless
	b.toggleMonitorSize(b.borderless)
}

// ToggleFullscreen is ToggleBorderless with the window system's fullscreen
// flag. The two are indistinguishable on a CPU surface.
func (b *Backend) ToggleFullscreen() {
	b.fullscreen = !b.fullscreen
	b.toggleMonitorSize(b.fullscreen)
}

func (b *Backend) toggleMonitorSize(enter bool) {
	if enter {
		b.restoreW, b.restoreH = b.width, b.height
		b.resize(b.monitorW, b.monitorH)
		return
	}
	b.resize(b.restoreW, b.restoreH)
}

func (b *Backend) IsWindowFullscreen() bool { return b.fullscreen }

// Loop calls step until it stops. Pacing happens in Present.
func (b *Backend) Loop(step func() (bool, error)) error {
	for {
		cont, err := step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// pace sleeps off the rest of the frame budget and measures the frame.
func (b *Backend) pace() {
	budget := time.Second / time.Duration(b.fps)
	if b.headless {
		b.frameTime = budget.Seconds()
		return
	}
	if elapsed := b.now().Sub(b.lastFrame); elapsed < budget {
		b.sleep(budget - elapsed)
	}
	now := b.now()
	b.frameTime = now.Sub(b.lastFrame).Seconds()
	b.lastFrame = now
}
