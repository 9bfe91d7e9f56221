package easel

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Graphics is a rendering session: one window, one virtual canvas, one
// texture cache. Create it with New, drive it with Run or with
// IsRunning/BeginFrame/EndFrame, and release it with Close.
//
// A Graphics must only be used from the goroutine running its frame loop.
type Graphics struct {
	cfg     Config
	backend Backend
	log     Logger

	compositor *Compositor
	display    *DisplayController
	textures   *TextureCache

	root      string
	targetFPS int
	closing   bool
	closed    bool
	frame     uint64

	script      *Script
	screenshots []string
	fps         fpsCounter
	stats       debugStats
}

// FrameFunc draws one frame. It runs between BeginFrame and EndFrame.
type FrameFunc func(g *Graphics) error

// New opens the window, locates the resource folder and creates the virtual
// canvas. Errors wrap ErrConfig or ErrStartup; after an ErrStartup nothing
// is left open.
func New(cfg Config, backend Backend) (*Graphics, error) {
	return newGraphics(cfg, backend, osLocatorEnv())
}

func newGraphics(cfg Config, backend Backend, env locatorEnv) (*Graphics, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := &Graphics{
		cfg:       cfg,
		backend:   backend,
		log:       cfg.Logger,
		targetFPS: cfg.TargetFPS,
	}

	if err := backend.OpenWindow(cfg.Title, cfg.CanvasWidth, cfg.CanvasHeight); err != nil {
		return nil, fmt.Errorf("%w: open window: %v", ErrStartup, err)
	}
	backend.SetTargetFPS(cfg.TargetFPS)

	if cfg.ResourceDir != "" {
		root, err := locateResourceDir(env, cfg.ResourceDir)
		if err != nil {
			g.log.Errorf("locator", "%v", err)
			_ = backend.CloseWindow()
			return nil, err
		}
		g.root = root
	} else if wd, err := env.getwd(); err == nil {
		g.root = wd
	}
	g.log.Infof("locator", "using working/resource dir %s", g.root)

	compositor, err := NewCompositor(backend, cfg.Strategy, cfg.CanvasWidth, cfg.CanvasHeight, *cfg.Background)
	if err != nil {
		_ = backend.CloseWindow()
		return nil, err
	}
	g.compositor = compositor
	g.display = NewDisplayController(backend, cfg.Strategy)
	g.textures = NewTextureCache(backend)

	if cfg.Fullscreen {
		g.display.SetFullscreen()
	}
	g.stats.reset(time.Now())
	return g, nil
}

// Config returns the effective configuration, with defaults applied.
func (g *Graphics) Config() Config { return g.cfg }

// Backend returns the backend the session runs on.
func (g *Graphics) Backend() Backend { return g.backend }

// ResourceRoot returns the directory relative resource paths resolve
// against.
func (g *Graphics) ResourceRoot() string { return g.root }

// Canvas returns the virtual canvas surface, or nil with the direct
// strategy.
func (g *Graphics) Canvas() Surface { return g.compositor.Canvas() }

// Frame returns the number of completed frames.
func (g *Graphics) Frame() uint64 { return g.frame }

// IsRunning reports whether the session should keep drawing frames. It turns
// false for good once the window is asked to close, the exit key is pressed
// or a script quits.
func (g *Graphics) IsRunning() bool {
	if g.closing || g.closed {
		return false
	}
	if g.backend.CloseRequested() {
		g.closing = true
		g.log.Infof("session", "close requested")
		return false
	}
	if exit := *g.cfg.ExitKey; exit != KeyNone && g.backend.IsKeyPressed(exit) {
		g.closing = true
		g.log.Infof("session", "exit key %s pressed", exit)
		return false
	}
	return true
}

// Quit makes IsRunning report false from now on.
func (g *Graphics) Quit() {
	g.closing = true
}

// BeginFrame starts drawing onto the virtual canvas. Draw calls are only
// valid between BeginFrame and EndFrame.
func (g *Graphics) BeginFrame() {
	if g.closed {
		panic("easel: BeginFrame called after Close")
	}
	if g.compositor.Composing() {
		panic("easel: BeginFrame called twice without EndFrame")
	}
	if g.script != nil {
		g.script.step(g)
	}
	g.fps.add(g.backend.FrameTime())
	before := g.compositor.rescales
	g.stats.beginFrame(time.Now())
	g.compositor.Begin()
	if g.compositor.rescales != before {
		st := g.compositor.State()
		g.log.Infof("canvas", "window %dx%d: scale %.3f, offset (%.1f, %.1f)",
			st.WindowWidth, st.WindowHeight, st.Scale, st.OffsetX, st.OffsetY)
	}
}

// EndFrame composites the canvas into the window and presents it.
func (g *Graphics) EndFrame() {
	g.compositor.mustCompose("EndFrame")
	g.stats.endCompose(time.Now())
	g.compositor.End()
	g.flushScreenshots()
	g.frame++
	g.stats.endFrame(time.Now())
	if g.cfg.Debug {
		g.debugLog(time.Now())
	}
}

// Run drives the session until it stops running or frame fails. Each
// iteration checks IsRunning, then calls frame between BeginFrame and
// EndFrame.
func (g *Graphics) Run(frame FrameFunc) error {
	return g.backend.Loop(func() (bool, error) {
		if !g.IsRunning() {
			return false, nil
		}
		g.BeginFrame()
		err := frame(g)
		g.EndFrame()
		if err != nil {
			return false, err
		}
		return true, nil
	})
}

// SetTargetFPS changes frame pacing. fps must be at least 1.
func (g *Graphics) SetTargetFPS(fps int) error {
	if err := validateFPS(fps); err != nil {
		return err
	}
	g.backend.SetTargetFPS(fps)
	g.targetFPS = fps
	return nil
}

// TargetFPS returns the frame pacing target.
func (g *Graphics) TargetFPS() int { return g.targetFPS }

// CanvasWidth returns the fixed logical canvas width. Layout code must use it
// rather than the window size.
func (g *Graphics) CanvasWidth() int { return g.compositor.Width() }

// CanvasHeight returns the fixed logical canvas height.
func (g *Graphics) CanvasHeight() int { return g.compositor.Height() }

// Scale returns the current canvas-to-window scale factor.
func (g *Graphics) Scale() float64 { return g.compositor.State().Scale }

// ScaleState returns the full letterbox fit of the last frame.
func (g *Graphics) ScaleState() ScaleState { return g.compositor.State() }

// SetFullscreen enters fullscreen if not already there.
func (g *Graphics) SetFullscreen() { g.display.SetFullscreen() }

// UnsetFullscreen returns to a window if currently fullscreen.
func (g *Graphics) UnsetFullscreen() { g.display.SetWindowed() }

// ToggleFullscreen switches between fullscreen and windowed.
func (g *Graphics) ToggleFullscreen() { g.display.Toggle() }

// IsFullscreen reports the tracked fullscreen state.
func (g *Graphics) IsFullscreen() bool { return g.display.IsFullscreen() }

// Close releases every texture, the canvas and the window, in that order.
// Calling Close again returns nil.
func (g *Graphics) Close() error {
	if g.closed {
		return nil
	}
	if g.compositor.Composing() {
		panic("easel: Close called between BeginFrame and EndFrame")
	}
	g.closed = true
	g.textures.Close()
	g.compositor.Close()
	if err := g.backend.CloseWindow(); err != nil {
		return fmt.Errorf("easel: close window: %w", err)
	}
	return nil
}

// Main runs frame on a new session and exits the process with status 1 when
// startup or a frame fails. It is the shortest way to write a program:
//
//	func main() {
//		easel.Main(easel.DefaultConfig(), easel.NewEbitenBackend(), draw)
//	}
func Main(cfg Config, backend Backend, frame FrameFunc) {
	g, err := New(cfg, backend)
	if err != nil {
		fatal(cfg, err)
	}
	runErr := g.Run(frame)
	closeErr := g.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		fatal(cfg, err)
	}
}

func fatal(cfg Config, err error) {
	logger := cfg.Logger
	if logger == nil {
		logger = StderrLogger()
	}
	logger.Errorf("main", "%v", err)
	os.Exit(1)
}
