package easel

import "fmt"

// Defaults used by DefaultConfig and for zero-valued Config fields.
const (
	DefaultCanvasWidth   = 1280
	DefaultCanvasHeight  = 720
	DefaultTargetFPS     = 60
	DefaultResourceDir   = "tiles"
	DefaultScreenshotDir = "screenshots"
	defaultTitle         = "easel"
)

// Config controls how New builds a Graphics.
type Config struct {
	// Title is the window title.
	Title string
	// CanvasWidth and CanvasHeight are the fixed logical canvas size that all
	// drawing targets. Zero selects 1280×720.
	CanvasWidth, CanvasHeight int
	// TargetFPS is the initial frame pacing target. Zero selects 60.
	TargetFPS int
	// ResourceDir is the folder searched for by the resource locator. On
	// success it becomes the working directory. Empty skips the lookup.
	ResourceDir string
	// Background clears both the canvas and the letterbox bars.
	// Nil selects ColorBackground.
	Background *Color
	// Strategy selects letterboxed or direct compositing.
	Strategy Strategy
	// ExitKey closes the session when pressed. KeyNone disables it.
	// Nil selects KeyEscape.
	ExitKey *Key
	// Fullscreen starts the session in fullscreen.
	Fullscreen bool
	// ScreenshotDir receives Screenshot captures. Empty selects
	// "screenshots" relative to the resource root.
	ScreenshotDir string
	// Debug logs per-second frame statistics.
	Debug bool
	// Logger receives diagnostics. Nil selects StderrLogger.
	Logger Logger
}

// DefaultConfig returns the configuration of the classic layer: a 1280×720
// letterboxed canvas at 60 FPS whose resources live in a "tiles" folder.
func DefaultConfig() Config {
	bg := ColorBackground
	exit := KeyEscape
	return Config{
		Title:         defaultTitle,
		CanvasWidth:   DefaultCanvasWidth,
		CanvasHeight:  DefaultCanvasHeight,
		TargetFPS:     DefaultTargetFPS,
		ResourceDir:   DefaultResourceDir,
		Background:    &bg,
		Strategy:      StrategyLetterbox,
		ExitKey:       &exit,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// withDefaults fills zero-valued fields.
func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.CanvasWidth == 0 && c.CanvasHeight == 0 {
		c.CanvasWidth, c.CanvasHeight = DefaultCanvasWidth, DefaultCanvasHeight
	}
	if c.TargetFPS == 0 {
		c.TargetFPS = DefaultTargetFPS
	}
	if c.Background == nil {
		bg := ColorBackground
		c.Background = &bg
	}
	if c.ExitKey == nil {
		exit := KeyEscape
		c.ExitKey = &exit
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = DefaultScreenshotDir
	}
	if c.Logger == nil {
		c.Logger = StderrLogger()
	}
	return c
}

// validate reports the first invalid field.
func (c Config) validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrConfig, c.CanvasWidth, c.CanvasHeight)
	}
	if err := validateFPS(c.TargetFPS); err != nil {
		return err
	}
	if c.Strategy != StrategyLetterbox && c.Strategy != StrategyDirect {
		return fmt.Errorf("%w: unknown strategy %d", ErrConfig, c.Strategy)
	}
	if *c.ExitKey >= keyCount {
		return fmt.Errorf("%w: unknown exit key %d", ErrConfig, *c.ExitKey)
	}
	return nil
}

func validateFPS(fps int) error {
	if fps < 1 {
		return fmt.Errorf("%w: target FPS %d cannot be smaller than 1", ErrConfig, fps)
	}
	return nil
}
