package easel

// DisplayMode is the tracked fullscreen state.
type DisplayMode uint8

const (
	ModeWindowed DisplayMode = iota
	ModeBorderless
)

func (m DisplayMode) String() string {
	if m == ModeBorderless {
		return "borderless"
	}
	return "windowed"
}

// displayBackend is the part of a Backend the controller drives.
type displayBackend interface {
	ToggleBorderless()
	ToggleFullscreen()
	IsWindowFullscreen() bool
}

// DisplayController is the only place that changes the window's display mode.
//
// With the letterbox strategy, fullscreen means a borderless window covering
// the monitor. Window systems do not report that state the way they report
// real fullscreen, so the controller tracks it itself and never queries it.
// With the direct strategy the window system's own fullscreen is used and
// queried.
type DisplayController struct {
	backend  displayBackend
	strategy Strategy
	mode     DisplayMode
}

// NewDisplayController starts in windowed mode.
func NewDisplayController(b displayBackend, strategy Strategy) *DisplayController {
	return &DisplayController{backend: b, strategy: strategy}
}

// Toggle flips the display mode with a single backend call.
func (d *DisplayController) Toggle() {
	if d.strategy == StrategyDirect {
		d.backend.ToggleFullscreen()
		return
	}
	if d.mode == ModeBorderless {
		d.mode = ModeWindowed
	} else {
		d.mode = ModeBorderless
	}
	d.backend.ToggleBorderless()
}

// SetFullscreen enters fullscreen unless already there.
func (d *DisplayController) SetFullscreen() {
	if !d.IsFullscreen() {
		d.Toggle()
	}
}

// SetWindowed leaves fullscreen unless already windowed.
func (d *DisplayController) SetWindowed() {
	if d.IsFullscreen() {
		d.Toggle()
	}
}

// IsFullscreen reports the tracked flag, or the window system's state for the
// direct strategy.
func (d *DisplayController) IsFullscreen() bool {
	if d.strategy == StrategyDirect {
		return d.backend.IsWindowFullscreen()
	}
	return d.mode == ModeBorderless
}

// Mode returns the tracked borderless mode. It stays ModeWindowed with the
// direct strategy.
func (d *DisplayController) Mode() DisplayMode {
	return d.mode
}
