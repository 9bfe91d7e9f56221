package easel

import "testing"

func TestDisplayToggleTwiceRestores(t *testing.T) {
	b := newFakeBackend()
	d := NewDisplayController(b, StrategyLetterbox)

	d.Toggle()
	if !d.IsFullscreen() || d.Mode() != ModeBorderless {
		t.Fatalf("after one toggle: fullscreen=%v mode=%s", d.IsFullscreen(), d.Mode())
	}
	d.Toggle()
	if d.IsFullscreen() || d.Mode() != ModeWindowed {
		t.Fatalf("after two toggles: fullscreen=%v mode=%s", d.IsFullscreen(), d.Mode())
	}
	if b.borderlessToggles != 2 {
		t.Errorf("borderless toggles = %d, want 2", b.borderlessToggles)
	}
	if b.fullscreenToggles != 0 {
		t.Errorf("letterbox strategy used OS fullscreen %d times", b.fullscreenToggles)
	}
}

func TestDisplaySetIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		ops   []func(*DisplayController)
		want  bool
		calls int
	}{
		{"set twice", []func(*DisplayController){(*DisplayController).SetFullscreen, (*DisplayController).SetFullscreen}, true, 1},
		{"unset while windowed", []func(*DisplayController){(*DisplayController).SetWindowed}, false, 0},
		{"set then unset twice", []func(*DisplayController){
			(*DisplayController).SetFullscreen,
			(*DisplayController).SetWindowed,
			(*DisplayController).SetWindowed,
		}, false, 2},
		{"toggle then set", []func(*DisplayController){(*DisplayController).Toggle, (*DisplayController).SetFullscreen}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			d := NewDisplayController(b, StrategyLetterbox)
			for _, op := range tt.ops {
				op(d)
			}
			if d.IsFullscreen() != tt.want {
				t.Errorf("IsFullscreen = %v, want %v", d.IsFullscreen(), tt.want)
			}
			if b.borderlessToggles != tt.calls {
				t.Errorf("backend toggles = %d, want %d", b.borderlessToggles, tt.calls)
			}
		})
	}
}

func TestDisplayDirectUsesWindowSystem(t *testing.T) {
	b := newFakeBackend()
	d := NewDisplayController(b, StrategyDirect)

	d.SetFullscreen()
	d.SetFullscreen()
	if b.fullscreenToggles != 1 || b.borderlessToggles != 0 {
		t.Fatalf("toggles: fullscreen=%d borderless=%d", b.fullscreenToggles, b.borderlessToggles)
	}
	if !d.IsFullscreen() {
		t.Fatal("IsFullscreen = false after SetFullscreen")
	}

	// The window system can leave fullscreen on its own; the controller
	// follows it.
	b.osFullscreen = false
	if d.IsFullscreen() {
		t.Fatal("IsFullscreen does not follow the window system")
	}
	d.SetWindowed()
	if b.fullscreenToggles != 1 {
		t.Errorf("SetWindowed toggled an already windowed window")
	}
	if d.Mode() != ModeWindowed {
		t.Errorf("Mode = %s, want windowed", d.Mode())
	}
}

func TestDisplayModeString(t *testing.T) {
	if ModeWindowed.String() != "windowed" || ModeBorderless.String() != "borderless" {
		t.Errorf("got %q, %q", ModeWindowed, ModeBorderless)
	}
}
