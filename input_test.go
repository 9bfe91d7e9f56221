package easel

import "testing"

func TestPointerInCanvas(t *testing.T) {
	b := newFakeBackend()
	g := mustGraphics(t, b, nil)
	b.winW, b.winH = 1920, 720

	g.BeginFrame()
	g.EndFrame()

	// 1920x720 leaves 320-pixel bars on both sides at scale 1.
	tests := []struct {
		name   string
		rx, ry float64
		want   bool
	}{
		{"left bar", 100, 360, false},
		{"canvas left edge", 320, 0, true},
		{"canvas center", 960, 360, true},
		{"last canvas column", 1599, 360, true},
		{"one past the canvas", 1600, 360, false},
		{"one below the canvas", 960, 720, false},
		{"right bar", 1700, 360, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.rawX, b.rawY = tt.rx, tt.ry
			if got := g.PointerInCanvas(); got != tt.want {
				x, y := g.PointerPosition()
				t.Errorf("PointerInCanvas at canvas (%v, %v) = %v, want %v", x, y, got, tt.want)
			}
		})
	}
}
