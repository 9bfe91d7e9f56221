package easel

import "fmt"

// fpsRefresh is how often, in seconds, the displayed FPS value changes.
const fpsRefresh = 0.5

// fpsCounter averages frame times over fpsRefresh-second windows so the
// overlay stays readable.
type fpsCounter struct {
	elapsed float64
	frames  int
	value   float64
}

func (c *fpsCounter) add(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	c.frames++
	if c.value == 0 || c.elapsed >= fpsRefresh {
		c.value = float64(c.frames) / c.elapsed
		c.elapsed = 0
		c.frames = 0
	}
}

// FPS returns the measured frames per second, refreshed twice a second.
func (g *Graphics) FPS() float64 {
	return g.fps.value
}

// DrawFPS draws "FPS: nn.n" at (x, y) in canvas coordinates.
func (g *Graphics) DrawFPS(x, y, size int, c Color) {
	g.DrawText(fmt.Sprintf("FPS: %04.1f", g.fps.value), x, y, size, c)
}
