package easel

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Screenshot queues a labeled capture of the virtual canvas. It is taken from
// the canvas once the current frame is presented, so it always has the canvas
// resolution whatever the window size. The PNG is written to Config.ScreenshotDir with
// a timestamped file name. Not available with the direct strategy.
func (g *Graphics) Screenshot(label string) {
	g.screenshots = append(g.screenshots, label)
}

// flushScreenshots writes every queued capture. Called from EndFrame.
func (g *Graphics) flushScreenshots() {
	if len(g.screenshots) == 0 {
		return
	}
	defer func() { g.screenshots = g.screenshots[:0] }()

	canvas := g.compositor.Canvas()
	if canvas == nil {
		g.log.Errorf("screenshot", "the %s strategy has no canvas to capture", g.cfg.Strategy)
		return
	}
	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		g.log.Errorf("screenshot", "mkdir %s: %v", g.cfg.ScreenshotDir, err)
		return
	}
	img, err := g.backend.ReadPixels(canvas)
	if err != nil {
		g.log.Errorf("screenshot", "read canvas: %v", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		g.log.Errorf("screenshot", "encode canvas: %v", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshots {
		name := fmt.Sprintf("%s_f%06d_%s.png", stamp, g.frame, sanitizeLabel(label))
		path := filepath.Join(g.cfg.ScreenshotDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			g.log.Errorf("screenshot", "%v", err)
			continue
		}
		g.log.Infof("screenshot", "wrote %s", path)
	}
}

// sanitizeLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
