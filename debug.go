package easel

import "time"

// debugInterval is how often debug statistics are logged.
const debugInterval = time.Second

// debugStats accumulates per-frame timings between two debug log lines.
// Only logged when Config.Debug is set.
type debugStats struct {
	since        time.Time
	frameStart   time.Time
	composeStart time.Time
	frames       int
	composeTime  time.Duration
	presentTime  time.Duration
}

func (s *debugStats) reset(now time.Time) {
	*s = debugStats{since: now}
}

func (s *debugStats) beginFrame(now time.Time) {
	s.frameStart = now
}

func (s *debugStats) endCompose(now time.Time) {
	s.composeTime += now.Sub(s.frameStart)
	s.composeStart = now
}

func (s *debugStats) endFrame(now time.Time) {
	s.presentTime += now.Sub(s.composeStart)
	s.frames++
}

// debugLog prints the accumulated stats once per debugInterval.
func (g *Graphics) debugLog(now time.Time) {
	s := &g.stats
	window := now.Sub(s.since)
	if window < debugInterval || s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	st := g.compositor.State()
	g.log.Infof("debug", "frames: %d in %v | compose: %v/frame | present: %v/frame | textures: %d",
		s.frames, window.Round(time.Millisecond), s.composeTime/n, s.presentTime/n, g.textures.Len())
	g.log.Infof("debug", "window: %dx%d | scale: %.3f | offset: (%.1f, %.1f) | fullscreen: %v",
		st.WindowWidth, st.WindowHeight, st.Scale, st.OffsetX, st.OffsetY, g.display.IsFullscreen())
	s.reset(now)
}
