// Package easel is a fixed-resolution 2D drawing layer for [Ebitengine] and
// other backends.
//
// Programs draw on a virtual canvas of constant logical size (1280×720 by
// default) using integer canvas coordinates. easel scales the canvas to fit
// the real window while preserving its aspect ratio, centers it between
// letterbox bars, and remaps the pointer so positions read back in canvas
// space. Fullscreen is a borderless window covering the monitor, rescaled
// live.
//
// # Quick start
//
//	cfg := easel.DefaultConfig()
//	cfg.ResourceDir = "" // no resource folder
//	err := easel.Run(cfg, func(g *easel.Graphics) error {
//		if g.WasKeyPressed(easel.KeySpace) {
//			g.ToggleFullscreen()
//		}
//		g.DrawCircle(640, 360, 100, false, easel.RGB(40, 120, 220))
//		g.DrawText("hello", 10, 10, 32, easel.ColorBlack)
//		return nil
//	})
//
// # Frames
//
// A [Graphics] alternates between two phases. [Graphics.BeginFrame]
// activates and clears the canvas; draw calls are only valid until
// [Graphics.EndFrame], which blits the canvas into the window and presents
// it. [Graphics.Run] sequences this for you; backends that let the caller own
// the loop (backend/soft, backend/ray) also support
//
//	for g.IsRunning() {
//		g.BeginFrame()
//		// draw
//		g.EndFrame()
//	}
//
// # Resources
//
// [New] searches for [Config.ResourceDir] next to the working directory, the
// executable, and up to three directories above the executable, then makes
// it the working directory. Images drawn with [Graphics.DrawImage] are loaded
// once per path and released by [Graphics.Close].
//
// # Backends
//
// [EbitenBackend] is the default. Package backend/soft renders on the CPU to
// memory or a Linux framebuffer, and package backend/ray runs on raylib when
// built with the raylib tag.
//
// [Ebitengine]: https://ebitengine.org
package easel
