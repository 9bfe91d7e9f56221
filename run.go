package easel

import "errors"

// Run opens an Ebitengine window configured by cfg and calls frame once per
// frame until the window closes, the exit key is pressed or frame fails.
//
//	err := easel.Run(easel.DefaultConfig(), func(g *easel.Graphics) error {
//		g.DrawRect(10, 10, 100, 50, false, easel.RGB(200, 40, 40))
//		return nil
//	})
func Run(cfg Config, frame FrameFunc) error {
	g, err := New(cfg, NewEbitenBackend())
	if err != nil {
		return err
	}
	runErr := g.Run(frame)
	return errors.Join(runErr, g.Close())
}
