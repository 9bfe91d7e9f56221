//go:build raylib

// Package ray is an easel backend on raylib. It needs cgo and the raylib
// build dependencies, so it is only compiled with the raylib build tag:
//
//	go run -tags raylib ./examples/mandelbrot -backend ray
package ray

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/phanxgames/easel"
)

var _ easel.Backend = (*Backend)(nil)

// Backend implements easel.Backend with raylib. raylib keeps global state,
// so only one Backend may have a window open at a time, on the thread that
// opened it.
type Backend struct {
	open bool
	msaa bool
}

// New returns a backend. msaa requests 4x multisampling for the window.
func New(msaa bool) *Backend {
	return &Backend{msaa: msaa}
}

// renderTexture is an offscreen target. raylib stores its rows bottom-up.
type renderTexture struct {
	rt rl.RenderTexture2D
}

func (s *renderTexture) Size() (int, int) {
	return int(s.rt.Texture.Width), int(s.rt.Texture.Height)
}

func (s *renderTexture) RowsInverted() bool { return true }

type texture struct {
	tex rl.Texture2D
}

func (t *texture) Size() (int, int) { return int(t.tex.Width), int(t.tex.Height) }

func color(c easel.Color) rl.Color { return rl.NewColor(c.R, c.G, c.B, 0xff) }

// --- Window ---

func (b *Backend) OpenWindow(title string, w, h int) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if b.msaa {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w), int32(h), title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("ray: InitWindow failed")
	}
	// easel handles the exit key itself.
	rl.SetExitKey(0)
	b.open = true
	return nil
}

func (b *Backend) CloseWindow() error {
	if b.open && rl.IsWindowReady() {
		rl.CloseWindow()
	}
	b.open = false
	return nil
}

func (b *Backend) CloseRequested() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

func (b *Backend) WindowSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (b *Backend) SetTargetFPS(fps int) { rl.SetTargetFPS(int32(fps)) }

func (b *Backend) FrameTime() float64 { return float64(rl.GetFrameTime()) }

func (b *Backend) ToggleBorderless() { rl.ToggleBorderlessWindowed() }

func (b *Backend) ToggleFullscreen() { rl.ToggleFullscreen() }

func (b *Backend) IsWindowFullscreen() bool { return rl.IsWindowFullscreen() }

// Loop calls step until it stops. EndDrawing paces and polls input.
func (b *Backend) Loop(step func() (bool, error)) error {
	for {
		cont, err := step()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// --- Painter ---

func (b *Backend) NewSurface(w, h int) (easel.Surface, error) {
	rt := rl.LoadRenderTexture(int32(w), int32(h))
	if rt.ID == 0 {
		return nil, fmt.Errorf("ray: LoadRenderTexture %dx%d failed", w, h)
	}
	rl.GenTextureMipmaps(&rt.Texture)
	rl.SetTextureFilter(rt.Texture, rl.FilterAnisotropic4x)
	return &renderTexture{rt: rt}, nil
}

func (b *Backend) ReleaseSurface(s easel.Surface) {
	if r, ok := s.(*renderTexture); ok && r.rt.ID != 0 {
		rl.UnloadRenderTexture(r.rt)
		r.rt = rl.RenderTexture2D{}
	}
}

func (b *Backend) BeginSurface(s easel.Surface) {
	rl.BeginTextureMode(s.(*renderTexture).rt)
}

func (b *Backend) EndSurface() { rl.EndTextureMode() }

func (b *Backend) BeginScreen() { rl.BeginDrawing() }

func (b *Backend) Present() { rl.EndDrawing() }

func (b *Backend) Clear(c easel.Color) { rl.ClearBackground(color(c)) }

func (b *Backend) FillRect(x, y, w, h int, c easel.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), color(c))
}

func (b *Backend) StrokeRect(x, y, w, h int, c easel.Color) {
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), color(c))
}

func (b *Backend) FillCircle(cx, cy, r int, c easel.Color) {
	rl.DrawCircle(int32(cx), int32(cy), float32(r), color(c))
}

func (b *Backend) StrokeCircle(cx, cy, r int, c easel.Color) {
	rl.DrawCircleLines(int32(cx), int32(cy), float32(r), color(c))
}

func (b *Backend) Line(x1, y1, x2, y2 int, c easel.Color) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), color(c))
}

func (b *Backend) Point(x, y int, c easel.Color) {
	rl.DrawPixel(int32(x), int32(y), color(c))
}

func (b *Backend) Text(s string, x, y, size int, c easel.Color) {
	rl.DrawText(s, int32(x), int32(y), int32(size), color(c))
}

func (b *Backend) Blit(s easel.Surface, src, dst easel.Rect) {
	rl.DrawTexturePro(
		s.(*renderTexture).rt.Texture,
		rl.NewRectangle(float32(src.X), float32(src.Y), float32(src.Width), float32(src.Height)),
		rl.NewRectangle(float32(dst.X), float32(dst.Y), float32(dst.Width), float32(dst.Height)),
		rl.NewVector2(0, 0), 0, rl.White,
	)
}

// ReadPixels downloads the render texture and flips it top-down.
func (b *Backend) ReadPixels(s easel.Surface) (*image.RGBA, error) {
	r, ok := s.(*renderTexture)
	if !ok || r.rt.ID == 0 {
		return nil, fmt.Errorf("ray: read pixels of a released surface")
	}
	img := rl.LoadImageFromTexture(r.rt.Texture)
	if img == nil {
		return nil, fmt.Errorf("ray: LoadImageFromTexture failed")
	}
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)
	src := img.ToImage()
	out := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out, nil
}

// --- Textures ---

func (b *Backend) LoadTexture(path string) (easel.Texture, error) {
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, nil
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterAnisotropic4x)
	return &texture{tex: tex}, nil
}

func (b *Backend) ReleaseTexture(t easel.Texture) {
	if tt, ok := t.(*texture); ok && tt.tex.ID != 0 {
		rl.UnloadTexture(tt.tex)
		tt.tex = rl.Texture2D{}
	}
}

func (b *Backend) DrawTexture(t easel.Texture, x, y, scale, rotDeg float64) {
	rl.DrawTextureEx(t.(*texture).tex, rl.NewVector2(float32(x), float32(y)),
		float32(rotDeg), float32(scale), rl.White)
}

// --- Input ---

func (b *Backend) IsKeyDown(k easel.Key) bool {
	rk, ok := raylibKeys[k]
	return ok && rl.IsKeyDown(rk)
}

func (b *Backend) IsKeyPressed(k easel.Key) bool {
	rk, ok := raylibKeys[k]
	return ok && (rl.IsKeyPressed(rk) || rl.IsKeyPressedRepeat(rk))
}

// SetPointerTransform programs raylib's mouse offset and scale, so
// GetMousePosition reports canvas coordinates.
func (b *Backend) SetPointerTransform(offset, scale easel.Vec2) {
	rl.SetMouseOffset(int(math.Round(offset.X)), int(math.Round(offset.Y)))
	rl.SetMouseScale(float32(scale.X), float32(scale.Y))
}

func (b *Backend) PointerPosition() (float64, float64) {
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y)
}
