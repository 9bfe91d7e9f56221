package soft

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/phanxgames/easel"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// surface is an offscreen RGBA render target.
type surface struct {
	img *image.RGBA
}

func (s *surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// RowsInverted is false: image.RGBA stores rows top-down.
func (s *surface) RowsInverted() bool { return false }

// Image returns the surface pixels.
func (s *surface) Image() *image.RGBA { return s.img }

func (b *Backend) NewSurface(w, h int) (easel.Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("soft: surface size %dx%d", w, h)
	}
	return &surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}, nil
}

func (b *Backend) ReleaseSurface(s easel.Surface) {
	if ss, ok := s.(*surface); ok {
		if b.target == ss.img {
			b.target = nil
		}
		ss.img = nil
	}
}

func (b *Backend) BeginSurface(s easel.Surface) {
	b.target = s.(*surface).img
}

func (b *Backend) EndSurface() {
	b.target = nil
}

// BeginScreen targets the window framebuffer, reallocating it when the
// window was resized.
func (b *Backend) BeginScreen() {
	if b.screen == nil || b.screen.Bounds().Dx() != b.width || b.screen.Bounds().Dy() != b.height {
		b.screen = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	}
	b.target = b.screen
}

// Present hands the window framebuffer to the presenter, then polls input
// and paces the frame.
func (b *Backend) Present() {
	if b.screen != nil {
		if err := b.presenter.Present(b.screen); err != nil {
			b.log.Errorf("soft", "present: %v", err)
		}
	}
	b.target = nil
	b.pollKeys()
	b.pace()
}

// Screen returns the window framebuffer of the last frame.
func (b *Backend) Screen() *image.RGBA { return b.screen }

func (b *Backend) Clear(c easel.Color) {
	if b.target == nil {
		return
	}
	draw.Draw(b.target, b.target.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

func (b *Backend) FillRect(x, y, w, h int, c easel.Color) {
	if b.target == nil || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(b.target.Bounds())
	draw.Draw(b.target, r, image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

func (b *Backend) StrokeRect(x, y, w, h int, c easel.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	b.Line(x, y, x2, y, c)
	b.Line(x, y2, x2, y2, c)
	b.Line(x, y, x, y2, c)
	b.Line(x2, y, x2, y2, c)
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// FillCircle rasterizes an anti-aliased disc.
func (b *Backend) FillCircle(cx, cy, r int, c easel.Color) {
	if b.target == nil || r <= 0 {
		return
	}
	bounds := b.target.Bounds()
	if b.raster == nil {
		b.raster = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	} else {
		b.raster.Reset(bounds.Dx(), bounds.Dy())
	}
	x, y, rr := float32(cx)+0.5, float32(cy)+0.5, float32(r)
	k := rr * kappa
	z := b.raster
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
	z.Draw(b.target, bounds, image.NewUniform(c.RGBA()), image.Point{})
}

// StrokeCircle draws a one-pixel midpoint circle.
func (b *Backend) StrokeCircle(cx, cy, r int, c easel.Color) {
	if r <= 0 {
		b.Point(cx, cy, c)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			b.Point(cx+p[0], cy+p[1], c)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Line draws a one-pixel Bresenham line including both end points.
func (b *Backend) Line(x1, y1, x2, y2 int, c easel.Color) {
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		b.Point(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (b *Backend) Point(x, y int, c easel.Color) {
	if b.target == nil || !image.Pt(x, y).In(b.target.Bounds()) {
		return
	}
	b.target.SetRGBA(x, y, c.RGBA())
}

// Text draws s with its top-left corner at (x, y) in the default face at
// size pixels.
func (b *Backend) Text(s string, x, y, size int, c easel.Color) {
	if b.target == nil || s == "" {
		return
	}
	face := b.face(size)
	d := &font.Drawer{
		Dst:  b.target,
		Src:  image.NewUniform(c.RGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (b *Backend) face(size int) font.Face {
	if f, ok := b.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(b.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	b.faces[size] = f
	return f
}

// Blit draws src of s scaled into dst with bilinear filtering. A negative
// src height reads the rows bottom-up.
func (b *Backend) Blit(s easel.Surface, src, dst easel.Rect) {
	img := s.(*surface).img
	if b.target == nil || img == nil || src.Width == 0 || src.Height == 0 {
		return
	}
	sh := math.Abs(src.Height)
	sx := dst.Width / src.Width
	sy := dst.Height / sh
	m := f64.Aff3{
		sx, 0, dst.X - src.X*sx,
		0, sy, dst.Y - src.Y*sy,
	}
	if src.Height < 0 {
		m[4] = -sy
		m[5] = dst.Y + dst.Height + src.Y*sy
	}
	sr := image.Rect(int(src.X), int(src.Y), int(src.X+src.Width), int(src.Y+sh))
	xdraw.BiLinear.Transform(b.target, m, img, sr, xdraw.Src, nil)
}

func (b *Backend) ReadPixels(s easel.Surface) (*image.RGBA, error) {
	ss, ok := s.(*surface)
	if !ok || ss.img == nil {
		return nil, fmt.Errorf("soft: read pixels of a released surface")
	}
	out := image.NewRGBA(ss.img.Bounds())
	copy(out.Pix, ss.img.Pix)
	return out, nil
}
