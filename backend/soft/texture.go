package soft

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/phanxgames/easel"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// texture is a decoded image held in RGBA.
type texture struct {
	img *image.RGBA
}

func (t *texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// LoadTexture decodes a PNG, JPEG, GIF, BMP or WebP file.
func (b *Backend) LoadTexture(path string) (easel.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	b.log.Infof("soft", "loaded %s texture %s (%dx%d)", format, path, bounds.Dx(), bounds.Dy())
	return &texture{img: img}, nil
}

func (b *Backend) ReleaseTexture(t easel.Texture) {
	if tt, ok := t.(*texture); ok {
		tt.img = nil
	}
}

// DrawTexture draws t with its top-left corner at (x, y), scaled and then
// rotated rotDeg degrees clockwise about that corner.
func (b *Backend) DrawTexture(t easel.Texture, x, y, scale, rotDeg float64) {
	img := t.(*texture).img
	if b.target == nil || img == nil || scale == 0 {
		return
	}
	sin, cos := math.Sincos(rotDeg * math.Pi / 180)
	m := f64.Aff3{
		scale * cos, -scale * sin, x,
		scale * sin, scale * cos, y,
	}
	xdraw.BiLinear.Transform(b.target, m, img, img.Bounds(), xdraw.Over, nil)
}
