package easel

// DefaultTextSize is the font size DrawText uses when size is not positive.
const DefaultTextSize = 18

// DrawRect draws a w×h rectangle with its top-left corner at (x, y), filled
// or as a one-pixel outline.
func (g *Graphics) DrawRect(x, y, w, h int, outline bool, c Color) {
	g.compositor.mustCompose("DrawRect")
	if outline {
		g.backend.StrokeRect(x, y, w, h, c)
		return
	}
	g.backend.FillRect(x, y, w, h, c)
}

// DrawCircle draws a circle of radius r centered on (cx, cy), filled or as a
// one-pixel outline.
func (g *Graphics) DrawCircle(cx, cy, r int, outline bool, c Color) {
	g.compositor.mustCompose("DrawCircle")
	if outline {
		g.backend.StrokeCircle(cx, cy, r, c)
		return
	}
	g.backend.FillCircle(cx, cy, r, c)
}

// DrawLine draws a one-pixel line from (x1, y1) to (x2, y2).
func (g *Graphics) DrawLine(x1, y1, x2, y2 int, c Color) {
	g.compositor.mustCompose("DrawLine")
	g.backend.Line(x1, y1, x2, y2, c)
}

// DrawPoint sets the pixel at (x, y).
func (g *Graphics) DrawPoint(x, y int, c Color) {
	g.compositor.mustCompose("DrawPoint")
	g.backend.Point(x, y, c)
}

// DrawText draws s with its top-left corner at (x, y). A size of zero or
// less selects DefaultTextSize.
func (g *Graphics) DrawText(s string, x, y, size int, c Color) {
	g.compositor.mustCompose("DrawText")
	if size <= 0 {
		size = DefaultTextSize
	}
	g.backend.Text(s, x, y, size, c)
}

// DrawImage draws the image file at path with its top-left corner at (x, y),
// scaled uniformly and rotated rotDeg degrees clockwise about that corner. A
// scale of zero draws at 1. The image is loaded on first use and cached for
// the life of the session.
func (g *Graphics) DrawImage(path string, x, y int, scale, rotDeg float64) error {
	g.compositor.mustCompose("DrawImage")
	tex, err := g.textures.Load(path)
	if err != nil {
		return err
	}
	if scale == 0 {
		scale = 1
	}
	g.backend.DrawTexture(tex, float64(x), float64(y), scale, rotDeg)
	return nil
}

// ImageSize returns the pixel size of the image at path, loading it into the
// cache if needed.
func (g *Graphics) ImageSize(path string) (w, h int, err error) {
	tex, err := g.textures.Load(path)
	if err != nil {
		return 0, 0, err
	}
	w, h = tex.Size()
	return w, h, nil
}

// Textures returns the session's texture cache.
func (g *Graphics) Textures() *TextureCache { return g.textures }
