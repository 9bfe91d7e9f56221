package easel

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenBackend runs easel on Ebitengine. Ebitengine owns the frame loop, so
// sessions on this backend must be driven with Graphics.Run. The step runs
// inside Game.Draw, at most once per Update tick, so SetTargetFPS sets the
// tick rate. Key presses are collected on every Update tick and handed to the
// next step.
type EbitenBackend struct {
	width, height int

	screen *ebiten.Image
	target *ebiten.Image
	points pointBuffer

	fontSource *text.GoTextFaceSource
	faces      map[int]*text.GoTextFace

	pointerOffset Vec2
	pointerScale  Vec2

	borderless bool
	restoreX   int
	restoreY   int
	restoreW   int
	restoreH   int

	fps       int
	lastStep  time.Time
	frameTime float64

	keys keyLatch

	step    func() (bool, error)
	pending bool
	stopped bool
	loopErr error
}

// NewEbitenBackend returns a backend that opens an Ebitengine window.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{
		faces:        make(map[int]*text.GoTextFace),
		pointerScale: Vec2{X: 1, Y: 1},
		fps:          DefaultTargetFPS,
	}
}

// --- Window ---

func (b *EbitenBackend) OpenWindow(title string, w, h int) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("parse default font: %w", err)
	}
	b.fontSource = source
	b.width, b.height = w, h

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	return nil
}

func (b *EbitenBackend) CloseWindow() error {
	b.faces = make(map[int]*text.GoTextFace)
	b.points.release()
	return nil
}

func (b *EbitenBackend) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

func (b *EbitenBackend) WindowSize() (int, int) {
	return b.width, b.height
}

func (b *EbitenBackend) SetTargetFPS(fps int) {
	b.fps = fps
	ebiten.SetTPS(fps)
}

func (b *EbitenBackend) FrameTime() float64 {
	return b.frameTime
}

// ToggleBorderless removes the window decoration and stretches the window
// over the monitor, or restores the previous window.
func (b *EbitenBackend) ToggleBorderless() {
	if b.borderless {
		b.borderless = false
		ebiten.SetWindowDecorated(true)
		ebiten.SetWindowSize(b.restoreW, b.restoreH)
		ebiten.SetWindowPosition(b.restoreX, b.restoreY)
		return
	}
	b.borderless = true
	b.restoreX, b.restoreY = ebiten.WindowPosition()
	b.restoreW, b.restoreH = ebiten.WindowSize()
	mw, mh := ebiten.Monitor().Size()
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowSize(mw, mh)
}

func (b *EbitenBackend) ToggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
}

func (b *EbitenBackend) IsWindowFullscreen() bool {
	return ebiten.IsFullscreen()
}

// Loop runs the Ebitengine game loop until step stops it.
func (b *EbitenBackend) Loop(step func() (bool, error)) error {
	b.step = step
	b.stopped = false
	b.loopErr = nil
	if err := ebiten.RunGame(&ebitenGame{b: b}); err != nil {
		return err
	}
	return b.loopErr
}

// ebitenGame adapts the backend to ebiten.Game.
type ebitenGame struct {
	b *EbitenBackend
}

func (g *ebitenGame) Update() error {
	if g.b.stopped || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	g.b.keys.sample(func(k Key) int {
		ek, ok := ebitenKey(k)
		if !ok {
			return 0
		}
		return inpututil.KeyPressDuration(ek)
	}, ebiten.TPS())
	g.b.pending = true
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	b := g.b
	if !b.pending || b.stopped {
		return
	}
	b.pending = false
	b.screen = screen

	now := time.Now()
	if b.lastStep.IsZero() {
		b.frameTime = 1 / float64(b.fps)
	} else {
		b.frameTime = now.Sub(b.lastStep).Seconds()
	}
	b.lastStep = now

	cont, err := b.step()
	b.keys.clear()
	if err != nil {
		b.loopErr = err
	}
	if !cont || err != nil {
		b.stopped = true
	}
}

// Layout keeps the screen at the window's pixel size; letterboxing is done by
// the compositor, not by Ebitengine.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	g.b.width = int(math.Ceil(float64(outsideWidth) * s))
	g.b.height = int(math.Ceil(float64(outsideHeight) * s))
	return g.b.width, g.b.height
}

// --- Painter ---

type ebitenSurface struct {
	img *ebiten.Image
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) RowsInverted() bool { return false }

func (b *EbitenBackend) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface size %dx%d must be positive", w, h)
	}
	return &ebitenSurface{img: ebiten.NewImage(w, h)}, nil
}

func (b *EbitenBackend) ReleaseSurface(s Surface) {
	if es, ok := s.(*ebitenSurface); ok && es.img != nil {
		es.img.Deallocate()
		es.img = nil
	}
}

func (b *EbitenBackend) BeginSurface(s Surface) {
	b.setTarget(s.(*ebitenSurface).img)
}

func (b *EbitenBackend) EndSurface() {
	b.setTarget(nil)
}

func (b *EbitenBackend) BeginScreen() {
	b.setTarget(b.screen)
}

// Present flushes pending points. Ebitengine presents after Draw returns.
func (b *EbitenBackend) Present() {
	b.setTarget(nil)
}

func (b *EbitenBackend) setTarget(img *ebiten.Image) {
	b.flushPoints()
	b.target = img
}

func (b *EbitenBackend) flushPoints() {
	if b.target != nil {
		b.points.flush(b.target)
	}
}

func (b *EbitenBackend) Clear(c Color) {
	b.points.discard()
	b.target.Fill(c.RGBA())
}

func (b *EbitenBackend) FillRect(x, y, w, h int, c Color) {
	b.flushPoints()
	vector.DrawFilledRect(b.target, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (b *EbitenBackend) StrokeRect(x, y, w, h int, c Color) {
	b.flushPoints()
	vector.StrokeRect(b.target, float32(x)+0.5, float32(y)+0.5, float32(w)-1, float32(h)-1, 1, c.RGBA(), false)
}

func (b *EbitenBackend) FillCircle(cx, cy, r int, c Color) {
	b.flushPoints()
	vector.DrawFilledCircle(b.target, float32(cx), float32(cy), float32(r), c.RGBA(), true)
}

func (b *EbitenBackend) StrokeCircle(cx, cy, r int, c Color) {
	b.flushPoints()
	vector.StrokeCircle(b.target, float32(cx), float32(cy), float32(r), 1, c.RGBA(), true)
}

func (b *EbitenBackend) Line(x1, y1, x2, y2 int, c Color) {
	b.flushPoints()
	vector.StrokeLine(b.target, float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, 1, c.RGBA(), false)
}

// Point buffers single pixels and uploads them in one WritePixels when the
// next non-point operation or target change happens.
func (b *EbitenBackend) Point(x, y int, c Color) {
	bounds := b.target.Bounds()
	b.points.set(bounds.Dx(), bounds.Dy(), x, y, c)
}

func (b *EbitenBackend) Text(s string, x, y, size int, c Color) {
	b.flushPoints()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(b.target, s, b.face(size), op)
}

func (b *EbitenBackend) face(size int) *text.GoTextFace {
	if f, ok := b.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: b.fontSource, Size: float64(size)}
	b.faces[size] = f
	return f
}

func (b *EbitenBackend) Blit(s Surface, src, dst Rect) {
	b.flushPoints()
	img := s.(*ebitenSurface).img
	sw, sh := src.Width, math.Abs(src.Height)
	if sw == 0 || sh == 0 {
		return
	}
	sub := img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.X+sw), int(src.Y+sh))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	if src.Height < 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, sh)
	}
	op.GeoM.Scale(dst.Width/sw, dst.Height/sh)
	op.GeoM.Translate(dst.X, dst.Y)
	b.target.DrawImage(sub, op)
}

func (b *EbitenBackend) ReadPixels(s Surface) (*image.RGBA, error) {
	es, ok := s.(*ebitenSurface)
	if !ok || es.img == nil {
		return nil, fmt.Errorf("read pixels: surface released")
	}
	bounds := es.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	es.img.ReadPixels(out.Pix)
	return out, nil
}

// pointBuffer collects DrawPoint pixels for one upload.
type pointBuffer struct {
	staging *ebiten.Image
	pix     []byte
	w, h    int
	dirty   bool
}

func (p *pointBuffer) set(w, h, x, y int, c Color) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	if p.w != w || p.h != h {
		p.release()
		p.staging = ebiten.NewImage(w, h)
		p.pix = make([]byte, 4*w*h)
		p.w, p.h = w, h
	}
	i := 4 * (y*w + x)
	p.pix[i] = c.R
	p.pix[i+1] = c.G
	p.pix[i+2] = c.B
	p.pix[i+3] = 0xff
	p.dirty = true
}

func (p *pointBuffer) flush(dst *ebiten.Image) {
	if !p.dirty {
		return
	}
	p.staging.WritePixels(p.pix)
	dst.DrawImage(p.staging, nil)
	p.discard()
}

func (p *pointBuffer) discard() {
	if p.dirty {
		clear(p.pix)
		p.dirty = false
	}
}

func (p *pointBuffer) release() {
	if p.staging != nil {
		p.staging.Deallocate()
		p.staging = nil
	}
	p.pix = nil
	p.w, p.h = 0, 0
	p.dirty = false
}

// --- Textures ---

type ebitenTexture struct {
	img *ebiten.Image
}

func (t *ebitenTexture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (b *EbitenBackend) LoadTexture(path string) (Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &ebitenTexture{img: img}, nil
}

func (b *EbitenBackend) ReleaseTexture(t Texture) {
	if et, ok := t.(*ebitenTexture); ok && et.img != nil {
		et.img.Deallocate()
		et.img = nil
	}
}

func (b *EbitenBackend) DrawTexture(t Texture, x, y, scale, rotDeg float64) {
	b.flushPoints()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotDeg * math.Pi / 180)
	op.GeoM.Translate(x, y)
	b.target.DrawImage(t.(*ebitenTexture).img, op)
}

// --- Input ---

func (b *EbitenBackend) IsKeyDown(k Key) bool {
	ek, ok := ebitenKey(k)
	return ok && ebiten.IsKeyPressed(ek)
}

// IsKeyPressed reports whether k went down or auto-repeated on any Update
// tick since the previous step. Several ticks can run between two draws.
func (b *EbitenBackend) IsKeyPressed(k Key) bool {
	return b.keys.has(k)
}

// keyLatch collects press and repeat ticks until the next step consumes
// them.
type keyLatch struct {
	keys map[Key]bool
}

// sample records every key whose press duration, in ticks, is a press or
// repeat tick at the given tick rate.
func (l *keyLatch) sample(duration func(Key) int, tps int) {
	for _, k := range Keys() {
		if !repeatTick(duration(k), tps) {
			continue
		}
		if l.keys == nil {
			l.keys = make(map[Key]bool)
		}
		l.keys[k] = true
	}
}

func (l *keyLatch) has(k Key) bool { return l.keys[k] }

func (l *keyLatch) clear() { clear(l.keys) }

// repeatTick reports the first tick of a press and then every tps/18 ticks
// once tps/2 ticks have passed.
func repeatTick(d, tps int) bool {
	if d <= 0 {
		return false
	}
	if d == 1 {
		return true
	}
	delay := max(tps/2, 1)
	interval := max(tps/18, 1)
	return d >= delay && (d-delay)%interval == 0
}

func (b *EbitenBackend) SetPointerTransform(offset, scale Vec2) {
	b.pointerOffset = offset
	b.pointerScale = scale
}

func (b *EbitenBackend) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return (float64(x) + b.pointerOffset.X) * b.pointerScale.X,
		(float64(y) + b.pointerOffset.Y) * b.pointerScale.Y
}
