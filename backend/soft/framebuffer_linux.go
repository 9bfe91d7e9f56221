//go:build linux

package soft

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/phanxgames/easel"
)

// DefaultFramebuffer is the device FramebufferPresenter opens when none is
// given.
const DefaultFramebuffer = "/dev/fb0"

// FramebufferPresenter writes frames to a Linux framebuffer device. The
// window always has the device's resolution, so the letterbox compositor
// fits the canvas to the display.
type FramebufferPresenter struct {
	device string
	dev    *fb.Device
	bounds image.Rectangle
	log    easel.Logger
}

// NewFramebufferPresenter returns a presenter for device, or
// DefaultFramebuffer when device is empty. logger may be nil.
func NewFramebufferPresenter(device string, logger easel.Logger) *FramebufferPresenter {
	if device == "" {
		device = DefaultFramebuffer
	}
	if logger == nil {
		logger = easel.NoopLogger{}
	}
	return &FramebufferPresenter{device: device, log: logger}
}

func (p *FramebufferPresenter) Open(title string, w, h int) (int, int, error) {
	dev, err := fb.Open(p.device)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", p.device, err)
	}
	p.dev = dev
	p.bounds = dev.Bounds()
	p.log.Infof("fb", "framebuffer %s open, bounds=%dx%d (requested %dx%d)",
		p.device, p.bounds.Dx(), p.bounds.Dy(), w, h)
	return p.bounds.Dx(), p.bounds.Dy(), nil
}

// MonitorSize is the device resolution.
func (p *FramebufferPresenter) MonitorSize() (int, int) {
	return p.bounds.Dx(), p.bounds.Dy()
}

func (p *FramebufferPresenter) Present(frame *image.RGBA) error {
	if p.dev == nil {
		return fmt.Errorf("framebuffer %s is not open", p.device)
	}
	w := min(frame.Bounds().Dx(), p.bounds.Dx())
	h := min(frame.Bounds().Dy(), p.bounds.Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := frame.RGBAAt(x, y)
			p.dev.Set(p.bounds.Min.X+x, p.bounds.Min.Y+y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		}
	}
	return nil
}

func (p *FramebufferPresenter) Close() error {
	if p.dev != nil {
		p.dev.Close()
		p.dev = nil
	}
	return nil
}
