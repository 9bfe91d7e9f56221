package soft

import (
	"image"
	"sync"
)

// Presenter shows finished frames.
type Presenter interface {
	// Open prepares the output for a w×h window and returns the size the
	// window actually has.
	Open(title string, w, h int) (int, int, error)
	// Present shows frame. frame is reused after Present returns.
	Present(frame *image.RGBA) error
	Close() error
}

// MonitorSizer is implemented by presenters that know the monitor size.
type MonitorSizer interface {
	MonitorSize() (int, int)
}

// CloseRequester is implemented by presenters whose output can be closed
// by the user.
type CloseRequester interface {
	CloseRequested() bool
}

// MemoryPresenter keeps a copy of the last presented frame.
type MemoryPresenter struct {
	mu     sync.Mutex
	title  string
	last   *image.RGBA
	frames int
	closed bool
}

func NewMemoryPresenter() *MemoryPresenter {
	return &MemoryPresenter{}
}

func (p *MemoryPresenter) Open(title string, w, h int) (int, int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
	p.closed = false
	return w, h, nil
}

func (p *MemoryPresenter) Present(frame *image.RGBA) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil || p.last.Bounds() != frame.Bounds() {
		p.last = image.NewRGBA(frame.Bounds())
	}
	copy(p.last.Pix, frame.Pix)
	p.frames++
	return nil
}

func (p *MemoryPresenter) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// Last returns the most recent frame, or nil before the first one.
func (p *MemoryPresenter) Last() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	out := image.NewRGBA(p.last.Bounds())
	copy(out.Pix, p.last.Pix)
	return out
}

// Frames returns how many frames were presented.
func (p *MemoryPresenter) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Title returns the window title passed to Open.
func (p *MemoryPresenter) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// Closed reports whether Close was called.
func (p *MemoryPresenter) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
