package soft

import (
	"sync"

	"github.com/phanxgames/easel"
)

// Keyboard supplies the held state of keys. Implementations may be updated
// from other goroutines; the backend samples them once per frame.
type Keyboard interface {
	KeyDown(k easel.Key) bool
}

// VirtualKeyboard is a Keyboard driven by Press and Release calls, for tests
// and for feeding input from another source.
type VirtualKeyboard struct {
	mu   sync.Mutex
	down map[easel.Key]bool
}

func NewVirtualKeyboard() *VirtualKeyboard {
	return &VirtualKeyboard{down: make(map[easel.Key]bool)}
}

func (v *VirtualKeyboard) Press(k easel.Key) {
	v.mu.Lock()
	v.down[k] = true
	v.mu.Unlock()
}

func (v *VirtualKeyboard) Release(k easel.Key) {
	v.mu.Lock()
	delete(v.down, k)
	v.mu.Unlock()
}

func (v *VirtualKeyboard) KeyDown(k easel.Key) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.down[k]
}

// pollKeys samples the keyboard. keys holds how many consecutive frames
// each key has been down.
func (b *Backend) pollKeys() {
	for _, k := range easel.Keys() {
		if b.keyboard.KeyDown(k) {
			b.keys[k]++
		} else {
			delete(b.keys, k)
		}
	}
}

func (b *Backend) IsKeyDown(k easel.Key) bool {
	return b.keys[k] > 0
}

// IsKeyPressed reports the first frame of a press and then every repeat
// interval once the repeat delay has passed.
func (b *Backend) IsKeyPressed(k easel.Key) bool {
	d := b.keys[k]
	if d == 0 {
		return false
	}
	if d == 1 {
		return true
	}
	delay := max(b.fps/2, 1)
	interval := max(b.fps/18, 1)
	return d >= delay && (d-delay)%interval == 0
}

// SetPointer moves the pointer to (x, y) in window pixels.
func (b *Backend) SetPointer(x, y float64) {
	b.pointerX, b.pointerY = x, y
}

func (b *Backend) SetPointerTransform(offset, scale easel.Vec2) {
	b.offset = offset
	b.scale = scale
}

func (b *Backend) PointerPosition() (float64, float64) {
	return (b.pointerX + b.offset.X) * b.scale.X,
		(b.pointerY + b.offset.Y) * b.scale.Y
}
