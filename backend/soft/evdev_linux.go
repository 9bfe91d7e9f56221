//go:build linux

package soft

import (
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/phanxgames/easel"
	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
var evdevKeys = map[uint16]easel.Key{
	1: easel.KeyEscape,
	2: easel.Key1, 3: easel.Key2, 4: easel.Key3, 5: easel.Key4, 6: easel.Key5,
	7: easel.Key6, 8: easel.Key7, 9: easel.Key8, 10: easel.Key9, 11: easel.Key0,
	14: easel.KeyBackspace,
	15: easel.KeyTab,
	16: easel.KeyQ, 17: easel.KeyW, 18: easel.KeyE, 19: easel.KeyR, 20: easel.KeyT,
	21: easel.KeyY, 22: easel.KeyU, 23: easel.KeyI, 24: easel.KeyO, 25: easel.KeyP,
	28: easel.KeyEnter,
	29: easel.KeyControlLeft,
	30: easel.KeyA, 31: easel.KeyS, 32: easel.KeyD, 33: easel.KeyF, 34: easel.KeyG,
	35: easel.KeyH, 36: easel.KeyJ, 37: easel.KeyK, 38: easel.KeyL,
	42: easel.KeyShiftLeft,
	44: easel.KeyZ, 45: easel.KeyX, 46: easel.KeyC, 47: easel.KeyV, 48: easel.KeyB,
	49: easel.KeyN, 50: easel.KeyM,
	56: easel.KeyAltLeft,
	57: easel.KeySpace,
	59: easel.KeyF1, 60: easel.KeyF2, 61: easel.KeyF3, 62: easel.KeyF4, 63: easel.KeyF5,
	64: easel.KeyF6, 65: easel.KeyF7, 66: easel.KeyF8, 67: easel.KeyF9, 68: easel.KeyF10,
	87: easel.KeyF11, 88: easel.KeyF12,
	103: easel.KeyUp,
	105: easel.KeyLeft,
	106: easel.KeyRight,
	108: easel.KeyDown,
}

// EvdevKeyboard reads key events from every /dev/input/event* device it can
// open. Reading needs permission on the devices (usually the input group).
type EvdevKeyboard struct {
	mu   sync.Mutex
	down map[easel.Key]bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
	log    easel.Logger
}

// OpenEvdevKeyboard starts one reader per input device. Devices that cannot
// be opened are skipped; it fails when no reader could be started.
func OpenEvdevKeyboard(ctx context.Context, logger easel.Logger) (*EvdevKeyboard, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		return nil, fmt.Errorf("soft: no evdev devices found")
	}
	return openEvdevKeyboard(ctx, logger, paths, func(path string) (int, error) {
		return unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	})
}

func openEvdevKeyboard(ctx context.Context, logger easel.Logger, paths []string, open func(string) (int, error)) (*EvdevKeyboard, error) {
	if logger == nil {
		logger = easel.NoopLogger{}
	}
	ctx, cancel := context.WithCancel(ctx)
	k := &EvdevKeyboard{
		down:   make(map[easel.Key]bool),
		cancel: cancel,
		log:    logger,
	}
	started := 0
	for _, path := range paths {
		fd, err := open(path)
		if err != nil {
			logger.Errorf("input", "open %s: %v", path, err)
			continue
		}
		k.wg.Add(1)
		go k.read(ctx, path, fd)
		started++
	}
	if started == 0 {
		cancel()
		return nil, fmt.Errorf("soft: none of %d evdev devices could be opened", len(paths))
	}
	logger.Infof("input", "reading keys from %d of %d evdev devices", started, len(paths))
	return k, nil
}

func (k *EvdevKeyboard) KeyDown(key easel.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[key]
}

// Close stops every reader and waits for them to exit.
func (k *EvdevKeyboard) Close() error {
	k.cancel()
	k.wg.Wait()
	return nil
}

// eventLayout returns the size of the timeval prefix and of a whole
// input_event: timeval + u16 type + u16 code + s32 value.
func eventLayout() (tvSize, eventSize int) {
	tvSize = binary.Size(unix.Timeval{})
	return tvSize, tvSize + 2 + 2 + 4
}

func (k *EvdevKeyboard) read(ctx context.Context, path string, fd int) {
	defer k.wg.Done()
	defer unix.Close(fd)

	tvSize, eventSize := eventLayout()
	buf := make([]byte, 64*eventSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			k.log.Errorf("input", "poll %s: %v", path, err)
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		k.apply(buf[:n], tvSize, eventSize)
	}
}

// apply updates key state from a sequence of input_event records. Value 0
// is a release, 1 a press and 2 an autorepeat.
func (k *EvdevKeyboard) apply(data []byte, tvSize, eventSize int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for off := 0; off+eventSize <= len(data); off += eventSize {
		rec := data[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey {
			continue
		}
		key, ok := evdevKeys[code]
		if !ok {
			continue
		}
		if value == 0 {
			delete(k.down, key)
		} else {
			k.down[key] = true
		}
	}
}
