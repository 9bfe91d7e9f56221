package easel

import "strconv"

// Key identifies a keyboard key independently of the backend. Each backend
// maps Keys to its own codes; unmapped keys always read as released.
type Key uint8

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyShiftLeft
	KeyControlLeft
	KeyAltLeft

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

// Keys returns every defined key except KeyNone, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// IsLetter reports whether k is one of KeyA..KeyZ.
func (k Key) IsLetter() bool { return k >= KeyA && k <= KeyZ }

// IsDigit reports whether k is one of Key0..Key9.
func (k Key) IsDigit() bool { return k >= Key0 && k <= Key9 }

// IsFunction reports whether k is one of KeyF1..KeyF12.
func (k Key) IsFunction() bool { return k >= KeyF1 && k <= KeyF12 }

var keyNames = [...]string{
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyEscape:      "Escape",
	KeyTab:         "Tab",
	KeyBackspace:   "Backspace",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyShiftLeft:   "ShiftLeft",
	KeyControlLeft: "ControlLeft",
	KeyAltLeft:     "AltLeft",
	keyCount:       "",
}

func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k.IsLetter():
		return string(rune('A' + k - KeyA))
	case k.IsDigit():
		return string(rune('0' + k - Key0))
	case k.IsFunction():
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k < keyCount && keyNames[k] != "":
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey looks a key up by its String form.
func ParseKey(name string) (Key, bool) {
	for k := KeyNone; k < keyCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return KeyNone, false
}
