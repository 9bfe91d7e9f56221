//go:build raylib

package ray

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/phanxgames/easel"
)

var raylibKeys = map[easel.Key]int32{
	easel.KeyA: rl.KeyA, easel.KeyB: rl.KeyB, easel.KeyC: rl.KeyC, easel.KeyD: rl.KeyD,
	easel.KeyE: rl.KeyE, easel.KeyF: rl.KeyF, easel.KeyG: rl.KeyG, easel.KeyH: rl.KeyH,
	easel.KeyI: rl.KeyI, easel.KeyJ: rl.KeyJ, easel.KeyK: rl.KeyK, easel.KeyL: rl.KeyL,
	easel.KeyM: rl.KeyM, easel.KeyN: rl.KeyN, easel.KeyO: rl.KeyO, easel.KeyP: rl.KeyP,
	easel.KeyQ: rl.KeyQ, easel.KeyR: rl.KeyR, easel.KeyS: rl.KeyS, easel.KeyT: rl.KeyT,
	easel.KeyU: rl.KeyU, easel.KeyV: rl.KeyV, easel.KeyW: rl.KeyW, easel.KeyX: rl.KeyX,
	easel.KeyY: rl.KeyY, easel.KeyZ: rl.KeyZ,

	easel.Key0: rl.KeyZero, easel.Key1: rl.KeyOne, easel.Key2: rl.KeyTwo,
	easel.Key3: rl.KeyThree, easel.Key4: rl.KeyFour, easel.Key5: rl.KeyFive,
	easel.Key6: rl.KeySix, easel.Key7: rl.KeySeven, easel.Key8: rl.KeyEight,
	easel.Key9: rl.KeyNine,

	easel.KeyF1: rl.KeyF1, easel.KeyF2: rl.KeyF2, easel.KeyF3: rl.KeyF3,
	easel.KeyF4: rl.KeyF4, easel.KeyF5: rl.KeyF5, easel.KeyF6: rl.KeyF6,
	easel.KeyF7: rl.KeyF7, easel.KeyF8: rl.KeyF8, easel.KeyF9: rl.KeyF9,
	easel.KeyF10: rl.KeyF10, easel.KeyF11: rl.KeyF11, easel.KeyF12: rl.KeyF12,

	easel.KeySpace:       rl.KeySpace,
	easel.KeyEnter:       rl.KeyEnter,
	easel.KeyEscape:      rl.KeyEscape,
	easel.KeyTab:         rl.KeyTab,
	easel.KeyBackspace:   rl.KeyBackspace,
	easel.KeyLeft:        rl.KeyLeft,
	easel.KeyRight:       rl.KeyRight,
	easel.KeyUp:          rl.KeyUp,
	easel.KeyDown:        rl.KeyDown,
	easel.KeyShiftLeft:   rl.KeyLeftShift,
	easel.KeyControlLeft: rl.KeyLeftControl,
	easel.KeyAltLeft:     rl.KeyLeftAlt,
}
