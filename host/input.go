package host

import (
	"github.com/veandco/go-sdl2/sdl"
)

// KeyMap maps the physical 4x4 keyboard layout onto the CHIP-8 hex
// keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var KeyMap = map[sdl.Scancode]int{
	sdl.SCANCODE_1: 0x1, sdl.SCANCODE_2: 0x2, sdl.SCANCODE_3: 0x3, sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4, sdl.SCANCODE_W: 0x5, sdl.SCANCODE_E: 0x6, sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7, sdl.SCANCODE_S: 0x8, sdl.SCANCODE_D: 0x9, sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA, sdl.SCANCODE_X: 0x0, sdl.SCANCODE_C: 0xB, sdl.SCANCODE_V: 0xF,
}

// scancodeByKey is KeyMap inverted, built once at init so IsDown can
// look a CHIP-8 key up directly instead of scanning KeyMap every call.
var scancodeByKey [16]sdl.Scancode

func init() {
	for sc, key := range KeyMap {
		scancodeByKey[key] = sc
	}
}

// Keypad is an SDL2-backed chip8.Keypad. It polls live SDL keyboard
// state on every call rather than caching key-down/up events, matching
// how the Rust original's is_key_pressed works: there is no lag
// between a physical key release and the VM no longer seeing it down.
type Keypad struct{}

// NewKeypad creates a Keypad.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// IsDown implements chip8.Keypad.
func (k *Keypad) IsDown(key int) bool {
	if key < 0 || key > 0xF {
		return false
	}
	state := sdl.GetKeyboardState()
	return state[scancodeByKey[key]] != 0
}

// WaitAny implements chip8.Keypad by returning the lowest-numbered key
// currently down, or -1 if none are. It does not itself pump events;
// PollEvents must be called each frame for SDL's keyboard state to be
// current.
func (k *Keypad) WaitAny() int {
	for key := 0; key < 16; key++ {
		if k.IsDown(key) {
			return key
		}
	}
	return -1
}

// PollEvents drains SDL's event queue and reports whether the host
// should keep running. It returns the SDL scancode of a key-down event
// not found in KeyMap as a secondary return (the last such event
// drained), sdl.SCANCODE_UNKNOWN if none, so
// cmd/chip8run can route reset/pause/debug hotkeys without this
// package needing to know about them.
func PollEvents() (keepRunning bool, unmappedKey sdl.Scancode) {
	unmappedKey = sdl.SCANCODE_UNKNOWN

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return false, unmappedKey
		case *sdl.KeyDownEvent:
			if _, ok := KeyMap[ev.Keysym.Scancode]; !ok {
				unmappedKey = ev.Keysym.Scancode
			}
		}
	}

	return true, unmappedKey
}
