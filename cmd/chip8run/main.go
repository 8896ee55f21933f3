package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/kitrofimov/chip8vm/chip8"
	"github.com/kitrofimov/chip8vm/host"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL requires all calls to come from the thread that initialized
	// the video subsystem.
	runtime.LockOSThread()
}

func main() {
	scale := flag.Int("scale", 10, "integer scale factor for the 64x32 framebuffer")
	flag.Parse()

	romPath := flag.Arg(0)
	if romPath == "" {
		picked, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "rom").Load()
		if err != nil {
			log.Fatalf("no ROM given and no file chosen: %v", err)
		}
		romPath = picked
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(
		int32(64*(*scale)), int32(32*(*scale)), sdl.WINDOW_SHOWN,
	)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()
	defer renderer.Destroy()
	window.SetTitle(fmt.Sprintf("chip8run - %s", romPath))

	display, err := host.NewDisplay(renderer, int32(*scale))
	if err != nil {
		log.Fatal(err)
	}
	defer display.Destroy()

	keypad := host.NewKeypad()

	vm := chip8.New()
	vm.Display = display
	vm.Keypad = keypad
	vm.Rng = host.NewRng()

	if err := vm.LoadROM(rom); err != nil {
		log.Fatal(err)
	}

	beeper, err := host.NewBeeper(vm)
	if err != nil {
		log.Printf("audio device unavailable: %v", err)
		beeper = nil
	}
	if beeper != nil {
		defer beeper.Close()
	}

	overlay := host.NewOverlay()
	overlay.Record(host.EventROMLoaded, vm.PC, romPath)

	paused := false

	// The instruction rate is paced by a ticker, since something has to
	// throttle the loop; the 60 Hz timer/video tick is paced through
	// clock instead, so Clock is the actual seam deciding when
	// TickTimers/Present fire rather than a second, parallel ticker.
	clock := host.SystemClock{}
	const videoIntervalNs = int64(time.Second / 60)
	nextVideo := clock.Now() + videoIntervalNs

	instructionClock := time.NewTicker(time.Second / 500)
	defer instructionClock.Stop()

	for {
		keepRunning, hotkey := host.PollEvents()
		if !keepRunning {
			return
		}

		switch hotkey {
		case sdl.SCANCODE_ESCAPE:
			return
		case sdl.SCANCODE_BACKSPACE:
			vm.LoadROM(rom)
			overlay.Record(host.EventReset, vm.PC, "")
		case sdl.SCANCODE_SPACE:
			paused = !paused
		case sdl.SCANCODE_F10:
			if paused {
				step(vm, overlay)
			}
		case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
			overlay.ScrollUp()
		case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
			overlay.ScrollDown()
		case sdl.SCANCODE_HOME:
			overlay.Home()
		case sdl.SCANCODE_END:
			overlay.End()
		}

		<-instructionClock.C
		if !paused {
			step(vm, overlay)
		}

		if now := clock.Now(); now >= nextVideo {
			nextVideo = now + videoIntervalNs
			vm.TickTimers()
			vm.Display.Present()
			if beeper != nil {
				beeper.Update()
			}
			if paused {
				printOverlay(overlay, vm)
			}
		}
	}
}

func step(vm *chip8.VM, overlay *host.Overlay) {
	if err := vm.Step(); err != nil {
		overlay.Record(host.EventFault, vm.PC, err.Error())
		log.Println(err)
	}
}

func printOverlay(overlay *host.Overlay, vm *chip8.VM) {
	for _, line := range overlay.Registers(vm) {
		fmt.Println(line)
	}
	for _, line := range overlay.Disassembly(vm, 10) {
		fmt.Println(line)
	}
	for _, line := range overlay.Trail(5) {
		fmt.Println(line)
	}
}
