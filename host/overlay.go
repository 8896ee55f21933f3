package host

import (
	"fmt"

	"github.com/kitrofimov/chip8vm/chip8"
)

// EventKind classifies one entry in Overlay's trail.
type EventKind int

const (
	EventROMLoaded EventKind = iota
	EventReset
	EventFault
)

func (k EventKind) String() string {
	switch k {
	case EventROMLoaded:
		return "rom"
	case EventReset:
		return "reset"
	case EventFault:
		return "fault"
	default:
		return "?"
	}
}

// Event is one line of Overlay's trail: what happened, and the VM's PC
// at the time it happened.
type Event struct {
	Kind EventKind
	PC   uint16
	Text string
}

func (e Event) String() string {
	return fmt.Sprintf("%03X %-5s %s", e.PC, e.Kind, e.Text)
}

// Overlay renders a text snapshot of VM state for the debug view:
// disassembly around PC, the V-register/timer dump, and a scrolling
// trail of the ROM loads, resets, and faults the run loop reports
// through Record. It only reads VM state; nothing here mutates the VM.
type Overlay struct {
	trail []Event
	pos   int
}

// NewOverlay creates an Overlay with an empty trail.
func NewOverlay() *Overlay {
	return &Overlay{trail: make([]Event, 0, 64)}
}

// Record appends an event to the trail. If the view was already
// scrolled to the end, it follows the new entry; otherwise the user's
// scroll position is left alone.
func (o *Overlay) Record(kind EventKind, pc uint16, text string) {
	atEnd := o.pos == len(o.trail)
	o.trail = append(o.trail, Event{Kind: kind, PC: pc, Text: text})
	if atEnd {
		o.pos = len(o.trail)
	}
}

// Trail returns up to n of the most recently scrolled-to event lines.
func (o *Overlay) Trail(n int) []string {
	start := o.pos - n
	if start < 0 {
		start = 0
	}

	end := len(o.trail)
	if start+n < end {
		end = start + n
	}

	lines := make([]string, 0, end-start)
	for _, e := range o.trail[start:end] {
		lines = append(lines, e.String())
	}
	return lines
}

// ScrollUp moves the trail view back one event, clamped at the start.
func (o *Overlay) ScrollUp() {
	if o.pos > 0 {
		o.pos--
	}
}

// ScrollDown moves the trail view forward one event, clamped at the
// end so it never runs ahead of the last recorded entry.
func (o *Overlay) ScrollDown() {
	if o.pos < len(o.trail) {
		o.pos++
	}
}

// Home scrolls the trail to its first event.
func (o *Overlay) Home() { o.pos = 0 }

// End scrolls the trail to its most recent event.
func (o *Overlay) End() { o.pos = len(o.trail) }

// Disassembly returns up to n instruction lines centered on vm.PC,
// reusing the core disassembler rather than re-decoding opcodes here.
func (o *Overlay) Disassembly(vm *chip8.VM, n int) []string {
	start := int(vm.PC) - n
	if start < 0x200 {
		start = 0x200
	}
	if start%2 != 0 {
		start--
	}

	end := start + n*2
	if end > len(vm.Memory) {
		end = len(vm.Memory)
	}

	lines := chip8.Disassemble(vm.Memory[start:end])

	for i, addr := 0, start; addr < end; i, addr = i+1, addr+2 {
		marker := "  "
		if addr == int(vm.PC) {
			marker = "->"
		}
		if i < len(lines) {
			lines[i] = fmt.Sprintf("%s %03X  %s", marker, addr, lines[i])
		}
	}

	return lines
}

// Registers returns one line per V-register plus PC/SP/I/DT/ST.
func (o *Overlay) Registers(vm *chip8.VM) []string {
	lines := make([]string, 0, 21)
	for i := 0; i < 16; i++ {
		lines = append(lines, fmt.Sprintf("V%X = 0x%02X", i, vm.V[i]))
	}
	lines = append(lines,
		fmt.Sprintf("PC = 0x%04X", vm.PC),
		fmt.Sprintf("SP = 0x%02X", vm.SP),
		fmt.Sprintf("I  = 0x%04X", vm.I),
		fmt.Sprintf("DT = 0x%02X", vm.DT),
		fmt.Sprintf("ST = 0x%02X", vm.ST),
	)
	return lines
}
