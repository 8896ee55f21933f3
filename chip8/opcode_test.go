package chip8

import "testing"

// every concrete word below is a legal encoding of some instruction;
// decoding it and re-encoding must return the exact same bits.
var roundTripWords = []uint16{
	0x00E0, 0x00EE,
	0x0123,
	0x1234, 0x2345,
	0x3A12, 0x4A12, 0x5AB0,
	0x6A12, 0x7A12,
	0x8AB0, 0x8AB1, 0x8AB2, 0x8AB3, 0x8AB4, 0x8AB5, 0x8AB6, 0x8AB7, 0x8ABE,
	0x9AB0,
	0xA123, 0xB123,
	0xCA12, 0xDAB5,
	0xEA9E, 0xEAA1,
	0xFA07, 0xFA0A, 0xFA15, 0xFA18, 0xFA1E, 0xFA29, 0xFA33, 0xFA55, 0xFA65,
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, w := range roundTripWords {
		in, ok := Decode(w)
		if !ok {
			t.Errorf("word 0x%04X did not decode", w)
			continue
		}
		if got := Encode(in); got != w {
			t.Errorf("Encode(Decode(0x%04X)) = 0x%04X, want 0x%04X", w, got, w)
		}
	}
}

func TestDecodeRejectsUnknownWords(t *testing.T) {
	// 0x8xyF and 0xE0xx (other than 9E/A1) aren't assigned to any
	// instruction.
	for _, w := range []uint16{0x8ABF, 0xE012, 0xF0FF} {
		if _, ok := Decode(w); ok {
			t.Errorf("word 0x%04X unexpectedly decoded", w)
		}
	}
}

func TestInstructionStringMatchesCanonicalSyntax(t *testing.T) {
	tests := []struct {
		in   Instruction
		want string
	}{
		{Instruction{Op: OpCLS}, "CLS"},
		{Instruction{Op: OpJP, Nnn: 0x204}, "JP 0x204"},
		{Instruction{Op: OpLDVxKK, Vx: 0, Kk: 0x2A}, "LD V0, 0x2A"},
		{Instruction{Op: OpADDVxVy, Vx: 0, Vy: 1}, "ADD V0, V1"},
		{Instruction{Op: OpDRW, Vx: 2, Vy: 3, N: 5}, "DRW V2, V3, 5"},
		{Instruction{Op: OpLDVxIndirect, Vx: 0xA}, "LD VA, [I]"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
