package chip8

import (
	"bytes"
	"testing"
)

func TestAssembleSourceScenario1(t *testing.T) {
	src := "CLS\n LD V0, 0x2A\n ADD V0, 1\n"
	want := []byte{0x00, 0xE0, 0x60, 0x2A, 0x70, 0x01}

	asm := AssembleSource(src)
	if asm.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", asm.Report.Diagnostics)
	}
	if !bytes.Equal(asm.ROM, want) {
		t.Errorf("ROM = % X, want % X", asm.ROM, want)
	}
}

func TestAssembleResolvesForwardAndBackwardLabels(t *testing.T) {
	src := "start:\n JP next\n next:\n JP start\n"
	asm := AssembleSource(src)
	if asm.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", asm.Report.Diagnostics)
	}
	// start = 0x200, next = 0x202
	want := []byte{0x12, 0x02, 0x12, 0x00}
	if !bytes.Equal(asm.ROM, want) {
		t.Errorf("ROM = % X, want % X", asm.ROM, want)
	}
}

func TestAssembleReportsUndefinedLabel(t *testing.T) {
	asm := AssembleSource("JP nowhere\n")
	if !asm.Report.HasErrors() {
		t.Fatal("expected an undefined-label error")
	}
}

func TestAssembleReportsDuplicateLabel(t *testing.T) {
	asm := AssembleSource("a:\n CLS\n a:\n RET\n")
	if !asm.Report.HasErrors() {
		t.Fatal("expected a duplicate-label error")
	}
}

func TestAssembleReportsOutOfRangeImmediate(t *testing.T) {
	asm := AssembleSource("LD V0, 0x100\n")
	if !asm.Report.HasErrors() {
		t.Fatal("expected a range error for an out-of-range byte immediate")
	}
}

func TestAssembleDoesNotFailFast(t *testing.T) {
	// two independent errors on two different lines; both should be
	// reported from a single pass.
	asm := AssembleSource("JP nowhere\n LD V0, 0x100\n")
	if n := countErrors(asm.Report); n < 2 {
		t.Fatalf("expected at least 2 errors, got %d", n)
	}
}

func TestAssembleDirectives(t *testing.T) {
	src := ".byte 0xAB\n .word 0x1234\n .space 2\n"
	asm := AssembleSource(src)
	if asm.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", asm.Report.Diagnostics)
	}
	want := []byte{0xAB, 0x12, 0x34, 0x00, 0x00}
	if !bytes.Equal(asm.ROM, want) {
		t.Errorf("ROM = % X, want % X", asm.ROM, want)
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	src := "CLS\n LD V0, 0x2A\n ADD V0, 1\n LD I, 0x300\n DRW V0, V1, 4\n RET\n"
	asm := AssembleSource(src)
	if asm.Report.HasErrors() {
		t.Fatalf("unexpected errors: %v", asm.Report.Diagnostics)
	}

	listing := DisassembleText(asm.ROM)
	reasm := AssembleSource(listing)
	if reasm.Report.HasErrors() {
		t.Fatalf("re-assembling disassembly failed: %v", reasm.Report.Diagnostics)
	}

	if !bytes.Equal(reasm.ROM, asm.ROM) {
		t.Errorf("round trip ROM = % X, want % X", reasm.ROM, asm.ROM)
	}
}
