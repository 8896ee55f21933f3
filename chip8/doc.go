// Package chip8 implements the core of a CHIP-8 toolchain: an assembler,
// a disassembler and a virtual machine, all built on one shared opcode
// model.
//
// The graphical host, keyboard, and ROM file I/O are deliberately kept
// outside this package. The VM talks to the outside world through the
// Display, Keypad and Rng interfaces declared in contracts.go; see the
// host package for a concrete SDL2-backed implementation of those.
package chip8
