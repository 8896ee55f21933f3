// Package host provides SDL2-backed implementations of the chip8
// package's Display, Keypad, and Rng contracts, plus a debug overlay
// and a scrollable log, for use by the cmd/chip8run frontend.
//
// Nothing in this package is imported by chip8 itself; the dependency
// points one way, from host down to the core, exactly as the core's
// collaborator interfaces intend.
package host
