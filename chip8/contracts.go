package chip8

// Display is the contract the VM uses to turn sprite bits into visible
// pixels. It owns the actual pixel storage; the VM only ever XORs
// through it during DRW and clears it during CLS. A host is free to
// back it with a texture, a terminal grid, or (as NewBitDisplay does)
// a plain in-memory bitset.
type Display interface {
	// XorPixel XORs the pixel at (x, y) on and returns whatever the
	// pixel's value was immediately before the XOR.
	XorPixel(x, y int) (wasSet bool)

	// Clear turns every pixel off.
	Clear()

	// Present is a hint that a frame boundary has been reached; the VM
	// never calls it itself (it has no notion of frames), but hosts
	// that drive VM.Step in a loop call it once per refresh.
	Present()
}

// Keypad is the contract the VM uses to read the 16-key hex keypad.
// The VM only ever polls IsDown; WaitAny exists for hosts that want to
// block outside of the VM's own step loop (the VM itself never blocks,
// see Fx0A's re-execution behavior in VM.Step).
type Keypad interface {
	IsDown(key int) bool
	WaitAny() int
}

// Rng is the pseudo-random byte source behind the RND instruction.
type Rng interface {
	NextByte() uint8
}

// Clock is the host's time source for pacing the 60 Hz timer tick. The
// VM core does not use it directly — TickTimers is driven by whatever
// cadence the host chooses — but the contract is named here because
// hosts need a stable seam to mock it in tests.
type Clock interface {
	Now() int64 // nanoseconds since an arbitrary epoch
}
