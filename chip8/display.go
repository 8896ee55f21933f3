package chip8

// BitDisplay is the default in-memory Display: a flat bool grid sized
// to the standard 64x32 CHIP-8 framebuffer. It has no notion of a
// window or a refresh rate; Present is a no-op. Hosts that want pixels
// on screen wrap a real backend around the same Display contract
// instead of using this one.
type BitDisplay struct {
	pixels [displayWidth * displayHeight]bool
}

// NewBitDisplay creates an all-off BitDisplay.
func NewBitDisplay() *BitDisplay {
	return &BitDisplay{}
}

func (d *BitDisplay) index(x, y int) int {
	return y*displayWidth + x
}

// XorPixel implements Display.
func (d *BitDisplay) XorPixel(x, y int) bool {
	i := d.index(x, y)
	was := d.pixels[i]
	d.pixels[i] = !was
	return was
}

// Clear implements Display.
func (d *BitDisplay) Clear() {
	d.pixels = [displayWidth * displayHeight]bool{}
}

// Present implements Display as a no-op; BitDisplay has no frame
// boundary of its own.
func (d *BitDisplay) Present() {}

// Pixel reports whether the pixel at (x, y) is currently on. It is
// meant for tests and for a host's own render loop to read back what
// the VM drew.
func (d *BitDisplay) Pixel(x, y int) bool {
	return d.pixels[d.index(x, y)]
}

// Width and Height report the fixed CHIP-8 framebuffer dimensions.
func (d *BitDisplay) Width() int  { return displayWidth }
func (d *BitDisplay) Height() int { return displayHeight }
