package host

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	vmWidth  = 64
	vmHeight = 32
)

// Display is an SDL2-backed chip8.Display. It keeps its own bit plane
// (so XorPixel can report the prior pixel value without round
// tripping through the GPU) and blits that plane onto a render target
// texture only when Present is called.
type Display struct {
	renderer *sdl.Renderer
	target   *sdl.Texture
	scale    int32

	plane [vmWidth * vmHeight]bool
}

// NewDisplay creates a Display that renders into renderer's current
// window, scaled up by an integer factor: the logical 64x32 framebuffer
// is drawn to an offscreen texture, then stretched onto the window.
func NewDisplay(renderer *sdl.Renderer, scale int32) (*Display, error) {
	if scale < 1 {
		scale = 1
	}

	target, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET,
		vmWidth, vmHeight,
	)
	if err != nil {
		return nil, err
	}

	return &Display{renderer: renderer, target: target, scale: scale}, nil
}

func index(x, y int) int {
	return y*vmWidth + x
}

// XorPixel implements chip8.Display.
func (d *Display) XorPixel(x, y int) bool {
	i := index(x, y)
	was := d.plane[i]
	d.plane[i] = !was
	return was
}

// Clear implements chip8.Display.
func (d *Display) Clear() {
	d.plane = [vmWidth * vmHeight]bool{}
}

// Present implements chip8.Display by redrawing the bit plane to the
// offscreen texture and stretching it onto the window.
func (d *Display) Present() {
	d.renderer.SetRenderTarget(d.target)
	d.renderer.SetDrawColor(16, 16, 16, 255)
	d.renderer.Clear()

	d.renderer.SetDrawColor(235, 235, 235, 255)
	for y := 0; y < vmHeight; y++ {
		for x := 0; x < vmWidth; x++ {
			if d.plane[index(x, y)] {
				d.renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	d.renderer.SetRenderTarget(nil)
	d.renderer.Copy(d.target, nil, &sdl.Rect{
		W: vmWidth * d.scale,
		H: vmHeight * d.scale,
	})
	d.renderer.Present()
}

// Destroy releases the underlying texture.
func (d *Display) Destroy() {
	d.target.Destroy()
}
