package chip8

import "testing"

func TestBitDisplayXorPixelReturnsPriorValue(t *testing.T) {
	d := NewBitDisplay()

	if was := d.XorPixel(3, 4); was {
		t.Error("first XOR on an off pixel reported it as already set")
	}
	if !d.Pixel(3, 4) {
		t.Error("pixel should be on after one XOR")
	}

	if was := d.XorPixel(3, 4); !was {
		t.Error("second XOR on a lit pixel should report it as set")
	}
	if d.Pixel(3, 4) {
		t.Error("pixel should be off after two XORs")
	}
}

func TestBitDisplayClear(t *testing.T) {
	d := NewBitDisplay()
	d.XorPixel(0, 0)
	d.Clear()
	if d.Pixel(0, 0) {
		t.Error("pixel still on after Clear")
	}
}
