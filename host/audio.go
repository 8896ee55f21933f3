package host

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleRate = 22050
	toneHz     = 440.0
)

// SoundSource is the subset of chip8.VM the beeper needs: whether the
// sound timer is currently running. Depending on this small interface
// instead of *chip8.VM directly keeps host free of any import back
// into the core package.
type SoundSource interface {
	SoundActive() bool
}

// Beeper drives an SDL audio device with a constant square wave
// whenever its SoundSource reports the sound timer active, silence
// otherwise. Samples are generated and queued from Go via Update,
// needing no cgo callback bridge into SDL.
type Beeper struct {
	device sdl.AudioDeviceID
	spec   sdl.AudioSpec
	phase  float64
	source SoundSource
}

// NewBeeper opens an SDL audio device and returns a Beeper bound to
// source. The device starts unpaused; Update decides each frame
// whether to queue tone or silence.
func NewBeeper(source SoundSource) (*Beeper, error) {
	want := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  512,
	}

	device, err := sdl.OpenAudioDevice("", false, want, nil, 0)
	if err != nil {
		return nil, err
	}

	sdl.PauseAudioDevice(device, false)

	return &Beeper{device: device, spec: *want, source: source}, nil
}

// Update queues one frame's worth of samples: a square wave at toneHz
// if the sound source is active, silence otherwise. Call this once
// per host frame.
func (b *Beeper) Update() {
	const frameSamples = 512

	buf := make([]int16, frameSamples)

	if b.source.SoundActive() {
		step := toneHz / float64(b.spec.Freq)
		for i := range buf {
			if math.Mod(b.phase, 1.0) < 0.5 {
				buf[i] = 8000
			} else {
				buf[i] = -8000
			}
			b.phase += step
		}
	} else {
		b.phase = 0
	}

	sdl.QueueAudio(b.device, int16SliceToBytes(buf))
}

// Close stops and releases the audio device.
func (b *Beeper) Close() {
	sdl.CloseAudioDevice(b.device)
}

func int16SliceToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	return buf
}
