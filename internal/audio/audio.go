// Package audio synthesizes the machine hum. Output only: a
// fundamental at the electrical frequency, a commutation ripple
// harmonic at the segment rate, amplitude tracking armature current.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// pitchScale maps electrical Hz (polePairs*omega/2pi, a few Hz at
	// slider ranges) into an audible register.
	pitchScale = 24.0
)

type Hum struct {
	stream *portaudio.Stream

	mu      sync.Mutex
	speed   float64
	current float64

	// Smoothed targets, so slider jumps do not click.
	freqSmooth float64
	ampSmooth  float64

	// Oscillators accumulate phase in cycles. Evaluating against
	// absolute time would turn frequency glides into chirps.
	phase       float64
	ripplePhase float64

	filterState float64
}

func NewHum() *Hum {
	return &Hum{}
}

// Start opens the default output stream. Callers treat a failure as
// "no audio device": the visualizer keeps running silently.
func (h *Hum) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, h.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	h.stream = stream
	return nil
}

func (h *Hum) Stop() {
	if h.stream != nil {
		h.stream.Stop()
		h.stream.Close()
		h.stream = nil
	}
	portaudio.Terminate()
}

// Update feeds the current operating point. Called from the UI thread;
// the audio callback reads a snapshot under the mutex.
func (h *Hum) Update(s *machine.State) {
	h.mu.Lock()
	h.speed = s.Speed()
	h.current = s.ArmatureCurrent()
	h.mu.Unlock()
}

// triangle is a smooth, buzz-free oscillator.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (h *Hum) process(out [][]float32) {
	h.mu.Lock()
	speed, current := h.speed, h.current
	h.mu.Unlock()

	electricalHz := machine.PolePairs * speed / (2 * math.Pi)
	targetFreq := electricalHz * pitchScale
	segmentHz := machine.CommutatorSegments * speed / (2 * math.Pi)
	targetAmp := 0.25 * current / machine.MaxCurrent

	dt := 1.0 / float64(SampleRate)

	for i := 0; i < len(out[0]); i++ {
		// Per-sample smoothing keeps pitch glides continuous.
		h.freqSmooth = h.freqSmooth*0.9995 + targetFreq*0.0005
		h.ampSmooth = h.ampSmooth*0.9995 + targetAmp*0.0005

		fundamental := triangle(h.phase)
		ripple := 0.3 * triangle(h.ripplePhase)

		sample := (fundamental + ripple) * h.ampSmooth

		// Soften the triangles toward a sine-ish hum.
		var filtered float64
		filtered, h.filterState = lpf(sample, 800.0, dt, h.filterState)

		out[0][i] = float32(filtered)
		out[1][i] = float32(filtered)

		h.phase += h.freqSmooth * dt
		if h.phase >= 1 {
			h.phase--
		}
		h.ripplePhase += segmentHz * pitchScale * dt
		if h.ripplePhase >= 1 {
			h.ripplePhase--
		}
	}
}
