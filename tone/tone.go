// Package tone makes the approximation audible: a beep oscillator whose
// sine samples come from the CORDIC engine instead of math.Sin. At low
// iteration counts the waveform distortion is clearly audible, which is the
// point of the demo.
package tone

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cordic/cordic"
)

const sampleRate = 44100

// Oscillator streams a CORDIC-generated sine at a fixed frequency for a
// fixed duration.
type Oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	iters    int
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator running iters micro-rotations per
// sample.
func NewOscillator(freq float64, duration time.Duration, iters int, rate beep.SampleRate) *Oscillator {
	return &Oscillator{
		freq:     freq,
		duration: rate.N(duration),
		iters:    iters,
		rate:     rate,
	}
}

func (o *Oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		// Phase stays in [0, 1); the engine wraps the angle itself but a
		// bounded phase keeps precision flat over long tones.
		_, val, err := cordic.SinCos(2*math.Pi*o.phase, o.iters)
		if err != nil {
			return i, false
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *Oscillator) Err() error { return nil }

// envelope applies attack/release shaping so the tone starts and ends
// without clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a stream with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Play synthesizes freq Hz for dur at the given iteration count and blocks
// until playback completes.
func Play(freq float64, dur time.Duration, iters int) error {
	if iters < 1 {
		return cordic.ErrInvalidIterations
	}
	if freq <= 0 {
		return fmt.Errorf("tone: frequency must be positive, got %g", freq)
	}

	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	defer speaker.Close()

	osc := NewOscillator(freq, dur, iters, rate)
	shaped := NewEnvelope(osc, dur, 10*time.Millisecond, 50*time.Millisecond, rate)

	done := make(chan struct{})
	speaker.Play(beep.Seq(shaped, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
