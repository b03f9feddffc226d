package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// tone generates a fixed-frequency wave for a number of samples
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone returns a streamer playing freq for duration
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// fade scales a stream linearly to silence over its last release samples
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
	gain     float64
}

// NewFade wraps s, which must last duration, with a release ramp and a gain.
func NewFade(s beep.Streamer, duration, release time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		total:    rate.N(duration),
		release:  rate.N(release),
		gain:     gain,
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	releaseStart := f.total - f.release
	for i := 0; i < n; i++ {
		vol := f.gain
		if f.release > 0 && f.position >= releaseStart {
			vol *= math.Max(0, float64(f.total-f.position)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// EatSound is two short rising blips
func EatSound(rate beep.SampleRate) beep.Streamer {
	blip := func(freq float64) beep.Streamer {
		d := 45 * time.Millisecond
		return NewFade(NewTone(freq, d, WaveSine, rate), d, 20*time.Millisecond, 0.4, rate)
	}
	return beep.Seq(blip(660), blip(990))
}

// GameOverSound is a low falling buzz
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	part := func(freq float64, d time.Duration) beep.Streamer {
		return NewFade(NewTone(freq, d, WaveSquare, rate), d, d/2, 0.25, rate)
	}
	return beep.Seq(part(220, 150*time.Millisecond), part(110, 300*time.Millisecond))
}
