package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Tone timings
const (
	bellDuration     = 180 * time.Millisecond
	bellAttack       = 5 * time.Millisecond
	bellRelease      = 150 * time.Millisecond
	errorDuration    = 120 * time.Millisecond
	errorAttack      = 2 * time.Millisecond
	errorRelease     = 40 * time.Millisecond
	bellFrequency    = 880.0
	overtoneFreq     = 1760.0
	errorFrequency   = 140.0
	overtoneBlend    = 0.3
	fundamentalBlend = 0.7
)

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// newEnvelope limits s to duration and shapes its edges
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sine returns a shaped sine tone, or nil if the generator rejects freq
func sine(rate beep.SampleRate, freq float64, duration, attack, release time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return newEnvelope(tone, duration, attack, release, rate)
}

// bellTone is the ding played after a copy or export
func bellTone(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := sine(rate, bellFrequency, bellDuration, bellAttack, bellRelease)
	over := sine(rate, overtoneFreq, bellDuration, bellAttack, bellRelease/2)
	if fund == nil || over == nil {
		return nil
	}
	mixed := beep.Mix(newVolume(fund, fundamentalBlend), newVolume(over, overtoneBlend))
	return newVolume(mixed, volume)
}

// errorTone is the low buzz played when an action fails
func errorTone(rate beep.SampleRate, volume float64) beep.Streamer {
	buzz := sine(rate, errorFrequency, errorDuration, errorAttack, errorRelease)
	if buzz == nil {
		return nil
	}
	return newVolume(buzz, volume)
}
