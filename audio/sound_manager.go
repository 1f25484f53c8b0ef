// Package audio plays short feedback tones for table actions
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundType identifies a feedback tone
type SoundType int

const (
	SoundBell  SoundType = iota // Copy or export succeeded
	SoundError                  // Copy, export or selection failed
)

// Player is what the UI needs from the audio layer
type Player interface {
	Play(SoundType)
}

// SoundManager owns the speaker and a mixer all tones are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a manager; nothing is played until Initialize
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
	}
}

// Initialize sets up the speaker. Disabled managers never touch the device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues the tone for t; a no-op when disabled or not initialized
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var s beep.Streamer
	switch t {
	case SoundBell:
		s = bellTone(sampleRate, sm.volume)
	case SoundError:
		s = errorTone(sampleRate, sm.volume)
	}
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayBell plays the success tone
func (sm *SoundManager) PlayBell() { sm.Play(SoundBell) }

// PlayError plays the failure tone
func (sm *SoundManager) PlayError() { sm.Play(SoundError) }

// Enabled reports whether audio was requested
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}
