package audio

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/core"
)

// Synthesizer holds the only mutable audio state: master volume and the enabled flag
// Safe for concurrent use
type Synthesizer struct {
	volume  atomic.Uint64 // math.Float64bits
	enabled atomic.Bool
}

// NewSynthesizer creates a synthesizer with clamped initial volume
func NewSynthesizer(volume float64, enabled bool) *Synthesizer {
	s := &Synthesizer{}
	s.SetVolume(volume)
	s.enabled.Store(enabled)
	return s
}

// SetVolume stores the master volume clamped to [0, 1]
func (s *Synthesizer) SetVolume(v float64) {
	s.volume.Store(math.Float64bits(clampVolume(v)))
}

// Volume returns the current master volume
func (s *Synthesizer) Volume() float64 {
	return math.Float64frombits(s.volume.Load())
}

func (s *Synthesizer) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

func (s *Synthesizer) IsEnabled() bool {
	return s.enabled.Load()
}

// Tones returns the tones for ev at the current volume, or nil when sound is disabled
func (s *Synthesizer) Tones(ev core.SoundEvent) []Tone {
	if !s.enabled.Load() {
		return nil
	}
	return Synthesize(ev, s.Volume())
}
