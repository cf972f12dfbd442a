package audio

import (
	"time"

	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// Waveform is the oscillator shape of a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSquare:
		return "square"
	}
	return "unknown"
}

// Tone is one self-terminating oscillator request
// Frequency and gain both sweep exponentially from start to end over Duration
type Tone struct {
	Waveform  Waveform
	StartFreq float64
	EndFreq   float64
	Duration  time.Duration
	PeakGain  float64
	EndGain   float64
}

// recipe is a tone shape at unity master volume
type recipe struct {
	wave      Waveform
	startFreq float64
	endFreq   float64
	duration  time.Duration
	gain      float64
}

func (r recipe) tone(volume float64) Tone {
	peak := r.gain * volume
	return Tone{
		Waveform:  r.wave,
		StartFreq: r.startFreq,
		EndFreq:   r.endFreq,
		Duration:  r.duration,
		PeakGain:  peak,
		EndGain:   peak * (parameter.AudioGainFloor / r.gain),
	}
}

var (
	recipeShoot      = recipe{WaveSine, 400, 0.01, 100 * time.Millisecond, 0.30}
	recipeHit        = recipe{WaveTriangle, 800, 100, 50 * time.Millisecond, 0.20}
	recipeHeadshotLo = recipe{WaveSine, 1200, 600, 80 * time.Millisecond, 0.15}
	recipeHeadshotHi = recipe{WaveSine, 1400, 700, 80 * time.Millisecond, 0.15}
	recipeEnemyShoot = recipe{WaveSquare, 300, 50, 80 * time.Millisecond, 0.15}
	recipeHurt       = recipe{WaveSine, 200, 100, 200 * time.Millisecond, 0.25}
	recipeReload     = recipe{WaveSquare, 150, 100, 150 * time.Millisecond, 0.10}
)

// Synthesize maps a sound event to its tones at the given master volume
// Pure; volume is clamped to [0, 1]
func Synthesize(ev core.SoundEvent, volume float64) []Tone {
	volume = clampVolume(volume)

	switch ev {
	case core.SoundShoot:
		return []Tone{recipeShoot.tone(volume)}
	case core.SoundHit:
		return []Tone{recipeHit.tone(volume)}
	case core.SoundHeadshot:
		return []Tone{recipeHeadshotLo.tone(volume), recipeHeadshotHi.tone(volume)}
	case core.SoundEnemyShoot:
		return []Tone{recipeEnemyShoot.tone(volume)}
	case core.SoundHurt:
		return []Tone{recipeHurt.tone(volume)}
	case core.SoundReload:
		return []Tone{recipeReload.tone(volume)}
	}
	return nil
}

func clampVolume(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
