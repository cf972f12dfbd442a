package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// Player mixes overlapping tones into the system speaker
// Falls back to silent mode when no output device is available
type Player struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	running    atomic.Bool
	silentMode atomic.Bool

	// locker guards mixer mutation against the output goroutine
	lock   func()
	unlock func()
}

// NewPlayer creates a stopped player at the given sample rate
func NewPlayer(sampleRate int) *Player {
	if sampleRate <= 0 {
		sampleRate = parameter.AudioSampleRate
	}
	return &Player{
		sampleRate: beep.SampleRate(sampleRate),
		mixer:      &beep.Mixer{},
		lock:       speaker.Lock,
		unlock:     speaker.Unlock,
	}
}

// Start opens the speaker and begins streaming the mixer
// A device failure switches to silent mode instead of returning an error
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return nil
	}

	bufferSize := p.sampleRate.N(parameter.AudioBufferMillis * time.Millisecond)
	if err := speaker.Init(p.sampleRate, bufferSize); err != nil {
		log.Printf("[Audio] speaker unavailable, running silent: %v", err)
		p.silentMode.Store(true)
		p.running.Store(true)
		return nil
	}

	speaker.Play(p.mixer)
	p.running.Store(true)
	return nil
}

// Stop clears pending tones and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.Load() {
		return
	}

	if !p.silentMode.Load() {
		speaker.Clear()
		speaker.Close()
	}
	p.running.Store(false)
}

// Play schedules tones for simultaneous playback
// Returns false when nothing was queued (stopped, silent, or empty)
func (p *Player) Play(tones []Tone) bool {
	if len(tones) == 0 || !p.running.Load() || p.silentMode.Load() {
		return false
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		s := NewToneStreamer(t, p.sampleRate)
		if s.Len() == 0 {
			continue
		}
		streamers = append(streamers, s)
	}
	if len(streamers) == 0 {
		return false
	}

	p.lock()
	p.mixer.Add(streamers...)
	p.unlock()
	return true
}

// IsRunning reports whether Start succeeded and Stop has not been called
func (p *Player) IsRunning() bool {
	return p.running.Load()
}

// IsSilent reports whether the player degraded to silent mode
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}
