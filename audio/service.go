package audio

import "github.com/lixenwraith/arena-fighter/parameter"

// AudioService wraps the synthesizer and player as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	synth  *Synthesizer
	player *Player
}

// NewService creates an audio service at the given master volume
func NewService(volume float64, enabled bool) *AudioService {
	return &AudioService{
		synth: NewSynthesizer(volume, enabled),
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: int - sample rate (default parameter.AudioSampleRate)
func (s *AudioService) Init(args ...any) error {
	sampleRate := parameter.AudioSampleRate
	if len(args) > 0 {
		if sr, ok := args[0].(int); ok && sr > 0 {
			sampleRate = sr
		}
	}
	s.player = NewPlayer(sampleRate)
	return nil
}

// Start implements Service; device failure degrades to silent mode
func (s *AudioService) Start() error {
	if s.player == nil {
		return nil
	}
	return s.player.Start()
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Stop()
	}
	return nil
}

// Synthesizer returns the shared synthesizer
func (s *AudioService) Synthesizer() *Synthesizer {
	return s.synth
}

// Play implements the game's sound player contract
func (s *AudioService) Play(tones []Tone) bool {
	if s.player == nil {
		return false
	}
	return s.player.Play(tones)
}

// IsDisabled returns true if no device is producing sound
func (s *AudioService) IsDisabled() bool {
	return s.player == nil || !s.player.IsRunning() || s.player.IsSilent()
}
