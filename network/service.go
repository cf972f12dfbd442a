package network

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/event"
)

// Service wraps Submitter as a hub-managed service
type Service struct {
	config    *Config
	submitter *Submitter

	// Event queue for publishing submission results
	eventQueue atomic.Pointer[event.EventQueue]

	disabled atomic.Bool
}

// NewService creates a network service (disabled until configured with an endpoint)
func NewService() *Service {
	return &Service{
		config: DefaultConfig(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "network"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (optional, overrides default)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(*Config); ok && cfg != nil {
			s.config = cfg
		}
	}

	s.disabled.Store(!s.config.Enabled())
	s.submitter = NewSubmitter(s.config, nil)
	s.submitter.SetResultHandler(s.onResult)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.submitter != nil {
		s.submitter.Close()
	}
	return nil
}

// SetEventQueue routes submission results onto the game event queue
func (s *Service) SetEventQueue(eq *event.EventQueue) {
	s.eventQueue.Store(eq)
}

// Submit forwards to the submitter; before Init it reports ErrDisabled
func (s *Service) Submit(sub ScoreSubmission) <-chan error {
	if s.submitter == nil {
		ch := make(chan error, 1)
		ch <- ErrDisabled
		close(ch)
		return ch
	}
	return s.submitter.Submit(sub)
}

// IsDisabled reports whether submissions are dropped
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

func (s *Service) onResult(sub ScoreSubmission, err error) {
	eq := s.eventQueue.Load()
	if eq == nil {
		return
	}
	eq.Push(event.GameEvent{
		Type:    event.EventScoreSubmitted,
		Payload: &event.ScoreSubmittedPayload{MatchID: sub.MatchID, Err: err},
	})
}
