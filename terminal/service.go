package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TerminalService manages the tcell screen lifecycle
type TerminalService struct {
	screen tcell.Screen
}

// NewService creates a new terminal service
func NewService() *TerminalService {
	return &TerminalService{}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: tcell.Screen (optional, defaults to the process terminal)
func (s *TerminalService) Init(args ...any) error {
	if len(args) > 0 {
		if scr, ok := args[0].(tcell.Screen); ok && scr != nil {
			s.screen = scr
		}
	}
	if s.screen == nil {
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal init: %w", err)
		}
		s.screen = scr
	}

	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	return nil
}

// Start implements Service
func (s *TerminalService) Start() error {
	return nil
}

// Stop implements Service - restores the terminal
func (s *TerminalService) Stop() error {
	if s.screen != nil {
		s.screen.Fini()
	}
	return nil
}

// Screen returns the initialized screen, nil before Init
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}
