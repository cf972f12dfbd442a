package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/status"
)

const settingsRowCount = 7

// App binds a game to a terminal screen: input routing, the frame loop and rendering
type App struct {
	screen   tcell.Screen
	game     *game.Game
	keys     *KeyTable
	tracker  *InputTracker
	renderer *Renderer
	clock    engine.Clock

	view View
	quit bool
}

func NewApp(screen tcell.Screen, g *game.Game, clock engine.Clock) *App {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &App{
		screen:   screen,
		game:     g,
		keys:     DefaultKeyTable(),
		tracker:  NewInputTracker(clock),
		renderer: NewRenderer(screen),
		clock:    clock,
	}
}

// Quit reports whether the user asked to exit
func (a *App) Quit() bool { return a.quit }

func (a *App) View() View { return a.view }

// HandleEvent routes one terminal event
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(a.keys.Lookup(ev))
	case *tcell.EventMouse:
		if a.game.Phase() == engine.PhasePlaying && !a.game.SettingsOpen() {
			a.tracker.Mouse(ev)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(in Intent) {
	if in == IntentQuit {
		a.quit = true
		return
	}
	if a.game.SettingsOpen() {
		a.handleSettingsKey(in)
		return
	}

	switch a.game.Phase() {
	case engine.PhaseMenu:
		switch in {
		case IntentConfirm:
			a.start()
		case IntentScores:
			a.view.ShowScores = !a.view.ShowScores
		case IntentSettings:
			a.openSettings()
		case IntentBack:
			a.quit = true
		}

	case engine.PhasePlaying:
		switch in {
		case IntentSettings:
			a.openSettings()
		case IntentBack:
			if err := a.game.ReturnToMenu(); err != nil {
				log.Printf("[Terminal] %v", err)
			}
		default:
			a.tracker.Press(in)
			a.view.Yaw = a.tracker.Yaw()
		}

	case engine.PhaseGameOver:
		switch in {
		case IntentConfirm:
			a.start()
		case IntentBack:
			if err := a.game.ReturnToMenu(); err != nil {
				log.Printf("[Terminal] %v", err)
			}
		}
	}
}

func (a *App) start() {
	if err := a.game.Start(); err != nil {
		log.Printf("[Terminal] %v", err)
		return
	}
	a.tracker.Reset()
	a.view.Yaw = 0
	a.view.ShowScores = false
}

func (a *App) openSettings() {
	if a.game.OpenSettings() {
		a.view.SettingsIndex = 0
	}
}

func (a *App) handleSettingsKey(in Intent) {
	switch in {
	case IntentSettings, IntentBack:
		a.game.CloseSettings()
	case IntentLookUp:
		a.view.SettingsIndex = (a.view.SettingsIndex + settingsRowCount - 1) % settingsRowCount
	case IntentLookDown:
		a.view.SettingsIndex = (a.view.SettingsIndex + 1) % settingsRowCount
	case IntentTurnLeft:
		a.adjustSetting(-1)
	case IntentTurnRight, IntentConfirm:
		a.adjustSetting(1)
	}
}

// adjustSetting changes the selected row by one step in dir
func (a *App) adjustSetting(dir int) {
	g := a.game
	cfg := g.Config()
	switch a.view.SettingsIndex {
	case 0:
		g.SetVolume(cfg.MasterVolume + float64(dir)*parameter.SettingsVolumeStep)
	case 1:
		g.SetSoundEnabled(!cfg.SoundEnabled)
	case 2:
		g.SetBloodEffects(!cfg.BloodEffectsEnabled)
	case 3:
		g.SetDifficulty(cycle(cfg.Difficulty, dir, config.Difficulty.Next))
	case 4:
		d := cfg.MatchDurationSeconds + dir*parameter.SettingsDurationStep
		if d < parameter.SettingsMinDuration {
			d = parameter.SettingsMinDuration
		}
		g.SetMatchDuration(d)
	case 5:
		g.SetTheme(cycle(cfg.Theme, dir, config.Theme.Next))
	case 6:
		g.SetEnemyMode(cycle(cfg.EnemyMode, dir, config.EnemyMode.Next))
	}
}

// cycle steps a three-valued option forward once, or backward by stepping forward twice
func cycle[T any](v T, dir int, next func(T) T) T {
	v = next(v)
	if dir < 0 {
		v = next(v)
	}
	return v
}

// Frame advances the game one step and redraws
func (a *App) Frame(dt float64) error {
	var in game.Input
	if a.game.Phase() == engine.PhasePlaying {
		in = a.tracker.Sample()
	}
	err := a.game.Update(dt, in)
	a.game.Metrics().Gauge(status.MetricFrameMillis).Set(dt * 1000)
	a.renderer.Draw(a.game, a.view)
	return err
}

// Run polls terminal events and drives frames until quit or ctx is done
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pumpEvents(a.screen, eventChan, done) })

	last := a.clock.Now()
	a.renderer.Draw(a.game, a.view)
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			a.HandleEvent(ev)

		case <-ticker.C:
			now := a.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.Frame(dt); err != nil {
				log.Printf("[Terminal] frame: %v", err)
			}
		}
	}
	return nil
}

// pumpEvents forwards polled events until the source is finalized or done closes
func pumpEvents(src interface{ PollEvent() tcell.Event }, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
