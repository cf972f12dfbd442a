package game

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/network"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/status"
	"github.com/lixenwraith/arena-fighter/system"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// ErrInvalidTransition is returned for phase changes the transition table forbids
var ErrInvalidTransition = errors.New("invalid phase transition")

// Deps wires the game to its collaborators
// Physics is required; the rest are optional and skipped when nil
type Deps struct {
	Physics   engine.Physics
	Config    *config.Config
	Ledger    ScoreLedger
	Submitter ScoreSubmitter
	Sound     SoundPlayer
	Synth     *audio.Synthesizer
	Settings  SettingsSaver
	Clock     engine.Clock
	Metrics   *status.Registry
	Seed      uint64
}

// Summary is the game over report
type Summary struct {
	Score         int
	EnemiesKilled int
	HeadshotKills int
	Wave          int
	TopScores     []int
}

// Game owns one session: match state, weapon, entity pool and the systems driving them
type Game struct {
	state  engine.MatchState
	weapon engine.Weapon
	pool   *engine.EntityPool
	events *event.EventQueue // Inbound from asynchronous collaborators
	outbox *event.EventQueue // Simulation events; a rolled back tick discards its share
	cfg    *config.Config
	ctx    *engine.Context

	physics   engine.Physics
	ledger    ScoreLedger
	submitter ScoreSubmitter
	sound     SoundPlayer
	synth     *audio.Synthesizer
	settings  SettingsSaver
	clock     engine.Clock
	metrics   *status.Registry

	combat   *system.CombatResolver
	hostile  *system.HostileSystem
	spawner  *system.SpawnDirector
	movement *system.MovementSystem

	grounded     bool
	settingsOpen bool
	inTick       bool
	ended        bool
	summary      *Summary
	lastFire     system.FireResult
	tickFire     *system.FireResult
	tickEvents   []event.GameEvent
}

// New creates a game in the Menu phase
func New(deps Deps) *Game {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	synth := deps.Synth
	if synth == nil {
		synth = audio.NewSynthesizer(cfg.MasterVolume, cfg.SoundEnabled)
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	seed := deps.Seed
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}

	g := &Game{
		state:     engine.NewMatchState(),
		weapon:    engine.NewWeapon(),
		pool:      engine.NewEntityPool(deps.Physics),
		events:    event.NewEventQueue(),
		outbox:    event.NewEventQueue(),
		cfg:       cfg,
		physics:   deps.Physics,
		ledger:    deps.Ledger,
		submitter: deps.Submitter,
		sound:     deps.Sound,
		synth:     synth,
		settings:  deps.Settings,
		clock:     clock,
		metrics:   metrics,
		combat:    system.NewCombatResolver(),
		hostile:   system.NewHostileSystem(),
		spawner:   system.NewSpawnDirector(),
		movement:  system.NewMovementSystem(),
	}
	g.ctx = &engine.Context{
		State:   &g.state,
		Pool:    g.pool,
		Weapon:  &g.weapon,
		Physics: deps.Physics,
		Events:  g.outbox,
		Rand:    vmath.NewFastRand(seed),
		Config:  cfg,
		Damage:  g,
	}
	return g
}

// State returns a copy of the match state
func (g *Game) State() engine.MatchState { return g.state }

func (g *Game) Phase() engine.Phase { return g.state.Phase }

// Weapon returns a copy of the weapon state
func (g *Game) Weapon() engine.Weapon { return g.weapon }

func (g *Game) Pool() *engine.EntityPool { return g.pool }

func (g *Game) Physics() engine.Physics { return g.physics }

func (g *Game) Config() *config.Config { return g.cfg }

// Metrics returns the session counters
func (g *Game) Metrics() *status.Registry { return g.metrics }

// LastFire describes the most recent fire attempt
func (g *Game) LastFire() system.FireResult { return g.lastFire }

// EventQueue is the game's inbound queue; asynchronous collaborators publish results here
func (g *Game) EventQueue() *event.EventQueue { return g.events }

// Events returns the events drained during the last Update
func (g *Game) Events() []event.GameEvent { return g.tickEvents }

// Summary returns the report of the last finished match
func (g *Game) Summary() (Summary, bool) {
	if g.summary == nil {
		return Summary{}, false
	}
	return *g.summary, true
}

// Start begins a new match from Menu or GameOver
func (g *Game) Start() error {
	from := g.state.Phase
	if g.settingsOpen || !engine.CanTransition(from, engine.PhasePlaying) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, engine.PhasePlaying)
	}

	g.pool.Clear()
	g.state.Reset(float64(g.cfg.MatchDurationSeconds))
	g.weapon.Reset()
	if _, err := g.pool.SpawnPlayer(parameter.PlayerSpawn); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	g.state.Transition(engine.PhasePlaying)
	g.grounded = false
	g.ended = false
	g.summary = nil
	g.lastFire = system.FireResult{}
	g.emitPhase(from, engine.PhasePlaying)
	log.Printf("[Game] match started: %ds %s %s", g.cfg.MatchDurationSeconds, g.cfg.Difficulty, g.cfg.EnemyMode)
	return nil
}

// ReturnToMenu abandons a running match without recording it, or leaves the game over screen
func (g *Game) ReturnToMenu() error {
	from := g.state.Phase
	if !engine.CanTransition(from, engine.PhaseMenu) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, engine.PhaseMenu)
	}
	g.pool.ClearTransient()
	g.state.Transition(engine.PhaseMenu)
	g.settingsOpen = false
	g.emitPhase(from, engine.PhaseMenu)
	if from == engine.PhasePlaying {
		log.Printf("[Game] match abandoned at score %d", g.state.Score)
	}
	return nil
}

// OpenSettings shows the settings overlay over Menu or Playing; simulation pauses while open
func (g *Game) OpenSettings() bool {
	if g.state.Phase == engine.PhaseGameOver {
		return false
	}
	g.settingsOpen = true
	return true
}

func (g *Game) CloseSettings() {
	g.settingsOpen = false
}

func (g *Game) SettingsOpen() bool { return g.settingsOpen }

// TopScores reads the ledger; failures are logged and yield nil
func (g *Game) TopScores(n int) []int {
	if g.ledger == nil {
		return nil
	}
	scores, err := g.ledger.TopScores(n)
	if err != nil {
		log.Printf("[Game] top scores: %v", err)
		return nil
	}
	return scores
}

// TakeDamage is the only path that lowers player health
// Entering GameOver happens here, exactly when health reaches zero
func (g *Game) TakeDamage(amount int) {
	if g.state.Phase != engine.PhasePlaying {
		return
	}
	applied, dead := g.state.ApplyDamage(amount)
	if applied > 0 {
		g.ctx.Emit(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: applied, Health: g.state.Health})
	}
	if dead {
		g.gameOver()
	}
}

// Update advances the match by dt seconds
// A tick is all or nothing: on a collaborator failure the match state, weapon, rng,
// pool mutations and queued events of the tick are discarded
func (g *Game) Update(dt float64, in Input) error {
	g.tickEvents = g.tickEvents[:0]
	g.dispatch(g.outbox.Consume())
	defer g.drainEvents()

	if g.settingsOpen || g.state.Phase != engine.PhasePlaying || dt <= 0 || math.IsNaN(dt) {
		return nil
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	snapState, snapWeapon, snapRand := g.state, g.weapon, *g.ctx.Rand
	g.tickFire = nil
	g.pool.Begin()
	g.inTick = true
	err := g.tick(dt, in)
	g.inTick = false

	if err != nil {
		g.pool.Rollback()
		g.outbox.Consume()
		g.state, g.weapon, *g.ctx.Rand = snapState, snapWeapon, snapRand
		g.metrics.Counter(status.MetricRollbacks).Add(1)
		log.Printf("[Game] tick rolled back: %v", err)
		return fmt.Errorf("update: %w", err)
	}

	g.pool.Commit()
	if res := g.tickFire; res != nil {
		g.lastFire = *res
		if res.Fired {
			g.metrics.Counter(status.MetricShots).Add(1)
		}
		if res.Hit {
			g.metrics.Counter(status.MetricHits).Add(1)
		}
	}
	g.metrics.Counter(status.MetricFrames).Add(1)
	if g.state.Phase == engine.PhaseGameOver && !g.ended {
		g.endMatch()
	}
	return nil
}

func (g *Game) tick(dt float64, in Input) error {
	ctx := g.ctx

	// 1. Clock
	g.state.Elapsed += dt
	g.state.TimeRemaining -= dt
	if g.state.TimeRemaining <= 0 {
		g.state.TimeRemaining = 0
		g.gameOver()
		return nil
	}

	// 2. Movement intent
	if err := g.movement.ApplyPlayer(ctx, in.intent(), g.grounded); err != nil {
		return err
	}

	// 3. Weapon
	if in.Reload && g.weapon.Reload() > 0 {
		ctx.EmitSound(core.SoundReload)
	}
	if in.Fire {
		pos, err := ctx.PlayerPosition()
		if err != nil {
			return fmt.Errorf("fire: %w", err)
		}
		eye := vmath.V3FAdd(pos, vmath.Vec3F{Y: parameter.PlayerEyeHeight})
		res, err := g.combat.ResolveFire(ctx, eye, vmath.ViewDirection(in.Yaw, in.Pitch))
		if err != nil {
			return err
		}
		g.tickFire = &res
	}

	// 4. Spawning and waves
	if err := g.spawner.Update(ctx, dt); err != nil {
		return err
	}

	// 5. Enemies, hostile trials, particles
	if err := g.movement.SteerEnemies(ctx); err != nil {
		return err
	}
	if err := g.hostile.Update(ctx, dt); err != nil {
		return err
	}
	if g.state.Phase != engine.PhasePlaying {
		return nil
	}
	g.pool.AdvanceParticles(dt)
	if err := g.spawner.Cull(ctx); err != nil {
		return err
	}

	// 6. Physics
	if err := g.physics.Step(dt); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	contacts, err := g.physics.BodyContacts(g.pool.Player())
	if err != nil {
		return fmt.Errorf("contacts: %w", err)
	}
	g.grounded = len(contacts) > 0

	// 7. Health
	if g.state.Health <= 0 {
		g.gameOver()
	}
	return nil
}

// gameOver enters GameOver; match-end side effects wait for the tick to commit
func (g *Game) gameOver() {
	from := g.state.Phase
	if !g.state.Transition(engine.PhaseGameOver) {
		return
	}
	g.emitPhase(from, engine.PhaseGameOver)
	if !g.inTick {
		g.endMatch()
	}
}

// endMatch freezes the match and records it
func (g *Game) endMatch() {
	g.ended = true
	g.pool.ClearTransient()

	score := g.state.Score
	if g.ledger != nil {
		if err := g.ledger.AppendScore(score); err != nil {
			log.Printf("[Game] ledger append failed: %v", err)
		}
	}
	if g.submitter != nil {
		sub := network.NewScoreSubmission(score, g.cfg.Theme.String(), g.cfg.EnemyMode.String(),
			g.cfg.Difficulty.String(), g.clock.Now())
		// Result is logged by the submitter and published on the event queue
		g.submitter.Submit(sub)
	}

	g.summary = &Summary{
		Score:         score,
		EnemiesKilled: g.state.EnemiesKilled,
		HeadshotKills: g.state.HeadshotKills,
		Wave:          g.state.Wave,
		TopScores:     g.TopScores(parameter.GameOverTopScores),
	}
	g.ctx.Emit(event.EventMatchEnded, &event.MatchEndedPayload{
		Score:         score,
		EnemiesKilled: g.state.EnemiesKilled,
		HeadshotKills: g.state.HeadshotKills,
		Wave:          g.state.Wave,
	})
	log.Printf("[Game] match over: score=%d kills=%d headshots=%d wave=%d",
		score, g.state.EnemiesKilled, g.state.HeadshotKills, g.state.Wave)
}

func (g *Game) emitPhase(from, to engine.Phase) {
	g.ctx.Emit(event.EventPhaseChanged, &event.PhaseChangedPayload{From: int(from), To: int(to)})
}

// drainEvents dispatches committed simulation events, then inbound results
func (g *Game) drainEvents() {
	g.dispatch(g.outbox.Consume())
	g.dispatch(g.events.Consume())
}

// dispatch turns sound requests into tones and counts submission results
func (g *Game) dispatch(events []event.GameEvent) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.SoundRequestPayload:
			g.playSound(p.Sound)
		case *event.ScoreSubmittedPayload:
			if p.Err != nil {
				g.metrics.Counter(status.MetricSubmitFails).Add(1)
			} else {
				g.metrics.Counter(status.MetricSubmitted).Add(1)
			}
		}
		g.tickEvents = append(g.tickEvents, ev)
	}
}

func (g *Game) playSound(s core.SoundEvent) {
	tones := g.synth.Tones(s)
	if len(tones) == 0 || g.sound == nil {
		return
	}
	g.sound.Play(tones)
}
