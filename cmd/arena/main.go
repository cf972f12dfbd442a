package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/arena-fighter/audio"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/network"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/persistence"
	"github.com/lixenwraith/arena-fighter/physics"
	"github.com/lixenwraith/arena-fighter/service"
	"github.com/lixenwraith/arena-fighter/terminal"
)

var (
	configFlag     = flag.String("config", "arena.yaml", "Path to YAML config file")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/arena.log")
	headlessFlag   = flag.Bool("headless", false, "Run one autopilot match without a terminal and print the summary")
	durationFlag   = flag.Int("duration", 0, "Match duration in seconds (overrides config)")
	difficultyFlag = flag.String("difficulty", "", "Difficulty: easy, normal, hard")
	enemiesFlag    = flag.String("enemies", "", "Enemy kind: zombie, human, mixed")
	volumeFlag     = flag.Float64("volume", -1, "Master volume 0.0-1.0")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
	seedFlag       = flag.Uint64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *headlessFlag {
		if err := runHeadless(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "headless: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the YAML file, environment and flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.Debug = cfg.Debug || *debugFlag
	applyFlags(cfg)
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if *durationFlag > 0 {
		cfg.MatchDurationSeconds = *durationFlag
	}
	cfg.ApplyFile(&config.File{Difficulty: *difficultyFlag, EnemyKind: *enemiesFlag})
	if *volumeFlag >= 0 {
		cfg.MasterVolume = *volumeFlag
	}
	if *muteFlag {
		cfg.SoundEnabled = false
	}
	cfg.Normalize()
}

// openStores returns gdata-backed stores, falling back to memory when the data directory is unavailable
func openStores(appName string) (*persistence.Ledger, *persistence.SettingsStore) {
	var store persistence.Store
	if gs, err := persistence.OpenGdata(appName); err == nil {
		store = gs
	} else {
		log.Printf("[Main] %v, scores will not persist", err)
		store = persistence.NewMemoryStore()
	}
	return persistence.NewLedger(store), persistence.NewSettingsStore(store)
}

func run(cfg *config.Config) error {
	ledger, settings := openStores(cfg.AppName)
	if err := settings.Apply(cfg); err != nil {
		log.Printf("[Main] %v", err)
	}
	// Flags win over saved settings
	applyFlags(cfg)

	hub := service.NewHub()
	netCfg := network.DefaultConfig()
	netCfg.Endpoint = cfg.ScoreEndpoint
	netCfg.Timeout = cfg.SubmitTimeout
	for _, reg := range []struct {
		svc  service.Service
		args []any
	}{
		{audio.NewService(cfg.MasterVolume, cfg.SoundEnabled), []any{parameter.AudioSampleRate}},
		{network.NewService(), []any{netCfg}},
		{terminal.NewService(), nil},
	} {
		if err := hub.Register(reg.svc, reg.args...); err != nil {
			return err
		}
	}

	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	audioSvc := service.MustGet[*audio.AudioService](hub, "audio")
	netSvc := service.MustGet[*network.Service](hub, "network")
	termSvc := service.MustGet[*terminal.TerminalService](hub, "terminal")
	if audioSvc.IsDisabled() {
		log.Printf("[Main] no audio output, running silent")
	}
	if netSvc.IsDisabled() {
		log.Printf("[Main] score submission disabled")
	}

	screen := termSvc.Screen()
	core.SetCrashRestorer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	clock := engine.NewTimeProvider()
	g := game.New(game.Deps{
		Physics:   physics.NewWorld(),
		Config:    cfg,
		Ledger:    ledger,
		Submitter: netSvc,
		Sound:     audioSvc,
		Synth:     audioSvc.Synthesizer(),
		Settings:  settings,
		Clock:     clock,
		Seed:      *seedFlag,
	})
	netSvc.SetEventQueue(g.EventQueue())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := terminal.NewApp(screen, g, clock)
	err := app.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

// runHeadless plays one match on autopilot with a fixed frame step
func runHeadless(cfg *config.Config) error {
	ledger, _ := openStores(cfg.AppName)
	netCfg := network.DefaultConfig()
	netCfg.Endpoint = cfg.ScoreEndpoint
	netCfg.Timeout = cfg.SubmitTimeout
	submitter := network.NewSubmitter(netCfg, nil)

	g := game.New(game.Deps{
		Physics:   physics.NewWorld(),
		Config:    cfg,
		Ledger:    ledger,
		Submitter: submitter,
		Clock:     engine.NewTimeProvider(),
		Seed:      *seedFlag,
	})
	if err := g.Start(); err != nil {
		return err
	}

	start := time.Now()
	for g.Phase() == engine.PhasePlaying {
		if err := g.Update(parameter.PhysicsFixedStep, g.Autopilot()); err != nil {
			log.Printf("[Main] %v", err)
		}
	}

	sum, _ := g.Summary()
	fmt.Printf("score %d  kills %d  headshots %d  wave %d  (%s)\n",
		sum.Score, sum.EnemiesKilled, sum.HeadshotKills, sum.Wave, time.Since(start).Round(time.Millisecond))
	if len(sum.TopScores) > 0 {
		fmt.Printf("top scores: %v\n", sum.TopScores)
	}

	submitter.Close()
	if netCfg.Enabled() {
		sent, failed := submitter.Stats()
		fmt.Printf("submitted %d  failed %d\n", sent, failed)
	}
	return nil
}
