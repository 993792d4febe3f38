// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-tank-shmup/internal/app"
	"go-tank-shmup/internal/config"
	"go-tank-shmup/internal/defs"
	"go-tank-shmup/internal/event"
	"go-tank-shmup/internal/logging"
	"go-tank-shmup/internal/metrics"
	"go-tank-shmup/internal/state"
	"go-tank-shmup/internal/storage"
	"go-tank-shmup/internal/ui"
	"go-tank-shmup/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		logging.LogError("%v", err)
		logging.CloseLogger()
		os.Exit(1)
	}
	logging.CloseLogger()
}

func run() error {
	configPath := flag.String("config", "", "path to YAML tuning file (default: $SHMUP_CONFIG)")
	logDir := flag.String("log-dir", "", "directory for log files (empty: stderr only)")
	logLevel := flag.String("log-level", "INFO", "console log level: TRACE, DEBUG, INFO, WARN, ERROR")
	debugAddr := flag.String("debug-addr", config.DebugListenAddr, "pprof and /metrics listen address (empty: disabled)")
	flag.Parse()

	if err := logging.InitLogger(logging.Options{Dir: *logDir, ConsoleLevel: logging.ParseLevel(*logLevel)}); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	tuning, err := config.LoadTuning(*configPath)
	if err != nil {
		return err
	}
	upgrades, err := defs.LoadUpgradeDefinitions(tuning.UpgradesPath)
	if err != nil {
		return err
	}

	store, err := storage.OpenHighScoreStore(tuning.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	dispatcher := event.NewDispatcher()
	collector := metrics.NewCollector(dispatcher)
	logging.NewEventLogger(dispatcher)

	if *debugAddr != "" {
		http.Handle("/metrics", collector.Handler())
		go func() {
			logging.LogInfo("debug server listening on %s", *debugAddr)
			if err := http.ListenAndServe(*debugAddr, nil); err != nil {
				logging.LogWarn("debug server stopped: %v", err)
			}
		}()
	}

	runState, err := app.NewRun(app.Options{
		Tuning:   tuning,
		Store:    store,
		Upgrades: upgrades,
		Events:   dispatcher,
	})
	if err != nil {
		return err
	}

	face, err := ui.LoadFontFace(config.FontSize)
	if err != nil {
		return err
	}
	titleFace, err := ui.LoadFontFace(config.TitleFontSize)
	if err != nil {
		return err
	}
	renderer := render.NewWorldRenderer(config.ScreenWidth, config.ScreenHeight, render.WorldColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		FlashColor:      config.FlashColor,
		AimColor:        config.AimColor,
		OverlayColor:    config.OverlayColor,
		StrokeWidth:     float32(config.StrokeWidth),
	})

	sm := state.NewStateMachine(&state.Env{
		Ctx:       context.Background(),
		Run:       runState,
		Renderer:  renderer,
		Face:      face,
		TitleFace: titleFace,
	})
	sm.SetState(state.NewLoadingState(sm))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tank Shmup")
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop stopped: %w", err)
	}
	return nil
}
