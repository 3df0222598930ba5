package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/sandfall/config"
	"github.com/lixenwraith/sandfall/core"
	"github.com/lixenwraith/sandfall/engine"
	"github.com/lixenwraith/sandfall/event"
	"github.com/lixenwraith/sandfall/grid"
	"github.com/lixenwraith/sandfall/input"
	"github.com/lixenwraith/sandfall/level"
	"github.com/lixenwraith/sandfall/parameter"
	"github.com/lixenwraith/sandfall/physics"
	"github.com/lixenwraith/sandfall/status"
	"github.com/lixenwraith/sandfall/system"
)

var (
	configFlag = flag.String("config", "", "Config file (yaml, json, toml)")
	levelFlag  = flag.String("level", "", "Level descriptor, overrides the config value")
	logFlag    = flag.String("log", "", "Log file, overrides the config value")
	resumeFlag = flag.Bool("resume", false, "Restore the grid saved on the last exit")
)

// Keyboard device slot
const keyboardDevice = 0

// Terminals report no key-up; a held key repeats faster than this
const keyHold = 150 * time.Millisecond

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *levelFlag != "" {
		cfg.Level = *levelFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	lvl, err := loadLevel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}
	logger.Info().
		Str("level", lvl.Descriptor.Name).
		Int("width", lvl.Grid.Width()).
		Int("height", lvl.Grid.Height()).
		Int("particles", lvl.Particles).
		Msg("level loaded")

	snapshots, err := level.OpenSnapshotStore(cfg.AppName)
	if err != nil {
		logger.Warn().Err(err).Msg("snapshot store unavailable")
		snapshots = nil
	}
	if *resumeFlag && snapshots != nil {
		resume(snapshots, lvl.Grid, logger)
	}

	space := physics.NewSpace(&cfg.Tuning)
	res := engine.NewResources(&cfg.Tuning, lvl.Grid, space, logger)
	res.Spawns = lvl.SpawnPoints()
	world := engine.NewWorld(res)

	exporter, err := status.NewExporter(res.Status)
	if err != nil {
		logger.Warn().Err(err).Msg("metrics export disabled")
		exporter = nil
	}
	system.RegisterAll(world, exporter)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(screen.Fini)

	// Panic Recovery: Ensure terminal is reset even if the engine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	run(screen, world, logger)

	if snapshots != nil {
		if err := snapshots.Save(lvl.Grid.Snapshot()); err != nil {
			logger.Error().Err(err).Msg("snapshot save failed")
		} else {
			logger.Info().Int("cells", lvl.Grid.Count()).Msg("snapshot saved")
		}
	}
	if exporter != nil {
		if err := exporter.Close(); err != nil {
			logger.Warn().Err(err).Msg("metrics export close failed")
		}
	}
}

// run drives the fixed step and redraw until the player quits
func run(screen tcell.Screen, world *engine.World, logger zerolog.Logger) {
	kb := input.NewKeyboard(input.DefaultKeyTable(), keyHold)
	view := newView(screen, world)

	world.PushEvent(event.EventDeviceConnected, &event.DevicePayload{Device: keyboardDevice})

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	stepTicker := time.NewTicker(parameter.StepInterval)
	defer stepTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					logger.Info().Int64("frame", world.Resources.Time.Frame).Msg("quit")
					return
				}
				kb.Apply(ev.Key(), ev.Rune(), time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-stepTicker.C:
			world.RunSafe(func() {
				if player, ok := world.Resources.Devices.Player(keyboardDevice); ok {
					if ctrl, ok := world.Components.Control.Get(player); ok && ctrl.State != nil {
						kb.Sync(ctrl.State, now)
					}
				}
				world.StepLocked()
				view.draw()
			})
			screen.Show()
		}
	}
}

func openLog(cfg *config.Config) (zerolog.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		out = f
		closeFn = func() { f.Close() }
	}
	logger := zerolog.New(out).Level(cfg.ZerologLevel()).With().Timestamp().Str("app", cfg.AppName).Logger()
	return logger, closeFn, nil
}

// loadLevel reads the configured level or builds an empty default grid
func loadLevel(cfg *config.Config) (*level.Level, error) {
	if cfg.Level == "" {
		return level.Build(&level.Descriptor{
			Name:     "empty",
			Width:    parameter.DefaultGridWidth,
			Height:   parameter.DefaultGridHeight,
			CellSize: cfg.Tuning.World.CellSize,
		})
	}
	lvl, err := level.Load(cfg.Level)
	if err != nil {
		return nil, err
	}
	cfg.Tuning.World.CellSize = lvl.Descriptor.CellSize
	return lvl, nil
}

func resume(store *level.SnapshotStore, g *grid.Sandbox, logger zerolog.Logger) {
	snap, ok, err := store.Load()
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("snapshot load failed")
	case !ok:
		logger.Info().Msg("no snapshot to resume")
	case !g.Restore(snap):
		logger.Warn().
			Int("width", snap.Width).
			Int("height", snap.Height).
			Msg("snapshot does not match level size")
	default:
		logger.Info().Int("cells", g.Count()).Msg("snapshot restored")
	}
}
