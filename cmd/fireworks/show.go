package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fireworks/internal/config"
	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/fireworks"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
	"github.com/vovakirdan/tui-fireworks/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Run the fireworks show",
	Long: `Run the show until you quit.

Controls:
  P/Space    - Pause
  Q/Esc      - Quit
  Ctrl+C     - Quit

The grid defaults to the config's size; a width or height of 0 uses the
current terminal size. The grid is fixed for the whole run.

Examples:
  fireworks show
  fireworks show --backend tcell
  fireworks show --seed 1234
  fireworks show --replay 12
  fireworks show --config ./my-show.yaml`,
	RunE: runShow,
}

var flagReplay int64

func init() {
	showCmd.Flags().Int64Var(&flagReplay, "replay", 0, "Rerun a recorded show with its seed and grid (see 'fireworks history')")
	rootCmd.Flags().Int64Var(&flagReplay, "replay", 0, "Rerun a recorded show with its seed and grid (see 'fireworks history')")
}

// loadConfig loads the config and resolves the grid against the terminal.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	width, height := 80, 24 // Defaults when stdout is not a terminal
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg = cfg.WithGridSize(width, height)

	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	return cfg, cfg.Validate()
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !registry.Exists(cfg.Backend) {
		return fmt.Errorf("unknown backend %q, run 'fireworks list' to see available backends", cfg.Backend)
	}
	backend, err := registry.Create(cfg.Backend)
	if err != nil {
		return err
	}

	rc, err := resolveRun(cfg, flagReplay, flagSeed, time.Now)
	if err != nil {
		return err
	}
	// A replay runs on the recorded grid
	cfg.Grid.Width, cfg.Grid.Height = rc.ScreenW, rc.ScreenH

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	show := fireworks.NewShow(rc.NewRand(), cfg, logger, started)
	logger.Debug("starting show", "backend", backend.Name(), "seed", rc.Seed,
		"grid", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH), "fps", rc.TickRate)

	if err := backend.Run(ctx, show, rc); err != nil {
		return err
	}

	stats := show.Stats()
	saveHistory(cfg, storage.ShowRecord{
		Seed:      rc.Seed,
		Backend:   backend.Name(),
		GridW:     rc.ScreenW,
		GridH:     rc.ScreenH,
		StartedAt: started,
		Duration:  time.Since(started),
		Stats:     stats,
	})

	logger.Info("show finished",
		"seed", rc.Seed,
		"launched", stats.Launched,
		"explosions", stats.Explosions,
		"secondary", stats.SecondaryBursts,
	)
	return nil
}

// resolveRun fixes the grid and seed of a run. The seed is resolved up front
// so every run can be replayed from history: replayID takes the seed and grid
// of a recorded show, otherwise seed is used, and 0 draws one from the clock.
func resolveRun(cfg config.Config, replayID, seed int64, now func() time.Time) (core.RuntimeConfig, error) {
	rc := core.RuntimeConfig{
		ScreenW:  cfg.Grid.Width,
		ScreenH:  cfg.Grid.Height,
		TickRate: cfg.Grid.FPS,
		Seed:     seed,
	}

	if replayID > 0 {
		if seed != 0 {
			return rc, fmt.Errorf("--replay and --seed cannot be combined")
		}
		rec, err := loadShow(cfg.History.DBPath, replayID)
		if err != nil {
			return rc, err
		}
		rc.Seed = rec.Seed
		if rec.GridW > 0 && rec.GridH > 0 {
			rc.ScreenW, rc.ScreenH = rec.GridW, rec.GridH
		}
		return rc, nil
	}

	if rc.Seed == 0 {
		rc.Seed = now().UnixNano()
	}
	return rc, nil
}

// loadShow reads one recorded show from the history database.
func loadShow(dbPath string, id int64) (*storage.ShowRecord, error) {
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	rec, err := store.ShowByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("no show #%d in history, run 'fireworks history' to list shows", id)
	}
	return rec, nil
}

// saveHistory records the run. Storage problems are reported but never fail the show.
func saveHistory(cfg config.Config, rec storage.ShowRecord) {
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "err", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveShow(rec); err != nil {
		logger.Warn("could not save show", "err", err)
	}
}
