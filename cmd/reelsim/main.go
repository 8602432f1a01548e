// Command reelsim is the terminal host for the fishing simulation: it owns
// the frame clock, turns key and mouse input into session input and draws
// the sonar radar and encounter HUD.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/reelsim/internal/ai"
	"github.com/udisondev/reelsim/internal/config"
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/db"
	"github.com/udisondev/reelsim/internal/game/quest"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
	"github.com/udisondev/reelsim/internal/scheduler"
	"github.com/udisondev/reelsim/internal/session"
	"github.com/udisondev/reelsim/internal/world"
)

// maxFrameDelta caps dt after a stall (suspended terminal, slow save) so the
// encounter doesn't jump several seconds at once.
const maxFrameDelta = 0.25

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "reelsim:", err)
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The screen belongs to tcell, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ai.EnableDebugLogging(cfg.SlogLevel() == slog.LevelDebug)

	seed := cfg.Seed
	if seed == 0 {
		seed = rng.ClockSeed()
	}
	slog.Info("reelsim starting", "seed", seed, "player", cfg.Player, "log_level", cfg.LogLevel)

	var (
		player  *model.Player
		tracker *quest.Tracker
		store   *persister
	)
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		store = newPersister(database)
		player, tracker, err = loadProgress(ctx, store.progress, cfg.Player)
		if err != nil {
			return err
		}
	} else {
		player = model.NewPlayer(cfg.Player)
		tracker = quest.NewTracker(data.Quests)
	}

	rnd := rng.New(seed)
	sched := scheduler.New()
	w := world.New(cfg.World, rnd, sched, cfg.StartHour)
	w.Populate(data.FishSpecies)

	var listener session.CatchListener
	if store != nil {
		listener = store.recordCatch
	}
	sess := session.New(cfg.SessionConfig(), w, player, tracker, rnd, listener)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	// PollEvent returns nil once the screen is finalized.
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	if store != nil {
		g.Go(func() error { return store.run(gctx) })
	}

	g.Go(func() error {
		defer screen.Fini()
		var save func(session.Progress)
		if store != nil {
			save = store.queueSave
		}
		err := frameLoop(gctx, screen, events, sess, cfg, save)
		if store != nil {
			store.flush(sess.Progress())
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("reelsim stopped",
		"caught_species", sess.Journal().Discovered(),
		"level", player.Stats().MasteryLevel,
		"funds", player.Stats().Funds)
	return nil
}

// loadProgress restores the saved captain or saves a fresh one so catch log
// rows have a player to reference.
func loadProgress(ctx context.Context, repo *db.ProgressRepository, name string) (*model.Player, *quest.Tracker, error) {
	saved, err := repo.Load(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("loading progress: %w", err)
	}
	if saved != nil {
		player, tracker, err := saved.Restore()
		if err != nil {
			return nil, nil, fmt.Errorf("restoring progress: %w", err)
		}
		slog.Info("progress restored", "player", name, "level", saved.Stats.MasteryLevel)
		return player, tracker, nil
	}

	player := model.NewPlayer(name)
	tracker := quest.NewTracker(data.Quests)
	fresh := session.Progress{
		Player: name,
		Stats:  player.Stats(),
		Lures:  player.Lures().Serialize(),
		Quests: tracker.Progress(),
	}
	if err := repo.Save(ctx, fresh); err != nil {
		return nil, nil, fmt.Errorf("saving new player: %w", err)
	}
	slog.Info("new player created", "player", name)
	return player, tracker, nil
}

// frameLoop drives the session at cfg.FrameInterval until quit or ctx ends.
// save, when set, receives periodic progress snapshots.
func frameLoop(ctx context.Context, screen tcell.Screen, events <-chan tcell.Event, sess *session.Session, cfg config.Config, save func(session.Progress)) error {
	ticker := time.NewTicker(cfg.FrameInterval)
	defer ticker.Stop()

	var autosave <-chan time.Time
	if save != nil && cfg.AutosaveInterval > 0 {
		t := time.NewTicker(cfg.AutosaveInterval)
		defer t.Stop()
		autosave = t.C
	}

	in := newControls()
	castRadius := cfg.Session.CastRadius
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			in.handle(ev)
			if in.quit {
				slog.Info("quit requested")
				return nil
			}

		case <-autosave:
			save(sess.Progress())
			sess.Tracker().MarkSaved()
			slog.Debug("autosave queued", "player", sess.Player().Name())

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxFrameDelta)
			last = now

			if in.lureRequested >= 0 {
				lure := data.Lures[in.lureRequested]
				if !sess.Player().EquipLure(lure.ID) {
					slog.Debug("lure not owned", "lure", lure.ID)
				}
				in.lureRequested = -1
			}
			if in.castRequested {
				out := sess.Cast()
				slog.Debug("cast", "outcome", out)
				in.castRequested = false
			}

			sess.Update(dt, in.frame(dt))
			draw(screen, sess, castRadius)
		}
	}
}
