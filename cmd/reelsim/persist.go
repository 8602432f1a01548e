package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/reelsim/internal/db"
	"github.com/udisondev/reelsim/internal/session"
)

// saveTimeout bounds each database write. Writes run on a context detached
// from shutdown so the final snapshot still lands after Ctrl-C.
const saveTimeout = 5 * time.Second

// persister moves catch events and progress snapshots off the frame loop.
type persister struct {
	progress *db.ProgressRepository
	catches  *db.CatchRepository

	catchCh chan session.CatchEvent
	saveCh  chan session.Progress
}

func newPersister(database *db.DB) *persister {
	return &persister{
		progress: db.NewProgressRepository(database.Pool()),
		catches:  db.NewCatchRepository(database.Pool()),
		catchCh:  make(chan session.CatchEvent, 64),
		saveCh:   make(chan session.Progress, 4),
	}
}

// recordCatch queues an event. Never blocks the frame loop.
func (p *persister) recordCatch(ev session.CatchEvent) {
	select {
	case p.catchCh <- ev:
	default:
		slog.Warn("catch log queue full, dropping event", "species", ev.SpeciesID, "outcome", ev.Outcome)
	}
}

// queueSave queues a progress snapshot. Never blocks the frame loop.
func (p *persister) queueSave(pr session.Progress) {
	select {
	case p.saveCh <- pr:
	default:
		slog.Warn("autosave queue full, skipping snapshot")
	}
}

// flush queues the final snapshot, waiting for room, and closes both queues.
// Must be called from the goroutine that queues everything else.
func (p *persister) flush(pr session.Progress) {
	p.saveCh <- pr
	close(p.catchCh)
	close(p.saveCh)
}

// run drains both queues until flush closes them. The player row is saved
// before the frame loop starts, so catch rows always have a parent.
func (p *persister) run(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	catchCh, saveCh := p.catchCh, p.saveCh

	for catchCh != nil || saveCh != nil {
		select {
		case pr, ok := <-saveCh:
			if !ok {
				saveCh = nil
				continue
			}
			p.save(ctx, pr)
		case ev, ok := <-catchCh:
			if !ok {
				catchCh = nil
				continue
			}
			p.record(ctx, ev)
		}
	}
	slog.Info("persistence drained")
	return nil
}

func (p *persister) save(ctx context.Context, pr session.Progress) {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	if err := p.progress.Save(ctx, pr); err != nil {
		slog.Error("saving progress", "player", pr.Player, "err", err)
		return
	}
	slog.Debug("progress saved", "player", pr.Player)
}

func (p *persister) record(ctx context.Context, ev session.CatchEvent) {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	if err := p.catches.Record(ctx, ev); err != nil {
		slog.Error("recording catch", "player", ev.Player, "species", ev.SpeciesID, "err", err)
	}
}
