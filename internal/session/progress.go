package session

import (
	"fmt"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/game/quest"
	"github.com/udisondev/reelsim/internal/model"
)

// Progress is a detached copy of everything saved about a player. It can be
// handed to another goroutine; nothing in it aliases live session state.
type Progress struct {
	Player string
	Stats  model.PlayerStats
	Lures  map[string]int
	Quests []quest.ObjectiveProgress
}

// Progress snapshots the player and contract state.
func (s *Session) Progress() Progress {
	return Progress{
		Player: s.player.Name(),
		Stats:  s.player.Stats(),
		Lures:  s.player.Lures().Serialize(),
		Quests: s.tracker.Progress(),
	}
}

// Restore rebuilds the player and contract tracker from saved progress.
func (p Progress) Restore() (*model.Player, *quest.Tracker, error) {
	lures, err := model.DeserializeInventory(data.Lures, p.Lures)
	if err != nil {
		return nil, nil, fmt.Errorf("restoring lures of %q: %w", p.Player, err)
	}
	player, err := model.RestorePlayer(p.Player, p.Stats, lures)
	if err != nil {
		return nil, nil, err
	}
	tracker := quest.NewTracker(data.Quests)
	if err := tracker.Restore(p.Quests); err != nil {
		return nil, nil, fmt.Errorf("restoring contracts of %q: %w", p.Player, err)
	}
	return player, tracker, nil
}
