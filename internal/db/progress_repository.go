package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/game/quest"
	"github.com/udisondev/reelsim/internal/session"
)

// ProgressRepository stores player stats, lures and contract progress.
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Load reads the saved progress of a player.
// Returns nil, nil if the player was never saved.
func (r *ProgressRepository) Load(ctx context.Context, name string) (*session.Progress, error) {
	var (
		playerID int64
		lureID   string
		p        = session.Progress{Player: name}
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, mastery_level, experience, stamina, funds, equipped_lure
		 FROM players WHERE name = $1`, name,
	).Scan(&playerID, &p.Stats.MasteryLevel, &p.Stats.Experience, &p.Stats.Stamina, &p.Stats.Funds, &lureID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying player %q: %w", name, err)
	}

	p.Stats.EquippedLure = data.GetLure(lureID)
	if p.Stats.EquippedLure == nil {
		return nil, fmt.Errorf("player %q: unknown equipped lure %q", name, lureID)
	}

	if p.Lures, err = r.loadLures(ctx, playerID); err != nil {
		return nil, err
	}
	if p.Quests, err = r.loadQuests(ctx, playerID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgressRepository) loadLures(ctx context.Context, playerID int64) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT lure_id, quantity FROM player_lures WHERE player_id = $1`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying lures for player %d: %w", playerID, err)
	}
	defer rows.Close()

	lures := make(map[string]int, 8)
	for rows.Next() {
		var id string
		var qty int
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scanning lure row: %w", err)
		}
		lures[id] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lure rows: %w", err)
	}
	return lures, nil
}

func (r *ProgressRepository) loadQuests(ctx context.Context, playerID int64) ([]quest.ObjectiveProgress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT quest_id, objective_index, remaining, completed
		 FROM player_quests WHERE player_id = $1
		 ORDER BY quest_id, objective_index`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying quests for player %d: %w", playerID, err)
	}
	defer rows.Close()

	var progress []quest.ObjectiveProgress
	for rows.Next() {
		var op quest.ObjectiveProgress
		if err := rows.Scan(&op.QuestID, &op.ObjectiveIndex, &op.Remaining, &op.Completed); err != nil {
			return nil, fmt.Errorf("scanning quest row: %w", err)
		}
		progress = append(progress, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quest rows: %w", err)
	}
	return progress, nil
}

// Save writes the whole progress in one transaction. Lures and quests are
// replaced, not merged.
func (r *ProgressRepository) Save(ctx context.Context, p session.Progress) error {
	if p.Stats.EquippedLure == nil {
		return fmt.Errorf("saving player %q: no equipped lure", p.Player)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "player", p.Player, "error", err)
		}
	}()

	var playerID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO players (name, mastery_level, experience, stamina, funds, equipped_lure, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (name) DO UPDATE SET
		     mastery_level = EXCLUDED.mastery_level,
		     experience    = EXCLUDED.experience,
		     stamina       = EXCLUDED.stamina,
		     funds         = EXCLUDED.funds,
		     equipped_lure = EXCLUDED.equipped_lure,
		     updated_at    = now()
		 RETURNING id`,
		p.Player, p.Stats.MasteryLevel, p.Stats.Experience, p.Stats.Stamina, p.Stats.Funds, p.Stats.EquippedLure.ID,
	).Scan(&playerID)
	if err != nil {
		return fmt.Errorf("upserting player %q: %w", p.Player, err)
	}

	if err := saveLuresTx(ctx, tx, playerID, p.Lures); err != nil {
		return err
	}
	if err := saveQuestsTx(ctx, tx, playerID, p.Quests); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Debug("progress saved", "player", p.Player, "lures", len(p.Lures), "objectives", len(p.Quests))
	return nil
}

func saveLuresTx(ctx context.Context, tx pgx.Tx, playerID int64, lures map[string]int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM player_lures WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting lures for player %d: %w", playerID, err)
	}

	ids := make([]string, 0, len(lures))
	for id, qty := range lures {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)

	rows := make([][]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []any{playerID, id, lures[id]})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"player_lures"},
		[]string{"player_id", "lure_id", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting lures for player %d: %w", playerID, err)
	}
	return nil
}

func saveQuestsTx(ctx context.Context, tx pgx.Tx, playerID int64, progress []quest.ObjectiveProgress) error {
	if _, err := tx.Exec(ctx, `DELETE FROM player_quests WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting quests for player %d: %w", playerID, err)
	}
	if len(progress) == 0 {
		return nil
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"player_quests"},
		[]string{"player_id", "quest_id", "objective_index", "remaining", "completed"},
		pgx.CopyFromSlice(len(progress), func(i int) ([]any, error) {
			op := progress[i]
			return []any{playerID, op.QuestID, op.ObjectiveIndex, op.Remaining, op.Completed}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("inserting quests for player %d: %w", playerID, err)
	}
	return nil
}
