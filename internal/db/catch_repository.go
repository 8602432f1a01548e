package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/session"
)

// CatchRecord is one catch_log row.
type CatchRecord struct {
	SpeciesID string
	Rarity    data.Rarity
	Outcome   model.Outcome
	WorldHour float64
	CaughtAt  time.Time
}

// CatchRepository appends to and queries the catch log.
type CatchRepository struct {
	db *pgxpool.Pool
}

// NewCatchRepository creates a new CatchRepository.
func NewCatchRepository(db *pgxpool.Pool) *CatchRepository {
	return &CatchRepository{db: db}
}

// Record logs a finished encounter. The player must have been saved first.
func (r *CatchRepository) Record(ctx context.Context, ev session.CatchEvent) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO catch_log (player_id, species_id, rarity, outcome, world_hour)
		 SELECT id, $2, $3, $4, $5 FROM players WHERE name = $1`,
		ev.Player, ev.SpeciesID, string(ev.Rarity), string(ev.Outcome), ev.Hour,
	)
	if err != nil {
		return fmt.Errorf("recording catch of %s for %q: %w", ev.SpeciesID, ev.Player, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recording catch of %s: player %q not found", ev.SpeciesID, ev.Player)
	}
	return nil
}

// CountBySpecies returns species ID → number of landed fish.
func (r *CatchRepository) CountBySpecies(ctx context.Context, player string) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.species_id, count(*)
		 FROM catch_log c JOIN players p ON p.id = c.player_id
		 WHERE p.name = $1 AND c.outcome = 'caught'
		 GROUP BY c.species_id`, player)
	if err != nil {
		return nil, fmt.Errorf("counting catches for %q: %w", player, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scanning catch count row: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catch count rows: %w", err)
	}
	return counts, nil
}

// Recent returns up to limit latest log entries, newest first.
func (r *CatchRepository) Recent(ctx context.Context, player string, limit int) ([]CatchRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT c.species_id, c.rarity, c.outcome, c.world_hour, c.caught_at
		 FROM catch_log c JOIN players p ON p.id = c.player_id
		 WHERE p.name = $1
		 ORDER BY c.caught_at DESC, c.id DESC
		 LIMIT $2`, player, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent catches for %q: %w", player, err)
	}
	defer rows.Close()

	records := make([]CatchRecord, 0, limit)
	for rows.Next() {
		var rec CatchRecord
		var rarity, outcome string
		if err := rows.Scan(&rec.SpeciesID, &rarity, &outcome, &rec.WorldHour, &rec.CaughtAt); err != nil {
			return nil, fmt.Errorf("scanning catch row: %w", err)
		}
		rec.Rarity = data.Rarity(rarity)
		rec.Outcome = model.Outcome(outcome)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catch rows: %w", err)
	}
	return records, nil
}
