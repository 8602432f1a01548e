// Package quest tracks fishing contracts: which catches still count toward
// each objective and what the player earns for them.
package quest

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/reelsim/internal/data"
)

// Rewarder receives objective rewards. Implemented by *model.Player.
type Rewarder interface {
	AwardExperience(amount int) bool
	AddFunds(amount int)
}

// Completed describes a contract finished by a catch.
type Completed struct {
	QuestID string
	Title   string
}

// ObjectiveProgress is one persisted objective row.
type ObjectiveProgress struct {
	QuestID        string
	ObjectiveIndex int
	Remaining      int
	Completed      bool // whole quest
}

// questState is the mutable side of one contract.
type questState struct {
	def       data.QuestDef
	remaining []int
	completed bool
}

// Tracker holds contract progress for one player. Not safe for concurrent use.
type Tracker struct {
	quests  []*questState
	byID    map[string]*questState
	changed bool // dirty flag for persistence
}

// NewTracker starts every contract in defs from scratch.
func NewTracker(defs []data.QuestDef) *Tracker {
	t := &Tracker{
		quests: make([]*questState, 0, len(defs)),
		byID:   make(map[string]*questState, len(defs)),
	}
	for _, def := range defs {
		qs := &questState{def: def, remaining: make([]int, len(def.Objectives))}
		for i, obj := range def.Objectives {
			qs.remaining[i] = obj.Quantity
		}
		t.quests = append(t.quests, qs)
		t.byID[def.ID] = qs
	}
	return t
}

// RegisterCatch counts a landed fish against every open contract. Each
// matching objective step pays its experience and funds immediately.
// Returns the contracts this catch completed.
func (t *Tracker) RegisterCatch(r Rewarder, speciesID string) []Completed {
	var done []Completed

	for _, qs := range t.quests {
		if qs.completed {
			continue
		}

		finished := true
		for i, obj := range qs.def.Objectives {
			if obj.TargetSpeciesID == "" || obj.Quantity <= 0 {
				continue
			}
			if obj.TargetSpeciesID == speciesID && qs.remaining[i] > 0 {
				qs.remaining[i]--
				r.AwardExperience(obj.RewardExperience)
				r.AddFunds(obj.RewardFunds)
				t.changed = true
			}
			if qs.remaining[i] > 0 {
				finished = false
			}
		}

		if finished {
			qs.completed = true
			t.changed = true
			done = append(done, Completed{QuestID: qs.def.ID, Title: qs.def.Title})
			slog.Info("contract completed", "quest", qs.def.ID)
		}
	}
	return done
}

// Remaining returns how many catches objective idx of quest still needs.
func (t *Tracker) Remaining(questID string, idx int) (int, bool) {
	qs, ok := t.byID[questID]
	if !ok || idx < 0 || idx >= len(qs.remaining) {
		return 0, false
	}
	return qs.remaining[idx], true
}

// IsCompleted reports whether the contract is finished.
func (t *Tracker) IsCompleted(questID string) bool {
	qs, ok := t.byID[questID]
	return ok && qs.completed
}

// Progress returns one row per objective, in definition order.
func (t *Tracker) Progress() []ObjectiveProgress {
	var rows []ObjectiveProgress
	for _, qs := range t.quests {
		for i := range qs.remaining {
			rows = append(rows, ObjectiveProgress{
				QuestID:        qs.def.ID,
				ObjectiveIndex: i,
				Remaining:      qs.remaining[i],
				Completed:      qs.completed,
			})
		}
	}
	return rows
}

// Restore applies saved rows. Rows for contracts no longer defined are
// skipped with a warning; a row pointing past a contract's objectives is an
// error.
func (t *Tracker) Restore(rows []ObjectiveProgress) error {
	for _, row := range rows {
		qs, ok := t.byID[row.QuestID]
		if !ok {
			slog.Warn("saved progress for unknown contract", "quest", row.QuestID)
			continue
		}
		if row.ObjectiveIndex < 0 || row.ObjectiveIndex >= len(qs.remaining) {
			return fmt.Errorf("restoring quest %s: objective index %d out of range", row.QuestID, row.ObjectiveIndex)
		}
		if row.Remaining < 0 {
			return fmt.Errorf("restoring quest %s: negative remaining %d", row.QuestID, row.Remaining)
		}
		qs.remaining[row.ObjectiveIndex] = row.Remaining
		qs.completed = row.Completed
	}
	t.changed = false
	return nil
}

// IsChanged reports whether progress moved since the last MarkSaved.
func (t *Tracker) IsChanged() bool { return t.changed }

// MarkSaved clears the dirty flag.
func (t *Tracker) MarkSaved() { t.changed = false }
