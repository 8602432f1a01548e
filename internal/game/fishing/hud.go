package fishing

import (
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
)

// HudInfo is the read-only encounter snapshot shown to the player.
// Progress is clamped to [0,1] and Tension to [0,100] whatever the
// internal overshoot.
type HudInfo struct {
	FishName        string
	Rarity          data.Rarity
	Progress        float64
	Tension         float64
	State           State
	DifficultyLabel string
}

// difficultyLabels maps upper bounds (exclusive) to labels, ascending.
var difficultyLabels = []struct {
	below float64
	label string
}{
	{1.5, "Gentle"},
	{2.3, "Lively"},
	{3.0, "Ferocious"},
	{3.6, "Legendary"},
}

// DifficultyLabel names a difficulty for display.
func DifficultyLabel(d float64) string {
	for _, l := range difficultyLabels {
		if d < l.below {
			return l.label
		}
	}
	return "Mythic"
}

// HudInfo returns the current snapshot. Pure read.
func (e *Encounter) HudInfo() HudInfo {
	species := e.fish.Species()
	return HudInfo{
		FishName:        species.Name,
		Rarity:          species.Rarity,
		Progress:        model.Clamp(e.progress, 0, 1),
		Tension:         model.Clamp(e.tension, 0, 100),
		State:           e.state,
		DifficultyLabel: DifficultyLabel(e.difficulty),
	}
}
