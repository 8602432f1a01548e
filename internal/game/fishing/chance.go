package fishing

import (
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
)

// Catch chance bounds: even the best setup can fail and the worst can work.
const (
	minCatchChance = 0.05
	maxCatchChance = 0.95
)

// CatchTuning holds the hook-roll modifiers.
type CatchTuning struct {
	LureBonus float64 `yaml:"lure_bonus"` // lure habitat matches species habitat
	HourBonus float64 `yaml:"hour_bonus"` // added inside the active window, subtracted outside
}

// DefaultCatchTuning returns the shipped modifiers.
func DefaultCatchTuning() CatchTuning {
	return CatchTuning{
		LureBonus: 0.1,
		HourBonus: 0.08,
	}
}

// CatchChance returns the probability that casting at species hooks it.
// lure may be nil (no lure bonus).
func CatchChance(species *data.Species, lure *data.Lure, hour float64, ct CatchTuning) float64 {
	chance := species.Params().BaseCatchChance

	if lure != nil && lure.Suits(species.Habitats) {
		chance += ct.LureBonus
	}

	if IsActiveHour(hour, species.ActiveHours) {
		chance += ct.HourBonus
	} else {
		chance -= ct.HourBonus
	}

	return model.Clamp(chance, minCatchChance, maxCatchChance)
}

// IsActiveHour reports whether hour is inside window (inclusive). A window
// with start > end wraps past midnight.
func IsActiveHour(hour float64, window [2]float64) bool {
	start, end := window[0], window[1]
	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}

// FindCandidate returns the nearest non-hooked fish strictly closer than
// radius to from. ok is false when nothing is in range; that is a normal
// outcome, not an error.
func FindCandidate(fishes []*model.Fish, from model.Vec3, radius float64) (*model.Fish, bool) {
	var closest *model.Fish
	best := radius
	for _, f := range fishes {
		if f.IsHooked() {
			continue
		}
		if dist := f.Position().DistanceTo(from); dist < best {
			best = dist
			closest = f
		}
	}
	return closest, closest != nil
}
