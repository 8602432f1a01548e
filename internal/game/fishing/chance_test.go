package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
)

func TestCatchChance(t *testing.T) {
	t.Parallel()

	ct := DefaultCatchTuning()
	tests := []struct {
		name    string
		species string
		lure    string
		hour    float64
		want    float64
	}{
		{"common, matching lure, active hour, capped", "azure_trout", "river_shad", 8, 0.95},
		{"common, wrong lure, off hour", "azure_trout", "coral_shrimp", 20, 0.82},
		{"mythic off hour floors", "ancient_coelacanth", "river_shad", 23.5, 0.05},
		{"legendary, wrapped window", "voltaic_eel", "storm_minnow", 1, 0.38},
		{"legendary, no lure, off hour", "voltaic_eel", "", 12, 0.12},
		{"rare, matching lure, off hour", "glacier_salmon", "frostworm", 3, 0.52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lure *data.Lure
			if tt.lure != "" {
				lure = data.GetLure(tt.lure)
			}
			got := CatchChance(data.GetSpecies(tt.species), lure, tt.hour, ct)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCatchChance_AlwaysInBounds(t *testing.T) {
	t.Parallel()

	ct := CatchTuning{LureBonus: 5, HourBonus: 5}
	for _, s := range data.FishSpecies {
		for _, l := range data.Lures {
			for hour := 0.0; hour < 24; hour += 0.5 {
				got := CatchChance(s, l, hour, ct)
				assert.GreaterOrEqual(t, got, 0.05)
				assert.LessOrEqual(t, got, 0.95)
			}
		}
	}
}

func TestIsActiveHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		window [2]float64
		hour   float64
		want   bool
	}{
		{[2]float64{5, 11}, 5, true},
		{[2]float64{5, 11}, 11, true},
		{[2]float64{5, 11}, 11.5, false},
		{[2]float64{5, 11}, 4.9, false},
		{[2]float64{19, 2}, 19, true},
		{[2]float64{19, 2}, 23, true},
		{[2]float64{19, 2}, 1, true},
		{[2]float64{19, 2}, 2, true},
		{[2]float64{19, 2}, 2.5, false},
		{[2]float64{19, 2}, 18.9, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActiveHour(tt.hour, tt.window), "hour %.1f in %v", tt.hour, tt.window)
	}
}

func TestFindCandidate(t *testing.T) {
	t.Parallel()

	trout := data.GetSpecies("azure_trout")
	at := func(id uint32, x float64) *model.Fish {
		return model.NewFish(id, trout, model.Vec3{X: x, Y: -10}, nil)
	}
	from := model.Vec3{Y: -10}

	t.Run("nearest wins", func(t *testing.T) {
		fishes := []*model.Fish{at(1, 50), at(2, 10), at(3, 85)}
		got, ok := FindCandidate(fishes, from, 90)
		assert.True(t, ok)
		assert.Equal(t, uint32(2), got.ID())
	})

	t.Run("hooked fish skipped", func(t *testing.T) {
		hooked := at(1, 5)
		hooked.SetHooked(true)
		fishes := []*model.Fish{hooked, at(2, 40)}
		got, ok := FindCandidate(fishes, from, 90)
		assert.True(t, ok)
		assert.Equal(t, uint32(2), got.ID())
	})

	t.Run("radius is exclusive", func(t *testing.T) {
		_, ok := FindCandidate([]*model.Fish{at(1, 90), at(2, 120)}, from, 90)
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		got, ok := FindCandidate(nil, from, 90)
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}
