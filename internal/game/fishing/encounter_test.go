package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
)

// boat: точка, к которой тянется леска в тестах.
var boat = model.Vec3{Y: 0.5}

// speciesByRarity returns one species of each tier.
func speciesByRarity(t *testing.T) map[data.Rarity]*data.Species {
	t.Helper()
	result := make(map[data.Rarity]*data.Species)
	for _, s := range data.FishSpecies {
		if _, ok := result[s.Rarity]; !ok {
			result[s.Rarity] = s
		}
	}
	require.Len(t, result, 6, "species table must cover every rarity tier")
	return result
}

func newTestFish(speciesID string) *model.Fish {
	return model.NewFish(1, data.GetSpecies(speciesID), model.Vec3{X: 40, Y: -30, Z: 20}, nil)
}

// countingFish records hook toggles.
type countingFish struct {
	*model.Fish
	hooks, unhooks int
}

func (c *countingFish) SetHooked(v bool) {
	if v {
		c.hooks++
	} else {
		c.unhooks++
	}
	c.Fish.SetHooked(v)
}

func TestNewEncounter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rarity     data.Rarity
		difficulty float64
		label      string
	}{
		{data.RarityCommon, 1, "Gentle"},
		{data.RarityUncommon, 1.5, "Lively"},
		{data.RarityRare, 2.2, "Lively"},
		{data.RarityEpic, 2.8, "Ferocious"},
		{data.RarityLegendary, 3.4, "Legendary"},
		{data.RarityMythic, 4, "Mythic"},
	}
	species := speciesByRarity(t)

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			fish := model.NewFish(1, species[tt.rarity], model.Vec3{}, nil)
			e := NewEncounter(fish, rng.New(1), DefaultTuning())

			assert.True(t, fish.IsHooked())
			assert.Equal(t, StateReeling, e.State())
			assert.Equal(t, tt.difficulty, e.Difficulty())
			assert.Equal(t, 35.0, e.tension)
			assert.GreaterOrEqual(t, e.jerkInterval, 1.8)
			assert.Less(t, e.jerkInterval, 3.6)

			hud := e.HudInfo()
			assert.Equal(t, tt.label, hud.DifficultyLabel)
			assert.Equal(t, species[tt.rarity].Name, hud.FishName)
			assert.Equal(t, tt.rarity, hud.Rarity)
		})
	}
}

func TestNewEncounter_UnknownRarity(t *testing.T) {
	t.Parallel()

	odd := &data.Species{ID: "odd", Name: "Odd Fish", Rarity: data.Rarity("strange"), Habitats: []data.Habitat{data.HabitatReef}}
	e := NewEncounter(model.NewFish(1, odd, model.Vec3{}, nil), rng.New(1), DefaultTuning())

	assert.Equal(t, 2.0, e.Difficulty())
	assert.Equal(t, "Lively", e.HudInfo().DifficultyLabel)
}

func TestEncounter_ReelingRaisesTension(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("azure_trout"), rng.New(1337), DefaultTuning())
	require.Equal(t, 1.0, e.Difficulty())
	require.Equal(t, 35.0, e.tension)

	for range 10 {
		require.Equal(t, StateReeling, e.Update(0.1, true, boat))
	}

	// 10 × 0.1 × (22 + 8) = 30, no jerk within 1s (first jerk ≥ 1.8s).
	assert.InDelta(t, 65.0, e.tension, 1e-9)
	assert.InDelta(t, 0.14, e.progress, 1e-9)
	assert.Equal(t, StateReeling, e.State())
}

func TestEncounter_SlackEscape(t *testing.T) {
	t.Parallel()

	fish := &countingFish{Fish: newTestFish("azure_trout")}
	e := NewEncounter(fish, rng.New(1), DefaultTuning())
	e.tension = 0
	e.jerkInterval = 100

	var state State
	for range 20 {
		state = e.Update(0.1, false, boat)
		if state.Terminal() {
			break
		}
	}

	assert.Equal(t, StateEscaped, state)
	assert.Greater(t, e.slackTimer, 1.6)
	assert.False(t, fish.IsHooked())
	assert.Equal(t, 1, fish.unhooks)
}

func TestEncounter_SnapPreemptsOtherChecks(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("azure_trout"), rng.New(1), DefaultTuning())
	e.jerkInterval = 100
	e.tension = 95
	e.slackTimer = 5  // would escape
	e.progress = 1.05 // would be caught

	state := e.Update(0.2, true, boat)

	assert.Equal(t, StateSnapped, state)
}

func TestEncounter_SlackPreemptsCaught(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("azure_trout"), rng.New(1), DefaultTuning())
	e.jerkInterval = 100
	e.tension = 0
	e.slackTimer = 1.59
	e.progress = 1.05

	assert.Equal(t, StateEscaped, e.Update(0.1, true, boat))
}

func TestEncounter_TerminalIsIdempotent(t *testing.T) {
	t.Parallel()

	fish := &countingFish{Fish: newTestFish("azure_trout")}
	e := NewEncounter(fish, rng.New(1), DefaultTuning())
	e.jerkInterval = 100
	e.progress = 0.99

	require.Equal(t, StateCaught, e.Update(0.1, true, boat))

	progress, tension, slack, jerk := e.progress, e.tension, e.slackTimer, e.jerkTimer
	pos := fish.Position()

	for range 5 {
		assert.Equal(t, StateCaught, e.Update(1, true, boat))
		assert.Equal(t, StateCaught, e.Update(1, false, model.Vec3{X: 500}))
	}

	assert.Equal(t, progress, e.progress)
	assert.Equal(t, tension, e.tension)
	assert.Equal(t, slack, e.slackTimer)
	assert.Equal(t, jerk, e.jerkTimer)
	assert.Equal(t, pos, fish.Position())
	assert.Equal(t, 1, fish.hooks)
	assert.Equal(t, 1, fish.unhooks, "cleanup must run exactly once")
}

func TestEncounter_JerkSpikesTension(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("azure_trout"), rng.New(1), DefaultTuning())
	e.jerkInterval = 0.05
	e.progress = 0.5

	e.Update(0.1, false, boat)

	// release: 35 - 0.1×16 = 33.4; jerk: +16.
	assert.InDelta(t, 49.4, e.tension, 1e-9)
	// decay: 0.5 - 0.1×0.045 = 0.4955; jerk: -0.06.
	assert.InDelta(t, 0.4355, e.progress, 1e-9)
	assert.Zero(t, e.jerkTimer)
	assert.GreaterOrEqual(t, e.jerkInterval, 1.4)
	assert.Less(t, e.jerkInterval, 3.2)
}

func TestEncounter_JerkPenaltyFlooredAtZero(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("ancient_coelacanth"), rng.New(1), DefaultTuning())
	e.jerkInterval = 0.01
	e.progress = 0.1

	e.Update(0.02, false, boat)

	assert.Zero(t, e.progress)
}

func TestEncounter_PullTowardBoat(t *testing.T) {
	t.Parallel()

	t.Run("difficulty-scaled rate", func(t *testing.T) {
		fish := model.NewFish(1, data.GetSpecies("azure_trout"), model.Vec3{X: 100, Y: -44, Z: 0}, nil)
		e := NewEncounter(fish, rng.New(1), DefaultTuning())
		e.jerkInterval = 100

		e.Update(0.1, false, model.Vec3{Y: 0.5})

		// frac = 0.1 × 0.25 = 0.025 toward (0, -4, 0).
		pos := fish.Position()
		assert.InDelta(t, 97.5, pos.X, 1e-9)
		assert.InDelta(t, -43.0, pos.Y, 1e-9)
	})

	t.Run("long frame capped", func(t *testing.T) {
		fish := model.NewFish(1, data.GetSpecies("ancient_coelacanth"), model.Vec3{X: 100, Y: -4}, nil)
		tuning := DefaultTuning()
		tuning.InitialJerkMin, tuning.InitialJerkMax = 1000, 1000
		tuning.SlackWindowBase = 1000
		e := NewEncounter(fish, rng.New(1), tuning)

		e.Update(10, false, model.Vec3{})

		assert.InDelta(t, 60.0, fish.Position().X, 1e-9, "pull fraction must cap at 0.4")
	})
}

func TestEncounter_ContinuousReelingCatchesEveryTier(t *testing.T) {
	t.Parallel()

	// No jerks and an unreachable snap: only progress matters.
	tuning := DefaultTuning()
	tuning.InitialJerkMin, tuning.InitialJerkMax = 1e9, 1e9
	tuning.SnapTension = 1e9

	for rarity, species := range speciesByRarity(t) {
		t.Run(string(rarity), func(t *testing.T) {
			e := NewEncounter(model.NewFish(1, species, model.Vec3{}, nil), rng.New(9), tuning)

			state := StateReeling
			prev := e.progress
			for i := 0; i < 10000 && !state.Terminal(); i++ {
				state = e.Update(1.0/60, true, boat)
				require.GreaterOrEqual(t, e.progress, prev, "progress must not drop while reeling without jerks")
				prev = e.progress
			}
			assert.Equal(t, StateCaught, state)
		})
	}
}

func TestEncounter_NeverReelingEscapes(t *testing.T) {
	t.Parallel()

	for seed := uint32(1); seed <= 25; seed++ {
		e := NewEncounter(newTestFish("azure_trout"), rng.New(seed), DefaultTuning())

		state := StateReeling
		for i := 0; i < 10000 && !state.Terminal(); i++ {
			state = e.Update(1.0/60, false, boat)
			require.Zero(t, e.HudInfo().Progress, "seed %d: progress rose without reeling", seed)
		}
		assert.Equal(t, StateEscaped, state, "seed %d", seed)
	}
}

func TestEncounter_NeverReelingIsNeverCaught(t *testing.T) {
	t.Parallel()

	for rarity, species := range speciesByRarity(t) {
		t.Run(string(rarity), func(t *testing.T) {
			for seed := uint32(1); seed <= 10; seed++ {
				e := NewEncounter(model.NewFish(1, species, model.Vec3{}, nil), rng.New(seed), DefaultTuning())
				state := StateReeling
				for i := 0; i < 20000 && !state.Terminal(); i++ {
					state = e.Update(1.0/30, false, boat)
				}
				assert.True(t, state.Terminal(), "seed %d: encounter never ended", seed)
				assert.NotEqual(t, StateCaught, state, "seed %d", seed)
			}
		})
	}
}

func TestEncounter_HudAlwaysClamped(t *testing.T) {
	t.Parallel()

	input := rng.New(77)
	for rarity, species := range speciesByRarity(t) {
		t.Run(string(rarity), func(t *testing.T) {
			for seed := uint32(1); seed <= 10; seed++ {
				e := NewEncounter(model.NewFish(1, species, model.Vec3{}, nil), rng.New(seed), DefaultTuning())
				for i := 0; i < 5000 && !e.State().Terminal(); i++ {
					e.Update(input.Range(0, 0.25), input.Next() < 0.6, boat)
					hud := e.HudInfo()
					require.GreaterOrEqual(t, hud.Progress, 0.0)
					require.LessOrEqual(t, hud.Progress, 1.0)
					require.GreaterOrEqual(t, hud.Tension, 0.0)
					require.LessOrEqual(t, hud.Tension, 100.0)
				}
			}
		})
	}

	t.Run("internal overshoot", func(t *testing.T) {
		e := NewEncounter(newTestFish("azure_trout"), rng.New(1), DefaultTuning())
		e.tension = 120
		e.progress = 1.1

		hud := e.HudInfo()
		assert.Equal(t, 100.0, hud.Tension)
		assert.Equal(t, 1.0, hud.Progress)
		assert.Equal(t, StateReeling, hud.State)
	})
}

func TestEncounter_TensionClampedInternally(t *testing.T) {
	t.Parallel()

	e := NewEncounter(newTestFish("azure_trout"), rng.New(1), DefaultTuning())
	e.jerkInterval = 100
	e.tension = 2

	e.Update(1, false, boat)
	assert.Zero(t, e.tension)
}

func TestTuning_Floors(t *testing.T) {
	t.Parallel()

	tuning := DefaultTuning()
	for d := 1.0; d <= 4.0; d += 0.01 {
		assert.GreaterOrEqual(t, tuning.ProgressRate(d), 0.05, "ProgressRate(%.2f)", d)
		assert.GreaterOrEqual(t, tuning.ReleaseLoss(d), 8.0, "ReleaseLoss(%.2f)", d)
	}
}

func TestTuning_Formulas(t *testing.T) {
	t.Parallel()

	tuning := DefaultTuning()
	tests := []struct {
		d                                    float64
		rate, gain, loss, spike, slackWindow float64
	}{
		{1, 0.14, 30, 16, 16, 1.6},
		{2.2, 0.116, 39.6, 13.6, 23.2, 1.336},
		{4, 0.08, 54, 10, 34, 0.94},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.rate, tuning.ProgressRate(tt.d), 1e-9)
		assert.InDelta(t, tt.gain, tuning.ReelGain(tt.d), 1e-9)
		assert.InDelta(t, tt.loss, tuning.ReleaseLoss(tt.d), 1e-9)
		assert.InDelta(t, tt.spike, tuning.JerkTension(tt.d), 1e-9)
		assert.InDelta(t, tt.slackWindow, tuning.SlackThreshold(tt.d), 1e-9)
	}
}

func TestDifficultyLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    float64
		want string
	}{
		{1, "Gentle"},
		{1.49, "Gentle"},
		{1.5, "Lively"},
		{2.29, "Lively"},
		{2.3, "Ferocious"},
		{3.0, "Legendary"},
		{3.59, "Legendary"},
		{3.6, "Mythic"},
		{4, "Mythic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DifficultyLabel(tt.d), "d=%.2f", tt.d)
	}
}
