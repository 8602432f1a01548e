package main

import (
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/game/fishing"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
)

// strategy reels in bursts: reel until tension reaches High, release until
// it falls to Low. High <= Low degenerates to always reeling.
type strategy struct {
	High float64
	Low  float64
}

type trialResult struct {
	State    fishing.State
	Duration float64 // simulated seconds until the encounter ended
}

// boatPosition is where the line is pulled toward.
var boatPosition = model.Vec3{Y: 0.5}

// runTrial plays one encounter to the end or until maxTime passes. An
// encounter still running at maxTime counts as escaped.
func runTrial(species *data.Species, tuning fishing.Tuning, s strategy, seed uint32, dt, maxTime float64) trialResult {
	rnd := rng.New(seed)
	pos := model.Vec3{X: rnd.Range(-60, 60), Y: rnd.Range(-80, -10), Z: rnd.Range(-60, 60)}
	fish := model.NewFish(1, species, pos, nil)
	enc := fishing.NewEncounter(fish, rnd, tuning)

	reeling := true
	var elapsed float64
	for elapsed < maxTime {
		tension := enc.HudInfo().Tension
		switch {
		case s.High <= s.Low:
			reeling = true
		case reeling && tension >= s.High:
			reeling = false
		case !reeling && tension <= s.Low:
			reeling = true
		}

		elapsed += dt
		if st := enc.Update(dt, reeling, boatPosition); st.Terminal() {
			return trialResult{State: st, Duration: elapsed}
		}
	}
	return trialResult{State: fishing.StateEscaped, Duration: elapsed}
}

// summary aggregates trials of one species.
type summary struct {
	Species *data.Species
	Trials  int
	Counts  map[fishing.State]int

	catchTime float64
}

func summarize(species *data.Species, results []trialResult) summary {
	sum := summary{Species: species, Trials: len(results), Counts: make(map[fishing.State]int)}
	for _, r := range results {
		sum.Counts[r.State]++
		if r.State == fishing.StateCaught {
			sum.catchTime += r.Duration
		}
	}
	return sum
}

// Rate returns the share of trials that ended in st.
func (s summary) Rate(st fishing.State) float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Counts[st]) / float64(s.Trials)
}

// MeanCatchTime returns the average fight length of landed fish.
func (s summary) MeanCatchTime() float64 {
	n := s.Counts[fishing.StateCaught]
	if n == 0 {
		return 0
	}
	return s.catchTime / float64(n)
}
