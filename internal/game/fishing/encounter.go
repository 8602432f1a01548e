// Package fishing implements the reeling minigame and the rules around it.
//
// An Encounter balances two coupled resources. Reeling gains progress and
// raises tension; releasing bleeds tension but lets progress slip. The fish
// jerks at random intervals (tension spike, progress penalty), so holding the
// reel forever snaps the line, and leaving the line slack too long lets the
// fish escape. Progress reaching 1 lands the fish.
package fishing

import (
	"log/slog"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
)

// State is the encounter state. Everything except StateReeling is terminal.
type State string

// Encounter states.
const (
	StateReeling State = "reeling"
	StateCaught  State = "caught"
	StateEscaped State = "escaped"
	StateSnapped State = "snapped"
)

// Terminal reports whether the encounter is over.
func (s State) Terminal() bool {
	return s != StateReeling
}

// Outcome converts a terminal state to a journal outcome.
func (s State) Outcome() model.Outcome {
	return model.Outcome(s)
}

// Hookable is the fish side of an encounter. Implemented by *model.Fish.
type Hookable interface {
	Species() *data.Species
	Position() model.Vec3
	SetPosition(model.Vec3)
	SetHooked(bool)
}

// Encounter is one catch attempt. Not safe for concurrent use.
type Encounter struct {
	fish   Hookable
	rnd    *rng.Random
	tuning Tuning

	state        State
	progress     float64
	tension      float64
	slackTimer   float64
	jerkTimer    float64
	jerkInterval float64
	difficulty   float64
}

// NewEncounter hooks fish and starts the fight. Difficulty comes from the
// species rarity and never changes afterwards.
func NewEncounter(fish Hookable, rnd *rng.Random, tuning Tuning) *Encounter {
	e := &Encounter{
		fish:       fish,
		rnd:        rnd,
		tuning:     tuning,
		state:      StateReeling,
		tension:    tuning.InitialTension,
		difficulty: fish.Species().Params().Difficulty,
	}
	e.jerkInterval = rnd.Range(tuning.InitialJerkMin, tuning.InitialJerkMax)
	fish.SetHooked(true)

	slog.Debug("encounter started",
		"species", fish.Species().ID,
		"difficulty", e.difficulty,
		"jerkInterval", e.jerkInterval)
	return e
}

// Fish returns the hooked fish.
func (e *Encounter) Fish() Hookable { return e.fish }

// State returns the current state.
func (e *Encounter) State() State { return e.state }

// Difficulty returns the rarity-derived difficulty.
func (e *Encounter) Difficulty() float64 { return e.difficulty }

// Update advances the fight by dt seconds. reeling is the player's input,
// target is where the line is pulled toward (the boat). Terminal encounters
// return their state unchanged.
func (e *Encounter) Update(dt float64, reeling bool, target model.Vec3) State {
	if e.state.Terminal() {
		return e.state
	}

	t := &e.tuning
	d := e.difficulty

	if reeling {
		e.progress += dt * t.ProgressRate(d)
		e.tension += dt * t.ReelGain(d)
	} else {
		e.progress = max(0, e.progress-dt*t.ProgressDecay(d))
		e.tension -= dt * t.ReleaseLoss(d)
	}
	e.tension = model.Clamp(e.tension, 0, t.TensionCeiling)

	// Рывок рыбы: не зависит от ввода игрока.
	e.jerkTimer += dt
	if e.jerkTimer >= e.jerkInterval {
		e.jerkTimer = 0
		e.jerkInterval = e.rnd.Range(t.JerkMin, t.JerkMax)
		e.tension += t.JerkTension(d)
		e.progress = max(0, e.progress-t.JerkPenalty(d))
	}

	e.pullToward(target, dt)

	if e.tension >= t.SnapTension {
		return e.finish(StateSnapped)
	}

	if e.tension < t.SlackTension {
		e.slackTimer += dt
	} else {
		e.slackTimer = max(0, e.slackTimer-dt*t.SlackRecoveryRate)
	}
	if e.slackTimer > t.SlackThreshold(d) {
		return e.finish(StateEscaped)
	}

	e.progress = model.Clamp(e.progress, 0, t.ProgressCeiling)
	if e.progress >= 1 {
		return e.finish(StateCaught)
	}

	return e.state
}

// pullToward drags the fish to a point below target. The per-frame fraction
// is capped so a long frame can't teleport the fish onto the boat.
func (e *Encounter) pullToward(target model.Vec3, dt float64) {
	t := &e.tuning
	dest := target.WithY(t.PullDepth)
	frac := model.Clamp(dt*t.PullRate(e.difficulty), 0, t.PullMaxFraction)
	e.fish.SetPosition(e.fish.Position().Lerp(dest, frac))
}

// finish moves to a terminal state and releases the fish. Called once.
func (e *Encounter) finish(s State) State {
	e.state = s
	e.fish.SetHooked(false)

	slog.Debug("encounter finished",
		"species", e.fish.Species().ID,
		"state", s,
		"progress", e.progress,
		"tension", e.tension)
	return s
}
