// Package session runs one player's fishing session: casting, the active
// encounter and what happens when it ends. The host calls Update once per
// frame; nothing in here keeps its own clock.
package session

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/game/fishing"
	"github.com/udisondev/reelsim/internal/game/quest"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
	"github.com/udisondev/reelsim/internal/world"
)

// Config holds session rules.
type Config struct {
	CastRadius   float64 `yaml:"cast_radius"`
	HookCooldown float64 `yaml:"hook_cooldown"`
	FeedLifetime float64 `yaml:"feed_lifetime"`

	Encounter fishing.Tuning      `yaml:"-"`
	Catch     fishing.CatchTuning `yaml:"-"`
}

// DefaultConfig returns the shipped rules.
func DefaultConfig() Config {
	return Config{
		CastRadius:   90,
		HookCooldown: 1.5,
		FeedLifetime: 4,
		Encounter:    fishing.DefaultTuning(),
		Catch:        fishing.DefaultCatchTuning(),
	}
}

// CastOutcome is the result of a cast. None of them is an error.
type CastOutcome string

// Cast outcomes.
const (
	CastHooked   CastOutcome = "hooked"
	CastSlack    CastOutcome = "slack"    // roll failed
	CastNoEcho   CastOutcome = "no_echo"  // nothing in range
	CastCooldown CastOutcome = "cooldown" // previous cast too recent
	CastBusy     CastOutcome = "busy"     // encounter in progress, input ignored
)

// Input is the player's per-frame control state.
type Input struct {
	Forward float64 // -1..1 throttle
	Turn    float64 // -1..1 rudder
	Reeling bool
}

// CatchEvent describes a finished encounter.
type CatchEvent struct {
	Player    string
	SpeciesID string
	Rarity    data.Rarity
	Outcome   model.Outcome
	Hour      float64
}

// CatchListener receives finished encounters. Called on the Update
// goroutine; must not block.
type CatchListener func(CatchEvent)

// Session orchestrates casting and encounters. Not safe for concurrent use.
type Session struct {
	cfg      Config
	world    *world.World
	player   *model.Player
	tracker  *quest.Tracker
	journal  *model.Journal
	rnd      *rng.Random
	listener CatchListener

	encounter *fishing.Encounter
	hooked    *model.Fish
	cooldown  float64
	feed      feed
}

// New creates a session. listener may be nil.
func New(cfg Config, w *world.World, player *model.Player, tracker *quest.Tracker, rnd *rng.Random, listener CatchListener) *Session {
	return &Session{
		cfg:      cfg,
		world:    w,
		player:   player,
		tracker:  tracker,
		journal:  model.NewJournal(),
		rnd:      rnd,
		listener: listener,
		feed:     feed{lifetime: cfg.FeedLifetime},
	}
}

// Cast throws the line at the nearest fish in range.
func (s *Session) Cast() CastOutcome {
	if s.encounter != nil {
		return CastBusy
	}
	if s.cooldown > 0 {
		return CastCooldown
	}
	s.cooldown = s.cfg.HookCooldown

	fish, ok := fishing.FindCandidate(s.world.Fishes(), s.player.Position(), s.cfg.CastRadius)
	if !ok {
		s.feed.push("No sonar echo nearby.", NoticeNoEcho)
		return CastNoEcho
	}

	chance := fishing.CatchChance(fish.Species(), s.player.EquippedLure(), s.world.Hour(), s.cfg.Catch)
	if s.rnd.Next() >= chance {
		s.feed.push("The line went slack...", NoticeSlack)
		slog.Debug("cast missed", "species", fish.Species().ID, "chance", chance)
		return CastSlack
	}

	s.encounter = fishing.NewEncounter(fish, s.rnd, s.cfg.Encounter)
	s.hooked = fish
	s.feed.push(fmt.Sprintf("Hooked a %s!", fish.Species().Name), NoticeHooked)
	slog.Info("fish hooked", "fish", fish.ID(), "species", fish.Species().ID, "chance", chance)
	return CastHooked
}

// Update advances the session by dt seconds.
func (s *Session) Update(dt float64, in Input) {
	s.cooldown = max(0, s.cooldown-dt)
	s.player.Update(dt, in.Forward, in.Turn)
	s.world.Tick(dt)

	if s.encounter != nil {
		state := s.encounter.Update(dt, in.Reeling, s.player.Position())
		if state.Terminal() {
			s.resolve(state)
		}
	}

	s.feed.age(dt)
}

// resolve reacts to a finished encounter and discards it.
func (s *Session) resolve(state fishing.State) {
	fish := s.hooked
	species := fish.Species()
	outcome := state.Outcome()

	switch state {
	case fishing.StateCaught:
		s.feed.push(fmt.Sprintf("Caught %s!", species.Name), NoticeCaught)

		level := s.player.Stats().MasteryLevel
		for _, c := range s.tracker.RegisterCatch(s.player, species.ID) {
			s.feed.push(fmt.Sprintf("Contract complete: %s", c.Title), NoticeQuest)
		}
		if lvl := s.player.Stats().MasteryLevel; lvl > level {
			s.feed.push(fmt.Sprintf("Mastery level %d reached", lvl), NoticeLevel)
		}

		s.world.RemoveFish(fish)
		s.world.ScheduleRespawn(species)
	case fishing.StateEscaped:
		s.feed.push(fmt.Sprintf("The %s escaped.", species.Name), NoticeEscaped)
	case fishing.StateSnapped:
		s.feed.push("The line snapped!", NoticeSnapped)
	}

	s.journal.Record(species.ID, outcome)
	slog.Info("encounter resolved", "fish", fish.ID(), "species", species.ID, "outcome", outcome)

	if s.listener != nil {
		s.listener(CatchEvent{
			Player:    s.player.Name(),
			SpeciesID: species.ID,
			Rarity:    species.Rarity,
			Outcome:   outcome,
			Hour:      s.world.Hour(),
		})
	}

	s.encounter = nil
	s.hooked = nil
}

// HUD returns the active encounter snapshot; ok is false when none.
func (s *Session) HUD() (fishing.HudInfo, bool) {
	if s.encounter == nil {
		return fishing.HudInfo{}, false
	}
	return s.encounter.HudInfo(), true
}

// Active reports whether an encounter is in progress.
func (s *Session) Active() bool { return s.encounter != nil }

// Cooldown returns the seconds left before the next cast.
func (s *Session) Cooldown() float64 { return s.cooldown }

// Feed returns live notices, newest first.
func (s *Session) Feed() []Notice { return s.feed.list() }

// Player returns the player.
func (s *Session) Player() *model.Player { return s.player }

// World returns the world.
func (s *Session) World() *world.World { return s.world }

// Journal returns the catch journal.
func (s *Session) Journal() *model.Journal { return s.journal }

// Tracker returns the contract tracker.
func (s *Session) Tracker() *quest.Tracker { return s.tracker }
