// Package world owns the fish population and the ambient simulation around
// it: sonar pings, respawns, the day/night clock and weather. Everything is
// advanced by Tick; nothing here runs on its own.
package world

import (
	"log/slog"
	"slices"

	"github.com/udisondev/reelsim/internal/ai"
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
	"github.com/udisondev/reelsim/internal/scheduler"
)

// Config holds world layout and ambient timers.
type Config struct {
	HalfExtent      float64 `yaml:"half_extent"`       // fish spawn in x,z ∈ [-HalfExtent, HalfExtent]
	SpawnDepthMin   float64 `yaml:"spawn_depth_min"`   // initial population
	SpawnDepthMax   float64 `yaml:"spawn_depth_max"`
	RespawnDepthMin float64 `yaml:"respawn_depth_min"` // respawns may go deeper
	RespawnDepthMax float64 `yaml:"respawn_depth_max"`
	PingIntervalMin float64 `yaml:"ping_interval_min"`
	PingIntervalMax float64 `yaml:"ping_interval_max"`
	PingLifetime    float64 `yaml:"ping_lifetime"`
	RespawnMin      float64 `yaml:"respawn_min"`
	RespawnMax      float64 `yaml:"respawn_max"`
	DayLength       float64 `yaml:"day_length"`
	WeatherInterval float64 `yaml:"weather_interval"`
}

// DefaultConfig returns the shipped world layout.
func DefaultConfig() Config {
	return Config{
		HalfExtent:      400,
		SpawnDepthMin:   -80,
		SpawnDepthMax:   -10,
		RespawnDepthMin: -120,
		RespawnDepthMax: -10,
		PingIntervalMin: 4,
		PingIntervalMax: 12,
		PingLifetime:    4,
		RespawnMin:      20,
		RespawnMax:      45,
		DayLength:       600,
		WeatherInterval: 180,
	}
}

// World is the simulated sea. Not safe for concurrent use: Tick and every
// mutation must happen on the host loop.
type World struct {
	cfg   Config
	rnd   *rng.Random
	sched *scheduler.Scheduler
	ids   *idGenerator

	clock   *DayNight
	weather *Weather

	fishes []*model.Fish
	pings  []Ping
}

// New creates an empty world. rnd drives spawn positions, wandering, ping
// intervals and weather; sched runs pings and respawns.
func New(cfg Config, rnd *rng.Random, sched *scheduler.Scheduler, startHour float64) *World {
	return &World{
		cfg:     cfg,
		rnd:     rnd,
		sched:   sched,
		ids:     newIDGenerator(),
		clock:   NewDayNight(cfg.DayLength, startHour),
		weather: NewWeather(cfg.WeatherInterval, rnd),
	}
}

// Populate spawns the starting schools: population(rarity) fish per species.
func (w *World) Populate(species []*data.Species) {
	for _, s := range species {
		n := s.Params().Population
		for range n {
			w.Spawn(s, w.randomPosition(w.cfg.SpawnDepthMin, w.cfg.SpawnDepthMax))
		}
	}
	slog.Info("world populated", "species", len(species), "fish", len(w.fishes))
}

// Tick advances the world by dt seconds. Scheduled tasks run last so pings
// use this frame's fish positions.
func (w *World) Tick(dt float64) {
	w.clock.Update(dt)
	w.weather.Update(dt)
	for _, f := range w.fishes {
		f.Update(dt)
	}
	w.agePings(dt)
	w.sched.Update(dt)
}

// RemoveFish takes f out of the world and cancels its sonar task.
// Reports whether f was present.
func (w *World) RemoveFish(f *model.Fish) bool {
	idx := slices.Index(w.fishes, f)
	if idx < 0 {
		return false
	}
	w.disarmSonar(f)
	w.fishes = slices.Delete(w.fishes, idx, idx+1)

	slog.Debug("fish removed", "fish", f.ID(), "species", f.Species().ID)
	return true
}

// ScheduleRespawn adds a new fish of species after a random delay.
func (w *World) ScheduleRespawn(species *data.Species) scheduler.TaskID {
	delay := w.rnd.Range(w.cfg.RespawnMin, w.cfg.RespawnMax)
	return w.sched.Schedule(func() {
		f := w.Spawn(species, w.randomPosition(w.cfg.RespawnDepthMin, w.cfg.RespawnDepthMax))
		slog.Debug("fish respawned", "fish", f.ID(), "species", species.ID)
	}, delay, false)
}

// Fishes returns the live population. The slice is owned by the world and
// must not be modified.
func (w *World) Fishes() []*model.Fish { return w.fishes }

// Pings returns the active sonar pings. Read-only.
func (w *World) Pings() []Ping { return w.pings }

// Hour returns the world hour in [0, 24).
func (w *World) Hour() float64 { return w.clock.Hour() }

// Clock returns the day/night clock.
func (w *World) Clock() *DayNight { return w.clock }

// Weather returns the weather system.
func (w *World) Weather() *Weather { return w.weather }

// Config returns the world configuration.
func (w *World) Config() Config { return w.cfg }

// Spawn places a new wandering fish at pos, emits its first sonar ping and
// arms its repeating one.
func (w *World) Spawn(species *data.Species, pos model.Vec3) *model.Fish {
	steer := ai.NewWander(species.PrimaryHabitat(), pos, w.rnd)
	f := model.NewFish(w.ids.Next(), species, pos, steer)
	w.fishes = append(w.fishes, f)
	w.emitPing(pos)
	w.armSonar(f)
	return f
}

func (w *World) randomPosition(depthMin, depthMax float64) model.Vec3 {
	return model.Vec3{
		X: w.rnd.Range(-w.cfg.HalfExtent, w.cfg.HalfExtent),
		Y: w.rnd.Range(depthMin, depthMax),
		Z: w.rnd.Range(-w.cfg.HalfExtent, w.cfg.HalfExtent),
	}
}
