package model

import (
	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/scheduler"
)

// Steering moves a free-swimming fish. Implemented by ai.Wander.
type Steering interface {
	Steer(dt float64, pos, forward Vec3) (Vec3, Vec3)
}

// Fish: рыба в мире. Species фиксирован при создании.
// Пока hooked=true обычное блуждание отключено: позицией управляет encounter.
type Fish struct {
	id       uint32
	species  *data.Species
	position Vec3
	forward  Vec3
	steering Steering
	hooked   bool

	// sonarTask: повторяющийся sonar ping этой рыбы (0 = нет задачи).
	sonarTask scheduler.TaskID
}

// NewFish creates a fish at pos. steering may be nil for a fish that holds
// its position.
func NewFish(id uint32, species *data.Species, pos Vec3, steering Steering) *Fish {
	return &Fish{
		id:       id,
		species:  species,
		position: pos,
		forward:  Vec3{X: 1},
		steering: steering,
	}
}

// ID returns the world-unique fish ID.
func (f *Fish) ID() uint32 { return f.id }

// Species returns the fish species.
func (f *Fish) Species() *data.Species { return f.species }

// Position returns the current position.
func (f *Fish) Position() Vec3 { return f.position }

// SetPosition moves the fish.
func (f *Fish) SetPosition(p Vec3) { f.position = p }

// Forward returns the current heading (unit vector).
func (f *Fish) Forward() Vec3 { return f.forward }

// IsHooked reports whether the fish is on a line.
func (f *Fish) IsHooked() bool { return f.hooked }

// SetHooked toggles the hooked flag.
func (f *Fish) SetHooked(v bool) { f.hooked = v }

// SonarTask returns the fish's sonar ping task handle, 0 if none.
func (f *Fish) SonarTask() scheduler.TaskID { return f.sonarTask }

// SetSonarTask stores the sonar ping task handle.
func (f *Fish) SetSonarTask(id scheduler.TaskID) { f.sonarTask = id }

// Update advances free movement. Hooked fish don't wander.
func (f *Fish) Update(dt float64) {
	if f.hooked || f.steering == nil {
		return
	}
	f.position, f.forward = f.steering.Steer(dt, f.position, f.forward)
}
