package model

import "math"

// Boat handling constants.
const (
	boatAcceleration = 12.0 // units/s² at full throttle
	boatMinSpeed     = -8.0
	boatMaxSpeed     = 18.0
	boatTurnRate     = 1.2 // rad/s at full rudder
	boatDeckHeight   = 0.5
)

// Boat is the player's vessel.
type Boat struct {
	position Vec3
	heading  float64 // radians, 0 = +Z
	speed    float64
}

// NewBoat creates a boat at the world origin.
func NewBoat() *Boat {
	return &Boat{position: Vec3{Y: boatDeckHeight}}
}

// Update applies throttle (forward) and rudder (turn) inputs in [-1, 1].
func (b *Boat) Update(dt, forward, turn float64) {
	b.speed = Clamp(b.speed+forward*boatAcceleration*dt, boatMinSpeed, boatMaxSpeed)
	b.heading += turn * dt * boatTurnRate

	velocity := Vec3{X: math.Sin(b.heading), Z: math.Cos(b.heading)}.Scale(b.speed * dt)
	b.position = b.position.Add(velocity)
}

// Position returns the boat position.
func (b *Boat) Position() Vec3 { return b.position }

// Heading returns the heading in radians.
func (b *Boat) Heading() float64 { return b.heading }

// Speed returns the signed speed.
func (b *Boat) Speed() float64 { return b.speed }
