// Package ai implements free-swimming fish behavior.
//
// Each fish circles a home point: it picks a random target inside the
// habitat's wander radius and depth band, turns toward it at the habitat's
// turn rate, and re-targets on arrival. Hooked fish are not steered.
package ai

import (
	"log/slog"
	"math"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
)

// arriveDistance is how close a fish gets before picking a new target.
const arriveDistance = 5.0

// BehaviorParams describes how a habitat's fish move.
type BehaviorParams struct {
	SwimSpeed    float64
	TurnRate     float64
	WanderRadius float64
	DepthRange   [2]float64 // [min, max] Y offset from home
	Schooling    bool
}

var habitatBehavior = map[data.Habitat]BehaviorParams{
	data.HabitatReef:      {SwimSpeed: 6, TurnRate: 0.9, WanderRadius: 50, DepthRange: [2]float64{-12, -3}, Schooling: true},
	data.HabitatOpenOcean: {SwimSpeed: 12, TurnRate: 0.4, WanderRadius: 300, DepthRange: [2]float64{-80, -5}},
	data.HabitatDeep:      {SwimSpeed: 5, TurnRate: 0.3, WanderRadius: 120, DepthRange: [2]float64{-300, -60}},
	data.HabitatRiver:     {SwimSpeed: 4, TurnRate: 1.2, WanderRadius: 40, DepthRange: [2]float64{-8, -1}, Schooling: true},
	data.HabitatIce:       {SwimSpeed: 3, TurnRate: 0.8, WanderRadius: 35, DepthRange: [2]float64{-16, -4}},
	data.HabitatVolcanic:  {SwimSpeed: 8, TurnRate: 0.7, WanderRadius: 180, DepthRange: [2]float64{-140, -40}},
	data.HabitatAncient:   {SwimSpeed: 7, TurnRate: 0.5, WanderRadius: 200, DepthRange: [2]float64{-220, -30}},
}

// BehaviorFor returns the movement parameters of a habitat. Unknown
// habitats move like open-ocean fish.
func BehaviorFor(h data.Habitat) BehaviorParams {
	if p, ok := habitatBehavior[h]; ok {
		return p
	}
	return habitatBehavior[data.HabitatOpenOcean]
}

// Wander is the default fish steering. Implements model.Steering.
type Wander struct {
	params  BehaviorParams
	home    model.Vec3
	target  model.Vec3
	rnd     *rng.Random
	elapsed float64
}

// NewWander creates a steering around home. rnd is owned by the caller and
// may be shared between fish.
func NewWander(habitat data.Habitat, home model.Vec3, rnd *rng.Random) *Wander {
	w := &Wander{
		params: BehaviorFor(habitat),
		home:   home,
		rnd:    rnd,
	}
	w.target = w.pickTarget()
	return w
}

// Target returns the current wander target.
func (w *Wander) Target() model.Vec3 { return w.target }

// Steer turns forward toward the target and advances pos.
func (w *Wander) Steer(dt float64, pos, forward model.Vec3) (model.Vec3, model.Vec3) {
	w.elapsed += dt

	toTarget := w.target.Sub(pos)
	if toTarget.Len() < arriveDistance {
		w.target = w.pickTarget()
		toTarget = w.target.Sub(pos)
		if IsDebugEnabled() {
			slog.Debug("fish retargeted", "pos", pos, "target", w.target)
		}
	}
	toTarget = toTarget.Normalize()

	forward = forward.Lerp(toTarget, model.Clamp(w.params.TurnRate*dt, 0, 1)).Normalize()

	speed := w.params.SwimSpeed * (0.6 + math.Sin(w.elapsed)*0.4)
	return pos.Add(forward.Scale(speed * dt)), forward
}

func (w *Wander) pickTarget() model.Vec3 {
	angle := w.rnd.Next() * math.Pi * 2
	radius := w.rnd.Range(0, w.params.WanderRadius)
	y := w.rnd.Range(w.params.DepthRange[0], w.params.DepthRange[1])
	return w.home.Add(model.Vec3{
		X: math.Cos(angle) * radius,
		Y: y,
		Z: math.Sin(angle) * radius,
	})
}
