package world

import "github.com/udisondev/reelsim/internal/model"

// sonarSurfaceY is where pings are drawn: the water surface.
const sonarSurfaceY = 0.5

// Ping is a sonar echo marker on the surface above a fish.
type Ping struct {
	Position model.Vec3
	Age      float64
}

// Intensity fades from 0.7 to 0 over lifetime.
func (p Ping) Intensity(lifetime float64) float64 {
	return max(0, 0.7*(1-p.Age/lifetime))
}

// emitPing adds a ping above pos.
func (w *World) emitPing(pos model.Vec3) {
	w.pings = append(w.pings, Ping{Position: pos.WithY(sonarSurfaceY)})
}

// agePings advances ping ages and drops expired ones in place.
func (w *World) agePings(dt float64) {
	kept := w.pings[:0]
	for _, p := range w.pings {
		p.Age += dt
		if p.Age <= w.cfg.PingLifetime {
			kept = append(kept, p)
		}
	}
	clear(w.pings[len(kept):])
	w.pings = kept
}

// armSonar schedules the repeating ping of f and stores the handle on it.
func (w *World) armSonar(f *model.Fish) {
	interval := w.rnd.Range(w.cfg.PingIntervalMin, w.cfg.PingIntervalMax)
	id := w.sched.Schedule(func() { w.emitPing(f.Position()) }, interval, true)
	f.SetSonarTask(id)
}

// disarmSonar cancels the fish's ping task, if any.
func (w *World) disarmSonar(f *model.Fish) {
	if id := f.SonarTask(); id != 0 {
		w.sched.Cancel(id)
		f.SetSonarTask(0)
	}
}
