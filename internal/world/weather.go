package world

import (
	"log/slog"

	"github.com/udisondev/reelsim/internal/rng"
)

// WeatherState is the current sky condition.
type WeatherState string

// Weather states.
const (
	WeatherClear    WeatherState = "clear"
	WeatherOvercast WeatherState = "overcast"
	WeatherRain     WeatherState = "rain"
	WeatherStorm    WeatherState = "storm"
	WeatherFog      WeatherState = "fog"
)

var weatherStates = []WeatherState{WeatherClear, WeatherOvercast, WeatherRain, WeatherStorm, WeatherFog}

// FogStrength returns visibility loss for the state, 0 (clear) .. 0.5 (fog).
func (s WeatherState) FogStrength() float64 {
	switch s {
	case WeatherFog:
		return 0.5
	case WeatherStorm:
		return 0.35
	case WeatherRain:
		return 0.25
	case WeatherOvercast:
		return 0.15
	default:
		return 0.05
	}
}

// Precipitating reports whether it rains.
func (s WeatherState) Precipitating() bool {
	return s == WeatherRain || s == WeatherStorm
}

// Weather switches to a randomly chosen state every interval seconds.
type Weather struct {
	rnd      *rng.Random
	interval float64
	timer    float64
	current  WeatherState
	next     WeatherState
	fog      float64 // smoothed FogStrength
}

// NewWeather starts clear and draws the first upcoming state from rnd.
func NewWeather(interval float64, rnd *rng.Random) *Weather {
	w := &Weather{
		rnd:      rnd,
		interval: interval,
		current:  WeatherClear,
		fog:      WeatherClear.FogStrength(),
	}
	w.next = rng.Pick(rnd, weatherStates)
	return w
}

// Update advances the transition timer.
func (w *Weather) Update(dt float64) {
	w.timer += dt
	if w.timer > w.interval {
		w.timer = 0
		prev := w.current
		w.current = w.next
		w.next = rng.Pick(w.rnd, weatherStates)
		if prev != w.current {
			slog.Debug("weather changed", "from", prev, "to", w.current, "next", w.next)
		}
	}

	// Туман подтягивается к целевому значению плавно.
	k := min(1, dt*0.5)
	w.fog += (w.current.FogStrength() - w.fog) * k
}

// Current returns the active state.
func (w *Weather) Current() WeatherState { return w.current }

// Next returns the state the next transition switches to.
func (w *Weather) Next() WeatherState { return w.next }

// Fog returns the smoothed fog strength.
func (w *Weather) Fog() float64 { return w.fog }
