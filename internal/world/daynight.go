package world

import "math"

// DayNight is the in-game clock. One full day lasts length seconds of
// simulated time.
type DayNight struct {
	length  float64
	elapsed float64
}

// NewDayNight starts the clock at startHour (0..24).
func NewDayNight(length, startHour float64) *DayNight {
	if length <= 0 {
		length = 600
	}
	d := &DayNight{length: length}
	d.elapsed = math.Mod(startHour/24*length, length)
	if d.elapsed < 0 {
		d.elapsed += length
	}
	return d
}

// Update advances the clock by dt seconds.
func (d *DayNight) Update(dt float64) {
	d.elapsed = math.Mod(d.elapsed+dt, d.length)
}

// Hour returns the world hour in [0, 24).
func (d *DayNight) Hour() float64 {
	return d.elapsed / d.length * 24
}

// Daylight returns sun strength in [0, 1]: 0 at night, 1 at noon.
func (d *DayNight) Daylight() float64 {
	// Полдень = 12ч, полночь = 0ч.
	angle := (d.Hour() - 6) / 24 * 2 * math.Pi
	return math.Max(0, math.Sin(angle))
}
