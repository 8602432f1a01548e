package world

import (
	"testing"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
	"github.com/udisondev/reelsim/internal/scheduler"
)

// BenchmarkWorld_Tick measures one 60 fps frame over the full starting
// population: steering, sonar tasks and ping aging.
func BenchmarkWorld_Tick(b *testing.B) {
	w := New(DefaultConfig(), rng.New(1), scheduler.New(), 8)
	w.Populate(data.FishSpecies)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		w.Tick(1.0 / 60)
	}
}

// BenchmarkWorld_RespawnCycle measures removing a fish and bringing it back.
func BenchmarkWorld_RespawnCycle(b *testing.B) {
	sched := scheduler.New()
	cfg := DefaultConfig()
	cfg.RespawnMin, cfg.RespawnMax = 0.01, 0.01
	w := New(cfg, rng.New(1), sched, 8)
	trout := data.GetSpecies("azure_trout")
	f := w.Spawn(trout, model.Vec3{Y: -20})

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		w.RemoveFish(f)
		w.ScheduleRespawn(trout)
		w.Tick(0.02)
		f = w.Fishes()[len(w.Fishes())-1]
	}
}
