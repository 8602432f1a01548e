package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/game/fishing"
	"github.com/udisondev/reelsim/internal/game/quest"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/rng"
	"github.com/udisondev/reelsim/internal/scheduler"
	"github.com/udisondev/reelsim/internal/world"
)

type fixture struct {
	s      *Session
	w      *world.World
	sched  *scheduler.Scheduler
	player *model.Player
	events []CatchEvent
}

// newFixture builds an empty world at 08:00 with the player at the origin.
func newFixture(t *testing.T, cfg Config, seed uint32) *fixture {
	t.Helper()

	f := &fixture{sched: scheduler.New()}
	rnd := rng.New(seed)
	f.w = world.New(world.DefaultConfig(), rnd, f.sched, 8)
	f.player = model.NewPlayer("tester")
	f.s = New(cfg, f.w, f.player, quest.NewTracker(data.Quests), rnd, func(ev CatchEvent) {
		f.events = append(f.events, ev)
	})
	return f
}

// hook casts at fish until it bites, waiting out the cooldown between
// casts. The fish is put back where it started after each wait so it can't
// wander out of range.
func (f *fixture) hook(t *testing.T, fish *model.Fish) {
	t.Helper()
	home := fish.Position()
	for range 200 {
		switch out := f.s.Cast(); out {
		case CastHooked:
			return
		case CastSlack:
			f.s.Update(f.s.Cooldown()+0.01, Input{})
			fish.SetPosition(home)
		default:
			t.Fatalf("unexpected cast outcome %q", out)
		}
	}
	t.Fatal("fish never bit")
}

// play runs the active encounter to its end.
func (f *fixture) play(t *testing.T, reeling bool) {
	t.Helper()
	for range 100000 {
		if !f.s.Active() {
			return
		}
		f.s.Update(1.0/60, Input{Reeling: reeling})
	}
	t.Fatal("encounter never ended")
}

func easyConfig() Config {
	cfg := DefaultConfig()
	cfg.Encounter.InitialJerkMin, cfg.Encounter.InitialJerkMax = 1e9, 1e9
	cfg.Encounter.SnapTension = 1e9
	return cfg
}

func feedHas(s *Session, kind NoticeKind) bool {
	for _, n := range s.Feed() {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

func TestSession_NoEcho(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 1)
	f.w.Spawn(data.GetSpecies("azure_trout"), model.Vec3{X: 300, Y: -5})

	assert.Equal(t, CastNoEcho, f.s.Cast())
	assert.False(t, f.s.Active())
	_, ok := f.s.HUD()
	assert.False(t, ok)

	feed := f.s.Feed()
	require.Len(t, feed, 1)
	assert.Equal(t, "No sonar echo nearby.", feed[0].Message)
	assert.Equal(t, NoticeNoEcho, feed[0].Kind)
}

func TestSession_Cooldown(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 1)

	assert.Equal(t, CastNoEcho, f.s.Cast())
	assert.Equal(t, CastCooldown, f.s.Cast())

	f.s.Update(1.0, Input{})
	assert.Equal(t, CastCooldown, f.s.Cast())

	f.s.Update(0.6, Input{})
	assert.Equal(t, CastNoEcho, f.s.Cast())
}

func TestSession_BusyWhileReeling(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 2)
	fish := f.w.Spawn(data.GetSpecies("azure_trout"), model.Vec3{X: 10, Y: -5})
	other := f.w.Spawn(data.GetSpecies("sylvan_koi"), model.Vec3{X: -80, Y: -5})

	f.hook(t, fish)
	require.True(t, fish.IsHooked(), "nearest fish is hooked")
	assert.False(t, other.IsHooked())

	f.s.Update(1.6, Input{Reeling: true}) // cooldown gone, no jerk yet
	require.True(t, f.s.Active())
	before, ok := f.s.HUD()
	require.True(t, ok)

	assert.Equal(t, CastBusy, f.s.Cast())
	after, _ := f.s.HUD()
	assert.Equal(t, before, after, "busy cast must not touch the encounter")
	assert.Zero(t, f.s.Cooldown(), "busy cast must not restart the cooldown")
	assert.False(t, other.IsHooked())
}

func TestSession_Slack(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 3)
	// Worst odds: mythic, wrong lure, outside its hours (00-23, now 23:30).
	f.w = world.New(world.DefaultConfig(), rng.New(3), f.sched, 23.5)
	f.s = New(DefaultConfig(), f.w, f.player, quest.NewTracker(data.Quests), rng.New(3), nil)
	fish := f.w.Spawn(data.GetSpecies("ancient_coelacanth"), model.Vec3{X: 5, Y: -5})

	require.InDelta(t, 0.05, fishing.CatchChance(data.GetSpecies("ancient_coelacanth"), f.player.EquippedLure(), f.w.Hour(), DefaultConfig().Catch), 1e-9)

	slack := false
	for range 100 {
		out := f.s.Cast()
		if out == CastSlack {
			slack = true
			assert.False(t, f.s.Active(), "slack starts no encounter")
			assert.True(t, feedHas(f.s, NoticeSlack))
			break
		}
		require.Equal(t, CastHooked, out)
		f.play(t, false)
		f.s.Update(f.s.Cooldown()+0.01, Input{})
		fish.SetPosition(model.Vec3{X: 5, Y: -5})
	}
	assert.True(t, slack)
}

func TestSession_CaughtFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, easyConfig(), 4)
	species := data.GetSpecies("azure_trout")
	fish := f.w.Spawn(species, model.Vec3{X: 20, Y: -5})
	task := fish.SonarTask()

	f.hook(t, fish)
	hud, ok := f.s.HUD()
	require.True(t, ok)
	assert.Equal(t, species.Name, hud.FishName)
	assert.Equal(t, fishing.StateReeling, hud.State)

	f.play(t, true)

	require.Len(t, f.events, 1)
	ev := f.events[0]
	assert.Equal(t, model.OutcomeCaught, ev.Outcome)
	assert.Equal(t, "azure_trout", ev.SpeciesID)
	assert.Equal(t, data.RarityCommon, ev.Rarity)
	assert.Equal(t, "tester", ev.Player)

	assert.False(t, f.s.Active())
	_, ok = f.s.HUD()
	assert.False(t, ok)
	assert.False(t, fish.IsHooked())
	assert.Empty(t, f.w.Fishes(), "caught fish leaves the world")
	assert.False(t, f.sched.Pending(task), "its sonar ping is cancelled")

	assert.Equal(t, 1, f.s.Journal().Caught("azure_trout"))
	left, _ := f.s.Tracker().Remaining("aurora_initiation", 0)
	assert.Equal(t, 2, left)
	assert.Equal(t, 250+120, f.player.Stats().Funds)
	assert.Equal(t, 80, f.player.Stats().Experience)
	assert.True(t, feedHas(f.s, NoticeCaught))

	// Respawn within 45 s.
	for range 46 {
		f.s.Update(1, Input{})
	}
	require.Len(t, f.w.Fishes(), 1)
	assert.Equal(t, species, f.w.Fishes()[0].Species())
	assert.NotEqual(t, fish.ID(), f.w.Fishes()[0].ID())
}

func TestSession_QuestAndLevelNotices(t *testing.T) {
	t.Parallel()

	f := newFixture(t, easyConfig(), 5)
	eel := f.w.Spawn(data.GetSpecies("voltaic_eel"), model.Vec3{X: 5, Y: -5})

	f.hook(t, eel)
	f.play(t, true)

	require.Len(t, f.events, 1)
	assert.Equal(t, model.OutcomeCaught, f.events[0].Outcome)
	assert.True(t, f.s.Tracker().IsCompleted("voltaic_arcanum"))
	assert.True(t, feedHas(f.s, NoticeQuest))
	assert.True(t, feedHas(f.s, NoticeLevel), "600 xp levels a fresh captain")
	assert.Equal(t, 2, f.player.Stats().MasteryLevel)
}

func TestSession_EscapedFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 6)
	fish := f.w.Spawn(data.GetSpecies("azure_trout"), model.Vec3{X: 15, Y: -5})

	f.hook(t, fish)
	f.play(t, false)

	require.Len(t, f.events, 1)
	assert.Equal(t, model.OutcomeEscaped, f.events[0].Outcome)
	assert.False(t, fish.IsHooked())
	require.Len(t, f.w.Fishes(), 1, "escaped fish stays in the world")
	assert.True(t, f.sched.Pending(fish.SonarTask()))
	assert.Zero(t, f.s.Journal().Caught("azure_trout"))
	assert.True(t, feedHas(f.s, NoticeEscaped))
	assert.Equal(t, 250, f.player.Stats().Funds)
}

func TestSession_FeedExpires(t *testing.T) {
	t.Parallel()

	f := newFixture(t, DefaultConfig(), 7)
	f.s.Cast()
	f.s.Update(2, Input{})
	f.s.Cast()

	feed := f.s.Feed()
	require.Len(t, feed, 2)
	assert.Zero(t, feed[0].Age, "newest first")
	assert.InDelta(t, 2.0, feed[1].Age, 1e-9)

	f.s.Update(2.5, Input{})
	feed = f.s.Feed()
	require.Len(t, feed, 1)
	assert.InDelta(t, 2.5, feed[0].Age, 1e-9)

	f.s.Update(2, Input{})
	assert.Empty(t, f.s.Feed())
}
