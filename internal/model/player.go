package model

import (
	"fmt"

	"github.com/udisondev/reelsim/internal/data"
)

// Player defaults.
const (
	MaxStamina         = 100
	staminaRegenPeriod = 2.0 // seconds per stamina point
	startingFunds      = 250
	experiencePerLevel = 100
	startingLureCount  = 3
)

// PlayerStats: прогресс капитана.
type PlayerStats struct {
	MasteryLevel int
	Experience   int
	Stamina      int
	Funds        int
	EquippedLure *data.Lure
}

// Player owns the boat, lure inventory and progression.
type Player struct {
	name  string
	boat  *Boat
	lures *Inventory[*data.Lure]
	stats PlayerStats

	staminaRegenTimer float64
}

// NewPlayer creates a fresh captain with the starter lures.
func NewPlayer(name string) *Player {
	p := &Player{
		name:  name,
		boat:  NewBoat(),
		lures: NewInventory[*data.Lure](),
		stats: PlayerStats{
			MasteryLevel: 1,
			Stamina:      MaxStamina,
			Funds:        startingFunds,
			EquippedLure: data.Lures[0],
		},
	}
	for _, l := range data.Lures[:startingLureCount] {
		p.lures.Add(l, 1)
	}
	return p
}

// RestorePlayer rebuilds a player from persisted state. The equipped lure
// must be present in the inventory.
func RestorePlayer(name string, stats PlayerStats, lures *Inventory[*data.Lure]) (*Player, error) {
	if stats.EquippedLure == nil {
		return nil, fmt.Errorf("restoring player %q: no equipped lure", name)
	}
	if !lures.Has(stats.EquippedLure.ID) {
		return nil, fmt.Errorf("restoring player %q: equipped lure %q not owned", name, stats.EquippedLure.ID)
	}
	return &Player{
		name:  name,
		boat:  NewBoat(),
		lures: lures,
		stats: stats,
	}, nil
}

// Name returns the captain name.
func (p *Player) Name() string { return p.name }

// Boat returns the player's boat.
func (p *Player) Boat() *Boat { return p.boat }

// Lures returns the lure inventory.
func (p *Player) Lures() *Inventory[*data.Lure] { return p.lures }

// Stats returns a copy of the stats.
func (p *Player) Stats() PlayerStats { return p.stats }

// EquippedLure returns the active lure.
func (p *Player) EquippedLure() *data.Lure { return p.stats.EquippedLure }

// Position returns the boat position.
func (p *Player) Position() Vec3 { return p.boat.Position() }

// Update steers the boat and regenerates stamina.
func (p *Player) Update(dt, forward, turn float64) {
	p.boat.Update(dt, forward, turn)

	p.staminaRegenTimer += dt
	if p.staminaRegenTimer > staminaRegenPeriod {
		p.stats.Stamina = min(MaxStamina, p.stats.Stamina+1)
		p.staminaRegenTimer = 0
	}
}

// AwardExperience adds experience and levels up once the threshold
// (level × 100) is reached. A level-up refills stamina.
// Returns true on level-up.
func (p *Player) AwardExperience(amount int) bool {
	p.stats.Experience += amount
	required := p.stats.MasteryLevel * experiencePerLevel
	if p.stats.Experience < required {
		return false
	}
	p.stats.Experience -= required
	p.stats.MasteryLevel++
	p.stats.Stamina = MaxStamina
	return true
}

// AddFunds credits funds.
func (p *Player) AddFunds(amount int) {
	p.stats.Funds += amount
}

// SpendFunds debits funds; false when the balance is too low.
func (p *Player) SpendFunds(amount int) bool {
	if p.stats.Funds < amount {
		return false
	}
	p.stats.Funds -= amount
	return true
}

// EquipLure switches to an owned lure; false when not owned.
func (p *Player) EquipLure(lureID string) bool {
	item, ok := p.lures.Get(lureID)
	if !ok {
		return false
	}
	p.stats.EquippedLure = item.Item
	return true
}
