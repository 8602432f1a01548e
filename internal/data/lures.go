package data

import "slices"

// LureTier is the shop tier of a lure.
type LureTier string

// Lure tiers.
const (
	LureStarter  LureTier = "starter"
	LureAdvanced LureTier = "advanced"
	LureExotic   LureTier = "exotic"
)

// LureAction is the water column a lure works in.
type LureAction string

// Lure actions.
const (
	ActionTopwater LureAction = "topwater"
	ActionMidwater LureAction = "midwater"
	ActionDeep     LureAction = "deep"
	ActionDrift    LureAction = "drift"
)

// Lure is an equippable bait.
type Lure struct {
	ID            string
	Name          string
	Description   string
	IdealHabitats []Habitat
	Tier          LureTier
	Action        LureAction
}

// ItemID implements model.Identified.
func (l *Lure) ItemID() string { return l.ID }

// Suits reports whether any of the lure's ideal habitats is in habitats.
func (l *Lure) Suits(habitats []Habitat) bool {
	for _, h := range l.IdealHabitats {
		if slices.Contains(habitats, h) {
			return true
		}
	}
	return false
}

// Lures is the lure catalogue in menu order. Number keys 1..8 map onto it.
var Lures = []*Lure{
	{
		ID:            "river_shad",
		Name:          "River Shad Spoon",
		Description:   "Reliable metal spoon that flutters enticingly in freshwater currents.",
		IdealHabitats: []Habitat{HabitatRiver},
		Tier:          LureStarter,
		Action:        ActionMidwater,
	},
	{
		ID:            "coral_shrimp",
		Name:          "Coral Shrimp Rig",
		Description:   "Soft plastic shrimp with articulated legs designed for reef predators.",
		IdealHabitats: []Habitat{HabitatReef},
		Tier:          LureStarter,
		Action:        ActionDrift,
	},
	{
		ID:            "storm_minnow",
		Name:          "Storm Minnow Plug",
		Description:   "Weighted plug with internal rattles that call to pelagic hunters during storms.",
		IdealHabitats: []Habitat{HabitatOpenOcean, HabitatVolcanic},
		Tier:          LureAdvanced,
		Action:        ActionMidwater,
	},
	{
		ID:            "frostworm",
		Name:          "Frostworm Jig",
		Description:   "A bioluminescent jig that maintains flexibility in sub-zero waters.",
		IdealHabitats: []Habitat{HabitatIce},
		Tier:          LureAdvanced,
		Action:        ActionDeep,
	},
	{
		ID:            "timeworn_lure",
		Name:          "Timeworn Relic Lure",
		Description:   "A mysterious relic etched with runes, pulsating with eldritch light.",
		IdealHabitats: []Habitat{HabitatAncient, HabitatDeep},
		Tier:          LureExotic,
		Action:        ActionDeep,
	},
	{
		ID:            "kelp_dancer",
		Name:          "Kelp Dancer Spinner",
		Description:   "Spinnerbait with fronds mimicking swaying kelp, irresistible to seadragons.",
		IdealHabitats: []Habitat{HabitatReef},
		Tier:          LureAdvanced,
		Action:        ActionTopwater,
	},
	{
		ID:            "cyclone_spinner",
		Name:          "Cyclone Spinner",
		Description:   "High-velocity spinner tuned for tuna speeds, leaves a shimmering vortex trail.",
		IdealHabitats: []Habitat{HabitatOpenOcean},
		Tier:          LureAdvanced,
		Action:        ActionMidwater,
	},
	{
		ID:            "void_moth",
		Name:          "Void Moth Glider",
		Description:   "Glides gracefully, leaving a dark luminescent wake that entices abyssal predators.",
		IdealHabitats: []Habitat{HabitatDeep},
		Tier:          LureExotic,
		Action:        ActionDeep,
	},
}

// GetLure returns the lure by ID, or nil if not found.
func GetLure(id string) *Lure {
	for _, l := range Lures {
		if l.ID == id {
			return l
		}
	}
	return nil
}
