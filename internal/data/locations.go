package data

// Location is an entry of the exploration log.
type Location struct {
	ID               string
	Name             string
	Biome            Habitat
	Description      string
	RecommendedLevel int
	UnlockedBy       string // empty when available from the start
	PointsOfInterest []string
}

// Locations is the exploration log in unlock order.
var Locations = []Location{
	{
		ID:               "aurora_river",
		Name:             "Aurora River",
		Biome:            HabitatRiver,
		Description:      "A crystalline river winding through snowy peaks, famous for aurora reflections on its surface.",
		RecommendedLevel: 1,
		PointsOfInterest: []string{"Glacial Bridge", "Echoing Falls", "Moonlit Shrine"},
	},
	{
		ID:               "coral_citadel",
		Name:             "Coral Citadel",
		Biome:            HabitatReef,
		Description:      "A sprawling coral reef shaped like an ancient fortress. Home to dazzling biodiversity and hidden caverns.",
		RecommendedLevel: 5,
		UnlockedBy:       "Complete Aurora River story arc",
		PointsOfInterest: []string{"Rainbow Bastion", "Whispering Grotto", "Pearl Throne"},
	},
	{
		ID:               "volcanic_forge",
		Name:             "Volcanic Forge",
		Biome:            HabitatVolcanic,
		Description:      "Molten vents heat the surrounding ocean, creating pillars of steam and obsidian arches.",
		RecommendedLevel: 10,
		UnlockedBy:       "Craft Voltaic Insulator Rod",
		PointsOfInterest: []string{"Obsidian Gate", "Lavafall Trench", "Smoldering Sanctum"},
	},
	{
		ID:               "astral_abyss",
		Name:             "Astral Abyss",
		Biome:            HabitatDeep,
		Description:      "An abyssal trench illuminated by drifting bioluminescent pillars. Gravity feels lighter down here.",
		RecommendedLevel: 15,
		UnlockedBy:       "Complete Volcanic Forge expedition",
		PointsOfInterest: []string{"Starfall Cavern", "Warden Monolith", "Echoing Dome"},
	},
	{
		ID:               "icebound_colossus",
		Name:             "Icebound Colossus",
		Biome:            HabitatIce,
		Description:      "A frozen leviathan the size of a mountain. Its hollowed ribs form frozen caverns teeming with life.",
		RecommendedLevel: 20,
		UnlockedBy:       "Forge Frostplate Armor",
		PointsOfInterest: []string{"Heart of Ice", "Aurora Chasm", "Frozen Observatory"},
	},
	{
		ID:               "sunken_empire",
		Name:             "Sunken Empire",
		Biome:            HabitatAncient,
		Description:      "Ruins of a lost civilization suspended in time. Strange mechanisms still hum with otherworldly power.",
		RecommendedLevel: 25,
		UnlockedBy:       "Awaken the Oracle Compass",
		PointsOfInterest: []string{"Chronicle Library", "Throne of Tides", "Astral Observatory"},
	},
}

// LocationsForLevel returns locations whose recommended level is at most level.
func LocationsForLevel(level int) []Location {
	var result []Location
	for _, l := range Locations {
		if l.RecommendedLevel <= level {
			result = append(result, l)
		}
	}
	return result
}
