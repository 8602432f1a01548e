package data

// Habitat is a water type a species lives in and a lure is tuned for.
type Habitat string

// Habitats.
const (
	HabitatReef      Habitat = "reef"
	HabitatOpenOcean Habitat = "open_ocean"
	HabitatDeep      Habitat = "deep"
	HabitatRiver     Habitat = "river"
	HabitatIce       Habitat = "ice"
	HabitatVolcanic  Habitat = "volcanic"
	HabitatAncient   Habitat = "ancient"
)

// Species describes a catchable fish kind.
type Species struct {
	ID              string
	Name            string
	Rarity          Rarity
	AverageWeightKg float64
	MaxWeightKg     float64
	Habitats        []Habitat // first entry drives wandering behavior
	Description     string
	ActiveHours     [2]float64 // [start, end]; end < start wraps past midnight
	FavoriteBaits   []string
}

// Params returns the rarity-derived parameters for the species.
func (s *Species) Params() RarityParams {
	return RarityParamsFor(s.Rarity)
}

// PrimaryHabitat returns the habitat used for movement.
func (s *Species) PrimaryHabitat() Habitat {
	if len(s.Habitats) == 0 {
		return HabitatOpenOcean
	}
	return s.Habitats[0]
}

// FishSpecies is the full species table in spawn order.
var FishSpecies = []*Species{
	{
		ID:              "azure_trout",
		Name:            "Azure Trout",
		Rarity:          RarityCommon,
		AverageWeightKg: 1.4,
		MaxWeightKg:     4.2,
		Habitats:        []Habitat{HabitatRiver},
		Description:     "A vibrant freshwater fish that thrives in cool, fast-moving rivers. Its shimmering scales sparkle under the dawn sun.",
		ActiveHours:     [2]float64{5, 11},
		FavoriteBaits:   []string{"river shad", "glass mayfly", "amber grub"},
	},
	{
		ID:              "sunrise_snapper",
		Name:            "Sunrise Snapper",
		Rarity:          RarityUncommon,
		AverageWeightKg: 3.8,
		MaxWeightKg:     9.2,
		Habitats:        []Habitat{HabitatReef, HabitatOpenOcean},
		Description:     "A reef-dwelling predator known for its brilliant red fins. Strikes aggressively during sunrise transitions.",
		ActiveHours:     [2]float64{6, 12},
		FavoriteBaits:   []string{"coral shrimp", "ember sardine"},
	},
	{
		ID:              "titan_ray",
		Name:            "Titan Ray",
		Rarity:          RarityEpic,
		AverageWeightKg: 180,
		MaxWeightKg:     450,
		Habitats:        []Habitat{HabitatDeep, HabitatOpenOcean},
		Description:     "Gentle giants that glide in the midnight zone. Rumored to guide lost sailors by illuminating bioluminescent trails.",
		ActiveHours:     [2]float64{0, 5},
		FavoriteBaits:   []string{"luminous squid", "midnight jelly"},
	},
	{
		ID:              "glacier_salmon",
		Name:            "Glacier Salmon",
		Rarity:          RarityRare,
		AverageWeightKg: 6.4,
		MaxWeightKg:     18,
		Habitats:        []Habitat{HabitatIce, HabitatRiver},
		Description:     "Swims beneath frozen lakes, leaving a faint aurora trail. Requires patience and insulated gear to catch.",
		ActiveHours:     [2]float64{10, 17},
		FavoriteBaits:   []string{"frostworm", "crystal roe"},
	},
	{
		ID:              "voltaic_eel",
		Name:            "Voltaic Eel",
		Rarity:          RarityLegendary,
		AverageWeightKg: 22,
		MaxWeightKg:     75,
		Habitats:        []Habitat{HabitatVolcanic, HabitatDeep},
		Description:     "Crackling arcs of electricity surround this eel. Native to volcanic trenches and rumored to feed on magma crystals.",
		ActiveHours:     [2]float64{19, 2},
		FavoriteBaits:   []string{"storm minnow", "charged leech"},
	},
	{
		ID:              "ancient_coelacanth",
		Name:            "Ancient Coelacanth",
		Rarity:          RarityMythic,
		AverageWeightKg: 85,
		MaxWeightKg:     210,
		Habitats:        []Habitat{HabitatAncient, HabitatDeep},
		Description:     "A living fossil that dwells in submerged ruins. The rarest catch, steeped in maritime legend.",
		ActiveHours:     [2]float64{0, 23},
		FavoriteBaits:   []string{"timeworn lure", "abyssal nautilus"},
	},
	{
		ID:              "sylvan_koi",
		Name:            "Sylvan Koi",
		Rarity:          RarityCommon,
		AverageWeightKg: 1.1,
		MaxWeightKg:     3.4,
		Habitats:        []Habitat{HabitatRiver},
		Description:     "Mystic koi often found near forest shrines. Their scales glow softly when lunar light hits the water.",
		ActiveHours:     [2]float64{18, 5},
		FavoriteBaits:   []string{"moon lotus", "forest cricket"},
	},
	{
		ID:              "amberjaw_barracuda",
		Name:            "Amberjaw Barracuda",
		Rarity:          RarityRare,
		AverageWeightKg: 12.2,
		MaxWeightKg:     32,
		Habitats:        []Habitat{HabitatOpenOcean},
		Description:     "Fast and relentless. Known for its amber-colored teeth that can shear steel leaders.",
		ActiveHours:     [2]float64{9, 16},
		FavoriteBaits:   []string{"chrome mullet", "sapphire anchovy"},
	},
	{
		ID:              "reef_seadragon",
		Name:            "Reef Seadragon",
		Rarity:          RarityEpic,
		AverageWeightKg: 4.9,
		MaxWeightKg:     14,
		Habitats:        []Habitat{HabitatReef},
		Description:     "Drifts among coral towers, mimicking seaweed movements. Masters of camouflage and patience.",
		ActiveHours:     [2]float64{7, 19},
		FavoriteBaits:   []string{"kelp dancer", "opal mysid"},
	},
	{
		ID:              "crystal_barramundi",
		Name:            "Crystal Barramundi",
		Rarity:          RarityUncommon,
		AverageWeightKg: 8.3,
		MaxWeightKg:     22,
		Habitats:        []Habitat{HabitatRiver, HabitatAncient},
		Description:     "Prefers submerged temples where water refracts like stained glass. Prized by collectors.",
		ActiveHours:     [2]float64{12, 20},
		FavoriteBaits:   []string{"jade grub", "luminous crayfish"},
	},
	{
		ID:              "skywhale_fry",
		Name:            "Skywhale Fry",
		Rarity:          RarityLegendary,
		AverageWeightKg: 320,
		MaxWeightKg:     900,
		Habitats:        []Habitat{HabitatOpenOcean, HabitatAncient},
		Description:     "Juvenile form of mythical skywhales. Sightings occur during intense storms when sea and sky collide.",
		ActiveHours:     [2]float64{21, 4},
		FavoriteBaits:   []string{"storm minnow", "astral krill"},
	},
	{
		ID:              "emberfin_tetra",
		Name:            "Emberfin Tetra",
		Rarity:          RarityCommon,
		AverageWeightKg: 0.4,
		MaxWeightKg:     1.2,
		Habitats:        []Habitat{HabitatReef, HabitatRiver},
		Description:     "Schools of emberfin illuminate shallow lagoons. Ideal for novice anglers honing reflexes.",
		ActiveHours:     [2]float64{4, 21},
		FavoriteBaits:   []string{"river shad", "kelp dancer"},
	},
	{
		ID:              "stormscale_tuna",
		Name:            "Stormscale Tuna",
		Rarity:          RarityRare,
		AverageWeightKg: 90,
		MaxWeightKg:     260,
		Habitats:        []Habitat{HabitatOpenOcean},
		Description:     "Its scales resonate with thunder. Known to breach spectacularly when hooked in heavy rain.",
		ActiveHours:     [2]float64{14, 22},
		FavoriteBaits:   []string{"cyclone spinner", "storm minnow"},
	},
	{
		ID:              "abyssal_lanternfish",
		Name:            "Abyssal Lanternfish",
		Rarity:          RarityUncommon,
		AverageWeightKg: 1.9,
		MaxWeightKg:     5.4,
		Habitats:        []Habitat{HabitatDeep},
		Description:     "Glowing lures dangle from their heads, attracting prey and curious anglers alike.",
		ActiveHours:     [2]float64{0, 6},
		FavoriteBaits:   []string{"luminous squid", "void moth"},
	},
	{
		ID:              "prismatic_lobster",
		Name:            "Prismatic Lobster",
		Rarity:          RarityEpic,
		AverageWeightKg: 6,
		MaxWeightKg:     16,
		Habitats:        []Habitat{HabitatReef, HabitatAncient},
		Description:     "A crustacean coveted for its iridescent shell. Dwells in labyrinthine coral caverns.",
		ActiveHours:     [2]float64{19, 2},
		FavoriteBaits:   []string{"coral shrimp", "crystal roe"},
	},
}

var speciesByID = func() map[string]*Species {
	m := make(map[string]*Species, len(FishSpecies))
	for _, s := range FishSpecies {
		m[s.ID] = s
	}
	return m
}()

// GetSpecies returns the species by ID, or nil if not found.
func GetSpecies(id string) *Species {
	return speciesByID[id]
}
