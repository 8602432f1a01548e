package data

// Rarity is a species rarity tier.
type Rarity string

// Rarity tiers, most to least common.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// RarityParams holds everything derived from a rarity tier.
type RarityParams struct {
	Difficulty      float64 // encounter difficulty, 1 (gentle) .. 4 (mythic)
	Population      int     // fish spawned per species at world start
	BaseCatchChance float64 // hook chance before lure/hour modifiers
}

// rarityTable is the single source for rarity-derived parameters.
var rarityTable = map[Rarity]RarityParams{
	RarityCommon:    {Difficulty: 1, Population: 12, BaseCatchChance: 0.9},
	RarityUncommon:  {Difficulty: 1.5, Population: 8, BaseCatchChance: 0.75},
	RarityRare:      {Difficulty: 2.2, Population: 5, BaseCatchChance: 0.5},
	RarityEpic:      {Difficulty: 2.8, Population: 3, BaseCatchChance: 0.35},
	RarityLegendary: {Difficulty: 3.4, Population: 2, BaseCatchChance: 0.2},
	RarityMythic:    {Difficulty: 4, Population: 1, BaseCatchChance: 0.08},
}

// unknownRarity applies to tiers missing from rarityTable.
var unknownRarity = RarityParams{Difficulty: 2, Population: 4, BaseCatchChance: 0.2}

// RarityParamsFor returns the parameters for r. Unknown tiers get a
// middle-of-the-road default instead of an error.
func RarityParamsFor(r Rarity) RarityParams {
	if p, ok := rarityTable[r]; ok {
		return p
	}
	return unknownRarity
}

// Known reports whether r is one of the defined tiers.
func (r Rarity) Known() bool {
	_, ok := rarityTable[r]
	return ok
}
