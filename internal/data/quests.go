package data

// ObjectiveDef is one step of a contract.
type ObjectiveDef struct {
	Description      string
	TargetSpeciesID  string
	Quantity         int
	RewardExperience int
	RewardFunds      int
}

// QuestDef is a fishing contract.
type QuestDef struct {
	ID         string
	Title      string
	Narrative  string
	Objectives []ObjectiveDef
}

// Quests is the contract list shown in the HUD.
var Quests = []QuestDef{
	{
		ID:        "aurora_initiation",
		Title:     "Aurora Initiation",
		Narrative: "Prove yourself to the Riverwardens by capturing the luminous species that inhabit the Aurora River.",
		Objectives: []ObjectiveDef{
			{Description: "Catch 3 Azure Trout", TargetSpeciesID: "azure_trout", Quantity: 3, RewardExperience: 80, RewardFunds: 120},
			{Description: "Catch 2 Sylvan Koi", TargetSpeciesID: "sylvan_koi", Quantity: 2, RewardExperience: 100, RewardFunds: 150},
		},
	},
	{
		ID:        "coral_resonance",
		Title:     "Coral Resonance",
		Narrative: "Tune into the bioacoustic songs of the Coral Citadel to lure out its most elusive residents.",
		Objectives: []ObjectiveDef{
			{Description: "Catch a Reef Seadragon", TargetSpeciesID: "reef_seadragon", Quantity: 1, RewardExperience: 250, RewardFunds: 400},
			{Description: "Catch an Amberjaw Barracuda", TargetSpeciesID: "amberjaw_barracuda", Quantity: 1, RewardExperience: 220, RewardFunds: 380},
		},
	},
	{
		ID:        "voltaic_arcanum",
		Title:     "Voltaic Arcanum",
		Narrative: "Harness the volcanic currents to uncover the secret of the Voltaic Eel.",
		Objectives: []ObjectiveDef{
			{Description: "Catch a Voltaic Eel", TargetSpeciesID: "voltaic_eel", Quantity: 1, RewardExperience: 600, RewardFunds: 750},
		},
	},
}
