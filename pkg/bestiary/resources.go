package bestiary

import (
	"rivermarsh-server/internal/domain"
)

// ResourceTemplate - авторское описание собираемого ресурса.
type ResourceTemplate struct {
	Name        string   `json:"name"`
	VisualModel string   `json:"visualModel"`
	Biomes      []string `json:"biomes"`

	GatherSkillRequired int     `json:"gatherSkillRequired"`
	GatherTime          float64 `json:"gatherTime"` // секунды

	MinQuantity int     `json:"minQuantity"`
	MaxQuantity int     `json:"maxQuantity"`
	RespawnTime float64 `json:"respawnTime"` // секунды

	DropItems []domain.DropItem `json:"dropItems"`
}

// resourceTemplates - таблица ресурсов по биомам.
var resourceTemplates = map[string]ResourceTemplate{
	"cattails": {
		Name:        "Cattails",
		VisualModel: "tall_reed",
		Biomes:      []string{"marsh"},
		GatherTime:  2, MinQuantity: 2, MaxQuantity: 4, RespawnTime: 300,
		DropItems: []domain.DropItem{
			{Item: "cattail_fluff", Quantity: 2, Chance: 1.0},
			{Item: "cattail_root", Quantity: 1, Chance: 0.7},
		},
	},
	"mushrooms": {
		Name:        "Mushrooms",
		VisualModel: "mushroom_cluster",
		Biomes:      []string{"forest"},
		GatherTime:  1.5, MinQuantity: 1, MaxQuantity: 3, RespawnTime: 600,
		DropItems: []domain.DropItem{
			{Item: "edible_mushroom", Quantity: 1, Chance: 1.0},
		},
	},
	"berries": {
		Name:        "Berry Bush",
		VisualModel: "berry_bush",
		Biomes:      []string{"forest", "scrubland"},
		GatherTime:  2, MinQuantity: 3, MaxQuantity: 6, RespawnTime: 400,
		DropItems: []domain.DropItem{
			{Item: "berries", Quantity: 3, Chance: 1.0},
		},
	},
	"wildflowers": {
		Name:        "Wildflowers",
		VisualModel: "flower_patch",
		Biomes:      []string{"scrubland", "savanna"},
		GatherTime:  1, MinQuantity: 2, MaxQuantity: 5, RespawnTime: 200,
		DropItems: []domain.DropItem{
			{Item: "wildflower", Quantity: 2, Chance: 1.0},
			{Item: "pollen", Quantity: 1, Chance: 0.5},
		},
	},
	"cacti": {
		Name:                "Cactus",
		VisualModel:         "cactus",
		Biomes:              []string{"desert"},
		GatherSkillRequired: 1,
		GatherTime:          3, MinQuantity: 1, MaxQuantity: 2, RespawnTime: 800,
		DropItems: []domain.DropItem{
			{Item: "cactus_fruit", Quantity: 1, Chance: 0.8},
			{Item: "cactus_needle", Quantity: 2, Chance: 1.0},
		},
	},
	"herbs": {
		Name:                "Medicinal Herbs",
		VisualModel:         "herb_plant",
		Biomes:              []string{"forest", "jungle", "marsh"},
		GatherSkillRequired: 1,
		GatherTime:          2.5, MinQuantity: 1, MaxQuantity: 2, RespawnTime: 500,
		DropItems: []domain.DropItem{
			{Item: "healing_herb", Quantity: 1, Chance: 1.0},
		},
	},
	"bamboo": {
		Name:        "Bamboo",
		VisualModel: "bamboo_shoot",
		Biomes:      []string{"jungle", "mountain"},
		GatherTime:  2, MinQuantity: 1, MaxQuantity: 3, RespawnTime: 300,
		DropItems: []domain.DropItem{
			{Item: "bamboo_shoot", Quantity: 2, Chance: 1.0},
		},
	},
	"moss": {
		Name:        "Moss Patch",
		VisualModel: "moss",
		Biomes:      []string{"tundra", "mountain", "forest"},
		GatherTime:  1.5, MinQuantity: 2, MaxQuantity: 4, RespawnTime: 250,
		DropItems: []domain.DropItem{
			{Item: "moss", Quantity: 2, Chance: 1.0},
		},
	},
	"rocks": {
		Name:                "Rock Pile",
		VisualModel:         "rock_pile",
		Biomes:              []string{"mountain", "desert", "tundra"},
		GatherSkillRequired: 2,
		GatherTime:          4, MinQuantity: 1, MaxQuantity: 1, RespawnTime: 1000,
		DropItems: []domain.DropItem{
			{Item: "stone", Quantity: 3, Chance: 1.0},
			{Item: "flint", Quantity: 1, Chance: 0.4},
		},
	},
}
