package env

import "fmt"

// BiomeType - один из семи фиксированных биомов.
type BiomeType string

const (
	BiomeMarsh     BiomeType = "marsh"
	BiomeForest    BiomeType = "forest"
	BiomeDesert    BiomeType = "desert"
	BiomeTundra    BiomeType = "tundra"
	BiomeSavanna   BiomeType = "savanna"
	BiomeMountain  BiomeType = "mountain"
	BiomeScrubland BiomeType = "scrubland"
)

// ColorPalette - цвета для процедурного рендера.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Foliage   string `json:"foliage"`
}

// Biome - мировой синглтон свойств местности. Выбор биома заменяет
// запись целиком из таблицы архетипов; интерполяции между биомами нет.
type Biome struct {
	Type BiomeType `json:"type"`

	// Физические свойства
	Temperature      float64 `json:"temperature"` // °C
	Moisture         float64 `json:"moisture"`    // 0..1
	TerrainRoughness float64 `json:"terrainRoughness"`
	Elevation        float64 `json:"elevation"` // метры над уровнем моря

	// Геймплейные модификаторы
	StaminaDrainMod  float64 `json:"staminaDrainMod"`  // 1.5 = пустыня сушит на 50% быстрее
	MovementSpeedMod float64 `json:"movementSpeedMod"` // 0.7 = снег замедляет
	Visibility       float64 `json:"visibility"`       // 0.5 = густой лес
	StealthBonus     float64 `json:"stealthBonus"`     // лес +0.3, открытая саванна -0.2

	// Правила спавна
	PreySpawnRate        float64 `json:"preySpawnRate"`
	StockSpawnRate       float64 `json:"stockSpawnRate"` // ресурсы: ягоды, рыба
	PredatorPatrolChance float64 `json:"predatorPatrolChance"`

	Resources   []string     `json:"resources"`
	GroundCover []string     `json:"groundCover"`
	PlantTypes  []string     `json:"plantTypes"`
	Palette     ColorPalette `json:"colorPalette"`
}

// biomeArchetypes - стартовые шаблоны биомов. Никогда не мутируются:
// SelectBiome отдает копию.
var biomeArchetypes = map[BiomeType]Biome{
	BiomeMarsh: {
		Type:        BiomeMarsh,
		Temperature: 15, Moisture: 0.9, TerrainRoughness: 0.2, Elevation: 5,
		StaminaDrainMod:  1.1,  // брести по воде утомительно
		MovementSpeedMod: 0.85, // грязь замедляет
		Visibility:       0.7,  // камыши мешают обзору
		StealthBonus:     0.2,
		PreySpawnRate:    0.7, StockSpawnRate: 0.8, PredatorPatrolChance: 0.3,
		Resources:   []string{"cattails", "water_lily", "reeds", "moss"},
		GroundCover: []string{"mud", "shallow_water"},
		PlantTypes:  []string{"willow", "cypress"},
		Palette:     ColorPalette{Primary: "#4a5f4d", Secondary: "#6b8e6f", Foliage: "#7fa87f"},
	},
	BiomeForest: {
		Type:        BiomeForest,
		Temperature: 12, Moisture: 0.6, TerrainRoughness: 0.4, Elevation: 150,
		StaminaDrainMod:  1.0,
		MovementSpeedMod: 0.9,
		Visibility:       0.5, // плотный полог
		StealthBonus:     0.3, // лучшее место для засад
		PreySpawnRate:    0.8, StockSpawnRate: 0.6, PredatorPatrolChance: 0.5,
		Resources:   []string{"mushroom_common", "mushroom_rare", "berries", "herbs", "moss"},
		GroundCover: []string{"leaf_litter", "ferns", "roots"},
		PlantTypes:  []string{"oak", "pine"},
		Palette:     ColorPalette{Primary: "#3d4a2f", Secondary: "#5a6b47", Foliage: "#6b8257"},
	},
	BiomeDesert: {
		Type:        BiomeDesert,
		Temperature: 35, Moisture: 0.1, TerrainRoughness: 0.3, Elevation: 300,
		StaminaDrainMod:  1.5, // тепловое истощение
		MovementSpeedMod: 0.95,
		Visibility:       1.0,
		StealthBonus:     -0.2, // негде прятаться
		PreySpawnRate:    0.3, StockSpawnRate: 0.2, PredatorPatrolChance: 0.4,
		Resources:   []string{"herbs"},
		GroundCover: []string{"sand", "rock", "dry_grass"},
		PlantTypes:  []string{"cactus", "dead_tree"},
		Palette:     ColorPalette{Primary: "#d4a574", Secondary: "#c9954a", Foliage: "#8b7355"},
	},
	BiomeTundra: {
		Type:        BiomeTundra,
		Temperature: -15, Moisture: 0.3, TerrainRoughness: 0.2, Elevation: 50,
		StaminaDrainMod:  1.3, // холод тянет силы
		MovementSpeedMod: 0.7, // снег
		Visibility:       0.9,
		StealthBonus:     0.1,
		PreySpawnRate:    0.4, StockSpawnRate: 0.3, PredatorPatrolChance: 0.3,
		Resources:   []string{"moss", "herbs"},
		GroundCover: []string{"snow", "ice", "permafrost"},
		PlantTypes:  []string{"dwarf_shrub"},
		Palette:     ColorPalette{Primary: "#e8f4f8", Secondary: "#c9dfe8", Foliage: "#a8b8c0"},
	},
	BiomeSavanna: {
		Type:        BiomeSavanna,
		Temperature: 28, Moisture: 0.4, TerrainRoughness: 0.1, Elevation: 200,
		StaminaDrainMod:  1.2,
		MovementSpeedMod: 1.1, // открытая равнина
		Visibility:       0.9,
		StealthBonus:     -0.1,
		PreySpawnRate:    0.9, StockSpawnRate: 0.5, PredatorPatrolChance: 0.6,
		Resources:   []string{"berries", "herbs", "flowers"},
		GroundCover: []string{"tall_grass", "dirt", "rock"},
		PlantTypes:  []string{"acacia", "baobab"},
		Palette:     ColorPalette{Primary: "#d4b896", Secondary: "#c9a876", Foliage: "#9b8a5a"},
	},
	BiomeMountain: {
		Type:        BiomeMountain,
		Temperature: 5, Moisture: 0.5, TerrainRoughness: 0.9, Elevation: 2000,
		StaminaDrainMod:  1.4, // разреженный воздух
		MovementSpeedMod: 0.8,
		Visibility:       0.8,
		StealthBonus:     0.1,
		PreySpawnRate:    0.5, StockSpawnRate: 0.4, PredatorPatrolChance: 0.4,
		Resources:   []string{"herbs", "mushroom_rare", "flowers"},
		GroundCover: []string{"rock", "scree", "alpine_grass", "snow_patch"},
		PlantTypes:  []string{"bamboo", "rhododendron", "conifer"},
		Palette:     ColorPalette{Primary: "#8a9299", Secondary: "#6f7a82", Foliage: "#5a6b57"},
	},
	BiomeScrubland: {
		Type:        BiomeScrubland,
		Temperature: 22, Moisture: 0.3, TerrainRoughness: 0.4, Elevation: 100,
		StaminaDrainMod:  1.1,
		MovementSpeedMod: 0.9, // колючие кусты
		Visibility:       0.6,
		StealthBonus:     0.15,
		PreySpawnRate:    0.6, StockSpawnRate: 0.5, PredatorPatrolChance: 0.5,
		Resources:   []string{"berries", "herbs", "mushroom_common"},
		GroundCover: []string{"dry_dirt", "sparse_grass", "rock"},
		PlantTypes:  []string{"eucalyptus", "thorn_bush", "dry_shrub"},
		Palette:     ColorPalette{Primary: "#b89968", Secondary: "#a68a5a", Foliage: "#8a7a4d"},
	},
}

// SelectBiome возвращает свежую копию архетипа. Слайсы тоже копируются,
// чтобы живой биом нельзя было испортить через таблицу.
func SelectBiome(t BiomeType) (Biome, error) {
	arch, ok := biomeArchetypes[t]
	if !ok {
		return Biome{}, fmt.Errorf("unknown biome %q", t)
	}
	b := arch
	b.Resources = append([]string(nil), arch.Resources...)
	b.GroundCover = append([]string(nil), arch.GroundCover...)
	b.PlantTypes = append([]string(nil), arch.PlantTypes...)
	return b, nil
}

// BiomeTypes - список всех биомов (для спавнеров и инструментов).
func BiomeTypes() []BiomeType {
	return []BiomeType{
		BiomeMarsh, BiomeForest, BiomeDesert, BiomeTundra,
		BiomeSavanna, BiomeMountain, BiomeScrubland,
	}
}
