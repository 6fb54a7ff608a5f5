// Package env содержит мировые синглтоны окружения (биом, погода, время
// суток) и чистые функции, выводящие их геймплейные модификаторы.
// Потребители - боевой резолвер и движок решений AI.
package env

// State - композит окружения, передаваемый системам одним значением.
type State struct {
	Biome   Biome     `json:"biome"`
	Weather Weather   `json:"weather"`
	Time    TimeOfDay `json:"time"`
}

// DefaultState - болото, ясно, полдень. Стартовое окружение мира.
func DefaultState() State {
	biome, _ := SelectBiome(BiomeMarsh)
	weather, _ := SetWeather(WeatherClear)
	return State{
		Biome:   biome,
		Weather: weather,
		Time:    TimeModifiers(12, 0.5),
	}
}
