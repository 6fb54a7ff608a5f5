package env

import (
	"fmt"
	"math/rand"
)

// WeatherType - тип погоды.
type WeatherType string

const (
	WeatherClear     WeatherType = "clear"
	WeatherRain      WeatherType = "rain"
	WeatherFog       WeatherType = "fog"
	WeatherSnow      WeatherType = "snow"
	WeatherStorm     WeatherType = "storm"
	WeatherSandstorm WeatherType = "sandstorm" // только пустыня
)

// Weather - мировой синглтон погоды. Производные поля приходят из
// таблицы пресетов; смена погоды - мгновенная замена записи.
// Интерполяцию TransitionProgress/NextWeather ведет внешний тикер,
// ядро только хранит поля.
type Weather struct {
	Current            WeatherType  `json:"current"`
	Intensity          float64      `json:"intensity"` // 0..1
	TransitionProgress float64      `json:"transitionProgress"`
	NextWeather        *WeatherType `json:"nextWeather,omitempty"`

	// Ветер (для частиц и качания растений)
	WindSpeed     float64    `json:"windSpeed"` // м/с
	WindDirection [2]float64 `json:"windDirection"`

	// Геймплейные эффекты
	VisibilityMod      float64 `json:"visibilityMod"`      // 0.3 = густой туман
	SoundMuffling      float64 `json:"soundMuffling"`      // 1.0 = гром глушит шаги
	FireEffectiveness  float64 `json:"fireEffectiveness"`  // дождь ослабляет огонь
	WaterDepthIncrease float64 `json:"waterDepthIncrease"` // дождь поднимает воду
}

// weatherPresets - фиксированная таблица пресетов по типу погоды.
var weatherPresets = map[WeatherType]Weather{
	WeatherClear: {
		Current: WeatherClear, Intensity: 0,
		WindSpeed: 2, WindDirection: [2]float64{1, 0},
		VisibilityMod: 1.0, SoundMuffling: 0.0,
		FireEffectiveness: 1.0, WaterDepthIncrease: 0,
	},
	WeatherRain: {
		Current: WeatherRain, Intensity: 0.6,
		WindSpeed: 8, WindDirection: [2]float64{0.7, 0.7},
		VisibilityMod: 0.7, SoundMuffling: 0.4,
		FireEffectiveness: 0.5, WaterDepthIncrease: 0.2,
	},
	WeatherFog: {
		Current: WeatherFog, Intensity: 0.8,
		WindSpeed: 1, WindDirection: [2]float64{0, 0},
		VisibilityMod: 0.3, SoundMuffling: 0.2,
		FireEffectiveness: 0.8, WaterDepthIncrease: 0,
	},
	WeatherSnow: {
		Current: WeatherSnow, Intensity: 0.5,
		WindSpeed: 5, WindDirection: [2]float64{0.5, 0.8},
		VisibilityMod: 0.6, SoundMuffling: 0.5, // снег глушит звук
		FireEffectiveness: 0.7, WaterDepthIncrease: 0,
	},
	WeatherStorm: {
		Current: WeatherStorm, Intensity: 1.0,
		WindSpeed: 15, WindDirection: [2]float64{1, 0.5},
		VisibilityMod: 0.4, SoundMuffling: 0.8,
		FireEffectiveness: 0.2, WaterDepthIncrease: 0.5, // паводок
	},
	WeatherSandstorm: {
		Current: WeatherSandstorm, Intensity: 0.9,
		WindSpeed: 20, WindDirection: [2]float64{1, 0},
		VisibilityMod: 0.2, SoundMuffling: 0.6,
		FireEffectiveness: 0.3, WaterDepthIncrease: 0,
	},
}

// biomeWeather - какая погода допустима в каком биоме.
var biomeWeather = map[BiomeType][]WeatherType{
	BiomeMarsh:     {WeatherClear, WeatherRain, WeatherFog, WeatherStorm},
	BiomeForest:    {WeatherClear, WeatherRain, WeatherFog},
	BiomeDesert:    {WeatherClear, WeatherSandstorm},
	BiomeTundra:    {WeatherClear, WeatherSnow, WeatherStorm},
	BiomeSavanna:   {WeatherClear, WeatherRain},
	BiomeMountain:  {WeatherClear, WeatherFog, WeatherSnow},
	BiomeScrubland: {WeatherClear, WeatherFog},
}

// SetWeather возвращает пресет по типу. Производные поля никогда
// не выставляются по отдельности.
func SetWeather(t WeatherType) (Weather, error) {
	preset, ok := weatherPresets[t]
	if !ok {
		return Weather{}, fmt.Errorf("unknown weather %q", t)
	}
	return preset, nil
}

// AllowedWeather - допустимые типы погоды для биома.
func AllowedWeather(b BiomeType) []WeatherType {
	return append([]WeatherType(nil), biomeWeather[b]...)
}

// RollWeather выбирает случайную допустимую погоду для биома.
func RollWeather(b BiomeType, rng *rand.Rand) Weather {
	allowed := biomeWeather[b]
	if len(allowed) == 0 {
		w, _ := SetWeather(WeatherClear)
		return w
	}
	w, _ := SetWeather(allowed[rng.Intn(len(allowed))])
	return w
}
