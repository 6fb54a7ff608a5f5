package engine

import (
	"time"

	"rivermarsh-server/internal/env"
)

// Config хранит параметры запуска симуляции
type Config struct {
	// Seed - мастер-зерно. От него зависят ID сущностей, броски
	// агрессии, уклонения и количество ресурсов: один сид - один мир.
	Seed int64

	// Стартовое окружение
	Biome     env.BiomeType
	StartHour float64
	MoonPhase float64

	// TimeScale - во сколько раз игровые сутки быстрее реальных секунд.
	TimeScale float64

	// WeatherInterval - период переброса погоды, секунды симуляции.
	WeatherInterval float64
}

// NewConfig создает конфиг по умолчанию (случайный сид, болото, полдень)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		Biome:           env.BiomeMarsh,
		StartHour:       12,
		MoonPhase:       0.5,
		TimeScale:       60, // игровой час за реальную минуту
		WeatherInterval: 120,
	}
}
