package domain

// BiomeResourceComponent - собираемый ресурс (растения, грибы).
// Инвариант: CurrentQuantity в пределах [0, MaxQuantity]; ноль запускает
// таймер респавна, респавн выдает случайное количество в [Min, Max].
type BiomeResourceComponent struct {
	Type        string   `json:"type"` // ключ в каталоге ресурсов
	Name        string   `json:"name"`
	VisualModel string   `json:"visualModel"`
	Biomes      []string `json:"biomes"`

	GatherSkillRequired int     `json:"gatherSkillRequired"`
	GatherTime          float64 `json:"gatherTime"` // секунды на один сбор

	MinQuantity     int `json:"minQuantity"`
	MaxQuantity     int `json:"maxQuantity"`
	CurrentQuantity int `json:"currentQuantity"`

	RespawnTime  float64 `json:"respawnTime"` // секунды
	IsRespawning bool    `json:"isRespawning"`
	RespawnTimer float64 `json:"respawnTimer"` // обратный отсчет, тикает вызывающий

	DropItems []DropItem `json:"dropItems"`

	// Кто сейчас собирает (ID сущностей)
	Harvesters []string `json:"harvesters,omitempty"`
}
