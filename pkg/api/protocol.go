package api

import "encoding/json"

// Протокол шлюза рендера и ввода. Ядро не знает о сети: шлюз
// переводит эти сообщения в вызовы симуляции и обратно.

// Типы клиентских команд
const (
	ActionInit    = "INIT"    // рукопожатие, клиент хочет полный снимок
	ActionSpawn   = "SPAWN"   // занять существо (стать игроком)
	ActionIntent  = "INTENT"  // намерения ввода на кадр
	ActionEquip   = "EQUIP"   // надеть предмет
	ActionUnequip = "UNEQUIP" // снять предмет
	ActionGather  = "GATHER"  // собрать ресурс
)

// ClientCommand - конверт команды от клиента.
type ClientCommand struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SpawnPayload - запрос на вселение в существо.
type SpawnPayload struct {
	Species string     `json:"species"`
	Level   int        `json:"level,omitempty"`
	Pos     [3]float64 `json:"pos"`
}

// Intent - намерения ввода. Клиент шлет их каждый кадр ввода;
// мост записывает их прямо в компоненты игровой сущности,
// минуя движок AI.
type Intent struct {
	Move     [3]float64 `json:"move"` // направление, не позиция
	Sprint   bool       `json:"sprint"`
	Jump     bool       `json:"jump"`
	Attack   bool       `json:"attack"`
	Interact bool       `json:"interact"`
	TargetID string     `json:"targetId,omitempty"`
}

// EquipPayload - надеть/снять предмет.
type EquipPayload struct {
	Slot string          `json:"slot"`
	Item *EquipmentView `json:"item,omitempty"`
}

// GatherPayload - собрать с ресурса.
type GatherPayload struct {
	ResourceID string `json:"resourceId"`
}

// ActionDescriptor - взаимодействие как чистые данные. Колбэков в
// компонентах нет: внешняя система диспетчеризации интерпретирует kind.
type ActionDescriptor struct {
	Kind   string `json:"kind"` // pickup, talk, gather
	ItemID string `json:"itemId,omitempty"`
}

// Типы серверных сообщений
const (
	MessageInit     = "INIT"
	MessageSnapshot = "SNAPSHOT"
	MessageEvent    = "EVENT"
	MessageError    = "ERROR"
)

// ServerMessage - конверт ответа сервера.
type ServerMessage struct {
	Type     string         `json:"type"`
	Snapshot *WorldSnapshot `json:"snapshot,omitempty"`
	Event    *GameEvent     `json:"event,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// GameEvent - разовое событие для клиентских эффектов (звук, частицы).
type GameEvent struct {
	Kind     string     `json:"kind"` // attack, death, gather, weather
	EntityID string     `json:"entityId,omitempty"`
	TargetID string     `json:"targetId,omitempty"`
	Value    float64    `json:"value,omitempty"`
	Pos      [3]float64 `json:"pos,omitempty"`
}

// EntityView - проекция сущности для рендера. Рендер читает позицию,
// поворот, анимацию и цвета; писать обратно ему нечего.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos      [3]float64 `json:"pos"`
	Rot      [4]float64 `json:"rot"`
	Velocity [3]float64 `json:"vel"`

	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Stamina   float64 `json:"stamina"`

	State       string `json:"state,omitempty"` // состояние AI
	AnimationID int    `json:"animationId"`

	Species      string `json:"species,omitempty"`
	PrimaryColor string `json:"primaryColor,omitempty"`
	Size         string `json:"size,omitempty"`

	// Для ресурсов
	Quantity     int  `json:"quantity,omitempty"`
	IsRespawning bool `json:"isRespawning,omitempty"`
}

// EquipmentView - предмет экипировки в протоколе.
type EquipmentView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slot   string `json:"slot"`
	Rarity string `json:"rarity"`

	HealthBonus          float64 `json:"healthBonus,omitempty"`
	StaminaBonus         float64 `json:"staminaBonus,omitempty"`
	DamageBonus          float64 `json:"damageBonus,omitempty"`
	ArmorBonus           float64 `json:"armorBonus,omitempty"`
	SpeedBonus           float64 `json:"speedBonus,omitempty"`
	StaminaCostReduction float64 `json:"staminaCostReduction,omitempty"`
}

// WorldSnapshot - снимок мира на один тик.
type WorldSnapshot struct {
	Time    float64 `json:"time"` // секунды симуляции
	Hour    float64 `json:"hour"`
	Phase   string  `json:"phase"`
	Biome   string  `json:"biome"`
	Weather string  `json:"weather"`

	Entities []EntityView `json:"entities"`
}
