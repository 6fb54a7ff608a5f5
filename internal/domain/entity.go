package domain

// EntityType - грубая метка назначения сущности. Поведение определяется
// не меткой, а набором компонентов (структурная типизация).
type EntityType string

const (
	EntityTypePredator EntityType = "predator"
	EntityTypePrey     EntityType = "prey"
	EntityTypeResource EntityType = "resource"
	EntityTypeWorld    EntityType = "world"
)

// Entity - единица симуляции. Никакой иерархии классов:
// nil-компонент означает отсутствие свойства.
type Entity struct {
	ID   string     `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`

	// ControllerID - ID сессии, управляющей сущностью.
	// Пусто - сущность управляется AI.
	ControllerID string `json:"controllerId,omitempty"`

	Species   *SpeciesComponent       `json:"species,omitempty"`
	Combat    *CombatComponent        `json:"combat,omitempty"`
	Equipment *EquipmentComponent     `json:"equipment,omitempty"`
	Movement  *MovementComponent      `json:"movement,omitempty"`
	AI        *AIComponent            `json:"ai,omitempty"`
	Animation *AnimationComponent     `json:"animation,omitempty"`
	Resource  *BiomeResourceComponent `json:"resource,omitempty"`
}

// IsAICapable - может ли сущность принимать решения.
// Инвариант ядра: AI всегда ходит в паре с движением и боем.
func (e *Entity) IsAICapable() bool {
	return e.AI != nil && e.Movement != nil && e.Combat != nil
}

// IsCombatant - участвует ли сущность в бою.
func (e *Entity) IsCombatant() bool {
	return e.Combat != nil && e.Movement != nil
}

// IsGatherable - можно ли сущность собирать.
func (e *Entity) IsGatherable() bool {
	return e.Resource != nil
}

// IsAlive - жива ли сущность (ресурсы и мировые сущности считаются "живыми").
func (e *Entity) IsAlive() bool {
	if e.Combat == nil {
		return true
	}
	return e.Combat.Health > 0
}

// IsPlayerControlled - управляется ли сущность игроком (AI для нее пропускается).
func (e *Entity) IsPlayerControlled() bool {
	return e.ControllerID != ""
}

// Position - позиция сущности, нулевой вектор при отсутствии движения.
func (e *Entity) Position() Vec3 {
	if e.Movement == nil {
		return Vec3{}
	}
	return e.Movement.Position
}
