package domain

// EquipSlot - слот зачарованного аксессуара. Мечей и щитов нет:
// звери носят только то, что крепится к телу.
type EquipSlot string

const (
	SlotCollar       EquipSlot = "collar"
	SlotBracerLeft   EquipSlot = "bracer_left"
	SlotBracerRight  EquipSlot = "bracer_right"
	SlotTailRing     EquipSlot = "tail_ring"
	SlotAnkletLeft   EquipSlot = "anklet_left"
	SlotAnkletRight  EquipSlot = "anklet_right"
	SlotEarringLeft  EquipSlot = "earring_left"
	SlotEarringRight EquipSlot = "earring_right"
)

// AllEquipSlots - фиксированный набор из восьми слотов.
var AllEquipSlots = []EquipSlot{
	SlotCollar,
	SlotBracerLeft, SlotBracerRight,
	SlotTailRing,
	SlotAnkletLeft, SlotAnkletRight,
	SlotEarringLeft, SlotEarringRight,
}

// EquipmentItem - зачарованный аксессуар. Чистые данные, без колбэков.
type EquipmentItem struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Slot   EquipSlot `json:"slot"`
	Rarity string    `json:"rarity"` // common, uncommon, rare, epic, legendary

	// Визуал для рендера
	GlowColor    string `json:"glowColor"`
	MaterialType string `json:"materialType"` // metal, leather, bone, crystal, wood

	// Бонусы к характеристикам
	HealthBonus          float64 `json:"healthBonus"`          // аддитивный
	StaminaBonus         float64 `json:"staminaBonus"`         // аддитивный
	DamageBonus          float64 `json:"damageBonus"`          // множитель (1.2 = +20%)
	ArmorBonus           float64 `json:"armorBonus"`           // аддитивный
	SpeedBonus           float64 `json:"speedBonus"`           // аддитивная доля (0.25 = +25%)
	StaminaCostReduction float64 `json:"staminaCostReduction"` // 0..1

	// Спецэффект как метка, интерпретирует внешняя система
	SpecialEffect string `json:"specialEffect,omitempty"` // fire_aura, thorns...
}

// EquipmentComponent - надетые предметы плюс кэш суммарных бонусов.
// Инвариант: кэш всегда соответствует Equipped. Пересчет выполняет
// агрегатор синхронно внутри Equip/Unequip.
type EquipmentComponent struct {
	Equipped map[EquipSlot]*EquipmentItem `json:"equipped"`

	TotalHealthBonus          float64 `json:"totalHealthBonus"`
	TotalStaminaBonus         float64 `json:"totalStaminaBonus"`
	TotalDamageBonus          float64 `json:"totalDamageBonus"` // множитель, база 1.0
	TotalArmorBonus           float64 `json:"totalArmorBonus"`
	TotalSpeedBonus           float64 `json:"totalSpeedBonus"` // множитель, база 1.0
	TotalStaminaCostReduction float64 `json:"totalStaminaCostReduction"`
}
