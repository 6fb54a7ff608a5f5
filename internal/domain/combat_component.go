package domain

import "strings"

// AttackCategory - тип природной атаки. Оружия в игре нет:
// только укусы, когти, хвосты и прочие части тела.
type AttackCategory string

const (
	AttackBite      AttackCategory = "bite"
	AttackClawSwipe AttackCategory = "claw_swipe"
	AttackTailWhip  AttackCategory = "tail_whip"
	AttackHeadbutt  AttackCategory = "headbutt"
	AttackPounce    AttackCategory = "pounce"
	AttackRollCrush AttackCategory = "roll_crush"
)

// ParseAttackCategory конвертирует строку из данных в категорию.
// Пустая строка означает "не указано" (нормализатор выведет из имени).
func ParseAttackCategory(s string) (AttackCategory, bool) {
	switch AttackCategory(strings.ToLower(s)) {
	case AttackBite, AttackClawSwipe, AttackTailWhip, AttackHeadbutt, AttackPounce, AttackRollCrush:
		return AttackCategory(strings.ToLower(s)), true
	}
	return "", false
}

// Attack - полностью разрешенная атака. Записи в живых сущностях
// всегда проходят через нормализатор: все поля заполнены.
type Attack struct {
	Name        string         `json:"name"`
	Category    AttackCategory `json:"category"`
	Damage      float64        `json:"damage"`
	Range       float64        `json:"range"`       // радиус удара, метры
	StaminaCost float64        `json:"staminaCost"` // выносливость за удар
	Cooldown    float64        `json:"cooldown"`    // секунды до повторного удара
	Knockback   float64        `json:"knockback"`   // отброс цели, метры
	StunDur     float64        `json:"stunDuration"`
	AnimationID int            `json:"animationId"` // ID в библиотеке анимаций

	// Elemental - опциональная стихийная метка ("fire", "ice").
	// Погода модулирует урон только помеченных атак.
	Elemental string `json:"elemental,omitempty"`
}

// CombatComponent - боевое состояние сущности.
type CombatComponent struct {
	Attacks []Attack `json:"attacks"`

	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"maxHealth"`
	Stamina    float64 `json:"stamina"`
	MaxStamina float64 `json:"maxStamina"`
	StamRegen  float64 `json:"staminaRegen"` // в секунду

	// Защита
	Armor       float64 `json:"armor"`       // доля поглощения урона, 0..1
	DodgeChance float64 `json:"dodgeChance"` // 0..1

	// Текущее состояние боя
	IsInCombat     bool    `json:"isInCombat"`
	LastAttackTime float64 `json:"lastAttackTime"`
	CurrentTarget  string  `json:"currentTarget,omitempty"` // слабая ссылка: ID сущности

	// Остаток стана. Тикается симуляцией, не резолвером.
	StunRemaining float64 `json:"stunRemaining,omitempty"`

	// Бонусы от экипировки. Пишет ТОЛЬКО агрегатор экипировки,
	// геймплейный код их только читает.
	DamageBonus          float64 `json:"damageBonus"`          // множитель
	ArmorBonus           float64 `json:"armorBonus"`           // добавка к Armor
	StaminaCostReduction float64 `json:"staminaCostReduction"` // 0..0.95
}

// TakeDamage наносит урон. Возвращает true, если цель погибла.
// Здоровье не уходит ниже нуля.
func (c *CombatComponent) TakeDamage(amount float64) bool {
	if amount < 0 {
		amount = 0
	}
	c.Health -= amount
	if c.Health <= 0 {
		c.Health = 0
		return true
	}
	return false
}

// HasStamina проверяет, хватает ли выносливости на атаку.
func (c *CombatComponent) HasStamina(cost float64) bool {
	return c.Stamina >= cost
}

// SpendStamina тратит выносливость с полом в ноль.
func (c *CombatComponent) SpendStamina(cost float64) {
	c.Stamina -= cost
	if c.Stamina < 0 {
		c.Stamina = 0
	}
}

// RestoreStamina восстанавливает выносливость (реген), не выше максимума.
func (c *CombatComponent) RestoreStamina(amount float64) {
	c.Stamina += amount
	if c.Stamina > c.MaxStamina {
		c.Stamina = c.MaxStamina
	}
}

// HealthFraction - доля оставшегося здоровья 0..1. Нужна AI для flee-порога.
func (c *CombatComponent) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return c.Health / c.MaxHealth
}

// BestAttackInRange возвращает самую мощную атаку, достающую до dist.
// nil, если ни одна не достает.
func (c *CombatComponent) BestAttackInRange(dist float64) *Attack {
	var best *Attack
	for i := range c.Attacks {
		a := &c.Attacks[i]
		if a.Range >= dist && (best == nil || a.Damage > best.Damage) {
			best = a
		}
	}
	return best
}

// LongestRange - максимальный радиус среди атак. 0, если атак нет.
func (c *CombatComponent) LongestRange() float64 {
	max := 0.0
	for i := range c.Attacks {
		if c.Attacks[i].Range > max {
			max = c.Attacks[i].Range
		}
	}
	return max
}
