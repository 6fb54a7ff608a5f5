package bestiary

import (
	"rivermarsh-server/internal/domain"
)

// Инициализаторы компонентов. Чистые функции: фабрика вызывает их,
// чтобы собрать полностью заполненные компоненты с дефолтами.

const (
	defaultStamina      = 100.0
	defaultStaminaRegen = 5.0
	defaultDodgeChance  = 0.05
	defaultDrag         = 0.15
	defaultGravity      = -9.8
	defaultAvoidance    = 0.5
	defaultStateDur     = 5.0
)

func newCombatComponent(baseHealth float64, attacks []domain.Attack) *domain.CombatComponent {
	return &domain.CombatComponent{
		Attacks:     attacks,
		Health:      baseHealth,
		MaxHealth:   baseHealth,
		Stamina:     defaultStamina,
		MaxStamina:  defaultStamina,
		StamRegen:   defaultStaminaRegen,
		Armor:       0,
		DodgeChance: defaultDodgeChance,

		DamageBonus:          1.0,
		ArmorBonus:           0,
		StaminaCostReduction: 0,
	}
}

func newEquipmentComponent() *domain.EquipmentComponent {
	return &domain.EquipmentComponent{
		Equipped: make(map[domain.EquipSlot]*domain.EquipmentItem, len(domain.AllEquipSlots)),

		TotalDamageBonus: 1.0,
		TotalSpeedBonus:  1.0,
	}
}

// newAIComponent собирает мозги из архетипа. Авторские данные вида
// переопределяют пресет: порог бегства (fleeOverride != nil) и радиус
// обнаружения (awareness > 0).
func newAIComponent(personality domain.Personality, aggression, awareness float64, home domain.Vec3, fleeOverride *float64) *domain.AIComponent {
	preset := domain.PersonalityPresets[personality]

	flee := preset.FleeThreshold
	if fleeOverride != nil {
		flee = *fleeOverride
	}
	detection := preset.DetectionRadius
	if awareness > 0 {
		detection = awareness
	}

	return &domain.AIComponent{
		CurrentState: domain.AIStateIdle,
		Personality:  personality,

		DetectionRadius: detection,
		FieldOfView:     preset.FieldOfView,
		HearingRadius:   preset.HearingRadius,

		FleeThreshold:   flee,
		AggressionLevel: aggression,
		Curiosity:       preset.Curiosity,

		HomePosition: home,
		PatrolPoints: []domain.Vec3{},

		StateDuration: defaultStateDur,

		PackRole: domain.PackRoleSolo,
	}
}

func newMovementComponent(tpl SpeciesTemplate, pos domain.Vec3) *domain.MovementComponent {
	return &domain.MovementComponent{
		Position: pos,
		Rotation: domain.IdentityQuat(),

		WalkSpeed:  tpl.WalkSpeed,
		RunSpeed:   tpl.RunSpeed,
		SwimSpeed:  tpl.SwimSpeed,
		ClimbSpeed: tpl.ClimbSpeed,
		JumpHeight: tpl.JumpHeight,

		CurrentMode: domain.LocomotionWalk,
		IsGrounded:  true,
		CanClimb:    tpl.ClimbSpeed > 0,

		SpeedMultiplier: 1.0,

		Mass:    tpl.Mass,
		Drag:    defaultDrag,
		Gravity: defaultGravity,

		AvoidanceRadius: defaultAvoidance,
	}
}

// defaultAnimationSet - раскладка по библиотеке анимаций ассетов.
var defaultAnimationSet = domain.AnimationSet{
	Idle:   []int{0, 11, 12},
	Walk:   1,
	Run:    14,
	Swim:   1,
	Jump:   13,
	Fall:   13,
	Attack: []int{4},
	Hit:    7,
	Death:  8,
	Eat:    31,
	Drink:  31,
	Sleep:  38,
}

// animationOverrides - точечные правки раскладки для видов с особой
// локомоцией. Остальные виды живут на общем наборе.
var animationOverrides = map[string]func(*domain.AnimationSet){
	"otter":    func(s *domain.AnimationSet) { s.Swim = 15 },
	"pangolin": func(s *domain.AnimationSet) { s.Idle = []int{0, 40} },
	"wolf":     func(s *domain.AnimationSet) { s.Run = 16 },
}

func newAnimationComponent(speciesID string) *domain.AnimationComponent {
	set := defaultAnimationSet
	set.Idle = append([]int(nil), defaultAnimationSet.Idle...)
	set.Attack = append([]int(nil), defaultAnimationSet.Attack...)
	if override, ok := animationOverrides[speciesID]; ok {
		override(&set)
	}

	return &domain.AnimationComponent{
		CurrentAnimation: set.Idle[0],
		AnimationSpeed:   1.0,
		BlendDuration:    0.2,
		Animations:       set,
		IsLooping:        true,
	}
}

// newSpeciesComponent копирует все слайсы шаблона: мутация одной
// сущности не должна трогать ни каталог, ни соседей.
func newSpeciesComponent(id string, tpl SpeciesTemplate) *domain.SpeciesComponent {
	return &domain.SpeciesComponent{
		ID:       id,
		Name:     tpl.Name,
		Category: tpl.Category,

		Size:         tpl.Size,
		PrimaryColor: tpl.PrimaryColor,
		Markings:     append([]string(nil), tpl.Markings...),

		NativeBiomes: append([]string(nil), tpl.NativeBiomes...),
		DropItems:    append([]domain.DropItem(nil), tpl.DropItems...),
	}
}
