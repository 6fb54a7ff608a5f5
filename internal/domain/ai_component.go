package domain

// AIState - состояние поведения существа.
type AIState string

const (
	AIStateIdle   AIState = "idle"
	AIStateWander AIState = "wander"
	AIStateFlee   AIState = "flee"
	AIStateHunt   AIState = "hunt"
	AIStateAttack AIState = "attack"
	AIStateEat    AIState = "eat"
	AIStateSleep  AIState = "sleep"
	AIStateDrink  AIState = "drink"
	AIStateAlert  AIState = "alert"
)

// Personality - один из шести фиксированных архетипов поведения.
type Personality string

const (
	PersonalityTimid       Personality = "timid"
	PersonalityCautious    Personality = "cautious"
	PersonalityAggressive  Personality = "aggressive"
	PersonalityFearless    Personality = "fearless"
	PersonalityPack        Personality = "pack"
	PersonalityTerritorial Personality = "territorial"
)

// PackRole - роль в стае.
type PackRole string

const (
	PackRoleLeader PackRole = "leader"
	PackRoleMember PackRole = "member"
	PackRoleScout  PackRole = "scout"
	PackRoleSolo   PackRole = "solo"
)

// PersonalityPreset - численные настройки архетипа.
// FleeThreshold - доля здоровья, НИЖЕ ИЛИ РАВНО которой существо бежит.
// Высокий порог = пугливое существо (бежит почти с полным здоровьем).
type PersonalityPreset struct {
	DetectionRadius float64
	FieldOfView     float64 // градусы
	HearingRadius   float64
	FleeThreshold   float64 // 0..1, доля здоровья
	AggressionLevel float64 // 0..1
	Curiosity       float64 // 0..1
}

// PersonalityPresets - фиксированная таблица шести архетипов.
var PersonalityPresets = map[Personality]PersonalityPreset{
	PersonalityTimid: {
		DetectionRadius: 30,
		FieldOfView:     270, // широкий обзор
		HearingRadius:   25,
		FleeThreshold:   0.9, // бежит уже при 90% здоровья
		AggressionLevel: 0.1,
		Curiosity:       0.2,
	},
	PersonalityCautious: {
		DetectionRadius: 20,
		FieldOfView:     180,
		HearingRadius:   15,
		FleeThreshold:   0.5,
		AggressionLevel: 0.4,
		Curiosity:       0.5,
	},
	PersonalityAggressive: {
		DetectionRadius: 25,
		FieldOfView:     200,
		HearingRadius:   20,
		FleeThreshold:   0.2, // бежит только при смерти
		AggressionLevel: 0.8,
		Curiosity:       0.7,
	},
	PersonalityFearless: {
		DetectionRadius: 20,
		FieldOfView:     180,
		HearingRadius:   15,
		FleeThreshold:   0.0, // никогда не бежит
		AggressionLevel: 1.0,
		Curiosity:       0.3,
	},
	PersonalityPack: {
		DetectionRadius: 22,
		FieldOfView:     200,
		HearingRadius:   30, // слышит сородичей
		FleeThreshold:   0.3,
		AggressionLevel: 0.7,
		Curiosity:       0.6,
	},
	PersonalityTerritorial: {
		DetectionRadius: 25,
		FieldOfView:     220,
		HearingRadius:   20,
		FleeThreshold:   0.4,
		AggressionLevel: 0.9, // очень агрессивен на своей земле
		Curiosity:       0.4,
	},
}

// AIComponent - мозги существа. У игрока этого компонента нет:
// его намерения приходят из шлюза ввода напрямую.
type AIComponent struct {
	CurrentState AIState     `json:"currentState"`
	Personality  Personality `json:"personality"`

	// Восприятие
	DetectionRadius float64 `json:"detectionRadius"`
	FieldOfView     float64 `json:"fieldOfView"` // градусы
	HearingRadius   float64 `json:"hearingRadius"`

	// Принятие решений
	FleeThreshold   float64 `json:"fleeThreshold"`
	AggressionLevel float64 `json:"aggressionLevel"`
	Curiosity       float64 `json:"curiosity"`

	// Цели. Слабые ссылки - только ID и позиции.
	Target       string `json:"target,omitempty"`
	FleeFrom     *Vec3  `json:"fleeFrom,omitempty"` // flee идет ОТ точки, не от сущности
	HomePosition Vec3   `json:"homePosition"`

	// Патруль
	PatrolPoints       []Vec3 `json:"patrolPoints,omitempty"`
	CurrentPatrolIndex int    `json:"currentPatrolIndex"`

	// Таймеры (секунды симуляции)
	LastStateChange  float64 `json:"lastStateChange"`
	StateDuration    float64 `json:"stateDuration"`
	NextDecisionTime float64 `json:"nextDecisionTime"`

	// Стая
	PackID   string   `json:"packId,omitempty"`
	PackRole PackRole `json:"packRole"`

	// Короткая память
	LastThreatPosition *Vec3   `json:"lastThreatPosition,omitempty"`
	LastThreatTime     float64 `json:"lastThreatTime"`
	SafeZones          []Vec3  `json:"safeZones,omitempty"`
}

// ChangeState переводит машину в новое состояние и фиксирует время.
func (a *AIComponent) ChangeState(state AIState, now float64) {
	if a.CurrentState == state {
		return
	}
	a.CurrentState = state
	a.LastStateChange = now
}

// IsDecisionDue проверяет, настало ли время переоценки.
func (a *AIComponent) IsDecisionDue(now float64) bool {
	return now >= a.NextDecisionTime
}

// RememberThreat записывает угрозу в память (в том числе от сородичей).
func (a *AIComponent) RememberThreat(pos Vec3, now float64) {
	p := pos
	a.LastThreatPosition = &p
	a.LastThreatTime = now
}
