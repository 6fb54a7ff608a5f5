package domain

// LocomotionMode - способ передвижения.
type LocomotionMode string

const (
	LocomotionWalk  LocomotionMode = "walk"
	LocomotionRun   LocomotionMode = "run"
	LocomotionSwim  LocomotionMode = "swim"
	LocomotionClimb LocomotionMode = "climb"
	LocomotionJump  LocomotionMode = "jump"
	LocomotionFall  LocomotionMode = "fall"
)

// MovementComponent - физика и перемещение сущности.
type MovementComponent struct {
	Position Vec3 `json:"position"`
	Velocity Vec3 `json:"velocity"`
	Rotation Quat `json:"rotation"`

	// Базовые скорости по режимам (м/с)
	WalkSpeed  float64 `json:"walkSpeed"`
	RunSpeed   float64 `json:"runSpeed"`
	SwimSpeed  float64 `json:"swimSpeed"`
	ClimbSpeed float64 `json:"climbSpeed"`
	JumpHeight float64 `json:"jumpHeight"` // метры

	// Текущее состояние
	CurrentMode LocomotionMode `json:"currentMode"`
	IsGrounded  bool           `json:"isGrounded"`
	IsInWater   bool           `json:"isInWater"`
	CanClimb    bool           `json:"canClimb"`
	WaterDepth  float64        `json:"waterDepth"` // 0 = поверхность, 1 = полностью под водой

	// Итоговый множитель скорости: произведение модификаторов
	// биома, погоды и экипировки. Обновляет система движения.
	SpeedMultiplier float64 `json:"speedMultiplier"`

	// Физика
	Mass    float64 `json:"mass"` // кг, влияет на отброс
	Drag    float64 `json:"drag"`
	Gravity float64 `json:"gravity"`

	// Навигация. Алгоритма поиска пути в ядре нет:
	// вейпоинты кладет вызывающий.
	TargetPosition  *Vec3   `json:"targetPosition,omitempty"`
	PathToTarget    []Vec3  `json:"pathToTarget,omitempty"`
	AvoidanceRadius float64 `json:"avoidanceRadius"`
}

// BaseSpeed возвращает базовую скорость для текущего режима.
func (m *MovementComponent) BaseSpeed() float64 {
	switch m.CurrentMode {
	case LocomotionRun:
		return m.RunSpeed
	case LocomotionSwim:
		return m.SwimSpeed
	case LocomotionClimb:
		return m.ClimbSpeed
	default:
		return m.WalkSpeed
	}
}

// EffectiveSpeed - базовая скорость с учетом итогового множителя.
func (m *MovementComponent) EffectiveSpeed() float64 {
	return m.BaseSpeed() * m.SpeedMultiplier
}
