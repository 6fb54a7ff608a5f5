package systems

import "rivermarsh-server/internal/domain"

// Порог скорости, ниже которого существо считается стоящим.
const idleSpeedEps = 0.01

// SyncAnimation выводит текущую анимацию из состояния существа и
// продвигает время проигрывания. Порядок веток - приоритет: смерть
// перебивает оглушение, оглушение перебивает атаку и движение.
// Проигрывает рендер, симуляция только выставляет ID.
func SyncAnimation(e *domain.Entity, dt float64) {
	a := e.Animation
	if a == nil {
		return
	}

	a.AnimationTime += dt * a.AnimationSpeed
	if a.BlendProgress < 1 && a.BlendDuration > 0 {
		a.BlendProgress += dt / a.BlendDuration
		if a.BlendProgress > 1 {
			a.BlendProgress = 1
		}
	}

	set := a.Animations
	switch {
	case e.Combat != nil && e.Combat.Health <= 0:
		a.Play(set.Death)
		a.IsLooping = false

	case e.Combat != nil && e.Combat.StunRemaining > 0:
		a.Play(set.Hit)

	case e.AI != nil && e.AI.CurrentState == domain.AIStateAttack && len(set.Attack) > 0:
		a.Play(set.Attack[0])

	case e.Movement != nil && e.Movement.Velocity.Length() > idleSpeedEps:
		switch e.Movement.CurrentMode {
		case domain.LocomotionSwim:
			a.Play(set.Swim)
		case domain.LocomotionRun:
			a.Play(set.Run)
		case domain.LocomotionClimb:
			a.Play(set.Walk)
		default:
			a.Play(set.Walk)
		}

	default:
		// Вариации простоя не дергаем каждый тик: уже играющая
		// idle-анимация остается
		if len(set.Idle) > 0 && !containsAnim(set.Idle, a.CurrentAnimation) {
			a.Play(set.Idle[0])
			a.IsLooping = true
		}
	}
}

func containsAnim(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
