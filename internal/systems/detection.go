package systems

import (
	"math"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
)

// Два независимых канала обнаружения: зрение (дистанция + конус
// обзора) и слух (только дистанция, без конуса). Срабатывание
// любого из них считается обнаружением.

// EffectiveDetectionRadius - радиус зрения с учетом окружения.
// Погода режет видимость всем, добыча насторожена на рассвете и закате.
func EffectiveDetectionRadius(e *domain.Entity, world env.State) float64 {
	r := e.AI.DetectionRadius * world.Weather.VisibilityMod
	if e.Species != nil && e.Species.Category == domain.CategoryPrey {
		r *= world.Time.PreyAlertness
	}
	return r
}

// CanSee - видит ли наблюдатель цель: дистанция в пределах радиуса
// и цель внутри конуса обзора (сравнение с косинусом полуугла).
func CanSee(observer, target *domain.Entity, radius float64) bool {
	if observer.Movement == nil || target.Movement == nil {
		return false
	}
	to := target.Position().Sub(observer.Position())
	dist := to.Length()
	if dist > radius {
		return false
	}
	if dist == 0 {
		return true
	}

	forward := observer.Movement.Rotation.Forward().Normalized()
	halfFOV := observer.AI.FieldOfView / 2 * math.Pi / 180
	return forward.Dot(to.Normalized()) >= math.Cos(halfFOV)
}

// CanHear - слышит ли наблюдатель цель. Конус не применяется:
// уши работают во все стороны. Погодное приглушение сужает радиус.
func CanHear(observer, target *domain.Entity, world env.State) bool {
	if observer.Movement == nil || target.Movement == nil {
		return false
	}
	radius := observer.AI.HearingRadius * (1 - world.Weather.SoundMuffling*0.5)
	return observer.Position().DistanceTo(target.Position()) <= radius
}

// Detects - обнаруживает ли наблюдатель цель любым каналом.
func Detects(observer, target *domain.Entity, world env.State) bool {
	return CanSee(observer, target, EffectiveDetectionRadius(observer, world)) ||
		CanHear(observer, target, world)
}
