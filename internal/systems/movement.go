package systems

import (
	"math"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
)

// Интеграция движения. Поиска пути в ядре нет: вейпоинты кладет
// вызывающий (AI ставит цель, патруль - точки маршрута).

// arrivalRadius - на каком расстоянии точка считается достигнутой.
const arrivalRadius = 0.1

// UpdateSpeedMultiplier пересчитывает итоговый множитель скорости:
// произведение модификатора биома и бонуса экипировки.
func UpdateSpeedMultiplier(e *domain.Entity, ws env.State) {
	if e.Movement == nil {
		return
	}
	m := ws.Biome.MovementSpeedMod
	if e.Equipment != nil && e.Equipment.TotalSpeedBonus > 0 {
		m *= e.Equipment.TotalSpeedBonus
	}
	e.Movement.SpeedMultiplier = m
}

// Integrate продвигает сущность к цели на один шаг dt.
// Станенные существа стоят. Вода принудительно переключает на плавание.
func Integrate(e *domain.Entity, dt float64) {
	mv := e.Movement
	if mv == nil || dt <= 0 {
		return
	}
	if e.Combat != nil && e.Combat.StunRemaining > 0 {
		mv.Velocity = domain.Vec3{}
		return
	}

	if mv.IsInWater {
		mv.CurrentMode = domain.LocomotionSwim
	}

	dest, ok := nextWaypoint(mv)
	if !ok {
		mv.Velocity = domain.Vec3{}
		return
	}

	to := dest.Sub(mv.Position)
	dist := to.Length()
	if dist <= arrivalRadius {
		consumeWaypoint(mv)
		mv.Velocity = domain.Vec3{}
		return
	}

	dir := to.Normalized()
	speed := mv.EffectiveSpeed()
	step := speed * dt
	if step > dist {
		step = dist
	}

	mv.Velocity = dir.Scale(speed)
	mv.Position = mv.Position.Add(dir.Scale(step))
	mv.Rotation = yawToward(dir)
}

// nextWaypoint - текущая точка назначения: голова пути, иначе цель.
func nextWaypoint(mv *domain.MovementComponent) (domain.Vec3, bool) {
	if len(mv.PathToTarget) > 0 {
		return mv.PathToTarget[0], true
	}
	if mv.TargetPosition != nil {
		return *mv.TargetPosition, true
	}
	return domain.Vec3{}, false
}

// consumeWaypoint снимает достигнутую точку.
func consumeWaypoint(mv *domain.MovementComponent) {
	if len(mv.PathToTarget) > 0 {
		mv.PathToTarget = mv.PathToTarget[1:]
		return
	}
	mv.TargetPosition = nil
}

// yawToward - кватернион поворота вокруг Y в направлении движения.
// Вертикальная составляющая игнорируется.
func yawToward(dir domain.Vec3) domain.Quat {
	yaw := math.Atan2(dir.X, dir.Z)
	return domain.Quat{
		Y: math.Sin(yaw / 2),
		W: math.Cos(yaw / 2),
	}
}
