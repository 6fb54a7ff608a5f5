package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
	"rivermarsh-server/pkg/logger"
)

// Движок решений AI. Вызывается не каждый кадр, а когда у существа
// настает NextDecisionTime. Лестница приоритетов: flee > hunt/attack >
// alert > wander > idle. Промах по любой ступени - обычный поток
// управления, не ошибка.

const (
	decisionInterval = 0.5 // секунды между переоценками
	decisionJitter   = 0.5 // разброс, чтобы стая не думала синхронно

	// threatMemoryDur - сколько секунд существо помнит угрозу
	// (в том числе полученную от сородичей по тревоге).
	threatMemoryDur = 10.0

	// fleeDistance - как далеко от угрозы выбирается точка бегства.
	fleeDistance = 15.0
)

// Decide прогоняет одну переоценку состояния для существа.
// Возвращает выбранное состояние (для логов и тестов).
func Decide(e *domain.Entity, world *domain.World, ws env.State, rng *rand.Rand, now float64) domain.AIState {
	ai := e.AI
	ai.NextDecisionTime = now + decisionInterval + rng.Float64()*decisionJitter

	threat := nearestThreat(e, world, ws)
	if threat != nil {
		ai.RememberThreat(threat.Position(), now)
		shareThreatWithPack(e, world, threat.Position(), now)
	}

	// 1. Бегство: здоровье на пороге или ниже, угроза обнаружена.
	// Бесстрашные не бегут никогда.
	if threat != nil && ai.Personality != domain.PersonalityFearless &&
		e.Combat.HealthFraction() <= ai.FleeThreshold {
		from := threat.Position()
		ai.FleeFrom = &from
		ai.Target = ""
		setFleeTarget(e, from)
		changeState(e, domain.AIStateFlee, now)
		return ai.CurrentState
	}
	ai.FleeFrom = nil

	// 2. Продолжение охоты: цель жива - преследуем или бьем.
	if ai.CurrentState == domain.AIStateHunt || ai.CurrentState == domain.AIStateAttack {
		if target := validTarget(world, ai.Target); target != nil {
			pursue(e, target, now)
			return ai.CurrentState
		}
		ai.Target = "" // цель умерла или пропала - откат по лестнице
	}

	// 3. Новая охота: бросок агрессии против обстановки.
	if prey := nearestPrey(e, world, ws); prey != nil && rng.Float64() < huntThreshold(e, ws) {
		ai.Target = prey.ID
		pursue(e, prey, now)
		return ai.CurrentState
	}

	// 4. Свежая память об угрозе без прямого контакта - настороженность.
	if threat == nil && ai.LastThreatPosition != nil && now-ai.LastThreatTime < threatMemoryDur {
		if e.Movement != nil {
			e.Movement.TargetPosition = nil
		}
		changeState(e, domain.AIStateAlert, now)
		return ai.CurrentState
	}

	// 5. Патруль.
	if len(ai.PatrolPoints) > 0 {
		advancePatrol(e)
		changeState(e, domain.AIStateWander, now)
		return ai.CurrentState
	}

	// 6. Нечего делать.
	if e.Movement != nil {
		e.Movement.TargetPosition = nil
	}
	changeState(e, domain.AIStateIdle, now)
	return ai.CurrentState
}

// huntThreshold - вероятность начать охоту на этой переоценке.
// База - агрессия архетипа; ночь усиливает хищников, биом добавляет
// смещение за плотность патрулей и укрытия для засад.
func huntThreshold(e *domain.Entity, ws env.State) float64 {
	t := e.AI.AggressionLevel

	if e.Species != nil && e.Species.Category == domain.CategoryPredator &&
		ws.Time.Phase == env.PhaseNight {
		t *= ws.Time.NocturnalBonus
	}

	t += (ws.Biome.PredatorPatrolChance - 0.5) * 0.2
	t += ws.Biome.StealthBonus * 0.1

	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// nearestThreat - ближайший обнаруженный хищник (кроме себя и своей стаи).
func nearestThreat(e *domain.Entity, world *domain.World, ws env.State) *domain.Entity {
	return nearestDetected(e, world, ws, func(c *domain.Entity) bool {
		if c.Species == nil || c.Species.Category != domain.CategoryPredator {
			return false
		}
		if e.AI.PackID != "" && c.AI != nil && c.AI.PackID == e.AI.PackID {
			return false
		}
		return true
	})
}

// nearestPrey - ближайшая обнаруженная добыча. Добыча сама не охотится.
func nearestPrey(e *domain.Entity, world *domain.World, ws env.State) *domain.Entity {
	if e.Species == nil || e.Species.Category != domain.CategoryPredator {
		return nil
	}
	return nearestDetected(e, world, ws, func(c *domain.Entity) bool {
		return c.Species != nil && c.Species.Category == domain.CategoryPrey
	})
}

func nearestDetected(e *domain.Entity, world *domain.World, ws env.State, accept func(*domain.Entity) bool) *domain.Entity {
	var best *domain.Entity
	bestDist := 0.0

	for _, c := range world.Combatants() {
		if c.ID == e.ID || !c.IsAlive() || !accept(c) {
			continue
		}
		if !Detects(e, c, ws) {
			continue
		}
		d := e.Position().DistanceTo(c.Position())
		if best == nil || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// validTarget возвращает живую цель или nil.
func validTarget(world *domain.World, id string) *domain.Entity {
	if id == "" {
		return nil
	}
	t := world.Get(id)
	if t == nil || !t.IsAlive() || !t.IsCombatant() {
		return nil
	}
	return t
}

// pursue переводит существо в hunt или attack в зависимости от того,
// достает ли до цели лучшая атака.
func pursue(e *domain.Entity, target *domain.Entity, now float64) {
	dist := e.Position().DistanceTo(target.Position())

	if e.Combat.BestAttackInRange(dist) != nil {
		if e.Movement != nil {
			e.Movement.TargetPosition = nil // стоим и бьем
		}
		changeState(e, domain.AIStateAttack, now)
		return
	}

	if e.Movement != nil {
		pos := target.Position()
		e.Movement.TargetPosition = &pos
		e.Movement.CurrentMode = domain.LocomotionRun
	}
	changeState(e, domain.AIStateHunt, now)
}

// setFleeTarget выбирает точку бегства: прочь от угрозы.
// Бегство идет ОТ точки, а не от сущности - преследования в обратную
// сторону нет.
func setFleeTarget(e *domain.Entity, threat domain.Vec3) {
	if e.Movement == nil {
		return
	}
	away := e.Position().Sub(threat).Normalized()
	if away.Length() == 0 {
		away = domain.Vec3{X: 1}
	}
	dest := e.Position().Add(away.Scale(fleeDistance))
	e.Movement.TargetPosition = &dest
	e.Movement.CurrentMode = domain.LocomotionRun
}

// advancePatrol ведет существо по кольцу патрульных точек.
func advancePatrol(e *domain.Entity) {
	ai := e.AI
	if e.Movement == nil || len(ai.PatrolPoints) == 0 {
		return
	}

	point := ai.PatrolPoints[ai.CurrentPatrolIndex%len(ai.PatrolPoints)]
	if e.Position().DistanceTo(point) < 1.0 {
		ai.CurrentPatrolIndex = (ai.CurrentPatrolIndex + 1) % len(ai.PatrolPoints)
		point = ai.PatrolPoints[ai.CurrentPatrolIndex]
	}

	dest := point
	e.Movement.TargetPosition = &dest
	e.Movement.CurrentMode = domain.LocomotionWalk
}

// shareThreatWithPack передает память об угрозе сородичам в радиусе
// слышимости (тревожный крик). Прямая видимость соседям не нужна.
func shareThreatWithPack(e *domain.Entity, world *domain.World, threat domain.Vec3, now float64) {
	if e.AI.PackID == "" {
		return
	}

	for _, mate := range world.AICreatures() {
		if mate.ID == e.ID || mate.AI.PackID != e.AI.PackID {
			continue
		}
		if e.Position().DistanceTo(mate.Position()) > e.AI.HearingRadius {
			continue
		}
		mate.AI.RememberThreat(threat, now)
	}
}

func changeState(e *domain.Entity, state domain.AIState, now float64) {
	if e.AI.CurrentState != state {
		logger.System("ai").WithFields(logrus.Fields{
			"id":   e.ID,
			"from": e.AI.CurrentState,
			"to":   state,
		}).Debug("State change")
	}
	e.AI.ChangeState(state, now)
}
