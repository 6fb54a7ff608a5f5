package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/env"
	"rivermarsh-server/pkg/logger"
)

// maxArmor - потолок суммарной брони. Урон смягчается максимум
// на 95%, в ноль не уходит никогда.
const maxArmor = 0.95

// AttackOutcome - результат одного разрешенного удара.
type AttackOutcome struct {
	Dodged         bool    `json:"dodged"`
	Damage         float64 `json:"damage"` // итоговый урон после брони
	DefenderHealth float64 `json:"defenderHealth"`
	DefenderDied   bool    `json:"defenderDied"`
	Knockback      float64 `json:"knockback"`
	StunApplied    float64 `json:"stunApplied"`
}

// ResolveAttack разрешает один удар attacker -> defender.
//
// Предусловия проверяет резолвер и падает громко: вызывающий (движок AI
// или мост ввода) обязан проверить дистанцию и выносливость заранее,
// ошибка здесь означает баг вызывающего. Кулдауны резолвер не ведет -
// он без состояния, один вызов = один удар.
func ResolveAttack(attacker, defender *domain.Entity, attack *domain.Attack, world env.State, rng *rand.Rand, now float64) (AttackOutcome, error) {
	ac := attacker.Combat
	dc := defender.Combat

	if !ac.HasStamina(attack.StaminaCost) {
		return AttackOutcome{}, domain.ErrInsufficientStamina
	}
	dist := attacker.Position().DistanceTo(defender.Position())
	if dist > attack.Range {
		return AttackOutcome{}, domain.ErrOutOfRange
	}

	// Выносливость тратится и на промах: уклонение цели удар не возвращает
	cost := attack.StaminaCost * (1 - ac.StaminaCostReduction)
	ac.SpendStamina(cost)
	ac.LastAttackTime = now
	ac.IsInCombat = true
	dc.IsInCombat = true

	if rng.Float64() < dc.DodgeChance {
		logger.System("combat").WithFields(logrus.Fields{
			"attacker": attacker.ID,
			"defender": defender.ID,
			"attack":   attack.Name,
		}).Debug("Attack dodged")
		return AttackOutcome{Dodged: true, DefenderHealth: dc.Health}, nil
	}

	raw := attack.Damage * ac.DamageBonus * elementalModifier(attack, world)

	armor := dc.Armor + dc.ArmorBonus
	if armor < 0 {
		armor = 0
	}
	if armor > maxArmor {
		armor = maxArmor
	}
	final := raw * (1 - armor)

	died := dc.TakeDamage(final)

	// Отброс и стан броней не смягчаются
	applyKnockback(attacker, defender, attack.Knockback)
	if attack.StunDur > dc.StunRemaining {
		dc.StunRemaining = attack.StunDur
	}

	logger.System("combat").WithFields(logrus.Fields{
		"attacker": attacker.ID,
		"defender": defender.ID,
		"attack":   attack.Name,
		"damage":   final,
		"died":     died,
	}).Debug("Attack resolved")

	return AttackOutcome{
		Damage:         final,
		DefenderHealth: dc.Health,
		DefenderDied:   died,
		Knockback:      attack.Knockback,
		StunApplied:    attack.StunDur,
	}, nil
}

// elementalModifier - модификатор окружения для стихийных атак.
// Непомеченные атаки погодой не модулируются.
func elementalModifier(attack *domain.Attack, world env.State) float64 {
	switch attack.Elemental {
	case "fire":
		return world.Weather.FireEffectiveness
	default:
		return 1.0
	}
}

// applyKnockback отталкивает цель от атакующего на dist метров.
// Совпадающие позиции - отброса нет (направление не определено).
func applyKnockback(attacker, defender *domain.Entity, dist float64) {
	if dist <= 0 || defender.Movement == nil || attacker.Movement == nil {
		return
	}
	dir := defender.Position().Sub(attacker.Position()).Normalized()
	if dir.Length() == 0 {
		return
	}
	defender.Movement.Position = defender.Movement.Position.Add(dir.Scale(dist))
}
