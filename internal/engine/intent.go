package engine

import (
	"fmt"

	"rivermarsh-server/internal/domain"
	"rivermarsh-server/internal/systems"
	"rivermarsh-server/pkg/api"
)

// Мост ввода. Намерения клиента пишутся прямо в компоненты управляемой
// сущности, минуя движок решений AI: игрок - такая же сущность, как
// остальные, все дальнейшие системы (бой, движение) работают одинаково.

// Как далеко вперед по направлению ввода ставится точка назначения.
// Клиент шлет намерения каждый кадр ввода, точка постоянно уползает
// вперед и существо идет, пока игрок держит стик.
const intentStride = 2.0

// Possess отдает сущность под управление сессии. AI для нее
// замораживается до Release.
func (s *Simulation) Possess(entityID, controllerID string) error {
	e := s.World.Get(entityID)
	if e == nil {
		return fmt.Errorf("possess %s: %w", entityID, domain.ErrEntityNotFound)
	}
	if e.ControllerID != "" && e.ControllerID != controllerID {
		return fmt.Errorf("possess %s: entity already controlled", entityID)
	}
	if !e.IsAICapable() {
		return fmt.Errorf("possess %s: entity is not a creature", entityID)
	}
	e.ControllerID = controllerID
	e.AI.CurrentState = domain.AIStateIdle
	e.AI.Target = ""
	e.Movement.TargetPosition = nil
	s.log.WithField("entity", entityID).Info("Entity possessed")
	return nil
}

// Release возвращает сущность AI. Зовется при отключении клиента.
func (s *Simulation) Release(entityID string) {
	e := s.World.Get(entityID)
	if e == nil {
		return
	}
	e.ControllerID = ""
	if e.AI != nil {
		// Пусть подумает на ближайшем тике
		e.AI.NextDecisionTime = s.Now
	}
	s.log.WithField("entity", entityID).Info("Entity released to AI")
}

// ApplyIntent применяет намерения ввода к управляемой сущности.
func (s *Simulation) ApplyIntent(entityID string, in *api.Intent) error {
	e := s.World.Get(entityID)
	if e == nil {
		return fmt.Errorf("intent for %s: %w", entityID, domain.ErrEntityNotFound)
	}
	if !e.IsPlayerControlled() {
		return fmt.Errorf("intent for %s: entity not player controlled", entityID)
	}
	mv := e.Movement

	dir := domain.Vec3{X: in.Move[0], Y: 0, Z: in.Move[2]}
	if dir.Length() > 0 {
		target := e.Position().Add(dir.Normalized().Scale(intentStride))
		mv.TargetPosition = &target
		mv.PathToTarget = nil
		if in.Sprint {
			mv.CurrentMode = domain.LocomotionRun
		} else {
			mv.CurrentMode = domain.LocomotionWalk
		}
	} else {
		mv.TargetPosition = nil
		mv.Velocity = domain.Vec3{}
	}

	if in.Attack && in.TargetID != "" {
		s.playerAttack(e, in.TargetID)
	}
	return nil
}

// playerAttack бьет выбранную цель через тот же резолвер и те же
// кулдауны, что и AI. Молчаливый промах по предусловиям: клиент
// увидит отсутствие события атаки.
func (s *Simulation) playerAttack(attacker *domain.Entity, targetID string) {
	target := s.World.Get(targetID)
	if target == nil || !target.IsCombatant() || !target.IsAlive() {
		return
	}
	if _, ok := s.tryAttack(attacker, target); ok {
		attacker.AI.Target = targetID
	}
}

// EquipItem надевает предмет на сущность и пересчитывает бонусы.
func (s *Simulation) EquipItem(entityID string, item *domain.EquipmentItem) error {
	e := s.World.Get(entityID)
	if e == nil {
		return fmt.Errorf("equip for %s: %w", entityID, domain.ErrEntityNotFound)
	}
	return systems.Equip(e, item)
}

// UnequipItem снимает предмет из слота. Возвращает снятый предмет.
func (s *Simulation) UnequipItem(entityID string, slot domain.EquipSlot) (*domain.EquipmentItem, error) {
	e := s.World.Get(entityID)
	if e == nil {
		return nil, fmt.Errorf("unequip for %s: %w", entityID, domain.ErrEntityNotFound)
	}
	return systems.Unequip(e, slot), nil
}

// GatherFrom собирает с ресурса от имени сущности.
func (s *Simulation) GatherFrom(entityID, resourceID string) ([]domain.DropItem, error) {
	e := s.World.Get(entityID)
	if e == nil {
		return nil, fmt.Errorf("gather by %s: %w", entityID, domain.ErrEntityNotFound)
	}
	res := s.World.Get(resourceID)
	if res == nil || !res.IsGatherable() {
		return nil, fmt.Errorf("gather %s: %w", resourceID, domain.ErrEntityNotFound)
	}
	if e.Position().DistanceTo(res.Position()) > gatherReach {
		return nil, fmt.Errorf("gather %s: %w", resourceID, domain.ErrOutOfRange)
	}
	drops, err := systems.Harvest(res, entityID, s.Rng)
	if err != nil {
		return nil, err
	}
	s.pushEvent(api.GameEvent{
		Kind:     "gather",
		EntityID: entityID,
		TargetID: resourceID,
		Value:    float64(len(drops)),
	})
	return drops, nil
}

// Радиус, с которого можно собирать ресурс.
const gatherReach = 3.0
