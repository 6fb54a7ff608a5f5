package systems

import (
	"fmt"

	"rivermarsh-server/internal/domain"
)

// Агрегатор экипировки. Кэш суммарных бонусов пересчитывается
// синхронно внутри Equip/Unequip: читатели (боевой резолвер,
// движение) никогда не видят устаревшие значения.

// maxStaminaCostReduction - атаки никогда не бывают бесплатными.
const maxStaminaCostReduction = 0.95

// Equip надевает предмет в слот. Слот должен совпадать со слотом
// предмета и быть свободным.
func Equip(e *domain.Entity, item *domain.EquipmentItem) error {
	if e.Equipment == nil {
		return fmt.Errorf("entity %s has no equipment component", e.ID)
	}
	if item.Slot == "" {
		return domain.ErrSlotMismatch
	}
	if !validSlot(item.Slot) {
		return fmt.Errorf("slot %q: %w", item.Slot, domain.ErrSlotMismatch)
	}
	if e.Equipment.Equipped[item.Slot] != nil {
		return fmt.Errorf("slot %q: %w", item.Slot, domain.ErrSlotOccupied)
	}

	e.Equipment.Equipped[item.Slot] = item
	RecomputeEquipment(e)
	return nil
}

// Unequip снимает предмет из слота. Пустой слот - no-op, nil.
func Unequip(e *domain.Entity, slot domain.EquipSlot) *domain.EquipmentItem {
	if e.Equipment == nil {
		return nil
	}
	item := e.Equipment.Equipped[slot]
	if item == nil {
		return nil
	}
	delete(e.Equipment.Equipped, slot)
	RecomputeEquipment(e)
	return item
}

// RecomputeEquipment пересчитывает кэш суммарных бонусов с нуля и
// проталкивает боевые бонусы в CombatComponent. Правила комбинирования:
// аддитивные поля суммируются, множитель урона перемножается от 1.0,
// скидка на выносливость суммируется с потолком 0.95.
func RecomputeEquipment(e *domain.Entity) {
	eq := e.Equipment
	if eq == nil {
		return
	}

	var health, stamina, armor, speed, costReduction float64
	damage := 1.0

	for _, item := range eq.Equipped {
		if item == nil {
			continue
		}
		health += item.HealthBonus
		stamina += item.StaminaBonus
		armor += item.ArmorBonus
		speed += item.SpeedBonus
		costReduction += item.StaminaCostReduction
		if item.DamageBonus > 0 {
			damage *= item.DamageBonus
		}
	}

	if costReduction > maxStaminaCostReduction {
		costReduction = maxStaminaCostReduction
	}
	if costReduction < 0 {
		costReduction = 0
	}

	eq.TotalHealthBonus = health
	eq.TotalStaminaBonus = stamina
	eq.TotalArmorBonus = armor
	eq.TotalSpeedBonus = 1.0 + speed
	eq.TotalDamageBonus = damage
	eq.TotalStaminaCostReduction = costReduction

	// Боевые бонусы пишет только агрегатор
	if e.Combat != nil {
		e.Combat.DamageBonus = damage
		e.Combat.ArmorBonus = armor
		e.Combat.StaminaCostReduction = costReduction
	}
}

func validSlot(slot domain.EquipSlot) bool {
	for _, s := range domain.AllEquipSlots {
		if s == slot {
			return true
		}
	}
	return false
}
