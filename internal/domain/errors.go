package domain

import "errors"

// Ошибки ядра симуляции. Разделены по классам (см. какие ошибки
// восстановимы, а какие означают баг в данных или в фабриках).
var (
	// ErrSpeciesNotFound - запрошен неизвестный вид. Восстановимо:
	// вызывающий пропускает спавн.
	ErrSpeciesNotFound = errors.New("species not found")

	// ErrEntityNotFound - сущность не найдена в мире (цель умерла).
	// Восстановимо: AI откатывается в wander/idle.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDuplicateID - повторное добавление ID в мир. Не должно случаться
	// при корректной генерации ID; означает баг в фабрике.
	ErrDuplicateID = errors.New("duplicate entity id")

	// ErrOutOfRange - атака по цели вне радиуса удара.
	// Вызывающий обязан проверять дистанцию до вызова резолвера.
	ErrOutOfRange = errors.New("target out of attack range")

	// ErrInsufficientStamina - не хватает выносливости на атаку.
	// Вызывающий обязан проверять стамину до вызова резолвера.
	ErrInsufficientStamina = errors.New("insufficient stamina")

	// ErrSlotOccupied - в слот экипировки уже что-то надето.
	ErrSlotOccupied = errors.New("equipment slot occupied")

	// ErrSlotMismatch - предмет не подходит к указанному слоту.
	ErrSlotMismatch = errors.New("item does not fit equipment slot")

	// ErrResourceDepleted - ресурс пуст и ждет респавна.
	ErrResourceDepleted = errors.New("resource depleted")
)
