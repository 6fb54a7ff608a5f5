package domain

import "sync"

// World - авторитетное хранилище живых сущностей.
// Один мьютекс на все хранилище: сущности дешево копируются по указателю,
// запросы редки относительно частоты тиков.
//
// Query возвращает снимок на момент вызова (point-in-time). Реактивных
// подписок нет: системы пересчитывают запросы каждый тик.
//
// Обходы идут в порядке вставки, не в порядке map: системы потребляют
// общий rand.Rand, и порядок обхода обязан совпадать между запусками
// с одним сидом.
type World struct {
	mu       sync.Mutex
	registry map[string]*Entity
	order    []*Entity
}

// NewWorld создает пустой мир.
func NewWorld() *World {
	return &World{
		registry: make(map[string]*Entity),
	}
}

// Add добавляет сущность. Повторный ID - ошибка (защита от багов фабрик).
func (w *World) Add(e *Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.registry[e.ID]; exists {
		return ErrDuplicateID
	}
	w.registry[e.ID] = e
	w.order = append(w.order, e)
	return nil
}

// Remove удаляет сущность по ID. Отсутствующий ID - no-op.
func (w *World) Remove(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.registry[id]; !exists {
		return
	}
	delete(w.registry, id)
	for i, e := range w.order {
		if e.ID == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Get возвращает сущность или nil (цель могла умереть в этом же тике).
func (w *World) Get(id string) *Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry[id]
}

// Len - количество живых сущностей.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.registry)
}

// Query возвращает снимок сущностей, удовлетворяющих предикату.
// Слайс принадлежит вызывающему, последующие Add/Remove его не меняют.
func (w *World) Query(pred func(*Entity) bool) []*Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var result []*Entity
	for _, e := range w.order {
		if pred(e) {
			result = append(result, e)
		}
	}
	return result
}

// All - снимок всех сущностей.
func (w *World) All() []*Entity {
	return w.Query(func(*Entity) bool { return true })
}

// AICreatures - все сущности, способные принимать решения.
func (w *World) AICreatures() []*Entity {
	return w.Query((*Entity).IsAICapable)
}

// Combatants - все боеспособные сущности.
func (w *World) Combatants() []*Entity {
	return w.Query((*Entity).IsCombatant)
}

// Resources - все собираемые ресурсы.
func (w *World) Resources() []*Entity {
	return w.Query((*Entity).IsGatherable)
}

// Clear опустошает мир. Используется тестами и сбросом мира.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.registry = make(map[string]*Entity)
	w.order = nil
}
