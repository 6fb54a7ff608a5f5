package engine

import (
	"container/heap"

	"rivermarsh-server/internal/domain"
)

// DecisionItem обертка для элемента очереди приоритетов
type DecisionItem struct {
	Value    *domain.Entity // Сама сущность
	Priority float64        // Приоритет (NextDecisionTime). Чем меньше, тем раньше переоценка.
	Index    int            // Индекс в куче (нужен для update)
}

// DecisionQueue реализует heap.Interface и хранит DecisionItems.
// Симуляция снимает с вершины существ, которым пора думать, вместо
// перебора всего мира каждый тик.
type DecisionQueue []*DecisionItem

func (pq DecisionQueue) Len() int { return len(pq) }

func (pq DecisionQueue) Less(i, j int) bool {
	// Мы хотим MinHeap, поэтому возвращаем true, если i < j
	return pq[i].Priority < pq[j].Priority
}

func (pq DecisionQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *DecisionQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*DecisionItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *DecisionQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// Update изменяет приоритет элемента в очереди
func (pq *DecisionQueue) Update(item *DecisionItem, priority float64) {
	item.Priority = priority
	heap.Fix(pq, item.Index)
}
