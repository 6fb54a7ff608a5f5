package network

import (
	"sync"

	"rivermarsh-server/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Подписчик - клиентская сессия шлюза, не сущность: один снимок мира
// уходит всем, личные ответы (ошибки, INIT) идут адресно.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerMessage
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
	}
}

// Register создает личный канал для сессии
func (b *Broadcaster) Register(sessionID string) chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, 100)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет сообщение конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
			// Медленный клиент теряет кадр, симуляцию не тормозим
		}
	}
}

// Broadcast отправляет всем (снимки мира и события)
func (b *Broadcaster) Broadcast(msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, жива ли сессия
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
