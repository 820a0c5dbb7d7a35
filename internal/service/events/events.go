package events

import (
	"sync"

	"tasknotes-service/internal/model"
)

// subscriberBuffer размер буфера канала подписчика
const subscriberBuffer = 10

// Publisher принимает события об изменениях коллекций
type Publisher interface {
	Publish(event model.Event)
}

// Subscriber выдает каналы событий подписчикам
type Subscriber interface {
	Subscribe() chan model.Event
	Unsubscribe(ch chan model.Event)
}

// Broker управляет подписчиками на события изменения задач и заметок
type Broker struct {
	subscribers map[chan model.Event]struct{}
	mu          sync.RWMutex
}

var (
	_ Publisher  = (*Broker)(nil)
	_ Subscriber = (*Broker)(nil)
)

// NewBroker создает новый экземпляр Broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[chan model.Event]struct{}),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения событий
func (b *Broker) Subscribe() chan model.Event {
	ch := make(chan model.Event, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (b *Broker) Unsubscribe(ch chan model.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; ok {
		close(ch)
		delete(b.subscribers, ch)
	}
}

// Publish отправляет событие всем подписчикам.
// Если канал подписчика переполнен, событие для него пропускается.
func (b *Broker) Publish(event model.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribers возвращает текущее число подписчиков
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
