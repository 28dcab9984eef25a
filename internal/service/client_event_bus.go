package service

import (
	"sync"

	"github.com/MKhiriev/dcms-sync/models"
)

type subscription struct {
	id      uint64
	handler models.EventHandler
}

type eventBus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[models.Collection][]subscription
}

// NewEventBus returns an empty synchronous [EventBus].
//
// Handlers run on the publishing goroutine in subscription order, so a slow
// handler delays the sync cycle that published the event. Handlers may
// subscribe or unsubscribe from inside a callback.
func NewEventBus() EventBus {
	return &eventBus{subs: make(map[models.Collection][]subscription)}
}

func (b *eventBus) Subscribe(c models.Collection, handler models.EventHandler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[c] = append(b.subs[c], subscription{id: id, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(c, id) })
	}
}

func (b *eventBus) unsubscribe(c models.Collection, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[c]
	for i, s := range subs {
		if s.id == id {
			b.subs[c] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[c]) == 0 {
		delete(b.subs, c)
	}
}

// Publish snapshots the handler list so a handler may unsubscribe itself.
func (b *eventBus) Publish(event models.Event) {
	b.mu.RLock()
	handlers := make([]models.EventHandler, 0, len(b.subs[event.Collection]))
	for _, s := range b.subs[event.Collection] {
		handlers = append(handlers, s.handler)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
