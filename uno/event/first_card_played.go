package event

import (
	"sync"

	"github.com/uno-online/server/uno/card"
)

var FirstCardPlayed = &firstCardPlayedEmitter{}

type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	mu        sync.RWMutex
	listeners []FirstCardPlayedListener
}

func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *firstCardPlayedEmitter) RemoveListener(listener FirstCardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	e.mu.RLock()
	listeners := make([]FirstCardPlayedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnFirstCardPlayed(payload)
	}
}
