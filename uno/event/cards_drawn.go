package event

import "sync"

var CardsDrawn = &cardsDrawnEmitter{}

type CardsDrawnPayload struct {
	PlayerID   int64
	PlayerName string
	Amount     int
	Penalty    bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	mu        sync.RWMutex
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) RemoveListener(listener CardsDrawnListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	e.mu.RLock()
	listeners := make([]CardsDrawnListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnCardsDrawn(payload)
	}
}
