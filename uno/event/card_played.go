package event

import (
	"sync"

	"github.com/uno-online/server/uno/card"
)

var CardPlayed = &cardPlayedEmitter{}

type CardPlayedPayload struct {
	PlayerID   int64
	PlayerName string
	Card       card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

// Emitters are process-wide: one table attaches and detaches its listener
// while other tables emit, so the listener slice is mutex-guarded. Emit
// calls listeners on a snapshot, outside the lock.
type cardPlayedEmitter struct {
	mu        sync.RWMutex
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) RemoveListener(listener CardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.mu.RLock()
	listeners := make([]CardPlayedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnCardPlayed(payload)
	}
}
