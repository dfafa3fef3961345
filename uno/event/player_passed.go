package event

import "sync"

var PlayerPassed = &playerPassedEmitter{}

type PlayerPassedPayload struct {
	PlayerID   int64
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	mu        sync.RWMutex
	listeners []PlayerPassedListener
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *playerPassedEmitter) RemoveListener(listener PlayerPassedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	e.mu.RLock()
	listeners := make([]PlayerPassedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnPlayerPassed(payload)
	}
}
