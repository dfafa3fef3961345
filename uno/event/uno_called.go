package event

import "sync"

var UnoCalled = &unoCalledEmitter{}

type UnoCalledPayload struct {
	PlayerID   int64
	PlayerName string
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}

type unoCalledEmitter struct {
	mu        sync.RWMutex
	listeners []UnoCalledListener
}

func (e *unoCalledEmitter) AddListener(listener UnoCalledListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *unoCalledEmitter) RemoveListener(listener UnoCalledListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *unoCalledEmitter) Emit(payload UnoCalledPayload) {
	e.mu.RLock()
	listeners := make([]UnoCalledListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnUnoCalled(payload)
	}
}
