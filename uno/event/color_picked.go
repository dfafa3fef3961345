package event

import (
	"sync"

	"github.com/uno-online/server/uno/card/color"
)

var ColorPicked = &colorPickedEmitter{}

type ColorPickedPayload struct {
	PlayerID   int64
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	mu        sync.RWMutex
	listeners []ColorPickedListener
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *colorPickedEmitter) RemoveListener(listener ColorPickedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	e.mu.RLock()
	listeners := make([]ColorPickedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnColorPicked(payload)
	}
}
