package event

import "sync"

var RoundEnded = &roundEndedEmitter{}

type RoundEndedPayload struct {
	RoundID    string
	WinnerID   int64
	WinnerName string
	Points     int
	GameWon    bool
}

type RoundEndedListener interface {
	OnRoundEnded(RoundEndedPayload)
}

type roundEndedEmitter struct {
	mu        sync.RWMutex
	listeners []RoundEndedListener
}

func (e *roundEndedEmitter) AddListener(listener RoundEndedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *roundEndedEmitter) RemoveListener(listener RoundEndedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for index, registered := range e.listeners {
		if registered == listener {
			e.listeners = append(e.listeners[:index], e.listeners[index+1:]...)
			return
		}
	}
}

func (e *roundEndedEmitter) Emit(payload RoundEndedPayload) {
	e.mu.RLock()
	listeners := make([]RoundEndedListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnRoundEnded(payload)
	}
}
