package database

import (
	"sync"

	"github.com/uno-online/server/uno/game"
	"github.com/uno-online/server/uno/strategy"
)

// UnoGame is a running table in a room: the score-keeping session, the round
// currently being played, and the strategies driving the bot seats. The done
// channel closes when the table shuts down, releasing the players' state
// loops back to the waiting room.
type UnoGame struct {
	Room    *Room
	Session *game.Session
	Game    *game.Game
	Bots    map[int64]strategy.Strategy

	done     chan struct{}
	doneOnce sync.Once
}

func NewUnoGame(room *Room, session *game.Session, bots map[int64]strategy.Strategy) *UnoGame {
	return &UnoGame{
		Room:    room,
		Session: session,
		Bots:    bots,
		done:    make(chan struct{}),
	}
}

func (ug *UnoGame) Done() <-chan struct{} {
	return ug.done
}

func (ug *UnoGame) Finish() {
	ug.doneOnce.Do(func() {
		close(ug.done)
	})
}

// HumansOnline counts connected human seats. A table with none left has
// nobody to play for and gets torn down.
func (ug *UnoGame) HumansOnline() int {
	online := 0
	for _, seat := range ug.Session.Players() {
		if !seat.Human() {
			continue
		}
		if player := getPlayer(seat.ID()); player != nil && player.online {
			online++
		}
	}
	return online
}

func (ug *UnoGame) delete() {
	if ug != nil {
		ug.Finish()
	}
}
