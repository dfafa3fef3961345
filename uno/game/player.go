package game

import (
	"fmt"
	"time"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// Player is one seat at the table: its hand, its cumulative score across the
// rounds of a session, and its UNO-call bookkeeping. Decisions are made
// elsewhere; a Player only holds state.
type Player struct {
	id    int64
	name  string
	human bool

	hand        *Hand
	score       int
	unoCalled   bool
	unoCalledAt time.Time
}

func NewPlayer(id int64, name string, human bool) *Player {
	return &Player{
		id:    id,
		name:  name,
		human: human,
		hand:  NewHand(),
	}
}

func (p *Player) ID() int64 {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Human() bool {
	return p.human
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) HandPoints() int {
	return p.hand.Points()
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) AddScore(points int) {
	p.score += points
}

// AddCards puts drawn or penalty cards into the hand. Growing past a single
// card invalidates any standing UNO call.
func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
	if p.hand.Size() != 1 {
		p.clearUnoCall()
	}
}

// RemoveCard takes the card with the given id out of the hand. A call made
// just before playing down to one card stays valid; any other hand size
// invalidates it.
func (p *Player) RemoveCard(cardID int) card.Card {
	removed := p.hand.RemoveByID(cardID)
	if removed != nil && p.hand.Size() != 1 {
		p.clearUnoCall()
	}
	return removed
}

func (p *Player) FindCard(cardID int) card.Card {
	return p.hand.Find(cardID)
}

// PlayableCards filters the hand by the follow rules against the top card.
// Every legality check in the engine goes through this.
func (p *Player) PlayableCards(lastPlayedCard card.Card) []card.Card {
	return p.hand.PlayableCards(lastPlayedCard)
}

func (p *Player) HoldsColor(c color.Color) bool {
	return p.hand.HoldsColor(c)
}

// CallUno declares "one card left". The call is accepted while holding the
// second-to-last card (about to play it) or the last one.
func (p *Player) CallUno() bool {
	size := p.hand.Size()
	if size == 0 || size > 2 {
		return false
	}
	p.unoCalled = true
	p.unoCalledAt = time.Now()
	return true
}

func (p *Player) UnoCalled() bool {
	return p.unoCalled
}

func (p *Player) UnoCalledAt() time.Time {
	return p.unoCalledAt
}

// MissedUnoCall reports whether the player sits at exactly one card without
// having called UNO.
func (p *Player) MissedUnoCall() bool {
	return p.hand.Size() == 1 && !p.unoCalled
}

func (p *Player) clearUnoCall() {
	p.unoCalled = false
	p.unoCalledAt = time.Time{}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.name, p.id)
}
