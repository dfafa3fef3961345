package game

import (
	"sync"

	"github.com/uno-online/server/uno/card"
)

// Pile is the discard pile. Its last element is the active top card.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// Beneath returns the card directly under the top card, or nil. It is what
// a WildDrawFour was played onto, used to resolve challenges.
func (p *Pile) Beneath() card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	return p.cards[len(p.cards)-2]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Reshuffle removes and returns every card except the top one, so the deck
// can rebuild its draw pile from them.
func (p *Pile) Reshuffle() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards = p.cards[len(p.cards)-1:]
	return taken
}
