package game

import (
	"math/rand"
	"sync"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// Deck is the draw pile. When it runs dry it rebuilds itself from the discard
// pile (minus the top card), so the 108 cards of a round are never created or
// lost, only moved.
type Deck struct {
	sync.Mutex
	cards []card.Card
	pile  *Pile
}

func NewDeck(pile *Pile) *Deck {
	deck := &Deck{pile: pile}
	deck.cards = standardCards()
	shuffleCards(deck.cards)
	return deck
}

// DrawOne pops a single card, or returns nil when both the draw pile and the
// discard pile are exhausted.
func (d *Deck) DrawOne() card.Card {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return nil
	}
	return cards[0]
}

// Draw pops up to amount cards, reshuffling the discard pile in when needed.
// It returns fewer than amount only when the round's cards are fully dealt out.
func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) < amount {
		d.refill()
	}
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := d.cards[0:amount]
	d.cards = d.cards[amount:]
	return cards
}

// Return puts a card back into the draw pile and reshuffles. Used to re-flip
// the starter card when a WildDrawFour comes up.
func (d *Deck) Return(c card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, c)
	shuffleCards(d.cards)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) refill() {
	if d.pile == nil {
		return
	}
	recycled := d.pile.Reshuffle()
	if len(recycled) == 0 {
		return
	}
	for _, c := range recycled {
		// Played wilds come back without their chosen color.
		d.cards = append(d.cards, card.Unwrap(c))
	}
	shuffleCards(d.cards)
}

func standardCards() []card.Card {
	nextID := 0
	next := func() int {
		nextID++
		return nextID
	}

	cards := make([]card.Card, 0, 108)
	cards = append(cards, createBlackCards(next)...)
	cards = append(cards, createColorCards(next, color.Red)...)
	cards = append(cards, createColorCards(next, color.Yellow)...)
	cards = append(cards, createColorCards(next, color.Green)...)
	cards = append(cards, createColorCards(next, color.Blue)...)
	return cards
}

func createColorCards(next func() int, cardColor color.Color) []card.Card {
	cards := []card.Card{
		card.NewNumberCard(next(), cardColor, 0),
		card.NewSkipCard(next(), cardColor),
		card.NewSkipCard(next(), cardColor),
		card.NewReverseCard(next(), cardColor),
		card.NewReverseCard(next(), cardColor),
		card.NewDrawTwoCard(next(), cardColor),
		card.NewDrawTwoCard(next(), cardColor),
	}

	for number := 1; number <= 9; number++ {
		cards = append(cards,
			card.NewNumberCard(next(), cardColor, number),
			card.NewNumberCard(next(), cardColor, number),
		)
	}

	return cards
}

func createBlackCards(next func() int) []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(next()))
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildDrawFourCard(next()))
	}
	return cards
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
