package game

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(cardID int) card.Card {
	for _, cardInHand := range h.cards {
		if cardInHand.ID() == cardID {
			return cardInHand
		}
	}
	return nil
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveByID removes and returns the card with the given id, or nil if the
// hand does not hold it.
func (h *Hand) RemoveByID(cardID int) card.Card {
	for index, cardInHand := range h.cards {
		if cardInHand.ID() == cardID {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return cardInHand
		}
	}
	return nil
}

// HoldsColor reports whether any card in the hand matches the given color.
func (h *Hand) HoldsColor(c color.Color) bool {
	if c == nil {
		return false
	}
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c {
			return true
		}
	}
	return false
}

// Points sums the point values of the remaining cards.
func (h *Hand) Points() int {
	points := 0
	for _, cardInHand := range h.cards {
		points += cardInHand.Points()
	}
	return points
}

func (h *Hand) Size() int {
	return len(h.cards)
}
