package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

// Point values for scoring the hands left over at the end of a round.
const (
	ActionCardPoints = 20
	WildCardPoints   = 50
)

// Card is a single card of the 108-card deck. The id is unique within one
// shuffled deck instance; Equal compares faces and ignores ids.
type Card interface {
	ID() int
	Actions() []action.Action
	Color() color.Color
	Points() int
	Equal(other Card) bool
	String() string
}

// Unwrap strips a ColoredCard wrapper and returns the card as it sits in the
// deck. Non-wrapped cards are returned unchanged.
func Unwrap(c Card) Card {
	if colored, ok := c.(ColoredCard); ok {
		return colored.card
	}
	return c
}

// IsWild reports whether c is a Wild or WildDrawFour card.
func IsWild(c Card) bool {
	switch Unwrap(c).(type) {
	case WildCard, WildDrawFourCard:
		return true
	}
	return false
}

// IsAction reports whether c is a colored action card (Skip, Reverse, DrawTwo).
func IsAction(c Card) bool {
	switch Unwrap(c).(type) {
	case SkipCard, ReverseCard, DrawTwoCard:
		return true
	}
	return false
}
