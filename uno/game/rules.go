package game

import (
	"github.com/uno-online/server/uno/card"
)

// Playable decides whether candidateCard may follow lastPlayedCard. Wild
// cards always follow; otherwise the colors must match, the values must
// match, or the top card is an uncolored wild (round starter), which anything
// may follow. The chosen color of a played wild reaches this check through
// the ColoredCard sitting on the pile.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if lastPlayedCard == nil || lastPlayedCard.Color() == nil {
		return true
	}
	if candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}

	switch candidateCard := card.Unwrap(candidateCard).(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	case card.DrawTwoCard:
		_, isDrawTwoCard := card.Unwrap(lastPlayedCard).(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := card.Unwrap(lastPlayedCard).(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := card.Unwrap(lastPlayedCard).(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := card.Unwrap(lastPlayedCard).(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}

// sameDrawType reports whether both cards are DrawTwo or both WildDrawFour,
// the only pairs that may stack a pending penalty.
func sameDrawType(candidate card.Card, last card.Card) bool {
	if last == nil {
		return false
	}
	switch card.Unwrap(candidate).(type) {
	case card.DrawTwoCard:
		_, ok := card.Unwrap(last).(card.DrawTwoCard)
		return ok
	case card.WildDrawFourCard:
		_, ok := card.Unwrap(last).(card.WildDrawFourCard)
		return ok
	}
	return false
}
