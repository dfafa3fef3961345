package strategy

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

type greedy struct{}

// NewGreedy keeps its options open: it discards the card that leaves the
// most follow-ups in hand, and picks the color it holds most of.
func NewGreedy() Strategy {
	return greedy{}
}

func (greedy) ChooseCard(playableCards []card.Card, gameState game.State) card.Card {
	if len(playableCards) == 0 {
		return nil
	}

	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range gameState.CurrentPlayerHand {
			if game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}

func (greedy) ChooseColor(gameState game.State) color.Color {
	if len(gameState.CurrentPlayerHand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range gameState.CurrentPlayerHand {
		if handCard.Color() == nil {
			for _, anyColor := range color.All() {
				colorCounts[anyColor]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	var (
		mostFrequentColor       color.Color
		mostFrequentColorAmount int
	)
	for availableColor, amount := range colorCounts {
		if amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}
