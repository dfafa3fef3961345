package strategy

import (
	"math/rand"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

type naive struct{}

// NewNaive plays the first legal card and picks a random color.
func NewNaive() Strategy {
	return naive{}
}

func (naive) ChooseCard(playableCards []card.Card, gameState game.State) card.Card {
	if len(playableCards) == 0 {
		return nil
	}
	return playableCards[0]
}

func (naive) ChooseColor(gameState game.State) color.Color {
	allColors := color.All()
	return allColors[rand.Intn(len(allColors))]
}
