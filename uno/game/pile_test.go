package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(1, color.Blue, 5))
	pile.Add(card.NewNumberCard(2, color.Green, 5))
	pile.Add(card.NewNumberCard(3, color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(1, color.Blue, 5),
		card.NewNumberCard(2, color.Green, 5),
		card.NewNumberCard(3, color.Green, 7),
	}, pile.Cards())
}

func TestReplaceTop(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(1, color.Blue, 5))
	pile.Add(card.NewWildCard(2))
	pile.ReplaceTop(card.NewColoredCard(card.NewWildCard(2), color.Yellow))
	require.Equal(t, []card.Card{
		card.NewNumberCard(1, color.Blue, 5),
		card.NewColoredCard(card.NewWildCard(2), color.Yellow),
	}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(1, color.Blue, 5))
	pile.Add(card.NewNumberCard(2, color.Green, 7))
	require.Equal(t, card.Card(card.NewNumberCard(2, color.Green, 7)), pile.Top())
}

func TestBeneath(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Beneath())
	pile.Add(card.NewNumberCard(1, color.Blue, 5))
	require.Nil(t, pile.Beneath())
	pile.Add(card.NewColoredCard(card.NewWildDrawFourCard(2), color.Green))
	require.Equal(t, card.Card(card.NewNumberCard(1, color.Blue, 5)), pile.Beneath())
}

func TestReshuffle(t *testing.T) {
	t.Run("takes_everything_but_the_top_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(1, color.Blue, 5))
		pile.Add(card.NewNumberCard(2, color.Green, 5))
		pile.Add(card.NewNumberCard(3, color.Green, 7))

		taken := pile.Reshuffle()

		require.ElementsMatch(t, []card.Card{
			card.NewNumberCard(1, color.Blue, 5),
			card.NewNumberCard(2, color.Green, 5),
		}, taken)
		require.Equal(t, []card.Card{
			card.NewNumberCard(3, color.Green, 7),
		}, pile.Cards())
	})

	t.Run("returns_nothing_while_holding_at_most_one_card", func(t *testing.T) {
		pile := game.NewPile()
		require.Nil(t, pile.Reshuffle())
		pile.Add(card.NewNumberCard(1, color.Blue, 5))
		require.Nil(t, pile.Reshuffle())
		require.Equal(t, 1, pile.Size())
	})
}
