package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
	"github.com/uno-online/server/uno/strategy"
)

func TestGreedyChooseCard(t *testing.T) {
	player := strategy.NewGreedy()

	t.Run("returns_nothing_without_playable_cards", func(t *testing.T) {
		require.Nil(t, player.ChooseCard(nil, game.State{}))
	})

	t.Run("discards_the_card_with_the_most_follow_ups", func(t *testing.T) {
		redFive := card.NewNumberCard(2, color.Red, 5)
		blueFive := card.NewNumberCard(4, color.Blue, 5)
		hand := []card.Card{
			card.NewNumberCard(1, color.Red, 1),
			redFive,
			card.NewNumberCard(3, color.Red, 9),
			blueFive,
		}

		// Every red card and the blue five follow the red five; only the
		// two fives follow the blue five.
		chosen := player.ChooseCard([]card.Card{blueFive, redFive}, game.State{
			CurrentPlayerHand: hand,
		})
		require.Equal(t, redFive, chosen)
	})
}

func TestGreedyChooseColor(t *testing.T) {
	player := strategy.NewGreedy()

	t.Run("picks_the_most_frequent_hand_color", func(t *testing.T) {
		chosen := player.ChooseColor(game.State{
			CurrentPlayerHand: []card.Card{
				card.NewNumberCard(1, color.Blue, 3),
				card.NewNumberCard(2, color.Blue, 7),
				card.NewNumberCard(3, color.Red, 1),
			},
		})
		require.Equal(t, color.Blue, chosen)
	})

	t.Run("counts_wild_cards_towards_every_color", func(t *testing.T) {
		chosen := player.ChooseColor(game.State{
			CurrentPlayerHand: []card.Card{
				card.NewWildCard(1),
				card.NewNumberCard(2, color.Green, 3),
				card.NewNumberCard(3, color.Green, 7),
				card.NewNumberCard(4, color.Red, 1),
			},
		})
		require.Equal(t, color.Green, chosen)
	})

	t.Run("defaults_to_blue_with_an_empty_hand", func(t *testing.T) {
		require.Equal(t, color.Blue, player.ChooseColor(game.State{}))
	})
}
