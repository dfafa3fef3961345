package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
	"github.com/uno-online/server/uno/strategy"
)

func TestNaiveChooseCard(t *testing.T) {
	player := strategy.NewNaive()

	t.Run("returns_nothing_without_playable_cards", func(t *testing.T) {
		require.Nil(t, player.ChooseCard(nil, game.State{}))
	})

	t.Run("plays_the_first_playable_card", func(t *testing.T) {
		playable := []card.Card{
			card.NewNumberCard(1, color.Red, 5),
			card.NewSkipCard(2, color.Red),
		}
		require.Equal(t, playable[0], player.ChooseCard(playable, game.State{}))
	})
}

func TestNaiveChooseColor(t *testing.T) {
	player := strategy.NewNaive()

	chosen := player.ChooseColor(game.State{})
	require.Contains(t, color.All(), chosen)
}
