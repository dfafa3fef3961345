package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestCallUno(t *testing.T) {
	t.Run("rejected_with_an_empty_hand", func(t *testing.T) {
		player := game.NewPlayer(1, "Annie", false)
		require.False(t, player.CallUno())
	})

	t.Run("rejected_above_two_cards", func(t *testing.T) {
		player := game.NewPlayer(1, "Annie", false)
		player.AddCards([]card.Card{
			card.NewNumberCard(1, color.Blue, 1),
			card.NewNumberCard(2, color.Blue, 2),
			card.NewNumberCard(3, color.Blue, 3),
		})
		require.False(t, player.CallUno())
		require.False(t, player.UnoCalled())
	})

	t.Run("accepted_at_two_cards", func(t *testing.T) {
		player := game.NewPlayer(1, "Annie", false)
		player.AddCards([]card.Card{
			card.NewNumberCard(1, color.Blue, 1),
			card.NewNumberCard(2, color.Blue, 2),
		})
		require.True(t, player.CallUno())
		require.True(t, player.UnoCalled())
		require.False(t, player.UnoCalledAt().IsZero())
	})

	t.Run("accepted_at_one_card", func(t *testing.T) {
		player := game.NewPlayer(1, "Annie", false)
		player.AddCards([]card.Card{card.NewNumberCard(1, color.Blue, 1)})
		require.True(t, player.CallUno())
	})
}

func TestUnoCallSurvivesPlayingDownToOne(t *testing.T) {
	player := game.NewPlayer(1, "Annie", false)
	player.AddCards([]card.Card{
		card.NewNumberCard(1, color.Blue, 1),
		card.NewNumberCard(2, color.Blue, 2),
	})
	require.True(t, player.CallUno())
	player.RemoveCard(1)
	assert.Equal(t, 1, player.HandSize())
	assert.True(t, player.UnoCalled())
	assert.False(t, player.MissedUnoCall())
}

func TestUnoCallClearedWhenHandGrows(t *testing.T) {
	player := game.NewPlayer(1, "Annie", false)
	player.AddCards([]card.Card{card.NewNumberCard(1, color.Blue, 1)})
	require.True(t, player.CallUno())
	player.AddCards([]card.Card{
		card.NewNumberCard(2, color.Blue, 2),
		card.NewNumberCard(3, color.Blue, 3),
	})
	require.False(t, player.UnoCalled())
}

func TestMissedUnoCall(t *testing.T) {
	player := game.NewPlayer(1, "Annie", false)
	require.False(t, player.MissedUnoCall())
	player.AddCards([]card.Card{card.NewNumberCard(1, color.Blue, 1)})
	require.True(t, player.MissedUnoCall())
	require.True(t, player.CallUno())
	require.False(t, player.MissedUnoCall())
}

func TestHandPoints(t *testing.T) {
	player := game.NewPlayer(1, "Annie", false)
	player.AddCards([]card.Card{
		card.NewNumberCard(1, color.Blue, 9),
		card.NewDrawTwoCard(2, color.Red),
		card.NewWildCard(3),
	})
	require.Equal(t, 79, player.HandPoints())
}

func TestAddScore(t *testing.T) {
	player := game.NewPlayer(1, "Annie", false)
	require.Equal(t, 0, player.Score())
	player.AddScore(120)
	player.AddScore(30)
	require.Equal(t, 150, player.Score())
}
