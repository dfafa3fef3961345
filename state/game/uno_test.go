package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/database"
	"github.com/uno-online/server/uno/strategy"
)

func testRoom(id int64, robots int) *database.Room {
	return &database.Room{
		ID:          id,
		State:       consts.RoomStateWaiting,
		Robots:      robots,
		MaxPlayers:  consts.MaxPlayers,
		TargetScore: consts.DefaultTargetScore,
		HandSize:    consts.InitialHandSize,
		BotStrategy: "naive",
		Stacking:    true,
	}
}

func TestInitUnoGame(t *testing.T) {
	registry := strategy.NewRegistry()
	registry.Register("naive", strategy.NewNaive)

	t.Run("rejects_unknown_bot_strategies", func(t *testing.T) {
		room := testRoom(201, 2)
		room.BotStrategy = "grandmaster"

		_, err := InitUnoGame(room, registry)
		require.Equal(t, consts.ErrorsStrategyInvalid, err)
	})

	t.Run("rejects_tables_below_the_player_minimum", func(t *testing.T) {
		_, err := InitUnoGame(testRoom(202, 1), registry)
		require.Equal(t, consts.ErrorsGamePlayersInvalid, err)
	})

	t.Run("gives_each_room_its_own_bot_ids", func(t *testing.T) {
		gameA, err := InitUnoGame(testRoom(203, 2), registry)
		require.NoError(t, err)
		gameB, err := InitUnoGame(testRoom(204, 2), registry)
		require.NoError(t, err)

		for id := range gameA.Bots {
			require.Less(t, id, int64(0))
			_, shared := gameB.Bots[id]
			require.False(t, shared, "bot id %d seated in both rooms", id)
		}

		listenerB := newRoomListener(gameB)
		for id := range gameA.Bots {
			require.False(t, listenerB.seats[id],
				"room 204's listener accepts room 203's bot %d", id)
		}
		for id := range gameB.Bots {
			require.True(t, listenerB.seats[id])
		}
	})
}
