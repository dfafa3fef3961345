package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestDraw(t *testing.T) {
	t.Run("holds_the_108_standard_uno_cards", func(t *testing.T) {
		deck := game.NewDeck(game.NewPile())
		cards := deck.Draw(108)
		require.Len(t, cards, 108)

		counts := map[string]int{}
		ids := map[int]bool{}
		for _, c := range cards {
			counts[describe(c)]++
			ids[c.ID()] = true
		}
		require.Len(t, ids, 108)

		require.Equal(t, 4, counts["wild"])
		require.Equal(t, 4, counts["wild_draw_four"])
		for _, col := range color.All() {
			require.Equal(t, 1, counts[col.Name()+"_0"])
			for number := 1; number <= 9; number++ {
				require.Equal(t, 2, counts[col.Name()+"_"+string(rune('0'+number))])
			}
			require.Equal(t, 2, counts[col.Name()+"_skip"])
			require.Equal(t, 2, counts[col.Name()+"_reverse"])
			require.Equal(t, 2, counts[col.Name()+"_draw_two"])
		}
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(game.NewPile())
		require.Empty(t, deck.Draw(0))
	})

	t.Run("refills_itself_from_the_discard_pile", func(t *testing.T) {
		pile := game.NewPile()
		deck := game.NewDeck(pile)
		drawn := deck.Draw(108)
		require.Empty(t, deck.Draw(1))

		for _, c := range drawn {
			pile.Add(c)
		}
		top := pile.Top()

		refilled := deck.Draw(108)
		require.Len(t, refilled, 107)
		require.Equal(t, 1, pile.Size())
		require.Equal(t, top, pile.Top())
	})

	t.Run("recycled_wild_cards_lose_their_chosen_color", func(t *testing.T) {
		pile := game.NewPile()
		deck := game.NewDeck(pile)
		deck.Draw(108)

		pile.Add(card.NewColoredCard(card.NewWildCard(3), color.Green))
		pile.Add(card.NewNumberCard(7, color.Blue, 7))

		refilled := deck.Draw(1)
		require.Len(t, refilled, 1)
		require.Equal(t, card.Card(card.NewWildCard(3)), refilled[0])
	})
}

func TestDrawOne(t *testing.T) {
	deck := game.NewDeck(game.NewPile())
	require.NotNil(t, deck.DrawOne())
	require.Equal(t, 107, deck.Size())
}

func TestReturn(t *testing.T) {
	deck := game.NewDeck(game.NewPile())
	returned := deck.DrawOne()
	deck.Return(returned)
	require.Equal(t, 108, deck.Size())
}

func describe(c card.Card) string {
	switch c := card.Unwrap(c).(type) {
	case card.NumberCard:
		return c.Color().Name() + "_" + string(rune('0'+c.Number()))
	case card.SkipCard:
		return c.Color().Name() + "_skip"
	case card.ReverseCard:
		return c.Color().Name() + "_reverse"
	case card.DrawTwoCard:
		return c.Color().Name() + "_draw_two"
	case card.WildCard:
		return "wild"
	case card.WildDrawFourCard:
		return "wild_draw_four"
	}
	return "unknown"
}
