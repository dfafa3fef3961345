package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(1),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(1),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(1, color.Blue, 5),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(1, color.Red, 7),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(1, color.Red, 5),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.NewReverseCard(1, color.Red),
			lastPlayedCard: card.NewReverseCard(2, color.Blue),
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.NewSkipCard(1, color.Red),
			lastPlayedCard: card.NewSkipCard(2, color.Blue),
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.NewDrawTwoCard(1, color.Red),
			lastPlayedCard: card.NewDrawTwoCard(2, color.Blue),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_same_color",
			candidateCard:  card.NewReverseCard(1, color.Blue),
			lastPlayedCard: card.NewDrawTwoCard(2, color.Blue),
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_color",
			candidateCard:  card.NewReverseCard(1, color.Red),
			lastPlayedCard: card.NewDrawTwoCard(2, color.Blue),
			expectedResult: false,
		},
		{
			description:    "number_card_then_action_card_with_same_color",
			candidateCard:  card.NewReverseCard(1, color.Blue),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_card_then_action_card_with_different_color",
			candidateCard:  card.NewReverseCard(1, color.Red),
			lastPlayedCard: card.NewNumberCard(2, color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "action_card_then_number_card_with_same_color",
			candidateCard:  card.NewNumberCard(1, color.Blue, 7),
			lastPlayedCard: card.NewReverseCard(2, color.Blue),
			expectedResult: true,
		},
		{
			description:    "action_card_then_number_card_with_different_color",
			candidateCard:  card.NewNumberCard(1, color.Blue, 7),
			lastPlayedCard: card.NewReverseCard(2, color.Red),
			expectedResult: false,
		},
		{
			description:    "colored_wild_card_then_card_with_same_color",
			candidateCard:  card.NewNumberCard(1, color.Blue, 7),
			lastPlayedCard: card.NewColoredCard(card.NewWildCard(2), color.Blue),
			expectedResult: true,
		},
		{
			description:    "colored_wild_card_then_card_with_different_color",
			candidateCard:  card.NewNumberCard(1, color.Red, 7),
			lastPlayedCard: card.NewColoredCard(card.NewWildCard(2), color.Blue),
			expectedResult: false,
		},
		{
			description:    "anything_follows_an_uncolored_wild_starter",
			candidateCard:  card.NewNumberCard(1, color.Red, 7),
			lastPlayedCard: card.NewWildCard(2),
			expectedResult: true,
		},
		{
			description:    "anything_follows_an_empty_pile",
			candidateCard:  card.NewNumberCard(1, color.Red, 7),
			lastPlayedCard: nil,
			expectedResult: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}
