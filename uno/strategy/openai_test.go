package strategy

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  int
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.answer}},
		},
	}, nil
}

type fixedStrategy struct {
	card  card.Card
	color color.Color
}

func (f fixedStrategy) ChooseCard(playableCards []card.Card, gameState game.State) card.Card {
	return f.card
}

func (f fixedStrategy) ChooseColor(gameState game.State) color.Color {
	return f.color
}

func openAIWithCompleter(completer chatCompleter, fallback Strategy) *OpenAI {
	player := NewOpenAI("test-key", "test-model", fallback)
	player.client = completer
	return player
}

func TestOpenAIChooseCard(t *testing.T) {
	playable := []card.Card{
		card.NewNumberCard(1, color.Red, 5),
		card.NewSkipCard(2, color.Red),
		card.NewWildCard(3),
	}
	state := game.State{
		LastPlayedCard:    card.NewNumberCard(4, color.Red, 8),
		CurrentPlayerHand: playable,
	}
	fallbackCard := playable[0]

	t.Run("plays_the_answered_card", func(t *testing.T) {
		completer := &fakeCompleter{answer: "1"}
		player := openAIWithCompleter(completer, fixedStrategy{card: fallbackCard})

		require.Equal(t, playable[1], player.ChooseCard(playable, state))
		require.Equal(t, 1, completer.calls)
	})

	t.Run("skips_the_model_with_a_single_option", func(t *testing.T) {
		completer := &fakeCompleter{answer: "0"}
		player := openAIWithCompleter(completer, fixedStrategy{card: fallbackCard})

		require.Equal(t, playable[2], player.ChooseCard(playable[2:], state))
		require.Zero(t, completer.calls)
	})

	t.Run("falls_back_on_transport_errors", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("connection refused")}
		player := openAIWithCompleter(completer, fixedStrategy{card: fallbackCard})

		require.Equal(t, fallbackCard, player.ChooseCard(playable, state))
	})

	t.Run("falls_back_on_answers_outside_the_offered_set", func(t *testing.T) {
		completer := &fakeCompleter{answer: "7"}
		player := openAIWithCompleter(completer, fixedStrategy{card: fallbackCard})

		require.Equal(t, fallbackCard, player.ChooseCard(playable, state))
	})

	t.Run("falls_back_on_answers_that_are_not_numbers", func(t *testing.T) {
		completer := &fakeCompleter{answer: "the red skip, obviously"}
		player := openAIWithCompleter(completer, fixedStrategy{card: fallbackCard})

		require.Equal(t, fallbackCard, player.ChooseCard(playable, state))
	})

	t.Run("returns_nothing_without_playable_cards", func(t *testing.T) {
		player := openAIWithCompleter(&fakeCompleter{}, fixedStrategy{})

		require.Nil(t, player.ChooseCard(nil, state))
	})
}

func TestOpenAIChooseColor(t *testing.T) {
	state := game.State{
		CurrentPlayerHand: []card.Card{
			card.NewNumberCard(1, color.Green, 3),
			card.NewNumberCard(2, color.Red, 7),
		},
	}

	t.Run("picks_the_answered_color", func(t *testing.T) {
		completer := &fakeCompleter{answer: " Blue\n"}
		player := openAIWithCompleter(completer, fixedStrategy{color: color.Green})

		require.Equal(t, color.Blue, player.ChooseColor(state))
	})

	t.Run("falls_back_on_transport_errors", func(t *testing.T) {
		completer := &fakeCompleter{err: errors.New("connection refused")}
		player := openAIWithCompleter(completer, fixedStrategy{color: color.Green})

		require.Equal(t, color.Green, player.ChooseColor(state))
	})

	t.Run("falls_back_on_answers_that_are_not_colors", func(t *testing.T) {
		completer := &fakeCompleter{answer: "purple"}
		player := openAIWithCompleter(completer, fixedStrategy{color: color.Green})

		require.Equal(t, color.Green, player.ChooseColor(state))
	})
}
