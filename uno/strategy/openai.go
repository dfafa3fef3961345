package strategy

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

const defaultDecisionTimeout = 10 * time.Second

// chatCompleter is the slice of the OpenAI client this strategy needs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI asks a hosted model to pick from the legal move set. Every failure
// mode — transport error, timeout, an answer outside the offered set — falls
// back to the wrapped strategy, so a dead or confused model never stalls a
// game.
type OpenAI struct {
	client   chatCompleter
	model    string
	fallback Strategy
	timeout  time.Duration
}

func NewOpenAI(apiKey, model string, fallback Strategy) *OpenAI {
	return &OpenAI{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: fallback,
		timeout:  defaultDecisionTimeout,
	}
}

func (s *OpenAI) ChooseCard(playableCards []card.Card, gameState game.State) card.Card {
	if len(playableCards) == 0 {
		return nil
	}
	if len(playableCards) == 1 {
		return playableCards[0]
	}

	var options []string
	for index, playableCard := range playableCards {
		options = append(options, fmt.Sprintf("%d: %s", index, describeCard(playableCard)))
	}
	prompt := fmt.Sprintf(
		"You are playing UNO. The last played card is %s. Your hand has %d cards. "+
			"Playable cards:\n%s\nAnswer with the number of the card to play, nothing else.",
		describeCard(gameState.LastPlayedCard),
		len(gameState.CurrentPlayerHand),
		strings.Join(options, "\n"),
	)

	answer, err := s.complete(prompt)
	if err != nil {
		return s.fallback.ChooseCard(playableCards, gameState)
	}
	index, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || index < 0 || index >= len(playableCards) {
		return s.fallback.ChooseCard(playableCards, gameState)
	}
	return playableCards[index]
}

func (s *OpenAI) ChooseColor(gameState game.State) color.Color {
	var counts []string
	for _, handCard := range gameState.CurrentPlayerHand {
		counts = append(counts, describeCard(handCard))
	}
	prompt := fmt.Sprintf(
		"You are playing UNO and just played a wild card. Your remaining hand: %s. "+
			"Answer with one word, the color to choose: red, yellow, green or blue.",
		strings.Join(counts, ", "),
	)

	answer, err := s.complete(prompt)
	if err != nil {
		return s.fallback.ChooseColor(gameState)
	}
	chosen, err := color.ByName(strings.TrimSpace(strings.ToLower(answer)))
	if err != nil {
		return s.fallback.ChooseColor(gameState)
	}
	return chosen
}

func (s *OpenAI) complete(prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a careful UNO player. Answer exactly as instructed, with no explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// describeCard renders a card without terminal color codes for prompts.
func describeCard(c card.Card) string {
	if c == nil {
		return "none"
	}
	name := ""
	switch unwrapped := card.Unwrap(c).(type) {
	case card.NumberCard:
		name = strconv.Itoa(unwrapped.Number())
	case card.SkipCard:
		name = "skip"
	case card.ReverseCard:
		name = "reverse"
	case card.DrawTwoCard:
		name = "draw-two"
	case card.WildCard:
		name = "wild"
	case card.WildDrawFourCard:
		name = "wild-draw-four"
	}
	if c.Color() != nil {
		return c.Color().Name() + " " + name
	}
	return name
}
