package game

import (
	"fmt"
	"strings"

	"github.com/uno-online/server/uno/card"
)

// State is the read-only snapshot the presentation layer and the decision
// strategies work from. It is recomputed on every query; mutating it has no
// effect on the game.
type State struct {
	RoundID           string
	Phase             Phase
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	CurrentPlayerID   int64
	CurrentPlayerHand []card.Card
	PlayerSequence    []int64
	PlayerNames       map[int64]string
	PlayerHandCounts  map[int64]int
	Scores            map[int64]int
	Direction         int
	PendingPenalty    int
	DeckSize          int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerID := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s), %d point(s))",
			s.PlayerNames[playerID], s.PlayerHandCounts[playerID], s.Scores[playerID])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	if s.PendingPenalty > 0 {
		lines = append(lines, fmt.Sprintf("Pending penalty: draw %d", s.PendingPenalty))
	}

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
