package game

import (
	"fmt"
)

// RoundResult is one entry of a session's in-memory round log.
type RoundResult struct {
	RoundID    string
	WinnerID   int64
	WinnerName string
	Points     int
	GameWon    bool
}

// Session is a run of rounds with the same players, played until someone's
// cumulative score reaches the target. Each round is a fresh Game instance;
// the seats (and their scores) carry over.
type Session struct {
	players []*Player
	options []Option
	rounds  []RoundResult
	current *Game
}

func NewSession(players []*Player, options ...Option) (*Session, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("uno needs at least 2 players, got %d", len(players))
	}
	seen := make(map[int64]bool, len(players))
	for _, player := range players {
		if seen[player.ID()] {
			return nil, fmt.Errorf("duplicate player id %d", player.ID())
		}
		seen[player.ID()] = true
	}
	return &Session{players: players, options: options}, nil
}

func (s *Session) NewRound() (*Game, error) {
	g, err := New(s.players, s.options...)
	if err != nil {
		return nil, err
	}
	s.current = g
	return g, nil
}

func (s *Session) Current() *Game {
	return s.current
}

// CompleteRound records a finished round into the log. It returns false if
// the round is still being played.
func (s *Session) CompleteRound(g *Game) (RoundResult, bool) {
	if g == nil || g.Phase() != GameOver {
		return RoundResult{}, false
	}
	winner := g.Player(g.RoundWinner())
	result := RoundResult{
		RoundID:    g.RoundID(),
		WinnerID:   winner.ID(),
		WinnerName: winner.Name(),
		Points:     g.RoundPoints(),
		GameWon:    g.GameWinner() != 0,
	}
	s.rounds = append(s.rounds, result)
	return result, true
}

func (s *Session) Rounds() []RoundResult {
	rounds := make([]RoundResult, len(s.rounds))
	copy(rounds, s.rounds)
	return rounds
}

func (s *Session) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}
