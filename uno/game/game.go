package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
)

type Phase int

const (
	Playing Phase = iota
	GameOver
)

const missedUnoCallPenalty = 2

const (
	DefaultTargetScore = 500
	DefaultHandSize    = 7
)

type config struct {
	targetScore int
	handSize    int
	stacking    bool
}

type Option func(*config)

// WithTargetScore sets the cumulative score at which a round winner also
// wins the whole game.
func WithTargetScore(score int) Option {
	return func(c *config) {
		if score > 0 {
			c.targetScore = score
		}
	}
}

// WithHandSize sets the number of cards dealt to each player.
func WithHandSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.handSize = size
		}
	}
}

// WithStacking toggles the same-type penalty stacking rule.
func WithStacking(enabled bool) Option {
	return func(c *config) { c.stacking = enabled }
}

// Game is the rule engine for a single round. It owns the deck, the discard
// pile and the seats, and is mutated only through its public operations.
// Rejected operations return false or nil and change nothing. A Game is
// meant to be driven by one turn-taking loop at a time.
type Game struct {
	roundID   string
	seatOrder []*Player
	players   map[int64]*Player
	cycler    *Cycler
	deck      *Deck
	pile      *Pile

	phase          Phase
	pendingPenalty int
	skipNext       bool
	lastDrawCard   card.Card
	lastPlayedBy   int64
	lastAtOne      int64
	roundWinner    int64
	roundPoints    int
	gameWinner     int64

	cfg config
}

// New builds a round: fresh shuffled deck, dealt hands, a flipped starter
// card with its effect applied. The players keep their scores between
// rounds; everything else is new.
func New(players []*Player, options ...Option) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("uno needs at least 2 players, got %d", len(players))
	}

	cfg := config{
		targetScore: DefaultTargetScore,
		handSize:    DefaultHandSize,
		stacking:    true,
	}
	for _, option := range options {
		option(&cfg)
	}

	playerMap := make(map[int64]*Player, len(players))
	playerIDs := make([]int64, 0, len(players))
	for _, player := range players {
		if player.ID() == 0 {
			return nil, fmt.Errorf("player %q has no id", player.Name())
		}
		if _, exists := playerMap[player.ID()]; exists {
			return nil, fmt.Errorf("duplicate player id %d", player.ID())
		}
		playerMap[player.ID()] = player
		playerIDs = append(playerIDs, player.ID())
	}

	pile := NewPile()
	g := &Game{
		roundID:   uuid.NewString(),
		seatOrder: players,
		players:   playerMap,
		cycler:    NewCycler(playerIDs),
		deck:      NewDeck(pile),
		pile:      pile,
		cfg:       cfg,
	}

	g.deal()
	g.flipStarter()
	return g, nil
}

func (g *Game) deal() {
	for i := 0; i < g.cfg.handSize; i++ {
		for _, player := range g.seatOrder {
			player.AddCards(g.deck.Draw(1))
		}
	}
}

// flipStarter flips the first discard. A WildDrawFour starter goes back into
// the deck for a reshuffled re-flip; hands are never touched to fix it.
func (g *Game) flipStarter() {
	for {
		starter := g.deck.DrawOne()
		if _, isWildDrawFour := starter.(card.WildDrawFourCard); isWildDrawFour {
			g.deck.Return(starter)
			continue
		}
		g.pile.Add(starter)
		event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: starter})
		g.applyCardEffects(starter, nil, nil)
		break
	}
	g.advanceTurn()
}

// PlayCard plays the identified card from the player's hand onto the pile.
// It returns false without mutating anything when the play is out of turn,
// the card is absent or unmatched, or a pending penalty restricts plays to
// same-type stacking.
func (g *Game) PlayCard(playerID int64, cardID int, chosen color.Color) bool {
	if g.phase != Playing {
		return false
	}
	player := g.players[playerID]
	if player == nil || g.cycler.Current() != playerID {
		return false
	}
	c := player.FindCard(cardID)
	if c == nil {
		return false
	}
	if !Playable(c, g.pile.Top()) {
		return false
	}
	if g.pendingPenalty > 0 && !sameDrawType(c, g.lastDrawCard) {
		return false
	}

	player.RemoveCard(cardID)
	g.resolvePlay(player, c, chosen)
	return true
}

// DrawCard draws one card for the player, permitted only when no legal play
// exists. A drawn card that happens to be playable is played on the spot;
// otherwise the turn ends. Returns the drawn card, or nil when rejected or
// when the round's cards are fully held in hands.
func (g *Game) DrawCard(playerID int64) card.Card {
	if g.phase != Playing {
		return nil
	}
	player := g.players[playerID]
	if player == nil || g.cycler.Current() != playerID {
		return nil
	}
	if len(g.PlayableCards(playerID)) > 0 {
		return nil
	}

	drawn := g.deck.DrawOne()
	if drawn == nil {
		event.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerID:   player.ID(),
			PlayerName: player.Name(),
		})
		g.advanceTurn()
		return nil
	}

	player.AddCards([]card.Card{drawn})
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Amount:     1,
	})

	if Playable(drawn, g.pile.Top()) && (g.pendingPenalty == 0 || sameDrawType(drawn, g.lastDrawCard)) {
		player.RemoveCard(drawn.ID())
		g.resolvePlay(player, drawn, nil)
	} else {
		event.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerID:   player.ID(),
			PlayerName: player.Name(),
		})
		g.advanceTurn()
	}
	return drawn
}

// CallUno declares "one card left" for the player. Accepted at two cards
// (right before playing down to one) or at one.
func (g *Game) CallUno(playerID int64) bool {
	if g.phase != Playing {
		return false
	}
	player := g.players[playerID]
	if player == nil || !player.CallUno() {
		return false
	}
	event.UnoCalled.Emit(event.UnoCalledPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
	})
	return true
}

// ChallengeUno penalizes a player sitting at one card without having called
// UNO: the target draws two. Fails with no mutation otherwise.
func (g *Game) ChallengeUno(challengerID, targetID int64) bool {
	if g.phase != Playing || challengerID == targetID {
		return false
	}
	if g.players[challengerID] == nil {
		return false
	}
	target := g.players[targetID]
	if target == nil || !target.MissedUnoCall() {
		return false
	}
	g.penaltyDraw(target, missedUnoCallPenalty)
	return true
}

// ChallengeWildDrawFour resolves a challenge against the player who put the
// active WildDrawFour on the pile. If that player still holds a card
// matching the color the WildDrawFour was played onto, the challenge
// succeeds and they draw four; otherwise the challenger draws six. The turn
// does not advance either way.
func (g *Game) ChallengeWildDrawFour(challengerID, targetID int64) bool {
	if g.phase != Playing || challengerID == targetID {
		return false
	}
	challenger := g.players[challengerID]
	target := g.players[targetID]
	if challenger == nil || target == nil {
		return false
	}
	top := g.pile.Top()
	if top == nil {
		return false
	}
	if _, isWildDrawFour := card.Unwrap(top).(card.WildDrawFourCard); !isWildDrawFour {
		return false
	}
	if targetID != g.lastPlayedBy {
		return false
	}

	var preWildColor color.Color
	if beneath := g.pile.Beneath(); beneath != nil {
		preWildColor = beneath.Color()
	}
	if preWildColor != nil && target.HoldsColor(preWildColor) {
		g.penaltyDraw(target, 4)
		return true
	}
	g.penaltyDraw(challenger, 6)
	return false
}

// PlayableCards is the engine's legality query: the cards the player may put
// down right now, with a pending penalty restricting the set to same-type
// stacking answers.
func (g *Game) PlayableCards(playerID int64) []card.Card {
	player := g.players[playerID]
	if player == nil {
		return nil
	}
	playable := player.PlayableCards(g.pile.Top())
	if g.pendingPenalty == 0 {
		return playable
	}
	var stackable []card.Card
	for _, c := range playable {
		if sameDrawType(c, g.lastDrawCard) {
			stackable = append(stackable, c)
		}
	}
	return stackable
}

func (g *Game) resolvePlay(player *Player, played card.Card, chosen color.Color) {
	g.pile.Add(played)
	g.lastPlayedBy = player.ID()
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Card:       played,
	})

	if player.HandSize() == 0 {
		g.endRound(player)
		return
	}
	if player.HandSize() == 1 {
		g.lastAtOne = player.ID()
		if !player.UnoCalled() {
			g.penaltyDraw(player, missedUnoCallPenalty)
		}
	}

	g.applyCardEffects(played, chosen, player)
	g.advanceTurn()
}

// applyCardEffects runs a played card's actions against the game state. The
// starter flip passes by == nil: its wild stays uncolored.
func (g *Game) applyCardEffects(played card.Card, chosen color.Color, by *Player) {
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			if g.cfg.stacking && g.pendingPenalty > 0 && sameDrawType(played, g.lastDrawCard) {
				g.pendingPenalty += cardAction.Amount()
			} else {
				g.pendingPenalty = cardAction.Amount()
			}
			g.lastDrawCard = card.Unwrap(played)
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
			if len(g.seatOrder) == 2 {
				// two-handed reverse acts as a skip
				g.skipNext = true
			}
		case action.SkipTurnAction:
			g.skipNext = true
		case action.PickColorAction:
			if by == nil {
				break
			}
			pickedColor := chosen
			if pickedColor == nil {
				pickedColor = color.Red
			}
			g.pile.ReplaceTop(card.NewColoredCard(card.Unwrap(played), pickedColor))
			event.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerID:   by.ID(),
				PlayerName: by.Name(),
				Color:      pickedColor,
			})
		}
	}
}

// advanceTurn moves to the next seat. A pending penalty lands on that seat
// unless it can answer with a same-type stack, in which case it gets the
// turn with the penalty still outstanding. An absorbed penalty consumes the
// skip; stale UNO calls are cleared.
func (g *Game) advanceTurn() {
	nextID := g.cycler.Next()
	next := g.players[nextID]

	if g.pendingPenalty > 0 {
		if g.cfg.stacking && g.canAnswerPenalty(next) {
			g.skipNext = false
		} else {
			g.penaltyDraw(next, g.pendingPenalty)
			g.pendingPenalty = 0
			if g.skipNext {
				g.cycler.Next()
			}
			g.skipNext = false
		}
	} else if g.skipNext {
		g.cycler.Next()
		g.skipNext = false
	}

	if g.pendingPenalty == 0 {
		g.lastDrawCard = nil
	}
	for _, player := range g.players {
		if player.HandSize() != 1 {
			player.clearUnoCall()
		}
	}
}

func (g *Game) canAnswerPenalty(player *Player) bool {
	for _, c := range player.Hand() {
		if sameDrawType(c, g.lastDrawCard) {
			return true
		}
	}
	return false
}

func (g *Game) penaltyDraw(player *Player, amount int) {
	cards := g.deck.Draw(amount)
	if len(cards) == 0 {
		return
	}
	player.AddCards(cards)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Amount:     len(cards),
		Penalty:    true,
	})
}

// endRound credits the winner with the points left in every other hand and
// freezes the round. A new Game instance starts the next round.
func (g *Game) endRound(winner *Player) {
	points := 0
	for _, player := range g.seatOrder {
		if player.ID() != winner.ID() {
			points += player.HandPoints()
		}
	}
	winner.AddScore(points)
	g.roundWinner = winner.ID()
	g.roundPoints = points
	g.phase = GameOver

	gameWon := winner.Score() >= g.cfg.targetScore
	if gameWon {
		g.gameWinner = winner.ID()
	}
	event.RoundEnded.Emit(event.RoundEndedPayload{
		RoundID:    g.roundID,
		WinnerID:   winner.ID(),
		WinnerName: winner.Name(),
		Points:     points,
		GameWon:    gameWon,
	})
}

func (g *Game) RoundID() string {
	return g.roundID
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.cycler.Current()]
}

func (g *Game) Player(playerID int64) *Player {
	return g.players[playerID]
}

func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.seatOrder))
	copy(players, g.seatOrder)
	return players
}

func (g *Game) TopCard() card.Card {
	return g.pile.Top()
}

func (g *Game) DiscardPile() []card.Card {
	return g.pile.Cards()
}

func (g *Game) Direction() int {
	return g.cycler.Direction()
}

func (g *Game) PendingPenalty() int {
	return g.pendingPenalty
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) RoundWinner() int64 {
	return g.roundWinner
}

// RoundPoints is what the round's winner was credited from the other hands.
func (g *Game) RoundPoints() int {
	return g.roundPoints
}

func (g *Game) GameWinner() int64 {
	return g.gameWinner
}

// LastPlayerAtOneCard is the last player observed reaching exactly one card,
// the natural target of an UNO challenge.
func (g *Game) LastPlayerAtOneCard() int64 {
	return g.lastAtOne
}

func (g *Game) LastPlayedBy() int64 {
	return g.lastPlayedBy
}

// ExtractState snapshots the game for one player's point of view.
func (g *Game) ExtractState(playerID int64) State {
	playerSequence := make([]int64, 0, len(g.seatOrder))
	playerNames := make(map[int64]string, len(g.seatOrder))
	playerHandCounts := make(map[int64]int, len(g.seatOrder))
	scores := make(map[int64]int, len(g.seatOrder))

	for _, player := range g.seatOrder {
		playerSequence = append(playerSequence, player.ID())
		playerNames[player.ID()] = player.Name()
		playerHandCounts[player.ID()] = player.HandSize()
		scores[player.ID()] = player.Score()
	}

	var hand []card.Card
	if player := g.players[playerID]; player != nil {
		hand = player.Hand()
	}

	return State{
		RoundID:           g.roundID,
		Phase:             g.phase,
		LastPlayedCard:    g.pile.Top(),
		PlayedCards:       g.pile.Cards(),
		CurrentPlayerID:   g.cycler.Current(),
		CurrentPlayerHand: hand,
		PlayerSequence:    playerSequence,
		PlayerNames:       playerNames,
		PlayerHandCounts:  playerHandCounts,
		Scores:            scores,
		Direction:         g.cycler.Direction(),
		PendingPenalty:    g.pendingPenalty,
		DeckSize:          g.deck.Size(),
	}
}
