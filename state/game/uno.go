package game

import (
	"bytes"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/database"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
	unogame "github.com/uno-online/server/uno/game"
	"github.com/uno-online/server/uno/msg"
	"github.com/uno-online/server/uno/strategy"
)

const botThinkTime = 300 * time.Millisecond

// Bot seat ids count down process-wide. Connected players have positive ids
// and every table's bots get ids no other table uses, so the seat-filtered
// room listeners never accept another room's events.
var botIds int64

// Uno parks a player's session loop while the room's table goroutine drives
// the game. Prompts reach the player through that goroutine's transactions.
type Uno struct{}

func (s *Uno) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return consts.StateHome, nil
	}
	unoGame := room.Game
	if unoGame == nil {
		return consts.StateWaiting, nil
	}
	<-unoGame.Done()
	return consts.StateWaiting, nil
}

func (*Uno) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

// InitUnoGame seats the room's humans and robots and opens the session.
// Robots get negative ids so they never collide with connected players.
func InitUnoGame(room *database.Room, registry *strategy.Registry) (*database.UnoGame, error) {
	seats := make([]*unogame.Player, 0)
	for playerId := range database.RoomPlayers(room.ID) {
		player := database.GetPlayer(playerId)
		if player == nil {
			continue
		}
		seats = append(seats, player.Seat())
	}
	bots := map[int64]strategy.Strategy{}
	for _, name := range strategy.BotNames(room.Robots) {
		strat, err := registry.New(room.BotStrategy)
		if err != nil {
			return nil, consts.ErrorsStrategyInvalid
		}
		id := -atomic.AddInt64(&botIds, 1)
		seats = append(seats, unogame.NewPlayer(id, name, false))
		bots[id] = strat
	}
	if len(seats) < consts.MinPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	session, err := unogame.NewSession(seats,
		unogame.WithTargetScore(room.TargetScore),
		unogame.WithHandSize(room.HandSize),
		unogame.WithStacking(room.Stacking),
	)
	if err != nil {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return database.NewUnoGame(room, session, bots), nil
}

// RunUnoGame plays rounds until someone reaches the target score or every
// human seat goes away, then hands the room back to waiting.
func RunUnoGame(ug *database.UnoGame) {
	room := ug.Room
	listener := newRoomListener(ug)
	listener.attach()
	defer listener.detach()
	defer func() {
		room.Lock()
		room.Game = nil
		room.State = consts.RoomStateWaiting
		room.Unlock()
		ug.Finish()
	}()
	for {
		g, err := ug.Session.NewRound()
		if err != nil {
			log.Error(err)
			return
		}
		ug.Game = g
		database.Broadcast(room.ID, msg.Message.FirstCardPlayed(g.TopCard()))
		sendHands(g)
		for g.Phase() == unogame.Playing {
			if ug.HumansOnline() == 0 {
				return
			}
			seat := g.CurrentPlayer()
			if seat.Human() {
				if err := playHumanTurn(ug, g, seat); err != nil {
					log.Error(err)
				}
			} else {
				playBotTurn(ug, g, seat)
			}
		}
		result, ok := ug.Session.CompleteRound(g)
		if !ok {
			return
		}
		database.Broadcast(room.ID, msg.Message.RoundEnded(result.WinnerName, result.Points))
		if result.GameWon {
			winner := g.Player(result.WinnerID)
			database.Broadcast(room.ID, msg.Message.GameWon(winner.Name(), winner.Score()))
			return
		}
	}
}

func sendHands(g *unogame.Game) {
	for _, seat := range g.Players() {
		if !seat.Human() {
			continue
		}
		if player := database.GetPlayer(seat.ID()); player != nil {
			_ = player.WriteString(fmt.Sprintf("Your cards: %s\n", seat.Hand()))
		}
	}
}

func playBotTurn(ug *database.UnoGame, g *unogame.Game, seat *unogame.Player) {
	time.Sleep(botThinkTime)
	strat := ug.Bots[seat.ID()]
	if strat == nil {
		autoPlay(g, seat)
		return
	}
	gameState := g.ExtractState(seat.ID())
	playable := g.PlayableCards(seat.ID())
	if len(playable) == 0 {
		g.DrawCard(seat.ID())
		return
	}
	if seat.HandSize() == 2 {
		g.CallUno(seat.ID())
	}
	choice := strat.ChooseCard(playable, gameState)
	var chosen color.Color
	if choice != nil && card.IsWild(choice) {
		chosen = strat.ChooseColor(gameState)
	}
	if choice == nil || !g.PlayCard(seat.ID(), choice.ID(), chosen) {
		autoPlay(g, seat)
	}
}

// autoPlay makes the forced move for a seat nobody is steering: an absent
// human, a timed-out one, or a strategy that returned garbage.
func autoPlay(g *unogame.Game, seat *unogame.Player) {
	playable := g.PlayableCards(seat.ID())
	if len(playable) == 0 {
		g.DrawCard(seat.ID())
		return
	}
	choice := playable[0]
	var chosen color.Color
	if card.IsWild(choice) {
		chosen = color.Red
	}
	g.PlayCard(seat.ID(), choice.ID(), chosen)
}

func playHumanTurn(ug *database.UnoGame, g *unogame.Game, seat *unogame.Player) error {
	player := database.GetPlayer(seat.ID())
	if player == nil || !player.Online() {
		autoPlay(g, seat)
		return nil
	}
	room := ug.Room
	database.Broadcast(room.ID, fmt.Sprintf("It's %s turn! \n", seat.Name()), seat.ID())
	gameState := g.ExtractState(seat.ID())
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("It's your turn, %s! \n", seat.Name()))
	buf.WriteString(gameState.String())
	_ = player.WriteString(buf.String())
	for {
		playable := g.PlayableCards(seat.ID())
		runeSequence := runeSequence{}
		cardOptions := make(map[string]card.Card)
		lines := []string{"Select a card to play:"}
		for _, c := range playable {
			label := string(runeSequence.next())
			cardOptions[label] = c
			lines = append(lines, fmt.Sprintf("%s %s", label, c))
		}
		if len(playable) == 0 {
			lines = append(lines, "(no playable card, d to draw)")
		}
		lines = append(lines, "d=draw u=uno cu=challenge uno cw=challenge wild draw four")
		_ = player.WriteString(msg.Sprintlns(lines))
		signal, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			autoPlay(g, seat)
			if err == consts.ErrorsTimeout {
				return nil
			}
			return err
		}
		signal = strings.ToLower(strings.TrimSpace(signal))
		switch signal {
		case "d":
			if len(playable) > 0 {
				_ = player.WriteString("You still have a playable card! \n")
				continue
			}
			if drawn := g.DrawCard(seat.ID()); drawn != nil {
				_ = player.WriteString(fmt.Sprintf("You drew %s! \n", drawn))
			}
			return nil
		case "u":
			if !g.CallUno(seat.ID()) {
				_ = player.WriteString("You can only shout UNO on your last two cards! \n")
			}
			continue
		case "cu":
			target := g.Player(g.LastPlayerAtOneCard())
			if target == nil || !g.ChallengeUno(seat.ID(), target.ID()) {
				_ = player.WriteString("Nobody missed an UNO call. \n")
			}
			continue
		case "cw":
			target := g.Player(g.LastPlayedBy())
			if target == nil || target.ID() == seat.ID() {
				_ = player.WriteString("Nothing to challenge. \n")
				continue
			}
			if g.ChallengeWildDrawFour(seat.ID(), target.ID()) {
				database.Broadcast(room.ID, fmt.Sprintf("%s challenged %s's wild draw four and won! \n", seat.Name(), target.Name()))
			} else {
				database.Broadcast(room.ID, fmt.Sprintf("%s challenged %s's wild draw four and lost! \n", seat.Name(), target.Name()))
			}
			continue
		default:
			selected, found := cardOptions[strings.ToUpper(signal)]
			if !found {
				database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
				continue
			}
			var chosen color.Color
			if card.IsWild(selected) {
				chosen, err = askForColor(player)
				if err != nil {
					chosen = color.Red
				}
			}
			if !g.PlayCard(seat.ID(), selected.ID(), chosen) {
				_ = player.WriteString(fmt.Sprintf("%s cannot be played now! \n", selected))
				continue
			}
			return nil
		}
	}
}

func askForColor(player *database.Player) (color.Color, error) {
	for {
		_ = player.WriteString(fmt.Sprintf(
			"Select a color: %s, %s, %s or %s ? \n",
			color.Red,
			color.Yellow,
			color.Green,
			color.Blue,
		))
		name, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			return color.Red, err
		}
		chosen, err := color.ByName(strings.ToLower(name))
		if err != nil {
			_ = player.WriteString(fmt.Sprintf("Unknown color '%s' \n", name))
			continue
		}
		return chosen, nil
	}
}

// roomListener turns engine events into room broadcasts. Emitters are
// process-wide, so every handler filters on the table's own seats.
type roomListener struct {
	roomID int64
	seats  map[int64]bool
}

func newRoomListener(ug *database.UnoGame) *roomListener {
	seats := map[int64]bool{}
	for _, seat := range ug.Session.Players() {
		seats[seat.ID()] = true
	}
	return &roomListener{roomID: ug.Room.ID, seats: seats}
}

func (l *roomListener) attach() {
	event.CardPlayed.AddListener(l)
	event.ColorPicked.AddListener(l)
	event.PlayerPassed.AddListener(l)
	event.CardsDrawn.AddListener(l)
	event.UnoCalled.AddListener(l)
}

func (l *roomListener) detach() {
	event.CardPlayed.RemoveListener(l)
	event.ColorPicked.RemoveListener(l)
	event.PlayerPassed.RemoveListener(l)
	event.CardsDrawn.RemoveListener(l)
	event.UnoCalled.RemoveListener(l)
}

func (l *roomListener) OnCardPlayed(payload event.CardPlayedPayload) {
	if !l.seats[payload.PlayerID] {
		return
	}
	database.Broadcast(l.roomID, msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (l *roomListener) OnColorPicked(payload event.ColorPickedPayload) {
	if !l.seats[payload.PlayerID] {
		return
	}
	database.Broadcast(l.roomID, msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (l *roomListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if !l.seats[payload.PlayerID] {
		return
	}
	database.Broadcast(l.roomID, msg.Message.PlayerPassed(payload.PlayerName))
}

func (l *roomListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if !l.seats[payload.PlayerID] {
		return
	}
	if payload.Penalty {
		database.Broadcast(l.roomID, msg.Message.PlayerPenalized(payload.PlayerName, payload.Amount))
		return
	}
	database.Broadcast(l.roomID, msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount), payload.PlayerID)
}

func (l *roomListener) OnUnoCalled(payload event.UnoCalledPayload) {
	if !l.seats[payload.PlayerID] {
		return
	}
	database.Broadcast(l.roomID, msg.Message.PlayerCalledUno(payload.PlayerName))
}

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}
