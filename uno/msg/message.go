package msg

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPenalized(playerName string, amount int) string {
	return Sprintfln("%s takes a %d-card penalty!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return Sprintfln("%s shouts UNO!", playerName)
}

func (m MessageWriter) RoundEnded(playerName string, points int) string {
	return Sprintfln("%s wins the round and collects %d points!", playerName, points)
}

func (m MessageWriter) GameWon(playerName string, score int) string {
	return Sprintfln("%s wins the game with %d points!", playerName, score)
}

func (m MessageWriter) HomeMenu() string {
	return Sprintlns([]string{
		"1. Join an UNO room",
		"2. Create an UNO room",
	})
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}
