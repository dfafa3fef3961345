package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type WildDrawFourCard struct {
	id int
}

func NewWildDrawFourCard(id int) WildDrawFourCard {
	return WildDrawFourCard{id: id}
}

func (c WildDrawFourCard) ID() int {
	return c.id
}

func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(4),
	}
}

func (c WildDrawFourCard) Color() color.Color {
	return nil
}

func (c WildDrawFourCard) Points() int {
	return WildCardPoints
}

func (c WildDrawFourCard) Equal(other Card) bool {
	_, typeMatched := Unwrap(other).(WildDrawFourCard)
	return typeMatched
}

func (c WildDrawFourCard) String() string {
	return "+4!"
}
