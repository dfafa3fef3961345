package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type DrawTwoCard struct {
	id    int
	color color.Color
}

func NewDrawTwoCard(id int, color color.Color) DrawTwoCard {
	return DrawTwoCard{id: id, color: color}
}

func (c DrawTwoCard) ID() int {
	return c.id
}

func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Points() int {
	return ActionCardPoints
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, typeMatched := Unwrap(other).(DrawTwoCard)
	return typeMatched && c.color == other.Color()
}

func (c DrawTwoCard) String() string {
	return c.color.Paint("+2!")
}
