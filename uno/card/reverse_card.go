package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type ReverseCard struct {
	id    int
	color color.Color
}

func NewReverseCard(id int, color color.Color) ReverseCard {
	return ReverseCard{id: id, color: color}
}

func (c ReverseCard) ID() int {
	return c.id
}

func (c ReverseCard) Actions() []action.Action {
	return []action.Action{
		action.NewReverseTurnsAction(),
	}
}

func (c ReverseCard) Color() color.Color {
	return c.color
}

func (c ReverseCard) Points() int {
	return ActionCardPoints
}

func (c ReverseCard) Equal(other Card) bool {
	_, typeMatched := Unwrap(other).(ReverseCard)
	return typeMatched && c.color == other.Color()
}

func (c ReverseCard) String() string {
	return c.color.Paint("<=>")
}
