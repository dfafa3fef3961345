package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type SkipCard struct {
	id    int
	color color.Color
}

func NewSkipCard(id int, color color.Color) SkipCard {
	return SkipCard{id: id, color: color}
}

func (c SkipCard) ID() int {
	return c.id
}

func (c SkipCard) Actions() []action.Action {
	return []action.Action{
		action.NewSkipTurnAction(),
	}
}

func (c SkipCard) Color() color.Color {
	return c.color
}

func (c SkipCard) Points() int {
	return ActionCardPoints
}

func (c SkipCard) Equal(other Card) bool {
	_, typeMatched := Unwrap(other).(SkipCard)
	return typeMatched && c.color == other.Color()
}

func (c SkipCard) String() string {
	return c.color.Paint("(/)")
}
