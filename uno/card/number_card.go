package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type NumberCard struct {
	id     int
	color  color.Color
	number int
}

func NewNumberCard(id int, color color.Color, number int) NumberCard {
	return NumberCard{
		id:     id,
		color:  color,
		number: number,
	}
}

func (c NumberCard) ID() int {
	return c.id
}

func (c NumberCard) Actions() []action.Action {
	return []action.Action{}
}

func (c NumberCard) Color() color.Color {
	return c.color
}

func (c NumberCard) Points() int {
	return c.number
}

func (c NumberCard) Equal(other Card) bool {
	otherNumberCard, typeMatched := Unwrap(other).(NumberCard)
	return typeMatched && c.color == other.Color() && c.number == otherNumberCard.number
}

func (c NumberCard) Number() int {
	return c.number
}

func (c NumberCard) String() string {
	return c.color.Paintf("[%d]", c.number)
}
