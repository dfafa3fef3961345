package card

import (
	"fmt"

	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

// ColoredCard is a played wild card carrying the color its player chose. It
// sits on the discard pile in place of the bare wild card.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) ID() int {
	return c.card.ID()
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Points() int {
	return c.card.Points()
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) String() string {
	return c.card.String() + fmt.Sprintf("(%s)", c.color.Name())
}
