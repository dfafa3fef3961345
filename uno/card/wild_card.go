package card

import (
	"github.com/uno-online/server/uno/card/action"
	"github.com/uno-online/server/uno/card/color"
)

type WildCard struct {
	id int
}

func NewWildCard(id int) WildCard {
	return WildCard{id: id}
}

func (c WildCard) ID() int {
	return c.id
}

func (c WildCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
	}
}

func (c WildCard) Color() color.Color {
	return nil
}

func (c WildCard) Points() int {
	return WildCardPoints
}

func (c WildCard) Equal(other Card) bool {
	_, typeMatched := Unwrap(other).(WildCard)
	return typeMatched
}

func (c WildCard) String() string {
	return "(*)"
}
