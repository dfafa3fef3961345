package strategy

import (
	"fmt"
	"sort"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

// Strategy decides a bot seat's moves. It only sees what any caller of the
// engine sees: the legal card set and a state snapshot. It submits nothing
// itself; the game loop applies its choices through the engine's public
// operations.
type Strategy interface {
	ChooseCard(playableCards []card.Card, state game.State) card.Card
	ChooseColor(state game.State) color.Color
}

// Registry maps strategy names to factories. It is handed to the components
// that create bot seats; there is no process-wide registry.
type Registry struct {
	factories map[string]func() Strategy
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]func() Strategy{}}
}

func (r *Registry) Register(name string, factory func() Strategy) {
	r.factories[name] = factory
}

func (r *Registry) New(name string) (Strategy, error) {
	factory := r.factories[name]
	if factory == nil {
		return nil, fmt.Errorf("unknown strategy '%s'", name)
	}
	return factory(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
