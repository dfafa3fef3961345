package state

import (
	"github.com/ratel-online/core/log"
	"github.com/uno-online/server/config"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/database"
	"github.com/uno-online/server/state/game"
	"github.com/uno-online/server/uno/strategy"
)

// State is one screen of the client session. Next blocks on player input and
// returns the id of the screen to move to; Exit is where "exit" lands.
type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Machine routes a connected player through the session screens. One Machine
// serves every connection; per-player position lives on the player.
type Machine struct {
	states map[consts.StateID]State
}

func New(registry *strategy.Registry, cfg config.Config) *Machine {
	m := &Machine{states: map[consts.StateID]State{}}
	m.register(consts.StateWelcome, &welcome{})
	m.register(consts.StateHome, &home{})
	m.register(consts.StateJoin, &join{})
	m.register(consts.StateCreate, &create{cfg: cfg})
	m.register(consts.StateWaiting, &waiting{registry: registry})
	m.register(consts.StateUnoGame, &game.Uno{})
	return m
}

func (m *Machine) register(id consts.StateID, state State) {
	m.states[id] = state
}

func (m *Machine) Run(player *database.Player) {
	player.State(consts.StateWelcome)
	for {
		state := m.states[player.GetState()]
		if state == nil {
			log.Infof("player %s hit unknown state %d\n", player, player.GetState())
			return
		}
		stateId, err := state.Next(player)
		if err != nil {
			log.Error(err)
			return
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	return signal == "ls" || signal == "v"
}
