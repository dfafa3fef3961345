package state

import (
	"fmt"

	"github.com/uno-online/server/config"
	"github.com/uno-online/server/consts"
	"github.com/uno-online/server/database"
)

type create struct {
	cfg config.Config
}

func (s *create) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString("Robots: \n")
	if err != nil {
		return 0, player.WriteError(err)
	}
	robots, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if robots < 0 || robots >= consts.MaxPlayers {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	room := database.CreateRoom(player.ID, s.cfg.TargetScore, s.cfg.HandSize, s.cfg.BotStrategy)
	room.Robots = robots
	err = player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}
