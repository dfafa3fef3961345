package database

import (
	"strconv"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/uno-online/server/consts"
)

type Room struct {
	sync.Mutex

	ID          int64     `json:"id"`
	Game        *UnoGame  `json:"game"`
	State       int       `json:"state"`
	Players     int       `json:"players"`
	Robots      int       `json:"robots"`
	Creator     int64     `json:"creator"`
	ActiveTime  time.Time `json:"activeTime"`
	MaxPlayers  int       `json:"maxPlayers"`
	Password    string    `json:"password"`
	EnableChat  bool      `json:"enableChat"`
	TargetScore int       `json:"targetScore"`
	HandSize    int       `json:"handSize"`
	BotStrategy string    `json:"botStrategy"`
	Stacking    bool      `json:"stacking"`
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playerIds := getRoomPlayers(room.ID)
	if _, ok := playerIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playerIds, player.ID)
		if len(playerIds) > 0 && room.Creator == player.ID {
			for k := range playerIds {
				room.Creator = k
				break
			}
		}
	}
	if len(playerIds) == 0 {
		room.delete()
	}
}

func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Game.delete()
	}
}

// SetRoomProps applies one "set <key> <value>" command from the room owner.
// Unknown keys and unparseable values are ignored.
func SetRoomProps(room *Room, key, value string) {
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			room.Password = ""
		} else {
			room.Password = value
		}
	case consts.RoomPropsChat:
		room.EnableChat = value == "on"
	case consts.RoomPropsStacking:
		room.Stacking = value == "on"
	case consts.RoomPropsRobots:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 && n < consts.MaxPlayers {
			room.Robots = n
		}
	case consts.RoomPropsTargetScore:
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			room.TargetScore = n
		}
	case consts.RoomPropsStrategy:
		room.BotStrategy = value
	}
}
