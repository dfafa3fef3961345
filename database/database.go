package database

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/strings"
	"github.com/uno-online/server/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var connPlayers = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				e.Value().(*Room).Cancel()
			})
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(player.ID, player)
	connPlayers.Set(conn.ID(), player)
	return player
}

func Disconnected(conn *network.Conn) {
	if v, ok := connPlayers.Get(conn.ID()); ok {
		connPlayers.Del(conn.ID())
		players.Del(v.(*Player).ID)
	}
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func CreateRoom(creator int64, targetScore, handSize int, botStrategy string) *Room {
	room := &Room{
		ID:          atomic.AddInt64(&roomIds, 1),
		State:       consts.RoomStateWaiting,
		Creator:     creator,
		MaxPlayers:  consts.MaxPlayers,
		TargetScore: targetScore,
		HandSize:    handSize,
		BotStrategy: botStrategy,
		Stacking:    true,
		EnableChat:  true,
		ActiveTime:  time.Now(),
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

func RoomPlayers(roomId int64) map[int64]bool {
	return getRoomPlayers(roomId)
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playerIds := getRoomPlayers(roomId)
	if playerIds != nil {
		playerIds[playerId] = true
		room.Players++
		room.ActiveTime = time.Now()
		player.RoomID = roomId
	}
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}

func BroadcastChat(player *Player, msg string, exclude ...int64) {
	room := getRoom(player.RoomID)
	if room == nil || !room.EnableChat {
		_ = player.WriteError(consts.ErrorsChatUnopened)
		return
	}
	log.Infof("chat msg, player %s[%d] %s say: %s", player.Name, player.ID, player.IP, msg)
	Broadcast(player.RoomID, strings.Desensitize(msg), exclude...)
}
