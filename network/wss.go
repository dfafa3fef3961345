package network

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/protocol"
	"github.com/uno-online/server/state"
)

type Websocket struct {
	addr    string
	machine *state.Machine
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, machine *state.Machine) Websocket {
	return Websocket{addr: addr, machine: machine}
}

func (w Websocket) Serve() error {
	http.HandleFunc("/ws", w.serveWs)
	log.Printf("Websocket server listener on %s\n", w.addr)
	return http.ListenAndServe(w.addr, nil)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	_ = handle(protocol.NewWebsocketReadWriteCloser(conn), w.machine)
}
