package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/uno-online/server/config"
	"github.com/uno-online/server/network"
	"github.com/uno-online/server/state"
	"github.com/uno-online/server/uno/strategy"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	path := "config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Error(err)
		return
	}
	registry := strategy.NewRegistry()
	strategy.RegisterDefaults(registry, cfg.OpenAI.Model)
	machine := state.New(registry, cfg)
	async.Async(func() {
		log.Error(network.NewWebsocketServer(cfg.WSAddr, machine).Serve())
	})
	log.Error(network.NewTcpServer(cfg.TCPAddr, machine).Serve())
}
