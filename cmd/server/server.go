package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
	Static     string
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG"))
	if err != nil {
		log.Fatalln(err)
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(level)

	s := Server{
		GameServer: server.NewGameServer(cfg),
		Static:     cfg.Server.Static,
	}
	go s.GameServer.Loop()
	s.routes()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
