package main

import (
	"net/http"

	"github.com/matryer/way"
)

const URI_WS = "/play"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.GameServer.HandleHttpCall())
	// the web build of the client, with its img/ folder
	s.router.Handle("GET", "/...", http.FileServer(http.Dir(s.Static)))
}
