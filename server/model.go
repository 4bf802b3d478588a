// Package server hosts remote play: every websocket connection gets its own
// city, ticked on the server and streamed back as gob encoded messages.
package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/model"
	"github.com/zucenko/ecocity/world"
)

type GameServer struct {
	Config       *config.Config
	GameSessions map[string]*GameSession
	GameRequests chan GameRequest
	Ended        chan string
	Upgrader     *websocket.Upgrader
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession is one city and the player connected to it. Everything but
// the channels is owned by the loop goroutine.
type GameSession struct {
	Id     string
	State  GameSessionState
	World  *world.World
	Loop   *world.Loop
	Player *PlayerSession

	mazeSize int
	huds     []model.HudEvent
	removed  []int
	done     chan struct{}
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugDropped     int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
