package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/model"
)

const (
	MESSAGES_BUFFER = 64
	FLUSH_TIMEOUT   = time.Second
)

func NewGameServer(cfg *config.Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make(map[string]*GameSession),
		GameRequests: make(chan GameRequest),
		Ended:        make(chan string),
		Upgrader:     &websocket.Upgrader{},
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("HandleHttpCall connection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				log.Warnf("HandleHttpCall refused: %s", gca.ResponseCode.Name())
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameContextAwaiting TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		gs := gca.GameSession

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			s.Ended <- gs.Id
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		gs.Start(PlayerConnectRequest{Con: con, GameOver: gameOver}, s.Ended)
		<-gameOver
		log.WithField("session", gs.Id).Debug("HandleHttpCall game over")
	}
}

// Loop owns the session registry. Sessions report their end on Ended.
func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			if len(s.GameSessions) >= s.Config.Server.MaxSessions {
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_FULL}
				continue
			}
			gs, err := NewGameSession(s.Config)
			if err != nil {
				log.Errorf("GameServer.Loop cannot create session: %v", err)
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALID}
				continue
			}
			s.GameSessions[gs.Id] = gs
			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		case id := <-s.Ended:
			delete(s.GameSessions, id)
			log.WithFields(log.Fields{"session": id, "open": len(s.GameSessions)}).Info("GameServer.Loop session ended")
		}
	}
}

// Start attaches the player connection and runs the session until the city
// is over or the connection breaks. The session id is sent on ended last.
func (gs *GameSession) Start(pcr PlayerConnectRequest, ended chan<- string) {
	ps := &PlayerSession{
		State:          PS_NEW,
		GameSession:    gs,
		Conn:           pcr.Con,
		GameOver:       pcr.GameOver,
		MessagesToSend: make(chan model.ServerMessage, MESSAGES_BUFFER),
	}
	conn := pcr.Con
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ps.DebugLastPing = time.Now()
			ps.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	gs.Player = ps
	gs.State = GS_PLAY
	ps.State = PS_PLAY
	ps.MessagesToSend <- gs.MakeGameSetupMessage()

	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	go func() {
		gs.Loop.Run()
		if gs.State == GS_PLAY {
			gs.State = GS_OVER
			ps.State = PS_OVER
			gs.flush()
		}
		log.WithFields(log.Fields{
			"session": gs.Id,
			"state":   gs.State.Name(),
			"good":    gs.World.Session.GoodPicked,
			"bad":     gs.World.Session.BadPicked,
			"dropped": ps.DebugDropped,
		}).Info("GameSession over")
		close(gs.done)
		close(ps.MessagesToSend)
		ended <- gs.Id
	}()
}

func (gs *GameSession) MakeGameSetupMessage() model.ServerMessage {
	entities := make([]model.Entity, 0, len(gs.World.Entities()))
	for _, e := range gs.World.Entities() {
		entities = append(entities, *e)
	}
	msg := model.ServerMessage{
		Setup: []model.Setup{{
			SessionId: gs.Id,
			MazeSize:  gs.mazeSize,
			TimeLimit: gs.World.Session.TimeRemaining,
			Entities:  entities,
			Player:    gs.World.Player.Entity,
		}},
		Huds: gs.huds,
	}
	gs.huds = make([]model.HudEvent, 0)
	return msg
}

// publish sends the tick's snapshot and queued HUD events. When the writer
// falls behind the snapshot is dropped, HUD events and removals wait for the
// next one.
func (gs *GameSession) publish() {
	gs.removed = append(gs.removed, gs.World.Removed()...)
	select {
	case gs.Player.MessagesToSend <- gs.snapshot():
		gs.huds = make([]model.HudEvent, 0)
		gs.removed = nil
	default:
		gs.Player.DebugDropped++
	}
}

func (gs *GameSession) snapshot() model.ServerMessage {
	p := gs.World.Player
	return model.ServerMessage{
		Snapshots: []model.Snapshot{{
			Tick:    gs.World.Ticks(),
			Player:  p.Pos,
			Facing:  p.Facing,
			Frame:   p.Sprite.Frame,
			Removed: gs.removed,
		}},
		Huds: gs.huds,
	}
}

// flush hands the writer whatever publish could not, after the loop ended.
func (gs *GameSession) flush() {
	if len(gs.huds) == 0 && len(gs.removed) == 0 {
		return
	}
	select {
	case gs.Player.MessagesToSend <- gs.snapshot():
	case <-time.After(FLUSH_TIMEOUT):
		log.WithField("session", gs.Id).Warn("GameSession.flush TIMEOUTED")
	}
}

// fail ends the session after a connection error. It is a no-op once the
// loop has stopped.
func (gs *GameSession) fail() {
	select {
	case gs.Loop.Events <- func() {
		gs.State = GS_ERR
		gs.Player.State = PS_ERR
		gs.Loop.Stop()
	}:
	case <-gs.done:
	}
}

func (ps *PlayerSession) LoopChannelRead() {
	gs := ps.GameSession
	log.WithField("session", gs.Id).Debug("LoopChannelRead STARTED")
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			select {
			case <-gs.done:
			default:
				log.Warnf("LoopChannelRead err reading message from Conn %v", err)
				gs.fail()
			}
			break
		}
		cm := &model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			gs.fail()
			break
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++

		in := cm.Input
		gs.Loop.Post(func() { gs.Loop.SetInput(in) })
	}
	log.WithField("session", gs.Id).Debug("LoopChannelRead ENDED")
}

// this function only consumes, so publishing never blocks on a slow client
func (ps *PlayerSession) LoopChannelWrite() {
	gs := ps.GameSession
	defer close(ps.GameOver)
	for mes := range ps.MessagesToSend {
		if err := ps.write(mes); err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite %v", err)
			gs.fail()
			return
		}
		ps.DebugOutMessages++
	}
	_ = ps.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"),
		time.Now().Add(time.Second))
	log.WithField("session", gs.Id).Debug("LoopChannelWrite ENDED")
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}
