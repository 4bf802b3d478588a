package server

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ecocity/config"
	"github.com/zucenko/ecocity/model"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Maze.Size = 5
	cfg.Maze.Seed = 7
	cfg.Game.TimeLimit = 1
	return cfg
}

func startServer(t *testing.T, cfg *config.Config) (*GameServer, string) {
	t.Helper()
	gs := NewGameServer(cfg)
	go gs.Loop()
	ts := httptest.NewServer(gs.HandleHttpCall())
	t.Cleanup(ts.Close)
	return gs, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func read(t *testing.T, con *websocket.Conn) (model.ServerMessage, error) {
	t.Helper()
	require.NoError(t, con.SetReadDeadline(time.Now().Add(5*time.Second)))
	msg := model.ServerMessage{}
	_, r, err := con.NextReader()
	if err != nil {
		return msg, err
	}
	err = gob.NewDecoder(r).Decode(&msg)
	return msg, err
}

func send(t *testing.T, con *websocket.Conn, in model.Input) {
	t.Helper()
	w, err := con.NextWriter(websocket.BinaryMessage)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(w).Encode(model.ClientMessage{Input: in}))
	require.NoError(t, w.Close())
}

func TestPlaySession(t *testing.T) {
	cfg := testConfig(t)
	_, url := startServer(t, cfg)

	con, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer con.Close()

	setup, err := read(t, con)
	require.NoError(t, err)
	require.Len(t, setup.Setup, 1)
	s := setup.Setup[0]
	_, err = uuid.Parse(s.SessionId)
	assert.NoError(t, err)
	assert.Equal(t, 5, s.MazeSize)
	assert.Equal(t, 1, s.TimeLimit)
	assert.Equal(t, model.PLAYER, s.Player.Kind)
	items := 0
	for _, e := range s.Entities {
		if e.Kind == model.ITEM {
			items++
			require.NotNil(t, e.Item)
		}
	}
	assert.Equal(t, model.CatalogSize(), items)
	require.NotEmpty(t, setup.Huds)
	assert.Equal(t, model.HUD_TIMER, setup.Huds[0].Kind)

	send(t, con, model.Input{Right: true})

	var last model.Snapshot
	var outcome *model.Outcome
	for {
		msg, err := read(t, con)
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "closed with %v", err)
			break
		}
		for _, snap := range msg.Snapshots {
			assert.GreaterOrEqual(t, snap.Tick, last.Tick)
			last = snap
		}
		for _, h := range msg.Huds {
			if h.Kind == model.HUD_END {
				o := h.Outcome
				outcome = &o
			}
		}
	}
	require.NotNil(t, outcome, "session ended with an outcome")
	assert.Greater(t, last.Player.X, 0.0, "input reached the player")
	assert.Equal(t, model.RIGHT, last.Facing)
}

func TestMaxSessions(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.TimeLimit = 30
	cfg.Server.MaxSessions = 1
	_, url := startServer(t, cfg)

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_, err = read(t, first)
	require.NoError(t, err)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// dropping the connection frees the slot
	first.Close()
	assert.Eventually(t, func() bool {
		con, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return false
		}
		con.Close()
		return true
	}, 5*time.Second, 50*time.Millisecond)
}

func TestNewGameSessionBadMazeFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Maze.File = "does/not/exist.txt"
	_, err := NewGameSession(cfg)
	assert.Error(t, err)
}

func TestResponseCodes(t *testing.T) {
	assert.Equal(t, http.StatusOK, GAME_READY.ToHttp())
	assert.Equal(t, http.StatusServiceUnavailable, GAME_FULL.ToHttp())
	assert.Equal(t, http.StatusInternalServerError, GAME_INVALID.ToHttp())
	assert.Panics(t, func() { ResponseCode(42).ToHttp() })
	assert.Equal(t, "GS_OVER", GS_OVER.Name())
	assert.Equal(t, "ERR", PS_ERR.Name())
}
