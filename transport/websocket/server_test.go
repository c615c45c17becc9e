package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/testing/memstore"
	"github.com/rocketscienceinc/tictactoe-api/testing/suite"
)

type gameBody struct {
	ID          string `json:"id"`
	CurrentTurn string `json:"current_turn"`
	Status      string `json:"status"`
	Winner      *int64 `json:"winner"`
	Board       string `json:"board"`
}

type responseBody struct {
	Game       *gameBody `json:"game"`
	Scoreboard []struct {
		Username string `json:"username"`
		Wins     int    `json:"wins"`
		Losses   int    `json:"losses"`
		Draws    int    `json:"draws"`
	} `json:"scoreboard"`
	Error string `json:"error"`
}

type testClient struct {
	conn *websocket.Conn
}

// newTestClient starts a socket server backed by in-memory storage with one game between
// users 1 and 2, and returns a client connected to it together with that game.
func newTestClient(t *testing.T) (*testClient, *entity.Game) {
	t.Helper()

	logger := suite.NewLogger(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	users := memstore.NewUsers(
		&entity.User{ID: 1, Username: "alice", CreatedAt: created},
		&entity.User{ID: 2, Username: "bob", CreatedAt: created},
	)
	manager := usecase.NewGameManager(logger, users, memstore.NewGames())

	game, err := manager.CreateGame(context.Background(), 1, 2)
	require.NoError(t, err)

	server := httptest.NewServer(New(logger, "0", manager).Handler())
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testClient{conn: conn}, game
}

func (that *testClient) send(t *testing.T, action, payload string) (string, responseBody) {
	t.Helper()

	msg := Message{Action: action}
	if payload != "" {
		msg.Payload = json.RawMessage(payload)
	}

	require.NoError(t, that.conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, that.conn.ReadJSON(&reply))

	var body responseBody
	require.NoError(t, json.Unmarshal(reply.Payload, &body))

	return reply.Action, body
}

func TestServer_GameGet(t *testing.T) {
	client, game := newTestClient(t)

	t.Run("Known game", func(t *testing.T) {
		action, body := client.send(t, "game:get", `{"game_id": "`+game.ID+`"}`)

		assert.Equal(t, "game:get", action)
		require.NotNil(t, body.Game)
		assert.Equal(t, game.ID, body.Game.ID)
		assert.Equal(t, "X", body.Game.CurrentTurn)
		assert.Empty(t, body.Error)
	})

	t.Run("Unknown game", func(t *testing.T) {
		_, body := client.send(t, "game:get", `{"game_id": "missing"}`)

		assert.Nil(t, body.Game)
		assert.Equal(t, "not found", body.Error)
	})

	t.Run("Missing game id", func(t *testing.T) {
		_, body := client.send(t, "game:get", `{}`)

		assert.Equal(t, "game_id is required", body.Error)
	})
}

func TestServer_GameMove(t *testing.T) {
	client, game := newTestClient(t)

	move := func(t *testing.T, userID, position int) responseBody {
		t.Helper()

		payload, err := json.Marshal(map[string]any{"game_id": game.ID, "user_id": userID, "position": position})
		require.NoError(t, err)

		action, body := client.send(t, "game:move", string(payload))
		require.Equal(t, "game:move", action)

		return body
	}

	// Given: X takes the top row while O plays the middle row
	for i, position := range []int{0, 3, 1, 4} {
		body := move(t, 1+i%2, position)
		require.Empty(t, body.Error)
	}

	t.Run("Wrong turn is rejected", func(t *testing.T) {
		body := move(t, 2, 5)

		assert.Equal(t, "it's not your turn", body.Error)
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		body := move(t, 1, 4)

		assert.Equal(t, "invalid position", body.Error)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		body := move(t, 1, 2)

		require.NotNil(t, body.Game)
		assert.Equal(t, "FINISHED", body.Game.Status)
		require.NotNil(t, body.Game.Winner)
		assert.Equal(t, int64(1), *body.Game.Winner)
		assert.Equal(t, "XXXOO    ", body.Game.Board)
	})

	t.Run("Missing user", func(t *testing.T) {
		_, body := client.send(t, "game:move", `{"game_id": "`+game.ID+`", "position": 5}`)

		assert.Equal(t, "invalid user", body.Error)
	})
}

func TestServer_GameMove_LooseInput(t *testing.T) {
	client, game := newTestClient(t)

	cases := []struct {
		name    string
		payload string
		error   string
	}{
		{"Word position", `{"game_id": "GAME", "user_id": 1, "position": "four"}`, "invalid position"},
		{"Fractional position", `{"game_id": "GAME", "user_id": 1, "position": 4.5}`, "invalid position"},
		{"Non-integer user", `{"game_id": "GAME", "user_id": "x", "position": 4}`, "invalid user"},
		{"Unknown user beats bad position", `{"game_id": "GAME", "user_id": 99, "position": "x"}`, "invalid user"},
		{"Unknown game without user", `{"game_id": "missing", "position": 4}`, "not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, body := client.send(t, "game:move", strings.ReplaceAll(tc.payload, "GAME", game.ID))

			assert.Nil(t, body.Game)
			assert.Equal(t, tc.error, body.Error)
		})
	}

	t.Run("Numeric strings are read as integers", func(t *testing.T) {
		// Given: the untouched game
		// When: X sends both fields as strings
		_, body := client.send(t, "game:move", `{"game_id": "`+game.ID+`", "user_id": "1", "position": "4"}`)

		// Then: the move is played like over HTTP
		require.Empty(t, body.Error)
		require.NotNil(t, body.Game)
		assert.Equal(t, "    X    ", body.Game.Board)
		assert.Equal(t, "O", body.Game.CurrentTurn)
	})
}

func TestServer_Scoreboard(t *testing.T) {
	client, _ := newTestClient(t)

	action, body := client.send(t, "scoreboard", "")

	assert.Equal(t, "scoreboard", action)
	require.Len(t, body.Scoreboard, 2)
	assert.Equal(t, "alice", body.Scoreboard[0].Username)
	assert.Zero(t, body.Scoreboard[0].Wins)
}

func TestServer_UnknownAction(t *testing.T) {
	client, _ := newTestClient(t)

	action, body := client.send(t, "game:leave", `{}`)

	assert.Equal(t, "game:leave", action)
	assert.Equal(t, "unknown action", body.Error)

	// the connection stays usable
	_, body = client.send(t, "scoreboard", "")
	assert.Len(t, body.Scoreboard, 2)
}
