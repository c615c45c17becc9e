package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/testing/memstore"
	"github.com/rocketscienceinc/tictactoe-api/testing/suite"
)

type gameBody struct {
	ID          string     `json:"id"`
	PlayerX     int64      `json:"player_x"`
	PlayerO     int64      `json:"player_o"`
	CurrentTurn string     `json:"current_turn"`
	Status      string     `json:"status"`
	Winner      *int64     `json:"winner"`
	Board       string     `json:"board"`
	Moves       []moveBody `json:"moves"`
}

type moveBody struct {
	Player   int64  `json:"player"`
	Position int    `json:"position"`
	Turn     string `json:"turn"`
}

type testAPI struct {
	t      *testing.T
	server *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := suite.NewLogger(t)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	users := memstore.NewUsers(
		&entity.User{ID: 1, Username: "alice", CreatedAt: created},
		&entity.User{ID: 2, Username: "bob", CreatedAt: created},
	)
	games := memstore.NewGames()

	server := httptest.NewServer(NewRouter(
		logger,
		usecase.NewGameManager(logger, users, games),
		usecase.NewUserManager(logger, users),
	))
	t.Cleanup(server.Close)

	return &testAPI{t: t, server: server}
}

func (that *testAPI) do(method, path, body string) (int, []byte) {
	that.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, that.server.URL+path, reader)
	require.NoError(that.t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(that.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(that.t, err)

	return resp.StatusCode, raw
}

func (that *testAPI) createGame() gameBody {
	that.t.Helper()

	status, raw := that.do(http.MethodPost, "/games", `{"player_x": 1, "player_o": 2}`)
	require.Equal(that.t, http.StatusCreated, status, string(raw))

	var game gameBody
	require.NoError(that.t, json.Unmarshal(raw, &game))

	return game
}

func (that *testAPI) move(gameID string, body string) (int, []byte) {
	that.t.Helper()

	return that.do(http.MethodPost, "/games/"+gameID+"/move", body)
}

func errorOf(t *testing.T, raw []byte) string {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	return body.Error
}

func TestPingAndHealth(t *testing.T) {
	api := newTestAPI(t)

	status, raw := api.do(http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(raw))

	status, raw = api.do(http.MethodGet, "/health/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Server is up!"}`, string(raw))
}

func TestUsers(t *testing.T) {
	t.Run("Registers and lists users", func(t *testing.T) {
		api := newTestAPI(t)

		// When: a new user registers
		status, raw := api.do(http.MethodPost, "/users", `{"username": " carol "}`)

		// Then: it is created with the trimmed name and listed after the existing users
		require.Equal(t, http.StatusCreated, status, string(raw))

		var user entity.User
		require.NoError(t, json.Unmarshal(raw, &user))
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, "carol", user.Username)

		status, raw = api.do(http.MethodGet, "/users", "")
		require.Equal(t, http.StatusOK, status)

		var users []entity.User
		require.NoError(t, json.Unmarshal(raw, &users))
		require.Len(t, users, 3)
		assert.Equal(t, "carol", users[2].Username)
	})

	t.Run("Rejects a taken username", func(t *testing.T) {
		api := newTestAPI(t)

		status, raw := api.do(http.MethodPost, "/users", `{"username": "alice"}`)

		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "username is already taken", errorOf(t, raw))
	})

	t.Run("Rejects an empty username", func(t *testing.T) {
		api := newTestAPI(t)

		status, _ := api.do(http.MethodPost, "/users", `{"username": ""}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Rejects a malformed body", func(t *testing.T) {
		api := newTestAPI(t)

		status, _ := api.do(http.MethodPost, "/users", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestCreateGame(t *testing.T) {
	t.Run("Starts a game with X to move", func(t *testing.T) {
		api := newTestAPI(t)

		game := api.createGame()

		assert.NotEmpty(t, game.ID)
		assert.Equal(t, int64(1), game.PlayerX)
		assert.Equal(t, int64(2), game.PlayerO)
		assert.Equal(t, "X", game.CurrentTurn)
		assert.Equal(t, "IN_PROGRESS", game.Status)
		assert.Nil(t, game.Winner)
		assert.Equal(t, "         ", game.Board)
		assert.NotNil(t, game.Moves)
		assert.Empty(t, game.Moves)
	})

	cases := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{"same player", `{"player_x": 1, "player_o": 1}`, http.StatusBadRequest, "Need distinct player_x and player_o IDs."},
		{"missing player", `{"player_x": 1}`, http.StatusBadRequest, "Need distinct player_x and player_o IDs."},
		{"unknown player", `{"player_x": 1, "player_o": 99}`, http.StatusBadRequest, "Both players must exist."},
		{"non-integer player", `{"player_x": 1, "player_o": "bob"}`, http.StatusBadRequest, "Both players must exist."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)

			status, raw := api.do(http.MethodPost, "/games", tc.body)

			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.error, errorOf(t, raw))
		})
	}
}

func TestGetGame(t *testing.T) {
	api := newTestAPI(t)

	game := api.createGame()

	status, raw := api.do(http.MethodGet, "/games/"+game.ID, "")
	require.Equal(t, http.StatusOK, status)

	var fetched gameBody
	require.NoError(t, json.Unmarshal(raw, &fetched))
	assert.Equal(t, game, fetched)

	status, raw = api.do(http.MethodGet, "/games/unknown", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", errorOf(t, raw))
}

func TestSubmitMove(t *testing.T) {
	t.Run("Plays a game to X's win", func(t *testing.T) {
		api := newTestAPI(t)
		game := api.createGame()

		// Given: X and O alternate with X completing the diagonal
		moves := []string{
			`{"user_id": 1, "position": 0}`,
			`{"user_id": 2, "position": 1}`,
			`{"user_id": 1, "position": 4}`,
			`{"user_id": 2, "position": "2"}`,
		}
		for _, body := range moves {
			status, raw := api.move(game.ID, body)
			require.Equal(t, http.StatusOK, status, string(raw))
		}

		// When: X plays the last corner
		status, raw := api.move(game.ID, `{"user_id": 1, "position": 8}`)

		// Then: the game is finished with X's user as winner
		require.Equal(t, http.StatusOK, status, string(raw))

		var finished gameBody
		require.NoError(t, json.Unmarshal(raw, &finished))
		assert.Equal(t, "FINISHED", finished.Status)
		require.NotNil(t, finished.Winner)
		assert.Equal(t, int64(1), *finished.Winner)
		assert.Equal(t, "X", finished.CurrentTurn)
		assert.Equal(t, "XOO X   X", finished.Board)
		require.Len(t, finished.Moves, 5)
		assert.Equal(t, 8, finished.Moves[4].Position)

		// And: further moves are rejected
		status, raw = api.move(game.ID, `{"user_id": 2, "position": 5}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "game is already finished", errorOf(t, raw))
	})

	t.Run("Reports rejected moves", func(t *testing.T) {
		api := newTestAPI(t)
		game := api.createGame()

		status, raw := api.move(game.ID, `{"user_id": 1, "position": 4}`)
		require.Equal(t, http.StatusOK, status, string(raw))

		cases := []struct {
			name   string
			gameID string
			body   string
			status int
			error  string
		}{
			{"unknown game", "missing", `{"user_id": 1, "position": 0}`, http.StatusNotFound, "not found"},
			{"unknown game beats bad user", "missing", `{"user_id": "x", "position": 0}`, http.StatusNotFound, "not found"},
			{"unknown game beats missing user", "missing", `{"position": 0}`, http.StatusNotFound, "not found"},
			{"non-integer user", game.ID, `{"user_id": "x", "position": 0}`, http.StatusBadRequest, "invalid user"},
			{"unknown user", game.ID, `{"user_id": 99, "position": 0}`, http.StatusBadRequest, "invalid user"},
			{"unknown user beats bad position", game.ID, `{"user_id": 99, "position": "x"}`, http.StatusBadRequest, "invalid user"},
			{"non-integer position", game.ID, `{"user_id": 2, "position": "x"}`, http.StatusBadRequest, "invalid position"},
			{"fractional position", game.ID, `{"user_id": 2, "position": 4.5}`, http.StatusBadRequest, "invalid position"},
			{"out of range", game.ID, `{"user_id": 2, "position": 9}`, http.StatusBadRequest, "invalid position"},
			{"occupied", game.ID, `{"user_id": 2, "position": 4}`, http.StatusBadRequest, "invalid position"},
			{"wrong turn", game.ID, `{"user_id": 1, "position": 0}`, http.StatusBadRequest, "it's not your turn"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				status, raw := api.move(tc.gameID, tc.body)

				assert.Equal(t, tc.status, status)
				assert.Equal(t, tc.error, errorOf(t, raw))
			})
		}

		// Then: none of them changed the game
		status, raw = api.do(http.MethodGet, "/games/"+game.ID, "")
		require.Equal(t, http.StatusOK, status)

		var current gameBody
		require.NoError(t, json.Unmarshal(raw, &current))
		assert.Equal(t, "    X    ", current.Board)
		assert.Equal(t, "O", current.CurrentTurn)
		assert.Len(t, current.Moves, 1)
	})
}

func TestScoreboardAndHistory(t *testing.T) {
	api := newTestAPI(t)

	// Given: alice wins one game and another is left in progress
	won := api.createGame()
	for _, body := range []string{
		`{"user_id": 1, "position": 0}`,
		`{"user_id": 2, "position": 3}`,
		`{"user_id": 1, "position": 1}`,
		`{"user_id": 2, "position": 4}`,
		`{"user_id": 1, "position": 2}`,
	} {
		status, raw := api.move(won.ID, body)
		require.Equal(t, http.StatusOK, status, string(raw))
	}
	api.createGame()

	t.Run("Scoreboard", func(t *testing.T) {
		status, raw := api.do(http.MethodGet, "/scoreboard", "")
		require.Equal(t, http.StatusOK, status)

		assert.JSONEq(t, `[
			{"username": "alice", "wins": 1, "losses": 0, "draws": 0},
			{"username": "bob", "wins": 0, "losses": 1, "draws": 0}
		]`, string(raw))
	})

	t.Run("History of a user", func(t *testing.T) {
		status, raw := api.do(http.MethodGet, "/games/history/1", "")
		require.Equal(t, http.StatusOK, status)

		var games []gameBody
		require.NoError(t, json.Unmarshal(raw, &games))
		assert.Len(t, games, 2)
	})

	t.Run("History of every game", func(t *testing.T) {
		status, raw := api.do(http.MethodGet, "/games/history", "")
		require.Equal(t, http.StatusOK, status)

		var games []gameBody
		require.NoError(t, json.Unmarshal(raw, &games))
		assert.Len(t, games, 2)
	})

	t.Run("History of an unknown user", func(t *testing.T) {
		status, _ := api.do(http.MethodGet, "/games/history/99", "")

		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
	assert.Equal(t, "Internal Server Error", messageFor(io.ErrUnexpectedEOF))
}
