package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/scoreboard"
	"github.com/rocketscienceinc/tictactoe-api/transport/params"
)

type gameManager interface {
	CreateGame(ctx context.Context, playerXID, playerOID int64) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	SubmitMove(ctx context.Context, gameID string, userID int64, position int) (*entity.Game, error)
	RejectMove(ctx context.Context, gameID string, userID *int64) error
	ListGames(ctx context.Context) ([]*entity.Game, error)
	Scoreboard(ctx context.Context) ([]scoreboard.Entry, error)
	GameHistory(ctx context.Context, userID *int64) ([]*entity.Game, error)
}

type userManager interface {
	Register(ctx context.Context, username string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type handlers struct {
	logger *slog.Logger

	games gameManager
	users userManager
}

type createUserRequest struct {
	Username string `json:"username"`
}

type createGameRequest struct {
	PlayerX json.RawMessage `json:"player_x"`
	PlayerO json.RawMessage `json:"player_o"`
}

type moveRequest struct {
	UserID   json.RawMessage `json:"user_id"`
	Position json.RawMessage `json:"position"`
}

func (that *handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := that.users.List(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, users)
}

func (that *handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	user, err := that.users.Register(r.Context(), req.Username)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusCreated, user)
}

func (that *handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := that.games.ListGames(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, games)
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if params.IsMissing(req.PlayerX) || params.IsMissing(req.PlayerO) {
		writeError(that.logger, w, apperror.ErrSamePlayer)
		return
	}

	playerX, okX := params.Int(req.PlayerX)
	playerO, okO := params.Int(req.PlayerO)
	if !okX || !okO {
		writeError(that.logger, w, apperror.ErrPlayerNotFound)
		return
	}

	game, err := that.games.CreateGame(r.Context(), playerX, playerO)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}

// SubmitMove reports problems in the order: unknown game, bad user, bad position, rule violations.
func (that *handlers) SubmitMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameID := r.PathValue("id")

	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(that.logger, w, err)
		return
	}

	userID, okUser := params.Int(req.UserID)
	position, okPosition := params.Int(req.Position)

	if !okUser || !okPosition {
		var user *int64
		if okUser {
			user = &userID
		}
		writeError(that.logger, w, that.games.RejectMove(ctx, gameID, user))
		return
	}

	game, err := that.games.SubmitMove(ctx, gameID, userID, int(position))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, game)
}

func (that *handlers) Scoreboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.games.Scoreboard(r.Context())
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, entries)
}

func (that *handlers) GameHistory(w http.ResponseWriter, r *http.Request) {
	var userID *int64

	if raw := r.PathValue("userID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(that.logger, w, apperror.ErrNotFound)
			return
		}
		userID = &id
	}

	games, err := that.games.GameHistory(r.Context(), userID)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, games)
}
