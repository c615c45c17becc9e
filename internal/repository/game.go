package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const gamesIndexKey = "games"

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
	SaveMove(ctx context.Context, before, after *entity.Game, move entity.Move) error
}

type gameRecord struct {
	ID          string        `json:"id"`
	PlayerXID   int64         `json:"player_x_id"`
	PlayerOID   int64         `json:"player_o_id"`
	Board       string        `json:"board"`
	CurrentTurn entity.Mark   `json:"current_turn"`
	Status      entity.Status `json:"status"`
	WinnerID    *int64        `json:"winner_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type moveRecord struct {
	ID       string      `json:"id"`
	GameID   string      `json:"game_id"`
	PlayerID int64       `json:"player_id"`
	Position int         `json:"position"`
	Turn     entity.Mark `json:"turn"`
	PlayedAt time.Time   `json:"played_at"`
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func movesKey(id string) string {
	return "game:" + id + ":moves"
}

func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(newGameRecord(game))
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.ZAdd(ctx, gamesIndexKey, redis.Z{
			Score:  float64(game.CreatedAt.UnixMilli()),
			Member: game.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var (
		gameCmd  *redis.StringCmd
		movesCmd *redis.StringSliceCmd
	)

	_, err := that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		gameCmd = pipe.Get(ctx, gameKey(id))
		movesCmd = pipe.LRange(ctx, movesKey(id), 0, -1)
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: game %s", apperror.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return decodeGame(gameCmd.Val(), movesCmd.Val())
}

// List returns every stored game, newest first.
func (that *dbGame) List(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.ZRevRange(ctx, gamesIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Game{}, nil
	}

	gameCmds := make([]*redis.StringCmd, len(ids))
	movesCmds := make([]*redis.StringSliceCmd, len(ids))

	_, err = that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			gameCmds[i] = pipe.Get(ctx, gameKey(id))
			movesCmds[i] = pipe.LRange(ctx, movesKey(id), 0, -1)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	games := make([]*entity.Game, 0, len(ids))
	for i := range ids {
		// index entry without a game body
		if errors.Is(gameCmds[i].Err(), redis.Nil) {
			continue
		}

		game, err := decodeGame(gameCmds[i].Val(), movesCmds[i].Val())
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

// SaveMove writes after and appends move in one transaction. The write only happens if
// the stored game still matches before; otherwise ErrConcurrentMove is returned and
// nothing changes.
func (that *dbGame) SaveMove(ctx context.Context, before, after *entity.Game, move entity.Move) error {
	key := gameKey(after.ID)
	expected := newGameRecord(before)

	gameJSON, err := json.Marshal(newGameRecord(after))
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	moveJSON, err := json.Marshal(newMoveRecord(move))
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("%w: game %s", apperror.ErrNotFound, after.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		var stored gameRecord
		if err = json.Unmarshal([]byte(raw), &stored); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		movesCount, err := tx.LLen(ctx, movesKey(after.ID)).Result()
		if err != nil {
			return fmt.Errorf("failed to count moves: %w", err)
		}

		if !stored.sameState(expected) || movesCount != int64(len(before.Moves)) {
			return fmt.Errorf("%w: game %s", apperror.ErrConcurrentMove, after.ID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			pipe.RPush(ctx, movesKey(after.ID), moveJSON)
			return nil
		})

		return err
	}

	err = that.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("%w: game %s", apperror.ErrConcurrentMove, after.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to save move: %w", err)
	}

	return nil
}

func newGameRecord(game *entity.Game) gameRecord {
	record := gameRecord{
		ID:          game.ID,
		PlayerXID:   game.PlayerXID,
		PlayerOID:   game.PlayerOID,
		Board:       game.Board.String(),
		CurrentTurn: game.State.Turn(),
		Status:      game.State.Status(),
		CreatedAt:   game.CreatedAt.UTC(),
	}

	if winnerID, ok := game.State.Winner(); ok {
		record.WinnerID = &winnerID
	}

	return record
}

func (that gameRecord) sameState(other gameRecord) bool {
	if that.Board != other.Board || that.CurrentTurn != other.CurrentTurn || that.Status != other.Status {
		return false
	}

	if that.WinnerID == nil || other.WinnerID == nil {
		return that.WinnerID == nil && other.WinnerID == nil
	}

	return *that.WinnerID == *other.WinnerID
}

func newMoveRecord(move entity.Move) moveRecord {
	return moveRecord{
		ID:       move.ID,
		GameID:   move.GameID,
		PlayerID: move.PlayerID,
		Position: move.Position,
		Turn:     move.Turn,
		PlayedAt: move.PlayedAt.UTC(),
	}
}

func decodeGame(rawGame string, rawMoves []string) (*entity.Game, error) {
	var record gameRecord
	if err := json.Unmarshal([]byte(rawGame), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	board, err := entity.ParseBoard(record.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to decode game %s: %w", record.ID, err)
	}

	state, err := entity.RestoreState(record.Status, record.CurrentTurn, record.WinnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to decode game %s: %w", record.ID, err)
	}

	moves := make([]entity.Move, 0, len(rawMoves))
	for _, rawMove := range rawMoves {
		var move moveRecord
		if err = json.Unmarshal([]byte(rawMove), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}

		moves = append(moves, entity.Move{
			ID:       move.ID,
			GameID:   move.GameID,
			PlayerID: move.PlayerID,
			Position: move.Position,
			Turn:     move.Turn,
			PlayedAt: move.PlayedAt,
		})
	}

	return &entity.Game{
		ID:        record.ID,
		PlayerXID: record.PlayerXID,
		PlayerOID: record.PlayerOID,
		Board:     board,
		State:     state,
		CreatedAt: record.CreatedAt,
		Moves:     moves,
	}, nil
}
