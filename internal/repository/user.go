package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, username string, createdAt time.Time) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Create(ctx context.Context, username string, createdAt time.Time) (*entity.User, error) {
	query := `INSERT INTO users (username, created_at) VALUES (?, ?)`

	createdAt = createdAt.UTC()

	result, err := that.conn.ExecContext(ctx, query, username, createdAt.UnixMilli())
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUsernameTaken, username)
		}
		return nil, fmt.Errorf("can't save user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("can't read user id: %w", err)
	}

	return &entity.User{
		ID:        id,
		Username:  username,
		CreatedAt: time.UnixMilli(createdAt.UnixMilli()).UTC(),
	}, nil
}

func (that *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, username, created_at FROM users WHERE id = ?`

	user, err := scanUser(that.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %d", apperror.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return user, nil
}

func (that *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, username, created_at FROM users ORDER BY id`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't list users: %w", err)
	}
	defer rows.Close()

	users := []*entity.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list users: %w", err)
	}

	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*entity.User, error) {
	var (
		user      entity.User
		createdAt int64
	)

	if err := row.Scan(&user.ID, &user.Username, &createdAt); err != nil {
		return nil, err
	}

	user.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &user, nil
}

func isUniqueConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
