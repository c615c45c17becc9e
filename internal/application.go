package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
	"github.com/rocketscienceinc/tictactoe-api/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// App holds the storage handles and managers shared by the servers and CLI commands.
type App struct {
	Games *usecase.GameManager
	Users *usecase.UserManager

	redis  *redis.Client
	sqlite *storage.Storage
}

// Open connects to Redis, opens and migrates the SQLite database and builds the managers.
func Open(ctx context.Context, logger *slog.Logger, conf *config.Config) (*App, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, fmt.Errorf("could not migrate sqlite storage: %w", err)
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		_ = sqliteStorage.Close()
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	userRepo := repository.NewUserRepository(sqliteStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage)

	return &App{
		Games: usecase.NewGameManager(logger, userRepo, gameRepo),
		Users: usecase.NewUserManager(logger, userRepo),

		redis:  redisStorage,
		sqlite: sqliteStorage,
	}, nil
}

func (that *App) Close() error {
	return errors.Join(that.redis.Close(), that.sqlite.Close())
}

// RunApp - runs the HTTP and WebSocket servers until a signal arrives or one of them fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := Open(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = app.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	httpServer := rest.New(logger, conf.HTTPPort, app.Games, app.Users)
	wsServer := websocket.New(logger, conf.SocketPort, app.Games)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- httpServer.Start()
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsErrCh <- wsServer.Start()
	}()

	var runErr error
	select {
	case err = <-httpErrCh:
		runErr = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		runErr = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return errors.Join(runErr, httpServer.Shutdown(shutdownCtx), wsServer.Shutdown(shutdownCtx))
}
