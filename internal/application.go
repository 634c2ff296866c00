package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/avoidance-tictactoe/internal/config"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/repository"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/usecase"
)

// RunApp - plays one game on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var resultRepo repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			log.Error("results archive unavailable, continuing without it", "error", err)
		} else {
			defer func() {
				if err = redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}()

			resultRepo = repository.NewResultRepository(redisStorage.Connection)
		}
	}

	controller := tictactoe.NewGameController(logger, os.Stdin, os.Stdout)
	gameManager := usecase.NewGameManager(logger, controller, resultRepo)

	// the console read blocks, so the game runs beside the signal wait
	gameErrCh := make(chan error, 1)
	go func() {
		_, err := gameManager.PlayGame(ctx)
		gameErrCh <- err
	}()

	select {
	case err := <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
