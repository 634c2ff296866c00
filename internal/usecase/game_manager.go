package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/entity"
)

type gameController interface {
	Play(ctx context.Context) (*entity.Game, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

// GameManager plays a game through the controller and archives its result.
// With a nil resultRepo the archive is skipped.
type GameManager struct {
	logger *slog.Logger

	controller gameController
	resultRepo resultRepo
}

func NewGameManager(logger *slog.Logger, controller gameController, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		controller: controller,
		resultRepo: resultRepo,
	}
}

func (that *GameManager) PlayGame(ctx context.Context) (*entity.Result, error) {
	game, err := that.controller.Play(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	result := entity.NewResult(uuid.NewString(), game, time.Now().UTC())

	log := that.logger.With("resultID", result.ID)
	log.Info("game finished", "winner", result.Winner, "size", result.BoardSize, "moves", len(result.Moves))

	that.archive(ctx, log, result)

	return result, nil
}

func (that *GameManager) archive(ctx context.Context, log *slog.Logger, result *entity.Result) {
	if that.resultRepo == nil {
		return
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to archive result", "error", err)
		return
	}

	log.Info("result archived")
}
