package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/avoidance-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockGameController struct {
	mock.Mock
}

func (that *mockGameController) Play(ctx context.Context) (*entity.Game, error) {
	args := that.Called(ctx)
	return args.Get(0).(*entity.Game), args.Error(1)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func finishedGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame(1)
	require.NoError(t, err)
	require.NoError(t, game.MakeTurn(1, 1))

	return game
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGameManager_PlayGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Archives the result of a finished game", func(t *testing.T) {
		// Given: a controller that finishes a game and a working repository
		controller := &mockGameController{}
		repo := &mockResultRepo{}
		controller.On("Play", mock.Anything).Return(finishedGame(t), nil).Once()
		repo.On("Save", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Winner == entity.SecondPlayer && result.BoardSize == 1
		})).Return(nil).Once()

		manager := NewGameManager(discardLogger(), controller, repo)

		// When: the game is played
		result, err := manager.PlayGame(ctx)

		// Then: the result is returned and saved
		require.NoError(t, err)
		assert.Equal(t, entity.SecondPlayer, result.Winner)
		assert.Equal(t, []entity.Move{{Row: 0, Column: 0}}, result.Moves)
		_, err = uuid.Parse(result.ID)
		require.NoError(t, err)
		assert.False(t, result.FinishedAt.IsZero())

		controller.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Archive failure does not change the result", func(t *testing.T) {
		// Given: a repository that fails to save
		controller := &mockGameController{}
		repo := &mockResultRepo{}
		controller.On("Play", mock.Anything).Return(finishedGame(t), nil).Once()
		repo.On("Save", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(errRedisDown).Once()

		manager := NewGameManager(discardLogger(), controller, repo)

		// When: the game is played
		result, err := manager.PlayGame(ctx)

		// Then: the game outcome is still reported
		require.NoError(t, err)
		assert.Equal(t, entity.SecondPlayer, result.Winner)
		repo.AssertExpectations(t)
	})

	t.Run("Skips the archive without a repository", func(t *testing.T) {
		controller := &mockGameController{}
		controller.On("Play", mock.Anything).Return(finishedGame(t), nil).Once()

		manager := NewGameManager(discardLogger(), controller, nil)

		result, err := manager.PlayGame(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.SecondPlayer, result.Winner)
	})

	t.Run("Returns controller errors", func(t *testing.T) {
		// Given: a controller whose input closes mid-game
		controller := &mockGameController{}
		repo := &mockResultRepo{}
		controller.On("Play", mock.Anything).Return((*entity.Game)(nil), apperror.ErrInputClosed).Once()

		manager := NewGameManager(discardLogger(), controller, repo)

		// When: the game is played
		result, err := manager.PlayGame(ctx)

		// Then: the error is wrapped and nothing is archived
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Nil(t, result)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
