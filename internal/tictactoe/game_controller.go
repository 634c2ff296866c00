package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/avoidance-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/entity"
)

// GameController runs one game over a console: it reads whitespace separated
// integers from the input and writes prompts and boards to the output.
type GameController struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	console *console
}

func NewGameController(logger *slog.Logger, in io.Reader, out io.Writer) *GameController {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &GameController{
		logger:  logger.With("component", "game_controller"),
		scanner: scanner,
		console: newConsole(out),
	}
}

// Play asks for the board size and runs turns until a player wins or the board is full.
// The finished game is returned after the result has been announced.
func (that *GameController) Play(ctx context.Context) (*entity.Game, error) {
	that.console.printWelcome()
	that.console.printEnterBoardSize()

	game, err := that.readGame()
	if err != nil {
		return nil, err
	}

	that.logger.Debug("game started", "size", game.Size)

	that.console.printBoard(game.Board)
	that.console.printPlayerTurn(game.Turn)

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		if err = that.playTurn(game); err != nil {
			return nil, err
		}

		if err = that.console.Err(); err != nil {
			return nil, fmt.Errorf("failed to write to console: %w", err)
		}
	}

	that.announceResult(game)
	if err = that.console.Err(); err != nil {
		return nil, fmt.Errorf("failed to write to console: %w", err)
	}

	return game, nil
}

func (that *GameController) readGame() (*entity.Game, error) {
	for {
		size, err := that.readInt()
		switch {
		case errors.Is(err, apperror.ErrInvalidInput):
			that.console.printInputError()
			continue
		case err != nil:
			return nil, err
		}

		game, err := entity.NewGame(size)
		if errors.Is(err, apperror.ErrInvalidBoardSize) {
			that.logger.Debug("board size rejected", "size", size)
			that.console.printBoardSizeError()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		return game, nil
	}
}

// playTurn handles one round of input for the current player. Rejected input
// leaves the game untouched and the same player to move.
func (that *GameController) playTurn(game *entity.Game) error {
	row, err := that.readInt()
	if err != nil {
		return that.rejectInput(err)
	}

	if row < 0 {
		return that.undo(game, -row)
	}

	column, err := that.readInt()
	if err != nil {
		return that.rejectInput(err)
	}

	player := game.Turn
	if err = game.MakeTurn(row, column); err != nil {
		return that.rejectMove(err)
	}

	that.logger.Debug("move applied", "player", player, "row", row, "column", column, "moves", game.MoveCount())

	that.console.printBoard(game.Board)
	if !game.IsFinished() {
		that.console.printPlayerTurn(game.Turn)
	}

	return nil
}

func (that *GameController) undo(game *entity.Game, count int) error {
	if err := game.Undo(count); err != nil {
		return that.rejectMove(err)
	}

	that.logger.Debug("moves undone", "count", count, "moves", game.MoveCount())

	that.console.printBoard(game.Board)
	that.console.printPlayerTurn(game.Turn)

	return nil
}

func (that *GameController) rejectInput(err error) error {
	if errors.Is(err, apperror.ErrInvalidInput) {
		that.console.printInputError()
		return nil
	}

	return err
}

func (that *GameController) rejectMove(err error) error {
	if errors.Is(err, apperror.ErrIllegalMove) {
		that.logger.Debug("move rejected", "error", err)
		that.console.printError()
		return nil
	}

	return err
}

func (that *GameController) announceResult(game *entity.Game) {
	if game.Winner == entity.NoPlayer {
		that.console.printTie()
		return
	}

	that.console.printWinner(game.Winner)
}

func (that *GameController) readInt() (int, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, apperror.ErrInputClosed
	}

	token := that.scanner.Text()
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, token)
	}

	return value, nil
}
