package entity

import (
	"fmt"

	"github.com/rocketscienceinc/avoidance-tictactoe/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	MinBoardSize = 1
	MaxBoardSize = 11
)

type Player int

const (
	NoPlayer     Player = 0
	FirstPlayer  Player = 1
	SecondPlayer Player = 2
)

type Cell byte

const (
	EmptyCell Cell = '_'
	MarkX     Cell = 'X'
	MarkO     Cell = 'O'
)

// Mark returns the cell value a player places on the board.
func (that Player) Mark() Cell {
	if that == FirstPlayer {
		return MarkX
	}
	return MarkO
}

func (that Player) Opponent() Player {
	if that == FirstPlayer {
		return SecondPlayer
	}
	return FirstPlayer
}

// Move is a zero-based board coordinate.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type Game struct {
	Size    int
	Board   [][]Cell
	History []Move
	Turn    Player
	Winner  Player
	Status  string
}

func NewGame(size int) (*Game, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d is outside %d..%d", apperror.ErrInvalidBoardSize, size, MinBoardSize, MaxBoardSize)
	}

	board := make([][]Cell, size)
	for i := range board {
		board[i] = make([]Cell, size)
		for j := range board[i] {
			board[i][j] = EmptyCell
		}
	}

	return &Game{
		Size:    size,
		Board:   board,
		History: make([]Move, 0, size*size),
		Turn:    FirstPlayer,
		Winner:  NoPlayer,
		Status:  StatusOngoing,
	}, nil
}

// MoveCount is the number of placements currently on the board.
func (that *Game) MoveCount() int {
	return len(that.History)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// IsLegal reports whether the one-based (row, column) is on the board and empty.
func (that *Game) IsLegal(row, column int) bool {
	if row < 1 || row > that.Size || column < 1 || column > that.Size {
		return false
	}

	return that.Board[row-1][column-1] == EmptyCell
}

func (that *Game) IsFull() bool {
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// ApplyMove places the player's mark at the one-based (row, column) and records it.
// The caller is responsible for checking IsLegal first.
func (that *Game) ApplyMove(row, column int, player Player) {
	that.Board[row-1][column-1] = player.Mark()
	that.History = append(that.History, Move{Row: row - 1, Column: column - 1})
}

// MakeTurn plays the current player's move, passes the turn and updates the game status.
func (that *Game) MakeTurn(row, column int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !that.IsLegal(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrIllegalMove, row, column)
	}

	that.ApplyMove(row, column, that.Turn)
	that.Turn = that.Turn.Opponent()
	that.UpdateGameState()

	return nil
}

// CanUndo reports whether the last count moves may be taken back.
// Only an odd count is allowed, and never more than have been played.
func (that *Game) CanUndo(count int) bool {
	return count > 0 && count%2 == 1 && count <= that.MoveCount()
}

func (that *Game) Undo(count int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !that.CanUndo(count) {
		return fmt.Errorf("%w: cannot undo %d of %d moves", apperror.ErrIllegalMove, count, that.MoveCount())
	}

	for i := 0; i < count; i++ {
		last := that.History[len(that.History)-1]
		that.Board[last.Row][last.Column] = EmptyCell
		that.History = that.History[:len(that.History)-1]
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

func (that *Game) UpdateGameState() {
	if winner := that.DetermineWinner(); winner != NoPlayer {
		that.Winner = winner
		that.Status = StatusFinished
		return
	}

	if that.IsFull() {
		that.Winner = NoPlayer
		that.Status = StatusFinished
	}
}
