package tictactoe

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/avoidance-tictactoe/internal/entity"
)

// console writes the game's fixed texts. The first write error is kept and
// reported by Err; later writes are dropped.
type console struct {
	out io.Writer
	err error
}

func newConsole(out io.Writer) *console {
	return &console{out: out}
}

func (that *console) Err() error {
	return that.err
}

func (that *console) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.err = err
	}
}

func (that *console) printWelcome() {
	that.printf("*** Welcome to AVOIDANCE TIC-TAC-TOE game ***\n\n")
}

func (that *console) printEnterBoardSize() {
	that.printf("Please enter board size (%d to %d):\n", entity.MinBoardSize, entity.MaxBoardSize)
}

func (that *console) printBoardSizeError() {
	that.printf("Board size must be between %d and %d, please try again:\n", entity.MinBoardSize, entity.MaxBoardSize)
}

func (that *console) printBoard(board [][]entity.Cell) {
	that.printf("\nCurrent board:\n")
	for _, row := range board {
		that.printf("|")
		for _, cell := range row {
			that.printf("%c|", cell)
		}
		that.printf("\n")
	}
	that.printf("\n")
}

func (that *console) printPlayerTurn(player entity.Player) {
	that.printf("\nPlayer ** %d **, enter next move:\n", player)
}

func (that *console) printError() {
	that.printf("Illegal move!!!, please try again:\n")
}

func (that *console) printInputError() {
	that.printf("Invalid input, please enter a number:\n")
}

func (that *console) printWinner(player entity.Player) {
	that.printf("Player %d Wins! Hooray!\n", player)
}

func (that *console) printTie() {
	that.printf("It's a tie!\n")
}
