package entity

// DetermineWinner scans the board for a completed line. The player who completed
// the line loses, so the opponent of the line's owner is returned.
// All four scans run; the first non-empty result in diagonal, anti-diagonal,
// row, column order is reported.
func (that *Game) DetermineWinner() Player {
	diagonal := that.winnerByDiagonal()
	antiDiagonal := that.winnerByAntiDiagonal()
	row := that.winnerByRow()
	column := that.winnerByColumn()

	for _, winner := range []Player{diagonal, antiDiagonal, row, column} {
		if winner != NoPlayer {
			return winner
		}
	}

	return NoPlayer
}

func (that *Game) winnerByRow() Player {
	for i := 0; i < that.Size; i++ {
		streak := 0
		for j := 0; j < that.Size-1; j++ {
			if that.Board[i][j] == that.Board[i][j+1] && that.Board[i][j] != EmptyCell {
				streak++
			}
		}

		if streak == that.Size-1 {
			return opponentOfOwner(that.Board[i][0])
		}
	}

	return NoPlayer
}

func (that *Game) winnerByColumn() Player {
	for i := 0; i < that.Size; i++ {
		streak := 0
		for j := 0; j < that.Size-1; j++ {
			if that.Board[j][i] == that.Board[j+1][i] && that.Board[j][i] != EmptyCell {
				streak++
			}
		}

		if streak == that.Size-1 {
			return opponentOfOwner(that.Board[0][i])
		}
	}

	return NoPlayer
}

func (that *Game) winnerByDiagonal() Player {
	streak := 0
	for i := 0; i < that.Size-1; i++ {
		if that.Board[i][i] == that.Board[i+1][i+1] && that.Board[i][i] != EmptyCell {
			streak++
		}
	}

	if streak == that.Size-1 {
		return opponentOfOwner(that.Board[0][0])
	}

	return NoPlayer
}

func (that *Game) winnerByAntiDiagonal() Player {
	last := that.Size - 1

	streak := 0
	for i := 0; i < last; i++ {
		if that.Board[i][last-i] == that.Board[i+1][last-i-1] && that.Board[i][last-i] != EmptyCell {
			streak++
		}
	}

	if streak == last {
		return opponentOfOwner(that.Board[last][0])
	}

	return NoPlayer
}

// opponentOfOwner maps the mark that owns a line to the winning player.
// Anything other than X, including an empty 1x1 board, credits the first player.
func opponentOfOwner(owner Cell) Player {
	if owner == MarkX {
		return SecondPlayer
	}
	return FirstPlayer
}
