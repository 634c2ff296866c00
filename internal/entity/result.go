package entity

import "time"

const (
	TallyFirstPlayer  = "player1"
	TallySecondPlayer = "player2"
	TallyTie          = "tie"
)

// Result is the archived record of a finished game.
type Result struct {
	ID         string    `json:"id"`
	BoardSize  int       `json:"board_size"`
	Winner     Player    `json:"winner"`
	Moves      []Move    `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(id string, game *Game, finishedAt time.Time) *Result {
	moves := make([]Move, len(game.History))
	copy(moves, game.History)

	return &Result{
		ID:         id,
		BoardSize:  game.Size,
		Winner:     game.Winner,
		Moves:      moves,
		FinishedAt: finishedAt,
	}
}

func (that *Result) IsTie() bool {
	return that.Winner == NoPlayer
}

// TallyField names the counter a result increments in the results tally.
func (that *Result) TallyField() string {
	switch that.Winner {
	case FirstPlayer:
		return TallyFirstPlayer
	case SecondPlayer:
		return TallySecondPlayer
	default:
		return TallyTie
	}
}
