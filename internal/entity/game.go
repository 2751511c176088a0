package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
)

type Mark string

const (
	MarkA Mark = "A"
	MarkB Mark = "B"

	// MarkTie is the winner of a drawn game.
	MarkTie Mark = "-"

	EmptyCell Mark = ""
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const BoardSize = 9

type Board [BoardSize]Mark

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkA {
		return MarkB
	}
	return MarkA
}

func (that Mark) IsPlayer() bool {
	return that == MarkA || that == MarkB
}

// Outcome is always derived from the board, see tictactoe.Evaluate.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Line   []int  `json:"line,omitempty"`
}

func (that Outcome) Decided() bool {
	return that.Status == StatusFinished
}

func (that Outcome) IsDraw() bool {
	return that.Decided() && that.Winner == MarkTie
}

// ApplyMove returns a copy of board with mark placed at index.
func ApplyMove(board Board, index int, mark Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if board[index] != EmptyCell {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	board[index] = mark

	return board, nil
}

// EmptyCells lists the indices still free, in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

type Game struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Outcome Outcome `json:"outcome"`
}

func NewGame() *Game {
	return &Game{
		Turn:    MarkA,
		Outcome: Outcome{Status: StatusOngoing},
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.Decided()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome.Status == StatusOngoing
}
