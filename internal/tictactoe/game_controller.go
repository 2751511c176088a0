package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

// WinCombos is scanned in order: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate derives the outcome of board. The first complete line in WinCombos wins.
func Evaluate(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Outcome{
				Status: entity.StatusFinished,
				Winner: a,
				Line:   []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return entity.Outcome{Status: entity.StatusOngoing}
		}
	}

	return entity.Outcome{Status: entity.StatusFinished, Winner: entity.MarkTie}
}

// MakeTurn places player's mark when it is that player's turn.
func MakeTurn(game *entity.Game, player entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return place(game, player, cell)
}

// PlaceRemote applies a move reported by the peer. The turn is not checked:
// after the move it is always the opponent of player.
func PlaceRemote(game *entity.Game, player entity.Mark, cell int) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrProtocolViolation, player)
	}

	if game.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, apperror.ErrGameFinished)
	}

	if err := place(game, player, cell); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrProtocolViolation, err)
	}

	return nil
}

// Reset puts game back to the empty board with A to move.
func Reset(game *entity.Game) {
	*game = *entity.NewGame()
}

func place(game *entity.Game, player entity.Mark, cell int) error {
	board, err := entity.ApplyMove(game.Board, cell, player)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.Outcome = Evaluate(board)

	// the turn is frozen once the game is decided
	if !game.Outcome.Decided() {
		game.Turn = player.Opponent()
	}

	return nil
}
