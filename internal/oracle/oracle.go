// Package oracle suggests moves for the computer opponent.
package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

type Difficulty string

const (
	DifficultyCasual  Difficulty = "casual"
	DifficultyPerfect Difficulty = "perfect"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrNoAvailableMoves  = errors.New("no available moves")
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(value) {
	case DifficultyCasual, DifficultyPerfect:
		return Difficulty(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// Suggestion is what an oracle answered. It is untrusted until Decide has
// checked it against the board.
type Suggestion struct {
	Index   int
	Comment string
}

// MoveOracle picks a move for whoever is next on board. Implementations may
// be slow or fail; callers always have a local fallback.
type MoveOracle interface {
	Suggest(ctx context.Context, board entity.Board, difficulty Difficulty) (Suggestion, error)
}

// NextMark is the mark due to move on a board played strictly alternately.
func NextMark(board entity.Board) entity.Mark {
	if board.Count(entity.MarkA) > board.Count(entity.MarkB) {
		return entity.MarkB
	}

	return entity.MarkA
}
