package oracle

import (
	"context"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

const FallbackComment = "I'm having trouble thinking... I'll just go here."

type Source string

const (
	SourceOracle    Source = "oracle"
	SourceCorrected Source = "corrected"
	SourceFallback  Source = "fallback"
)

// Decision is a move that is legal on the board it was decided for.
type Decision struct {
	Index   int
	Comment string
	Source  Source
}

// Decide asks oracle for a move and repairs whatever comes back: an occupied
// or out of range index is replaced by a random empty cell, and any failure
// falls back to a random empty cell. The only error is a full board.
func Decide(ctx context.Context, oracle MoveOracle, board entity.Board, difficulty Difficulty, rng *rand.Rand) (Decision, error) {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Decision{}, ErrNoAvailableMoves
	}

	suggestion, err := oracle.Suggest(ctx, board, difficulty)
	if err != nil {
		return Decision{
			Index:   empty[rng.IntN(len(empty))],
			Comment: FallbackComment,
			Source:  SourceFallback,
		}, nil
	}

	if suggestion.Index < 0 || suggestion.Index >= entity.BoardSize || board[suggestion.Index] != entity.EmptyCell {
		return Decision{
			Index:   empty[rng.IntN(len(empty))],
			Comment: suggestion.Comment,
			Source:  SourceCorrected,
		}, nil
	}

	return Decision{
		Index:   suggestion.Index,
		Comment: suggestion.Comment,
		Source:  SourceOracle,
	}, nil
}
