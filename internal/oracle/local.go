package oracle

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/tictactoe"
)

// casualSlip is how often a casual engine plays a random move instead of the
// best one.
const casualSlip = 0.35

// LocalOracle searches the full game tree. It is used when no remote oracle
// is configured.
type LocalOracle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocalOracle(rng *rand.Rand) *LocalOracle {
	return &LocalOracle{rng: rng}
}

func (that *LocalOracle) Suggest(ctx context.Context, board entity.Board, difficulty Difficulty) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return Suggestion{}, ErrNoAvailableMoves
	}

	if difficulty == DifficultyCasual && that.slip() {
		return Suggestion{Index: that.pick(empty), Comment: "Let's see what happens here."}, nil
	}

	me := NextMark(board)
	best, score := bestMove(board, me)

	comment := "A solid move."
	switch {
	case score > 0:
		comment = "I can see the end of this game."
	case score < 0:
		comment = "You've got me cornered."
	}

	return Suggestion{Index: best, Comment: comment}, nil
}

func (that *LocalOracle) slip() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Float64() < casualSlip
}

func (that *LocalOracle) pick(cells []int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rng.IntN(len(cells))]
}

// bestMove returns the first cell with the highest score for me. Faster wins
// and slower losses score better.
func bestMove(board entity.Board, me entity.Mark) (int, int) {
	bestIndex, bestScore := -1, math.MinInt

	for _, cell := range board.EmptyCells() {
		board[cell] = me
		score := -negamax(board, me.Opponent(), 1)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestIndex, bestScore = cell, score
		}
	}

	return bestIndex, bestScore
}

// negamax scores board from the point of view of toMove.
func negamax(board entity.Board, toMove entity.Mark, depth int) int {
	outcome := tictactoe.Evaluate(board)
	if outcome.Decided() {
		switch {
		case outcome.IsDraw():
			return 0
		case outcome.Winner == toMove:
			return entity.BoardSize + 1 - depth
		default:
			return depth - entity.BoardSize - 1
		}
	}

	best := math.MinInt
	for _, cell := range board.EmptyCells() {
		board[cell] = toMove
		score := -negamax(board, toMove.Opponent(), depth+1)
		board[cell] = entity.EmptyCell

		if score > best {
			best = score
		}
	}

	return best
}
