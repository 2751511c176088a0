package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

const (
	a = entity.MarkA
	b = entity.MarkB
	e = entity.EmptyCell
)

func TestEvaluate(t *testing.T) {
	t.Run("Row win returns the winning line", func(t *testing.T) {
		// Given: A holds the top row
		board := entity.Board{a, a, a, b, b, e, e, e, e}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: A wins with line 0,1,2
		assert.Equal(t, entity.StatusFinished, outcome.Status)
		assert.Equal(t, a, outcome.Winner)
		assert.Equal(t, []int{0, 1, 2}, outcome.Line)
	})

	t.Run("Column win for B", func(t *testing.T) {
		// Given: B holds the middle column
		board := entity.Board{a, b, a, e, b, e, a, b, e}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: B wins with line 1,4,7
		assert.Equal(t, b, outcome.Winner)
		assert.Equal(t, []int{1, 4, 7}, outcome.Line)
	})

	t.Run("Rows take priority over columns and diagonals", func(t *testing.T) {
		// Given: a board where row 0, column 0 and the main diagonal are all A
		board := entity.Board{a, a, a, a, a, b, a, b, a}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the first line in priority order is reported
		assert.Equal(t, []int{0, 1, 2}, outcome.Line)
	})

	t.Run("Columns take priority over diagonals", func(t *testing.T) {
		// Given: column 2 and the anti-diagonal both complete
		board := entity.Board{b, e, a, e, a, a, a, b, a}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the column is reported
		assert.Equal(t, []int{2, 5, 8}, outcome.Line)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board without three in a row
		board := entity.Board{a, b, a, a, b, b, b, a, a}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is drawn
		assert.True(t, outcome.IsDraw())
		assert.Nil(t, outcome.Line)
	})

	t.Run("Board with empty cells and no line is undecided", func(t *testing.T) {
		// Given: an open board
		board := entity.Board{a, b, e, e, a, e, e, e, b}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game continues
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
		assert.False(t, outcome.Decided())
	})

	t.Run("Evaluate is deterministic", func(t *testing.T) {
		board := entity.Board{a, b, a, b, a, b, e, e, e}

		assert.Equal(t, Evaluate(board), Evaluate(board))
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("Scenario ends with A winning on the anti-diagonal", func(t *testing.T) {
		// Given: an empty game
		game := entity.NewGame()

		// When: A 4, B 0, A 8, B 1, A 2
		moves := []struct {
			mark entity.Mark
			cell int
		}{{a, 4}, {b, 0}, {a, 8}, {b, 1}, {a, 2}}
		for _, move := range moves {
			require.NoError(t, MakeTurn(game, move.mark, move.cell))
		}

		// Then: nothing is complete yet, A holds 2, 4 and 8
		assert.True(t, game.IsOngoing())
		assert.Equal(t, b, game.Turn)

		// When: B 5, A 6
		require.NoError(t, MakeTurn(game, b, 5))
		require.NoError(t, MakeTurn(game, a, 6))

		// Then: A wins with line 2,4,6
		assert.Equal(t, a, game.Outcome.Winner)
		assert.Equal(t, []int{2, 4, 6}, game.Outcome.Line)
	})

	t.Run("Marks strictly alternate starting with A", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame()

		// When: moves are played in order
		for i, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			expected := a
			if i%2 == 1 {
				expected = b
			}
			require.Equal(t, expected, game.Turn)
			require.NoError(t, MakeTurn(game, expected, cell))

			// Then: A count is always equal to or one more than B count
			diff := game.Board.Count(a) - game.Board.Count(b)
			require.True(t, diff == 0 || diff == 1)
		}
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game with A to move
		game := entity.NewGame()

		// When: B tries to move
		err := MakeTurn(game, b, 1)

		// Then: the move is rejected and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		require.Equal(t, entity.NewGame(), game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: A has taken cell 0
		game := entity.NewGame()
		require.NoError(t, MakeTurn(game, a, 0))

		// When: B tries the same cell
		err := MakeTurn(game, b, 0)

		// Then: ErrCellOccupied is returned and it is still B's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, b, game.Turn)
	})

	t.Run("Invalid cell indices", func(t *testing.T) {
		game := entity.NewGame()

		assert.ErrorIs(t, MakeTurn(game, a, 9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, MakeTurn(game, a, -1), apperror.ErrInvalidCell)
	})

	t.Run("No move succeeds after the game is decided", func(t *testing.T) {
		// Given: A has won
		game := entity.NewGame()
		for _, move := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, MakeTurn(game, game.Turn, move))
		}
		require.True(t, game.IsFinished())

		// When: any further move is attempted on a free cell
		for _, cell := range game.Board.EmptyCells() {
			err := MakeTurn(game, game.Turn, cell)

			// Then: it is rejected
			assert.ErrorIs(t, err, apperror.ErrGameFinished)
		}

		// And: the turn stayed frozen on the winner
		assert.Equal(t, a, game.Turn)
	})
}

func TestPlaceRemote(t *testing.T) {
	t.Run("Remote move reproduces the local board", func(t *testing.T) {
		// Given: two games, one played locally and one fed by remote moves
		local := entity.NewGame()
		remote := entity.NewGame()

		// When: the same cells are played in both
		for _, cell := range []int{4, 0, 8} {
			mark := local.Turn
			require.NoError(t, MakeTurn(local, mark, cell))
			require.NoError(t, PlaceRemote(remote, mark, cell))
		}

		// Then: both games are identical
		assert.Equal(t, local, remote)
	})

	t.Run("Turn goes to the opponent of the received mark", func(t *testing.T) {
		// Given: a game where A is on move
		game := entity.NewGame()

		// When: a B move arrives from the peer
		require.NoError(t, PlaceRemote(game, b, 3))

		// Then: it is A's turn
		assert.Equal(t, a, game.Turn)
	})

	t.Run("Occupied cell is a protocol violation", func(t *testing.T) {
		// Given: cell 0 is taken
		game := entity.NewGame()
		require.NoError(t, MakeTurn(game, a, 0))
		before := *game

		// When: the peer reports a move on cell 0
		err := PlaceRemote(game, b, 0)

		// Then: nothing is applied
		require.ErrorIs(t, err, apperror.ErrProtocolViolation)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Unknown mark is a protocol violation", func(t *testing.T) {
		game := entity.NewGame()

		err := PlaceRemote(game, entity.Mark("Z"), 0)

		require.ErrorIs(t, err, apperror.ErrProtocolViolation)
	})
}

func TestReset(t *testing.T) {
	t.Run("Two resets equal one", func(t *testing.T) {
		// Given: a game in progress
		game := entity.NewGame()
		require.NoError(t, MakeTurn(game, a, 4))

		// When: reset twice
		Reset(game)
		once := *game
		Reset(game)

		// Then: the state is the same as after a single reset
		assert.Equal(t, once, *game)
		assert.Equal(t, *entity.NewGame(), *game)
	})
}
