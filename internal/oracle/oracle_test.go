package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/tictactoe"
)

var errOracleDown = errors.New("oracle down")

type stubOracle struct {
	suggestion Suggestion
	err        error
}

func (that stubOracle) Suggest(context.Context, entity.Board, Difficulty) (Suggestion, error) {
	return that.suggestion, that.err
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func boardOf(cells string) entity.Board {
	var board entity.Board
	for i, c := range cells {
		switch c {
		case 'A':
			board[i] = entity.MarkA
		case 'B':
			board[i] = entity.MarkB
		}
	}

	return board
}

func TestDecide(t *testing.T) {
	ctx := context.Background()
	board := boardOf("AB.A.....")

	t.Run("Accepts a legal suggestion", func(t *testing.T) {
		decision, err := Decide(ctx, stubOracle{suggestion: Suggestion{Index: 6, Comment: "blocked"}}, board, DifficultyPerfect, newRand())

		require.NoError(t, err)
		assert.Equal(t, Decision{Index: 6, Comment: "blocked", Source: SourceOracle}, decision)
	})

	t.Run("Replaces an occupied cell", func(t *testing.T) {
		// When: the oracle answers with a taken square
		decision, err := Decide(ctx, stubOracle{suggestion: Suggestion{Index: 0, Comment: "mine"}}, board, DifficultyCasual, newRand())

		// Then: an empty square is used instead
		require.NoError(t, err)
		assert.Equal(t, SourceCorrected, decision.Source)
		assert.Equal(t, entity.EmptyCell, board[decision.Index])
	})

	t.Run("Replaces an out of range index", func(t *testing.T) {
		decision, err := Decide(ctx, stubOracle{suggestion: Suggestion{Index: 12}}, board, DifficultyCasual, newRand())

		require.NoError(t, err)
		assert.Equal(t, SourceCorrected, decision.Source)
		assert.Contains(t, board.EmptyCells(), decision.Index)
	})

	t.Run("Falls back when the oracle fails", func(t *testing.T) {
		decision, err := Decide(ctx, stubOracle{err: errOracleDown}, board, DifficultyCasual, newRand())

		require.NoError(t, err)
		assert.Equal(t, SourceFallback, decision.Source)
		assert.Equal(t, FallbackComment, decision.Comment)
		assert.Contains(t, board.EmptyCells(), decision.Index)
	})

	t.Run("Full board", func(t *testing.T) {
		_, err := Decide(ctx, stubOracle{}, boardOf("ABAABBBAA"), DifficultyCasual, newRand())

		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestLocalOracle_Perfect(t *testing.T) {
	ctx := context.Background()
	engine := NewLocalOracle(newRand())

	t.Run("Takes the win", func(t *testing.T) {
		// Given: B to move with 5 completing the middle row
		board := boardOf("AA.BB.A..")

		suggestion, err := engine.Suggest(ctx, board, DifficultyPerfect)

		require.NoError(t, err)
		assert.Equal(t, 5, suggestion.Index)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: B to move and A threatening the top row
		board := boardOf("AA..B....")

		suggestion, err := engine.Suggest(ctx, board, DifficultyPerfect)

		require.NoError(t, err)
		assert.Equal(t, 2, suggestion.Index)
	})

	t.Run("Never loses against itself", func(t *testing.T) {
		var board entity.Board
		mark := entity.MarkA

		for len(board.EmptyCells()) > 0 {
			suggestion, err := engine.Suggest(ctx, board, DifficultyPerfect)
			require.NoError(t, err)

			board[suggestion.Index] = mark
			mark = mark.Opponent()
		}

		assert.True(t, tictactoe.Evaluate(board).IsDraw())
	})

	t.Run("Casual play stays legal", func(t *testing.T) {
		board := boardOf("A...B....")

		for range 50 {
			suggestion, err := engine.Suggest(ctx, board, DifficultyCasual)
			require.NoError(t, err)
			assert.Contains(t, board.EmptyCells(), suggestion.Index)
		}
	})
}

func TestHTTPOracle_Suggest(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Sends the board and reads the answer", func(t *testing.T) {
		var got suggestRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"moveIndex":8,"comment":"corner!"}`))
		}))
		t.Cleanup(srv.Close)

		client := NewHTTPOracle(logger, srv.URL, time.Second)

		suggestion, err := client.Suggest(context.Background(), boardOf("A........"), DifficultyPerfect)

		require.NoError(t, err)
		assert.Equal(t, Suggestion{Index: 8, Comment: "corner!"}, suggestion)
		assert.Equal(t, "A", got.Board[0])
		assert.Equal(t, "B", got.Player)
		assert.Equal(t, DifficultyPerfect, got.Difficulty)
	})

	t.Run("Reports a server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, err := NewHTTPOracle(logger, srv.URL, time.Second).Suggest(context.Background(), entity.Board{}, DifficultyCasual)

		require.ErrorIs(t, err, ErrBadResponse)
	})

	t.Run("Rejects an answer without an index", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"comment":"hmm"}`))
		}))
		t.Cleanup(srv.Close)

		_, err := NewHTTPOracle(logger, srv.URL, time.Second).Suggest(context.Background(), entity.Board{}, DifficultyCasual)

		require.ErrorIs(t, err, ErrBadResponse)
	})
}

func TestParseDifficulty(t *testing.T) {
	difficulty, err := ParseDifficulty("perfect")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPerfect, difficulty)

	_, err = ParseDifficulty("grandmaster")
	require.ErrorIs(t, err, ErrUnknownDifficulty)
}
