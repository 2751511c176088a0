package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-peer/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-peer/mocks/rest"
)

func newTestServer(t *testing.T) (*mockedRest.MockgameUseCase, http.Handler) {
	t.Helper()

	game := mockedRest.NewMockgameUseCase(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := NewServer(logger, NewPingHandler(), NewGameHandler(game))

	return game, srv.Handler()
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestPing(t *testing.T) {
	_, handler := newTestServer(t)

	rec := do(handler, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	rec := do(handler, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGameHandler_Move(t *testing.T) {
	t.Run("Returns the new view", func(t *testing.T) {
		// Given: a game that accepts the move
		game, handler := newTestServer(t)
		view := usecase.View{Mode: usecase.ModeLocal, Turn: entity.MarkB}
		view.Board[4] = entity.MarkA

		game.EXPECT().ApplyLocalMove(mock.Anything, 4).Return(view, nil).Once()

		// When: the centre is played
		rec := do(handler, http.MethodPost, "/api/game/move", `{"cell":4}`)

		// Then: the board comes back
		require.Equal(t, http.StatusOK, rec.Code)

		var got usecase.View
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, entity.MarkA, got.Board[4])
		assert.Equal(t, entity.MarkB, got.Turn)
	})

	t.Run("Maps a rejected move to conflict", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().
			ApplyLocalMove(mock.Anything, 4).
			Return(usecase.View{Message: "That square is taken"}, apperror.ErrCellOccupied).
			Once()

		rec := do(handler, http.MethodPost, "/api/game/move", `{"cell":4}`)

		require.Equal(t, http.StatusConflict, rec.Code)

		var got errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "That square is taken", got.Error)
		require.NotNil(t, got.Game)
	})

	t.Run("Maps an index off the board to bad request", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().ApplyLocalMove(mock.Anything, 12).Return(usecase.View{}, apperror.ErrInvalidCell).Once()

		rec := do(handler, http.MethodPost, "/api/game/move", `{"cell":12}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Requires a cell", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := do(handler, http.MethodPost, "/api/game/move", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameHandler_SetMode(t *testing.T) {
	t.Run("Sets difficulty and mode", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().SetDifficulty(mock.Anything, oracle.DifficultyPerfect).Return(usecase.View{}, nil).Once()
		game.EXPECT().SetMode(mock.Anything, usecase.ModeAI).Return(usecase.View{Mode: usecase.ModeAI}, nil).Once()

		rec := do(handler, http.MethodPut, "/api/game/mode", `{"mode":"ai","difficulty":"perfect"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"mode":"ai"`)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().SetMode(mock.Anything, usecase.Mode("chess")).Return(usecase.View{}, usecase.ErrUnknownMode).Once()

		rec := do(handler, http.MethodPut, "/api/game/mode", `{"mode":"chess"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Empty body", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := do(handler, http.MethodPut, "/api/game/mode", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameHandler_Online(t *testing.T) {
	t.Run("Join passes the code through", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().Join(mock.Anything, "ab3cd").Return(usecase.View{Mode: usecase.ModeOnline}, nil).Once()

		rec := do(handler, http.MethodPost, "/api/online/join", `{"code":"ab3cd"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Join requires a code", func(t *testing.T) {
		_, handler := newTestServer(t)

		rec := do(handler, http.MethodPost, "/api/online/join", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Host outside online mode", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().Host(mock.Anything).Return(usecase.View{}, usecase.ErrNotOnline).Once()

		rec := do(handler, http.MethodPost, "/api/online/host", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Reset without a connection", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().Reset(mock.Anything).Return(usecase.View{}, apperror.ErrNotConnected).Once()

		rec := do(handler, http.MethodPost, "/api/game/reset", "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not connected to an opponent")
	})

	t.Run("Leave and snapshot", func(t *testing.T) {
		game, handler := newTestServer(t)
		game.EXPECT().Leave(mock.Anything).Return(usecase.View{}, nil).Once()
		game.EXPECT().Snapshot(mock.Anything).Return(usecase.View{Mode: usecase.ModeOnline}, nil).Once()

		assert.Equal(t, http.StatusOK, do(handler, http.MethodPost, "/api/online/leave", "").Code)
		assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/api/game", "").Code)
	})
}
