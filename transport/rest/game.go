package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/eventloop"
	"github.com/rocketscienceinc/tictactoe-peer/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-peer/internal/usecase"
)

type GameHandler interface {
	Snapshot(ctx echo.Context) error
	Move(ctx echo.Context) error
	Reset(ctx echo.Context) error
	SetMode(ctx echo.Context) error
	Host(ctx echo.Context) error
	Join(ctx echo.Context) error
	Leave(ctx echo.Context) error
}

type gameUseCase interface {
	Snapshot(ctx context.Context) (usecase.View, error)
	ApplyLocalMove(ctx context.Context, cell int) (usecase.View, error)
	Reset(ctx context.Context) (usecase.View, error)
	SetMode(ctx context.Context, mode usecase.Mode) (usecase.View, error)
	SetDifficulty(ctx context.Context, difficulty oracle.Difficulty) (usecase.View, error)
	Host(ctx context.Context) (usecase.View, error)
	Join(ctx context.Context, code string) (usecase.View, error)
	Leave(ctx context.Context) (usecase.View, error)
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type modeRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

type joinRequest struct {
	Code string `json:"code"`
}

type errorResponse struct {
	Error string        `json:"error"`
	Game  *usecase.View `json:"game,omitempty"`
}

type gameHandler struct {
	game gameUseCase
}

func NewGameHandler(game gameUseCase) GameHandler {
	return &gameHandler{game: game}
}

func (that *gameHandler) Snapshot(ctx echo.Context) error {
	view, err := that.game.Snapshot(ctx.Request().Context())
	return respond(ctx, view, err)
}

func (that *gameHandler) Move(ctx echo.Context) error {
	var req moveRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cell is required"})
	}

	view, err := that.game.ApplyLocalMove(ctx.Request().Context(), *req.Cell)
	return respond(ctx, view, err)
}

func (that *gameHandler) Reset(ctx echo.Context) error {
	view, err := that.game.Reset(ctx.Request().Context())
	return respond(ctx, view, err)
}

// SetMode changes the mode, the difficulty, or both.
func (that *gameHandler) SetMode(ctx echo.Context) error {
	var req modeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if req.Mode == "" && req.Difficulty == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "mode or difficulty is required"})
	}

	var (
		view usecase.View
		err  error
	)

	if req.Difficulty != "" {
		if view, err = that.game.SetDifficulty(ctx.Request().Context(), oracle.Difficulty(req.Difficulty)); err != nil {
			return respond(ctx, view, err)
		}
	}

	if req.Mode != "" {
		view, err = that.game.SetMode(ctx.Request().Context(), usecase.Mode(req.Mode))
	}

	return respond(ctx, view, err)
}

func (that *gameHandler) Host(ctx echo.Context) error {
	view, err := that.game.Host(ctx.Request().Context())
	return respond(ctx, view, err)
}

func (that *gameHandler) Join(ctx echo.Context) error {
	var req joinRequest
	if err := ctx.Bind(&req); err != nil || req.Code == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "code is required"})
	}

	view, err := that.game.Join(ctx.Request().Context(), req.Code)
	return respond(ctx, view, err)
}

func (that *gameHandler) Leave(ctx echo.Context) error {
	view, err := that.game.Leave(ctx.Request().Context())
	return respond(ctx, view, err)
}

func respond(ctx echo.Context, view usecase.View, err error) error {
	if err == nil {
		return ctx.JSON(http.StatusOK, view)
	}

	status := statusFor(err)
	if status == http.StatusServiceUnavailable || status == http.StatusInternalServerError {
		return ctx.JSON(status, errorResponse{Error: apperror.Message(err)})
	}

	return ctx.JSON(status, errorResponse{Error: apperror.Message(err), Game: &view})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, usecase.ErrUnknownMode),
		errors.Is(err, oracle.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, usecase.ErrNotOnline):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, eventloop.ErrLoopStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
