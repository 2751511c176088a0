package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

var ErrBadResponse = errors.New("oracle returned a bad response")

type suggestRequest struct {
	Board      [entity.BoardSize]string `json:"board"`
	Player     string                   `json:"player"`
	Difficulty Difficulty               `json:"difficulty"`
}

type suggestResponse struct {
	MoveIndex *int   `json:"moveIndex"`
	Comment   string `json:"comment"`
}

// HTTPOracle asks a remote move service. The service answers
// {"moveIndex": n, "comment": "..."}.
type HTTPOracle struct {
	logger *slog.Logger
	url    string
	client *http.Client
}

func NewHTTPOracle(logger *slog.Logger, url string, timeout time.Duration) *HTTPOracle {
	return &HTTPOracle{
		logger: logger.With("component", "http-oracle"),
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (that *HTTPOracle) Suggest(ctx context.Context, board entity.Board, difficulty Difficulty) (Suggestion, error) {
	log := that.logger.With("method", "Suggest")

	request := suggestRequest{
		Player:     string(NextMark(board)),
		Difficulty: difficulty,
	}
	for i, cell := range board {
		request.Board[i] = string(cell)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return Suggestion{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.url, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := that.client.Do(req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("failed to call oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Suggestion{}, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var answer suggestResponse
	if err = json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	if answer.MoveIndex == nil {
		return Suggestion{}, fmt.Errorf("%w: missing moveIndex", ErrBadResponse)
	}

	log.Debug("oracle answered", "index", *answer.MoveIndex)

	return Suggestion{Index: *answer.MoveIndex, Comment: answer.Comment}, nil
}
