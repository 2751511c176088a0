package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
)

type Dialer struct {
	logger *slog.Logger
	conf   config.Peer
	dialer *websocket.Dialer
}

func NewDialer(logger *slog.Logger, conf config.Peer) *Dialer {
	return &Dialer{
		logger: logger.With("component", "peer-dialer"),
		conf:   conf,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: conf.ConnectTimeout,
		},
	}
}

// Dial opens a connection to the host listening at endpoint.
func (that *Dialer) Dial(ctx context.Context, endpoint string) (*Conn, error) {
	log := that.logger.With("method", "Dial", "endpoint", endpoint)

	ws, resp, err := that.dialer.DialContext(ctx, endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		err = dialError(ctx, resp, err)
		log.Info("dial failed", "error", err)

		return nil, err
	}

	conn := newConn(that.logger, ws, that.conf)
	log.Info("connected to host", "connection", conn.ID())

	return conn, nil
}

func dialError(ctx context.Context, resp *http.Response, err error) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: host does not know the code", apperror.ErrIdentityUnavailable)
		case http.StatusConflict:
			return apperror.ErrSessionBusy
		}
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %w", apperror.ErrIdentityUnavailable, err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", apperror.ErrTimeout, err)
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("%w: %w", apperror.ErrTransientNetwork, err)
	}
}
