package websocket

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/protocol"
)

var errSendBufferFull = errors.New("send buffer full")

// Conn is one direct connection to the other player. It is never reused:
// once closed or failed a new one has to be dialled or accepted.
type Conn struct {
	id     string
	logger *slog.Logger
	ws     *websocket.Conn

	writeTimeout time.Duration
	pingPeriod   time.Duration

	send chan []byte
	quit chan struct{}
	done chan struct{}

	closeOnce   sync.Once
	closeReason string
}

func newConn(logger *slog.Logger, ws *websocket.Conn, conf config.Peer) *Conn {
	id := uuid.NewString()

	conn := &Conn{
		id:           id,
		logger:       logger.With("connection", id),
		ws:           ws,
		writeTimeout: conf.WriteTimeout,
		pingPeriod:   conf.PingPeriod,
		send:         make(chan []byte, conf.SendBuffer),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	readWait := 2 * conf.PingPeriod
	_ = ws.SetReadDeadline(time.Now().Add(readWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readWait))
	})

	go conn.writePump()

	return conn
}

func (that *Conn) ID() string {
	return that.id
}

// Send queues msg for delivery. It never blocks.
func (that *Conn) Send(msg protocol.Message) error {
	data, err := protocol.Encode(msg)
	if err != nil {
		return err
	}

	select {
	case <-that.done:
		return fmt.Errorf("%w: connection is closed", apperror.ErrPeerClosed)
	default:
	}

	select {
	case that.send <- data:
		return nil
	default:
		return fmt.Errorf("%w: %w", apperror.ErrTransientNetwork, errSendBufferFull)
	}
}

// Receive blocks until the next message arrives. Malformed payloads are
// reported with apperror.ErrMalformedMessage and the connection stays usable.
func (that *Conn) Receive() (protocol.Message, error) {
	kind, data, err := that.ws.ReadMessage()
	if err != nil {
		return protocol.Message{}, that.classify(err)
	}

	if kind != websocket.TextMessage {
		return protocol.Message{}, fmt.Errorf("%w: unexpected frame type %d", apperror.ErrMalformedMessage, kind)
	}

	return protocol.Decode(data)
}

// Close flushes queued messages and tells the peer why we are leaving.
// It is safe to call more than once.
func (that *Conn) Close(reason string) error {
	that.closeOnce.Do(func() {
		that.closeReason = reason
		close(that.quit)
	})

	<-that.done

	return nil
}

func (that *Conn) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(that.pingPeriod)

	defer func() {
		ticker.Stop()
		_ = that.ws.Close()
		close(that.done)
	}()

	for {
		select {
		case data := <-that.send:
			if err := that.write(data); err != nil {
				log.Warn("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(that.writeTimeout)
			if err := that.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				log.Warn("failed to ping peer", "error", err)
				return
			}

		case <-that.quit:
			that.drain()

			deadline := time.Now().Add(that.writeTimeout)
			payload := websocket.FormatCloseMessage(websocket.CloseNormalClosure, that.closeReason)
			if err := that.ws.WriteControl(websocket.CloseMessage, payload, deadline); err != nil {
				log.Debug("failed to send close frame", "error", err)
			}

			return
		}
	}
}

func (that *Conn) drain() {
	for {
		select {
		case data := <-that.send:
			if err := that.write(data); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (that *Conn) write(data []byte) error {
	if err := that.ws.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// classify maps a read failure onto the session's error taxonomy.
func (that *Conn) classify(err error) error {
	select {
	case <-that.quit:
		return &apperror.ClosedError{Reason: "closed locally"}
	default:
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway:
			reason := closeErr.Text
			if reason == "" {
				reason = "peer disconnected"
			}

			return &apperror.ClosedError{Reason: reason}
		}
	}

	return fmt.Errorf("%w: %w", apperror.ErrTransientNetwork, err)
}
