// Package session owns the single direct connection to the other player.
//
// Every exported method of Peer except Release must run on the event loop it
// was created with. Blocking work (identity registration, directory lookups,
// dialling, reading) happens on separate goroutines that post their results
// back to the loop tagged with the generation they were started under; a
// result whose generation is no longer current is discarded.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/identity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/observability"
	"github.com/rocketscienceinc/tictactoe-peer/internal/protocol"
)

const (
	reasonClosedLocally = "closed locally"
	reasonLeft          = "peer disconnected"
	reasonBusy          = "peer is busy"
	reasonReplaced      = "replaced by a new connection"
)

type Peer struct {
	logger    *slog.Logger
	loop      Poster
	identity  Identity
	directory Directory
	dialer    Dialer
	handlers  Handlers

	connectTimeout    time.Duration
	reconnectAttempts int
	codeLength        int

	status     Status
	conn       Conn
	generation uint64
	cancel     context.CancelFunc
	timer      *time.Timer
	reconnects int
	resuming   bool
}

func NewPeer(
	logger *slog.Logger,
	loop Poster,
	identity Identity,
	directory Directory,
	dialer Dialer,
	conf config.Config,
	handlers Handlers,
) *Peer {
	peer := &Peer{
		logger:    logger.With("component", "peer"),
		loop:      loop,
		identity:  identity,
		directory: directory,
		dialer:    dialer,
		handlers:  handlers,

		connectTimeout:    conf.Peer.ConnectTimeout,
		reconnectAttempts: conf.Peer.ReconnectAttempts,
		codeLength:        conf.Identity.Length,

		status: Status{State: StateIdle},
	}

	identity.OnLost(func(err error) {
		loop.Post(func() { peer.onSignalingLost(err) })
	})

	return peer
}

func (that *Peer) Status() Status {
	return that.status
}

// StartListening registers our code and waits for a guest to dial it.
func (that *Peer) StartListening() {
	that.teardown(reasonLeft)
	that.reconnects = 0
	that.listen(false)
}

// Initiate connects to the host registered as code, dropping whatever
// connection or attempt existed before.
func (that *Peer) Initiate(code string) {
	log := that.logger.With("method", "Initiate")

	that.teardown(reasonLeft)
	that.reconnects = 0

	code = identity.Normalize(code)
	if !identity.Valid(code, that.codeLength) {
		log.Info("rejected malformed code", "code", code)
		that.fail(fmt.Errorf("%w: %q is not a valid code", apperror.ErrIdentityUnavailable, code), code)

		return
	}

	that.connect(code, false)
}

// Admit reports whether an inbound connection for code would be accepted.
func (that *Peer) Admit(code string) error {
	if !that.admitting() {
		return apperror.ErrSessionBusy
	}

	if identity.Normalize(code) != that.status.LocalCode {
		return fmt.Errorf("%w: %s", apperror.ErrIdentityUnavailable, code)
	}

	return nil
}

// admitting is true while listening, and while hosting an open connection:
// a guest that noticed a drop before we did dials our code again.
func (that *Peer) admitting() bool {
	switch that.status.State {
	case StateListening:
		return true
	case StateOpen:
		return that.status.Role == RoleHost && that.status.LocalCode != ""
	default:
		return false
	}
}

// Accept takes over an inbound connection. Receiving it is the handshake: we
// become the host. A connection arriving while one is open replaces it and
// the game goes on.
func (that *Peer) Accept(code string, conn Conn) {
	log := that.logger.With("method", "Accept", "connection", conn.ID())

	if err := that.Admit(code); err != nil {
		log.Info("refused inbound connection", "error", err)
		go func() { _ = conn.Close(reasonBusy) }()

		return
	}

	resumed := that.resuming

	if that.status.State == StateOpen && that.conn != nil {
		stale := that.conn
		that.conn = nil
		resumed = true

		log.Warn("guest reconnected, replacing the open connection", "previous", stale.ID())
		go func() { _ = stale.Close(reasonReplaced) }()
	}

	that.attach(conn, RoleHost, "", resumed)
}

// Send delivers msg to the other player.
func (that *Peer) Send(msg protocol.Message) error {
	if that.status.State != StateOpen || that.conn == nil {
		return apperror.ErrNotConnected
	}

	if err := that.conn.Send(msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msg.Type, err)
	}

	return nil
}

// Close ends the current connection or attempt from our side.
func (that *Peer) Close() {
	if that.conn == nil {
		that.teardown(reasonLeft)
		that.setStatus(Status{State: StateIdle, LocalCode: that.identity.Code()})

		return
	}

	previous := that.status
	that.teardown(reasonLeft)
	that.setStatus(Status{
		State:      StateClosed,
		Role:       previous.Role,
		Mark:       previous.Mark,
		LocalCode:  previous.LocalCode,
		RemoteCode: previous.RemoteCode,
		Reason:     reasonClosedLocally,
	})
}

// Shutdown drops every connection and attempt. The identity stays registered
// until Release is called.
func (that *Peer) Shutdown() {
	that.teardown(reasonLeft)
	that.status = Status{State: StateIdle}
}

// Release gives the identity back to the directory. Unlike the other
// methods it blocks and must not run on the loop.
func (that *Peer) Release(ctx context.Context) error {
	if err := that.identity.Release(ctx); err != nil {
		return fmt.Errorf("failed to release identity: %w", err)
	}

	return nil
}

func (that *Peer) listen(resumed bool) {
	that.stopAttempt()

	gen := that.next()
	that.resuming = resumed

	if code := that.identity.Code(); code != "" {
		that.setStatus(Status{State: StateListening, Role: RoleHost, Mark: RoleHost.Mark(), LocalCode: code})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	that.cancel = cancel

	that.setStatus(Status{State: StateIdle, Reason: "registering game code"})

	go func() {
		code, err := that.identity.Acquire(ctx)
		that.loop.Post(func() { that.onAcquired(gen, code, err) })
	}()
}

func (that *Peer) onAcquired(gen uint64, code string, err error) {
	if gen != that.generation {
		return
	}

	that.stopAttempt()

	if err != nil {
		that.fail(err, "")
		return
	}

	that.setStatus(Status{State: StateListening, Role: RoleHost, Mark: RoleHost.Mark(), LocalCode: code})
}

func (that *Peer) connect(code string, resumed bool) {
	that.stopAttempt()

	gen := that.next()
	ctx, cancel := context.WithCancel(context.Background())
	that.cancel = cancel

	that.setStatus(Status{
		State:      StateConnecting,
		Role:       RoleGuest,
		Mark:       RoleGuest.Mark(),
		LocalCode:  that.identity.Code(),
		RemoteCode: code,
	})

	that.timer = time.AfterFunc(that.connectTimeout, func() {
		that.loop.Post(func() { that.onTimeout(gen) })
	})

	go func() {
		conn, err := that.dial(ctx, code)
		posted := that.loop.Post(func() { that.onDialed(gen, code, conn, err, resumed) })
		if !posted && conn != nil {
			_ = conn.Close(reasonLeft)
		}
	}()
}

func (that *Peer) dial(ctx context.Context, code string) (Conn, error) {
	endpoint, err := that.directory.Lookup(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", code, err)
	}

	conn, err := that.dialer.Dial(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", code, err)
	}

	return conn, nil
}

func (that *Peer) onTimeout(gen uint64) {
	if gen != that.generation || that.status.State != StateConnecting {
		return
	}

	that.fail(fmt.Errorf("%w after %s", apperror.ErrTimeout, that.connectTimeout), that.status.RemoteCode)
}

func (that *Peer) onDialed(gen uint64, code string, conn Conn, err error, resumed bool) {
	if gen != that.generation || that.status.State != StateConnecting {
		if conn != nil {
			go func() { _ = conn.Close(reasonLeft) }()
		}

		return
	}

	that.stopAttempt()

	if err != nil {
		if that.retryable(err) {
			that.reconnects++
			that.logger.Warn("dial failed, retrying", "code", code, "error", err)
			that.connect(code, resumed)

			return
		}

		that.fail(err, code)

		return
	}

	that.attach(conn, RoleGuest, code, resumed)
}

func (that *Peer) attach(conn Conn, role Role, remoteCode string, resumed bool) {
	gen := that.next()
	that.conn = conn
	that.resuming = false
	that.reconnects = 0

	that.setStatus(Status{
		State:        StateOpen,
		Role:         role,
		Mark:         role.Mark(),
		LocalCode:    that.identity.Code(),
		RemoteCode:   remoteCode,
		ConnectionID: conn.ID(),
		Resumed:      resumed,
	})

	go that.readPump(gen, conn)
}

func (that *Peer) readPump(gen uint64, conn Conn) {
	log := that.logger.With("method", "readPump", "connection", conn.ID())

	for {
		msg, err := conn.Receive()
		if errors.Is(err, apperror.ErrMalformedMessage) {
			observability.RecordProtocolViolation()
			log.Warn("dropped malformed message", "error", err)

			continue
		}

		if err != nil {
			that.loop.Post(func() { that.onConnLost(gen, conn, err) })
			return
		}

		if !that.loop.Post(func() { that.onMessage(gen, msg) }) {
			_ = conn.Close(reasonLeft)
			return
		}
	}
}

func (that *Peer) onMessage(gen uint64, msg protocol.Message) {
	if gen != that.generation {
		return
	}

	if that.handlers.OnMessage != nil {
		that.handlers.OnMessage(msg)
	}
}

func (that *Peer) onConnLost(gen uint64, conn Conn, err error) {
	go func() { _ = conn.Close(reasonLeft) }()

	if gen != that.generation {
		return
	}

	log := that.logger.With("method", "onConnLost", "connection", conn.ID())
	previous := that.status
	that.conn = nil
	that.next()

	var closed *apperror.ClosedError
	switch {
	case errors.As(err, &closed):
		log.Info("peer closed the connection", "reason", closed.Reason)
		that.setStatus(Status{
			State:      StateClosed,
			Role:       previous.Role,
			Mark:       previous.Mark,
			LocalCode:  previous.LocalCode,
			RemoteCode: previous.RemoteCode,
			Reason:     closed.Reason,
			Err:        err,
		})

	case that.retryable(err):
		that.reconnects++
		log.Warn("connection dropped, reconnecting", "role", previous.Role, "error", err)

		if previous.Role == RoleGuest {
			that.connect(previous.RemoteCode, true)
		} else {
			that.listen(true)
		}

	default:
		that.fail(err, previous.RemoteCode)
	}
}

func (that *Peer) onSignalingLost(err error) {
	log := that.logger.With("method", "onSignalingLost")

	switch that.status.State {
	case StateListening:
		that.fail(err, "")
	case StateOpen:
		log.Warn("signaling lost, keeping the open connection", "error", err)

		status := that.status
		status.LocalCode = ""
		that.setStatus(status)
	default:
		log.Info("signaling lost", "state", that.status.State, "error", err)
	}
}

func (that *Peer) retryable(err error) bool {
	return errors.Is(err, apperror.ErrTransientNetwork) && that.reconnects < that.reconnectAttempts
}

// fail settles the session in the error state. Nothing is retried from here.
func (that *Peer) fail(err error, remoteCode string) {
	that.teardown(reasonLeft)

	if errors.Is(err, apperror.ErrTransientNetwork) {
		err = fmt.Errorf("%w: %w", apperror.ErrConnectionLost, err)
	}

	that.logger.Info("peer session failed", "error", err)

	that.setStatus(Status{
		State:      StateError,
		LocalCode:  that.identity.Code(),
		RemoteCode: remoteCode,
		Reason:     apperror.Message(err),
		Err:        err,
	})
}

// teardown invalidates every outstanding callback and closes the connection.
func (that *Peer) teardown(reason string) {
	that.next()
	that.stopAttempt()
	that.resuming = false

	if that.conn != nil {
		conn := that.conn
		that.conn = nil

		go func() { _ = conn.Close(reason) }()
	}
}

func (that *Peer) stopAttempt() {
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}

	if that.cancel != nil {
		that.cancel()
		that.cancel = nil
	}
}

func (that *Peer) next() uint64 {
	that.generation++
	return that.generation
}

func (that *Peer) setStatus(status Status) {
	that.status = status
	observability.RecordPeerState(string(status.State))

	that.logger.Info("peer state changed",
		"state", status.State,
		"role", status.Role,
		"connection", status.ConnectionID,
		"reason", status.Reason,
	)

	if that.handlers.OnStatus != nil {
		that.handlers.OnStatus(status)
	}
}
