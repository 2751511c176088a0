package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/observability"
	"github.com/rocketscienceinc/tictactoe-peer/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-peer/internal/protocol"
	"github.com/rocketscienceinc/tictactoe-peer/internal/session"
	"github.com/rocketscienceinc/tictactoe-peer/internal/tictactoe"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrNotOnline   = errors.New("not in online mode")
)

type Mode string

const (
	ModeLocal  Mode = "local"
	ModeAI     Mode = "ai"
	ModeOnline Mode = "online"
)

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeLocal, ModeAI, ModeOnline:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

type origin string

const (
	originLocal  origin = "local"
	originRemote origin = "remote"
	originOracle origin = "oracle"
)

// PeerSession is the part of session.Peer the manager drives.
type PeerSession interface {
	Status() session.Status
	StartListening()
	Initiate(code string)
	Admit(code string) error
	Accept(code string, conn session.Conn)
	Send(msg protocol.Message) error
	Close()
	Shutdown()
	Release(ctx context.Context) error
}

// PeerFactory builds a fresh peer session reporting to handlers.
type PeerFactory func(handlers session.Handlers) PeerSession

type sequencer interface {
	Post(fn func()) bool
	Call(ctx context.Context, fn func() error) error
}

// View is a consistent snapshot of the session for the player.
type View struct {
	Board      entity.Board      `json:"board"`
	Turn       entity.Mark       `json:"turn"`
	Outcome    entity.Outcome    `json:"outcome"`
	Mode       Mode              `json:"mode"`
	Difficulty oracle.Difficulty `json:"difficulty"`
	LocalMark  entity.Mark       `json:"localMark,omitempty"`
	Thinking   bool              `json:"thinking"`
	Comment    string            `json:"comment,omitempty"`
	Peer       *session.Status   `json:"peer,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// GameManager is the only writer of the game state. Every mutation runs on
// the event loop; the exported methods may be called from any goroutine.
type GameManager struct {
	logger  *slog.Logger
	loop    sequencer
	oracle  oracle.MoveOracle
	newPeer PeerFactory
	newRand func() *rand.Rand

	thinkDelay    time.Duration
	oracleTimeout time.Duration

	game       *entity.Game
	mode       Mode
	difficulty oracle.Difficulty
	peer       PeerSession
	peerEpoch  uint64
	peerStatus session.Status

	generation   uint64
	thinking     bool
	cancelOracle context.CancelFunc
	comment      string
	message      string
}

func NewGameManager(
	logger *slog.Logger,
	loop sequencer,
	moveOracle oracle.MoveOracle,
	newPeer PeerFactory,
	conf config.Oracle,
) (*GameManager, error) {
	difficulty, err := oracle.ParseDifficulty(conf.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to read default difficulty: %w", err)
	}

	return &GameManager{
		logger:  logger.With("component", "game-manager"),
		loop:    loop,
		oracle:  moveOracle,
		newPeer: newPeer,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},

		thinkDelay:    conf.ThinkDelay,
		oracleTimeout: conf.Timeout,

		game:       entity.NewGame(),
		mode:       ModeLocal,
		difficulty: difficulty,
	}, nil
}

func (that *GameManager) Snapshot(ctx context.Context) (View, error) {
	var view View

	err := that.loop.Call(ctx, func() error {
		view = that.view()
		return nil
	})

	return view, err
}

// ApplyLocalMove places the local player's mark on cell.
func (that *GameManager) ApplyLocalMove(ctx context.Context, cell int) (View, error) {
	return that.mutate(ctx, func() error {
		return that.applyLocalMove(cell)
	})
}

// Reset starts a new game. Online, the peer is told to do the same.
func (that *GameManager) Reset(ctx context.Context) (View, error) {
	return that.mutate(ctx, func() error {
		if that.mode == ModeOnline && !that.peerStatus.IsOpen() {
			return apperror.ErrNotConnected
		}

		that.reset(originLocal)

		return nil
	})
}

// SetMode switches between hot-seat, AI and online play. The game is always
// reset; entering online mode starts from a fresh, idle peer session.
func (that *GameManager) SetMode(ctx context.Context, mode Mode) (View, error) {
	var retired PeerSession

	view, err := that.mutate(ctx, func() error {
		if _, err := ParseMode(string(mode)); err != nil {
			return err
		}

		retired = that.dropPeer()
		that.mode = mode
		that.reset(originLocal)

		if mode == ModeOnline {
			that.attachPeer()
		}

		that.logger.Info("mode changed", "mode", mode)

		return nil
	})

	that.release(ctx, retired)

	return view, err
}

// SetDifficulty changes how hard the AI plays and starts a new game.
func (that *GameManager) SetDifficulty(ctx context.Context, difficulty oracle.Difficulty) (View, error) {
	return that.mutate(ctx, func() error {
		if _, err := oracle.ParseDifficulty(string(difficulty)); err != nil {
			return err
		}

		if difficulty != that.difficulty {
			that.difficulty = difficulty
			that.reset(originLocal)
		}

		return nil
	})
}

// Host registers a game code and waits for a guest.
func (that *GameManager) Host(ctx context.Context) (View, error) {
	return that.mutate(ctx, func() error {
		if that.peer == nil {
			return ErrNotOnline
		}

		that.peer.StartListening()

		return nil
	})
}

// Join connects to the host that registered code.
func (that *GameManager) Join(ctx context.Context, code string) (View, error) {
	return that.mutate(ctx, func() error {
		if that.peer == nil {
			return ErrNotOnline
		}

		that.peer.Initiate(code)

		return nil
	})
}

// Leave drops the current connection or attempt.
func (that *GameManager) Leave(ctx context.Context) (View, error) {
	return that.mutate(ctx, func() error {
		if that.peer == nil {
			return ErrNotOnline
		}

		that.peer.Close()

		return nil
	})
}

// AdmitInbound is asked before an inbound connection is upgraded.
func (that *GameManager) AdmitInbound(ctx context.Context, code string) error {
	return that.loop.Call(ctx, func() error {
		if that.peer == nil {
			return fmt.Errorf("%w: not hosting", apperror.ErrIdentityUnavailable)
		}

		return that.peer.Admit(code)
	})
}

// AcceptInbound hands an inbound connection to the peer session.
func (that *GameManager) AcceptInbound(ctx context.Context, code string, conn session.Conn) {
	err := that.loop.Call(ctx, func() error {
		if that.peer == nil {
			return apperror.ErrSessionBusy
		}

		that.peer.Accept(code, conn)

		return nil
	})
	if err != nil {
		that.logger.Info("dropped inbound connection", "connection", conn.ID(), "error", err)
		_ = conn.Close("peer is busy")
	}
}

// Shutdown closes the peer session and gives the game code back.
func (that *GameManager) Shutdown(ctx context.Context) error {
	var retired PeerSession

	err := that.loop.Call(ctx, func() error {
		that.stopOracle()
		retired = that.dropPeer()

		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to stop session: %w", err)
	}

	if retired != nil {
		if err = retired.Release(ctx); err != nil {
			return fmt.Errorf("failed to release peer: %w", err)
		}
	}

	return nil
}

// mutate runs fn on the loop and returns the resulting view. A failure is
// also kept as the message shown to the player.
func (that *GameManager) mutate(ctx context.Context, fn func() error) (View, error) {
	var view View

	err := that.loop.Call(ctx, func() error {
		err := fn()
		if err != nil {
			that.message = apperror.Message(err)
		} else {
			that.message = ""
		}

		view = that.view()

		return err
	})

	return view, err
}

func (that *GameManager) applyLocalMove(cell int) error {
	log := that.logger.With("method", "applyLocalMove")

	mark, err := that.localMark()
	if err != nil {
		return err
	}

	if err = tictactoe.MakeTurn(that.game, mark, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	observability.RecordMove(string(originLocal))
	log.Debug("move applied", "cell", cell, "mark", mark, "outcome", that.game.Outcome.Status)

	if that.mode == ModeOnline {
		if err = that.peer.Send(protocol.Move(cell, mark)); err != nil {
			log.Warn("failed to send move", "error", err)
			that.message = apperror.Message(err)
		}
	}

	that.driveOracle()

	return nil
}

// localMark is the mark the local player may place right now.
func (that *GameManager) localMark() (entity.Mark, error) {
	switch that.mode {
	case ModeAI:
		return entity.MarkA, nil
	case ModeOnline:
		if !that.peerStatus.IsOpen() {
			return entity.EmptyCell, apperror.ErrNotConnected
		}

		return that.peerStatus.Mark, nil
	default:
		return that.game.Turn, nil
	}
}

func (that *GameManager) reset(from origin) {
	that.stopOracle()
	tictactoe.Reset(that.game)
	that.comment = ""

	if from == originLocal && that.mode == ModeOnline && that.peerStatus.IsOpen() {
		if err := that.peer.Send(protocol.Reset()); err != nil {
			that.logger.Warn("failed to send reset", "error", err)
		}
	}

	that.logger.Debug("game reset", "origin", from)
}

func (that *GameManager) onRemoteMessage(msg protocol.Message) {
	switch msg.Type {
	case protocol.TypeMove:
		that.onRemoteMove(msg.Cell(), msg.Player)
	case protocol.TypeReset:
		that.reset(originRemote)
	}
}

func (that *GameManager) onRemoteMove(cell int, mark entity.Mark) {
	log := that.logger.With("method", "onRemoteMove")

	if err := tictactoe.PlaceRemote(that.game, mark, cell); err != nil {
		observability.RecordProtocolViolation()
		log.Warn("rejected remote move", "cell", cell, "mark", mark, "error", err)
		that.message = "Opponent sent an invalid move"

		return
	}

	observability.RecordMove(string(originRemote))
	log.Debug("remote move applied", "cell", cell, "mark", mark)
}

func (that *GameManager) onPeerStatus(status session.Status) {
	previous := that.peerStatus
	that.peerStatus = status

	switch status.State {
	case session.StateOpen:
		that.message = ""

		// updates about the same connection keep the board
		if !status.Resumed && status.ConnectionID != previous.ConnectionID {
			that.reset(originRemote)
		}
	case session.StateError, session.StateClosed:
		that.message = status.Reason
	}
}

// driveOracle starts an AI move when it is B's turn against the computer.
// Only one call runs at a time; its answer is dropped if the game moved on.
func (that *GameManager) driveOracle() {
	if that.mode != ModeAI || that.game.IsFinished() || that.game.Turn != entity.MarkB || that.thinking {
		return
	}

	that.thinking = true
	gen := that.generation
	board := that.game.Board
	difficulty := that.difficulty
	rng := that.newRand()

	ctx, cancel := context.WithTimeout(context.Background(), that.thinkDelay+that.oracleTimeout)
	that.cancelOracle = cancel

	go func() {
		defer cancel()

		timer := time.NewTimer(that.thinkDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		decision, err := oracle.Decide(ctx, that.oracle, board, difficulty, rng)
		that.loop.Post(func() { that.onDecision(gen, decision, err) })
	}()
}

func (that *GameManager) onDecision(gen uint64, decision oracle.Decision, err error) {
	log := that.logger.With("method", "onDecision")

	if gen != that.generation {
		log.Debug("dropped stale oracle answer", "index", decision.Index)
		return
	}

	that.thinking = false
	that.cancelOracle = nil

	if err != nil {
		log.Warn("oracle produced no move", "error", err)
		return
	}

	if err = tictactoe.MakeTurn(that.game, entity.MarkB, decision.Index); err != nil {
		log.Error("failed to apply oracle move", "index", decision.Index, "error", err)
		return
	}

	that.comment = decision.Comment
	observability.RecordOracleDecision(string(decision.Source))
	observability.RecordMove(string(originOracle))
}

func (that *GameManager) stopOracle() {
	that.generation++
	that.thinking = false

	if that.cancelOracle != nil {
		that.cancelOracle()
		that.cancelOracle = nil
	}
}

func (that *GameManager) attachPeer() {
	that.peerEpoch++
	epoch := that.peerEpoch

	that.peer = that.newPeer(session.Handlers{
		OnStatus: func(status session.Status) {
			if epoch == that.peerEpoch {
				that.onPeerStatus(status)
			}
		},
		OnMessage: func(msg protocol.Message) {
			if epoch == that.peerEpoch {
				that.onRemoteMessage(msg)
			}
		},
	})
	that.peerStatus = that.peer.Status()
}

// dropPeer shuts the current peer down and returns it so its identity can be
// released off the loop.
func (that *GameManager) dropPeer() PeerSession {
	if that.peer == nil {
		return nil
	}

	peer := that.peer
	peer.Shutdown()

	that.peer = nil
	that.peerEpoch++
	that.peerStatus = session.Status{}

	return peer
}

func (that *GameManager) release(ctx context.Context, peer PeerSession) {
	if peer == nil {
		return
	}

	if err := peer.Release(ctx); err != nil {
		that.logger.Warn("failed to release peer", "error", err)
	}
}

func (that *GameManager) view() View {
	view := View{
		Board:      that.game.Board,
		Turn:       that.game.Turn,
		Outcome:    that.game.Outcome,
		Mode:       that.mode,
		Difficulty: that.difficulty,
		Thinking:   that.thinking,
		Comment:    that.comment,
		Message:    that.message,
	}

	if mark, err := that.localMark(); err == nil {
		view.LocalMark = mark
	}

	if that.peer != nil {
		status := that.peerStatus
		view.Peer = &status
	}

	return view
}
