package apperror

import (
	"errors"
	"fmt"
)

// protocol errors: rejected locally, the session keeps running.
var (
	ErrIllegalMove = errors.New("illegal move")

	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
	ErrNotConnected = fmt.Errorf("%w: no open connection", ErrIllegalMove)

	ErrMalformedMessage  = errors.New("malformed wire message")
	ErrProtocolViolation = errors.New("protocol violation")
)

// terminal-local errors: reported to the user, never retried automatically.
var (
	ErrIdentityCollision   = errors.New("identity already registered")
	ErrIdentityExhausted   = errors.New("could not register a free identity")
	ErrIdentityUnavailable = errors.New("peer not found")
	ErrTimeout             = errors.New("connection timed out")
	ErrSessionBusy         = errors.New("session is busy")
	ErrConnectionLost      = errors.New("connection lost")
)

// transient errors: retried with a bounded policy.
var (
	ErrTransientNetwork = errors.New("transient network error")
	ErrSignalingLost    = errors.New("signaling channel lost")
)

var ErrPeerClosed = errors.New("peer disconnected")

// ClosedError ends a connection with the reason shown to the player.
type ClosedError struct {
	Reason string
}

func (that *ClosedError) Error() string {
	return that.Reason
}

func (that *ClosedError) Unwrap() error {
	return ErrPeerClosed
}

// Message renders err as a short human-readable string for the player.
func Message(err error) string {
	var closed *ClosedError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConnected):
		return "Not connected to an opponent"
	case errors.Is(err, ErrNotYourTurn):
		return "Wait for your turn"
	case errors.Is(err, ErrCellOccupied):
		return "That square is taken"
	case errors.Is(err, ErrGameFinished):
		return "The game is over, start a new one"
	case errors.Is(err, ErrIllegalMove):
		return "Illegal move"
	case errors.Is(err, ErrIdentityExhausted):
		return "Could not get a game code, try again later"
	case errors.Is(err, ErrIdentityUnavailable):
		return "Peer not found, check the code"
	case errors.Is(err, ErrTimeout):
		return "Connection timed out"
	case errors.Is(err, ErrSessionBusy):
		return "Opponent is already in a game"
	case errors.Is(err, ErrConnectionLost):
		return "Connection lost, reconnect to continue"
	case errors.Is(err, ErrSignalingLost):
		return "Lost connection to the lobby"
	case errors.Is(err, ErrTransientNetwork):
		return "Network problem, reconnecting"
	case errors.As(err, &closed):
		return closed.Reason
	case errors.Is(err, ErrPeerClosed):
		return "Peer disconnected"
	default:
		return err.Error()
	}
}
