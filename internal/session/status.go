package session

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/protocol"
)

type State string

const (
	StateIdle       State = "idle"
	StateListening  State = "listening"
	StateConnecting State = "connecting"
	StateOpen       State = "open"
	StateClosed     State = "closed"
	StateError      State = "error"
)

type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// Mark is the symbol a role plays: the host receives the connection and
// moves first.
func (that Role) Mark() entity.Mark {
	switch that {
	case RoleHost:
		return entity.MarkA
	case RoleGuest:
		return entity.MarkB
	default:
		return entity.EmptyCell
	}
}

// Status is the observable state of a peer session.
type Status struct {
	State        State       `json:"state"`
	Role         Role        `json:"role,omitempty"`
	Mark         entity.Mark `json:"mark,omitempty"`
	LocalCode    string      `json:"localCode,omitempty"`
	RemoteCode   string      `json:"remoteCode,omitempty"`
	ConnectionID string      `json:"connectionId,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	Resumed      bool        `json:"resumed,omitempty"`
	Err          error       `json:"-"`
}

func (that Status) IsOpen() bool {
	return that.State == StateOpen
}

// Conn is a live, ordered, message-framed link to the other player.
type Conn interface {
	ID() string
	Send(msg protocol.Message) error
	Receive() (protocol.Message, error)
	Close(reason string) error
}

type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Conn, error)
}

// DialerFunc adapts a plain function to Dialer.
type DialerFunc func(ctx context.Context, endpoint string) (Conn, error)

func (that DialerFunc) Dial(ctx context.Context, endpoint string) (Conn, error) {
	return that(ctx, endpoint)
}

type Directory interface {
	Lookup(ctx context.Context, code string) (string, error)
}

type Identity interface {
	Acquire(ctx context.Context) (string, error)
	Release(ctx context.Context) error
	Code() string
	OnLost(fn func(error))
}

type Poster interface {
	Post(fn func()) bool
}

type Handlers struct {
	OnStatus  func(Status)
	OnMessage func(protocol.Message)
}
