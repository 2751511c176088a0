// Package protocol defines the envelope exchanged between two peers once a
// connection is open. The JSON layout is part of the contract between builds
// and must not change.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/entity"
)

type Type string

const (
	TypeMove  Type = "MOVE"
	TypeReset Type = "RESET"
)

// Message is the tagged union {type: MOVE, index, player} | {type: RESET}.
type Message struct {
	Type   Type        `json:"type"`
	Index  *int        `json:"index,omitempty"`
	Player entity.Mark `json:"player,omitempty"`
}

func Move(index int, player entity.Mark) Message {
	return Message{Type: TypeMove, Index: &index, Player: player}
}

func Reset() Message {
	return Message{Type: TypeReset}
}

// Cell returns the move index, or -1 for messages without one.
func (that Message) Cell() int {
	if that.Index == nil {
		return -1
	}
	return *that.Index
}

func (that Message) Validate() error {
	switch that.Type {
	case TypeMove:
		if that.Index == nil {
			return fmt.Errorf("%w: move without index", apperror.ErrMalformedMessage)
		}

		if *that.Index < 0 || *that.Index >= entity.BoardSize {
			return fmt.Errorf("%w: index %d out of range", apperror.ErrMalformedMessage, *that.Index)
		}

		if !that.Player.IsPlayer() {
			return fmt.Errorf("%w: unknown player %q", apperror.ErrMalformedMessage, that.Player)
		}
	case TypeReset:
	default:
		return fmt.Errorf("%w: unknown type %q", apperror.ErrMalformedMessage, that.Type)
	}

	return nil
}

func Encode(msg Message) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	// RESET carries nothing but its tag
	if msg.Type == TypeReset {
		msg = Reset()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	if err := msg.Validate(); err != nil {
		return Message{}, err
	}

	return msg, nil
}
