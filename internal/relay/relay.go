// Package relay answers the host's generic window messages.
//
// Notepad++ forwards some messages to every extension through messageProc.
// The Relay maps message ids to handlers and returns a handler's result,
// or 0 for anything it does not know. A failing or panicking handler also
// yields 0.
package relay

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/nppbridge/internal/dispatch"
)

// Default is the result for unhandled or failed messages.
const Default uintptr = 0

// Errors returned by Handle.
var (
	ErrNilHandler = errors.New("nil handler")
	ErrDuplicate  = errors.New("message already handled")
)

// Message is a generic host message. The parameters are opaque
// pointer-sized values whose meaning depends on ID.
type Message struct {
	ID     uint32
	WParam uintptr
	LParam uintptr
}

// Handler answers one message. It must not block.
type Handler func(ctx context.Context, msg Message) (uintptr, error)

// Relay maps message ids to handlers.
type Relay struct {
	handlers map[uint32]Handler
	runner   *dispatch.Runner[Message]
	logger   *zap.Logger
}

// New creates a relay with no handlers.
func New(logger *zap.Logger, opts ...dispatch.Option[Message]) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Relay{
		handlers: make(map[uint32]Handler),
		logger:   logger,
	}
	r.runner = dispatch.NewRunner(append([]dispatch.Option[Message]{
		dispatch.WithPanicHandler(func(msg Message, v any, stack []byte) {
			r.logger.Error("message handler panicked",
				zap.Uint32("msg", msg.ID),
				zap.Any("panic", v),
				zap.ByteString("stack", stack),
			)
		}),
	}, opts...)...)
	return r
}

// Handle registers h for message id.
func (r *Relay) Handle(id uint32, h Handler) error {
	if h == nil {
		return fmt.Errorf("handle message %d: %w", id, ErrNilHandler)
	}
	if _, ok := r.handlers[id]; ok {
		return fmt.Errorf("handle message %d: %w", id, ErrDuplicate)
	}
	r.handlers[id] = h
	return nil
}

// Handles reports whether id has a handler.
func (r *Relay) Handles(id uint32) bool {
	_, ok := r.handlers[id]
	return ok
}

// Relay answers msg.
func (r *Relay) Relay(msg Message) uintptr {
	h, ok := r.handlers[msg.ID]
	if !ok {
		return Default
	}

	var out uintptr
	res := r.runner.Run(context.Background(), msg, func(ctx context.Context, m Message) error {
		v, err := h(ctx, m)
		out = v
		return err
	})
	if res.Outcome == dispatch.Failed || res.Outcome == dispatch.Skipped {
		r.logger.Warn("message handler failed", zap.Uint32("msg", msg.ID), zap.Error(res.Err))
	}
	if !res.OK() {
		return Default
	}
	return out
}

// Stats returns execution statistics for handled messages.
func (r *Relay) Stats() dispatch.Stats {
	return r.runner.Stats()
}
