// Package notify routes host notifications to the extension's reactions.
//
// The host calls beNotified for every editor event, most of which the
// extension does not care about. A Dispatcher holds a fixed set of
// reaction slots keyed by notification code. Slots are registered while
// the extension is being built and the dispatcher is then sealed; after
// that, Dispatch only looks codes up. Events with no slot are ignored.
package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/nppbridge/internal/dispatch"
	"github.com/dshills/nppbridge/internal/npp"
)

// Errors returned by On.
var (
	ErrNilReaction = errors.New("nil reaction")
	ErrDuplicate   = errors.New("reaction already registered")
	ErrSealed      = errors.New("dispatcher is sealed")
)

// Event is the part of a host notification a reaction may use. It is a
// copy; the host's structure is never retained.
type Event struct {
	Code     npp.NotificationCode
	From     npp.Handle
	BufferID npp.BufferID
}

// EventFrom copies the header fields of a host notification.
func EventFrom(n *npp.SCNotification) Event {
	return Event{
		Code:     n.Code(),
		From:     n.Nmhdr.HwndFrom,
		BufferID: n.BufferID(),
	}
}

// Reaction handles one notification.
type Reaction func(ctx context.Context, ev Event) error

type slot struct {
	name     string
	reaction Reaction
}

// Dispatcher maps notification codes to reactions.
type Dispatcher struct {
	slots   map[npp.NotificationCode]slot
	sealed  bool
	runner  *dispatch.Runner[Event]
	logger  *zap.Logger
	ctx     context.Context
	ignored uint64
}

// Option configures a Dispatcher.
type Option func(*dispatcherConfig)

type dispatcherConfig struct {
	logger *zap.Logger
	opts   []dispatch.Option[Event]
}

// WithLogger sets the logger used for failed reactions.
func WithLogger(l *zap.Logger) Option {
	return func(c *dispatcherConfig) {
		c.logger = l
	}
}

// WithRunnerOptions passes options to the Runner reactions execute on.
func WithRunnerOptions(opts ...dispatch.Option[Event]) Option {
	return func(c *dispatcherConfig) {
		c.opts = append(c.opts, opts...)
	}
}

// New creates an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	cfg := dispatcherConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dispatcher{
		slots:  make(map[npp.NotificationCode]slot),
		logger: cfg.logger,
		ctx:    context.Background(),
	}

	runnerOpts := append([]dispatch.Option[Event]{dispatch.WithPanicHandler(d.onPanic)}, cfg.opts...)
	d.runner = dispatch.NewRunner(runnerOpts...)
	return d
}

// On registers a named reaction for code. Each code has at most one slot.
func (d *Dispatcher) On(code npp.NotificationCode, name string, r Reaction) error {
	if d.sealed {
		return fmt.Errorf("register %s: %w", code, ErrSealed)
	}
	if r == nil {
		return fmt.Errorf("register %s: %w", code, ErrNilReaction)
	}
	if existing, ok := d.slots[code]; ok {
		return fmt.Errorf("register %s as %q (held by %q): %w", code, name, existing.name, ErrDuplicate)
	}
	d.slots[code] = slot{name: name, reaction: r}
	return nil
}

// Seal stops further registration.
func (d *Dispatcher) Seal() {
	d.sealed = true
}

// Handles reports whether a reaction is registered for code.
func (d *Dispatcher) Handles(code npp.NotificationCode) bool {
	_, ok := d.slots[code]
	return ok
}

// Len returns the number of registered slots.
func (d *Dispatcher) Len() int {
	return len(d.slots)
}

// Dispatch routes a host notification. A nil notification or an
// unregistered code returns immediately. It reports whether a reaction
// ran and succeeded.
func (d *Dispatcher) Dispatch(n *npp.SCNotification) bool {
	if n == nil {
		return false
	}

	s, ok := d.slots[n.Code()]
	if !ok {
		d.ignored++
		return false
	}

	ev := EventFrom(n)
	res := d.runner.Run(d.ctx, ev, dispatch.Func[Event](s.reaction))

	switch res.Outcome {
	case dispatch.Succeeded:
		d.logger.Debug("reaction ran",
			zap.String("reaction", s.name),
			zap.Stringer("code", ev.Code),
			zap.Duration("took", res.Took),
		)
		return true
	case dispatch.Panicked:
		// onPanic logged it with the stack.
	default:
		d.logger.Warn("reaction failed",
			zap.String("reaction", s.name),
			zap.Stringer("code", ev.Code),
			zap.Stringer("outcome", res.Outcome),
			zap.Error(res.Err),
		)
	}
	return false
}

// Stats returns execution statistics for dispatched reactions.
func (d *Dispatcher) Stats() dispatch.Stats {
	return d.runner.Stats()
}

// Ignored returns how many notifications had no registered reaction.
func (d *Dispatcher) Ignored() uint64 {
	return d.ignored
}

func (d *Dispatcher) onPanic(ev Event, v any, stack []byte) {
	d.logger.Error("reaction panicked",
		zap.String("reaction", d.slots[ev.Code].name),
		zap.Stringer("code", ev.Code),
		zap.Any("panic", v),
		zap.ByteString("stack", stack),
	)
}
