package dispatch

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// PanicHandler is told about a recovered panic before Run returns.
type PanicHandler[E any] func(ev E, recovered any, stack []byte)

// Runner calls reactions synchronously and keeps outcome counters.
type Runner[E any] struct {
	onPanic PanicHandler[E]
	timeout time.Duration

	counts [len(outcomeNames)]atomic.Uint64
	busy   atomic.Int64
}

// Option configures a Runner.
type Option[E any] func(*Runner[E])

// WithPanicHandler installs h. A panic inside h is swallowed.
func WithPanicHandler[E any](h PanicHandler[E]) Option[E] {
	return func(r *Runner[E]) {
		r.onPanic = h
	}
}

// WithTimeout gives every run a deadline of d. Zero means none. Only
// functions that watch ctx are stopped by it.
func WithTimeout[E any](d time.Duration) Option[E] {
	return func(r *Runner[E]) {
		r.timeout = d
	}
}

// NewRunner creates a Runner.
func NewRunner[E any](opts ...Option[E]) *Runner[E] {
	r := &Runner[E]{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run calls fn with ev on the current goroutine.
func (r *Runner[E]) Run(ctx context.Context, ev E, fn Func[E]) Result {
	res := r.call(ctx, ev, fn)
	r.counts[res.Outcome].Add(1)
	r.busy.Add(int64(res.Took))
	return res
}

func (r *Runner[E]) call(ctx context.Context, ev E, fn Func[E]) (res Result) {
	if err := ctx.Err(); err != nil {
		return Result{Outcome: Skipped, Err: err}
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		res.Took = time.Since(start)
		v := recover()
		if v == nil {
			return
		}
		res.Outcome = Panicked
		res.Recovered = v
		res.Stack = debug.Stack()
		r.report(ev, v, res.Stack)
	}()

	if err := fn(ctx, ev); err != nil {
		return Result{Outcome: Failed, Err: err}
	}
	return Result{Outcome: Succeeded}
}

func (r *Runner[E]) report(ev E, v any, stack []byte) {
	if r.onPanic == nil {
		return
	}
	defer func() { _ = recover() }()
	r.onPanic(ev, v, stack)
}

// Stats returns a snapshot of the counters.
func (r *Runner[E]) Stats() Stats {
	s := Stats{
		OK:       r.counts[Succeeded].Load(),
		Failed:   r.counts[Failed].Load(),
		Panicked: r.counts[Panicked].Load(),
		Skipped:  r.counts[Skipped].Load(),
		Busy:     time.Duration(r.busy.Load()),
	}
	s.Runs = s.OK + s.Failed + s.Panicked + s.Skipped
	if s.Runs > 0 {
		s.Mean = s.Busy / time.Duration(s.Runs)
	}
	return s
}

// ResetStats zeroes the counters.
func (r *Runner[E]) ResetStats() {
	for i := range r.counts {
		r.counts[i].Store(0)
	}
	r.busy.Store(0)
}
