package dispatch

import (
	"context"
	"time"
)

// Func is a reaction to one value of type E.
type Func[E any] func(ctx context.Context, ev E) error

// Outcome classifies how a run ended.
type Outcome uint8

// Outcomes.
const (
	Succeeded Outcome = iota
	Failed
	Panicked
	// Skipped means the context was already done, so the function never ran.
	Skipped
)

var outcomeNames = [...]string{"succeeded", "failed", "panicked", "skipped"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Result describes one run.
type Result struct {
	Outcome Outcome
	// Err is the returned error, or the context error for Skipped.
	Err error
	// Recovered and Stack are set for Panicked.
	Recovered any
	Stack     []byte
	Took      time.Duration
}

// OK reports whether the function ran and returned nil.
func (r Result) OK() bool {
	return r.Outcome == Succeeded
}

// Stats counts runs by outcome.
type Stats struct {
	Runs     uint64
	OK       uint64
	Failed   uint64
	Panicked uint64
	Skipped  uint64
	// Busy is the time spent inside functions; Mean is Busy/Runs.
	Busy time.Duration
	Mean time.Duration
}
