// Package dispatch runs reactions on the host's calling thread and turns
// whatever they do into a Result.
//
// Every call into the extension arrives synchronously on the host's UI
// thread and nothing may unwind back across the boundary. A Runner calls
// one function in the caller's goroutine, recovers a panic, applies an
// optional deadline and counts outcomes, so callers only ever see a value.
//
//	runner := dispatch.NewRunner(
//	    dispatch.WithPanicHandler(func(ev notify.Event, v any, stack []byte) {
//	        logger.Error("reaction panicked", zap.Any("panic", v))
//	    }),
//	)
//	if res := runner.Run(ctx, ev, reaction); !res.OK() {
//	    // log and answer the host with the default
//	}
package dispatch
