package event

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/snifftrap/internal/logging"
	"github.com/yaklabco/snifftrap/pkg/report"
)

// Compile-time interface check for Interceptor.
var _ Listener = (*Interceptor)(nil)

// Interceptor stands between the build tool's event channel and the finding
// pipeline. Diagnostic output of the owned animalsniffer task is routed into
// the collector; everything else passes through to the previously registered
// listener unchanged, so build behavior outside this tool's concern is
// unaffected.
type Interceptor struct {
	collector *report.Collector
	fallback  Listener
	logger    *log.Logger
	err       error
}

// NewInterceptor wraps fallback, which may be nil when no listener was
// registered before interception.
func NewInterceptor(collector *report.Collector, fallback Listener, logger *log.Logger) *Interceptor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Interceptor{
		collector: collector,
		fallback:  fallback,
		logger:    logger,
	}
}

// owns reports whether the event originates from the intercepted task within
// this collector's invocation. The shared channel may carry events of
// unrelated tasks, or of a concurrent invocation reusing the same dispatch
// infrastructure; both must pass through untouched.
func (i *Interceptor) owns(ev Event) bool {
	return ev.Task == TaskName && ev.Token == i.collector.Token()
}

// MessageLogged implements Listener. Owned diagnostic-level lines are parsed
// and collected; anything else is forwarded. A malformed line is logged
// loudly and retained on the interceptor rather than raised, so event
// dispatch is never aborted mid-build.
func (i *Interceptor) MessageLogged(ev Event) {
	if !i.owns(ev) || !ev.Priority.Diagnostic() {
		if i.fallback != nil {
			i.fallback.MessageLogged(ev)
		}
		return
	}
	if err := i.collector.Collect(ev.Message); err != nil {
		i.logger.Error("malformed diagnostic",
			logging.FieldTask, ev.Task,
			logging.FieldError, err,
		)
		i.err = errors.Join(i.err, err)
	}
}

// Event implements Listener. Non-message events are never consumed, even for
// the owned task: the original listener may depend on lifecycle events such
// as build-finished.
func (i *Interceptor) Event(ev Event) {
	if i.fallback != nil {
		i.fallback.Event(ev)
	}
}

// Err returns the parse failures observed so far, joined. The invocation
// layer surfaces it after dispatch ends: a malformed diagnostic means either
// a tool-format change or a parser bug, and must not go unnoticed.
func (i *Interceptor) Err() error {
	return i.err
}
