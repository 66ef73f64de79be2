// Package event defines the typed boundary between the build tool's logging
// channel and the finding pipeline. The channel's loosely-typed callbacks are
// converted into Event records at the edge, so the rest of the code only ever
// sees typed data.
package event

import "github.com/google/uuid"

// TaskName is the declared name of the build task whose output this tool
// intercepts.
const TaskName = "animalsniffer"

// Kind discriminates build event categories.
type Kind int

const (
	// KindMessageLogged carries one line of task output in the payload.
	KindMessageLogged Kind = iota
	KindTaskStarted
	KindTaskFinished
	KindProgress
	KindBuildFinished
)

// String returns the kind's wire name.
func (k Kind) String() string {
	switch k {
	case KindMessageLogged:
		return "message-logged"
	case KindTaskStarted:
		return "task-started"
	case KindTaskFinished:
		return "task-finished"
	case KindProgress:
		return "progress"
	case KindBuildFinished:
		return "build-finished"
	default:
		return "unknown"
	}
}

// Priority orders event severity. Lower values are more severe; values above
// PriorityInfo are the verbose levels on which animalsniffer reports its
// diagnostics.
type Priority int

const (
	PriorityError Priority = iota
	PriorityWarn
	PriorityInfo
	PriorityVerbose
	PriorityDebug
)

// Diagnostic reports whether the priority is strictly more verbose than the
// info threshold, i.e. whether a message-logged event at this priority is a
// diagnostic line rather than plain build chatter.
func (p Priority) Diagnostic() bool {
	return p > PriorityInfo
}

// Event is one structured build event as delivered by the logging channel.
type Event struct {
	// Producer identifies the component that emitted the event.
	Producer string

	// Task is the declared name of the originating task, if any.
	Task string

	// Kind discriminates the event category.
	Kind Kind

	// Priority is the event's severity level.
	Priority Priority

	// Message is the free-text payload.
	Message string

	// Channel names the logging channel that delivered the event.
	Channel string

	// Token identifies the invocation the event belongs to. The boundary
	// adapter stamps it before dispatch; collectors reject events carrying a
	// foreign token.
	Token uuid.UUID
}

// Listener receives build events. MessageLogged is invoked for task output
// lines; Event for every other kind.
type Listener interface {
	MessageLogged(ev Event)
	Event(ev Event)
}
