package store

import "github.com/tailored-agentic-units/canvas/observability"

// Store event types.
const (
	EventCreate     observability.EventType = "store.create"
	EventDispatch   observability.EventType = "store.dispatch"
	EventTransition observability.EventType = "store.transition"
	EventIgnored    observability.EventType = "store.ignored"
	EventRejected   observability.EventType = "store.rejected"
)
