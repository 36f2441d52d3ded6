// Package observability carries diagnostic events out of the canvas store
// without coupling state transitions to a logging backend. Level values follow
// the OpenTelemetry SeverityNumber scale so events can be forwarded to an
// OTel collector unchanged.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Level is event severity. The store emits only the four named levels.
type Level int

const (
	LevelVerbose Level = 5  // incoming actions, store creation
	LevelInfo    Level = 9  // accepted transitions
	LevelWarning Level = 13 // ignored or rejected actions
	LevelError   Level = 17
)

var levelNames = map[Level]string{
	LevelVerbose: "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARN",
	LevelError:   "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// SlogLevel converts l to slog's scale. The two scales share a step of four
// and are offset so that LevelInfo maps to slog.LevelInfo.
func (l Level) SlogLevel() slog.Level {
	return slog.Level(l - LevelInfo)
}

// EventType names an event. Emitting packages declare their own constants,
// e.g. "store.dispatch" or "store.transition".
type EventType string

// Event is one diagnostic occurrence. Data holds telemetry about the
// occurrence (action type, revision, store id), keyed by attribute name.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, level Level, source string, data map[string]any) Event {
	return Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	}
}

// Observer receives events. Emitters wrap observers with Guard, so a
// panicking observer cannot change the outcome of the operation it watches.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) {
	f(ctx, event)
}

// NoOpObserver drops every event.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(context.Context, Event) {}
