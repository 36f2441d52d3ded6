// Package store owns the current canvas.State for one session. Actions are
// applied one at a time in a single total order, every accepted transition
// replaces the state wholesale, and subscribers are told about each new
// snapshot in the order the transitions happened.
//
//	s, err := store.New(&cfg)
//	state, err := s.Dispatch(ctx, canvas.UpdateCanvas{PageWidgetID: "42"})
//
// Incoming actions are reported to the configured observer before they are
// applied; the transition itself stays free of side effects.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/canvas/canvas"
	"github.com/tailored-agentic-units/canvas/observability"
)

// Snapshot is the state published to subscribers after a transition.
type Snapshot struct {
	StoreID  string
	Revision uint64
	State    canvas.State
}

// Option configures a Store after config-driven initialization.
type Option func(*Store)

// WithObserver overrides the observer resolved from Config.Observer.
func WithObserver(o observability.Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithInitialState overrides the starting state built from config.
func WithInitialState(state canvas.State) Option {
	return func(s *Store) { s.state = state }
}

// Store holds one canvas.State. It is safe for concurrent use.
type Store struct {
	id       string
	observer observability.Observer

	mu       sync.RWMutex
	state    canvas.State
	revision uint64
	pending  []Snapshot // accepted but not yet delivered, in revision order

	// notifyMu serializes delivery. It is never acquired while mu is held.
	notifyMu sync.Mutex

	subMu       sync.RWMutex
	subscribers map[uint64]func(Snapshot)
	nextSub     uint64
}

// New creates a Store from configuration. The observer named in cfg is
// resolved through the observability registry; options applied afterwards
// replace config-created values.
func New(cfg *Config, opts ...Option) (*Store, error) {
	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}

	observer, err := observability.GetObserver(c.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	s := &Store{
		id:          uuid.Must(uuid.NewV7()).String(),
		observer:    observer,
		state:       canvas.State{PageWidgetID: c.InitialPageWidgetID},
		subscribers: make(map[uint64]func(Snapshot)),
	}

	for _, opt := range opts {
		opt(s)
	}
	s.observer = observability.Guard(s.observer)

	s.emit(context.Background(), EventCreate, observability.LevelVerbose, "store.New", map[string]any{
		"page_widget_id": s.state.PageWidgetID,
	})

	return s, nil
}

// ID returns the identifier assigned to the store at creation.
func (s *Store) ID() string {
	return s.id
}

// State returns the current state.
func (s *Store) State() canvas.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Revision returns the number of transitions the store has accepted.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Snapshot returns the current state with its revision.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{StoreID: s.id, Revision: s.revision, State: s.state}
}

// Dispatch applies a to the current state and returns the resulting state.
//
// Unrecognized actions are reported to the observer and leave the state as
// it was; they do not produce an error. An UPDATE_CANVAS action without a
// payload is reported as rejected and returns canvas.ErrInvalidPayload with
// the state unchanged. A cancelled context returns
// ctx.Err() before the action is applied.
//
// Subscribers run on the dispatching goroutine and must not call Dispatch.
func (s *Store) Dispatch(ctx context.Context, a canvas.Action) (canvas.State, error) {
	if err := ctx.Err(); err != nil {
		return s.State(), err
	}

	actionType := canvas.ActionType("")
	if a != nil {
		actionType = a.Type()
	}

	s.emit(ctx, EventDispatch, observability.LevelVerbose, "store.Dispatch", map[string]any{
		"action":  string(actionType),
		"payload": canvas.Payload(a),
	})

	s.mu.Lock()
	next, err := canvas.Transition(s.state, a)
	if err != nil {
		current := s.state
		s.mu.Unlock()

		if errors.Is(err, canvas.ErrUnrecognizedAction) {
			s.emit(ctx, EventIgnored, observability.LevelWarning, "store.Dispatch", map[string]any{
				"action": string(actionType),
			})
			return current, nil
		}

		s.emit(ctx, EventRejected, observability.LevelWarning, "store.Dispatch", map[string]any{
			"action": string(actionType),
			"error":  err.Error(),
		})
		return current, err
	}

	previous := s.state
	s.state = next
	s.revision++
	revision := s.revision
	s.pending = append(s.pending, Snapshot{StoreID: s.id, Revision: revision, State: next})
	s.mu.Unlock()

	s.emit(ctx, EventTransition, observability.LevelInfo, "store.Dispatch", map[string]any{
		"action":   string(actionType),
		"from":     previous.PageWidgetID,
		"to":       next.PageWidgetID,
		"revision": revision,
	})

	s.flush()
	return next, nil
}

// DispatchRaw decodes a JSON action envelope and dispatches it. Envelopes
// that fail to decode are reported to the observer and leave the state as it
// was; the decode error is returned.
func (s *Store) DispatchRaw(ctx context.Context, raw []byte) (canvas.State, error) {
	a, err := canvas.DecodeAction(raw)
	if err != nil {
		s.emit(ctx, EventRejected, observability.LevelWarning, "store.DispatchRaw", map[string]any{
			"error": err.Error(),
			"bytes": len(raw),
		})
		return s.State(), err
	}
	return s.Dispatch(ctx, a)
}

// Subscribe registers fn to receive a Snapshot after every accepted
// transition. The returned function removes the subscription; calling it more
// than once is harmless.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

// flush delivers every pending snapshot. Whichever dispatcher gets notifyMu
// first drains the queue, so snapshots reach subscribers in revision order
// even when Dispatch is called concurrently.
func (s *Store) flush() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	s.subMu.RLock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()

	for _, snap := range batch {
		for _, fn := range fns {
			fn(snap)
		}
	}
}

func (s *Store) emit(ctx context.Context, t observability.EventType, level observability.Level, source string, data map[string]any) {
	data["store_id"] = s.id
	s.observer.OnEvent(ctx, observability.NewEvent(t, level, source, data))
}
