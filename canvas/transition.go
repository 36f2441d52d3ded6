package canvas

import "fmt"

// Transition computes the state that follows s when a is applied.
//
// UpdateCanvas yields a new State carrying its id. Any other action tagged
// UPDATE_CANVAS has no id to apply and yields s with ErrInvalidPayload. Every
// remaining action, including nil, yields s unchanged together with
// ErrUnrecognizedAction; callers that treat unknown actions as no-ops may
// discard that error.
func Transition(s State, a Action) (State, error) {
	switch a := a.(type) {
	case UpdateCanvas:
		return State{PageWidgetID: a.PageWidgetID}, nil
	case nil:
		return s, fmt.Errorf("%w: nil action", ErrUnrecognizedAction)
	default:
		if a.Type() == TypeUpdateCanvas {
			return s, fmt.Errorf("%w: %s: missing pageWidgetId", ErrInvalidPayload, a.Type())
		}
		return s, fmt.Errorf("%w: %q", ErrUnrecognizedAction, a.Type())
	}
}

// Reduce is Transition without the error.
func Reduce(s State, a Action) State {
	next, _ := Transition(s, a)
	return next
}

// Fold applies actions to s in order and returns the final state.
func Fold(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
