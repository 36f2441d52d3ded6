package canvas

// ActionType is the tag carried by an action envelope.
type ActionType string

// TypeUpdateCanvas selects a new active canvas widget.
const TypeUpdateCanvas ActionType = "UPDATE_CANVAS"

// Recognized reports whether t names an action this package handles.
func (t ActionType) Recognized() bool {
	switch t {
	case TypeUpdateCanvas:
		return true
	default:
		return false
	}
}

// Action is a message that may change State. The set of implementations is
// closed: only the types in this package satisfy it.
type Action interface {
	Type() ActionType
	action()
}

// UpdateCanvas replaces the active widget id.
type UpdateCanvas struct {
	PageWidgetID string
}

func (UpdateCanvas) Type() ActionType { return TypeUpdateCanvas }
func (UpdateCanvas) action()          {}

// Unrecognized wraps a tag outside the known set. Transition leaves state
// unchanged for it. Built with a recognized tag it carries no payload, and
// Transition rejects it with ErrInvalidPayload.
type Unrecognized struct {
	Kind ActionType
}

func (u Unrecognized) Type() ActionType { return u.Kind }
func (Unrecognized) action()            {}

// Payload returns the action's fields as telemetry attributes.
func Payload(a Action) map[string]any {
	switch a := a.(type) {
	case UpdateCanvas:
		return map[string]any{"pageWidgetId": a.PageWidgetID}
	default:
		return map[string]any{}
	}
}
