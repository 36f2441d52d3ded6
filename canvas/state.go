package canvas

// DefaultPageWidgetID identifies the canvas widget selected before any
// update has been applied.
const DefaultPageWidgetID = "0"

// State is the store's single record.
type State struct {
	PageWidgetID string `json:"pageWidgetId"`
}

// Initial returns the state a new store starts from.
func Initial() State {
	return State{PageWidgetID: DefaultPageWidgetID}
}

// IsDefault reports whether no widget other than the default is selected.
func (s State) IsDefault() bool {
	return s.PageWidgetID == DefaultPageWidgetID
}
