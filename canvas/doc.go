// Package canvas holds the state of the active canvas widget and the pure
// transition function that moves it forward.
//
// State is a value: every transition returns a new State and the old one is
// left untouched. Actions form a closed set declared in this package.
//
//	s := canvas.Initial()                                  // {PageWidgetID: "0"}
//	s = canvas.Reduce(s, canvas.UpdateCanvas{PageWidgetID: "42"})
//	s = canvas.Reduce(s, canvas.Unrecognized{Kind: "NOOP"}) // still "42"
//
// Actions arriving as JSON envelopes are read with DecodeAction:
//
//	{"type": "UPDATE_CANVAS", "payload": {"pageWidgetId": "42"}}
//
// An UPDATE_CANVAS envelope whose pageWidgetId is missing or not a string is
// rejected with ErrInvalidPayload, so the state never holds an absent id.
package canvas
