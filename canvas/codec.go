package canvas

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Envelope paths.
const (
	pathType         = "type"
	pathPageWidgetID = "payload.pageWidgetId"
)

// DecodeAction reads an action envelope of the form
// {"type": "...", "payload": {...}}.
//
// Unknown tags decode to Unrecognized without error. An UPDATE_CANVAS
// envelope must carry payload.pageWidgetId as a JSON string.
func DecodeAction(raw []byte) (Action, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedAction)
	}

	tag := gjson.GetBytes(raw, pathType)
	if tag.Type != gjson.String || tag.Str == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedAction)
	}

	kind := ActionType(tag.Str)
	switch kind {
	case TypeUpdateCanvas:
		id := gjson.GetBytes(raw, pathPageWidgetID)
		if !id.Exists() {
			return nil, fmt.Errorf("%w: %s: missing pageWidgetId", ErrInvalidPayload, kind)
		}
		if id.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s: pageWidgetId is %s, want string", ErrInvalidPayload, kind, id.Type)
		}
		return UpdateCanvas{PageWidgetID: id.Str}, nil
	default:
		return Unrecognized{Kind: kind}, nil
	}
}

// EncodeAction writes a as an envelope DecodeAction accepts. Actions that
// would not decode back (nil, an empty tag, or an UPDATE_CANVAS tag without
// an UpdateCanvas payload) are refused.
func EncodeAction(a Action) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil action", ErrMalformedAction)
	}
	if a.Type() == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedAction)
	}
	if _, ok := a.(UpdateCanvas); !ok && a.Type() == TypeUpdateCanvas {
		return nil, fmt.Errorf("%w: %s: missing pageWidgetId", ErrInvalidPayload, a.Type())
	}

	raw, err := sjson.SetBytes([]byte(`{}`), pathType, string(a.Type()))
	if err != nil {
		return nil, fmt.Errorf("encode type: %w", err)
	}

	if u, ok := a.(UpdateCanvas); ok {
		raw, err = sjson.SetBytes(raw, pathPageWidgetID, u.PageWidgetID)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
	}

	return raw, nil
}
