package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload to decode
var ErrNilPayload = errors.New("event has no payload")

// PayloadOf returns evt's payload as T, naming the event type on failure
func PayloadOf[T any](evt Event) (T, error) {
	p, err := DecodePayload[T](evt.Payload)
	if err != nil {
		return p, fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	return p, nil
}

// DecodePayload converts a payload into T. Events published in process carry
// the struct itself (or a pointer to it); payloads read back from the dead
// letter log arrive as raw JSON or generic maps and go through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	if input == nil {
		return result, ErrNilPayload
	}
	if v, ok := input.(T); ok {
		return v, nil
	}
	if v, ok := input.(*T); ok {
		if v == nil {
			return result, ErrNilPayload
		}
		return *v, nil
	}

	var data []byte
	switch raw := input.(type) {
	case json.RawMessage:
		data = raw
	case []byte:
		data = raw
	default:
		var err error
		if data, err = json.Marshal(input); err != nil {
			return result, err
		}
	}
	return result, json.Unmarshal(data, &result)
}
