package journey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDocument is wrapped by every error returned from Parse.
var ErrInvalidDocument = errors.New("invalid journeys document")

const (
	keyJourneys          = "journeys"
	keyDuration          = "duration"
	keyDepartureDateTime = "departure_date_time"
	keyArrivalDateTime   = "arrival_date_time"
)

// Parse converts a journeys document into a List. It fails as a whole when
// the document is not an object, when "journeys" is missing or not an array,
// or when any element lacks a required field or carries a malformed
// timestamp.
func Parse(document string) (List, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(document), &root); err != nil {
		return nil, invalid("document is not a JSON object: %v", err)
	}
	if root == nil {
		return nil, invalid("document is null")
	}

	rawJourneys, ok := root[keyJourneys]
	if !ok {
		return nil, invalid("missing %q", keyJourneys)
	}
	if isNull(rawJourneys) {
		return nil, invalid("%q is null", keyJourneys)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(rawJourneys, &elements); err != nil {
		return nil, invalid("%q is not an array: %v", keyJourneys, err)
	}

	journeys := make(List, 0, len(elements))
	for i, element := range elements {
		j, err := parseElement(element)
		if err != nil {
			return nil, fmt.Errorf("%w: journeys[%d]: %v", ErrInvalidDocument, i, err)
		}
		journeys = append(journeys, j)
	}

	return journeys, nil
}

func parseElement(element json.RawMessage) (Journey, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil || fields == nil {
		return Journey{}, errors.New("element is not an object")
	}

	var duration int64
	if err := requireField(fields, keyDuration, &duration); err != nil {
		return Journey{}, err
	}

	var departure, arrival string
	if err := requireField(fields, keyDepartureDateTime, &departure); err != nil {
		return Journey{}, err
	}
	if err := requireField(fields, keyArrivalDateTime, &arrival); err != nil {
		return Journey{}, err
	}

	if _, err := ParseTimestamp(departure); err != nil {
		return Journey{}, fmt.Errorf("%s: %w", keyDepartureDateTime, err)
	}
	if _, err := ParseTimestamp(arrival); err != nil {
		return Journey{}, fmt.Errorf("%s: %w", keyArrivalDateTime, err)
	}

	return New(duration, departure, arrival), nil
}

func requireField(fields map[string]json.RawMessage, key string, dst interface{}) error {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return fmt.Errorf("missing %q", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%q has the wrong type: %v", key, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDocument, fmt.Sprintf(format, args...))
}
