package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks metadata that exists but cannot be used as a record list.
var ErrMalformed = errors.New("malformed metadata")

// Entry is one raw record as found in the store.
type Entry map[string]any

// Decode parses a state document into raw entries.
// Accepted shapes are a top-level list, or an object whose first list-valued
// member (in document order) is the record list. Non-object list items are dropped.
func Decode(data []byte) ([]Entry, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch tok {
	case json.Delim('['):
		return decodeList(data)
	case json.Delim('{'):
		for dec.More() {
			// Member name
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
				return decodeList(trimmed)
			}
		}
		return nil, fmt.Errorf("%w: object has no record list", ErrMalformed)
	default:
		return nil, fmt.Errorf("%w: unexpected top-level value", ErrMalformed)
	}
}

func decodeList(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			entries = append(entries, Entry(m))
		}
	}
	return entries, nil
}
