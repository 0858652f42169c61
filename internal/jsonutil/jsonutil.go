// Package jsonutil provides shared helpers for loosely typed JSON replies:
// error wrapping and safe field extraction.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// Object decodes data as a JSON object. Empty input yields an empty map and
// no error; anything that is not an object is an error.
func Object(data []byte, context string) (map[string]any, error) {
	m := map[string]any{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return m, nil
	}
	if err := UnmarshalWithContext(data, &m, context); err != nil {
		return map[string]any{}, err
	}
	return m, nil
}

// GetString safely extracts a string value from m.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// FirstString returns the first non-blank string among keys, trimmed.
func FirstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(GetString(m, k)); v != "" {
			return v
		}
	}
	return ""
}
