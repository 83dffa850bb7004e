package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/numkit/internal/ir"
)

// marshalStrings converts a string list to canonical JSON TEXT for storage.
func marshalStrings(field string, ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	data, err := ir.MarshalCanonical(ss)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", field, err)
	}
	return string(data), nil
}

// unmarshalStrings parses a stored JSON array of strings.
func unmarshalStrings(field, data string) ([]string, error) {
	if data == "" || data == "[]" {
		return []string{}, nil
	}
	var ss []string
	if err := json.Unmarshal([]byte(data), &ss); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", field, err)
	}
	return ss, nil
}
