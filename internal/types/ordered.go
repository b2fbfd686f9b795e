// Package types provides type definitions for structured data used throughout the ats-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// forEachOrdered walks a JSON object in document order. encoding/json maps lose key order,
// and declaration order is the tie-break for summaries and the baseline for skill ordering.
func forEachOrdered(data []byte, fn func(key string, raw []byte) error) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}

	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		return nil
	}
	if !result.IsObject() {
		return fmt.Errorf("expected JSON object, got %s", result.Type)
	}

	var walkErr error
	result.ForEach(func(key, value gjson.Result) bool {
		if err := fn(key.String(), []byte(value.Raw)); err != nil {
			walkErr = fmt.Errorf("key %q: %w", key.String(), err)
			return false
		}
		return true
	})
	return walkErr
}

// marshalOrdered writes a JSON object with keys in the given order
func marshalOrdered(keys []string, values []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(values[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
