// Package jsonutil provides small helpers around JSON decoding with
// consistent error context.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a JSON stream (e.g. an HTTP response body)
// into v, wrapping any error with the provided context message.
func DecodeWithContext(r io.Reader, v interface{}, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}
