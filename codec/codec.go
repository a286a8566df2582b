// Package codec pins the JSON representation shared by the persistence layer
// and the HTTP bodies. Prices and totals are double-precision floats; the
// library keeps standard float64 round-tripping, nothing beyond that.
package codec

import (
	json "github.com/goccy/go-json"
)

// Marshal encodes v indented, matching the pretty-printed data files the
// store has always been loaded from.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// EmptyCollection is the contents of a freshly created backing resource.
var EmptyCollection = []byte("[]")
