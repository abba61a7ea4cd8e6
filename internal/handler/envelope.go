// Package handler exposes the HTTP handlers that map query parameters onto
// the repository catalog. This file defines the uniform response envelope
// shared by every read endpoint.
package handler

// Envelope is the wire shape of every read-query response: the number of
// records, the ordered field names defining column order, and the records
// themselves. Mutations return their record directly and do not use it.
type Envelope[T any] struct {
	Count int      `json:"count"`
	Key   []string `json:"key"`
	Data  []T      `json:"data"`
}

// Wrap builds an Envelope around a row slice. A nil slice is rendered as an
// empty JSON array rather than null so that clients can always iterate.
func Wrap[T any](key []string, data []T) Envelope[T] {
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{Count: len(data), Key: key, Data: data}
}
