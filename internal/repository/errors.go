// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrPerformerNotFound marks a lookup-by-name that matched
// no personnel with a performer sub-record, while ErrItemNotFound
// signals that an id-keyed mutation targeted a row that does not
// exist.
package repository

import "errors"

// ErrPerformerNotFound is returned when a personnel name either does not
// exist or exists without a performer sub-record. The two cases are not
// distinguished: both mean "no such performer". Handlers should translate
// this into an HTTP 404 response.
var ErrPerformerNotFound = errors.New("performer not found")

// ErrItemNotFound is returned when an update or delete targets an item id
// that is not present. Handlers should translate this into an HTTP 404
// response.
var ErrItemNotFound = errors.New("item not found")
