package aggregation

import "errors"

// ErrSegmentNotFound is returned when aggregating a segment id that does not
// exist, or whose row disappeared between listing and loading
var ErrSegmentNotFound = errors.New("segment not found")
