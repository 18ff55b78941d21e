package network

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned when an operation needs at least one stop and
// the graph has none. Recoverable by loading valid network data, never by
// treating it as "no nearest stop".
var ErrEmptyGraph = errors.New("network: graph has no stops")

// ErrStopNotFound is returned by StopByID for an unknown stop id.
var ErrStopNotFound = errors.New("network: stop not found")

// InvalidNetworkDataError reports a structural problem in loaded network
// data. It is fatal to graph construction, not a runtime condition.
type InvalidNetworkDataError struct {
	StopID string
	Reason string
}

func (e *InvalidNetworkDataError) Error() string {
	return fmt.Sprintf("network: invalid network data at stop %q: %s", e.StopID, e.Reason)
}
