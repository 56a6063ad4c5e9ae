package provider

import "fmt"

// TransportError is returned when a provider call fails at the network or
// HTTP level after the retry budget is exhausted (or immediately for
// non-retryable statuses). Status is zero for pure transport failures.
type TransportError struct {
	Capability string // "complete-text" or "search-web"
	Status     int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: provider returned HTTP %d: %v", e.Capability, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: provider transport failure: %v", e.Capability, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ShapeError is returned when structured output could not be parsed into the
// requested schema after repair attempts.
type ShapeError struct {
	Role     Role
	Attempts int
	Err      error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("complete-text(%s): unparseable structured output after %d attempts: %v", e.Role, e.Attempts, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
