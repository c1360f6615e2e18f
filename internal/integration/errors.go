package integration

import "fmt"

// TransportError reports a network-level failure reaching an external host.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error while connecting to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExtractionError reports that an expected markup element is missing or empty.
type ExtractionError struct {
	Tag string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("<%s> not found in document", e.Tag)
}

// ParseValueError reports element text that doesn't match the expected format.
type ParseValueError struct {
	Field string
	Text  string
	Err   error
}

func (e *ParseValueError) Error() string {
	return fmt.Sprintf("couldn't parse %s from %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseValueError) Unwrap() error { return e.Err }

// ValidationError reports a physically implausible reading that is held back
// for a human instead of being forwarded.
type ValidationError struct {
	Temperature float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("water temperature %g is <= 0, manual approval needed", e.Temperature)
}

// RejectionError reports a backend response with a non-success status.
type RejectionError struct {
	URL    string
	Status string
	Body   string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("backend %s rejected reading with %s: %s", e.URL, e.Status, e.Body)
}
