// Package api defines the error taxonomy shared by the legiscan client and
// its internal pipeline. Callers match these with errors.As.
package api

import "fmt"

// ParameterError reports a missing required parameter or a parameter name the
// operation does not recognize. It is raised before any network request.
type ParameterError struct {
	Op     string
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("legiscan: %s: parameter %q %s", e.Op, e.Param, e.Reason)
}

// TransportError reports a network or HTTP-layer failure. Status is the HTTP
// status code when a response was received, zero otherwise.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		if e.Err != nil {
			return fmt.Sprintf("legiscan: %s: request returned HTTP %d: %v", e.Op, e.Status, e.Err)
		}
		return fmt.Sprintf("legiscan: %s: request returned HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("legiscan: %s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("legiscan: %s: invalid JSON response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// APIError reports a logical failure signaled by the API itself (bad key,
// unknown operation, record not found). Message carries the API's own alert
// text verbatim; this is the error most callers will actually see.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("legiscan: %s: API error: %s", e.Op, e.Message)
}

// ShapeError reports a successful response that lacks the payload key the
// operation is documented to return. It signals API drift rather than a
// caller mistake.
type ShapeError struct {
	Op  string
	Key string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("legiscan: %s: response is missing expected key %q", e.Op, e.Key)
}
