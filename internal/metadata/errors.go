package metadata

import "fmt"

type ErrorKind int

const (
	// ErrorKindTransport covers network and connection failures.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindStatus covers non-2xx HTTP responses.
	ErrorKindStatus
	// ErrorKindDecode covers malformed or unexpected response shapes.
	ErrorKindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindStatus:
		return "status"
	case ErrorKindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// APIError is the only error type the client returns, so callers can switch
// on the failure kind at the boundary instead of probing error strings.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.Kind == ErrorKindStatus {
		return fmt.Sprintf("metadata api: %s error: status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("metadata api: %s error: %v", e.Kind, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func transportErr(err error) *APIError {
	return &APIError{Kind: ErrorKindTransport, Err: err}
}

func statusErr(code int) *APIError {
	return &APIError{Kind: ErrorKindStatus, StatusCode: code}
}

func decodeErr(err error) *APIError {
	return &APIError{Kind: ErrorKindDecode, Err: err}
}
