package client

import "fmt"

// Op names the API operation an error came from.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// TransportError means the request could not be completed or the response
// could not be understood (connection refused, unreadable or non-JSON body).
type TransportError struct {
	Op    Op
	Cause error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s links: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the text shown in a notification body.
func (e *TransportError) UserMessage() string {
	if e.Cause == nil {
		return "request failed"
	}
	return e.Cause.Error()
}

// ApplicationError means the server answered and explicitly reported a
// failure. Message is the server's text, unmodified.
type ApplicationError struct {
	Op      Op
	Status  int
	Message string
}

// Error implements the error interface
func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s links: server error (%d): %s", e.Op, e.Status, e.Message)
}

// UserMessage returns the text shown in a notification body.
func (e *ApplicationError) UserMessage() string {
	return e.Message
}

func newTransportError(op Op, format string, args ...interface{}) *TransportError {
	return &TransportError{Op: op, Cause: fmt.Errorf(format, args...)}
}
