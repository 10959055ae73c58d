package core

import (
	"errors"
	"strings"
)

// ErrorKind represents the category of a failed call.
type ErrorKind int

// Error kinds stay distinguishable all the way up to the caller.
const (
	// KindUnknown indicates an unclassified error.
	KindUnknown ErrorKind = iota
	// KindTransport indicates the request could not be sent or its response not read.
	KindTransport
	// KindDeserialization indicates the body did not match the expected envelope or result shape.
	KindDeserialization
	// KindProtocol indicates the envelope had no errors but also no result.
	KindProtocol
	// KindAPI indicates the exchange reported one or more error strings.
	KindAPI
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return [...]string{
		"UNKNOWN",
		"TRANSPORT",
		"DESERIALIZATION",
		"PROTOCOL",
		"API",
	}[k]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when a private endpoint is called without a credential.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrInvalidCredential is returned when a credential cannot be constructed.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrCircuitOpen is returned when the circuit breaker rejects a call.
	ErrCircuitOpen = errors.New("circuit breaker is open")
	// ErrInvalidRequest is returned when endpoint parameters fail validation. Nothing is sent.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMissingResult is the cause carried by protocol errors.
	ErrMissingResult = errors.New("envelope has neither errors nor result")
)

// Error is the structured error returned by every call of the client.
type Error struct {
	// Kind categorizes the failure.
	Kind ErrorKind
	// Path is the API path of the failed call, when known.
	Path string
	// Messages holds the exchange error strings verbatim, in the order received. Only set for KindAPI.
	Messages []string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("kraken: ")
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	switch {
	case len(e.Messages) > 0:
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Messages, ", "))
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithPath sets the API path and returns the error for chaining.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// NewTransportError wraps a network failure.
func NewTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// NewDeserializationError wraps a JSON parse failure.
func NewDeserializationError(err error) *Error {
	return &Error{Kind: KindDeserialization, Err: err}
}

// NewProtocolError reports an envelope that violates the error/result invariant.
func NewProtocolError() *Error {
	return &Error{Kind: KindProtocol, Err: ErrMissingResult}
}

// NewAPIError carries the exchange error strings. The slice is copied.
func NewAPIError(messages []string) *Error {
	m := make([]string, len(messages))
	copy(m, messages)
	return &Error{Kind: KindAPI, Messages: m}
}

// KindOf returns the kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsTransportError returns true if the call failed before a response body was read.
func IsTransportError(err error) bool {
	return KindOf(err) == KindTransport
}

// IsDeserializationError returns true if the response body was malformed.
func IsDeserializationError(err error) bool {
	return KindOf(err) == KindDeserialization
}

// IsProtocolError returns true if the envelope violated its invariant.
func IsProtocolError(err error) bool {
	return KindOf(err) == KindProtocol
}

// IsAPIError returns true if the exchange reported business-logic errors.
func IsAPIError(err error) bool {
	return KindOf(err) == KindAPI
}

// APIMessages returns the exchange error strings carried by err, or nil.
func APIMessages(err error) []string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Messages
	}
	return nil
}
