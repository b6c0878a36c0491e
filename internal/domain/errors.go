package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMissingToken         = errors.New("authentication response has no token")
	ErrAuthRejected         = errors.New("server rejected authentication")
	ErrMissingSentinel      = errors.New("response has no FIM terminator")
	ErrNotObject            = errors.New("response is not a JSON object")
	ErrEmptyResponse        = errors.New("no data received")
	ErrNoResponseVariant    = errors.New("response has neither ok nor erro")
	ErrFrameTooLarge        = errors.New("frame exceeds maximum size")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrUnknownOperation     = errors.New("unknown operation")
)

type ErrorKind string

const (
	ErrorKindNetwork    ErrorKind = "network failure"
	ErrorKindProtocol   ErrorKind = "protocol failure"
	ErrorKindUnexpected ErrorKind = "unexpected failure"
)

// NetworkError covers connect, send and receive failures, including timeouts
// and a peer closing before a frame completes.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return formatError(e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means bytes arrived but do not conform to the wire format.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string { return formatError(e.Op, e.Err) }
func (e *ProtocolError) Unwrap() error { return e.Err }

type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string { return formatError(e.Op, e.Err) }
func (e *UnexpectedError) Unwrap() error { return e.Err }

func NewNetworkError(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

func NewProtocolError(op string, err error) error {
	return &ProtocolError{Op: op, Err: err}
}

func NewUnexpectedError(op string, err error) error {
	return &UnexpectedError{Op: op, Err: err}
}

// KindOf searches err's whole chain. A network classification anywhere wins,
// then a protocol one. Anything else, including an UnexpectedError, is
// unexpected.
func KindOf(err error) ErrorKind {
	var (
		networkErr  *NetworkError
		protocolErr *ProtocolError
	)
	switch {
	case errors.As(err, &networkErr):
		return ErrorKindNetwork
	case errors.As(err, &protocolErr):
		return ErrorKindProtocol
	default:
		return ErrorKindUnexpected
	}
}

// Classify leaves classified errors untouched and wraps anything else as
// unexpected.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		networkErr    *NetworkError
		protocolErr   *ProtocolError
		unexpectedErr *UnexpectedError
	)
	if errors.As(err, &networkErr) || errors.As(err, &protocolErr) || errors.As(err, &unexpectedErr) {
		return err
	}

	return NewUnexpectedError(op, err)
}

func formatError(op string, err error) string {
	if op == "" {
		return fmt.Sprint(err)
	}
	return fmt.Sprintf("%s: %v", op, err)
}
