package transport

import (
	"fmt"

	"github.com/openweb3-io/icp-evm/types"
)

// ErrorKind classifies a transport failure so callers can branch on it.
type ErrorKind string

// List of transport error kinds
const (
	// KindSerialization is a malformed local request encode.
	KindSerialization = ErrorKind("Serialization")
	// KindDeserialization is a malformed relay response decode.
	KindDeserialization = ErrorKind("Deserialization")
	// KindInfra is a rejection by the call layer itself.
	KindInfra = ErrorKind("Infra")
	// KindRelay is an application-level error reported by the relay.
	KindRelay = ErrorKind("Relay")
)

// Error is the uniform failure value returned by Send. Code and Message
// are set for Infra errors; Detail carries the structured relay error for
// Relay errors.
type Error struct {
	Kind    ErrorKind
	Code    int64
	Message string
	Detail  *types.RpcError
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInfra:
		return fmt.Sprintf("transport: call rejected: code %d: %s", e.Code, e.Message)
	case KindRelay:
		return fmt.Sprintf("transport: relay error: %s", e.Detail.Error())
	}
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}
