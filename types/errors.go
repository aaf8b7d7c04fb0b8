package types

import (
	"fmt"
	"math/big"
)

// RejectionCode classifies why the host call layer rejected an outbound
// call before the destination could produce a reply.
type RejectionCode int32

// RejectionCode values follow the IC system API.
const (
	RejectNoError            RejectionCode = 0
	RejectSysFatal           RejectionCode = 1
	RejectSysTransient       RejectionCode = 2
	RejectDestinationInvalid RejectionCode = 3
	RejectCanisterReject     RejectionCode = 4
	RejectCanisterError      RejectionCode = 5
	RejectUnknown            RejectionCode = 6
)

func (c RejectionCode) String() string {
	switch c {
	case RejectNoError:
		return "NoError"
	case RejectSysFatal:
		return "SysFatal"
	case RejectSysTransient:
		return "SysTransient"
	case RejectDestinationInvalid:
		return "DestinationInvalid"
	case RejectCanisterReject:
		return "CanisterReject"
	case RejectCanisterError:
		return "CanisterError"
	}
	return "Unknown"
}

// JsonRpcError is an application-level error returned inside a JSON-RPC
// response body.
type JsonRpcError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *JsonRpcError) Error() string {
	return fmt.Sprintf("JsonRpcError: code %d: %s", e.Code, e.Message)
}

// ProviderErrorKind is the class of a relay provider error.
type ProviderErrorKind string

// List of provider error kinds reported by the relay
const (
	ProviderTooFewCycles    = ProviderErrorKind("TooFewCycles")
	ProviderMissingRequired = ProviderErrorKind("MissingRequiredProvider")
	ProviderNotFound        = ProviderErrorKind("ProviderNotFound")
	ProviderNoPermission    = ProviderErrorKind("NoPermission")
)

// ProviderError is reported when the relay cannot route the call to a
// provider. Expected and Received are set for TooFewCycles only.
type ProviderError struct {
	Kind     ProviderErrorKind `json:"kind"`
	Expected *big.Int          `json:"expected,omitempty"`
	Received *big.Int          `json:"received,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Kind == ProviderTooFewCycles {
		return fmt.Sprintf("ProviderError: too few cycles: expected %s, received %s", e.Expected, e.Received)
	}
	return fmt.Sprintf("ProviderError: %s", e.Kind)
}

// ValidationErrorKind is the class of a relay request-validation error.
type ValidationErrorKind string

// List of validation error kinds reported by the relay
const (
	ValidationCredentialPathNotAllowed   = ValidationErrorKind("CredentialPathNotAllowed")
	ValidationCredentialHeaderNotAllowed = ValidationErrorKind("CredentialHeaderNotAllowed")
	ValidationHostNotAllowed             = ValidationErrorKind("HostNotAllowed")
	ValidationUrlParseError              = ValidationErrorKind("UrlParseError")
	ValidationInvalidHex                 = ValidationErrorKind("InvalidHex")
	ValidationCustom                     = ValidationErrorKind("Custom")
)

// ValidationError is reported when the relay refuses the request itself.
type ValidationError struct {
	Kind   ValidationErrorKind `json:"kind"`
	Detail string              `json:"detail,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ValidationError: %s", e.Kind)
	}
	return fmt.Sprintf("ValidationError: %s: %s", e.Kind, e.Detail)
}

// IcError is a rejection of the relay's own upstream HTTP outcall.
type IcError struct {
	Code    RejectionCode `json:"code"`
	Message string        `json:"message"`
}

// InvalidHttpResponse is an upstream HTTP response the relay could not
// interpret as JSON-RPC.
type InvalidHttpResponse struct {
	Status       uint16 `json:"status"`
	Body         string `json:"body"`
	ParsingError string `json:"parsingError,omitempty"`
}

// HttpOutcallError is reported when the relay's HTTP outcall to the
// upstream provider failed. Exactly one field is set.
type HttpOutcallError struct {
	IcError         *IcError             `json:"icError,omitempty"`
	InvalidResponse *InvalidHttpResponse `json:"invalidResponse,omitempty"`
}

func (e *HttpOutcallError) Error() string {
	if e.IcError != nil {
		return fmt.Sprintf("HttpOutcallError: IC error: code %s: %s", e.IcError.Code, e.IcError.Message)
	}
	if e.InvalidResponse != nil {
		return fmt.Sprintf("HttpOutcallError: invalid HTTP JSON-RPC response: status %d", e.InvalidResponse.Status)
	}
	return "HttpOutcallError"
}

// RpcError is the structured application-level error a relay call can
// return in place of a response body. Exactly one field is set, matching
// the four error classes the relay reports.
type RpcError struct {
	JsonRpc     *JsonRpcError     `json:"jsonRpcError,omitempty"`
	Provider    *ProviderError    `json:"providerError,omitempty"`
	Validation  *ValidationError  `json:"validationError,omitempty"`
	HttpOutcall *HttpOutcallError `json:"httpOutcallError,omitempty"`
}

func (e *RpcError) Error() string {
	switch {
	case e.JsonRpc != nil:
		return e.JsonRpc.Error()
	case e.Provider != nil:
		return e.Provider.Error()
	case e.Validation != nil:
		return e.Validation.Error()
	case e.HttpOutcall != nil:
		return e.HttpOutcall.Error()
	}
	return "RpcError: empty"
}
