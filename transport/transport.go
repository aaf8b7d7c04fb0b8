package transport

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openweb3-io/icp-evm/canister"
	"github.com/openweb3-io/icp-evm/types"
)

// DefaultMaxResponseBytes is the response size allowance attached to a
// relay call when the caller does not override it.
const DefaultMaxResponseBytes uint64 = 10_000

// DefaultCallCycles returns the cycles payment attached to a relay call
// when the caller does not override it.
func DefaultCallCycles() *big.Int {
	return big.NewInt(60_000_000_000)
}

// Config carries construction details for a Transport.
type Config struct {
	service          types.RpcService
	callCycles       *big.Int
	maxResponseBytes uint64
}

// NewConfig builds a Config for the given service selector with default
// call cycles and max response size.
func NewConfig(service types.RpcService) Config {
	return Config{
		service:          service,
		callCycles:       DefaultCallCycles(),
		maxResponseBytes: DefaultMaxResponseBytes,
	}
}

// WithCallCycles sets the cycles payment for this config.
func (c Config) WithCallCycles(cycles *big.Int) Config {
	c.callCycles = new(big.Int).Set(cycles)
	return c
}

// WithMaxResponseBytes sets the max response size for this config.
func (c Config) WithMaxResponseBytes(maxResponseBytes uint64) Config {
	c.maxResponseBytes = maxResponseBytes
	return c
}

// Transport relays JSON-RPC envelopes through the EVM RPC canister. It
// holds no backpressure state and is always ready to send. It performs
// no retries; retry policy belongs to the caller.
type Transport struct {
	caller           canister.EvmRpcCaller
	service          types.RpcService
	callCycles       *big.Int
	maxResponseBytes uint64
}

// New creates a Transport that issues relay calls through the given
// caller using the config details.
func New(caller canister.EvmRpcCaller, cfg Config) *Transport {
	callCycles := cfg.callCycles
	if callCycles == nil {
		callCycles = DefaultCallCycles()
	}
	maxResponseBytes := cfg.maxResponseBytes
	if maxResponseBytes == 0 {
		maxResponseBytes = DefaultMaxResponseBytes
	}
	return &Transport{
		caller:           caller,
		service:          cfg.service,
		callCycles:       callCycles,
		maxResponseBytes: maxResponseBytes,
	}
}

// RpcService returns the configured service selector.
func (t *Transport) RpcService() types.RpcService {
	return t.service.Clone()
}

// SetRpcService replaces the service selector for subsequent calls.
func (t *Transport) SetRpcService(service types.RpcService) {
	t.service = service.Clone()
}

// CallCycles returns the cycles payment attached to each call.
func (t *Transport) CallCycles() *big.Int {
	return new(big.Int).Set(t.callCycles)
}

// SetCallCycles sets the cycles payment attached to each call.
func (t *Transport) SetCallCycles(cycles *big.Int) {
	t.callCycles = new(big.Int).Set(cycles)
}

// MaxResponseBytes returns the response size allowance for each call.
func (t *Transport) MaxResponseBytes() uint64 {
	return t.maxResponseBytes
}

// SetMaxResponseBytes sets the response size allowance for each call.
func (t *Transport) SetMaxResponseBytes(maxResponseBytes uint64) {
	t.maxResponseBytes = maxResponseBytes
}

// IsLocal reports whether the transport targets a local replica. Always
// false for now.
func (t *Transport) IsLocal() bool {
	return false
}

// Send serializes the request envelope, performs exactly one relay call
// and decodes the reply. Every failure is reported as a *Error whose Kind
// tells the caller which layer failed.
func (t *Transport) Send(ctx context.Context, req *types.Request) (*types.Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{
			Kind:    KindSerialization,
			Message: "failed to serialize request",
			cause:   errors.Wrap(err, "marshal request"),
		}
	}

	zap.S().Debugw("relay request",
		"service", t.service.String(),
		"method", req.Method,
		"bytes", len(payload),
	)

	result, err := t.caller.Request(ctx, t.service.Clone(), string(payload), t.maxResponseBytes, new(big.Int).Set(t.callCycles))
	if err != nil {
		var reject *canister.RejectError
		if errors.As(err, &reject) {
			return nil, &Error{
				Kind:    KindInfra,
				Code:    int64(reject.Code),
				Message: reject.Message,
				cause:   err,
			}
		}
		return nil, &Error{
			Kind:    KindInfra,
			Code:    int64(types.RejectUnknown),
			Message: err.Error(),
			cause:   err,
		}
	}

	if result.Err != nil {
		return nil, &Error{
			Kind:    KindRelay,
			Message: result.Err.Error(),
			Detail:  result.Err,
		}
	}
	if result.Ok == nil {
		return nil, &Error{
			Kind:    KindDeserialization,
			Message: "relay returned an empty result",
		}
	}

	var resp types.Response
	if err := json.Unmarshal([]byte(*result.Ok), &resp); err != nil {
		return nil, &Error{
			Kind:    KindDeserialization,
			Message: "failed to deserialize response",
			cause:   errors.Wrap(err, "unmarshal response"),
		}
	}

	return &resp, nil
}
