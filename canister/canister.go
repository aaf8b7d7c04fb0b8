package canister

import (
	"context"
	"fmt"
	"math/big"

	"github.com/openweb3-io/icp-evm/types"
)

// EvmRpcCanisterId is the principal of the production EVM RPC canister.
const EvmRpcCanisterId = "7hfb6-caaaa-aaaar-qadga-cai"

// RejectError is returned by a caller when the host call layer rejects an
// outbound call before the destination produced a reply.
type RejectError struct {
	Code    types.RejectionCode
	Message string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("call rejected: code %s: %s", e.Code, e.Message)
}

// RequestResult is the tagged reply of the relay's request method.
// Exactly one field is set.
type RequestResult struct {
	Ok  *string
	Err *types.RpcError
}

// EvmRpcCaller invokes the request method on the EVM RPC canister. The
// candid marshaling of the call is the caller implementation's concern;
// the core only consumes this surface. A call-layer rejection is reported
// as *RejectError.
type EvmRpcCaller interface {
	Request(ctx context.Context, service types.RpcService, body string, maxResponseBytes uint64, cycles *big.Int) (*RequestResult, error)
}
