package types

import (
	"encoding/json"
)

// JsonRpcVersion is the protocol version stamped on every request.
const JsonRpcVersion = "2.0"

// Request is a single JSON-RPC request envelope.
type Request struct {
	JsonRpc string `json:"jsonrpc"`
	Id      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

func NewRequest(id uint64, method string, params any) *Request {
	return &Request{
		JsonRpc: JsonRpcVersion,
		Id:      id,
		Method:  method,
		Params:  params,
	}
}

// Response is a single JSON-RPC response envelope. Exactly one of Result
// and Error is set.
type Response struct {
	JsonRpc string          `json:"jsonrpc"`
	Id      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JsonRpcError   `json:"error,omitempty"`
}
