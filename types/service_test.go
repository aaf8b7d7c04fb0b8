package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/icp-evm/types"
)

func TestRpcServiceClone(t *testing.T) {
	service := types.NewCustomService(types.RpcApi{
		Url:     "https://rpc.example.org",
		Headers: []types.HttpHeader{{Name: "Authorization", Value: "Bearer token"}},
	})

	clone := service.Clone()
	require.Equal(t, service, clone)

	// Mutating the clone must not reach through to the original.
	clone.Custom.Headers[0].Value = "tampered"
	require.Equal(t, "Bearer token", service.Custom.Headers[0].Value)
}

func TestRpcServiceString(t *testing.T) {
	require.Equal(t, "EthMainnet(cloudflare)", types.NewEthMainnetService(types.EthMainnetCloudflare).String())
	require.Equal(t, "Chain(10)", types.NewChainService(10).String())
	require.Equal(t, "Provider(3)", types.NewProviderService(3).String())
	require.Equal(t, "Custom(https://rpc.example.org)", types.NewCustomService(types.RpcApi{Url: "https://rpc.example.org"}).String())
	require.Equal(t, "Unset", types.RpcService{}.String())
}

func TestRpcErrorMessages(t *testing.T) {
	cases := []struct {
		err  types.RpcError
		want string
	}{
		{
			err:  types.RpcError{JsonRpc: &types.JsonRpcError{Code: -32700, Message: "parse error"}},
			want: "JsonRpcError: code -32700: parse error",
		},
		{
			err:  types.RpcError{Provider: &types.ProviderError{Kind: types.ProviderNotFound}},
			want: "ProviderError: ProviderNotFound",
		},
		{
			err:  types.RpcError{Validation: &types.ValidationError{Kind: types.ValidationHostNotAllowed, Detail: "evil.example.org"}},
			want: "ValidationError: HostNotAllowed: evil.example.org",
		},
		{
			err: types.RpcError{HttpOutcall: &types.HttpOutcallError{
				IcError: &types.IcError{Code: types.RejectSysTransient, Message: "timeout"},
			}},
			want: "HttpOutcallError: IC error: code SysTransient: timeout",
		},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.err.Error())
	}
}
