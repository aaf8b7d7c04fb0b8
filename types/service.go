package types

import (
	"fmt"
)

// EthMainnetService is a named provider for Ethereum mainnet.
type EthMainnetService string

// List of supported Ethereum mainnet providers
const (
	EthMainnetAlchemy    = EthMainnetService("alchemy")
	EthMainnetAnkr       = EthMainnetService("ankr")
	EthMainnetBlockPi    = EthMainnetService("blockpi")
	EthMainnetCloudflare = EthMainnetService("cloudflare")
	EthMainnetPublicNode = EthMainnetService("publicnode")
)

// EthSepoliaService is a named provider for the Sepolia testnet.
type EthSepoliaService string

// List of supported Sepolia providers
const (
	EthSepoliaAlchemy    = EthSepoliaService("alchemy")
	EthSepoliaAnkr       = EthSepoliaService("ankr")
	EthSepoliaBlockPi    = EthSepoliaService("blockpi")
	EthSepoliaPublicNode = EthSepoliaService("publicnode")
)

// L2MainnetService is a named provider for the supported L2 mainnets.
type L2MainnetService string

// List of supported L2 providers
const (
	L2MainnetAlchemy    = L2MainnetService("alchemy")
	L2MainnetAnkr       = L2MainnetService("ankr")
	L2MainnetBlockPi    = L2MainnetService("blockpi")
	L2MainnetPublicNode = L2MainnetService("publicnode")
)

type HttpHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RpcApi is an explicit RPC url plus optional request headers.
type RpcApi struct {
	Url     string       `json:"url"`
	Headers []HttpHeader `json:"headers,omitempty"`
}

// RpcService selects the network and provider a relay call should target.
// Exactly one field is set. Values are immutable once constructed; use
// Clone to hand a copy to each outbound call.
type RpcService struct {
	EthMainnet      *EthMainnetService
	EthSepolia      *EthSepoliaService
	ArbitrumOne     *L2MainnetService
	BaseMainnet     *L2MainnetService
	OptimismMainnet *L2MainnetService
	Custom          *RpcApi
	ChainId         *uint64
	ProviderId      *uint64
}

func NewEthMainnetService(provider EthMainnetService) RpcService {
	return RpcService{EthMainnet: &provider}
}

func NewEthSepoliaService(provider EthSepoliaService) RpcService {
	return RpcService{EthSepolia: &provider}
}

func NewArbitrumOneService(provider L2MainnetService) RpcService {
	return RpcService{ArbitrumOne: &provider}
}

func NewBaseMainnetService(provider L2MainnetService) RpcService {
	return RpcService{BaseMainnet: &provider}
}

func NewOptimismMainnetService(provider L2MainnetService) RpcService {
	return RpcService{OptimismMainnet: &provider}
}

func NewCustomService(api RpcApi) RpcService {
	return RpcService{Custom: &api}
}

func NewChainService(chainId uint64) RpcService {
	return RpcService{ChainId: &chainId}
}

func NewProviderService(providerId uint64) RpcService {
	return RpcService{ProviderId: &providerId}
}

// Clone returns a deep copy of the service selector.
func (s RpcService) Clone() RpcService {
	out := RpcService{}
	if s.EthMainnet != nil {
		v := *s.EthMainnet
		out.EthMainnet = &v
	}
	if s.EthSepolia != nil {
		v := *s.EthSepolia
		out.EthSepolia = &v
	}
	if s.ArbitrumOne != nil {
		v := *s.ArbitrumOne
		out.ArbitrumOne = &v
	}
	if s.BaseMainnet != nil {
		v := *s.BaseMainnet
		out.BaseMainnet = &v
	}
	if s.OptimismMainnet != nil {
		v := *s.OptimismMainnet
		out.OptimismMainnet = &v
	}
	if s.Custom != nil {
		api := RpcApi{Url: s.Custom.Url}
		if s.Custom.Headers != nil {
			api.Headers = make([]HttpHeader, len(s.Custom.Headers))
			copy(api.Headers, s.Custom.Headers)
		}
		out.Custom = &api
	}
	if s.ChainId != nil {
		v := *s.ChainId
		out.ChainId = &v
	}
	if s.ProviderId != nil {
		v := *s.ProviderId
		out.ProviderId = &v
	}
	return out
}

func (s RpcService) String() string {
	switch {
	case s.EthMainnet != nil:
		return fmt.Sprintf("EthMainnet(%s)", *s.EthMainnet)
	case s.EthSepolia != nil:
		return fmt.Sprintf("EthSepolia(%s)", *s.EthSepolia)
	case s.ArbitrumOne != nil:
		return fmt.Sprintf("ArbitrumOne(%s)", *s.ArbitrumOne)
	case s.BaseMainnet != nil:
		return fmt.Sprintf("BaseMainnet(%s)", *s.BaseMainnet)
	case s.OptimismMainnet != nil:
		return fmt.Sprintf("OptimismMainnet(%s)", *s.OptimismMainnet)
	case s.Custom != nil:
		return fmt.Sprintf("Custom(%s)", s.Custom.Url)
	case s.ChainId != nil:
		return fmt.Sprintf("Chain(%d)", *s.ChainId)
	case s.ProviderId != nil:
		return fmt.Sprintf("Provider(%d)", *s.ProviderId)
	}
	return "Unset"
}
