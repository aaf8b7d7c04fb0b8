package config

import (
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/openweb3-io/icp-evm/types"
)

// Named networks accepted in RpcConfig.Network
const (
	NetworkEthMainnet      = "eth-mainnet"
	NetworkEthSepolia      = "eth-sepolia"
	NetworkBaseMainnet     = "base-mainnet"
	NetworkOptimismMainnet = "optimism-mainnet"
	NetworkArbitrumOne     = "arbitrum-one"
)

// RpcConfig selects the relay endpoint and the budget attached to each
// call. Url takes precedence over Network/Provider, which take precedence
// over ChainId.
type RpcConfig struct {
	Network          string `mapstructure:"network,omitempty" json:"network,omitempty" yaml:"network,omitempty" toml:"network,omitempty"`
	Provider         string `mapstructure:"provider,omitempty" json:"provider,omitempty" yaml:"provider,omitempty" toml:"provider,omitempty"`
	Url              string `mapstructure:"url,omitempty" json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	ChainId          uint64 `mapstructure:"chain_id,omitempty" json:"chain_id,omitempty" yaml:"chain_id,omitempty" toml:"chain_id,omitempty"`
	CallCycles       uint64 `mapstructure:"call_cycles,omitempty" json:"call_cycles,omitempty" yaml:"call_cycles,omitempty" toml:"call_cycles,omitempty"`
	MaxResponseBytes uint64 `mapstructure:"max_response_bytes,omitempty" json:"max_response_bytes,omitempty" yaml:"max_response_bytes,omitempty" toml:"max_response_bytes,omitempty"`
}

type PollConfig struct {
	Interval time.Duration `mapstructure:"interval,omitempty" json:"interval,omitempty" yaml:"interval,omitempty" toml:"interval,omitempty"`
	// Limit is the number of successful polls after which a schedule
	// halts itself. 0 means unbounded.
	Limit uint64 `mapstructure:"limit,omitempty" json:"limit,omitempty" yaml:"limit,omitempty" toml:"limit,omitempty"`
}

type SignerConfig struct {
	KeyName string `mapstructure:"key_name,omitempty" json:"key_name,omitempty" yaml:"key_name,omitempty" toml:"key_name,omitempty"`
	// DerivationPath components, hex encoded.
	DerivationPath []string `mapstructure:"derivation_path,omitempty" json:"derivation_path,omitempty" yaml:"derivation_path,omitempty" toml:"derivation_path,omitempty"`
	ChainId        uint64   `mapstructure:"chain_id,omitempty" json:"chain_id,omitempty" yaml:"chain_id,omitempty" toml:"chain_id,omitempty"`
}

// Config is the recognized configuration surface of the client core.
type Config struct {
	Rpc    RpcConfig    `mapstructure:"rpc" json:"rpc" yaml:"rpc" toml:"rpc"`
	Poll   PollConfig   `mapstructure:"poll" json:"poll" yaml:"poll" toml:"poll"`
	Signer SignerConfig `mapstructure:"signer" json:"signer" yaml:"signer" toml:"signer"`
}

func DefaultConfig() *Config {
	return &Config{
		Rpc: RpcConfig{
			Network:          NetworkEthMainnet,
			Provider:         string(types.EthMainnetPublicNode),
			CallCycles:       60_000_000_000,
			MaxResponseBytes: 10_000,
		},
		Poll: PollConfig{
			Interval: 7 * time.Second,
		},
		Signer: SignerConfig{
			KeyName: "key_1",
		},
	}
}

// Load reads the config file at path over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("rpc.network", def.Rpc.Network)
	v.SetDefault("rpc.provider", def.Rpc.Provider)
	v.SetDefault("rpc.call_cycles", def.Rpc.CallCycles)
	v.SetDefault("rpc.max_response_bytes", def.Rpc.MaxResponseBytes)
	v.SetDefault("poll.interval", def.Poll.Interval)
	v.SetDefault("signer.key_name", def.Signer.KeyName)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// Service resolves the configured endpoint selector.
func (c *RpcConfig) Service() (types.RpcService, error) {
	if c.Url != "" {
		return types.NewCustomService(types.RpcApi{Url: c.Url}), nil
	}
	if c.Network != "" {
		switch c.Network {
		case NetworkEthMainnet:
			return types.NewEthMainnetService(types.EthMainnetService(c.Provider)), nil
		case NetworkEthSepolia:
			return types.NewEthSepoliaService(types.EthSepoliaService(c.Provider)), nil
		case NetworkBaseMainnet:
			return types.NewBaseMainnetService(types.L2MainnetService(c.Provider)), nil
		case NetworkOptimismMainnet:
			return types.NewOptimismMainnetService(types.L2MainnetService(c.Provider)), nil
		case NetworkArbitrumOne:
			return types.NewArbitrumOneService(types.L2MainnetService(c.Provider)), nil
		}
		return types.RpcService{}, errors.Errorf("unknown network %q", c.Network)
	}
	if c.ChainId != 0 {
		return types.NewChainService(c.ChainId), nil
	}
	return types.RpcService{}, errors.New("rpc endpoint not configured")
}

// DerivationPathBytes decodes the hex encoded derivation path components.
func (c *SignerConfig) DerivationPathBytes() ([][]byte, error) {
	path := make([][]byte, len(c.DerivationPath))
	for i, component := range c.DerivationPath {
		b, err := hex.DecodeString(component)
		if err != nil {
			return nil, errors.Wrapf(err, "derivation path component %d", i)
		}
		path[i] = b
	}
	return path, nil
}
