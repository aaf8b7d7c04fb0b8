package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openweb3-io/icp-evm/config"
	"github.com/openweb3-io/icp-evm/types"
)

func TestDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	require.Equal(t, config.NetworkEthMainnet, cfg.Rpc.Network)
	require.Equal(t, uint64(60_000_000_000), cfg.Rpc.CallCycles)
	require.Equal(t, uint64(10_000), cfg.Rpc.MaxResponseBytes)
	require.Equal(t, 7*time.Second, cfg.Poll.Interval)
	require.Equal(t, uint64(0), cfg.Poll.Limit)
	require.Equal(t, "key_1", cfg.Signer.KeyName)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rpc:
  network: eth-sepolia
  provider: ankr
  max_response_bytes: 4096
poll:
  interval: 15s
  limit: 10
signer:
  key_name: test_key
  derivation_path: ["00", "0102"]
  chain_id: 11155111
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, config.NetworkEthSepolia, cfg.Rpc.Network)
	require.Equal(t, "ankr", cfg.Rpc.Provider)
	require.Equal(t, uint64(4096), cfg.Rpc.MaxResponseBytes)
	// Untouched keys keep their defaults.
	require.Equal(t, uint64(60_000_000_000), cfg.Rpc.CallCycles)

	require.Equal(t, 15*time.Second, cfg.Poll.Interval)
	require.Equal(t, uint64(10), cfg.Poll.Limit)

	require.Equal(t, "test_key", cfg.Signer.KeyName)
	require.Equal(t, uint64(11155111), cfg.Signer.ChainId)

	path2, err := cfg.Signer.DerivationPathBytes()
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0x00}, {0x01, 0x02}}, path2)
}

func TestServiceResolution(t *testing.T) {
	cfg := config.DefaultConfig()
	service, err := cfg.Rpc.Service()
	require.NoError(t, err)
	require.NotNil(t, service.EthMainnet)
	require.Equal(t, types.EthMainnetPublicNode, *service.EthMainnet)

	cfg.Rpc.Url = "https://rpc.example.org"
	service, err = cfg.Rpc.Service()
	require.NoError(t, err)
	require.NotNil(t, service.Custom)
	require.Equal(t, "https://rpc.example.org", service.Custom.Url)

	cfg.Rpc = config.RpcConfig{ChainId: 42161}
	service, err = cfg.Rpc.Service()
	require.NoError(t, err)
	require.NotNil(t, service.ChainId)
	require.Equal(t, uint64(42161), *service.ChainId)

	cfg.Rpc = config.RpcConfig{Network: "moonbase"}
	_, err = cfg.Rpc.Service()
	require.Error(t, err)

	cfg.Rpc = config.RpcConfig{}
	_, err = cfg.Rpc.Service()
	require.Error(t, err)
}
