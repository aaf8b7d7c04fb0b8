package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openweb3-io/icp-evm/cmd/icpevm/setup"
	"github.com/openweb3-io/icp-evm/signer"
	"github.com/openweb3-io/icp-evm/types"
)

func CmdAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address <sec1-public-key-hex>",
		Short: "Derive the Ethereum address for a SEC1 encoded public key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.TrimPrefix(args[0], "0x")
			publicKey, err := hex.DecodeString(raw)
			if err != nil {
				return fmt.Errorf("invalid public key hex: %v", err)
			}

			address, err := signer.AddressForPublicKey(publicKey)
			if err != nil {
				return err
			}

			fmt.Println(address.Hex())
			return nil
		},
	}
}

func CmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())

			bz, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Println(string(bz))
			return nil
		},
	}
}

func CmdRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request <method>",
		Short: "Build the relay call a JSON-RPC request would issue, without sending it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := setup.UnwrapConfig(cmd.Context())

			service, err := cfg.Rpc.Service()
			if err != nil {
				return err
			}

			paramsRaw, _ := cmd.Flags().GetString("params")
			var params any
			if paramsRaw != "" {
				if err := json.Unmarshal([]byte(paramsRaw), &params); err != nil {
					return fmt.Errorf("invalid params json: %v", err)
				}
			}

			payload, err := json.Marshal(types.NewRequest(1, args[0], params))
			if err != nil {
				return err
			}

			fmt.Printf("service: %s\n", service.String())
			fmt.Printf("call cycles: %d\n", cfg.Rpc.CallCycles)
			fmt.Printf("max response bytes: %d\n", cfg.Rpc.MaxResponseBytes)
			fmt.Printf("payload: %s\n", string(payload))
			return nil
		},
	}
	cmd.Flags().String("params", "", "Optional JSON-RPC params as a JSON value")
	return cmd
}
