package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openweb3-io/icp-evm/cmd/icpevm/setup"
)

func main() {
	cmd := &cobra.Command{
		Use:          "icpevm",
		Short:        "Inspect and dry-run EVM RPC canister interactions",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}

			cfg, err := setup.LoadConfig(args)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"network":  cfg.Rpc.Network,
				"provider": cfg.Rpc.Provider,
				"key":      cfg.Signer.KeyName,
			}).Debug("config")

			cmd.SetContext(setup.WrapConfig(cmd.Context(), cfg))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(CmdAddress())
	cmd.AddCommand(CmdConfig())
	cmd.AddCommand(CmdRequest())

	_ = cmd.Execute()
}
