package setup

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/openweb3-io/icp-evm/config"
)

type ContextKey string

const ContextConfig ContextKey = "config"

func WrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ContextConfig, cfg)
}

func UnwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(ContextConfig).(*config.Config)
}

type Args struct {
	ConfigPath string
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to a config file. Optional.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return &Args{ConfigPath: configPath}, nil
}

func LoadConfig(args *Args) (*config.Config, error) {
	if args.ConfigPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(args.ConfigPath)
}
