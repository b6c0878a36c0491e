package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "tpc",
		Short:         "Tri-protocol client (tpc): run operations over strings, JSON and protobuf",
		Long:          "tpc authenticates against the demonstration servers, runs one business operation and logs out, over the delimited-text, JSON and length-prefixed protobuf protocols.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.tpc/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(opts),
		newMenuCmd(opts),
		newRunCmd(opts),
	)

	return rootCmd
}
