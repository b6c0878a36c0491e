package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tri-protocol-cli/internal/domain"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		protocols string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "run <operation> [parameter]",
		Short: "Run one operation through the selected protocols",
		Long: `Run authenticates, performs one operation and logs out on every selected protocol, in order.

Operations: 1|soma|sum, 2|echo, 3|timestamp, 4|status, 5|historico|history, 6|info.
soma takes a comma-separated number list, echo takes the message (default "Hello").`,
		Example: `  tpc run soma "1, 2, 3"
  tpc run echo "ola" --protocol json,protobuf
  tpc run status --strict`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := domain.ParseOperationCode(args[0])
			if err != nil {
				return err
			}
			names, err := domain.ParseProtocolNames(protocols)
			if err != nil {
				return err
			}

			var param *string
			if len(args) == 2 {
				param = &args[1]
			}
			if code == domain.OperationSum && param == nil {
				return fmt.Errorf("%s requires a comma-separated number list", domain.OperationNameSum)
			}

			app, err := opts.wire(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			results, err := app.runAllWithProgress(cmd.Context(), cmd.ErrOrStderr(), names, code, param)
			if err != nil {
				return err
			}
			if failed := failedProtocols(results); strict && len(failed) > 0 {
				return fmt.Errorf("%d of %d protocol runs failed: %s", len(failed), len(results), strings.Join(failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&protocols, "protocol", "all", "comma-separated protocols to use: strings, json, protobuf or all")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any protocol run fails")

	return cmd
}
