package cli

import (
	"fmt"

	"github.com/arthur-debert/cigen/internal/commands"
	"github.com/arthur-debert/cigen/pkg/invocation"
	"github.com/arthur-debert/cigen/pkg/logging"
	"github.com/spf13/cobra"
)

func newArgsCmd(opts *globalOptions) *cobra.Command {
	var (
		file   string
		reveal bool
	)

	cmd := &cobra.Command{
		Use:     "args -f <invocation.yaml>",
		Short:   commands.MsgArgsShort,
		Long:    commands.MsgArgsLong,
		Example: commands.MsgArgsExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.args")
			defer logging.LogOperationStart(logger, "args")()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			spec, err := invocation.LoadFile(file)
			if err != nil {
				return err
			}
			inv, err := spec.Build(invocation.BuildOptions{Builder: cfg.BuilderOptions()})
			if err != nil {
				return err
			}

			logger.Info().
				Str("file", file).
				Str("command", inv.ForOutput()).
				Msg("Invocation rendered")

			if reveal {
				PrintNotice(cmd.ErrOrStderr(), commands.MsgRevealNotice)
				_, err = fmt.Fprintln(cmd.OutOrStdout(), inv.ForExecution())
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), inv.ForOutput())
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", commands.MsgFlagArgsFile)
	cmd.Flags().BoolVar(&reveal, "reveal", false, commands.MsgFlagReveal)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
