package main

import (
	"fmt"

	"github.com/arthur-debert/wsinit/internal/version"
	"github.com/arthur-debert/wsinit/pkg/dispatcher"
	"github.com/arthur-debert/wsinit/pkg/errors"
	"github.com/arthur-debert/wsinit/pkg/logging"
	"github.com/arthur-debert/wsinit/pkg/paths"
	"github.com/arthur-debert/wsinit/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command. Subcommands are not
// cobra children: the positional argument is resolved by the dispatcher
// against its build-time registry.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "wsinit <subcommand>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgSubcommandRequired)
				return errors.New(errors.ErrCommandMissing, "subcommand is required")
			}
			return runSubcommand(cmd, args[0], dryRun)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return rootCmd
}

func runSubcommand(cmd *cobra.Command, name string, dryRun bool) error {
	p, err := paths.New("")
	if err != nil {
		return err
	}

	result, err := dispatcher.Dispatch(name, dispatcher.Options{
		Paths:  p,
		DryRun: dryRun,
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrCommandNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgCommandNotImplemented+"\n", name)
			return err
		}
		log.Error().Err(err).Str("command", name).Msg("Command failed")
		return err
	}

	if result != nil && result.Message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), style.SuccessStyle.Render(result.Message))
	}
	return nil
}
