// Package cli wires the resolver stack into the aptdown command line.
package cli

import (
	"github.com/aptforge/aptdown/pkg/model"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the aptdown root command.
func NewRootCmd() *cobra.Command {
	var opts downgradeOptions

	cmd := &cobra.Command{
		Use:   "aptdown PACKAGE VERSION",
		Short: "Downgrade a Debian package together with its dependencies",
		Long: `aptdown computes the full set of packages required to downgrade a single
package to a specific version. Dependencies are resolved against the local
apt archive cache and the configured mirror pool, missing artifacts are
downloaded, and the resulting apt-get command is printed.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDowngrade(cmd.Context(), args[0], model.PackageVersion(args[1]), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", true, "print the install command instead of executing it")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable download progress bars")

	cmd.AddCommand(
		NewCacheCmd(),
		NewVersionCmd(),
	)

	return cmd
}
