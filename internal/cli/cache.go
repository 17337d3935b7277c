package cli

import (
	"fmt"

	"github.com/aptforge/aptdown/pkg/cache"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command with its subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the archive cache",
		Long:  "Inspect and clean the archive cache that downloaded artifacts are stored in.",
	}

	cmd.AddCommand(newCacheCleanCmd(), newCacheInfoCmd())

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	var (
		artifacts bool
		temp      bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached artifacts and leftover temp files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := cacheOperation(cmd)
			if err != nil {
				return err
			}
			msg, err := op.Clean(!artifacts && !temp, artifacts, temp)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&artifacts, "artifacts", false, "only remove downloaded .deb artifacts")
	cmd.Flags().BoolVar(&temp, "temp", false, "only remove leftover temp files")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show archive cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := cacheOperation(cmd)
			if err != nil {
				return err
			}
			msg, err := op.GetInfo()
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

// cacheOperation resolves the artifact cache directory from the config and
// wraps it in a cache operation.
func cacheOperation(cmd *cobra.Command) (*cache.Operation, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	dir, err := cacheDir(cfg)
	if err != nil {
		return nil, err
	}

	mgr, err := cache.NewManager(dir)
	if err != nil {
		return nil, err
	}
	return cache.NewOperation(mgr), nil
}
