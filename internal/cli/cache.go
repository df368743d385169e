package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/habitstack/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered graph cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := openCache(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Cleared %s cache", cfg.Cache.Backend)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch cfg.Cache.Backend {
			case config.BackendRedis:
				fmt.Fprintf(out, "redis://%s/%d %s*\n", cfg.Cache.RedisAddr, cfg.Cache.RedisDB, cfg.Cache.Prefix)
			case config.BackendNone:
				printInfo(out, "Caching is disabled")
			default:
				dir, err := cfg.CacheDir()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, dir)
			}
			return nil
		},
	}
}
