package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/cache"
	"github.com/matzehuels/tierpyramid/pkg/errors"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
		Long: `Manage the local artifact cache.

Rendered SVG, PNG, PDF, JSON and DOT files are cached on disk under the user
cache directory. When redis-url is configured the local cache is unused and
Redis expires entries on its own.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.clearCache()
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dir, err := cacheDir()
				if err != nil {
					return errors.Wrap(errors.ErrCodeCache, err, "locate cache directory")
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

func (c *CLI) clearCache() error {
	if c.cfg.RedisURL != "" {
		printWarning("redis-url is set; entries in Redis expire after %s", cache.TTLArtifact)
	}
	dir, err := cacheDir()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCache, err, "locate cache directory")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printSuccess("Cache is already empty")
		return nil
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	n, err := fc.Clear()
	if err != nil {
		return err
	}
	c.Logger.Debug("cache cleared", "dir", dir, "entries", n)
	printSuccess("Removed %d cached artifact(s)", n)
	printDetail("%s", dir)
	return nil
}
