package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/buildinfo"
	"github.com/matzehuels/tierpyramid/pkg/cache"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "tierpyramid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string
	catalogPath string
	cfg         config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tierpyramid draws bankability tiers as a pyramid",
		Long: `Tierpyramid lays out an ordered scale of tiers (AAA down to C) as horizontal
bands of a pyramid frustum, with brackets marking tier groups, and renders
it to SVG, PNG, PDF or JSON. It can also browse the scale in the terminal or
serve it over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/tierpyramid/config.toml)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog file (.toml, .yaml, .json); built-in scale if empty")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.brandsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// applyConfig loads the config file. A catalog from the config is used
// unless --catalog was given.
func (c *CLI) applyConfig() error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.catalogPath == "" {
		c.catalogPath = cfg.Catalog
	}
	return nil
}

// loadCatalog loads the catalog named by --catalog or the config file.
func (c *CLI) loadCatalog() (tier.Catalog, error) {
	cat, err := pipeline.LoadCatalog(c.catalogPath)
	if err != nil {
		return tier.Catalog{}, err
	}
	c.Logger.Debug("catalog loaded", "path", c.catalogPath, "levels", cat.Len(), "groups", len(cat.Groups))
	return cat, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by redis when a URL is
// configured, else by the file cache. Redis keys are namespaced with the
// app name since the server may be shared.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if _, shared := store.(*cache.RedisCache); shared {
		keyer = cache.NewScopedKeyer(nil, appName+":")
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	switch {
	case noCache || !c.cfg.Cache:
		return cache.NewNullCache(), nil
	case c.cfg.RedisURL != "":
		rc, err := cache.NewRedisCache(ctx, c.cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the artifact cache directory.
func cacheDir() (string, error) {
	return cache.DefaultDir()
}
