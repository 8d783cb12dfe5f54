package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tierpyramid/internal/server"
	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/observability"
)

// serveCommand starts the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		watch   bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pyramid page and JSON API over HTTP",
		Long: `Serve the pyramid over HTTP.

The index page shows the pyramid with a detail card and the manufacturer
list; /pyramid.svg and /api/* expose the same data to other clients.
With --watch the catalog file is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.cfg.Addr != "" {
				addr = c.cfg.Addr
			}
			if !cmd.Flags().Changed("watch") {
				watch = c.cfg.Watch
			}
			return c.runServe(cmd.Context(), addr, watch, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the catalog file when it changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, watch, noCache bool) error {
	if watch && c.catalogPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs a catalog file (--catalog)")
	}

	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	stats := observability.NewCounters()
	observability.SetPipelineHooks(stats)
	observability.SetCacheHooks(stats)
	observability.SetHTTPHooks(stats)
	defer observability.Reset()

	defaults := c.cfg.options()
	srv := server.New(cat, runner, loggerFromContext(ctx), server.WithDefaults(defaults), server.WithStats(stats))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, addr)
	})
	if watch {
		g.Go(func() error {
			return srv.Watch(ctx, c.catalogPath)
		})
	}

	printSuccess("Serving %d tiers at %s", cat.Len(), StyleLink.Render("http://"+addr))
	if watch {
		printInfo("Watching %s for changes", c.catalogPath)
	}
	return g.Wait()
}
