package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/pipeline"
)

// defaultOutputBase names output files when -o is not given.
const defaultOutputBase = "pyramid"

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	output      string
	formats     string
	vizType     string
	style       string
	selected    string
	hovered     string
	width       float64
	height      float64
	topWidth    float64
	radius      float64
	seed        uint64
	scale       float64
	interactive bool
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command for generating pyramid files.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the tier pyramid to SVG, PNG, PDF, JSON or DOT",
		Long: `Render the tier pyramid.

Each requested format is written to its own file. With a single format, -o
names the file ("-" writes to stdout); with several, -o is the base path and
the format is appended as extension.

Rendered artifacts are cached; the layout itself is always recomputed.`,
		Example: `  tierpyramid render
  tierpyramid render -f svg,png --selected BBB -o scale
  tierpyramid render --type nodelink -f svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderOptions(cmd, &f)
			if err := opts.Validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, f)
		},
	}

	d := pipeline.Options{}
	d.SetDefaults()

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVarP(&f.vizType, "type", "t", d.VizType, "visualization type: pyramid, nodelink")
	cmd.Flags().StringVar(&f.style, "style", d.Style, "visual style: glow, simple, handdrawn")
	cmd.Flags().StringVar(&f.selected, "selected", "", "level id to select")
	cmd.Flags().StringVar(&f.hovered, "hovered", "", "level id to hover")
	cmd.Flags().Float64Var(&f.width, "width", d.Width, "bottom width of the pyramid")
	cmd.Flags().Float64Var(&f.height, "height", d.Height, "height of the pyramid")
	cmd.Flags().Float64Var(&f.topWidth, "top-width", d.TopWidth, "top width of the pyramid")
	cmd.Flags().Float64Var(&f.radius, "corner-radius", pipeline.DefaultCornerRadius, "band corner radius (0 for sharp corners)")
	cmd.Flags().Uint64Var(&f.seed, "seed", d.Seed, "random seed for the handdrawn style")
	cmd.Flags().Float64Var(&f.scale, "scale", d.Scale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.interactive, "interactive", false, "embed hover/click script in the SVG")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

// renderOptions merges config values with the flags the user set.
func (c *CLI) renderOptions(cmd *cobra.Command, f *renderFlags) pipeline.Options {
	opts := c.cfg.options()
	opts.Formats = pipeline.ParseFormats(f.formats)
	opts.VizType = f.vizType
	opts.Selected = f.selected
	opts.Hovered = f.hovered
	opts.Seed = f.seed
	opts.Scale = f.scale
	opts.Interactive = f.interactive
	opts.Refresh = f.refresh
	opts.Logger = c.Logger

	flags := cmd.Flags()
	if flags.Changed("style") || opts.Style == "" {
		opts.Style = f.style
	}
	if flags.Changed("width") || opts.Width == 0 {
		opts.Width = f.width
	}
	if flags.Changed("height") || opts.Height == 0 {
		opts.Height = f.height
	}
	if flags.Changed("top-width") || opts.TopWidth == 0 {
		opts.TopWidth = f.topWidth
	}
	if flags.Changed("corner-radius") {
		opts.CornerRadius = pipeline.Float64(f.radius)
	}
	return opts
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, f renderFlags) error {
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spinner *Spinner
	if opts.IsNodelink() || slices.Contains(opts.Formats, pipeline.FormatPNG) || slices.Contains(opts.Formats, pipeline.FormatPDF) {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
		spinner.Start()
	}

	prog := newTracker(loggerFromContext(ctx))
	res, err := runner.Render(ctx, cat, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Render failed")
		}
		return fmt.Errorf("render: %w", err)
	}
	if spinner != nil {
		spinner.Stop()
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.Formats)))

	paths := outputPaths(f.output, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
		if paths[format] != stdoutPath {
			printFile(paths[format], res.Hit(format))
		}
	}
	printStats(len(res.Layout.Bands), len(res.Layout.Brackets), res.Stats.LayoutTime+res.Stats.RenderTime)
	return nil
}

// stdoutPath selects standard output as destination.
const stdoutPath = "-"

// outputPaths maps each format to its destination file.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, format := range formats {
		paths[format] = base + "." + format
	}
	return paths
}

// basePath strips a known format extension from output, defaulting to
// "pyramid" in the working directory.
func basePath(output string) string {
	if output == "" || output == stdoutPath {
		return defaultOutputBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
