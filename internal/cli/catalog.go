package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tierpyramid/pkg/errors"
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// catalogCommand groups catalog file helpers.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Create and validate catalog files",
	}

	cmd.AddCommand(c.catalogInitCommand())
	cmd.AddCommand(c.catalogCheckCommand())

	return cmd
}

// catalogInitCommand writes the built-in catalog to a file.
func (c *CLI) catalogInitCommand() *cobra.Command {
	var (
		format string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in catalog as an editable file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = "catalog." + format
			} else if f, err := tier.FormatFromPath(output); err == nil && !cmd.Flags().Changed("format") {
				format = f
			}
			return runCatalogInit(output, format, force)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", tier.FormatTOML, "file format: toml, yaml, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default catalog.<format>)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func runCatalogInit(path, format string, force bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	if err := tier.Encode(&buf, tier.Default(), format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	printSuccess("Wrote %s", path)
	printNextStep("Render it with", fmt.Sprintf("%s render --catalog %s", appName, path))
	return nil
}

// catalogCheckCommand validates a catalog file.
func (c *CLI) catalogCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := tier.Load(args[0])
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			printSuccess("%s is valid", args[0])
			for _, g := range cat.Groups {
				if len(cat.BrandsFor(g.Name)) == 0 {
					printWarning("group %q lists no manufacturers", g.Name)
				}
			}
			printKeyValue("levels", fmt.Sprint(cat.Len()))
			printKeyValue("groups", fmt.Sprint(len(cat.Groups)))
			printKeyValue("brands", fmt.Sprint(countBrands(cat)))
			return nil
		},
	}
}

func countBrands(c tier.Catalog) int {
	n := 0
	for _, list := range c.Brands {
		n += len(list)
	}
	return n
}
