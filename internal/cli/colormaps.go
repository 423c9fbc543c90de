package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/pkg/botion"
	"github.com/matzehuels/botionplot/pkg/colormap"
)

// swatchWidth is the number of samples in a colormap preview.
const swatchWidth = 32

// colormapsCommand creates the colormaps command.
func (c *CLI) colormapsCommand() *cobra.Command {
	var showStops bool

	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List the registered colormaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := defaultRegistry()
			if err != nil {
				return err
			}
			printColormaps(reg, showStops)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showStops, "stops", false, "also print the color stops")

	return cmd
}

// defaultRegistry returns the built-in colormaps plus apple_cmap.
func defaultRegistry() (*colormap.Registry, error) {
	reg := colormap.NewDefaultRegistry()
	cm, err := botion.AppleColormap()
	if err != nil {
		return nil, err
	}
	if err := reg.Register(cm); err != nil {
		return nil, err
	}
	return reg, nil
}

func printColormaps(reg *colormap.Registry, showStops bool) {
	names := reg.Names()
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	printTitle("Colormaps")
	for _, name := range names {
		cm, err := reg.Get(name)
		if err != nil {
			continue
		}
		printKeyValue(name, swatch(cm, swatchWidth), width)
		if showStops {
			printDetail("%s", strings.Join(cm.Stops(), " "))
		}
	}
}
