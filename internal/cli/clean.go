package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/pkg/outdir"
)

// cleanCommand creates the clean command.
func (c *CLI) cleanCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated PNG and GIF files",
		Long: `Remove the PNG and GIF files in the output directory. Other files and
the directory itself are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(output)
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func runClean(output string) error {
	if _, err := os.Stat(output); os.IsNotExist(err) {
		printInfo("Nothing to clean")
		return nil
	}
	dir, err := outdir.Ensure(output)
	if err != nil {
		return err
	}
	arts, err := dir.List()
	if err != nil {
		return err
	}
	if len(arts) == 0 {
		printInfo("Nothing to clean")
		return nil
	}

	count, err := dir.Clean()
	for _, a := range arts[:min(count, len(arts))] {
		printFile(a.Name)
	}
	if err != nil {
		return err
	}
	printSuccess("Removed %d files", count)
	printDetail("Directory: %s", dir)
	return nil
}
