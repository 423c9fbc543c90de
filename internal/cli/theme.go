package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/pkg/style"
)

// themeCommand creates the theme command.
func (c *CLI) themeCommand() *cobra.Command {
	var (
		themeFile string
		asTOML    bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the effective theme",
		Long: `Print the Apple theme, optionally overlaid with a TOML theme file.

With --toml the theme is written as TOML, ready to be edited and passed
back with --theme.`,
		Example: `  botion theme
  botion theme --toml > mytheme.toml
  botion theme --theme mytheme.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th := style.Apple()
			if themeFile != "" {
				var err error
				if th, err = style.Load(themeFile); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("loaded theme", "path", themeFile)
			}
			if asTOML {
				return style.Encode(stdout, th)
			}
			printTheme(th)
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFile, "theme", "", "TOML theme file overlaid on the Apple theme")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print as TOML")

	return cmd
}

func printTheme(th *style.Theme) {
	entries := th.Entries()
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}
	printTitle("Theme (" + th.Base + ")")
	for _, e := range entries {
		printKeyValue(e.Key, e.Value, width)
	}
}
