package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/botionplot/internal/server"
	"github.com/matzehuels/botionplot/pkg/outdir"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Browse the output directory in a web browser",
		Long: `Serve the generated figures and animations as a web gallery until
interrupted. The JSON listing is available at /api/artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := outdir.Ensure(output)
			if err != nil {
				return err
			}
			srv, err := server.New(server.Config{
				Addr:   addr,
				Dir:    dir,
				Logger: loggerFromContext(cmd.Context()),
			})
			if err != nil {
				return err
			}

			if arts, err := dir.List(); err == nil && len(arts) == 0 {
				printWarning("No figures in %s yet", dir)
				printNextStep("Render some", appName+" gallery -o "+output)
			}
			printInfo("Serving %s on http://%s", dir, addr)
			printDetail("Press Ctrl+C to stop")
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	addOutputFlag(cmd, &output)

	return cmd
}
