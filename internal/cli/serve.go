package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coloring API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr = stringSetting(cmd, "addr", addr, c.Config.Serve.Addr)
			if !cmd.Flags().Changed("max-body") && c.Config.Serve.MaxBodyBytes > 0 {
				maxBody = c.Config.Serve.MaxBodyBytes
			}

			srv := server.New(server.Config{Addr: addr, MaxBodyBytes: maxBody}, c.newRunner(), c.Logger)
			printInfo("Listening on %s", srv.Addr())
			printDetail("POST /v1/color · GET /v1/algorithms · GET /healthz")
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
