package cli

import "github.com/spf13/cobra"

func newServeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder dispatcher",
		Long: `Run the HTTP API and the reminder dispatcher.

Other flowx commands may use the same store while the server runs; their
tasks and scores are picked up on the next request. The login session is
read once at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := rt.container
			c.Logger.Infof(ctx, "Environment: %s", c.Config.Environment.Name)
			c.Logger.Infof(ctx, "Storage: %s", c.Config.Storage.Driver)
			return c.Serve(ctx)
		},
	}
}
