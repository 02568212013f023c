package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API for the web frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return fmt.Errorf("serve is not available in this build")
			}
			return app.Serve(cmd.Context(), addr)
		},
	}

	defAddr := app.Addr
	if defAddr == "" {
		defAddr = ":8080"
	}
	cmd.Flags().StringVar(&addr, "addr", defAddr, "Listen address")
	return cmd
}
