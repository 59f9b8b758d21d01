package cli

import (
	"github.com/spf13/cobra"

	"herobanner/internal/app/bootstrap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	api, err := bootstrap.BuildAPI()
	if err != nil {
		return err
	}
	defer api.Close()
	return api.Run(cmd.Context())
}
