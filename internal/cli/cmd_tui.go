package cli

import (
	"github.com/spf13/cobra"

	"herobanner/internal/cli/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse banners in an interactive terminal dashboard",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), a.Registry.Service)
}
