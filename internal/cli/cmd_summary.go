package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show banner counts per workflow stage",
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	summary, err := a.Registry.Service.Summary(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total banners:\t%d\n", summary.Total)
	for _, item := range summary.ByStatus {
		fmt.Fprintf(w, "%s:\t%d\n", item.Status, item.Count)
	}
	return w.Flush()
}
