package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listStatusFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List banners, most recently updated first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatusFilter, "status", "", "filter by status substring, e.g. \"proof\"")
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	banners, err := a.Registry.Service.ListBanners(cmd.Context(), listStatusFilter)
	if err != nil {
		return err
	}
	if len(banners) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No banners found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHERO\tSPONSOR\tSTATUS\tPAID\tPOLE")
	for _, banner := range banners {
		paid := "no"
		if banner.PaymentVerified {
			paid = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(banner.BannerID), banner.HeroName, banner.SponsorName,
			banner.Status(), paid, banner.PoleLocation)
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
