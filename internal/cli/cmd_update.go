package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
)

var updateCmd = &cobra.Command{
	Use:   "update <hero-name> <field> <value>",
	Short: "Update one workflow field on a banner by hero name",
	Long: `Matches the banner whose hero name contains the given fragment and
sets one field. Fields: pole_location, notes, documents_verified,
photo_verified, proof_sent, proof_approved, print_approved,
submitted_to_printer, thank_you_sent.

When the fragment matches several banners the candidates are listed and
nothing is changed; retry with a longer fragment.`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	outcome, err := a.Registry.Service.UpdateByName(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		if errors.Is(err, domainerrors.ErrAmbiguousBanner) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%q matches %d banners:\n", args[0], len(outcome.Candidates))
			for _, candidate := range outcome.Candidates {
				fmt.Fprintf(out, "  %s  %s (sponsor %s)\n",
					shortID(candidate.BannerID), candidate.HeroName, candidate.SponsorName)
			}
		}
		return err
	}

	banner := outcome.Banner
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s is now %q\n", banner.HeroName, args[1], args[2])
	fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", banner.Status())
	return nil
}
