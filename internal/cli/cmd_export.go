package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
)

var (
	exportOutPath      string
	exportStatusFilter string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export banners to a CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutPath, "out", "banners_export.csv", "output file path")
	exportCmd.Flags().StringVar(&exportStatusFilter, "status", "", "filter by status substring")
}

type exportRow struct {
	HeroName           string  `csv:"hero_name"`
	SponsorName        string  `csv:"sponsor_name"`
	SponsorEmail       string  `csv:"sponsor_email"`
	SponsorPhone       string  `csv:"sponsor_phone"`
	Branch             string  `csv:"branch"`
	Rank               string  `csv:"rank"`
	Status             string  `csv:"status"`
	PaymentVerified    bool    `csv:"payment_verified"`
	PaymentAmount      float64 `csv:"payment_amount"`
	PoleLocation       string  `csv:"pole_location"`
	Notes              string  `csv:"notes"`
	DocumentsVerified  bool    `csv:"documents_verified"`
	PhotoVerified      bool    `csv:"photo_verified"`
	ProofSent          bool    `csv:"proof_sent"`
	ProofApproved      bool    `csv:"proof_approved"`
	PrintApproved      bool    `csv:"print_approved"`
	SubmittedToPrinter bool    `csv:"submitted_to_printer"`
	ThankYouSent       bool    `csv:"thank_you_sent"`
	UpdatedAt          string  `csv:"updated_at"`
}

func runExport(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	banners, err := a.Registry.Service.ListBanners(cmd.Context(), exportStatusFilter)
	if err != nil {
		return err
	}

	rows := make([]exportRow, 0, len(banners))
	for _, banner := range banners {
		rows = append(rows, exportRowFromBanner(banner))
	}
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(exportOutPath, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d banners to %s\n", len(rows), exportOutPath)
	return nil
}

func exportRowFromBanner(banner entities.BannerRecord) exportRow {
	return exportRow{
		HeroName:           banner.HeroName,
		SponsorName:        banner.SponsorName,
		SponsorEmail:       banner.SponsorEmail,
		SponsorPhone:       banner.SponsorPhone,
		Branch:             banner.Branch,
		Rank:               banner.Rank,
		Status:             string(banner.Status()),
		PaymentVerified:    banner.PaymentVerified,
		PaymentAmount:      banner.PaymentAmount,
		PoleLocation:       banner.PoleLocation,
		Notes:              banner.Notes,
		DocumentsVerified:  banner.DocumentsVerified,
		PhotoVerified:      banner.PhotoVerified,
		ProofSent:          banner.ProofSent,
		ProofApproved:      banner.ProofApproved,
		PrintApproved:      banner.PrintApproved,
		SubmittedToPrinter: banner.SubmittedToPrinter,
		ThankYouSent:       banner.ThankYouSent,
		UpdatedAt:          banner.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
