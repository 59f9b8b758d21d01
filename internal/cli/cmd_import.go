package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"herobanner/contexts/banner-program/import-service/adapters/csvsource"
	"herobanner/contexts/banner-program/import-service/adapters/xlsxsource"
	"herobanner/contexts/banner-program/import-service/ports"
)

var (
	importHeroesPath   string
	importPaymentsPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the hero and payment exports and reconcile them",
	Long: `Reads the website hero export and the payment export, matches
payments to heroes by normalized sponsor name, and upserts the result
into the banner registry. Workflow fields set by hand are never touched.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importHeroesPath, "heroes", "", "path to the hero export (.csv or .xlsx)")
	importCmd.Flags().StringVar(&importPaymentsPath, "payments", "", "path to the payment export (.csv or .xlsx)")
	_ = importCmd.MarkFlagRequired("heroes")
	_ = importCmd.MarkFlagRequired("payments")
}

func runImport(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	report, err := a.Imports.Service.Import(
		cmd.Context(),
		sourceForPath(importHeroesPath),
		sourceForPath(importPaymentsPath),
	)
	if err != nil {
		return err
	}

	printImportReport(cmd, report)
	return nil
}

func sourceForPath(path string) ports.RowSource {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxsource.FileSource{Path: path}
	}
	return csvsource.FileSource{Path: path}
}

func printImportReport(cmd *cobra.Command, report ports.ImportReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Heroes kept:       %d (skipped %d)\n", report.HeroesKept, len(report.HeroSkips))
	fmt.Fprintf(out, "Payments kept:     %d (skipped %d)\n", report.PaymentsKept, len(report.PaymentSkips))
	fmt.Fprintf(out, "Matched:           %d\n", report.Matched)
	fmt.Fprintf(out, "Heroes unpaid:     %d\n", len(report.HeroesUnmatched))
	fmt.Fprintf(out, "Payments unmatched: %d\n", len(report.PaymentsUnmatched))
	fmt.Fprintf(out, "Registry:          %d created, %d updated, %d unchanged\n",
		report.Upsert.Created, report.Upsert.Updated, report.Upsert.Unchanged)

	for _, hero := range report.HeroesUnmatched {
		fmt.Fprintf(out, "  no payment: %s (sponsor %s)\n", hero.HeroName, hero.SponsorName)
	}
	for _, payment := range report.PaymentsUnmatched {
		fmt.Fprintf(out, "  no hero: payment from %s\n", payment.SponsorName)
	}
	for _, key := range report.DuplicatePaymentKeys {
		fmt.Fprintf(out, "  duplicate payments under: %s\n", key)
	}
}
