// Package cli implements the bannerctl command tree. Commands wire the
// application through the bootstrap composition root and talk to the same
// services the HTTP server exposes.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"herobanner/internal/app/bootstrap"
)

var app *bootstrap.App

var rootCmd = &cobra.Command{
	Use:   "bannerctl",
	Short: "Track Hometown Hero banners from sponsorship to pole",
	Long: `bannerctl imports the website and payment exports, reconciles them
into banner records, and drives each banner through the approval
workflow: verification, proofs, customer approval, printing, and the
final thank-you.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	defer func() {
		if app != nil {
			_ = app.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// ensureApp builds the wired application once, on first use. Commands that
// never touch the database (help, completion) stay cheap.
func ensureApp() (*bootstrap.App, error) {
	if app != nil {
		return app, nil
	}
	built, err := bootstrap.Build("cli")
	if err != nil {
		return nil, err
	}
	app = built
	return app, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(approvalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}
