package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"herobanner/contexts/banner-program/notification-service/application"
	domainerrors "herobanner/contexts/banner-program/notification-service/domain/errors"
	"herobanner/contexts/banner-program/notification-service/ports"
)

var notifyKind string

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send proof-ready notifications to sponsors",
	Long: `By default, finds every banner in the "Ready to Send Proof" stage
that has not been notified yet, writes the notification to the outbox
log, emails the sponsor when SMTP is configured, and marks proof_sent.

With --kind, writes reminder notices of another kind to the outbox
instead, without sending email or changing any banner:
  incomplete_info  banners missing required information
  payment_pending  banners with complete info but no verified payment
  print_approved   banners approved for printing`,
	RunE: runNotify,
}

var approvalsCmd = &cobra.Command{
	Use:   "approvals <replies.json>",
	Short: "Apply sponsor approval replies to awaiting banners",
	Long: `Reads a JSON file of received replies and marks proof_approved on
every awaiting banner whose sponsor email sent a reply with "APPROVE"
in the subject. The file is a list of {"sender": ..., "subject": ...}
objects.`,
	Args: cobra.ExactArgs(1),
	RunE: runApprovals,
}

func init() {
	notifyCmd.Flags().StringVar(&notifyKind, "kind", "", "notice kind: incomplete_info, payment_pending or print_approved")
}

func runNotify(cmd *cobra.Command, _ []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}
	if notifyKind != "" {
		return runNotifyKind(cmd, a.Notifications.Service, ports.MessageKind(notifyKind))
	}

	stats, sent, err := a.Notifications.Service.SendProofNotifications(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sent %d, failed %d, skipped %d\n", stats.Sent, stats.Failed, stats.Skipped)
	for _, message := range sent {
		fmt.Fprintf(out, "  %s -> %s\n", message.Subject, message.Recipient)
	}
	return nil
}

// runNotifyKind writes reminder notices to the outbox only; these kinds
// carry no workflow side effects.
func runNotifyKind(cmd *cobra.Command, service application.Service, kind ports.MessageKind) error {
	switch kind {
	case ports.KindIncompleteInfo, ports.KindPaymentPending, ports.KindPrintApproved:
	default:
		return fmt.Errorf("%w: %q", domainerrors.ErrInvalidKind, kind)
	}

	banners, err := service.Registry.ListBanners(cmd.Context())
	if err != nil {
		return err
	}

	written := 0
	for _, banner := range banners {
		if !noticeApplies(kind, banner) {
			continue
		}
		message, err := service.RenderForBanner(cmd.Context(), kind, banner)
		if err != nil {
			return err
		}
		if err := service.Outbox.Append(cmd.Context(), message); err != nil {
			return err
		}
		written++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d %s notices to the outbox\n", written, kind)
	return nil
}

func noticeApplies(kind ports.MessageKind, banner ports.Banner) bool {
	switch kind {
	case ports.KindIncompleteInfo:
		return !banner.InfoComplete
	case ports.KindPaymentPending:
		return banner.InfoComplete && !banner.PaymentVerified
	case ports.KindPrintApproved:
		return banner.Status == "Approved for Printing"
	default:
		return false
	}
}

func runApprovals(cmd *cobra.Command, args []string) error {
	a, err := ensureApp()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read replies file: %w", err)
	}
	var replies []ports.InboxMessage
	if err := json.Unmarshal(raw, &replies); err != nil {
		return fmt.Errorf("parse replies file: %w", err)
	}

	results, err := a.Notifications.Service.ProcessApprovalReplies(cmd.Context(), replies)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No approvals found.")
		return nil
	}
	for _, result := range results {
		fmt.Fprintf(out, "Approved: %s (%s)\n", result.HeroName, result.SponsorEmail)
	}
	return nil
}
