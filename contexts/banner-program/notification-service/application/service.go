package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "herobanner/contexts/banner-program/notification-service/domain/errors"
	"herobanner/contexts/banner-program/notification-service/ports"
)

// Service generates sponsor notifications and processes approval replies.
// It never owns banner state: proof_sent and proof_approved are flipped
// through the Registry port, one flag each, nothing else.
type Service struct {
	Registry ports.Registry
	Outbox   ports.OutboxWriter
	Mailer   ports.Mailer
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// SendProofNotifications renders a proof-ready message for every banner in
// the ready-to-send stage, appends it to the outbox, emails the sponsor
// when a mailer is configured, and marks proof_sent per banner on success.
func (s Service) SendProofNotifications(ctx context.Context) (ports.SendStats, []ports.Message, error) {
	if s.Registry == nil {
		return ports.SendStats{}, nil, domainerrors.ErrRegistryRequired
	}
	banners, err := s.Registry.ListBanners(ctx)
	if err != nil {
		return ports.SendStats{}, nil, err
	}

	var stats ports.SendStats
	var sent []ports.Message
	for _, banner := range banners {
		if !readyForProofNotification(banner) {
			stats.Skipped++
			continue
		}
		if strings.TrimSpace(banner.SponsorEmail) == "" {
			stats.Skipped++
			resolveLogger(s.Logger).Warn("banner has no sponsor email",
				"event", "notification_skipped",
				"module", "banner-program/notification-service",
				"layer", "application",
				"banner_id", banner.BannerID,
				"hero_name", banner.HeroName,
			)
			continue
		}

		message, err := s.render(ctx, ports.KindProofReady, banner)
		if err != nil {
			return stats, sent, err
		}
		if err := s.Outbox.Append(ctx, message); err != nil {
			stats.Failed++
			continue
		}
		if s.Mailer != nil {
			if err := s.Mailer.Send(ctx, message.Recipient, message.Subject, message.Body); err != nil {
				stats.Failed++
				resolveLogger(s.Logger).Error("proof notification delivery failed",
					"event", "notification_send_failed",
					"module", "banner-program/notification-service",
					"layer", "application",
					"banner_id", banner.BannerID,
					"recipient", message.Recipient,
					"error", err.Error(),
				)
				continue
			}
		}
		if err := s.Registry.MarkProofSent(ctx, banner.BannerID); err != nil {
			return stats, sent, err
		}
		stats.Sent++
		sent = append(sent, message)
	}

	resolveLogger(s.Logger).Info("proof notifications processed",
		"event", "proof_notifications_processed",
		"module", "banner-program/notification-service",
		"layer", "application",
		"sent", stats.Sent,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
	)
	return stats, sent, nil
}

// ProcessApprovalReplies scans received replies for an approval keyword and
// matches banners by sponsor email. A sponsor backing several heroes
// approves each not-yet-approved banner, as a human reading the inbox
// would.
func (s Service) ProcessApprovalReplies(ctx context.Context, replies []ports.InboxMessage) ([]ports.ApprovalResult, error) {
	if s.Registry == nil {
		return nil, domainerrors.ErrRegistryRequired
	}
	banners, err := s.Registry.ListBanners(ctx)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string][]ports.Banner)
	for _, banner := range banners {
		email := strings.ToLower(strings.TrimSpace(banner.SponsorEmail))
		if email != "" {
			byEmail[email] = append(byEmail[email], banner)
		}
	}

	var results []ports.ApprovalResult
	for _, reply := range replies {
		if !isApprovalReply(reply) {
			continue
		}
		sender := strings.ToLower(strings.TrimSpace(reply.Sender))
		for _, banner := range byEmail[sender] {
			if banner.ProofApproved {
				continue
			}
			if err := s.Registry.MarkProofApproved(ctx, banner.BannerID); err != nil {
				return results, err
			}
			results = append(results, ports.ApprovalResult{
				BannerID:     banner.BannerID,
				HeroName:     banner.HeroName,
				SponsorEmail: banner.SponsorEmail,
			})
			resolveLogger(s.Logger).Info("proof approved from reply",
				"event", "proof_approved_from_reply",
				"module", "banner-program/notification-service",
				"layer", "application",
				"banner_id", banner.BannerID,
				"hero_name", banner.HeroName,
			)
		}
	}
	return results, nil
}

// RenderForBanner renders a single notification of the given kind without
// sending it, for previews and the CLI's non-proof notices.
func (s Service) RenderForBanner(ctx context.Context, kind ports.MessageKind, banner ports.Banner) (ports.Message, error) {
	return s.render(ctx, kind, banner)
}

func readyForProofNotification(banner ports.Banner) bool {
	return banner.Status == ports.StatusReadyToSendProof && !banner.ProofSent
}

func isApprovalReply(reply ports.InboxMessage) bool {
	subject := strings.ToUpper(reply.Subject)
	return strings.Contains(subject, "APPROVE")
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
