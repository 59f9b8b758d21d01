package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainerrors "herobanner/contexts/banner-program/notification-service/domain/errors"
	"herobanner/contexts/banner-program/notification-service/ports"
)

const proofURL = "https://www.millcreekkiwanis.org/about-9"

func (s Service) render(ctx context.Context, kind ports.MessageKind, banner ports.Banner) (ports.Message, error) {
	messageID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Message{}, err
	}
	now := s.now()

	message := ports.Message{
		MessageID: messageID,
		Kind:      kind,
		BannerID:  banner.BannerID,
		Recipient: banner.SponsorEmail,
		CreatedAt: now,
	}
	switch kind {
	case ports.KindProofReady:
		message.Subject = fmt.Sprintf("Hometown Hero Banner Proof Ready - %s", banner.HeroName)
		message.Body = proofReadyBody(banner, now)
	case ports.KindIncompleteInfo:
		message.Subject = fmt.Sprintf("Hometown Hero Banner - Missing Information for %s", banner.HeroName)
		message.Body = incompleteInfoBody(banner, now)
	case ports.KindPaymentPending:
		message.Subject = fmt.Sprintf("Hometown Hero Banner - Payment Pending for %s", banner.HeroName)
		message.Body = paymentPendingBody(banner, now)
	case ports.KindPrintApproved:
		message.Subject = fmt.Sprintf("Hometown Hero Banner Approved for Printing - %s", banner.HeroName)
		message.Body = printApprovedBody(banner, now)
	default:
		return ports.Message{}, fmt.Errorf("%w: %q", domainerrors.ErrInvalidKind, kind)
	}
	return message, nil
}

func proofReadyBody(banner ports.Banner, now time.Time) string {
	return fmt.Sprintf(`Date: %s

Hero Name: %s
Sponsor: %s
Email: %s

Your banner proof is ready for review on the website.
Please visit: %s

To approve this proof, please reply to this email with "APPROVE" in the subject line.
If you need any changes, please describe them in your reply.

Thank you for supporting our hometown heroes!
`, now.Format("2006-01-02 15:04:05"), banner.HeroName, banner.SponsorName, banner.SponsorEmail, proofURL)
}

func incompleteInfoBody(banner ports.Banner, now time.Time) string {
	missing := "  (not specified)"
	if len(banner.MissingFields) > 0 {
		var b strings.Builder
		for _, field := range banner.MissingFields {
			fmt.Fprintf(&b, "  - %s\n", field)
		}
		missing = strings.TrimRight(b.String(), "\n")
	}
	return fmt.Sprintf(`Date: %s

Hero Name: %s
Sponsor: %s

The following information is missing for this banner:
%s

Please provide the missing information to proceed.
`, now.Format("2006-01-02 15:04:05"), banner.HeroName, banner.SponsorName, missing)
}

func paymentPendingBody(banner ports.Banner, now time.Time) string {
	return fmt.Sprintf(`Date: %s

Hero Name: %s
Sponsor: %s

We have received your banner information, but payment has not been verified.
Please complete payment to proceed with banner production.
`, now.Format("2006-01-02 15:04:05"), banner.HeroName, banner.SponsorName)
}

func printApprovedBody(banner ports.Banner, now time.Time) string {
	pole := banner.PoleLocation
	if pole == "" {
		pole = "Not assigned"
	}
	return fmt.Sprintf(`Date: %s

Hero Name: %s
Sponsor: %s
Pole Location: %s

This banner has been approved and is ready for printing.
`, now.Format("2006-01-02 15:04:05"), banner.HeroName, banner.SponsorName, pole)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
