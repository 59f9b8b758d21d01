package application

import (
	"fmt"
	"strings"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
	"herobanner/contexts/banner-program/banner-registry/ports"
)

// refreshImportedFields overwrites everything an import run is allowed to
// touch. Sticky fields and PaymentVerified are handled by the caller.
func refreshImportedFields(banner *entities.BannerRecord, imp ports.BannerImport) {
	banner.HeroName = strings.TrimSpace(imp.HeroName)
	banner.SponsorName = strings.TrimSpace(imp.SponsorName)
	banner.SponsorEmail = strings.TrimSpace(imp.SponsorEmail)
	banner.SponsorPhone = strings.TrimSpace(imp.SponsorPhone)
	banner.Branch = strings.TrimSpace(imp.Branch)
	banner.Rank = strings.TrimSpace(imp.Rank)
	banner.ServiceDetail = strings.TrimSpace(imp.ServiceDetail)
	banner.PhotoReference = strings.TrimSpace(imp.PhotoReference)
	banner.PaymentAmount = imp.PaymentAmount
	banner.PaymentAmountKnown = imp.PaymentAmountKnown
	banner.PaymentDate = strings.TrimSpace(imp.PaymentDate)
	banner.TransactionID = strings.TrimSpace(imp.TransactionID)
}

// Sticky fields reachable through explicit updates. proof_sent is normally
// set by the notification flow but stays settable for manual corrections.
func applyField(banner *entities.BannerRecord, field, value string) error {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "pole_location":
		banner.PoleLocation = strings.TrimSpace(value)
	case "notes":
		banner.Notes = strings.TrimSpace(value)
	case "documents_verified":
		return applyBool(&banner.DocumentsVerified, field, value)
	case "photo_verified":
		return applyBool(&banner.PhotoVerified, field, value)
	case "proof_sent":
		return applyBool(&banner.ProofSent, field, value)
	case "proof_approved":
		return applyBool(&banner.ProofApproved, field, value)
	case "print_approved":
		return applyBool(&banner.PrintApproved, field, value)
	case "submitted_to_printer":
		return applyBool(&banner.SubmittedToPrinter, field, value)
	case "thank_you_sent":
		return applyBool(&banner.ThankYouSent, field, value)
	default:
		return fmt.Errorf("%w: %q", domainerrors.ErrUnknownField, field)
	}
	return nil
}

func applyBool(target *bool, field, value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1", "on":
		*target = true
	case "false", "no", "n", "0", "off":
		*target = false
	default:
		return fmt.Errorf("%w: %s=%q", domainerrors.ErrInvalidFieldValue, field, value)
	}
	return nil
}
