package application

import (
	"context"
	"fmt"
	"log/slog"

	"herobanner/contexts/banner-program/import-service/domain/entities"
	domainerrors "herobanner/contexts/banner-program/import-service/domain/errors"
	"herobanner/contexts/banner-program/import-service/ports"
)

// Service runs the import pipeline: parse both exports, reconcile, upsert
// the result into the banner registry, and report. Parsing and
// reconciliation never fail; only an unreadable source or a registry fault
// aborts the run, and the registry applies the batch transactionally.
type Service struct {
	Registry ports.BannerUpserter
	Logger   *slog.Logger
}

func (s Service) Import(ctx context.Context, heroSource, paymentSource ports.RowSource) (ports.ImportReport, error) {
	heroHeader, heroRows, err := heroSource.Rows()
	if err != nil {
		return ports.ImportReport{}, fmt.Errorf("%w: hero source: %v", domainerrors.ErrSourceUnreadable, err)
	}
	if len(heroHeader) == 0 {
		return ports.ImportReport{}, fmt.Errorf("%w: hero source", domainerrors.ErrEmptySource)
	}
	paymentHeader, paymentRows, err := paymentSource.Rows()
	if err != nil {
		return ports.ImportReport{}, fmt.Errorf("%w: payment source: %v", domainerrors.ErrSourceUnreadable, err)
	}
	if len(paymentHeader) == 0 {
		return ports.ImportReport{}, fmt.Errorf("%w: payment source", domainerrors.ErrEmptySource)
	}

	heroes, heroSkips := s.ParseHeroes(heroHeader, heroRows)
	payments, paymentSkips := s.ParsePayments(paymentHeader, paymentRows)
	result := s.Reconcile(heroes, payments)

	summary, err := s.Registry.UpsertBatch(ctx, bannersFromResult(result))
	if err != nil {
		return ports.ImportReport{}, fmt.Errorf("%w: %v", domainerrors.ErrStoreFailed, err)
	}

	report := ports.ImportReport{
		HeroesKept:           len(heroes),
		HeroSkips:            heroSkips,
		PaymentsKept:         len(payments),
		PaymentSkips:         paymentSkips,
		Matched:              len(result.Matched),
		HeroesUnmatched:      result.HeroesUnmatched,
		PaymentsUnmatched:    result.PaymentsUnmatched,
		DuplicatePaymentKeys: result.DuplicatePaymentKeys,
		Upsert:               summary,
	}

	resolveLogger(s.Logger).Info("import completed",
		"event", "import_completed",
		"module", "banner-program/import-service",
		"layer", "application",
		"heroes_kept", report.HeroesKept,
		"payments_kept", report.PaymentsKept,
		"matched", report.Matched,
		"heroes_unmatched", len(report.HeroesUnmatched),
		"payments_unmatched", len(report.PaymentsUnmatched),
		"duplicate_payment_keys", len(report.DuplicatePaymentKeys),
		"created", summary.Created,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
	)
	return report, nil
}

// bannersFromResult flattens the reconciliation into registry input. Every
// kept hero is retained; an unmatched hero simply arrives unverified.
func bannersFromResult(result ports.ReconciliationResult) []ports.ImportedBanner {
	banners := make([]ports.ImportedBanner, 0, len(result.Matched)+len(result.HeroesUnmatched))
	for _, pair := range result.Matched {
		banner := bannerFromHero(pair.Hero)
		banner.PaymentVerified = true
		banner.PaymentAmount = pair.Payment.Amount
		banner.PaymentAmountKnown = pair.Payment.AmountKnown
		banner.PaymentDate = pair.Payment.PaymentDate
		banner.TransactionID = pair.Payment.TransactionID
		banners = append(banners, banner)
	}
	for _, hero := range result.HeroesUnmatched {
		banners = append(banners, bannerFromHero(hero))
	}
	return banners
}

func bannerFromHero(hero entities.HeroRecord) ports.ImportedBanner {
	return ports.ImportedBanner{
		HeroName:       hero.HeroName,
		SponsorName:    hero.SponsorName,
		SponsorEmail:   hero.SponsorEmail,
		SponsorPhone:   hero.SponsorPhone,
		Branch:         hero.Branch,
		Rank:           hero.Rank,
		ServiceDetail:  hero.ServiceDetail,
		PhotoReference: hero.PhotoReference,
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
