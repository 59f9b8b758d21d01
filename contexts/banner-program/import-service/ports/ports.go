package ports

import (
	"context"

	"herobanner/contexts/banner-program/import-service/domain/entities"
)

// RowSource yields a tabular export as a header row plus data rows.
// Adapters exist for CSV files, XLSX files, and in-memory fixtures.
type RowSource interface {
	Rows() (header []string, rows [][]string, err error)
}

// MatchedPair joins a hero to the confirmed payment found for its sponsor.
type MatchedPair struct {
	Hero    entities.HeroRecord
	Payment entities.PaymentRecord
}

// ReconciliationResult accounts for every kept hero and payment exactly
// once: heroes land in Matched or HeroesUnmatched; confirmed payments land
// in Matched, PaymentsUnmatched, or (beyond the first at a key)
// DuplicatePaymentKeys.
type ReconciliationResult struct {
	Matched              []MatchedPair
	HeroesUnmatched      []entities.HeroRecord
	PaymentsUnmatched    []entities.PaymentRecord
	DuplicatePaymentKeys []string
}

// ImportedBanner is the reconciled shape handed to the banner registry.
type ImportedBanner struct {
	HeroName           string
	SponsorName        string
	SponsorEmail       string
	SponsorPhone       string
	Branch             string
	Rank               string
	ServiceDetail      string
	PhotoReference     string
	PaymentVerified    bool
	PaymentAmount      float64
	PaymentAmountKnown bool
	PaymentDate        string
	TransactionID      string
}

type UpsertSummary struct {
	Created   int
	Updated   int
	Unchanged int
}

// BannerUpserter is the registry port. The whole batch is applied in one
// transaction or not at all.
type BannerUpserter interface {
	UpsertBatch(ctx context.Context, banners []ImportedBanner) (UpsertSummary, error)
}

// ImportReport is the caller-facing summary of one import run.
type ImportReport struct {
	HeroesKept           int
	HeroSkips            []entities.SkipReason
	PaymentsKept         int
	PaymentSkips         []entities.SkipReason
	Matched              int
	HeroesUnmatched      []entities.HeroRecord
	PaymentsUnmatched    []entities.PaymentRecord
	DuplicatePaymentKeys []string
	Upsert               UpsertSummary
}
