package ports

import (
	"context"
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
)

// BannerImport is one reconciled hero arriving from an import run.
type BannerImport struct {
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

// UpdateOutcome reports an update-by-name operation. Candidates is only
// populated when the fragment was ambiguous, so the caller can present the
// choices instead of silently picking one.
type UpdateOutcome struct {
	Banner     entities.BannerRecord
	Candidates []entities.BannerRecord
}

type StatusCount struct {
	Status entities.Status
	Count  int
}

type Summary struct {
	Total    int
	ByStatus []StatusCount
}

// Repository owns physical banner storage. SaveBatch must apply creates and
// updates in a single transaction: a failed import batch leaves nothing
// half-applied.
type Repository interface {
	FindByKey(ctx context.Context, heroKey, sponsorKey string) (entities.BannerRecord, bool, error)
	GetBanner(ctx context.Context, bannerID string) (entities.BannerRecord, error)
	ListBanners(ctx context.Context) ([]entities.BannerRecord, error)
	SaveBatch(ctx context.Context, create []entities.BannerRecord, update []entities.BannerRecord) error
	SaveBanner(ctx context.Context, banner entities.BannerRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
