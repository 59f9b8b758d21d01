package application

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
	"herobanner/contexts/banner-program/banner-registry/ports"
	"herobanner/internal/shared/namekey"
)

// Service owns the banner registry use cases: the transactional import
// upsert with sticky-field preservation, explicit field updates, listing,
// and summaries.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// UpsertBatch merges one import run into the registry. Hero-sourced fields
// and the payment block are refreshed; sticky workflow fields are never
// touched; PaymentVerified never drops back to false on import. A record
// whose refreshed fields all match keeps its UpdatedAt, so re-importing
// identical files is idempotent.
func (s Service) UpsertBatch(ctx context.Context, imports []ports.BannerImport) (ports.UpsertSummary, error) {
	now := s.now()

	var summary ports.UpsertSummary
	var creates, updates []entities.BannerRecord
	for _, imp := range imports {
		heroKey := namekey.Normalize(imp.HeroName)
		if heroKey == "" {
			continue
		}
		sponsorKey := namekey.Normalize(imp.SponsorName)

		existing, found, err := s.Repo.FindByKey(ctx, heroKey, sponsorKey)
		if err != nil {
			return ports.UpsertSummary{}, err
		}
		if !found {
			bannerID, err := s.IDGen.NewID(ctx)
			if err != nil {
				return ports.UpsertSummary{}, err
			}
			banner := entities.BannerRecord{BannerID: bannerID, CreatedAt: now, UpdatedAt: now}
			refreshImportedFields(&banner, imp)
			banner.PaymentVerified = imp.PaymentVerified
			creates = append(creates, banner)
			summary.Created++
			continue
		}

		merged := existing
		refreshImportedFields(&merged, imp)
		merged.PaymentVerified = existing.PaymentVerified || imp.PaymentVerified
		if merged == existing {
			summary.Unchanged++
			continue
		}
		merged.UpdatedAt = now
		updates = append(updates, merged)
		summary.Updated++
	}

	if err := s.Repo.SaveBatch(ctx, creates, updates); err != nil {
		return ports.UpsertSummary{}, err
	}

	resolveLogger(s.Logger).Info("banner batch upserted",
		"event", "banner_batch_upserted",
		"module", "banner-program/banner-registry",
		"layer", "application",
		"created", summary.Created,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
	)
	return summary, nil
}

// UpdateByName updates one sticky field on the banner whose hero name
// contains the fragment. An ambiguous fragment returns the candidate list
// alongside ErrAmbiguousBanner; the service never picks one silently.
func (s Service) UpdateByName(ctx context.Context, fragment, field, value string) (ports.UpdateOutcome, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return ports.UpdateOutcome{}, domainerrors.ErrInvalidInput
	}

	banners, err := s.Repo.ListBanners(ctx)
	if err != nil {
		return ports.UpdateOutcome{}, err
	}

	var matches []entities.BannerRecord
	needle := strings.ToLower(fragment)
	for _, banner := range banners {
		if strings.Contains(strings.ToLower(banner.HeroName), needle) {
			matches = append(matches, banner)
		}
	}
	switch {
	case len(matches) == 0:
		return ports.UpdateOutcome{}, domainerrors.ErrBannerNotFound
	case len(matches) > 1:
		return ports.UpdateOutcome{Candidates: matches}, domainerrors.ErrAmbiguousBanner
	}

	banner := matches[0]
	if err := applyField(&banner, field, value); err != nil {
		return ports.UpdateOutcome{}, err
	}
	banner.UpdatedAt = s.now()
	if err := s.Repo.SaveBanner(ctx, banner); err != nil {
		return ports.UpdateOutcome{}, err
	}

	resolveLogger(s.Logger).Info("banner field updated",
		"event", "banner_field_updated",
		"module", "banner-program/banner-registry",
		"layer", "application",
		"banner_id", banner.BannerID,
		"hero_name", banner.HeroName,
		"field", field,
	)
	return ports.UpdateOutcome{Banner: banner}, nil
}

// PatchBanner applies sticky-field updates to a banner addressed by ID.
// Fields are applied in name order so a bad value fails deterministically.
func (s Service) PatchBanner(ctx context.Context, bannerID string, fields map[string]string) (entities.BannerRecord, error) {
	banner, err := s.Repo.GetBanner(ctx, strings.TrimSpace(bannerID))
	if err != nil {
		return entities.BannerRecord{}, err
	}
	if len(fields) == 0 {
		return banner, nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := applyField(&banner, name, fields[name]); err != nil {
			return entities.BannerRecord{}, err
		}
	}
	banner.UpdatedAt = s.now()
	if err := s.Repo.SaveBanner(ctx, banner); err != nil {
		return entities.BannerRecord{}, err
	}
	return banner, nil
}

func (s Service) GetBanner(ctx context.Context, bannerID string) (entities.BannerRecord, error) {
	return s.Repo.GetBanner(ctx, strings.TrimSpace(bannerID))
}

// ListBanners returns banners ordered most recently updated first. The
// optional filter is a case-insensitive substring match against the derived
// status label, e.g. "proof" matches every proof-related stage.
func (s Service) ListBanners(ctx context.Context, statusFilter string) ([]entities.BannerRecord, error) {
	banners, err := s.Repo.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	if statusFilter == "" {
		return banners, nil
	}
	filtered := make([]entities.BannerRecord, 0, len(banners))
	for _, banner := range banners {
		if strings.Contains(strings.ToLower(string(banner.Status())), statusFilter) {
			filtered = append(filtered, banner)
		}
	}
	return filtered, nil
}

func (s Service) Summary(ctx context.Context) (ports.Summary, error) {
	banners, err := s.Repo.ListBanners(ctx)
	if err != nil {
		return ports.Summary{}, err
	}

	counts := make(map[entities.Status]int)
	for _, banner := range banners {
		counts[banner.Status()]++
	}
	summary := ports.Summary{Total: len(banners)}
	for status, count := range counts {
		summary.ByStatus = append(summary.ByStatus, ports.StatusCount{Status: status, Count: count})
	}
	sort.Slice(summary.ByStatus, func(i, j int) bool {
		return summary.ByStatus[i].Status < summary.ByStatus[j].Status
	})
	return summary, nil
}

// MarkProofSent and MarkProofApproved are the notification collaborator's
// only write surface; each touches its own flag and nothing else.
func (s Service) MarkProofSent(ctx context.Context, bannerID string) error {
	return s.setFlag(ctx, bannerID, "proof_sent")
}

func (s Service) MarkProofApproved(ctx context.Context, bannerID string) error {
	return s.setFlag(ctx, bannerID, "proof_approved")
}

func (s Service) setFlag(ctx context.Context, bannerID, field string) error {
	banner, err := s.Repo.GetBanner(ctx, strings.TrimSpace(bannerID))
	if err != nil {
		return err
	}
	if err := applyField(&banner, field, "true"); err != nil {
		return err
	}
	banner.UpdatedAt = s.now()
	return s.Repo.SaveBanner(ctx, banner)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
