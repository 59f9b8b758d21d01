package bootstrap

import (
	"context"

	registryapp "herobanner/contexts/banner-program/banner-registry/application"
	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	registryports "herobanner/contexts/banner-program/banner-registry/ports"
	importports "herobanner/contexts/banner-program/import-service/ports"
	notifports "herobanner/contexts/banner-program/notification-service/ports"
)

// RegistryUpserter adapts the banner registry service to the import
// service's upsert port. The contexts only ever meet through this seam.
func RegistryUpserter(service registryapp.Service) importports.BannerUpserter {
	return registryUpserter{service: service}
}

type registryUpserter struct {
	service registryapp.Service
}

func (u registryUpserter) UpsertBatch(ctx context.Context, banners []importports.ImportedBanner) (importports.UpsertSummary, error) {
	imports := make([]registryports.BannerImport, 0, len(banners))
	for _, banner := range banners {
		imports = append(imports, registryports.BannerImport{
			HeroName:           banner.HeroName,
			SponsorName:        banner.SponsorName,
			SponsorEmail:       banner.SponsorEmail,
			SponsorPhone:       banner.SponsorPhone,
			Branch:             banner.Branch,
			Rank:               banner.Rank,
			ServiceDetail:      banner.ServiceDetail,
			PhotoReference:     banner.PhotoReference,
			PaymentVerified:    banner.PaymentVerified,
			PaymentAmount:      banner.PaymentAmount,
			PaymentAmountKnown: banner.PaymentAmountKnown,
			PaymentDate:        banner.PaymentDate,
			TransactionID:      banner.TransactionID,
		})
	}
	summary, err := u.service.UpsertBatch(ctx, imports)
	if err != nil {
		return importports.UpsertSummary{}, err
	}
	return importports.UpsertSummary{
		Created:   summary.Created,
		Updated:   summary.Updated,
		Unchanged: summary.Unchanged,
	}, nil
}

// RegistryGateway adapts the banner registry service to the notification
// service's read-mostly registry port.
func RegistryGateway(service registryapp.Service) notifports.Registry {
	return registryGateway{service: service}
}

type registryGateway struct {
	service registryapp.Service
}

func (g registryGateway) ListBanners(ctx context.Context) ([]notifports.Banner, error) {
	banners, err := g.service.ListBanners(ctx, "")
	if err != nil {
		return nil, err
	}
	views := make([]notifports.Banner, 0, len(banners))
	for _, banner := range banners {
		views = append(views, notifports.Banner{
			BannerID:        banner.BannerID,
			HeroName:        banner.HeroName,
			SponsorName:     banner.SponsorName,
			SponsorEmail:    banner.SponsorEmail,
			PoleLocation:    banner.PoleLocation,
			Status:          string(banner.Status()),
			InfoComplete:    banner.InfoComplete(),
			PaymentVerified: banner.PaymentVerified,
			ProofSent:       banner.ProofSent,
			ProofApproved:   banner.ProofApproved,
			MissingFields:   missingFields(banner),
		})
	}
	return views, nil
}

func (g registryGateway) MarkProofSent(ctx context.Context, bannerID string) error {
	return g.service.MarkProofSent(ctx, bannerID)
}

func (g registryGateway) MarkProofApproved(ctx context.Context, bannerID string) error {
	return g.service.MarkProofApproved(ctx, bannerID)
}

func missingFields(banner entities.BannerRecord) []string {
	var missing []string
	if banner.HeroName == "" {
		missing = append(missing, "Hero Name")
	}
	if banner.Branch == "" {
		missing = append(missing, "Branch of Service")
	}
	if banner.SponsorName == "" {
		missing = append(missing, "Sponsor Name")
	}
	if banner.SponsorEmail == "" {
		missing = append(missing, "Sponsor Email")
	}
	if banner.PhotoReference == "" {
		missing = append(missing, "Photo")
	}
	return missing
}
