package bootstrap

import (
	"context"
	"testing"

	bannerregistry "herobanner/contexts/banner-program/banner-registry"
	registryports "herobanner/contexts/banner-program/banner-registry/ports"
	importports "herobanner/contexts/banner-program/import-service/ports"
)

func TestRegistryUpserterMapsFields(t *testing.T) {
	registry := bannerregistry.NewInMemoryModule(nil)
	upserter := RegistryUpserter(registry.Service)

	summary, err := upserter.UpsertBatch(context.Background(), []importports.ImportedBanner{{
		HeroName:           "John Smith",
		SponsorName:        "Jane Smith",
		SponsorEmail:       "jane@example.com",
		Branch:             "Army",
		PhotoReference:     "wix:image://v1/abc",
		PaymentVerified:    true,
		PaymentAmount:      95,
		PaymentAmountKnown: true,
		TransactionID:      "tx-1",
	}})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if summary.Created != 1 {
		t.Fatalf("expected 1 created, got %+v", summary)
	}

	banners, err := registry.Service.ListBanners(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	banner := banners[0]
	if banner.HeroName != "John Smith" || !banner.PaymentVerified || banner.TransactionID != "tx-1" {
		t.Fatalf("fields lost in translation: %+v", banner)
	}
}

func TestRegistryGatewayDerivesViewFields(t *testing.T) {
	registry := bannerregistry.NewInMemoryModule(nil)
	gateway := RegistryGateway(registry.Service)

	if _, err := registry.Service.UpsertBatch(context.Background(), []registryports.BannerImport{{
		HeroName:        "John Smith",
		SponsorName:     "Jane Smith",
		SponsorEmail:    "jane@example.com",
		Branch:          "Army",
		PaymentVerified: true,
	}}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	views, err := gateway.ListBanners(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	view := views[0]
	if view.Status != "Paid - Info Incomplete" {
		t.Fatalf("expected derived status, got %q", view.Status)
	}
	if view.InfoComplete {
		t.Fatal("photo is missing, info must be incomplete")
	}
	if len(view.MissingFields) != 1 || view.MissingFields[0] != "Photo" {
		t.Fatalf("expected Photo missing, got %+v", view.MissingFields)
	}

	if err := gateway.MarkProofSent(context.Background(), view.BannerID); err != nil {
		t.Fatalf("mark proof sent failed: %v", err)
	}
	banner, err := registry.Service.GetBanner(context.Background(), view.BannerID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !banner.ProofSent {
		t.Fatal("expected proof_sent set through the gateway")
	}
}
