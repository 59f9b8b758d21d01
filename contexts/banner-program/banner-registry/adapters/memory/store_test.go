package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
)

func TestStoreFindByKey(t *testing.T) {
	store := NewStore()
	banner := entities.BannerRecord{
		BannerID:    "b1",
		HeroName:    "John Smith",
		SponsorName: "Jane Smith",
	}
	if err := store.SaveBatch(context.Background(), []entities.BannerRecord{banner}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, ok, err := store.FindByKey(context.Background(), "JOHN SMITH", "JANE SMITH")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if found.BannerID != "b1" {
		t.Fatalf("unexpected banner %+v", found)
	}

	_, ok, err = store.FindByKey(context.Background(), "JOHN SMITH", "SOMEONE ELSE")
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
}

func TestStoreSaveBannerUnknownID(t *testing.T) {
	store := NewStore()
	err := store.SaveBanner(context.Background(), entities.BannerRecord{BannerID: "ghost"})
	if !errors.Is(err, domainerrors.ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
}

func TestStoreListOrdersByUpdatedAtDesc(t *testing.T) {
	store := NewStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := entities.BannerRecord{BannerID: "b1", HeroName: "Older", UpdatedAt: base}
	newer := entities.BannerRecord{BannerID: "b2", HeroName: "Newer", UpdatedAt: base.Add(time.Hour)}
	if err := store.SaveBatch(context.Background(), []entities.BannerRecord{older, newer}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	banners, err := store.ListBanners(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if banners[0].BannerID != "b2" || banners[1].BannerID != "b1" {
		t.Fatalf("unexpected order: %+v", banners)
	}
}
