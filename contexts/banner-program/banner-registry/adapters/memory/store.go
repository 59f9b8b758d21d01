package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
	"herobanner/internal/shared/namekey"

	"github.com/google/uuid"
)

// Store is the in-memory Repository used by tests and as the default CLI
// wiring when no database is configured. It also provides the Clock and
// IDGenerator ports.
type Store struct {
	mu      sync.RWMutex
	banners map[string]entities.BannerRecord
	byKey   map[[2]string]string
}

func NewStore() *Store {
	return &Store{
		banners: make(map[string]entities.BannerRecord),
		byKey:   make(map[[2]string]string),
	}
}

func (s *Store) FindByKey(_ context.Context, heroKey, sponsorKey string) (entities.BannerRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[[2]string{heroKey, sponsorKey}]
	if !ok {
		return entities.BannerRecord{}, false, nil
	}
	return s.banners[id], true, nil
}

func (s *Store) GetBanner(_ context.Context, bannerID string) (entities.BannerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banner, ok := s.banners[strings.TrimSpace(bannerID)]
	if !ok {
		return entities.BannerRecord{}, domainerrors.ErrBannerNotFound
	}
	return banner, nil
}

func (s *Store) ListBanners(_ context.Context) ([]entities.BannerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.BannerRecord, 0, len(s.banners))
	for _, banner := range s.banners {
		items = append(items, banner)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].UpdatedAt.After(items[j].UpdatedAt)
		}
		return items[i].HeroName < items[j].HeroName
	})
	return items, nil
}

func (s *Store) SaveBatch(_ context.Context, create []entities.BannerRecord, update []entities.BannerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, banner := range create {
		if banner.BannerID == "" {
			return domainerrors.ErrInvalidInput
		}
		s.put(banner)
	}
	for _, banner := range update {
		if _, ok := s.banners[banner.BannerID]; !ok {
			return domainerrors.ErrBannerNotFound
		}
		s.put(banner)
	}
	return nil
}

func (s *Store) SaveBanner(_ context.Context, banner entities.BannerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[banner.BannerID]; !ok {
		return domainerrors.ErrBannerNotFound
	}
	s.put(banner)
	return nil
}

func (s *Store) put(banner entities.BannerRecord) {
	s.banners[banner.BannerID] = banner
	key := [2]string{namekey.Normalize(banner.HeroName), namekey.Normalize(banner.SponsorName)}
	s.byKey[key] = banner.BannerID
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
