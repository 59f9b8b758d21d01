package gormadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the banners table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bannerModel{}); err != nil {
		return fmt.Errorf("migrate banners table: %w", err)
	}
	return nil
}

func (r *Repository) FindByKey(ctx context.Context, heroKey, sponsorKey string) (entities.BannerRecord, bool, error) {
	var row bannerModel
	err := r.db.WithContext(ctx).
		Where("hero_key = ? AND sponsor_key = ?", heroKey, sponsorKey).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BannerRecord{}, false, nil
		}
		return entities.BannerRecord{}, false, storeErr(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetBanner(ctx context.Context, bannerID string) (entities.BannerRecord, error) {
	var row bannerModel
	err := r.db.WithContext(ctx).
		Where("banner_id = ?", strings.TrimSpace(bannerID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BannerRecord{}, domainerrors.ErrBannerNotFound
		}
		return entities.BannerRecord{}, storeErr(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListBanners(ctx context.Context) ([]entities.BannerRecord, error) {
	var rows []bannerModel
	err := r.db.WithContext(ctx).
		Order("updated_at DESC, hero_name ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, storeErr(err)
	}
	items := make([]entities.BannerRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// SaveBatch applies a whole import batch inside one transaction; a failure
// rolls everything back so a retried import starts clean.
func (r *Repository) SaveBatch(ctx context.Context, create []entities.BannerRecord, update []entities.BannerRecord) error {
	if len(create) == 0 && len(update) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, banner := range create {
			row := bannerModelFromEntity(banner)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, banner := range update {
			row := bannerModelFromEntity(banner)
			result := tx.Model(&bannerModel{}).
				Where("banner_id = ?", banner.BannerID).
				Updates(row.updateColumns())
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrBannerNotFound
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrBannerNotFound) {
			return err
		}
		return storeErr(err)
	}
	return nil
}

func (r *Repository) SaveBanner(ctx context.Context, banner entities.BannerRecord) error {
	row := bannerModelFromEntity(banner)
	result := r.db.WithContext(ctx).
		Model(&bannerModel{}).
		Where("banner_id = ?", banner.BannerID).
		Updates(row.updateColumns())
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBannerNotFound
	}
	return nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domainerrors.ErrStoreUnavailable, err)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
