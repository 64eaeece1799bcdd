// File: internal/listing/repository.go
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adoptaunpana_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the interface for dog listing data operations.
type Repository interface {
	Create(ctx context.Context, listing *DogListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*DogListing, error)
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindActive(ctx context.Context, filter ListingFilter) ([]DogListing, error)
	CountActive(ctx context.Context, urgentOnly bool) (int64, error)
	FindActiveProvinceNames(ctx context.Context) ([]string, error)
	FindAllForSync(ctx context.Context, offset, limit int) ([]DogListing, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM listing repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// preloader expands the province and city names.
func (r *gormRepository) preloader(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Province", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("City", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "province_id") })
}

func (r *gormRepository) Create(ctx context.Context, listing *DogListing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrConflict.WithDetails("A listing with this id already exists.")
		}
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*DogListing, error) {
	var listing DogListing
	err := r.preloader(r.db.WithContext(ctx)).First(&listing, "dog_listings.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Listing not found.")
		}
		return nil, fmt.Errorf("failed to query listing %s: %w", id, err)
	}
	return &listing, nil
}

// Update applies a partial set of column assignments.
func (r *gormRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&DogListing{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("failed to update listing %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Listing not found.")
	}
	return nil
}

// Delete removes a listing; its messages go with it through the FK cascade.
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DogListing{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Listing not found.")
	}
	return nil
}

// FindActive lists active listings matching filter, urgent first then newest first.
func (r *gormRepository) FindActive(ctx context.Context, filter ListingFilter) ([]DogListing, error) {
	query := r.preloader(r.db.WithContext(ctx).Model(&DogListing{})).
		Where("status = ?", StatusActive)

	if filter.ProvinceID != "" {
		query = query.Where("province_id = ?", filter.ProvinceID)
	}
	if filter.CityID != "" {
		query = query.Where("city_id = ?", filter.CityID)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.UrgentOnly {
		query = query.Where("is_urgent = ?", true)
	}
	if filter.Query != "" {
		expr, pattern := textSearchClause(r.db.Dialector.Name(), filter.Query)
		query = query.Where(expr, pattern, pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var listings []DogListing
	if err := query.Order("is_urgent DESC").Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	return listings, nil
}

func (r *gormRepository) CountActive(ctx context.Context, urgentOnly bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&DogListing{}).Where("status = ?", StatusActive)
	if urgentOnly {
		query = query.Where("is_urgent = ?", true)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// FindActiveProvinceNames returns the province name of every active listing,
// one entry per listing. Grouping is left to the caller.
func (r *gormRepository) FindActiveProvinceNames(ctx context.Context) ([]string, error) {
	var listings []DogListing
	err := r.db.WithContext(ctx).
		Select("id", "province_id").
		Preload("Province", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Where("status = ?", StatusActive).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query listing provinces: %w", err)
	}
	names := make([]string, 0, len(listings))
	for _, l := range listings {
		if l.Province != nil {
			names = append(names, l.Province.Name)
		}
	}
	return names, nil
}

// FindAllForSync pages through active listings in a stable order for index export.
func (r *gormRepository) FindAllForSync(ctx context.Context, offset, limit int) ([]DogListing, error) {
	var listings []DogListing
	err := r.preloader(r.db.WithContext(ctx)).
		Where("status = ?", StatusActive).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings for sync (offset %d): %w", offset, err)
	}
	return listings, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// textSearchClause matches q case-insensitively in name, description and breed.
// Postgres folds non-ASCII letters with ILIKE; other drivers fall back to LOWER,
// which sqlite only applies to ASCII.
func textSearchClause(dialect, q string) (string, string) {
	if dialect == "postgres" {
		return `(dog_name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\' OR breed ILIKE ? ESCAPE '\')`,
			"%" + escapeLike(q) + "%"
	}
	return `(LOWER(dog_name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(breed) LIKE ? ESCAPE '\')`,
		"%" + escapeLike(strings.ToLower(q)) + "%"
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
