// File: internal/location/repository.go
package location

import (
	"context"
	"errors"
	"fmt"

	"adoptaunpana_backend/internal/common"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the data operations over provinces and cities.
type Repository interface {
	FindAllProvinces(ctx context.Context) ([]Province, error)
	FindProvinceByID(ctx context.Context, id string) (*Province, error)
	FindCities(ctx context.Context, provinceID string) ([]City, error)
	FindCityByID(ctx context.Context, id string) (*City, error)
	CountProvinces(ctx context.Context) (int64, error)
	CountCities(ctx context.Context) (int64, error)
	InsertProvinces(ctx context.Context, provinces []Province) (int64, error)
	InsertCities(ctx context.Context, cities []City) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM location repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindAllProvinces(ctx context.Context) ([]Province, error) {
	var provinces []Province
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&provinces).Error; err != nil {
		return nil, fmt.Errorf("failed to query provinces: %w", err)
	}
	return provinces, nil
}

func (r *gormRepository) FindProvinceByID(ctx context.Context, id string) (*Province, error) {
	var province Province
	err := r.db.WithContext(ctx).First(&province, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Province not found.")
		}
		return nil, fmt.Errorf("failed to query province %s: %w", id, err)
	}
	return &province, nil
}

// FindCities lists cities by name; an empty provinceID lists all of them.
func (r *gormRepository) FindCities(ctx context.Context, provinceID string) ([]City, error) {
	var cities []City
	query := r.db.WithContext(ctx).Order("name ASC")
	if provinceID != "" {
		query = query.Where("province_id = ?", provinceID)
	}
	if err := query.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	return cities, nil
}

func (r *gormRepository) FindCityByID(ctx context.Context, id string) (*City, error) {
	var city City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("City not found.")
		}
		return nil, fmt.Errorf("failed to query city %s: %w", id, err)
	}
	return &city, nil
}

func (r *gormRepository) CountProvinces(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Province{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count provinces: %w", err)
	}
	return count, nil
}

func (r *gormRepository) CountCities(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&City{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cities: %w", err)
	}
	return count, nil
}

// InsertProvinces inserts the rows whose id is not taken yet and reports how many were new.
func (r *gormRepository) InsertProvinces(ctx context.Context, provinces []Province) (int64, error) {
	if len(provinces) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&provinces)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to insert provinces: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// InsertCities inserts the rows whose id is not taken yet and reports how many were new.
func (r *gormRepository) InsertCities(ctx context.Context, cities []City) (int64, error) {
	if len(cities) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&cities)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to insert cities: %w", res.Error)
	}
	return res.RowsAffected, nil
}
