// File: internal/location/service.go
package location

import (
	"context"
	"fmt"

	"adoptaunpana_backend/internal/common"

	"go.uber.org/zap"
)

// Service exposes the reference data to handlers and to the listing service.
type Service interface {
	ListProvinces(ctx context.Context) ([]ProvinceResponse, error)
	ListCities(ctx context.Context, provinceFilter string) ([]CityResponse, error)
	// ResolvePlacement checks that both ids exist and that the city lies in the province.
	ResolvePlacement(ctx context.Context, provinceID, cityID string) (*Province, *City, error)
}

// ServiceImplementation implements location.Service.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new location service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &ServiceImplementation{repo: repo, logger: logger.Named("LocationService")}
}

func (s *ServiceImplementation) ListProvinces(ctx context.Context) ([]ProvinceResponse, error) {
	provinces, err := s.repo.FindAllProvinces(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch provinces", zap.Error(err))
		return nil, common.ServiceError("Failed to fetch provinces", err)
	}
	out := make([]ProvinceResponse, 0, len(provinces))
	for i := range provinces {
		out = append(out, ToProvinceResponse(&provinces[i]))
	}
	return out, nil
}

func (s *ServiceImplementation) ListCities(ctx context.Context, provinceFilter string) ([]CityResponse, error) {
	cities, err := s.repo.FindCities(ctx, NormalizeID(provinceFilter))
	if err != nil {
		s.logger.Error("Failed to fetch cities", zap.String("province", provinceFilter), zap.Error(err))
		return nil, common.ServiceError("Failed to fetch cities", err)
	}
	out := make([]CityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, ToCityResponse(&cities[i]))
	}
	return out, nil
}

func (s *ServiceImplementation) ResolvePlacement(ctx context.Context, provinceID, cityID string) (*Province, *City, error) {
	province, err := s.repo.FindProvinceByID(ctx, provinceID)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, nil, common.NewValidationAPIError(fmt.Sprintf("Unknown province: %s", provinceID))
		}
		return nil, nil, err
	}
	city, err := s.repo.FindCityByID(ctx, cityID)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, nil, common.NewValidationAPIError(fmt.Sprintf("Unknown city: %s", cityID))
		}
		return nil, nil, err
	}
	if city.ProvinceID != province.ID {
		return nil, nil, common.NewValidationAPIError(
			fmt.Sprintf("City %s does not belong to province %s", city.ID, province.ID))
	}
	return province, city, nil
}
