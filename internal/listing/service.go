// File: internal/listing/service.go
package listing

import (
	"context"
	"strings"
	"time"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/config"
	"adoptaunpana_backend/internal/location"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for dog listing business logic.
type Service interface {
	ListListings(ctx context.Context, filter ListingFilter) ([]DogListingResponse, error)
	SearchListings(ctx context.Context, filter ListingFilter) ([]DogListingResponse, error)
	CreateListing(ctx context.Context, req CreateDogListingRequest) (*DogListingResponse, error)
	GetListing(ctx context.Context, id uuid.UUID) (*DogListingResponse, error)
	UpdateListing(ctx context.Context, id uuid.UUID, req UpdateDogListingRequest) (*DogListingResponse, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

// ServiceImplementation implements listing.Service.
type ServiceImplementation struct {
	repo      Repository
	locations location.Service
	cfg       *config.Config
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new listing service.
func NewService(repo Repository, locations location.Service, cfg *config.Config, logger *zap.Logger) Service {
	return &ServiceImplementation{
		repo:      repo,
		locations: locations,
		cfg:       cfg,
		logger:    logger.Named("ListingService"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var errDogNotFound = common.ErrNotFound.WithMessage("Dog not found")

func (s *ServiceImplementation) ListListings(ctx context.Context, filter ListingFilter) ([]DogListingResponse, error) {
	filter = normalizeFilter(filter)
	filter.Limit = 0

	listings, err := s.repo.FindActive(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to fetch dog listings", zap.Any("filter", filter), zap.Error(err))
		return nil, common.ServiceError("Failed to fetch dog listings", err)
	}
	return toResponses(listings), nil
}

// SearchListings only honours query, province, size and gender and caps the result set.
func (s *ServiceImplementation) SearchListings(ctx context.Context, filter ListingFilter) ([]DogListingResponse, error) {
	filter = normalizeFilter(ListingFilter{
		Query:      filter.Query,
		ProvinceID: filter.ProvinceID,
		Size:       filter.Size,
		Gender:     filter.Gender,
	})
	filter.Limit = s.cfg.SearchResultLimit

	listings, err := s.repo.FindActive(ctx, filter)
	if err != nil {
		s.logger.Error("Search failed", zap.String("q", filter.Query), zap.Error(err))
		return nil, common.ServiceError("Search failed", err)
	}
	return toResponses(listings), nil
}

func (s *ServiceImplementation) CreateListing(ctx context.Context, req CreateDogListingRequest) (*DogListingResponse, error) {
	provinceID := location.NormalizeID(req.Province.String())
	cityID := location.NormalizeID(req.City.String())

	province, city, err := s.locations.ResolvePlacement(ctx, provinceID, cityID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		s.logger.Error("Failed to resolve listing placement", zap.Error(err))
		return nil, common.NewStoreError("Failed to create listing", err)
	}

	images := StringList(req.ImageURLs)
	if images == nil {
		images = StringList{}
	}
	now := s.now()
	listing := &DogListing{
		ID:           uuid.New(),
		Title:        req.Title.String(),
		Description:  req.Description.String(),
		DogName:      req.DogName.String(),
		Age:          int(req.Age),
		Size:         Size(req.Size),
		Gender:       Gender(req.Gender),
		Breed:        req.Breed.OptionalString(),
		IsUrgent:     req.IsUrgent,
		IsVaccinated: req.IsVaccinated,
		IsNeutered:   req.IsNeutered,
		ContactEmail: req.ContactEmail.String(),
		ContactPhone: req.ContactPhone.OptionalString(),
		ContactName:  req.ContactName.String(),
		ProvinceID:   province.ID,
		CityID:       city.ID,
		ImageURLs:    images,
		ListingType:  TypeAdoption,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.logger.Error("Failed to create listing", zap.String("dogName", listing.DogName), zap.Error(err))
		return nil, common.ServiceError("Failed to create listing", err)
	}
	s.logger.Info("Listing created", zap.String("listingID", listing.ID.String()), zap.String("province", province.ID))

	listing.Province = province
	listing.City = city
	resp := ToDogListingResponse(listing)
	return &resp, nil
}

func (s *ServiceImplementation) GetListing(ctx context.Context, id uuid.UUID) (*DogListingResponse, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, errDogNotFound
		}
		s.logger.Error("Failed to fetch dog listing", zap.String("listingID", id.String()), zap.Error(err))
		return nil, common.ServiceError("Failed to fetch dog listing", err)
	}
	resp := ToDogListingResponse(listing)
	return &resp, nil
}

// UpdateListing merges the supplied fields into the stored listing. Unlike
// CreateListing it runs no field validation.
func (s *ServiceImplementation) UpdateListing(ctx context.Context, id uuid.UUID, req UpdateDogListingRequest) (*DogListingResponse, error) {
	if err := s.repo.Update(ctx, id, req.Changes(s.now())); err != nil {
		if common.IsNotFound(err) {
			return nil, errDogNotFound
		}
		s.logger.Error("Failed to update listing", zap.String("listingID", id.String()), zap.Error(err))
		return nil, common.ServiceError("Failed to update listing", err)
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, errDogNotFound
		}
		return nil, common.ServiceError("Failed to update listing", err)
	}
	resp := ToDogListingResponse(listing)
	return &resp, nil
}

func (s *ServiceImplementation) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if common.IsNotFound(err) {
			return errDogNotFound
		}
		s.logger.Error("Failed to delete listing", zap.String("listingID", id.String()), zap.Error(err))
		return common.ServiceError("Failed to delete listing", err)
	}
	s.logger.Info("Listing deleted", zap.String("listingID", id.String()))
	return nil
}

func normalizeFilter(f ListingFilter) ListingFilter {
	f.ProvinceID = location.NormalizeID(f.ProvinceID)
	f.CityID = location.NormalizeID(f.CityID)
	f.Size = Size(strings.ToLower(strings.TrimSpace(string(f.Size))))
	f.Gender = Gender(strings.ToLower(strings.TrimSpace(string(f.Gender))))
	f.Query = strings.TrimSpace(f.Query)
	return f
}

func toResponses(listings []DogListing) []DogListingResponse {
	out := make([]DogListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, ToDogListingResponse(&listings[i]))
	}
	return out
}
