package location

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"adoptaunpana_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock type for location.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindAllProvinces(ctx context.Context) ([]Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Province), args.Error(1)
}

func (m *MockRepository) FindProvinceByID(ctx context.Context, id string) (*Province, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Province), args.Error(1)
}

func (m *MockRepository) FindCities(ctx context.Context, provinceID string) ([]City, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]City), args.Error(1)
}

func (m *MockRepository) FindCityByID(ctx context.Context, id string) (*City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*City), args.Error(1)
}

func (m *MockRepository) CountProvinces(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountCities(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) InsertProvinces(ctx context.Context, provinces []Province) (int64, error) {
	args := m.Called(ctx, provinces)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) InsertCities(ctx context.Context, cities []City) (int64, error) {
	args := m.Called(ctx, cities)
	return args.Get(0).(int64), args.Error(1)
}

func TestListCities_NormalizesProvinceFilter(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("FindCities", ctx, "las-palmas").Return([]City{{ID: "las-palmas-city", Name: "Las Palmas", ProvinceID: "las-palmas"}}, nil)

	cities, err := svc.ListCities(ctx, "  Las Palmas ")
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "las-palmas", cities[0].ProvinceID)
	repo.AssertExpectations(t)
}

func TestListProvinces_StoreFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("FindAllProvinces", ctx).Return(nil, errors.New("relation \"provinces\" does not exist"))

	_, err := svc.ListProvinces(ctx)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch provinces", apiErr.Message)
	assert.Contains(t, apiErr.Details, "does not exist")
}

func TestListProvinces_EmptyIsNotAnError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("FindAllProvinces", ctx).Return([]Province{}, nil)

	provinces, err := svc.ListProvinces(ctx)
	require.NoError(t, err)
	assert.NotNil(t, provinces)
	assert.Empty(t, provinces)
}

func TestResolvePlacement(t *testing.T) {
	ctx := context.Background()
	madrid := &Province{ID: "madrid", Name: "Madrid"}
	madridCity := &City{ID: "madrid-city", ProvinceID: "madrid"}
	barcelonaCity := &City{ID: "barcelona-city", ProvinceID: "barcelona"}

	t.Run("consistent", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindProvinceByID", ctx, "madrid").Return(madrid, nil)
		repo.On("FindCityByID", ctx, "madrid-city").Return(madridCity, nil)

		p, c, err := NewService(repo, zap.NewNop()).ResolvePlacement(ctx, "madrid", "madrid-city")
		require.NoError(t, err)
		assert.Equal(t, "madrid", p.ID)
		assert.Equal(t, "madrid-city", c.ID)
	})

	t.Run("city outside province", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindProvinceByID", ctx, "madrid").Return(madrid, nil)
		repo.On("FindCityByID", ctx, "barcelona-city").Return(barcelonaCity, nil)

		_, _, err := NewService(repo, zap.NewNop()).ResolvePlacement(ctx, "madrid", "barcelona-city")
		apiErr, ok := common.IsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "City barcelona-city does not belong to province madrid", apiErr.Message)
	})

	t.Run("unknown province", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindProvinceByID", ctx, "toledo").Return(nil, common.ErrNotFound)

		_, _, err := NewService(repo, zap.NewNop()).ResolvePlacement(ctx, "toledo", "toledo-city")
		apiErr, ok := common.IsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		repo.AssertNotCalled(t, "FindCityByID", mock.Anything, mock.Anything)
	})
}
