package stats

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

type MockListingCounter struct {
	mock.Mock
}

func (m *MockListingCounter) CountActive(ctx context.Context, urgentOnly bool) (int64, error) {
	args := m.Called(ctx, urgentOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingCounter) FindActiveProvinceNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockMessageCounter struct {
	mock.Mock
}

func (m *MockMessageCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_GetStats_GroupsByProvinceName(t *testing.T) {
	listings := new(MockListingCounter)
	messages := new(MockMessageCounter)
	listings.On("CountActive", mock.Anything, false).Return(int64(3), nil)
	listings.On("CountActive", mock.Anything, true).Return(int64(1), nil)
	listings.On("FindActiveProvinceNames", mock.Anything).Return([]string{"Madrid", "Barcelona", "Madrid"}, nil)
	messages.On("Count", mock.Anything).Return(int64(7), nil)

	resp, err := NewService(listings, messages, zap.NewNop()).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &StatsResponse{
		TotalDogs:      3,
		UrgentDogs:     1,
		TotalMessages:  7,
		DogsByProvince: map[string]int64{"Madrid": 2, "Barcelona": 1},
	}, resp)
}

func TestService_GetStats_EmptyStore(t *testing.T) {
	listings := new(MockListingCounter)
	messages := new(MockMessageCounter)
	listings.On("CountActive", mock.Anything, mock.Anything).Return(int64(0), nil)
	listings.On("FindActiveProvinceNames", mock.Anything).Return([]string{}, nil)
	messages.On("Count", mock.Anything).Return(int64(0), nil)

	resp, err := NewService(listings, messages, zap.NewNop()).GetStats(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.DogsByProvince)
	assert.Empty(t, resp.DogsByProvince)
}

func TestService_GetStats_AnyFailureFailsAll(t *testing.T) {
	listings := new(MockListingCounter)
	messages := new(MockMessageCounter)
	listings.On("CountActive", mock.Anything, mock.Anything).Return(int64(3), nil)
	listings.On("FindActiveProvinceNames", mock.Anything).Return([]string{"Madrid"}, nil)
	messages.On("Count", mock.Anything).Return(int64(0), errors.New("relation \"messages\" does not exist"))

	resp, err := NewService(listings, messages, zap.NewNop()).GetStats(context.Background())
	assert.Nil(t, resp)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch stats", apiErr.Message)
}
