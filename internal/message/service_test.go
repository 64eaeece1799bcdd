package message

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock type for message.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, msg *Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, listingID *uuid.UUID) ([]Message, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockListingRepository stubs the listing lookups the message service performs.
type MockListingRepository struct {
	mock.Mock
	listing.Repository
}

func (m *MockListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.DogListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.DogListing), args.Error(1)
}

var fixedNow = time.Date(2024, 7, 2, 18, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository, listings *MockListingRepository) Service {
	svc := NewService(repo, listings, zap.NewNop()).(*ServiceImplementation)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func createRequest(listingID string) CreateMessageRequest {
	return CreateMessageRequest{
		ListingID:   common.TrimmedString(listingID),
		SenderName:  "Lucía",
		SenderEmail: "lucia@example.es",
		Message:     "Me encantaría conocerla",
	}
}

func TestService_CreateMessage(t *testing.T) {
	repo := new(MockRepository)
	listings := new(MockListingRepository)
	svc := newTestService(repo, listings)
	ctx := context.Background()
	listingID := uuid.New()

	listings.On("FindByID", ctx, listingID).
		Return(&listing.DogListing{ID: listingID, DogName: "Mora", ContactEmail: "p@example.es", Status: listing.StatusActive}, nil)
	var stored *Message
	repo.On("Create", ctx, mock.AnythingOfType("*message.Message")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*Message) }).
		Return(nil).Once()

	resp, err := svc.CreateMessage(ctx, createRequest(listingID.String()))
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsRead)
	assert.Nil(t, stored.SenderPhone)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.Equal(t, listingID, resp.ListingID)
	require.NotNil(t, resp.DogListings)
	assert.Equal(t, "Mora", resp.DogListings.DogName)
	repo.AssertExpectations(t)
}

func TestService_CreateMessage_ListingChecks(t *testing.T) {
	ctx := context.Background()
	missing, adopted := uuid.New(), uuid.New()

	cases := []struct {
		name       string
		listingID  string
		wantStatus int
	}{
		{"malformed listing id", "abc", http.StatusNotFound},
		{"unknown listing", missing.String(), http.StatusNotFound},
		{"adopted listing", adopted.String(), http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockRepository)
			listings := new(MockListingRepository)
			listings.On("FindByID", ctx, missing).Return(nil, common.ErrNotFound.WithDetails("Listing not found."))
			listings.On("FindByID", ctx, adopted).Return(&listing.DogListing{ID: adopted, Status: listing.StatusAdopted}, nil)

			_, err := newTestService(repo, listings).CreateMessage(ctx, createRequest(tc.listingID))
			apiErr, ok := common.IsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantStatus, apiErr.StatusCode)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_CreateMessage_StoreFailure(t *testing.T) {
	repo := new(MockRepository)
	listings := new(MockListingRepository)
	id := uuid.New()
	listings.On("FindByID", mock.Anything, id).Return(&listing.DogListing{ID: id, Status: listing.StatusActive}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := newTestService(repo, listings).CreateMessage(context.Background(), createRequest(id.String()))
	apiErr, _ := common.IsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to send message", apiErr.Message)
	assert.Equal(t, "connection reset", apiErr.Details)
}

func TestService_ListMessages(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockListingRepository))
	ctx := context.Background()
	id := uuid.New()

	repo.On("List", ctx, (*uuid.UUID)(nil)).Return([]Message{}, nil).Once()
	repo.On("List", ctx, &id).Return([]Message{{ID: uuid.New(), ListingID: id}}, nil).Once()

	all, err := svc.ListMessages(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	filtered, err := svc.ListMessages(ctx, " "+id.String())
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Nil(t, filtered[0].DogListings)

	_, err = svc.ListMessages(ctx, "nope")
	apiErr, _ := common.IsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	repo.AssertExpectations(t)
}

func TestService_ListMessages_StoreFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("relation does not exist"))

	_, err := newTestService(repo, new(MockListingRepository)).ListMessages(context.Background(), "")
	apiErr, _ := common.IsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, "Failed to fetch messages", apiErr.Message)
}

func TestService_MarkAsRead(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, new(MockListingRepository))
	ctx := context.Background()
	known, unknown, broken := uuid.New(), uuid.New(), uuid.New()

	repo.On("MarkAsRead", ctx, known).Return(nil)
	repo.On("FindByID", ctx, known).Return(&Message{ID: known, IsRead: true}, nil)
	repo.On("MarkAsRead", ctx, unknown).Return(common.ErrNotFound.WithDetails("Message not found."))
	repo.On("MarkAsRead", ctx, broken).Return(errors.New("deadlock"))

	resp, err := svc.MarkAsRead(ctx, known)
	require.NoError(t, err)
	assert.True(t, resp.IsRead)

	_, err = svc.MarkAsRead(ctx, unknown)
	apiErr, _ := common.IsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Message not found", apiErr.Message)

	_, err = svc.MarkAsRead(ctx, broken)
	apiErr, _ = common.IsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, "Failed to mark message as read", apiErr.Message)
}
