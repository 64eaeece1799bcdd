// File: internal/stats/service.go
package stats

import (
	"context"

	"adoptaunpana_backend/internal/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListingCounter is the part of listing.Repository the dashboard reads.
type ListingCounter interface {
	CountActive(ctx context.Context, urgentOnly bool) (int64, error)
	FindActiveProvinceNames(ctx context.Context) ([]string, error)
}

// MessageCounter is the part of message.Repository the dashboard reads.
type MessageCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsResponse is the GET /stats body.
type StatsResponse struct {
	TotalDogs      int64            `json:"totalDogs"`
	UrgentDogs     int64            `json:"urgentDogs"`
	TotalMessages  int64            `json:"totalMessages"`
	DogsByProvince map[string]int64 `json:"dogsByProvince"`
}

// Service defines the interface for the stats aggregation.
type Service interface {
	GetStats(ctx context.Context) (*StatsResponse, error)
}

// ServiceImplementation implements stats.Service.
type ServiceImplementation struct {
	listings ListingCounter
	messages MessageCounter
	logger   *zap.Logger
}

// NewService creates a new stats service.
func NewService(listings ListingCounter, messages MessageCounter, logger *zap.Logger) Service {
	return &ServiceImplementation{listings: listings, messages: messages, logger: logger.Named("StatsService")}
}

// GetStats runs the four reads concurrently. Any failure fails the whole call.
func (s *ServiceImplementation) GetStats(ctx context.Context) (*StatsResponse, error) {
	var (
		resp          StatsResponse
		provinceNames []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.TotalDogs, err = s.listings.CountActive(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		resp.UrgentDogs, err = s.listings.CountActive(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalMessages, err = s.messages.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		provinceNames, err = s.listings.FindActiveProvinceNames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to fetch stats", zap.Error(err))
		return nil, common.ServiceError("Failed to fetch stats", err)
	}

	resp.DogsByProvince = make(map[string]int64, len(provinceNames))
	for _, name := range provinceNames {
		resp.DogsByProvince[name]++
	}
	return &resp, nil
}
