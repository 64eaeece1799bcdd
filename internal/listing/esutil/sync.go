package esutil

import (
	"context"
	"fmt"
	"strings"

	"adoptaunpana_backend/internal/listing"
	platformElasticsearch "adoptaunpana_backend/internal/platform/elasticsearch"

	"go.uber.org/zap"
)

// SyncReport summarises one export run.
type SyncReport struct {
	Batches int
	Synced  int
	Failed  int
}

// Syncer copies active listings into the dog_listings index in batches.
type Syncer struct {
	repo   listing.Repository
	client *platformElasticsearch.ESClientWrapper
	logger *zap.Logger
}

func NewSyncer(repo listing.Repository, client *platformElasticsearch.ESClientWrapper, logger *zap.Logger) *Syncer {
	return &Syncer{repo: repo, client: client, logger: logger.Named("ListingSync")}
}

// EnsureIndex creates the target index when it does not exist yet.
func (s *Syncer) EnsureIndex(ctx context.Context) error {
	return platformElasticsearch.CreateDogListingsIndexIfNotExists(ctx, s.client, s.logger)
}

// Run pages through the store until a short batch comes back. A bulk request
// that fails as a whole counts every document in it as failed and moves on.
func (s *Syncer) Run(ctx context.Context, batchSize int, refresh string) (SyncReport, error) {
	if batchSize <= 0 {
		return SyncReport{}, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	var report SyncReport

	for offset := 0; ; offset += batchSize {
		listings, err := s.repo.FindAllForSync(ctx, offset, batchSize)
		if err != nil {
			return report, fmt.Errorf("failed to fetch batch at offset %d: %w", offset, err)
		}
		if len(listings) == 0 {
			break
		}
		report.Batches++

		body, docs, failed := s.buildBulkBody(listings)
		report.Failed += failed
		if docs > 0 {
			results, err := platformElasticsearch.BulkIndex(ctx, s.client, body, refresh)
			if err != nil {
				s.logger.Error("Bulk request failed", zap.Int("offset", offset), zap.Error(err))
				report.Failed += docs
			} else {
				for _, r := range results {
					if r.Error != nil {
						s.logger.Error("Failed to index listing",
							zap.String("listingID", r.ID),
							zap.Int("status", r.Status),
							zap.Any("error", r.Error),
						)
						report.Failed++
						continue
					}
					report.Synced++
				}
			}
		}
		s.logger.Info("Batch processed", zap.Int("batch", report.Batches), zap.Int("size", len(listings)))

		if len(listings) < batchSize {
			break
		}
	}

	s.logger.Info("Listing synchronization finished",
		zap.Int("synced", report.Synced),
		zap.Int("failed", report.Failed),
	)
	if report.Failed > 0 {
		return report, fmt.Errorf("%d listings failed to sync", report.Failed)
	}
	return report, nil
}

func (s *Syncer) buildBulkBody(listings []listing.DogListing) (body string, docs, failed int) {
	var b strings.Builder
	for i := range listings {
		l := &listings[i]
		doc, err := DogListingToElasticsearchDoc(l)
		if err != nil {
			s.logger.Error("Failed to convert listing", zap.String("listingID", l.ID.String()), zap.Error(err))
			failed++
			continue
		}
		fmt.Fprintf(&b, `{"index":{"_index":"%s","_id":"%s"}}`+"\n", platformElasticsearch.DogListingsIndexName, l.ID.String())
		b.WriteString(doc)
		b.WriteString("\n")
		docs++
	}
	return b.String(), docs, failed
}
