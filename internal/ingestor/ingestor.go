package ingestor

import (
	"context"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=ingestor.go -destination=mocks/mock.go
type Client interface {
	// Ingest upserts the batch profile and stores every unseen post of the batch.
	// Only a profile failure aborts the call; item failures are tallied.
	Ingest(ctx context.Context, batch domain.Batch) (*domain.IngestResult, error)

	// FetchAndIngest pulls one page of the handle's feed and ingests it.
	// An empty cursor fetches the profile feed, otherwise the page after cursor.
	FetchAndIngest(ctx context.Context, handle, cursor string) (*domain.FeedResult, error)

	// ScheduleIngestion periodically ingests the configured handles until ctx is done
	ScheduleIngestion(ctx context.Context) error
}
