package ingestorimpl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/metrics"
	"github.com/orgball2608/insta-feed-ingestor/internal/normalizer"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger"
	"github.com/orgball2608/insta-feed-ingestor/pkg/errors"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
)

// Ingest stores the batch. Items are handled one after another in upstream order.
func (i *IngestorImpl) Ingest(ctx context.Context, batch domain.Batch) (result *domain.IngestResult, err error) {
	start := time.Now()
	defer func() { metrics.ObserveIngest(start, err) }()

	if batch.Username == "" {
		return nil, errors.New("batch has no username")
	}

	log := i.Logger.With("username", batch.Username)

	profileID, created, err := i.resolveProfile(ctx, batch)
	if err != nil {
		log.Error("Failed to upsert profile", "error", err)
		return nil, errors.StorageWrite(err, "upsert profile "+batch.Username)
	}

	result = &domain.IngestResult{
		ProfileID:      profileID,
		ProfileCreated: created,
		Total:          len(batch.Items),
	}

	for _, item := range batch.Items {
		outcome := i.ingestItem(ctx, log, profileID, batch.Username, item)
		tally(result, outcome)
		metrics.IncItem(outcome)
	}

	log.Info("Ingestion finished",
		"profile_id", profileID,
		"profile_created", created,
		"total", result.Total,
		"stored", result.Stored,
		"seen", result.Seen,
		"duplicates", result.Duplicates,
		"malformed", result.Malformed,
		"failed", result.Failed,
		"took", time.Since(start).String(),
	)

	return result, nil
}

// resolveProfile runs the full upsert when attributes are known and the
// placeholder insert otherwise.
func (i *IngestorImpl) resolveProfile(ctx context.Context, batch domain.Batch) (int64, bool, error) {
	now := i.now()
	if batch.Profile != nil {
		return i.ProfileRepo.Upsert(ctx, batch.Profile.ToProfile(batch.Username, now))
	}
	return i.ProfileRepo.EnsureExists(ctx, batch.Username, now)
}

func (i *IngestorImpl) ingestItem(ctx context.Context, log logger.Logger, profileID int64, username string, item json.RawMessage) string {
	_, node, err := normalizer.ExtractNode(item)
	if err != nil {
		log.Warn("Skipping malformed item", "error", err)
		return metrics.OutcomeMalformed
	}

	seen, err := i.LedgerRepo.HasSeen(ctx, node.ID)
	if err != nil {
		log.Error("Failed to check ledger", "post_id", node.ID, "error", err)
		return metrics.OutcomeFailed
	}
	if seen {
		log.Debug("Post already processed", "post_id", node.ID)
		return metrics.OutcomeSeen
	}

	np, media := normalizer.FromNode(node)

	err = i.Transactor.WithinTx(ctx, func(ctx context.Context) error {
		return i.store(ctx, profileID, username, np, media)
	})
	switch {
	case err == nil:
		log.Info("Post stored", "post_id", np.SourceID, "type", np.Type, "media", len(media))
		return metrics.OutcomeStored
	case errors.IsDuplicateRace(err):
		log.Info("Post claimed by a concurrent ingestion", "post_id", np.SourceID)
		return metrics.OutcomeDuplicate
	default:
		log.Error("Failed to store post", "post_id", np.SourceID, "error", err)
		return metrics.OutcomeFailed
	}
}

// store claims the ledger entry and writes the post with its media. It runs
// inside one transaction so the three writes land or roll back together.
func (i *IngestorImpl) store(ctx context.Context, profileID int64, username string, np domain.NormalizedPost, media []domain.NormalizedMedia) error {
	now := i.now()

	err := i.LedgerRepo.MarkSeen(ctx, domain.ProcessedNode{ID: np.SourceID, Username: username, CreatedAt: now})
	if err != nil {
		if errors.Is(err, ledger.ErrAlreadyExists) {
			return errors.DuplicateRace(err, "claim post "+np.SourceID)
		}
		return errors.StorageWrite(err, "mark post "+np.SourceID+" as seen")
	}

	p := domain.NewPost(profileID, username, np)
	p.CreatedAt = now

	postID, err := i.PostRepo.Create(ctx, p)
	if err != nil {
		return errors.StorageWrite(err, "insert post "+np.SourceID)
	}

	if err := i.PostRepo.CreateMedia(ctx, postID, username, media); err != nil {
		return errors.StorageWrite(err, "insert media of post "+np.SourceID)
	}

	return nil
}

func tally(result *domain.IngestResult, outcome string) {
	switch outcome {
	case metrics.OutcomeStored:
		result.Stored++
	case metrics.OutcomeSeen:
		result.Seen++
	case metrics.OutcomeDuplicate:
		result.Duplicates++
	case metrics.OutcomeMalformed:
		result.Malformed++
	default:
		result.Failed++
	}
}
