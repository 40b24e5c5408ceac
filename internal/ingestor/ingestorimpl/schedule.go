package ingestorimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/pkg/formatter"
	"github.com/panjf2000/ants/v2"
)

const runTimeout = 10 * time.Minute

// ScheduleIngestion ingests every configured handle on a fixed interval
func (i *IngestorImpl) ScheduleIngestion(ctx context.Context) error {
	usernames := i.Config.ParserUsers()
	if len(usernames) == 0 {
		i.Logger.Info("No handles configured, scheduled ingestion disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := i.Config.Parser.Interval
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				i.Logger.Info("Context cancelled, stopping scheduled ingestion")
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()

			i.Logger.Info("Starting scheduled ingestion", "count", len(usernames))
			i.runJobsWithAnts(taskCtx, usernames)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule ingestion: %w", err)
	}

	scheduler.Start()
	i.Logger.Info("Scheduled ingestion started", "interval", interval.String(), "handles", usernames)

	go func() {
		<-ctx.Done()
		i.Logger.Info("Stopping ingestion scheduler")
		if err := scheduler.Shutdown(); err != nil {
			i.Logger.Error("Failed to shut down ingestion scheduler", "error", err)
		}
	}()

	return nil
}

func (i *IngestorImpl) runJobsWithAnts(ctx context.Context, usernames []string) {
	workers := i.Config.Parser.Workers
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		i.Logger.Error("Failed to create worker pool", "error", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, username := range usernames {
		wg.Add(1)
		userToProcess := username

		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				i.Logger.Info("Skipping job due to context cancellation", "username", userToProcess)
			default:
				i.processHandle(ctx, userToProcess)
			}
		})
		if err != nil {
			wg.Done()
			i.Logger.Error("Failed to submit job to ants pool", "username", userToProcess, "error", err)
		}
	}

	wg.Wait()
}

func (i *IngestorImpl) processHandle(ctx context.Context, username string) {
	result, err := i.FetchAndIngest(ctx, username, "")
	if err != nil {
		i.Logger.Error("Scheduled ingestion failed", "username", username, "error", err)
		i.notify(failureMessage(username, err))
		return
	}

	if result.Ingest != nil && result.Ingest.Stored > 0 {
		i.notify(summaryMessage(username, result.Ingest))
	}
}

func (i *IngestorImpl) notify(message string) {
	if i.Telegram == nil {
		return
	}
	if err := i.Telegram.SendMessageToUser(message); err != nil {
		i.Logger.Warn("Failed to send notification", "error", err)
	}
}

func summaryMessage(username string, r *domain.IngestResult) string {
	return fmt.Sprintf("📥 *@%s*: %s new post\\(s\\) stored, %s already seen, %s skipped",
		formatter.EscapeMarkdownV2(username),
		formatter.FormatNumber(r.Stored),
		formatter.FormatNumber(r.Seen+r.Duplicates),
		formatter.FormatNumber(r.Malformed+r.Failed),
	)
}

func failureMessage(username string, err error) string {
	return fmt.Sprintf("⚠️ Ingestion of *@%s* failed: %s",
		formatter.EscapeMarkdownV2(username),
		formatter.EscapeMarkdownV2(formatter.Truncate(err.Error(), formatter.MaxMessageLength/4)),
	)
}
