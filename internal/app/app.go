package app

import (
	"context"

	httpapi "github.com/orgball2608/insta-feed-ingestor/internal/http"
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor"
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor/ingestorimpl"
	"github.com/orgball2608/insta-feed-ingestor/internal/instagram/scrapecreators"
	"github.com/orgball2608/insta-feed-ingestor/internal/migrations"
	repositories "github.com/orgball2608/insta-feed-ingestor/internal/repositories/fx"
	"github.com/orgball2608/insta-feed-ingestor/internal/telegram"
	"github.com/orgball2608/insta-feed-ingestor/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"github.com/orgball2608/insta-feed-ingestor/pkg/pgx"
	"github.com/orgball2608/insta-feed-ingestor/pkg/retry"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	telegramimpl.Module,
	scrapecreators.Module,
	repositories.Module,
	ingestorimpl.Module,
	fx.Invoke(migrate),
	httpapi.Module,
	fx.Invoke(run),
)

func migrate(cfg *config.Config, log logger.Logger) error {
	ctx := context.Background()
	up := func() error {
		return migrations.Up(ctx, cfg.GetDSN())
	}
	if err := retry.Do(ctx, log, "Migrate", up, retry.DefaultConfig()); err != nil {
		log.Error("Failed to apply migrations", "error", err)
		return err
	}
	log.Info("Migrations applied")
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, tgClient telegram.Client, ingestorClient ingestor.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := ingestorClient.ScheduleIngestion(ctx); err != nil {
				log.Error("Schedule ingestion error", "error", err)
				if err := tgClient.SendMessageToUser("Schedule ingestion error: " + err.Error()); err != nil {
					log.Warn("Failed to notify", "error", err)
				}
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
