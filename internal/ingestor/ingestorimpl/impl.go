package ingestorimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-feed-ingestor/internal/domain"
	"github.com/orgball2608/insta-feed-ingestor/internal/ingestor"
	"github.com/orgball2608/insta-feed-ingestor/internal/instagram"
	"github.com/orgball2608/insta-feed-ingestor/internal/normalizer"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/ledger"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/post"
	"github.com/orgball2608/insta-feed-ingestor/internal/repositories/profile"
	"github.com/orgball2608/insta-feed-ingestor/internal/telegram"
	"github.com/orgball2608/insta-feed-ingestor/pkg/config"
	"github.com/orgball2608/insta-feed-ingestor/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram   instagram.Client
	Telegram    telegram.Client
	ProfileRepo profile.Repository
	PostRepo    post.Repository
	LedgerRepo  ledger.Repository
	Transactor  repositories.Transactor
	Logger      logger.Logger
	Config      *config.Config
}

type IngestorImpl struct {
	Instagram   instagram.Client
	Telegram    telegram.Client
	ProfileRepo profile.Repository
	PostRepo    post.Repository
	LedgerRepo  ledger.Repository
	Transactor  repositories.Transactor
	Logger      logger.Logger
	Config      *config.Config

	now func() time.Time
}

func New(opts Opts) *IngestorImpl {
	return &IngestorImpl{
		Instagram:   opts.Instagram,
		Telegram:    opts.Telegram,
		ProfileRepo: opts.ProfileRepo,
		PostRepo:    opts.PostRepo,
		LedgerRepo:  opts.LedgerRepo,
		Transactor:  opts.Transactor,
		Logger:      opts.Logger.WithComponent("Ingestor"),
		Config:      opts.Config,
		now:         time.Now,
	}
}

var _ ingestor.Client = (*IngestorImpl)(nil)

// FetchAndIngest fetches one feed page for handle and ingests it
func (i *IngestorImpl) FetchAndIngest(ctx context.Context, handle, cursor string) (*domain.FeedResult, error) {
	var resp domain.FeedResponse
	if cursor == "" {
		feed, err := i.Instagram.GetProfileFeed(ctx, handle)
		if err != nil {
			return nil, err
		}
		resp = feed
	} else {
		page, err := i.Instagram.GetPostsPage(ctx, handle, cursor)
		if err != nil {
			return nil, err
		}
		resp = page
	}

	batch, err := normalizer.ResolveBatch(resp)
	if err != nil {
		return nil, err
	}

	result, err := i.Ingest(ctx, batch)
	if err != nil {
		return nil, err
	}

	return &domain.FeedResult{
		Profile: batch.ProfileRaw,
		Posts:   normalizer.Nodes(batch.Items),
		Cursor:  batch.Cursor,
		Ingest:  result,
	}, nil
}
